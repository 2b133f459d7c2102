package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"sched-bot/contract"
	"sched-bot/observability"
)

// StatsWorker logs workflow counters and process health on a fixed
// interval so a long-running deployment can be watched from its logs
// alone.
type StatsWorker struct {
	log      *slog.Logger
	stats    *observability.StatsManager
	registry contract.IElementRegistry
	interval time.Duration
}

func NewStatsWorker(log *slog.Logger, stats *observability.StatsManager,
	registry contract.IElementRegistry, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log, stats: stats, registry: registry, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	w.log.Info("Starting stats worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snapshot := w.stats.Snapshot()
			w.log.Info("Scheduler stats",
				"live_elements", w.registry.Size(),
				"activities_created", snapshot.ActivitiesCreated,
				"sessions_created", snapshot.SessionsCreated,
				"elements_registered", snapshot.ElementsRegistered,
				"elements_expired", snapshot.ElementsExpired,
				"sweeps_run", snapshot.SweepsRun,
				"failed_steps", snapshot.FailedSteps,
				"ram_bytes", rss,
				"cpu_percent", cpu,
			)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
