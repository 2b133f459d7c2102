package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sched-bot/contract"
	"sched-bot/observability"
)

// SweeperWorker periodically evicts live elements that outlived their
// time-to-live. Sweeps never overlap: there is exactly one loop, and
// each tick runs to completion before the next is considered.
type SweeperWorker struct {
	log      *slog.Logger
	registry contract.IElementRegistry
	stats    *observability.StatsManager
	interval time.Duration
	ttl      time.Duration
}

func NewSweeperWorker(log *slog.Logger, registry contract.IElementRegistry,
	stats *observability.StatsManager, interval, ttl time.Duration) *SweeperWorker {
	return &SweeperWorker{
		log:      log,
		registry: registry,
		stats:    stats,
		interval: interval,
		ttl:      ttl,
	}
}

// Run executes the sweep loop until the context is canceled.
// Cancellation is a clean exit, not an error, so the supervisor never
// restarts a deliberately stopped sweeper.
func (w *SweeperWorker) Run(ctx context.Context) error {
	w.log.Info("Starting live element sweeper", "interval", w.interval, "ttl", w.ttl)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			evicted := w.registry.SweepExpired(ctx, w.ttl)
			w.stats.IncrSweepsRun()
			if len(evicted) > 0 {
				w.stats.AddElementsExpired(uint64(len(evicted)))
				w.log.Info(fmt.Sprintf("Deactivated %d timed out elements", len(evicted)),
					"users", evicted)
			}
		}
	}
}
