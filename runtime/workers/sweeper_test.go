package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sched-bot/mocks"
	"sched-bot/observability"
)

func TestSweeperWorker_SweepsOnEachTick(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := mocks.NewMockIElementRegistry(ctrl)
	stats := observability.NewStatsManager()

	// Given a registry with two elements past their time to live
	swept := make(chan struct{}, 10)
	registry.EXPECT().
		SweepExpired(gomock.Any(), 15*time.Minute).
		DoAndReturn(func(_ context.Context, _ time.Duration) []string {
			swept <- struct{}{}
			return []string{"alice", "bob"}
		}).
		MinTimes(1)

	worker := NewSweeperWorker(slog.Default(), registry, stats, 10*time.Millisecond, 15*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// When at least one tick has fired
	select {
	case <-swept:
	case <-time.After(1 * time.Second):
		req.Fail("Sweeper never ticked")
	}
	cancel()

	// Then cancellation is a clean exit, never an error
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(1 * time.Second):
		req.Fail("Sweeper did not stop on cancellation")
	}

	snapshot := stats.Snapshot()
	req.GreaterOrEqual(snapshot.SweepsRun, uint64(1))
	req.GreaterOrEqual(snapshot.ElementsExpired, uint64(2))
}

func TestSweeperWorker_StopsBeforeFirstTick(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := mocks.NewMockIElementRegistry(ctrl)

	// Given a sweep interval far beyond the test lifetime
	worker := NewSweeperWorker(slog.Default(), registry, observability.NewStatsManager(),
		1*time.Hour, 15*time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(1 * time.Second):
		req.Fail("Sweeper did not stop on cancellation")
	}
}
