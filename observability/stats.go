// Package observability aggregates runtime counters shared by the
// dispatcher, the element registry and the background workers.
package observability

import (
	"sync/atomic"
	"time"
)

// StatsSnapshot is a point-in-time copy of all counters.
type StatsSnapshot struct {
	ActivitiesCreated  uint64    `json:"activities_created"`
	SessionsCreated    uint64    `json:"sessions_created"`
	ElementsRegistered uint64    `json:"elements_registered"`
	ElementsExpired    uint64    `json:"elements_expired"`
	SweepsRun          uint64    `json:"sweeps_run"`
	FailedSteps        uint64    `json:"failed_steps"`
	StartedAt          time.Time `json:"started_at"`
}

// StatsManager holds the live counters. All increments are atomic so
// concurrent workflow steps and workers never contend on a lock.
type StatsManager struct {
	activitiesCreated  uint64
	sessionsCreated    uint64
	elementsRegistered uint64
	elementsExpired    uint64
	sweepsRun          uint64
	failedSteps        uint64
	startedAt          time.Time
}

func NewStatsManager() *StatsManager {
	return &StatsManager{startedAt: time.Now()}
}

func (m *StatsManager) IncrActivitiesCreated() {
	atomic.AddUint64(&m.activitiesCreated, 1)
}

func (m *StatsManager) IncrSessionsCreated() {
	atomic.AddUint64(&m.sessionsCreated, 1)
}

func (m *StatsManager) IncrElementsRegistered() {
	atomic.AddUint64(&m.elementsRegistered, 1)
}

func (m *StatsManager) AddElementsExpired(n uint64) {
	atomic.AddUint64(&m.elementsExpired, n)
}

func (m *StatsManager) IncrSweepsRun() {
	atomic.AddUint64(&m.sweepsRun, 1)
}

func (m *StatsManager) IncrFailedSteps() {
	atomic.AddUint64(&m.failedSteps, 1)
}

func (m *StatsManager) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		ActivitiesCreated:  atomic.LoadUint64(&m.activitiesCreated),
		SessionsCreated:    atomic.LoadUint64(&m.sessionsCreated),
		ElementsRegistered: atomic.LoadUint64(&m.elementsRegistered),
		ElementsExpired:    atomic.LoadUint64(&m.elementsExpired),
		SweepsRun:          atomic.LoadUint64(&m.sweepsRun),
		FailedSteps:        atomic.LoadUint64(&m.failedSteps),
		StartedAt:          m.startedAt,
	}
}
