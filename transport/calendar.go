package transport

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"sched-bot/contract"
)

// LocalCalendar is an in-memory calendar collaborator for development
// runs. It mirrors the real collaborator's surface: creation either
// confirms with an occurrence id or fails, never half-applies.
type LocalCalendar struct {
	mu          sync.Mutex
	occurrences map[string]contract.Occurrence
	overviewURL string
}

func NewLocalCalendar(overviewURL string) *LocalCalendar {
	return &LocalCalendar{
		occurrences: make(map[string]contract.Occurrence),
		overviewURL: overviewURL,
	}
}

func (c *LocalCalendar) CreateOccurrence(_ context.Context, name string, start, end time.Time, description string) (contract.Occurrence, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	occurrence := contract.Occurrence{
		ID:    uuid.NewString(),
		Name:  name,
		Start: start,
		End:   end,
		URL:   c.overviewURL,
	}
	c.occurrences[name] = occurrence
	return occurrence, nil
}

func (c *LocalCalendar) FindOccurrenceByName(_ context.Context, name string) (*contract.Occurrence, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	occurrence, ok := c.occurrences[name]
	if !ok {
		return nil, nil
	}
	return &occurrence, nil
}

func (c *LocalCalendar) OverviewURL() string {
	return c.overviewURL
}
