//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"sched-bot/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IElementRegistry tracks which interactive element is live for which
// user and enforces the one-live-element-per-user invariant.
type IElementRegistry interface {
	Register(ctx context.Context, element domain.LiveElement)
	Deactivate(ctx context.Context, userID string)
	SweepExpired(ctx context.Context, ttl time.Duration) []string
	Size() int
}

// ITransport is the chat-platform collaborator. Rendering and
// authentication live behind it; the core only relies on this surface.
type ITransport interface {
	// Respond delivers exactly one response for an inbound interaction
	// and reports where the resulting message lives.
	Respond(ctx context.Context, in domain.Interaction, res domain.Response) (domain.MessageRef, error)
	// DisableComponents replaces a message's interactive elements with
	// non-interactive equivalents, preserving the original label.
	DisableComponents(ctx context.Context, ref domain.MessageRef, label string) error
	// DeleteResponse removes a dangling acknowledgment after a failed
	// command exchange.
	DeleteResponse(ctx context.Context, in domain.Interaction) error
	CreateRole(ctx context.Context, name string) (string, error)
	AssignRole(ctx context.Context, userID, roleID string) error
}

// Occurrence is a platform-side calendar entry.
type Occurrence struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
	URL   string
}

type ICalendar interface {
	CreateOccurrence(ctx context.Context, name string, start, end time.Time, description string) (Occurrence, error)
	FindOccurrenceByName(ctx context.Context, name string) (*Occurrence, error)
	// OverviewURL points at the platform-side calendar page, used as
	// the external link in scheduling prompts.
	OverviewURL() string
}
