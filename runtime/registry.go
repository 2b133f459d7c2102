// Package runtime drives the multi-step interaction workflows. It
// correlates disjoint inbound events into logical operations and owns
// the lifecycle of live interactive elements; business records live in
// the repositories package and domain rules in domain.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sched-bot/contract"
	"sched-bot/domain"
	"sched-bot/observability"
)

// ElementRegistry maps a user to at most one live interactive element.
// Registering a new element for a user who already has one deactivates
// the previous element first, so the invariant holds at every instant,
// including under concurrent registrations for the same user.
type ElementRegistry struct {
	mu        sync.Mutex
	log       *slog.Logger
	transport contract.ITransport
	stats     *observability.StatsManager
	now       func() time.Time
	elements  map[string]domain.LiveElement
}

// NewElementRegistry builds a registry. The clock is injectable so
// tests can simulate elapsed time; nil means time.Now.
func NewElementRegistry(log *slog.Logger, transport contract.ITransport,
	stats *observability.StatsManager, now func() time.Time) *ElementRegistry {
	if now == nil {
		now = time.Now
	}
	return &ElementRegistry{
		log:       log,
		transport: transport,
		stats:     stats,
		now:       now,
		elements:  make(map[string]domain.LiveElement),
	}
}

// Register inserts the element as the user's single live element,
// evicting and disabling any previous one.
func (r *ElementRegistry) Register(ctx context.Context, element domain.LiveElement) {
	if element.CreatedAt.IsZero() {
		element.CreatedAt = r.now()
	}

	r.mu.Lock()
	previous, hadPrevious := r.elements[element.UserID]
	r.elements[element.UserID] = element
	r.mu.Unlock()

	if hadPrevious {
		r.disable(ctx, previous)
	}
	r.stats.IncrElementsRegistered()
}

// Deactivate removes the user's live element, if any, and issues a
// best-effort disable instruction for it. Calling it for a user with
// no live element is a no-op.
func (r *ElementRegistry) Deactivate(ctx context.Context, userID string) {
	r.mu.Lock()
	element, ok := r.elements[userID]
	if ok {
		delete(r.elements, userID)
	}
	r.mu.Unlock()

	if ok {
		r.disable(ctx, element)
	}
}

// SweepExpired removes and disables every element older than ttl and
// reports the affected users. An element aged exactly ttl survives.
func (r *ElementRegistry) SweepExpired(ctx context.Context, ttl time.Duration) []string {
	now := r.now()

	r.mu.Lock()
	var expired []domain.LiveElement
	for userID, element := range r.elements {
		if now.Sub(element.CreatedAt) > ttl {
			expired = append(expired, element)
			delete(r.elements, userID)
		}
	}
	r.mu.Unlock()

	users := make([]string, 0, len(expired))
	for _, element := range expired {
		r.disable(ctx, element)
		users = append(users, element.UserID)
	}
	return users
}

func (r *ElementRegistry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.elements)
}

// disable asks the transport to render the element non-interactive.
// Delivery failure is logged, never propagated: the message may
// already be gone on the platform side.
func (r *ElementRegistry) disable(ctx context.Context, element domain.LiveElement) {
	if err := r.transport.DisableComponents(ctx, element.Message, element.Label); err != nil {
		r.log.Warn("Failed to disable components",
			"user", element.UserID, "message", element.Message.MessageID, "error", err)
	}
}
