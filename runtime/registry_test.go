package runtime

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sched-bot/domain"
	"sched-bot/mocks"
	"sched-bot/observability"
)

func newTestRegistry(t *testing.T, now func() time.Time) (*ElementRegistry, *mocks.MockITransport) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockITransport(ctrl)
	registry := NewElementRegistry(testLogger(), transport, observability.NewStatsManager(), now)
	return registry, transport
}

func element(userID string, createdAt time.Time) domain.LiveElement {
	return domain.LiveElement{
		UserID:    userID,
		Label:     "Create New Event",
		Message:   domain.MessageRef{ChannelID: "chan-1", MessageID: "msg-" + userID},
		CreatedAt: createdAt,
	}
}

func TestRegistry_Register_One_Element_Per_User(t *testing.T) {
	req := require.New(t)
	registry, transport := newTestRegistry(t, nil)
	ctx := context.Background()

	// Given a user with a live element
	first := element("alice", time.Now())
	registry.Register(ctx, first)
	req.Equal(1, registry.Size())

	// When a second element is registered for the same user
	// Then the first one is disabled
	transport.EXPECT().
		DisableComponents(gomock.Any(), first.Message, first.Label).
		Return(nil).
		Times(1)
	registry.Register(ctx, element("alice", time.Now()))

	// And the user still holds exactly one live element
	req.Equal(1, registry.Size())
}

func TestRegistry_Register_Concurrent_Same_User(t *testing.T) {
	req := require.New(t)
	registry, transport := newTestRegistry(t, nil)
	ctx := context.Background()

	// Every registration beyond the winner disables a predecessor
	transport.EXPECT().
		DisableComponents(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Register(ctx, element("alice", time.Now()))
		}()
	}
	wg.Wait()

	// Then the invariant held: at most one element for the user
	req.Equal(1, registry.Size())
}

func TestRegistry_Deactivate_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry, transport := newTestRegistry(t, nil)
	ctx := context.Background()

	live := element("alice", time.Now())
	registry.Register(ctx, live)

	// The disable instruction goes out exactly once
	transport.EXPECT().
		DisableComponents(gomock.Any(), live.Message, live.Label).
		Return(nil).
		Times(1)

	// When deactivating twice in a row
	registry.Deactivate(ctx, "alice")
	registry.Deactivate(ctx, "alice")

	// Then the second call produced no observable change
	req.Equal(0, registry.Size())
}

func TestRegistry_Deactivate_Removes_Entry_When_Disable_Fails(t *testing.T) {
	req := require.New(t)
	registry, transport := newTestRegistry(t, nil)
	ctx := context.Background()

	registry.Register(ctx, element("alice", time.Now()))

	// A dead-but-visually-live control beats a leaked entry
	transport.EXPECT().
		DisableComponents(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("message already deleted")).
		Times(1)

	registry.Deactivate(ctx, "alice")

	req.Equal(0, registry.Size())
}

func TestRegistry_SweepExpired_Boundary(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	registry, transport := newTestRegistry(t, func() time.Time { return now })
	ctx := context.Background()
	ttl := 15 * time.Minute

	// Given three elements: one past ttl, one exactly at ttl, one fresh
	registry.Register(ctx, element("expired", now.Add(-ttl-time.Second)))
	registry.Register(ctx, element("on-boundary", now.Add(-ttl)))
	registry.Register(ctx, element("fresh", now))

	transport.EXPECT().
		DisableComponents(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	// When the sweep runs
	evicted := registry.SweepExpired(ctx, ttl)

	// Then only the element strictly older than ttl is evicted
	req.Equal([]string{"expired"}, evicted)
	req.Equal(2, registry.Size())
}

func TestRegistry_SweepExpired_Empty(t *testing.T) {
	req := require.New(t)
	registry, _ := newTestRegistry(t, nil)

	evicted := registry.SweepExpired(context.Background(), 15*time.Minute)

	req.Empty(evicted)
}
