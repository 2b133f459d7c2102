package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sched-bot/domain"
)

func newTestRepository(t *testing.T) *ActivityRepository {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	return NewActivityRepository(db, slog.Default())
}

func Test_Create_And_Find_Activity(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	activity := domain.Activity{
		Name:          "Trivia Night",
		Description:   "Weekly quiz",
		OwnerID:       "alice",
		RoleID:        "role-7",
		HomeChannelID: "chan-1",
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	id, err := repository.CreateActivity(activity)
	req.NoError(err)
	req.NotEqual(uuid.Nil, id)

	byName, err := repository.FindActivityByName("Trivia Night")
	req.NoError(err)
	req.NotNil(byName)
	req.Equal(id, byName.ID)
	req.Equal("alice", byName.OwnerID)

	byRole, err := repository.FindActivityByRole("role-7")
	req.NoError(err)
	req.NotNil(byRole)
	req.Equal(id, byRole.ID)
}

func Test_Find_Activity_Is_Exact_Match(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	_, err := repository.CreateActivity(domain.Activity{Name: "Trivia Night", OwnerID: "alice"})
	req.NoError(err)

	// Lookup applies no trimming or case folding
	for _, name := range []string{"trivia night", "Trivia Night ", "Trivia"} {
		found, err := repository.FindActivityByName(name)
		req.NoError(err)
		req.Nil(found)
	}
}

func Test_Find_Missing_Activity_Returns_Nil(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	found, err := repository.FindActivityByName("nowhere")
	req.NoError(err)
	req.Nil(found)

	found, err = repository.FindActivityByRole("role-0")
	req.NoError(err)
	req.Nil(found)
}

func Test_List_Activities(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	for i := range 3 {
		_, err := repository.CreateActivity(domain.Activity{
			Name:    fmt.Sprintf("Event %d", i),
			OwnerID: "alice",
			RoleID:  fmt.Sprintf("role-%d", i),
		})
		req.NoError(err)
	}

	activities, err := repository.ListActivities()
	req.NoError(err)
	req.Len(activities, 3)
}

func Test_Attach_And_List_Sessions(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	id, err := repository.CreateActivity(domain.Activity{Name: "Trivia Night", OwnerID: "alice"})
	req.NoError(err)
	otherID, err := repository.CreateActivity(domain.Activity{Name: "Chess Club", OwnerID: "bob"})
	req.NoError(err)

	start := time.Unix(1700000000, 0).UTC()
	sessions := []domain.Session{
		{Name: "Week 1", StartTime: start, EndTime: start.Add(2 * time.Hour), OccurrenceID: "occ-1"},
		{Name: "Week 2", StartTime: start.Add(7 * 24 * time.Hour), EndTime: start.Add(7*24*time.Hour + 2*time.Hour), OccurrenceID: "occ-2"},
	}
	for _, session := range sessions {
		req.NoError(repository.AttachSession(id, session))
	}
	req.NoError(repository.AttachSession(otherID, domain.Session{Name: "Opening", StartTime: start, EndTime: start.Add(time.Hour)}))

	fetched, err := repository.ListSessions(id)
	req.NoError(err)
	req.Len(fetched, 2)
	for _, session := range fetched {
		req.Equal(id, session.ActivityID)
		req.NotEqual(uuid.Nil, session.ID)
	}

	fetchedOther, err := repository.ListSessions(otherID)
	req.NoError(err)
	req.Len(fetchedOther, 1)
}

func Test_Clear_All_Removes_Everything(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	id, err := repository.CreateActivity(domain.Activity{Name: "Trivia Night", OwnerID: "alice"})
	req.NoError(err)
	req.NoError(repository.AttachSession(id, domain.Session{Name: "Week 1"}))

	req.NoError(repository.ClearAll())

	activities, err := repository.ListActivities()
	req.NoError(err)
	req.Empty(activities)

	sessions, err := repository.ListSessions(id)
	req.NoError(err)
	req.Empty(sessions)
}
