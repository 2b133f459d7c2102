//go:generate go run go.uber.org/mock/mockgen -source=activity.go -destination=../mocks/mock_activity_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"sched-bot/domain"
)

const (
	activityPrefix = "activity:"
	sessionPrefix  = "session:"
)

// IActivityRepository is the minimal gateway the dispatcher consumes.
// Lookups return a nil record when nothing matches; an error always
// means the store itself misbehaved.
type IActivityRepository interface {
	CreateActivity(activity domain.Activity) (uuid.UUID, error)
	FindActivityByName(name string) (*domain.Activity, error)
	FindActivityByRole(roleID string) (*domain.Activity, error)
	ListActivities() ([]domain.Activity, error)
	AttachSession(activityID uuid.UUID, session domain.Session) error
	ListSessions(activityID uuid.UUID) ([]domain.Session, error)
	ClearAll() error
}

type ActivityRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewActivityRepository(db *badger.DB, log *slog.Logger) *ActivityRepository {
	return &ActivityRepository{db: db, log: log}
}

type diskActivity struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OwnerID       string    `json:"owner_id"`
	RoleID        string    `json:"role_id"`
	HomeChannelID string    `json:"home_channel_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type diskSession struct {
	ID           string    `json:"id"`
	ActivityID   string    `json:"activity_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Triggered    bool      `json:"triggered"`
	OccurrenceID string    `json:"occurrence_id"`
}

// CreateActivity persists an activity under "activity:{id}". The id is
// assigned here when the caller left it zero.
func (r ActivityRepository) CreateActivity(activity domain.Activity) (uuid.UUID, error) {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	key := fmt.Sprintf("%s%s", activityPrefix, activity.ID)
	bytes, err := sonic.Marshal(fromActivity(activity))
	if err != nil {
		return uuid.Nil, err
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return activity.ID, nil
}

// FindActivityByName scans stored activities for an exact name match.
// No trimming or casing is applied; two names differing only in case
// are distinct activities.
func (r ActivityRepository) FindActivityByName(name string) (*domain.Activity, error) {
	return r.findActivity(func(a domain.Activity) bool { return a.Name == name })
}

func (r ActivityRepository) FindActivityByRole(roleID string) (*domain.Activity, error) {
	return r.findActivity(func(a domain.Activity) bool { return a.RoleID == roleID })
}

func (r ActivityRepository) findActivity(match func(domain.Activity) bool) (*domain.Activity, error) {
	activities, err := r.ListActivities()
	if err != nil {
		return nil, err
	}
	found, ok := lo.Find(activities, match)
	if !ok {
		return nil, nil
	}
	return &found, nil
}

func (r ActivityRepository) ListActivities() ([]domain.Activity, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(activityPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var activities []domain.Activity
	for _, b := range raw {
		var disk diskActivity
		if err = sonic.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		activity, err := toActivity(disk)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

// AttachSession persists a session under "session:{activity_id}:{id}"
// so one prefix scan yields every session of an activity.
func (r ActivityRepository) AttachSession(activityID uuid.UUID, session domain.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.ActivityID = activityID
	key := fmt.Sprintf("%s%s:%s", sessionPrefix, activityID, session.ID)
	bytes, err := sonic.Marshal(fromSession(session))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func (r ActivityRepository) ListSessions(activityID uuid.UUID) ([]domain.Session, error) {
	var raw [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("%s%s:", sessionPrefix, activityID))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var sessions []domain.Session
	for _, b := range raw {
		var disk diskSession
		if err = sonic.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		session, err := toSession(disk)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// ClearAll drops every activity and session. This is the only delete
// path in the system.
func (r ActivityRepository) ClearAll() error {
	if err := r.db.DropPrefix([]byte(activityPrefix)); err != nil {
		return err
	}
	return r.db.DropPrefix([]byte(sessionPrefix))
}

func fromActivity(activity domain.Activity) diskActivity {
	return diskActivity{
		ID:            activity.ID.String(),
		Name:          activity.Name,
		Description:   activity.Description,
		OwnerID:       activity.OwnerID,
		RoleID:        activity.RoleID,
		HomeChannelID: activity.HomeChannelID,
		CreatedAt:     activity.CreatedAt,
	}
}

func toActivity(disk diskActivity) (domain.Activity, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Activity{}, err
	}
	return domain.Activity{
		ID:            id,
		Name:          disk.Name,
		Description:   disk.Description,
		OwnerID:       disk.OwnerID,
		RoleID:        disk.RoleID,
		HomeChannelID: disk.HomeChannelID,
		CreatedAt:     disk.CreatedAt,
	}, nil
}

func fromSession(session domain.Session) diskSession {
	return diskSession{
		ID:           session.ID.String(),
		ActivityID:   session.ActivityID.String(),
		Name:         session.Name,
		Description:  session.Description,
		StartTime:    session.StartTime,
		EndTime:      session.EndTime,
		Triggered:    session.Triggered,
		OccurrenceID: session.OccurrenceID,
	}
}

func toSession(disk diskSession) (domain.Session, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Session{}, err
	}
	activityID, err := uuid.Parse(disk.ActivityID)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		ID:           id,
		ActivityID:   activityID,
		Name:         disk.Name,
		Description:  disk.Description,
		StartTime:    disk.StartTime,
		EndTime:      disk.EndTime,
		Triggered:    disk.Triggered,
		OccurrenceID: disk.OccurrenceID,
	}, nil
}
