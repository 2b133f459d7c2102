package runtime

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"

	"sched-bot/domain"
	"sched-bot/errors"
	"sched-bot/token"
)

const (
	pickMenuLabel      = "Choose an Event"
	sessionButtonLabel = "Schedule Session"
)

// sessionForm carries the schedule-session form fields through
// validation. Timestamp and duration arrive as raw strings and are
// parsed strictly: a malformed number rejects the submission instead
// of being coerced to zero.
type sessionForm struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=1000"`
	Timestamp   string `validate:"required"`
	Duration    string `validate:"required"`
}

// handleScheduleCommand is step 1 of the schedule-session workflow:
// offer a menu of the activities the requesting user owns. The option
// set is recomputed on every prompt, never cached, so it always
// reflects the user's current ownership state.
func (d *Dispatcher) handleScheduleCommand(in domain.Interaction) (stepResult, error) {
	activities, err := d.store.ListActivities()
	if err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	owned := lo.Filter(activities, func(a domain.Activity, _ int) bool {
		return a.OwnerID == in.UserID
	})
	if len(owned) == 0 {
		return stepResult{res: domain.Response{
			Title:       "No Events to Schedule",
			Description: "You don't own any events yet. Create one first.",
			Severity:    domain.SeverityInfo,
		}}, nil
	}

	menu := domain.SelectMenu{
		CustomID: token.Encode(token.ActivityPick{UserID: in.UserID}),
		Options: lo.Map(owned, func(a domain.Activity, _ int) domain.SelectOption {
			return domain.SelectOption{Label: a.Name, Value: a.RoleID}
		}),
	}
	return stepResult{
		res: domain.Response{
			Title:       "Schedule a Session",
			Description: "Pick the event to schedule a session for.",
			Severity:    domain.SeverityInfo,
			Menu:        &menu,
		},
		live: pickMenuLabel,
	}, nil
}

// handleActivityPick is step 2: an activity was chosen; prompt with
// the calendar link and an activation button carrying the chosen
// activity's role.
func (d *Dispatcher) handleActivityPick(in domain.Interaction, p token.ActivityPick) (stepResult, error) {
	if err := requireInitiator(p.UserID, in); err != nil {
		return stepResult{}, err
	}
	if len(in.Selections) != 1 {
		return stepResult{}, fmt.Errorf("%w: expected a single selection", errors.ErrInvalidInput)
	}

	roleID := in.Selections[0]
	activity, err := d.store.FindActivityByRole(roleID)
	if err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	if activity == nil {
		return stepResult{}, errors.ErrRoleLost
	}

	button := domain.Button{
		CustomID: token.Encode(token.SessionButton{UserID: in.UserID, RoleID: roleID}),
		Label:    sessionButtonLabel,
	}
	return stepResult{
		res: domain.Response{
			Title:       fmt.Sprintf("Scheduling for %s", activity.Name),
			Description: "Check the calendar for conflicts, then press the button to enter session details.",
			Severity:    domain.SeverityInfo,
			URL:         d.calendar.OverviewURL(),
			Button:      &button,
		},
		live: sessionButtonLabel,
	}, nil
}

// handleSessionButton is step 3: present the session details form.
func (d *Dispatcher) handleSessionButton(in domain.Interaction, p token.SessionButton) (stepResult, error) {
	if err := requireInitiator(p.UserID, in); err != nil {
		return stepResult{}, err
	}

	form := domain.Form{
		CustomID: token.Encode(token.SessionForm{UserID: in.UserID, RoleID: p.RoleID}),
		Title:    "New Session",
		Fields: []domain.FormField{
			{Key: "name", Label: "Session Name"},
			{Key: "description", Label: "Description"},
			{Key: "timestamp", Label: "Start (unix seconds)"},
			{Key: "duration", Label: "Duration (hours)"},
		},
	}
	return stepResult{res: domain.Response{
		Title:    "New Session",
		Severity: domain.SeverityInfo,
		Form:     &form,
	}}, nil
}

// handleSessionForm is step 4: parse and validate, re-resolve the
// activity (it may have vanished between steps), create the calendar
// occurrence, and only on confirmed creation persist the session. The
// live element is deactivated regardless of the outcome.
func (d *Dispatcher) handleSessionForm(ctx context.Context, in domain.Interaction, p token.SessionForm) (stepResult, error) {
	defer d.registry.Deactivate(ctx, in.UserID)

	if err := requireInitiator(p.UserID, in); err != nil {
		return stepResult{}, err
	}

	form := sessionForm{
		Name:        in.Fields["name"],
		Description: in.Fields["description"],
		Timestamp:   in.Fields["timestamp"],
		Duration:    in.Fields["duration"],
	}
	if err := d.validate.Struct(form); err != nil {
		return stepResult{}, fmt.Errorf("%w: all fields are required and length-limited", errors.ErrInvalidInput)
	}
	if d.screen.Blocked(form.Name) || d.screen.Blocked(form.Description) {
		return stepResult{}, errors.ErrBlockedName
	}

	start, end, err := parseSessionWindow(form.Timestamp, form.Duration)
	if err != nil {
		return stepResult{}, err
	}

	// The token is only a correlation hint; the activity may have been
	// deleted since the selection step.
	activity, err := d.store.FindActivityByRole(p.RoleID)
	if err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	if activity == nil {
		return stepResult{}, errors.ErrActivityNotFound
	}

	// An occurrence with the same name may already exist on the
	// calendar; reuse it instead of posting a duplicate entry.
	occurrence, err := d.calendar.FindOccurrenceByName(ctx, form.Name)
	if err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrCalendarCreation, err)
	}
	if occurrence == nil {
		created, err := d.calendar.CreateOccurrence(ctx, form.Name, start, end, form.Description)
		if err != nil {
			return stepResult{}, fmt.Errorf("%w: %v", errors.ErrCalendarCreation, err)
		}
		occurrence = &created
	}

	session := domain.Session{
		Name:         form.Name,
		Description:  form.Description,
		StartTime:    start,
		EndTime:      end,
		OccurrenceID: occurrence.ID,
	}
	if err := d.store.AttachSession(activity.ID, session); err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	d.stats.IncrSessionsCreated()

	return stepResult{res: domain.Response{
		Title:       "Session Scheduled",
		Description: fmt.Sprintf("%q is on the calendar for %s.", form.Name, activity.Name),
		Severity:    domain.SeveritySuccess,
		Fields: []domain.ResponseField{
			{Name: "Starts", Value: start.Format(time.RFC1123)},
			{Name: "Ends", Value: end.Format(time.RFC1123)},
		},
	}}, nil
}

// parseSessionWindow turns the raw timestamp and duration fields into
// the session's start and end times. Both must parse cleanly and the
// duration must be positive.
func parseSessionWindow(timestamp, duration string) (time.Time, time.Time, error) {
	seconds, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: start must be a unix timestamp in seconds", errors.ErrInvalidInput)
	}
	hours, err := strconv.ParseFloat(duration, 64)
	if err != nil || hours <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: duration must be a positive number of hours", errors.ErrInvalidInput)
	}

	start := time.Unix(seconds, 0).UTC()
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	return start, end, nil
}
