package runtime

import (
	"context"
	"fmt"
	"time"

	"sched-bot/domain"
	"sched-bot/errors"
	"sched-bot/token"
)

const createButtonLabel = "Create New Event"

// activityForm carries the create-event form fields through
// validation. Both values are free text and are never embedded in a
// correlation token.
type activityForm struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=1000"`
}

// handleCreateCommand is step 1 of the create-event workflow: prompt
// with a fresh activation button and register it as the user's live
// element.
func (d *Dispatcher) handleCreateCommand(in domain.Interaction) (stepResult, error) {
	button := domain.Button{
		CustomID: token.Encode(token.CreateButton{UserID: in.UserID}),
		Label:    createButtonLabel,
	}
	return stepResult{
		res: domain.Response{
			Title:       "Create a New Event",
			Description: "Press the button to open the event form. The button expires if unused.",
			Severity:    domain.SeverityInfo,
			Button:      &button,
		},
		live: createButtonLabel,
	}, nil
}

// handleCreateButton is step 2: the activation control was pressed,
// present the form prompt.
func (d *Dispatcher) handleCreateButton(in domain.Interaction, p token.CreateButton) (stepResult, error) {
	if err := requireInitiator(p.UserID, in); err != nil {
		return stepResult{}, err
	}

	form := domain.Form{
		CustomID: token.Encode(token.CreateForm{UserID: in.UserID}),
		Title:    "New Event",
		Fields: []domain.FormField{
			{Key: "name", Label: "Event Name"},
			{Key: "description", Label: "Description"},
		},
	}
	return stepResult{res: domain.Response{
		Title:    "New Event",
		Severity: domain.SeverityInfo,
		Form:     &form,
	}}, nil
}

// handleCreateForm is step 3: validate, check for a duplicate name,
// provision the subscriber role and persist the activity. The live
// element is deactivated regardless of the outcome.
func (d *Dispatcher) handleCreateForm(ctx context.Context, in domain.Interaction, p token.CreateForm) (stepResult, error) {
	defer d.registry.Deactivate(ctx, in.UserID)

	if err := requireInitiator(p.UserID, in); err != nil {
		return stepResult{}, err
	}

	form := activityForm{
		Name:        in.Fields["name"],
		Description: in.Fields["description"],
	}
	if err := d.validate.Struct(form); err != nil {
		return stepResult{}, fmt.Errorf("%w: event name is required and fields are length-limited", errors.ErrInvalidInput)
	}
	if d.screen.Blocked(form.Name) || d.screen.Blocked(form.Description) {
		return stepResult{}, errors.ErrBlockedName
	}

	// Exact match only: no trimming, no case folding.
	existing, err := d.store.FindActivityByName(form.Name)
	if err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	if existing != nil {
		return stepResult{}, errors.ErrDuplicateName
	}

	roleID, err := d.transport.CreateRole(ctx, form.Name)
	if err != nil {
		return stepResult{}, fmt.Errorf("creating subscriber role: %w", err)
	}
	if err := d.transport.AssignRole(ctx, in.UserID, roleID); err != nil {
		// Accepted partial state: the creator can still be granted the
		// role manually, the activity itself must not be lost.
		d.log.Warn("Failed to grant role to creator", "user", in.UserID,
			"role", roleID, "error", err)
	}

	activity := domain.Activity{
		Name:          form.Name,
		Description:   form.Description,
		OwnerID:       in.UserID,
		RoleID:        roleID,
		HomeChannelID: in.ChannelID,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := d.store.CreateActivity(activity); err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	d.stats.IncrActivitiesCreated()

	return stepResult{res: domain.Response{
		Title:       "Event Created",
		Description: fmt.Sprintf("%q is ready. Subscribers receive its role when they join.", form.Name),
		Severity:    domain.SeveritySuccess,
		Fields: []domain.ResponseField{
			{Name: "Name", Value: form.Name},
			{Name: "Description", Value: form.Description},
		},
	}}, nil
}
