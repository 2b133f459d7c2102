package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"sched-bot/contract"
	"sched-bot/domain"
	"sched-bot/errors"
	"sched-bot/moderation"
	"sched-bot/observability"
	"sched-bot/repositories"
	"sched-bot/token"
)

// Command names registered on the platform.
const (
	CommandPing            = "ping"
	CommandCreateEvent     = "create-event"
	CommandScheduleSession = "schedule-session"
	CommandListEvents      = "events"
	CommandClearEvents     = "clear-events"
)

// Dispatcher routes one inbound interaction to the workflow step that
// produced its identifier and advances the workflow. Every failure is
// converted to a user-visible response at this boundary; nothing
// propagates uncaught into the transport layer.
type Dispatcher struct {
	log       *slog.Logger
	registry  contract.IElementRegistry
	store     repositories.IActivityRepository
	transport contract.ITransport
	calendar  contract.ICalendar
	screen    *moderation.NameScreen
	stats     *observability.StatsManager
	validate  *validator.Validate
}

func NewDispatcher(log *slog.Logger, registry contract.IElementRegistry,
	store repositories.IActivityRepository, transport contract.ITransport,
	calendar contract.ICalendar, screen *moderation.NameScreen,
	stats *observability.StatsManager) *Dispatcher {
	return &Dispatcher{
		log:       log,
		registry:  registry,
		store:     store,
		transport: transport,
		calendar:  calendar,
		screen:    screen,
		stats:     stats,
		validate:  validator.New(),
	}
}

// stepResult is what a workflow step hands back to Handle: the single
// response to deliver and, when live is set, the label under which the
// response's interactive element must be registered for the user.
type stepResult struct {
	res  domain.Response
	live string
}

// Handle executes one workflow step end to end: route, advance,
// respond, and register any newly presented live element. The returned
// error reports transport delivery failure only; workflow failures
// have already been converted to a response by then.
func (d *Dispatcher) Handle(ctx context.Context, in domain.Interaction) error {
	out, err := d.dispatch(ctx, in)
	if err != nil {
		d.stats.IncrFailedSteps()
		d.log.Warn("Workflow step failed", "kind", in.Kind, "id", in.CustomID,
			"user", in.UserID, "error", err)
		out = stepResult{res: failureResponse(err)}
	}

	ref, err := d.transport.Respond(ctx, in, out.res)
	if err != nil {
		// A failed command exchange leaves the platform-side
		// acknowledgment dangling; delete it as a last resort.
		if in.Kind == domain.KindCommand {
			if cleanupErr := d.transport.DeleteResponse(ctx, in); cleanupErr != nil {
				d.log.Error("Failed to delete dangling acknowledgment",
					"user", in.UserID, "error", cleanupErr)
			}
		}
		return fmt.Errorf("responding to interaction: %w", err)
	}

	if out.live != "" {
		d.registry.Register(ctx, domain.LiveElement{
			UserID:  in.UserID,
			Label:   out.live,
			Message: ref,
		})
	}
	return nil
}

func (d *Dispatcher) dispatch(ctx context.Context, in domain.Interaction) (stepResult, error) {
	if in.Kind == domain.KindCommand {
		switch in.CustomID {
		case CommandPing:
			return d.handlePing(), nil
		case CommandCreateEvent:
			return d.handleCreateCommand(in)
		case CommandScheduleSession:
			return d.handleScheduleCommand(in)
		case CommandListEvents:
			return d.handleListCommand()
		case CommandClearEvents:
			return d.handleClearCommand()
		default:
			return stepResult{}, fmt.Errorf("%w: command %q", errors.ErrUnknownInteraction, in.CustomID)
		}
	}

	payload, err := token.Decode(in.CustomID)
	if err != nil {
		return stepResult{}, err
	}

	switch p := payload.(type) {
	case token.CreateButton:
		return d.handleCreateButton(in, p)
	case token.CreateForm:
		return d.handleCreateForm(ctx, in, p)
	case token.ActivityPick:
		return d.handleActivityPick(in, p)
	case token.SessionButton:
		return d.handleSessionButton(in, p)
	case token.SessionForm:
		return d.handleSessionForm(ctx, in, p)
	default:
		return stepResult{}, fmt.Errorf("%w: %T", errors.ErrUnknownInteraction, payload)
	}
}

// requireInitiator rejects interactions whose encoded initiator does
// not match the acting user. Tokens are forgeable; this check is why a
// forged one buys nothing.
func requireInitiator(encoded string, in domain.Interaction) error {
	if encoded != in.UserID {
		return fmt.Errorf("%w: token owned by %s", errors.ErrNotInitiator, encoded)
	}
	return nil
}

func (d *Dispatcher) handlePing() stepResult {
	return stepResult{res: domain.Response{
		Title:       "Pong",
		Description: "Still scheduling.",
		Severity:    domain.SeverityInfo,
	}}
}

func (d *Dispatcher) handleListCommand() (stepResult, error) {
	activities, err := d.store.ListActivities()
	if err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}

	if len(activities) == 0 {
		return stepResult{res: domain.Response{
			Title:       "No Events",
			Description: "Nothing is scheduled yet.",
			Severity:    domain.SeverityInfo,
		}}, nil
	}

	fields := make([]domain.ResponseField, 0, len(activities))
	for _, activity := range activities {
		sessions, err := d.store.ListSessions(activity.ID)
		if err != nil {
			return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
		}
		fields = append(fields, domain.ResponseField{
			Name:  activity.Name,
			Value: fmt.Sprintf("%s (%d sessions)", activity.Description, len(sessions)),
		})
	}

	return stepResult{res: domain.Response{
		Title:    "All Events",
		Severity: domain.SeverityInfo,
		Fields:   fields,
	}}, nil
}

func (d *Dispatcher) handleClearCommand() (stepResult, error) {
	if err := d.store.ClearAll(); err != nil {
		return stepResult{}, fmt.Errorf("%w: %v", errors.ErrStoreUnavailable, err)
	}
	return stepResult{res: domain.Response{
		Title:       "Events Cleared",
		Description: "All events and their sessions have been removed.",
		Severity:    domain.SeveritySuccess,
	}}, nil
}

// failureResponse converts a workflow error into the single labeled,
// non-destructive response the user sees for that step.
func failureResponse(err error) domain.Response {
	switch {
	case stderrors.Is(err, errors.ErrDuplicateName):
		return warning("Duplicate Name", "An event with this name already exists. Pick another name and try again.")
	case stderrors.Is(err, errors.ErrActivityNotFound):
		return warning("Event Not Found", "This event no longer exists. It may have been removed since you started.")
	case stderrors.Is(err, errors.ErrRoleLost):
		return warning("Event Role Missing", "The role for this event no longer exists.")
	case stderrors.Is(err, errors.ErrBlockedName):
		return warning("Name Not Allowed", "That name contains a blocked word. Pick another name and try again.")
	case stderrors.Is(err, errors.ErrInvalidInput):
		return warning("Invalid Input", err.Error())
	case stderrors.Is(err, errors.ErrNotInitiator):
		return warning("Not Your Control", "Only the user who started this exchange can use it.")
	case stderrors.Is(err, errors.ErrMalformedToken):
		return warning("Stale Control", "This control is no longer valid. Run the command again to start over.")
	case stderrors.Is(err, errors.ErrStoreUnavailable):
		return failure("Storage Unavailable", "Could not reach the event store. Nothing was changed; try again in a moment.")
	case stderrors.Is(err, errors.ErrCalendarCreation):
		return failure("Calendar Error", "The calendar entry could not be created. No session was saved.")
	default:
		return failure("Something Went Wrong", "The step could not be completed. Nothing was changed.")
	}
}

func warning(title, description string) domain.Response {
	return domain.Response{Title: title, Description: description, Severity: domain.SeverityWarning}
}

func failure(title, description string) domain.Response {
	return domain.Response{Title: title, Description: description, Severity: domain.SeverityError}
}
