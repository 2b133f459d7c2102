// Package token encodes workflow state into the custom identifiers
// attached to interactive elements, and decodes it back when the next
// interaction of the exchange arrives. One payload variant exists per
// workflow-step shape; decoding fails closed on any mismatch.
//
// A token is a routing mechanism, not a security boundary: any client
// could forge one. Handlers must re-validate that the referenced
// records still exist and that the acting user is the recorded
// initiator before mutating state.
package token

import (
	"fmt"
	"strings"

	"sched-bot/errors"
)

// Separator is reserved: only identifiers may be embedded as fields,
// never activity names or other free text.
const Separator = ":"

const (
	tagCreateButton  = "create_button"
	tagCreateForm    = "create_form"
	tagActivityPick  = "pick_menu"
	tagSessionButton = "session_button"
	tagSessionForm   = "session_form"
)

type Payload interface {
	tag() string
	fields() []string
}

// CreateButton is attached to the activation control of the
// create-event workflow's first prompt.
type CreateButton struct {
	UserID string
}

// CreateForm is attached to the create-event form prompt.
type CreateForm struct {
	UserID string
}

// ActivityPick is attached to the activity selection menu of the
// schedule-session workflow.
type ActivityPick struct {
	UserID string
}

// SessionButton carries the chosen activity's role through the
// schedule-session prompt step.
type SessionButton struct {
	UserID string
	RoleID string
}

// SessionForm is attached to the schedule-session form prompt.
type SessionForm struct {
	UserID string
	RoleID string
}

func (p CreateButton) tag() string  { return tagCreateButton }
func (p CreateForm) tag() string    { return tagCreateForm }
func (p ActivityPick) tag() string  { return tagActivityPick }
func (p SessionButton) tag() string { return tagSessionButton }
func (p SessionForm) tag() string   { return tagSessionForm }

func (p CreateButton) fields() []string  { return []string{p.UserID} }
func (p CreateForm) fields() []string    { return []string{p.UserID} }
func (p ActivityPick) fields() []string  { return []string{p.UserID} }
func (p SessionButton) fields() []string { return []string{p.UserID, p.RoleID} }
func (p SessionForm) fields() []string   { return []string{p.UserID, p.RoleID} }

// Encode produces the custom identifier for a payload. Encoding is
// total: any tag plus field tuple yields a string.
func Encode(p Payload) string {
	return strings.Join(append([]string{p.tag()}, p.fields()...), Separator)
}

// Decode parses a custom identifier back into its payload variant.
// Unknown tags, wrong field counts and empty fields all fail with
// ErrMalformedToken.
func Decode(s string) (Payload, error) {
	parts := strings.Split(s, Separator)
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", errors.ErrMalformedToken, s)
		}
	}

	tag, fields := parts[0], parts[1:]
	switch tag {
	case tagCreateButton:
		if len(fields) != 1 {
			return nil, malformed(tag, 1, len(fields))
		}
		return CreateButton{UserID: fields[0]}, nil
	case tagCreateForm:
		if len(fields) != 1 {
			return nil, malformed(tag, 1, len(fields))
		}
		return CreateForm{UserID: fields[0]}, nil
	case tagActivityPick:
		if len(fields) != 1 {
			return nil, malformed(tag, 1, len(fields))
		}
		return ActivityPick{UserID: fields[0]}, nil
	case tagSessionButton:
		if len(fields) != 2 {
			return nil, malformed(tag, 2, len(fields))
		}
		return SessionButton{UserID: fields[0], RoleID: fields[1]}, nil
	case tagSessionForm:
		if len(fields) != 2 {
			return nil, malformed(tag, 2, len(fields))
		}
		return SessionForm{UserID: fields[0], RoleID: fields[1]}, nil
	default:
		return nil, fmt.Errorf("%w: unknown tag %q", errors.ErrMalformedToken, tag)
	}
}

func malformed(tag string, want, got int) error {
	return fmt.Errorf("%w: tag %q expects %d fields, got %d",
		errors.ErrMalformedToken, tag, want, got)
}
