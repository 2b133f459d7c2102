package domain

// InteractionKind discriminates the inbound event types the transport
// can deliver. A multi-step exchange arrives as a sequence of disjoint
// interactions correlated only through their custom identifiers.
type InteractionKind int

const (
	KindCommand InteractionKind = iota
	KindElementActivated
	KindFormSubmitted
	KindSelectionMade
)

// Interaction is one inbound event from the transport collaborator.
// CustomID carries either a command name (KindCommand) or an encoded
// correlation token (all other kinds).
type Interaction struct {
	Kind       InteractionKind
	CustomID   string
	UserID     string
	ChannelID  string
	Fields     map[string]string
	Selections []string
}

type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// Button is an activation control attached to a response. CustomID is
// an encoded correlation token, never free text.
type Button struct {
	CustomID string
	Label    string
}

type SelectOption struct {
	Label string
	Value string
}

// SelectMenu offers a single choice among options. Options are always
// recomputed for the acting user when the prompt is built, never cached.
type SelectMenu struct {
	CustomID string
	Options  []SelectOption
}

// FormField describes one input of a form prompt.
type FormField struct {
	Key   string
	Label string
}

// Form is a modal prompt the transport renders for user input.
type Form struct {
	CustomID string
	Title    string
	Fields   []FormField
}

type ResponseField struct {
	Name  string
	Value string
}

// Response is the single outbound payload produced for one inbound
// interaction. At most one of Button, Menu, Form is set.
type Response struct {
	Title       string
	Description string
	Severity    Severity
	URL         string
	Fields      []ResponseField
	Button      *Button
	Menu        *SelectMenu
	Form        *Form
}
