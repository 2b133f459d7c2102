package domain

import "time"

// MessageRef locates a previously sent message on the platform.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// LiveElement is a currently-active interactive control tied to one
// user. At most one may exist per user at any instant; the registry
// enforces that, not the caller.
type LiveElement struct {
	UserID    string
	Label     string
	Message   MessageRef
	CreatedAt time.Time
}
