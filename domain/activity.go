// Package domain contains core concepts of the scheduling system.
// This file defines Activity and Session entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a recurring schedulable thing users can subscribe to,
// like a weekly game night. Subscription is role-based: the platform
// role identified by RoleID is granted to subscribers.
type Activity struct {
	ID            uuid.UUID
	Name          string
	Description   string
	OwnerID       string
	RoleID        string
	HomeChannelID string
	CreatedAt     time.Time
}

// Session is one concrete time-boxed occurrence of an Activity.
// OccurrenceID correlates it to the platform-side calendar entry.
// Triggered is reserved for the reminder dispatcher.
type Session struct {
	ID           uuid.UUID
	ActivityID   uuid.UUID
	Name         string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Triggered    bool
	OccurrenceID string
}
