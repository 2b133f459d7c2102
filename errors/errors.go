package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrMalformedToken     = fmt.Errorf("malformed correlation token")
	ErrDuplicateName      = fmt.Errorf("an event with this name already exists")
	ErrActivityNotFound   = fmt.Errorf("event no longer exists")
	ErrRoleLost           = fmt.Errorf("event role no longer exists")
	ErrStoreUnavailable   = fmt.Errorf("store unavailable")
	ErrCalendarCreation   = fmt.Errorf("calendar occurrence creation failed")
	ErrBlockedName        = fmt.Errorf("name contains a blocked word")
	ErrInvalidInput       = fmt.Errorf("invalid form input")
	ErrEmptyWords         = fmt.Errorf("no words have been found")
	ErrUnknownInteraction = fmt.Errorf("no handler for interaction")
	ErrNotInitiator       = fmt.Errorf("interaction initiated by another user")
)
