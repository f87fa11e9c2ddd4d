package workday

import "errors"

// Workday domain errors
var (
	// Lifecycle errors (invalid transitions)
	ErrDayNotStarted     = errors.New("workday has not been started yet")
	ErrDayAlreadyStarted = errors.New("workday has already been started")
	ErrDayAlreadyEnded   = errors.New("workday has already been ended")

	// Approval errors
	ErrConflictingDecision = errors.New("a record cannot be both accepted and rejected")
	ErrAlreadyDecided      = errors.New("record has already been accepted or rejected")

	// General errors
	ErrRecordNotFound = errors.New("workday record not found")
)
