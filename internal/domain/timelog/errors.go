package timelog

import "errors"

// Session editor and submission errors
var (
	// Validation errors, checked in this order before submission
	ErrFutureDate   = errors.New("cannot log time for a future date")
	ErrInvalidRange = errors.New("session end must be after its start")
	ErrFutureTime   = errors.New("session end cannot be in the future")

	// Editor state errors
	ErrDragInProgress     = errors.New("another handle is already being dragged")
	ErrNoActiveDrag       = errors.New("no drag in progress")
	ErrSubmissionInFlight = errors.New("a submission is already in flight for this session")

	// Submission errors
	ErrDuplicateSession = errors.New("an identical session for this task and employee is already logged")
)
