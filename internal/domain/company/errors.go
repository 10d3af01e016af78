package company

import "errors"

// Calendar configuration errors. These are operator-facing: a company with a
// broken calendar cannot be classified, so they fail the request instead of
// silently misclassifying days.
var (
	ErrInvalidThresholds    = errors.New("half-day threshold must not exceed full-day threshold and both must be HH:MM")
	ErrInvalidWeekendPolicy = errors.New("weekend policy must be distinct weekday indices between 1 and 7")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrHolidayNotFound      = errors.New("holiday not found")
)
