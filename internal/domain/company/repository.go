package company

import (
	"context"
	"time"
)

// CalendarRepository provides the per-company reference data the classifier
// consumes: weekend policy, thresholds and the holiday calendar.
type CalendarRepository interface {
	// GetSettings returns the stored settings for a company, or
	// ErrCompanyNotFound when no settings row exists.
	GetSettings(ctx context.Context, companyID string) (CalendarSettings, error)

	// UpsertSettings stores the settings for a company.
	UpsertSettings(ctx context.Context, settings CalendarSettings) error

	// ListHolidays returns holidays with a date in [from, to].
	ListHolidays(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)

	// CreateHoliday stores a new holiday.
	CreateHoliday(ctx context.Context, holiday Holiday) (Holiday, error)

	// DeleteHoliday removes a holiday, returning ErrHolidayNotFound when the
	// id does not belong to the company.
	DeleteHoliday(ctx context.Context, id string, companyID string) error
}
