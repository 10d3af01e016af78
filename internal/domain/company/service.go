package company

import "context"

// CompanyService exposes the calendar configuration operations.
type CompanyService interface {
	// GetCalendar returns settings plus the holidays of the given year.
	// A non-positive year selects the current one.
	GetCalendar(ctx context.Context, year int) (CalendarResponse, error)

	// UpdateCalendarSettings replaces the weekend policy and thresholds.
	UpdateCalendarSettings(ctx context.Context, req UpdateCalendarSettingsRequest) (CalendarResponse, error)

	// AddHoliday registers a company-wide non-working day.
	AddHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// RemoveHoliday deletes a holiday by id.
	RemoveHoliday(ctx context.Context, id string) error
}
