package fixtures

import (
	"time"

	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
)

// Default calendar configuration applied to companies that have not stored
// their own settings yet.
const (
	DefaultFullDayThreshold = "08:00"
	DefaultHalfDayThreshold = "04:00"
)

// DefaultWeekendPolicy marks Sunday (1) and Saturday (7) non-working.
func DefaultWeekendPolicy() company.WeekendPolicy {
	return company.WeekendPolicy{1, 7}
}

// DefaultThresholds returns the stock 08:00 / 04:00 cutoffs.
func DefaultThresholds() company.AttendanceThresholds {
	full, _ := timefmt.ParseHHMM(DefaultFullDayThreshold)
	half, _ := timefmt.ParseHHMM(DefaultHalfDayThreshold)
	return company.AttendanceThresholds{FullDay: full, HalfDay: half}
}

// DefaultCalendarSettings assembles the default settings for a company.
func DefaultCalendarSettings(companyID string) company.CalendarSettings {
	return company.CalendarSettings{
		CompanyID:     companyID,
		WeekendPolicy: DefaultWeekendPolicy(),
		Thresholds:    DefaultThresholds(),
		UpdatedAt:     time.Time{},
	}
}

// SeedHolidays builds holiday rows for the common fixed-date public
// holidays of a year. Companies adjust the list afterwards.
func SeedHolidays(companyID string, year int) []company.Holiday {
	fixed := []struct {
		month time.Month
		day   int
		name  string
	}{
		{time.January, 1, "New Year's Day"},
		{time.May, 1, "Labour Day"},
		{time.December, 25, "Christmas Day"},
	}

	holidays := make([]company.Holiday, 0, len(fixed))
	for _, f := range fixed {
		holidays = append(holidays, company.Holiday{
			CompanyID: companyID,
			Date:      time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC),
			Name:      f.name,
		})
	}
	return holidays
}
