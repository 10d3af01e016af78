package attendance

import (
	"time"

	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
)

// DailyRecord is one employee's tracked duration for one calendar day, as
// produced by the tracking collaborator. Immutable once handed to the
// classifier; a day without a record counts as zero duration.
type DailyRecord struct {
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Worked     timefmt.Duration
}

// DayStatusKind is the per-day classification variant.
type DayStatusKind string

const (
	StatusFuture  DayStatusKind = "future"
	StatusHoliday DayStatusKind = "holiday"
	StatusWeekend DayStatusKind = "weekend"
	StatusPresent DayStatusKind = "present"
	StatusHalfDay DayStatusKind = "half_day"
	StatusAbsent  DayStatusKind = "absent"
)

// DayStatus is a classified day. Worked carries whatever duration was
// recorded that day regardless of the variant, for display.
type DayStatus struct {
	Date        time.Time
	Kind        DayStatusKind
	Worked      timefmt.Duration
	HolidayName string
}

// CountsAsWorkingDay reports whether the day belongs in the monthly
// working-day denominator. Holidays, weekends and future days do not.
func (s DayStatus) CountsAsWorkingDay() bool {
	switch s.Kind {
	case StatusPresent, StatusHalfDay, StatusAbsent:
		return true
	}
	return false
}

// MonthlyAttendanceSummary is the per-employee roll-up for one month.
// Recomputed in full on every classification; it has no identity beyond
// (employee, month).
type MonthlyAttendanceSummary struct {
	EmployeeID       string
	Month            string // YYYY-MM
	TotalWorkingDays int
	TotalPresent     int
	TotalHalfDays    int
	TotalAbsent      int
	TotalWorked      timefmt.Duration
}
