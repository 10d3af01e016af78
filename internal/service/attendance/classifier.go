package attendance

import (
	"time"

	"github.com/tracklabs/timecore-backend-go/internal/domain/attendance"
	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
)

const dateKeyLayout = "2006-01-02"

// Calendar is the company reference data the classifier reads: holiday
// names keyed by YYYY-MM-DD, the weekend policy and the duration cutoffs.
type Calendar struct {
	Holidays   map[string]string
	Weekend    company.WeekendPolicy
	Thresholds company.AttendanceThresholds
}

// NewCalendar indexes a holiday list for classification.
func NewCalendar(settings company.CalendarSettings, holidays []company.Holiday) Calendar {
	idx := make(map[string]string, len(holidays))
	for _, h := range holidays {
		idx[h.Date.Format(dateKeyLayout)] = h.Name
	}
	return Calendar{
		Holidays:   idx,
		Weekend:    settings.WeekendPolicy,
		Thresholds: settings.Thresholds,
	}
}

// ClassifyDay assigns exactly one status to a day. Rules are ordered and
// the first match wins:
//
//  1. a day after today is future, even when a duration was recorded for it
//  2. a holiday, carrying its name and any recorded duration
//  3. a weekend under the company policy
//  4. the recorded duration against the thresholds: full day and above is
//     present, half day and above is a half day (inclusive lower bound),
//     anything less is absent
//
// Threshold comparison is numeric on minutes; the HH:MM wire form never
// participates in ordering.
func ClassifyDay(date time.Time, worked timefmt.Duration, cal Calendar, today time.Time) attendance.DayStatus {
	date = dateOnly(date)
	today = dateOnly(today)

	status := attendance.DayStatus{Date: date, Worked: worked}

	if date.After(today) {
		status.Kind = attendance.StatusFuture
		return status
	}

	if name, ok := cal.Holidays[date.Format(dateKeyLayout)]; ok {
		status.Kind = attendance.StatusHoliday
		status.HolidayName = name
		return status
	}

	if cal.Weekend.ContainsWeekday(date.Weekday()) {
		status.Kind = attendance.StatusWeekend
		return status
	}

	switch {
	case worked >= cal.Thresholds.FullDay:
		status.Kind = attendance.StatusPresent
	case worked >= cal.Thresholds.HalfDay:
		status.Kind = attendance.StatusHalfDay
	default:
		status.Kind = attendance.StatusAbsent
	}
	return status
}

// BuildMonthlyGrid classifies every day of the month for one employee and
// rolls the days up into the monthly summary. records holds that
// employee's daily durations; days without a record count as zero. The
// whole result is derived from scratch on every call.
func BuildMonthlyGrid(monthStart time.Time, employeeID string, records []attendance.DailyRecord, cal Calendar, today time.Time) ([]attendance.DayStatus, attendance.MonthlyAttendanceSummary) {
	monthStart = time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	byDate := make(map[string]timefmt.Duration, len(records))
	for _, r := range records {
		byDate[dateOnly(r.Date).Format(dateKeyLayout)] = r.Worked
	}

	summary := attendance.MonthlyAttendanceSummary{
		EmployeeID: employeeID,
		Month:      monthStart.Format("2006-01"),
	}

	days := make([]attendance.DayStatus, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := monthStart.AddDate(0, 0, day-1)
		worked := byDate[date.Format(dateKeyLayout)]

		status := ClassifyDay(date, worked, cal, today)
		days = append(days, status)

		// Worked time counts toward the monthly total whatever the status.
		summary.TotalWorked = timefmt.Sum(summary.TotalWorked, worked)

		if status.CountsAsWorkingDay() {
			summary.TotalWorkingDays++
		}
		switch status.Kind {
		case attendance.StatusPresent:
			summary.TotalPresent++
		case attendance.StatusHalfDay:
			summary.TotalHalfDays++
		case attendance.StatusAbsent:
			summary.TotalAbsent++
		}
	}

	return days, summary
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
