package company

import (
	"time"

	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
)

// Holiday is a calendar day marked non-working company-wide, independent of
// weekend status.
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

// WeekendPolicy holds the weekday indices that are always non-working,
// 1=Sunday through 7=Saturday.
type WeekendPolicy []int

// Validate rejects indices outside 1..7 and duplicates.
func (p WeekendPolicy) Validate() error {
	seen := map[int]bool{}
	for _, d := range p {
		if d < 1 || d > 7 || seen[d] {
			return ErrInvalidWeekendPolicy
		}
		seen[d] = true
	}
	return nil
}

// ContainsWeekday reports whether wd is a weekend day under this policy.
func (p WeekendPolicy) ContainsWeekday(wd time.Weekday) bool {
	idx := int(wd) + 1
	for _, d := range p {
		if d == idx {
			return true
		}
	}
	return false
}

// AttendanceThresholds holds the full-day and half-day duration cutoffs.
// Invariant: HalfDay <= FullDay.
type AttendanceThresholds struct {
	FullDay timefmt.Duration
	HalfDay timefmt.Duration
}

// NewAttendanceThresholds parses the two "HH:MM" cutoffs and enforces the
// half-day <= full-day invariant at the boundary.
func NewAttendanceThresholds(fullDay, halfDay string) (AttendanceThresholds, error) {
	full, err := timefmt.ParseHHMM(fullDay)
	if err != nil {
		return AttendanceThresholds{}, ErrInvalidThresholds
	}
	half, err := timefmt.ParseHHMM(halfDay)
	if err != nil {
		return AttendanceThresholds{}, ErrInvalidThresholds
	}
	if half > full {
		return AttendanceThresholds{}, ErrInvalidThresholds
	}
	return AttendanceThresholds{FullDay: full, HalfDay: half}, nil
}

// CalendarSettings is the per-company attendance configuration consumed by
// the classifier.
type CalendarSettings struct {
	CompanyID     string
	WeekendPolicy WeekendPolicy
	Thresholds    AttendanceThresholds
	UpdatedAt     time.Time
}
