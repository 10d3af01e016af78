package attendance

import (
	"context"
	"time"
)

// DailyRecordRepository reads the per-day tracked durations owned by the
// tracking collaborator. Records may exist for not-yet-elapsed days; the
// classifier is expected to handle that shape.
type DailyRecordRepository interface {
	// ListForMonth returns all records with a date in [monthStart, monthEnd]
	// for a company, optionally narrowed to one employee.
	ListForMonth(ctx context.Context, companyID string, monthStart, monthEnd time.Time, employeeID *string) ([]DailyRecord, error)
}
