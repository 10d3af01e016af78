package timelog

import (
	"context"
	"time"
)

type TimeLogRepository interface {
	// Create stores a session. The storage layer owns the uniqueness of
	// (task, employee, interval) and returns ErrDuplicateSession when an
	// identical session already exists.
	Create(ctx context.Context, log TimeLog) (TimeLog, error)

	// ListForDay returns an employee's sessions starting on the given day,
	// ordered by start time.
	ListForDay(ctx context.Context, companyID, employeeID string, date time.Time) ([]TimeLog, error)
}
