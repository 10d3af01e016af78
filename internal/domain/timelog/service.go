package timelog

import "context"

// TimeLogService validates and persists manual time sessions.
type TimeLogService interface {
	// Create re-runs the session validation gate server-side and stores the
	// session. A duplicate (task, employee, interval) is reported as
	// ErrDuplicateSession, distinct from generic failures.
	Create(ctx context.Context, req CreateTimeLogRequest) (TimeLogResponse, error)

	// ListForDay returns an employee's sessions for one calendar day.
	ListForDay(ctx context.Context, filter DayTimeLogFilter) ([]TimeLogResponse, error)
}
