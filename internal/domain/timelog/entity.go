package timelog

import "time"

// TimeLog is a persisted manual time session. Timestamps are naive local
// wall-clock values; the persistence layer is the sole arbiter of
// uniqueness over (task, employee, interval).
type TimeLog struct {
	ID         string
	CompanyID  string
	TaskID     string
	EmployeeID string
	StartAt    time.Time
	EndAt      time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
