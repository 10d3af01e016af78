package timelog

import (
	"github.com/tracklabs/timecore-backend-go/internal/pkg/validator"
)

// CreateTimeLogCommand is the validated submission handed to the
// persistence collaborator. Timestamps are naive local
// "YYYY-MM-DDTHH:MM:SS" values with no timezone suffix.
type CreateTimeLogCommand struct {
	TaskID         string `json:"task_id"`
	EmployeeID     string `json:"employee_id"`
	StartTimestamp string `json:"start_timestamp"`
	EndTimestamp   string `json:"end_timestamp"`
}

// ========================================
// TIME LOG DTOs
// ========================================

type CreateTimeLogRequest struct {
	TaskID     string `json:"task_id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`       // YYYY-MM-DD
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM, "24:00" closes at day end
}

// Validate checks shapes only; the future-date / range / future-time gate
// runs in the service where the injected clock lives.
func (r *CreateTimeLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TaskID) {
		errs = append(errs, validator.ValidationError{
			Field:   "task_id",
			Message: "task_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidHHMM(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidHHMM(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeLogResponse struct {
	ID         string `json:"id"`
	TaskID     string `json:"task_id"`
	EmployeeID string `json:"employee_id"`
	StartAt    string `json:"start_at"` // YYYY-MM-DDTHH:MM:SS, naive local
	EndAt      string `json:"end_at"`
	Duration   string `json:"duration"` // HH:MM
	CreatedAt  string `json:"created_at"`
}

type DayTimeLogFilter struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // YYYY-MM-DD
}

func (f *DayTimeLogFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(f.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
