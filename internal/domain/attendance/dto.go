package attendance

import (
	"github.com/tracklabs/timecore-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY REPORT DTOs
// ========================================

type MonthlyReportRequest struct {
	Month      string  `json:"month"` // YYYY-MM
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, valid := validator.IsValidMonth(r.Month); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayStatusResponse struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Status      string  `json:"status"`
	Worked      string  `json:"worked"` // HH:MM
	HolidayName *string `json:"holiday_name,omitempty"`
}

type MonthlySummaryResponse struct {
	TotalWorkingDays int    `json:"total_working_days"`
	TotalPresent     int    `json:"total_present"`
	TotalHalfDays    int    `json:"total_half_days"`
	TotalAbsent      int    `json:"total_absent"`
	TotalWorked      string `json:"total_worked"` // HH:MM, may exceed 24 hours
}

type EmployeeAttendanceResponse struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	AvatarURL    *string                `json:"avatar_url,omitempty"`
	Days         []DayStatusResponse    `json:"days"`
	Summary      MonthlySummaryResponse `json:"summary"`
}

type MonthlyReportResponse struct {
	Month     string                       `json:"month"`
	Employees []EmployeeAttendanceResponse `json:"employees"`
}
