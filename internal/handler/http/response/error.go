package response

import (
	"errors"
	"net/http"

	"github.com/tracklabs/timecore-backend-go/internal/domain/attendance"
	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/domain/employee"
	"github.com/tracklabs/timecore-backend-go/internal/domain/timelog"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Time log domain errors
	case errors.Is(err, timelog.ErrFutureDate):
		BadRequest(w, "Cannot log time on a future date", nil)
	case errors.Is(err, timelog.ErrInvalidRange):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, timelog.ErrFutureTime):
		BadRequest(w, "End time cannot be in the future", nil)
	case errors.Is(err, timelog.ErrDuplicateSession):
		Conflict(w, "An identical session already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Company domain errors
	case errors.Is(err, company.ErrInvalidThresholds):
		BadRequest(w, "Half-day threshold must not exceed full-day threshold", nil)
	case errors.Is(err, company.ErrInvalidWeekendPolicy):
		BadRequest(w, "Weekend days must be distinct weekday indices between 1 and 7", nil)
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
