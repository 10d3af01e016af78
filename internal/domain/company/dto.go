package company

import (
	"github.com/tracklabs/timecore-backend-go/internal/pkg/validator"
)

// ========================================
// CALENDAR DTOs
// ========================================

type CalendarResponse struct {
	WeekendDays []int             `json:"weekend_days"`
	FullDay     string            `json:"full_day_threshold"`
	HalfDay     string            `json:"half_day_threshold"`
	Holidays    []HolidayResponse `json:"holidays"`
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

type UpdateCalendarSettingsRequest struct {
	WeekendDays []int  `json:"weekend_days"`
	FullDay     string `json:"full_day_threshold"` // HH:MM
	HalfDay     string `json:"half_day_threshold"` // HH:MM
}

func (r *UpdateCalendarSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := WeekendPolicy(r.WeekendDays).Validate(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "weekend_days",
			Message: "weekend_days must be distinct weekday indices between 1 (Sunday) and 7 (Saturday)",
		})
	}

	if !validator.IsValidHHMM(r.FullDay) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_day_threshold",
			Message: "full_day_threshold must be in HH:MM format",
		})
	}

	if !validator.IsValidHHMM(r.HalfDay) {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_threshold",
			Message: "half_day_threshold must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	// Structural invariant, checked after shape validation
	if _, err := NewAttendanceThresholds(r.FullDay, r.HalfDay); err != nil {
		return err
	}

	return nil
}

type CreateHolidayRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
