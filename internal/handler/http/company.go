package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/handler/http/response"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/validator"
)

type CompanyHandler interface {
	GetCalendar(w http.ResponseWriter, r *http.Request)
	UpdateCalendarSettings(w http.ResponseWriter, r *http.Request)
	AddHoliday(w http.ResponseWriter, r *http.Request)
	RemoveHoliday(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// GetCalendar implements CompanyHandler. Without a year parameter the
// service falls back to the current year.
func (h *companyHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year := 0
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		if !validator.IsNumeric(yearParam) {
			response.BadRequest(w, "Year must be a number", nil)
			return
		}
		year, _ = strconv.Atoi(yearParam)
	}

	result, err := h.companyService.GetCalendar(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateCalendarSettings implements CompanyHandler.
func (h *companyHandlerImpl) UpdateCalendarSettings(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateCalendarSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.companyService.UpdateCalendarSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar settings updated", result)
}

// AddHoliday implements CompanyHandler.
func (h *companyHandlerImpl) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var req company.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.companyService.AddHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

// RemoveHoliday implements CompanyHandler.
func (h *companyHandlerImpl) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	holidayID := chi.URLParam(r, "holidayID")
	if holidayID == "" {
		response.BadRequest(w, "Holiday id is required", nil)
		return
	}

	if err := h.companyService.RemoveHoliday(r.Context(), holidayID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
