package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tracklabs/timecore-backend-go/internal/domain/timelog"
	"github.com/tracklabs/timecore-backend-go/internal/handler/http/response"
)

type TimeLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListForDay(w http.ResponseWriter, r *http.Request)
}

type timeLogHandlerImpl struct {
	timeLogService timelog.TimeLogService
}

func NewTimeLogHandler(timeLogService timelog.TimeLogService) TimeLogHandler {
	return &timeLogHandlerImpl{
		timeLogService: timeLogService,
	}
}

// Create implements TimeLogHandler.
func (h *timeLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timelog.CreateTimeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeLogService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time log created", result)
}

// ListForDay implements TimeLogHandler.
func (h *timeLogHandlerImpl) ListForDay(w http.ResponseWriter, r *http.Request) {
	filter := timelog.DayTimeLogFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeLogService.ListForDay(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
