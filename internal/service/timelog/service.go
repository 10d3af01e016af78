package timelog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/timecore-backend-go/internal/domain/timelog"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/clock"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/validator"
)

const naiveLayout = "2006-01-02T15:04:05"

type TimeLogServiceImpl struct {
	timelog.TimeLogRepository
	clk clock.Clock
}

func NewTimeLogService(repo timelog.TimeLogRepository, clk clock.Clock) timelog.TimeLogService {
	return &TimeLogServiceImpl{
		TimeLogRepository: repo,
		clk:               clk,
	}
}

// Create implements timelog.TimeLogService. The validation gate runs here
// again regardless of what the editor already checked: future date first,
// then degenerate range, then an end past the current minute on today's
// date.
func (s *TimeLogServiceImpl) Create(ctx context.Context, req timelog.CreateTimeLogRequest) (timelog.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return timelog.TimeLogResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return timelog.TimeLogResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}
	startMinute, err := timefmt.ParseClock(req.StartTime)
	if err != nil {
		return timelog.TimeLogResponse{}, validator.ValidationErrors{{
			Field:   "start_time",
			Message: "start_time must be a clock time between 00:00 and 23:59",
		}}
	}
	// The end may be "24:00": a session running to the end of its day closes
	// at next-day midnight.
	endMinute, err := timefmt.ParseClockEnd(req.EndTime)
	if err != nil {
		return timelog.TimeLogResponse{}, validator.ValidationErrors{{
			Field:   "end_time",
			Message: "end_time must be a clock time between 00:00 and 24:00",
		}}
	}

	now := s.clk.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if date.After(today) {
		return timelog.TimeLogResponse{}, timelog.ErrFutureDate
	}
	if endMinute <= startMinute {
		return timelog.TimeLogResponse{}, timelog.ErrInvalidRange
	}
	if date.Equal(today) && endMinute > now.Hour()*60+now.Minute() {
		return timelog.TimeLogResponse{}, timelog.ErrFutureTime
	}

	log := timelog.TimeLog{
		CompanyID:  companyID,
		TaskID:     req.TaskID,
		EmployeeID: req.EmployeeID,
		StartAt:    date.Add(time.Duration(startMinute) * time.Minute),
		EndAt:      date.Add(time.Duration(endMinute) * time.Minute),
	}

	created, err := s.TimeLogRepository.Create(ctx, log)
	if err != nil {
		// ErrDuplicateSession passes through unwrapped so the handler can
		// report it apart from generic storage failures.
		return timelog.TimeLogResponse{}, err
	}

	return mapTimeLog(created), nil
}

// ListForDay implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) ListForDay(ctx context.Context, filter timelog.DayTimeLogFilter) ([]timelog.TimeLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	date, err := time.Parse("2006-01-02", filter.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	logs, err := s.TimeLogRepository.ListForDay(ctx, companyID, filter.EmployeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	responses := make([]timelog.TimeLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, mapTimeLog(log))
	}
	return responses, nil
}

func mapTimeLog(log timelog.TimeLog) timelog.TimeLogResponse {
	minutes := int(log.EndAt.Sub(log.StartAt) / time.Minute)
	return timelog.TimeLogResponse{
		ID:         log.ID,
		TaskID:     log.TaskID,
		EmployeeID: log.EmployeeID,
		StartAt:    log.StartAt.Format(naiveLayout),
		EndAt:      log.EndAt.Format(naiveLayout),
		Duration:   timefmt.Duration(minutes).String(),
		CreatedAt:  log.CreatedAt.Format(naiveLayout),
	}
}
