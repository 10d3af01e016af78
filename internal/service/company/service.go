package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/fixtures"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/clock"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/database"
	"github.com/tracklabs/timecore-backend-go/internal/repository/postgresql"
)

type CompanyServiceImpl struct {
	db *database.DB
	company.CalendarRepository
	clk clock.Clock
}

func NewCompanyService(db *database.DB, calendarRepo company.CalendarRepository, clk clock.Clock) company.CompanyService {
	return &CompanyServiceImpl{
		db:                 db,
		CalendarRepository: calendarRepo,
		clk:                clk,
	}
}

// GetCalendar implements company.CompanyService. A company with no stored
// settings reads back the defaults. A non-positive year selects the current
// one.
func (s *CompanyServiceImpl) GetCalendar(ctx context.Context, year int) (company.CalendarResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.CalendarResponse{}, err
	}

	if year <= 0 {
		year = s.clk.Now().Year()
	}

	settings, err := s.CalendarRepository.GetSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			settings = fixtures.DefaultCalendarSettings(companyID)
		} else {
			return company.CalendarResponse{}, fmt.Errorf("failed to get calendar settings: %w", err)
		}
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	holidays, err := s.CalendarRepository.ListHolidays(ctx, companyID, from, to)
	if err != nil {
		return company.CalendarResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	return mapCalendar(settings, holidays), nil
}

// UpdateCalendarSettings implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateCalendarSettings(ctx context.Context, req company.UpdateCalendarSettingsRequest) (company.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CalendarResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.CalendarResponse{}, err
	}

	thresholds, err := company.NewAttendanceThresholds(req.FullDay, req.HalfDay)
	if err != nil {
		return company.CalendarResponse{}, err
	}

	settings := company.CalendarSettings{
		CompanyID:     companyID,
		WeekendPolicy: company.WeekendPolicy(req.WeekendDays),
		Thresholds:    thresholds,
	}

	year := s.clk.Now().Year()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var holidays []company.Holiday
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.CalendarRepository.UpsertSettings(txCtx, settings); err != nil {
			return fmt.Errorf("failed to upsert calendar settings: %w", err)
		}
		holidays, err = s.CalendarRepository.ListHolidays(txCtx, companyID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})
	if err != nil {
		return company.CalendarResponse{}, err
	}

	return mapCalendar(settings, holidays), nil
}

// AddHoliday implements company.CompanyService.
func (s *CompanyServiceImpl) AddHoliday(ctx context.Context, req company.CreateHolidayRequest) (company.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return company.HolidayResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return company.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return company.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.CalendarRepository.CreateHoliday(ctx, company.Holiday{
		CompanyID: companyID,
		Date:      date,
		Name:      req.Name,
	})
	if err != nil {
		return company.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHoliday(created), nil
}

// RemoveHoliday implements company.CompanyService.
func (s *CompanyServiceImpl) RemoveHoliday(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.CalendarRepository.DeleteHoliday(ctx, id, companyID); err != nil {
		if errors.Is(err, company.ErrHolidayNotFound) {
			return company.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

func mapCalendar(settings company.CalendarSettings, holidays []company.Holiday) company.CalendarResponse {
	holidayResponses := make([]company.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		holidayResponses = append(holidayResponses, mapHoliday(h))
	}
	return company.CalendarResponse{
		WeekendDays: settings.WeekendPolicy,
		FullDay:     settings.Thresholds.FullDay.String(),
		HalfDay:     settings.Thresholds.HalfDay.String(),
		Holidays:    holidayResponses,
	}
}

func mapHoliday(h company.Holiday) company.HolidayResponse {
	return company.HolidayResponse{
		ID:   h.ID,
		Date: h.Date.Format("2006-01-02"),
		Name: h.Name,
	}
}
