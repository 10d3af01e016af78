package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/database"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
)

type calendarRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) company.CalendarRepository {
	return &calendarRepositoryImpl{db: db}
}

// GetSettings implements company.CalendarRepository.
func (c *calendarRepositoryImpl) GetSettings(ctx context.Context, companyID string) (company.CalendarSettings, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT company_id, weekend_days, full_day_minutes, half_day_minutes, updated_at
		FROM company_calendar_settings
		WHERE company_id = $1
	`

	var settings company.CalendarSettings
	var weekendDays []int
	var fullDayMinutes, halfDayMinutes int
	err := q.QueryRow(ctx, query, companyID).Scan(
		&settings.CompanyID, &weekendDays, &fullDayMinutes, &halfDayMinutes, &settings.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.CalendarSettings{}, company.ErrCompanyNotFound
		}
		return company.CalendarSettings{}, fmt.Errorf("failed to get calendar settings: %w", err)
	}

	settings.WeekendPolicy = company.WeekendPolicy(weekendDays)
	settings.Thresholds = company.AttendanceThresholds{
		FullDay: timefmt.Duration(fullDayMinutes),
		HalfDay: timefmt.Duration(halfDayMinutes),
	}
	return settings, nil
}

// UpsertSettings implements company.CalendarRepository.
func (c *calendarRepositoryImpl) UpsertSettings(ctx context.Context, settings company.CalendarSettings) error {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO company_calendar_settings (
			company_id, weekend_days, full_day_minutes, half_day_minutes, updated_at
		) VALUES (
			$1, $2, $3, $4, NOW()
		)
		ON CONFLICT (company_id) DO UPDATE SET
			weekend_days = EXCLUDED.weekend_days,
			full_day_minutes = EXCLUDED.full_day_minutes,
			half_day_minutes = EXCLUDED.half_day_minutes,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		settings.CompanyID,
		[]int(settings.WeekendPolicy),
		settings.Thresholds.FullDay.Minutes(),
		settings.Thresholds.HalfDay.Minutes(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert calendar settings: %w", err)
	}
	return nil
}

// ListHolidays implements company.CalendarRepository.
func (c *calendarRepositoryImpl) ListHolidays(ctx context.Context, companyID string, from, to time.Time) ([]company.Holiday, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, company_id, date, name, created_at
		FROM company_holidays
		WHERE company_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []company.Holiday
	for rows.Next() {
		var h company.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// CreateHoliday implements company.CalendarRepository.
func (c *calendarRepositoryImpl) CreateHoliday(ctx context.Context, holiday company.Holiday) (company.Holiday, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO company_holidays (company_id, date, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, holiday.CompanyID, holiday.Date, holiday.Name).
		Scan(&holiday.ID, &holiday.CreatedAt)
	if err != nil {
		return company.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return holiday, nil
}

// DeleteHoliday implements company.CalendarRepository.
func (c *calendarRepositoryImpl) DeleteHoliday(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, c.db)

	query := `
		DELETE FROM company_holidays
		WHERE id = $1 AND company_id = $2
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, companyID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
