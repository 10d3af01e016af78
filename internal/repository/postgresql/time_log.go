package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tracklabs/timecore-backend-go/internal/domain/timelog"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/database"
)

const uniqueViolationCode = "23505"

type timeLogRepositoryImpl struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}

// Create implements timelog.TimeLogRepository. The time_logs table carries a
// unique constraint over (task_id, employee_id, start_at, end_at); a second
// identical session surfaces as ErrDuplicateSession.
func (t *timeLogRepositoryImpl) Create(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_logs (
			company_id, task_id, employee_id, start_at, end_at
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		log.CompanyID,
		log.TaskID,
		log.EmployeeID,
		log.StartAt,
		log.EndAt,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return timelog.TimeLog{}, timelog.ErrDuplicateSession
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to create time log: %w", err)
	}

	return log, nil
}

// ListForDay implements timelog.TimeLogRepository.
func (t *timeLogRepositoryImpl) ListForDay(ctx context.Context, companyID, employeeID string, date time.Time) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, company_id, task_id, employee_id, start_at, end_at, created_at, updated_at
		FROM time_logs
		WHERE company_id = $1
		  AND employee_id = $2
		  AND start_at >= $3
		  AND start_at < $4
		ORDER BY start_at ASC
	`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := q.Query(ctx, query, companyID, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	defer rows.Close()

	var logs []timelog.TimeLog
	for rows.Next() {
		var log timelog.TimeLog
		if err := rows.Scan(
			&log.ID, &log.CompanyID, &log.TaskID, &log.EmployeeID,
			&log.StartAt, &log.EndAt, &log.CreatedAt, &log.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time logs: %w", err)
	}

	return logs, nil
}
