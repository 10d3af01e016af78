package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/tracklabs/timecore-backend-go/internal/domain/attendance"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/database"
	"github.com/tracklabs/timecore-backend-go/internal/pkg/timefmt"
)

type dailyRecordRepositoryImpl struct {
	db *database.DB
}

func NewDailyRecordRepository(db *database.DB) attendance.DailyRecordRepository {
	return &dailyRecordRepositoryImpl{db: db}
}

// ListForMonth implements attendance.DailyRecordRepository. Worked time is
// stored as whole minutes.
func (d *dailyRecordRepositoryImpl) ListForMonth(ctx context.Context, companyID string, monthStart, monthEnd time.Time, employeeID *string) ([]attendance.DailyRecord, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT employee_id, company_id, date, worked_minutes
		FROM daily_records
		WHERE company_id = $1
		  AND date >= $2
		  AND date <= $3
	`
	args := []interface{}{companyID, monthStart, monthEnd}

	if employeeID != nil {
		query += ` AND employee_id = $4`
		args = append(args, *employeeID)
	}
	query += ` ORDER BY employee_id, date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DailyRecord
	for rows.Next() {
		var rec attendance.DailyRecord
		var workedMinutes int
		if err := rows.Scan(&rec.EmployeeID, &rec.CompanyID, &rec.Date, &workedMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan daily record: %w", err)
		}
		rec.Worked = timefmt.Duration(workedMinutes)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily records: %w", err)
	}

	return records, nil
}
