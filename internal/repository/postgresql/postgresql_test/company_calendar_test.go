package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklabs/timecore-backend-go/internal/domain/company"
	"github.com/tracklabs/timecore-backend-go/internal/fixtures"
	"github.com/tracklabs/timecore-backend-go/internal/repository/postgresql"
)

func TestCalendarRepository_GetSettings_NotFound(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	require.NoError(t, truncateTables(ctx, db, "company_calendar_settings"))

	repo := postgresql.NewCalendarRepository(db)
	_, err := repo.GetSettings(ctx, uuid.NewString())
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestCalendarRepository_UpsertAndGetSettings(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	require.NoError(t, truncateTables(ctx, db, "company_calendar_settings"))

	repo := postgresql.NewCalendarRepository(db)
	companyID := uuid.NewString()

	settings := fixtures.DefaultCalendarSettings(companyID)
	require.NoError(t, repo.UpsertSettings(ctx, settings))

	stored, err := repo.GetSettings(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, settings.WeekendPolicy, stored.WeekendPolicy)
	assert.Equal(t, settings.Thresholds, stored.Thresholds)

	// Second upsert replaces rather than duplicates.
	settings.WeekendPolicy = company.WeekendPolicy{6, 7}
	require.NoError(t, repo.UpsertSettings(ctx, settings))

	stored, err = repo.GetSettings(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, company.WeekendPolicy{6, 7}, stored.WeekendPolicy)
}

func TestCalendarRepository_Holidays(t *testing.T) {
	db := requireTestDB(t)
	ctx := context.Background()
	require.NoError(t, truncateTables(ctx, db, "company_holidays"))

	repo := postgresql.NewCalendarRepository(db)
	companyID := uuid.NewString()

	created, err := repo.CreateHoliday(ctx, company.Holiday{
		CompanyID: companyID,
		Date:      time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		Name:      "Christmas Day",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// In range.
	holidays, err := repo.ListHolidays(ctx, companyID,
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "Christmas Day", holidays[0].Name)

	// Out of range.
	holidays, err = repo.ListHolidays(ctx, companyID,
		time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, holidays)

	// Another company sees nothing.
	holidays, err = repo.ListHolidays(ctx, uuid.NewString(),
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, holidays)

	require.NoError(t, repo.DeleteHoliday(ctx, created.ID, companyID))
	assert.ErrorIs(t, repo.DeleteHoliday(ctx, created.ID, companyID), company.ErrHolidayNotFound)
}
