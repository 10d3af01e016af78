package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/tracklabs/timecore-backend-go/internal/pkg/database"
)

var testDB *database.DB

// requireTestDB connects to the database named by TEST_DATABASE_URL, skipping
// the test when the variable is unset.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	if testDB == nil {
		db, err := database.NewPostgreSQLDB(context.Background(), dsn)
		if err != nil {
			t.Fatalf("failed to connect to test database: %v", err)
		}
		testDB = db
	}
	return testDB
}

// truncateTables wipes the given tables between tests.
func truncateTables(ctx context.Context, db *database.DB, tables ...string) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, table := range tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}
