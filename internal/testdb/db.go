package testdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/nextstep/subway-api/internal/platform/postgres"
	"github.com/nextstep/subway-api/internal/platform/sqlite"
	"github.com/nextstep/subway-api/internal/platform/sqlstore"
)

// GetTestDBWithT opens the configured PostgreSQL test database, applies
// migrations and registers cleanup. The test is skipped when no database is
// configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbURL := GetTestDatabaseURL()
	db, err := postgres.Open(ctx, dbURL, 4)
	if err != nil {
		t.Fatalf("failed to open test database %s: %v", maskDatabaseURL(dbURL), err)
	}
	t.Cleanup(func() { CleanupDB(t, db) })

	if err := sqlstore.Migrate(ctx, db, postgres.Dialect{}, nil); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SQLiteDBWithT creates a migrated SQLite database in a temp dir.
func SQLiteDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "subway.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { CleanupDB(t, db) })

	if err := sqlstore.Migrate(ctx, db, sqlite.Dialect{}, nil); err != nil {
		t.Fatalf("failed to migrate sqlite database: %v", err)
	}
	return db
}

// CleanupDB closes db, logging rather than failing on error.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
