package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/nextstep/subway-api/internal/store"
)

// Dialect translates driver-specific errors into store errors.
// postgres.Dialect and sqlite.Dialect implement it.
type Dialect interface {
	// Name identifies the dialect in logs.
	Name() string

	// MapError maps a driver error to a store error (store.ErrDuplicate,
	// store.ErrNotFound, ...), wrapping the original. Unknown errors are
	// returned unchanged.
	MapError(err error) error

	// GooseDialect selects the goose SQL dialect for migrations.
	GooseDialect() goose.Dialect

	// Migrations returns the goose migration files for this dialect.
	Migrations() fs.FS
}

// Migrate applies all pending schema migrations for dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	provider, err := goose.NewProvider(dialect.GooseDialect(), db, dialect.Migrations())
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, result := range results {
		logger.Info("migration applied",
			slog.String("dialect", dialect.Name()),
			slog.Int64("version", result.Source.Version),
			slog.String("file", result.Source.Path),
			slog.Duration("duration", result.Duration))
	}
	return nil
}

// CheckRowsAffected examines the number of rows affected by a DELETE.
// If no rows were affected, it returns notFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}

	return nil
}
