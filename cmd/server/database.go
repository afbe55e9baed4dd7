package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nextstep/subway-api/internal/config"
	"github.com/nextstep/subway-api/internal/platform/postgres"
	"github.com/nextstep/subway-api/internal/platform/sqlite"
	"github.com/nextstep/subway-api/internal/platform/sqlstore"
)

// openDatabase connects to the configured SQL backend. It must not be called
// for the memory driver.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, sqlstore.Dialect, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.URL, cfg.MaxOpenConns)
		if err != nil {
			return nil, nil, err
		}
		return db, postgres.Dialect{}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		return db, sqlite.Dialect{}, nil
	default:
		return nil, nil, fmt.Errorf("driver %q has no SQL database", cfg.Driver)
	}
}

// migrateDatabase applies pending migrations for the configured backend and
// closes the connection. It is a no-op for the memory driver.
func migrateDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Info("memory driver has no migrations to apply")
		return nil
	}

	db, dialect, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("error closing database connection", "error", cerr)
		}
	}()

	return sqlstore.Migrate(ctx, db, dialect, logger)
}
