package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nextstep/subway-api/internal/config"
	"github.com/nextstep/subway-api/internal/platform/memory"
	"github.com/nextstep/subway-api/internal/platform/metrics"
	"github.com/nextstep/subway-api/internal/platform/sqlstore"
	"github.com/nextstep/subway-api/internal/service"
	"github.com/nextstep/subway-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory driver
	db *sql.DB

	// metrics is nil when metrics are disabled
	metrics *metrics.Metrics

	stationStore store.StationStore
	lineStore    store.LineStore

	stationService service.StationService
	lineService    service.LineService
}

// newApplication creates a new application instance with all dependencies initialized.
// SQL backends are migrated before the stores are built.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
	}

	if err := app.initStores(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	// A nil *metrics.Metrics must not reach the services as a non-nil interface.
	var recorder service.OperationRecorder
	if app.metrics != nil {
		recorder = app.metrics
	}

	var err error
	app.stationService, err = service.NewStationService(app.stationStore, recorder, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create station service: %w", err)
	}

	app.lineService, err = service.NewLineService(app.lineStore, recorder, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create line service: %w", err)
	}

	logger.Info("application initialized successfully", "database_driver", cfg.Database.Driver)
	return app, nil
}

// initStores builds the stores for the configured driver.
func (app *application) initStores(ctx context.Context) error {
	if app.config.Database.Driver == config.DriverMemory {
		app.stationStore = memory.NewStationStore(app.logger)
		app.lineStore = memory.NewLineStore(app.logger)
		return nil
	}

	db, dialect, err := openDatabase(ctx, app.config.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	app.db = db

	if err := sqlstore.Migrate(ctx, db, dialect, app.logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	app.stationStore = sqlstore.NewStationStore(db, dialect, app.logger)
	app.lineStore = sqlstore.NewLineStore(db, dialect, app.logger)
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
		app.db = nil
	}

	app.logger.Info("application shutdown completed")
}
