package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/nextstep/subway-api/internal/redact"
	"github.com/nextstep/subway-api/internal/store"
)

// StationStore implements store.StationStore using a SQL database.
type StationStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewStationStore creates a StationStore.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewStationStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *StationStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if dialect == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("dialect cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &StationStore{
		db:      db,
		dialect: dialect,
		logger: logger.With(
			slog.String("component", "station_store"),
			slog.String("dialect", dialect.Name()),
		),
	}
}

// Ensure StationStore implements store.StationStore interface
var _ store.StationStore = (*StationStore)(nil)

// Create implements store.StationStore.Create.
// Returns store.ErrStationNameExists if the name violates the unique constraint.
func (s *StationStore) Create(ctx context.Context, station *domain.Station) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := station.Validate(); err != nil {
		log.Warn("station validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO stations (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, station.Name, station.CreatedAt).Scan(&station.ID)
	if err != nil {
		mapped := s.dialect.MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			log.Debug("unique violation on station name", slog.String("name", station.Name))
			return store.ErrStationNameExists
		}

		log.Error("failed to create station",
			slog.String("error", redact.Error(err)),
			slog.String("name", station.Name))
		return fmt.Errorf("failed to create station: %w", mapped)
	}

	log.Info("station created successfully",
		slog.Int64("station_id", station.ID),
		slog.String("name", station.Name))
	return nil
}

// List implements store.StationStore.List.
func (s *StationStore) List(ctx context.Context) ([]*domain.Station, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at
		FROM stations
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list stations", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("failed to list stations: %w", s.dialect.MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	stations := make([]*domain.Station, 0)
	for rows.Next() {
		var station domain.Station
		if err := rows.Scan(&station.ID, &station.Name, &station.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		stations = append(stations, &station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stations: %w", s.dialect.MapError(err))
	}

	log.Debug("stations listed", slog.Int("count", len(stations)))
	return stations, nil
}

// ExistsByName implements store.StationStore.ExistsByName.
func (s *StationStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM stations WHERE name = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check station name: %w", s.dialect.MapError(err))
	}
	return exists, nil
}

// Delete implements store.StationStore.Delete.
// Returns store.ErrStationNotFound if no row was deleted.
func (s *StationStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete station",
			slog.String("error", redact.Error(err)),
			slog.Int64("station_id", id))
		return fmt.Errorf("failed to delete station: %w", s.dialect.MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrStationNotFound); err != nil {
		log.Debug("station not found for delete", slog.Int64("station_id", id))
		return err
	}

	log.Info("station deleted successfully", slog.Int64("station_id", id))
	return nil
}
