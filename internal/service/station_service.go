package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/nextstep/subway-api/internal/store"
)

// StationService provides station-related operations.
type StationService interface {
	// CreateStation creates a station named name.
	// Returns *domain.DuplicateNameError if a station with exactly that name exists,
	// or *domain.ValidationError if the name is invalid.
	CreateStation(ctx context.Context, name string) (*domain.Station, error)

	// ListStations returns all stations in creation order.
	ListStations(ctx context.Context) ([]*domain.Station, error)

	// DeleteStation deletes the station with the given ID.
	// Returns *domain.NotFoundError if it does not exist.
	DeleteStation(ctx context.Context, id int64) error
}

// stationServiceImpl implements the StationService interface
type stationServiceImpl struct {
	stations store.StationStore
	recorder OperationRecorder
	logger   *slog.Logger
}

// NewStationService creates a new StationService.
// It returns an error if the store is nil. recorder and logger are optional.
func NewStationService(
	stations store.StationStore,
	recorder OperationRecorder,
	logger *slog.Logger,
) (StationService, error) {
	if stations == nil {
		return nil, NewServiceError(domain.EntityStation, "create_service", "stations store cannot be nil", nil)
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &stationServiceImpl{
		stations: stations,
		recorder: recorder,
		logger:   logger.With("component", "station_service"),
	}, nil
}

// CreateStation checks the name up front and relies on the store to make the
// final check-and-insert atomic, so two concurrent requests for the same name
// cannot both succeed.
func (s *stationServiceImpl) CreateStation(ctx context.Context, name string) (station *domain.Station, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer func() { s.recorder.ObserveOperation(domain.EntityStation, "create", resultOf(err)) }()

	station, err = domain.NewStation(name)
	if err != nil {
		log.Debug("invalid station", "error", err)
		return nil, err
	}

	exists, err := s.stations.ExistsByName(ctx, name)
	if err != nil {
		log.Error("failed to check station name", "error", err)
		return nil, NewServiceError(domain.EntityStation, "create", "failed to check station name", err)
	}
	if exists {
		log.Debug("station name already in use", "name", name)
		return nil, domain.NewDuplicateNameError(domain.EntityStation, name)
	}

	if err = s.stations.Create(ctx, station); err != nil {
		switch {
		case store.IsDuplicateError(err):
			log.Debug("station name taken concurrently", "name", name)
			return nil, domain.NewDuplicateNameError(domain.EntityStation, name)
		case errors.Is(err, domain.ErrValidation):
			return nil, err
		}
		log.Error("failed to create station", "error", err, "name", name)
		return nil, NewServiceError(domain.EntityStation, "create", "failed to save station", err)
	}

	log.Info("station created", "station_id", station.ID, "name", station.Name)
	return station, nil
}

// ListStations returns all stations in creation order.
func (s *stationServiceImpl) ListStations(ctx context.Context) (stations []*domain.Station, err error) {
	defer func() { s.recorder.ObserveOperation(domain.EntityStation, "list", resultOf(err)) }()

	stations, err = s.stations.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list stations", "error", err)
		return nil, NewServiceError(domain.EntityStation, "list", "failed to list stations", err)
	}
	return stations, nil
}

// DeleteStation deletes the station with the given ID.
func (s *stationServiceImpl) DeleteStation(ctx context.Context, id int64) (err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer func() { s.recorder.ObserveOperation(domain.EntityStation, "delete", resultOf(err)) }()

	if err = s.stations.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("station not found for delete", "station_id", id)
			return domain.NewNotFoundError(domain.EntityStation, id)
		}
		log.Error("failed to delete station", "error", err, "station_id", id)
		return NewServiceError(domain.EntityStation, "delete", "failed to delete station", err)
	}

	log.Info("station deleted", "station_id", id)
	return nil
}
