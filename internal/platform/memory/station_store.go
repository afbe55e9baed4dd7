package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/nextstep/subway-api/internal/store"
)

// StationStore is an in-memory store.StationStore.
type StationStore struct {
	mu       sync.RWMutex
	nextID   int64
	stations []*domain.Station
	byName   map[string]int64
	logger   *slog.Logger
}

// NewStationStore creates an empty StationStore. IDs start at 1.
func NewStationStore(logger *slog.Logger) *StationStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &StationStore{
		nextID: 1,
		byName: make(map[string]int64),
		logger: logger.With(slog.String("component", "memory_station_store")),
	}
}

var _ store.StationStore = (*StationStore)(nil)

// Create implements store.StationStore.
func (s *StationStore) Create(ctx context.Context, station *domain.Station) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := station.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[station.Name]; exists {
		log.Debug("station name already stored", slog.String("name", station.Name))
		return store.ErrStationNameExists
	}

	station.ID = s.nextID
	s.nextID++

	stored := *station
	s.stations = append(s.stations, &stored)
	s.byName[stored.Name] = stored.ID

	log.Debug("station stored", slog.Int64("station_id", stored.ID))
	return nil
}

// List implements store.StationStore.
func (s *StationStore) List(ctx context.Context) ([]*domain.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Station, 0, len(s.stations))
	for _, station := range s.stations {
		c := *station
		result = append(result, &c)
	}
	return result, nil
}

// ExistsByName implements store.StationStore.
func (s *StationStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.byName[name]
	return exists, nil
}

// Delete implements store.StationStore.
func (s *StationStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, station := range s.stations {
		if station.ID != id {
			continue
		}
		delete(s.byName, station.Name)
		s.stations = append(s.stations[:i], s.stations[i+1:]...)
		return nil
	}
	return store.ErrStationNotFound
}
