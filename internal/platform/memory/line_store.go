package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/nextstep/subway-api/internal/store"
)

// LineStore is an in-memory store.LineStore.
type LineStore struct {
	mu     sync.RWMutex
	nextID int64
	lines  []*domain.Line
	byName map[string]int64
	logger *slog.Logger
}

// NewLineStore creates an empty LineStore. IDs start at 1.
func NewLineStore(logger *slog.Logger) *LineStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LineStore{
		nextID: 1,
		byName: make(map[string]int64),
		logger: logger.With(slog.String("component", "memory_line_store")),
	}
}

var _ store.LineStore = (*LineStore)(nil)

// Create implements store.LineStore.
func (s *LineStore) Create(ctx context.Context, line *domain.Line) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := line.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[line.Name]; exists {
		log.Debug("line name already stored", slog.String("name", line.Name))
		return store.ErrLineNameExists
	}

	line.ID = s.nextID
	s.nextID++

	stored := *line
	s.lines = append(s.lines, &stored)
	s.byName[stored.Name] = stored.ID

	log.Debug("line stored", slog.Int64("line_id", stored.ID))
	return nil
}

// GetByID implements store.LineStore.
func (s *LineStore) GetByID(ctx context.Context, id int64) (*domain.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.lines {
		if line.ID == id {
			c := *line
			return &c, nil
		}
	}
	return nil, store.ErrLineNotFound
}

// List implements store.LineStore.
func (s *LineStore) List(ctx context.Context) ([]*domain.Line, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Line, 0, len(s.lines))
	for _, line := range s.lines {
		c := *line
		result = append(result, &c)
	}
	return result, nil
}

// ExistsByName implements store.LineStore.
func (s *LineStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.byName[name]
	return exists, nil
}

// Delete implements store.LineStore.
func (s *LineStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.ID != id {
			continue
		}
		delete(s.byName, line.Name)
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		return nil
	}
	return store.ErrLineNotFound
}
