package store

import (
	"context"

	"github.com/nextstep/subway-api/internal/domain"
)

// StationStore defines the interface for station data persistence.
type StationStore interface {
	// Create saves a new station and assigns its ID.
	// Returns ErrStationNameExists if the name is already taken. Implementations
	// must make the uniqueness check and the insert atomic.
	Create(ctx context.Context, station *domain.Station) error

	// List returns all stations in creation order.
	// Returns an empty slice if there are none.
	List(ctx context.Context) ([]*domain.Station, error)

	// ExistsByName reports whether a station with exactly this name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Delete removes the station with the given ID.
	// Returns ErrStationNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
