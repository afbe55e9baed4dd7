package store

import (
	"context"

	"github.com/nextstep/subway-api/internal/domain"
)

// LineStore defines the interface for line data persistence.
type LineStore interface {
	// Create saves a new line and assigns its ID.
	// Returns ErrLineNameExists if the name is already taken.
	Create(ctx context.Context, line *domain.Line) error

	// GetByID retrieves a line by its ID.
	// Returns ErrLineNotFound if the line does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Line, error)

	// List returns all lines in creation order.
	List(ctx context.Context) ([]*domain.Line, error)

	// ExistsByName reports whether a line with exactly this name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Delete removes the line with the given ID.
	// Returns ErrLineNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
