package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a station with the same name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrStationNotFound indicates that the requested station does not exist in the store.
	ErrStationNotFound = fmt.Errorf("%w: station", ErrNotFound)

	// ErrLineNotFound indicates that the requested line does not exist in the store.
	ErrLineNotFound = fmt.Errorf("%w: line", ErrNotFound)

	// ErrStationNameExists indicates that a station with the given name already exists.
	ErrStationNameExists = fmt.Errorf("%w: station name", ErrDuplicate)

	// ErrLineNameExists indicates that a line with the given name already exists.
	ErrLineNameExists = fmt.Errorf("%w: line name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
