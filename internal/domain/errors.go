// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrDuplicateName is returned when a name is already used by another
	// entity of the same kind.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)

// Entity kinds used in error messages.
const (
	EntityStation = "station"
	EntityLine    = "line"
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. If err is nil the
// error wraps ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation for every ValidationError, whatever it wraps.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateNameError is returned when creating an entity whose name is
// already taken by another entity of the same kind.
type DuplicateNameError struct {
	Entity string
	Name   string
}

// NewDuplicateNameError creates a DuplicateNameError.
func NewDuplicateNameError(entity, name string) *DuplicateNameError {
	return &DuplicateNameError{Entity: entity, Name: name}
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s name already exists: %s", e.Entity, e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NotFoundError is returned when an entity referenced by ID does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
