package service

import (
	"errors"
	"fmt"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/metrics"
)

// ServiceError wraps unexpected errors from a service with context.
// Expected conditions (duplicate names, missing entities, invalid input) are
// returned as domain errors instead and never wrapped in a ServiceError.
type ServiceError struct {
	// Entity is the kind of entity involved ("station", "line")
	Entity string
	// Operation is the operation that failed (e.g., "create", "delete")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Entity, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Entity, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(entity, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// OperationRecorder receives one observation per service operation.
// *metrics.Metrics implements it.
type OperationRecorder interface {
	ObserveOperation(entity, operation, result string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveOperation(string, string, string) {}

// resultOf classifies an operation outcome for the recorder.
func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrDuplicateName):
		return metrics.ResultDuplicate
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrValidation):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
