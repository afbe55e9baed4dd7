package api

import (
	"errors"
	"net/http"

	"github.com/nextstep/subway-api/internal/api/shared"
	"github.com/nextstep/subway-api/internal/domain"
)

// genericErrorMessage is sent for every error the client cannot act on.
const genericErrorMessage = "An unexpected error occurred"

// MapError maps an error returned by a service to an HTTP status code and a
// client-facing message. It has no side effects.
//
// Duplicate names and invalid input are client errors (400), missing entities
// are 404. Anything unrecognised is a 500 with a generic message so internal
// details never leak.
func MapError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, genericErrorMessage
	}

	var (
		dupErr        *domain.DuplicateNameError
		notFoundErr   *domain.NotFoundError
		validationErr *domain.ValidationError
	)
	switch {
	case errors.As(err, &dupErr):
		return http.StatusBadRequest, dupErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	default:
		return http.StatusInternalServerError, genericErrorMessage
	}
}

// HandleAPIError writes the error response for err. defaultMsg, when set,
// replaces the message of 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status, message := MapError(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
