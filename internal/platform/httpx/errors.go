package httpx

import (
	"errors"
	"net/http"

	"github.com/accesshub/accesshub/internal/shared"
)

// StatusFor maps a domain error to the HTTP status RespondError would use.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrUnauthenticated), errors.Is(err, shared.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, shared.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps domain errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	switch StatusFor(err) {
	case http.StatusBadRequest:
		Problem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	case http.StatusUnauthorized:
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case http.StatusForbidden:
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	case http.StatusNotFound:
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case http.StatusConflict:
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", err.Error())
	}
}
