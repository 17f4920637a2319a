package shared

import "errors"

var (
	// ErrInvalidInput indicates a malformed or failed-validation request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated indicates a missing or invalid identity assertion.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates the caller's role does not allow the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the record is not in a state that permits the mutation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
