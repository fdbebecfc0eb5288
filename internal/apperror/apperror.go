// Package apperror defines the domain error taxonomy shared by both services.
//
// Services return these errors; the HTTP handler boundary translates them to
// status codes (validation → 400, auth → 401, not found → 404, conflict → 409).
// There is deliberately no "forbidden" error: an ownership mismatch must be
// indistinguishable from a missing resource, so it is reported as not found.
package apperror

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("unauthorized")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// AppError carries a client-safe message alongside the sentinel it wraps.
// The message is what ends up in the {"error": ...} response body.
type AppError struct {
	Err     error
	Message string
	Field   string // optional: input field that caused a validation failure
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationFailed reports malformed or missing input.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unauthorized reports bad credentials or an invalid/missing token.
// Callers use one generic message for every credential failure so clients
// cannot tell which part was wrong.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrAuth,
		Message: message,
	}
}

// NotFound reports an absent resource. Also used when the resource exists
// but belongs to a different owner.
func NotFound(message string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}
