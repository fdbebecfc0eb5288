package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", ValidationFailed("email", "email and password required"), ErrValidation},
		{"unauthorized", Unauthorized("invalid credentials"), ErrAuth},
		{"not found", NotFound("not found"), ErrNotFound},
		{"conflict", Conflict("email already in use"), ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestAppError_SurvivesWrapping(t *testing.T) {
	inner := Conflict("email already in use")
	wrapped := fmt.Errorf("service/auth: creating user: %w", inner)

	if !errors.Is(wrapped, ErrConflict) {
		t.Error("wrapped error should still match ErrConflict")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("errors.As should extract *AppError from the chain")
	}
	if appErr.Message != "email already in use" {
		t.Errorf("Message = %q, want %q", appErr.Message, "email already in use")
	}
}

func TestAppError_ErrorReturnsMessage(t *testing.T) {
	err := NotFound("user not found")
	if err.Error() != "user not found" {
		t.Errorf("Error() = %q, want %q", err.Error(), "user not found")
	}
}
