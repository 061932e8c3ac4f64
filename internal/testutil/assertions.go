package testutil

import (
	"errors"
	"testing"

	apperrors "finanzapp/internal/errors"
)

// asAppError fails the test unless err unwraps to an *AppError.
func asAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatal("expected AppError, got nil")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	appErr := asAppError(t, err)
	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertAppErrorIs checks that err carries the same code, status and message
// as the sentinel want. Use it where several sentinels share a code.
func AssertAppErrorIs(t *testing.T, err error, want *apperrors.AppError) {
	t.Helper()

	appErr := asAppError(t, err)
	if appErr.Code != want.Code || appErr.StatusCode != want.StatusCode || appErr.Message != want.Message {
		t.Errorf("expected %s (%d, %q), got %s (%d, %q)",
			want.Code, want.StatusCode, want.Message,
			appErr.Code, appErr.StatusCode, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
