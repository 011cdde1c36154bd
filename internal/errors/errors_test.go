package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("bad value: %d", 42)
	if err.Error() != "bad value: 42" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad value: 42")
	}
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As failed to match ConfigError")
	}
}

func TestInvalidInputError(t *testing.T) {
	t.Parallel()

	err := NewInvalidInputError("a", 6, "not a Fibonacci number")
	want := "invalid input 'a' (6): not a Fibonacci number"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !IsInvalidInput(err) {
		t.Error("IsInvalidInput() = false, want true")
	}

	wrapped := WrapError(err, "simulating multiplication")
	if !IsInvalidInput(wrapped) {
		t.Error("IsInvalidInput() must see through wrapped errors")
	}
	if IsInvalidInput(errors.New("plain")) {
		t.Error("IsInvalidInput() matched an unrelated error")
	}
}

func TestServerError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("listen failed")
	err := NewServerError("server start", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to reach the wrapped cause")
	}
	if err.Error() != "server start: listen failed" {
		t.Errorf("Error() = %q", err.Error())
	}

	bare := NewServerError("shutdown", nil)
	if bare.Error() != "shutdown" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "shutdown")
	}
}

func TestWrapError_NilPassthrough(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil, ...) must return nil")
	}

	base := errors.New("boom")
	wrapped := WrapError(base, "step %d", 3)
	if wrapped.Error() != "step 3: boom" {
		t.Errorf("wrapped message = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitErrorGeneric},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"invalid input", NewInvalidInputError("b", 9, "not Fibonacci"), ExitErrorInput},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), ExitErrorCanceled},
	}
	for _, tc := range cases {
		if got := ExitCodeFor(tc.err); got != tc.want {
			t.Errorf("%s: ExitCodeFor() = %d, want %d", tc.name, got, tc.want)
		}
	}
}
