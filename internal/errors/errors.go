// Package apperrors defines structured application error types, allowing
// for a clear distinction between error classes (configuration, invalid
// simulator input, server) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that wrap a cause implement Unwrap() so errors.Is() and
// errors.As() work across the chain.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates invalid simulation input.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidInputError reports an operand the analog simulator cannot accept,
// typically a value absent from its Fibonacci table. Unlike the fractal
// multiplier's plain-product fallback, simulator operations never degrade
// silently: they fail with this error class immediately and are never
// retried internally.
type InvalidInputError struct {
	// Field is the name of the offending operand ("a", "b", "voltage").
	Field string
	// Value is the rejected value, kept for diagnostics.
	Value any
	// Message describes why the value was rejected.
	Message string
}

// Error returns the error message for an InvalidInputError.
func (e InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input '%s' (%v): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// NewInvalidInputError creates a new InvalidInputError.
//
// Parameters:
//   - field: The name of the offending operand.
//   - value: The rejected value.
//   - message: A description of why the value was rejected.
//
// Returns:
//   - error: A new InvalidInputError instance.
func NewInvalidInputError(field string, value any, message string) error {
	return InvalidInputError{Field: field, Value: value, Message: message}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target InvalidInputError
	return errors.As(err, &target)
}

// ServerError represents errors that occur in the HTTP server component.
// It wraps an underlying error with additional context specific to the
// server operation.
type ServerError struct {
	// Message is a descriptive message about the server error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ServerError, combining the
// descriptive message and the underlying cause if present.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError with a message and optional cause.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap() and checked with
// errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the application exit code it should
// terminate with.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr):
		return ExitErrorConfig
	case IsInvalidInput(err):
		return ExitErrorInput
	default:
		return ExitErrorGeneric
	}
}
