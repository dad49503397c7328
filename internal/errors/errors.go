// Package errors provides standardized domain errors that express intent rather
// than transport details. Engines and use cases wrap these sentinels, and the
// HTTP layer maps them to status codes.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors shared by every module.
var (
	// ErrInvalidInput indicates the input could not be parsed or failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTooManyRequests indicates the caller exceeded its request budget.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrUnavailable indicates the service is shutting down or not ready.
	ErrUnavailable = errors.New("unavailable")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithKind returns an error that reads as message and matches kind with Is.
func WithKind(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
