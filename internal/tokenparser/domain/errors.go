package domain

import (
	"strings"

	"github.com/allisson/tokenparser/internal/errors"
)

// ErrInvalidTokenFormat is the contract phrase every parse failure starts with.
// Callers match on it, so the text must not change.
const ErrInvalidTokenFormat = "Invalid string token format"

// ParseError is the single error kind of the token engine.
type ParseError struct {
	Token  string
	Reason string
}

// NewParseError builds a ParseError for token with an optional reason.
func NewParseError(token, reason string) *ParseError {
	return &ParseError{Token: token, Reason: reason}
}

// Error returns "Invalid string token format[: reason][: token]".
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidTokenFormat)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Token != "" {
		b.WriteString(": ")
		b.WriteString(e.Token)
	}
	return b.String()
}

// Unwrap ties parse failures to the shared invalid input sentinel.
func (e *ParseError) Unwrap() error {
	return errors.ErrInvalidInput
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
