// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tokenparser/internal/errors"
	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// WrapValidationError marks a validation error as domain ErrInvalidInput, keeping its message.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.WithKind(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Bracketed validates that a string is wrapped in a single pair of token brackets.
// Empty strings pass; combine with NotBlank to require a value.
var Bracketed = validation.NewStringRuleWithError(
	func(s string) bool {
		return len(s) >= 2 && s[0] == domain.TokenOpen && s[len(s)-1] == domain.TokenClose
	},
	validation.NewError("validation_bracketed", "must be enclosed in square brackets"),
)
