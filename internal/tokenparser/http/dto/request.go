// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"fmt"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/tokenparser/internal/validation"
)

// MaxTokenLength bounds the size of a token accepted over HTTP.
const MaxTokenLength = 1024

// TokenRequest carries the token query parameter shared by every parse endpoint.
type TokenRequest struct {
	Token string `form:"token"`
}

// Validate checks that a usable, bracketed token was supplied. Grammar checks
// inside the brackets belong to the engine.
func (r *TokenRequest) Validate() error {
	return validation.Validate(r.Token,
		validation.Required.Error("token is required"),
		customValidation.NotBlank.Error("token is required"),
		validation.RuneLength(1, MaxTokenLength).
			Error(fmt.Sprintf("token exceeds maximum length of %d characters", MaxTokenLength)),
		customValidation.NoWhitespace.Error("token must not have leading or trailing whitespace"),
		customValidation.Bracketed.Error("token must be enclosed in square brackets"),
	)
}
