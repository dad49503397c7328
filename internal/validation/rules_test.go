package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/tokenparser/internal/errors"
)

func TestNoWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "no whitespace",
			input:     "[TODAY]",
			shouldErr: false,
		},
		{
			name:      "leading whitespace",
			input:     " [TODAY]",
			shouldErr: true,
		},
		{
			name:      "trailing whitespace",
			input:     "[TODAY] ",
			shouldErr: true,
		},
		{
			name:      "trailing newline",
			input:     "[TODAY]\n",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NoWhitespace.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid string",
			input:     "[ALPHA-5]",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBracketed(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{name: "token", input: "[TODAY]", shouldErr: false},
		{name: "empty brackets", input: "[]", shouldErr: false},
		{name: "empty string is left to NotBlank", input: "", shouldErr: false},
		{name: "missing close", input: "[TODAY", shouldErr: true},
		{name: "missing open", input: "TODAY]", shouldErr: true},
		{name: "single bracket", input: "[", shouldErr: true},
		{name: "no brackets", input: "TODAY", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Bracketed.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("keeps message and marks invalid input", func(t *testing.T) {
		err := validation.Validate("   ", NotBlank.Error("token is required"))
		assert.Error(t, err)

		wrapped := WrapValidationError(err)
		assert.Equal(t, "token is required", wrapped.Error())
		assert.True(t, apperrors.Is(wrapped, apperrors.ErrInvalidInput))
	})
}
