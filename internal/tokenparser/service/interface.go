// Package service implements the token engines: a date token parser and a dynamic
// string generator. Both are pure, hold no mutable state of their own and are safe
// for concurrent use.
package service

import (
	"time"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// DateTokenParser evaluates bracketed date tokens.
type DateTokenParser interface {
	IsValidDateToken(token string) bool
	ParseDateToken(token string) (time.Time, error)
	ParseDateRangeToken(token string) (domain.DateRange, error)
	Evaluate(token string) (domain.DateValue, error)
}

// StringTokenGenerator evaluates bracketed dynamic string tokens.
type StringTokenGenerator interface {
	IsValidDynamicStringToken(token string) bool
	ParseCharacterClassSpec(token string) (domain.CharacterClassSpec, error)
	ParseDynamicStringToken(token string) (string, error)
}

// RandomSource yields uniformly distributed integers in [0, n). Implementations
// must be safe for concurrent use.
type RandomSource interface {
	IntN(n int) (int, error)
}
