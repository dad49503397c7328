// Package usecase exposes the token parser engine to the host layers (HTTP, CLI).
package usecase

import (
	"context"
	"time"

	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// TokenParserUseCase defines the operations available to the HTTP API and the CLI.
type TokenParserUseCase interface {
	// ParseDate evaluates a single date token (full form or month boundary).
	ParseDate(ctx context.Context, token string) (time.Time, error)

	// ParseDateRange evaluates a `[A<->B]` token into its two dates.
	ParseDateRange(ctx context.Context, token string) (domain.DateRange, error)

	// EvaluateDate accepts any date token form, ranges included.
	EvaluateDate(ctx context.Context, token string) (domain.DateValue, error)

	// GenerateString evaluates a dynamic string token.
	GenerateString(ctx context.Context, token string) (string, error)
}
