package usecase

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/allisson/tokenparser/internal/errors"
	"github.com/allisson/tokenparser/internal/tokenparser/domain"
	"github.com/allisson/tokenparser/internal/tokenparser/service"
)

// tokenParserUseCase implements TokenParserUseCase on top of the date and string engines.
type tokenParserUseCase struct {
	dateParser      service.DateTokenParser
	stringGenerator service.StringTokenGenerator
	logger          *slog.Logger
}

// ParseDate evaluates a single date token.
func (t *tokenParserUseCase) ParseDate(ctx context.Context, token string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, apperrors.Wrap(err, "token evaluation aborted")
	}

	date, err := t.dateParser.ParseDateToken(token)
	if err != nil {
		t.logger.DebugContext(ctx, "date token rejected", slog.String("token", token), slog.Any("error", err))
		return time.Time{}, err
	}

	t.logger.DebugContext(ctx, "date token parsed", slog.String("token", token), slog.Time("date", date))
	return date, nil
}

// ParseDateRange evaluates a date range token.
func (t *tokenParserUseCase) ParseDateRange(ctx context.Context, token string) (domain.DateRange, error) {
	if err := ctx.Err(); err != nil {
		return domain.DateRange{}, apperrors.Wrap(err, "token evaluation aborted")
	}

	dateRange, err := t.dateParser.ParseDateRangeToken(token)
	if err != nil {
		t.logger.DebugContext(ctx, "date range token rejected", slog.String("token", token), slog.Any("error", err))
		return domain.DateRange{}, err
	}

	t.logger.DebugContext(ctx, "date range token parsed",
		slog.String("token", token),
		slog.Time("start", dateRange.Start),
		slog.Time("end", dateRange.End),
	)
	return dateRange, nil
}

// EvaluateDate dispatches token to the matching date evaluator.
func (t *tokenParserUseCase) EvaluateDate(ctx context.Context, token string) (domain.DateValue, error) {
	if err := ctx.Err(); err != nil {
		return domain.DateValue{}, apperrors.Wrap(err, "token evaluation aborted")
	}

	value, err := t.dateParser.Evaluate(token)
	if err != nil {
		t.logger.DebugContext(ctx, "date token rejected", slog.String("token", token), slog.Any("error", err))
		return domain.DateValue{}, err
	}

	t.logger.DebugContext(ctx, "date token evaluated",
		slog.String("token", token),
		slog.Bool("range", value.IsRange()),
	)
	return value, nil
}

// GenerateString evaluates a dynamic string token. The generated value is never logged.
func (t *tokenParserUseCase) GenerateString(ctx context.Context, token string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.Wrap(err, "token evaluation aborted")
	}

	value, err := t.stringGenerator.ParseDynamicStringToken(token)
	if err != nil {
		t.logger.DebugContext(ctx, "dynamic string token rejected", slog.String("token", token), slog.Any("error", err))
		return "", err
	}

	t.logger.DebugContext(ctx, "dynamic string token generated",
		slog.String("token", token),
		slog.Int("length", len(value)),
	)
	return value, nil
}

// NewTokenParserUseCase creates a new TokenParserUseCase.
func NewTokenParserUseCase(
	dateParser service.DateTokenParser,
	stringGenerator service.StringTokenGenerator,
	logger *slog.Logger,
) TokenParserUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &tokenParserUseCase{
		dateParser:      dateParser,
		stringGenerator: stringGenerator,
		logger:          logger,
	}
}
