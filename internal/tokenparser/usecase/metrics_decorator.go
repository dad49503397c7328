package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/allisson/tokenparser/internal/metrics"
	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

const metricsDomain = "tokenparser"

// tokenParserUseCaseWithMetrics decorates TokenParserUseCase with metrics instrumentation.
type tokenParserUseCaseWithMetrics struct {
	next    TokenParserUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenParserUseCaseWithMetrics wraps a TokenParserUseCase with metrics recording.
func NewTokenParserUseCaseWithMetrics(
	useCase TokenParserUseCase,
	m metrics.BusinessMetrics,
) TokenParserUseCase {
	return &tokenParserUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (t *tokenParserUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := metrics.StatusSuccess
	switch {
	case domain.IsParseError(err):
		status = metrics.StatusRejected
	case err != nil:
		status = metrics.StatusError
	}

	t.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	t.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// ParseDate records metrics for single date token evaluation.
func (t *tokenParserUseCaseWithMetrics) ParseDate(ctx context.Context, token string) (time.Time, error) {
	start := time.Now()
	date, err := t.next.ParseDate(ctx, token)
	t.record(ctx, "parse_date", start, err)
	return date, err
}

// ParseDateRange records metrics for date range token evaluation.
func (t *tokenParserUseCaseWithMetrics) ParseDateRange(
	ctx context.Context,
	token string,
) (domain.DateRange, error) {
	start := time.Now()
	dateRange, err := t.next.ParseDateRange(ctx, token)
	t.record(ctx, "parse_date_range", start, err)
	return dateRange, err
}

// EvaluateDate records metrics for dispatched date token evaluation.
func (t *tokenParserUseCaseWithMetrics) EvaluateDate(
	ctx context.Context,
	token string,
) (domain.DateValue, error) {
	start := time.Now()
	value, err := t.next.EvaluateDate(ctx, token)
	t.record(ctx, "evaluate_date", start, err)
	return value, err
}

// GenerateString records metrics for dynamic string generation.
func (t *tokenParserUseCaseWithMetrics) GenerateString(ctx context.Context, token string) (string, error) {
	start := time.Now()
	value, err := t.next.GenerateString(ctx, token)
	t.record(ctx, "generate_string", start, err)
	if err == nil {
		lines := strings.Count(value, domain.LineSeparator) + 1
		characters := utf8.RuneCountInString(value) - (lines-1)*len(domain.LineSeparator)
		t.metrics.RecordGeneratedString(ctx, lines, characters)
	}
	return value, err
}
