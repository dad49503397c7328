package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation outcomes. A rejected operation is a token the engine refused; error is
// anything else that went wrong.
const (
	StatusSuccess  = "success"
	StatusRejected = "rejected"
	StatusError    = "error"
)

// Engine calls finish in microseconds, so buckets start well below the default ones.
var operationDurationBuckets = []float64{
	0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.25, 1,
}

var generatedLineBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 1000}

// BusinessMetrics records token evaluation counts and durations, plus the size of
// generated dynamic strings.
type BusinessMetrics interface {
	// RecordOperation counts one evaluation. Token parser operations use domain
	// "tokenparser" and names such as "parse_date" or "generate_string".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long an evaluation took.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordGeneratedString records the line and character count of a generated string,
	// separators excluded.
	RecordGeneratedString(ctx context.Context, lines, characters int)
}

type businessMetrics struct {
	operationCounter  metric.Int64Counter
	durationHisto     metric.Float64Histogram
	characterCounter  metric.Int64Counter
	generatedLinesHis metric.Int64Histogram
}

// NewBusinessMetrics creates the token parser instruments on meterProvider, prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Token evaluations by operation and outcome"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Token evaluation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(operationDurationBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	characterCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_generated_characters_total", namespace),
		metric.WithDescription("Characters produced by dynamic string tokens"),
		metric.WithUnit("{character}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated characters counter: %w", err)
	}

	generatedLines, err := meter.Int64Histogram(
		fmt.Sprintf("%s_generated_lines", namespace),
		metric.WithDescription("Lines per generated dynamic string"),
		metric.WithUnit("{line}"),
		metric.WithExplicitBucketBoundaries(generatedLineBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated lines histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter:  operationCounter,
		durationHisto:     durationHisto,
		characterCounter:  characterCounter,
		generatedLinesHis: generatedLines,
	}, nil
}

func operationAttributes(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributeSet(attribute.NewSet(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, status))
}

func (b *businessMetrics) RecordGeneratedString(ctx context.Context, lines, characters int) {
	b.characterCounter.Add(ctx, int64(characters))
	b.generatedLinesHis.Record(ctx, int64(lines))
}

// NoOpBusinessMetrics discards everything. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordGeneratedString(ctx context.Context, lines, characters int) {}
