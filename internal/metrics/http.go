package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// tokenKinds maps the parse routes to the kind of token they accept. Other routes
// are recorded with token_kind "none".
var tokenKinds = map[string]string{
	"/parse-date-token":           "date",
	"/parse-date-range-token":     "date_range",
	"/parse-dynamic-string-token": "dynamic_string",
}

var requestDurationBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5}

var tokenLengthBuckets = []float64{8, 16, 32, 64, 128, 256, 512, 1024}

type httpMetrics struct {
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
	tokenLength    metric.Int64Histogram
}

func newHTTPMetrics(meter metric.Meter, namespace string) (*httpMetrics, error) {
	requestCounter, counterErr := meter.Int64Counter(
		fmt.Sprintf("%s_http_requests_total", namespace),
		metric.WithDescription("HTTP requests by route, token kind and status"),
		metric.WithUnit("{request}"),
	)
	durationHisto, durationErr := meter.Float64Histogram(
		fmt.Sprintf("%s_http_request_duration_seconds", namespace),
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(requestDurationBuckets...),
	)
	tokenLength, lengthErr := meter.Int64Histogram(
		fmt.Sprintf("%s_http_token_length", namespace),
		metric.WithDescription("Length of the token query parameter on parse routes"),
		metric.WithUnit("{character}"),
		metric.WithExplicitBucketBoundaries(tokenLengthBuckets...),
	)
	if err := errors.Join(counterErr, durationErr, lengthErr); err != nil {
		return nil, err
	}

	return &httpMetrics{
		requestCounter: requestCounter,
		durationHisto:  durationHisto,
		tokenLength:    tokenLength,
	}, nil
}

// HTTPMetricsMiddleware records request count and duration labelled with method,
// route pattern, token_kind and status_code. Parse routes also record the length
// of the token they received. If the instruments cannot be created the middleware
// passes requests through unrecorded.
func HTTPMetricsMiddleware(meterProvider metric.MeterProvider, namespace string) gin.HandlerFunc {
	metrics, err := newHTTPMetrics(meterProvider.Meter(namespace), namespace)
	if err != nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		path := sanitizePath(c.FullPath())
		kind := tokenKind(path)

		attrs := metric.WithAttributeSet(attribute.NewSet(
			attribute.String("method", c.Request.Method),
			attribute.String("path", path),
			attribute.String("token_kind", kind),
			attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
		))
		metrics.requestCounter.Add(ctx, 1, attrs)
		metrics.durationHisto.Record(ctx, time.Since(start).Seconds(), attrs)

		if token, ok := c.GetQuery("token"); ok && kind != "none" {
			metrics.tokenLength.Record(ctx, int64(utf8.RuneCountInString(token)),
				metric.WithAttributes(attribute.String("token_kind", kind)))
		}
	}
}

// sanitizePath maps an unmatched route to "unknown".
func sanitizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}

func tokenKind(path string) string {
	if kind, ok := tokenKinds[path]; ok {
		return kind
	}
	return "none"
}
