// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/tokenparser/internal/config"
	"github.com/allisson/tokenparser/internal/http"
	"github.com/allisson/tokenparser/internal/metrics"
	tokenparserHTTP "github.com/allisson/tokenparser/internal/tokenparser/http"
	tokenparserService "github.com/allisson/tokenparser/internal/tokenparser/service"
	tokenparserUseCase "github.com/allisson/tokenparser/internal/tokenparser/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config  *config.Config
	version string

	// Lifetime of background work started by components (rate limiter cleanup).
	ctx    context.Context
	cancel context.CancelFunc

	// Infrastructure
	logger          *slog.Logger
	logOutput       io.Writer
	randomSource    tokenparserService.RandomSource
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Token parser
	dateParser         *tokenparserService.DateParser
	stringGenerator    *tokenparserService.StringGenerator
	tokenParserUseCase tokenparserUseCase.TokenParserUseCase
	tokenParserHandler *tokenparserHTTP.TokenParserHandler
	openAPIHandler     *tokenparserHTTP.OpenAPIHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                     sync.Mutex
	loggerInit             sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	dateParserInit         sync.Once
	stringGeneratorInit    sync.Once
	tokenParserUseCaseInit sync.Once
	tokenParserHandlerInit sync.Once
	openAPIHandlerInit     sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once
	initErrors             map[string]error
}

// Option configures a Container.
type Option func(*Container)

// WithVersion sets the application version reported by the OpenAPI document.
func WithVersion(version string) Option {
	return func(c *Container) {
		c.version = version
	}
}

// WithLogOutput redirects the logger output, stdout by default.
func WithLogOutput(w io.Writer) Option {
	return func(c *Container) {
		c.logOutput = w
	}
}

// WithRandomSource replaces the crypto backed source of the dynamic string engine.
func WithRandomSource(source tokenparserService.RandomSource) Option {
	return func(c *Container) {
		c.randomSource = source
	}
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config, opts ...Option) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Container{
		config:     cfg,
		version:    "dev",
		ctx:        ctx,
		cancel:     cancel,
		logOutput:  os.Stdout,
		initErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown stops background work and flushes the metrics provider.
// Servers are shut down by their runner.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initMetricsProvider creates the Prometheus backed provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates business metrics on top of the provider.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initHTTPServer creates the API server and configures its router.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	tokenParserHandler, err := c.TokenParserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get token parser handler for http server: %w", err)
	}

	openAPIHandler, err := c.OpenAPIHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get openapi handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(c.ctx, c.config, tokenParserHandler, openAPIHandler, provider)

	return server, nil
}

// initMetricsServer creates the metrics server when metrics are enabled.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
