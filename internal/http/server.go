// Package http provides the HTTP servers and the middleware shared by their routers.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/tokenparser/internal/config"
	"github.com/allisson/tokenparser/internal/metrics"
	tokenparserHTTP "github.com/allisson/tokenparser/internal/tokenparser/http"
)

// Server represents the token parser API server.
type Server struct {
	server       *http.Server
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router with middleware and routes.
// ctx bounds background work started by middleware, such as rate limiter cleanup.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	tokenParserHandler *tokenparserHTTP.TokenParserHandler,
	openAPIHandler *tokenparserHTTP.OpenAPIHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()

	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	router.Use(RecoveryMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)
	router.GET("/alive", tokenParserHandler.AliveHandler)

	if openAPIHandler != nil {
		router.GET("/swagger/v1/swagger.json", openAPIHandler.JSONHandler)
		router.GET("/swagger/v1/swagger.yaml", openAPIHandler.YAMLHandler)
	}

	parse := router.Group("")
	if cfg.RateLimitEnabled {
		parse.Use(IPRateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		parse.GET("/parse-date-token", tokenParserHandler.ParseDateTokenHandler)
		parse.GET("/parse-date-range-token", tokenParserHandler.ParseDateRangeTokenHandler)
		parse.GET("/parse-dynamic-string-token", tokenParserHandler.ParseDynamicStringTokenHandler)
	}

	router.NoRoute(notFoundHandler(s.logger))

	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil {
		return fmt.Errorf("router is not configured")
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server. Readiness reports not ready from
// this point on.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is up.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server accepts traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
