package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/tokenparser/internal/app"
	"github.com/allisson/tokenparser/internal/config"
)

// runnable is a server started and stopped by RunServer.
type runnable interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type namedServer struct {
	name   string
	server runnable
}

// RunServer starts the API server and, when enabled, the metrics server.
// Blocks until receiving SIGINT/SIGTERM or until one of the servers fails, then shuts
// every server down within the configured shutdown timeout.
func RunServer(ctx context.Context, version string) error {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on log level
	gin.SetMode(cfg.GetGinMode())

	// Create DI container
	container := app.NewContainer(cfg, app.WithVersion(version))

	// Get logger from container
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	// Ensure cleanup on exit
	defer closeContainer(container, logger)

	// Get HTTP server from container (this initializes all dependencies)
	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// Get Metrics server from container
	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	servers := []namedServer{{name: "api server", server: server}}
	if metricsServer != nil {
		servers = append(servers, namedServer{name: "metrics server", server: metricsServer})
	}

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, logger, cfg.ShutdownTimeout, servers)
}

// serve runs the servers until ctx is done or one of them fails.
func serve(ctx context.Context, logger *slog.Logger, shutdownTimeout time.Duration, servers []namedServer) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		g.Go(func() error {
			if err := s.server.Start(gctx); err != nil {
				logger.Error("server error, initiating shutdown", slog.String("server", s.name), slog.Any("error", err))
				return fmt.Errorf("%s error: %w", s.name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var shutdownErrors []error
		for _, s := range servers {
			if err := s.server.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("%s shutdown: %w", s.name, err))
			}
		}
		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
