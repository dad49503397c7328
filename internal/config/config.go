// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of the HTTP servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// RateLimitEnabled indicates whether per-IP rate limiting of the parse endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second for each client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for each client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// DynamicStringMaxSize caps the characters a dynamic string token may generate.
	// Zero disables the cap.
	DynamicStringMaxSize int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Rate Limiting (IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "tokenparser"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Token engine
		DynamicStringMaxSize: env.GetInt("DYNAMIC_STRING_MAX_SIZE", 1048576),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file from the current directory up to the root
// directory and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
