package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/tokenparser/internal/errors"
	"github.com/allisson/tokenparser/internal/httputil"
)

// CustomLoggerMiddleware logs one structured line per request with the request ID
// assigned by the requestid middleware.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		logger.Log(c.Request.Context(), level, "http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// RecoveryMiddleware turns a panic into a 500 response with the standard error body.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			slog.String("request_id", requestid.Get(c)),
			slog.Any("panic", recovered),
		)
		httputil.MakeJSONResponse(c.Writer, http.StatusInternalServerError, httputil.ErrorResponse{
			Error: "An internal error occurred",
		})
		c.Abort()
	})
}

// notFoundHandler answers unknown routes.
func notFoundHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrNotFound, c.Request.URL.Path), logger)
	}
}
