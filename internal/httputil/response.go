// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/tokenparser/internal/errors"
	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

// ErrorResponse is the error body of every endpoint.
type ErrorResponse struct {
	Error string `json:"Error"`
}

// InvalidTokenMessage renders err with the invalid token phrase in front, unless the
// message already starts with it. A wrapped ParseError is rendered on its own.
func InvalidTokenMessage(err error) string {
	var pe *domain.ParseError
	if apperrors.As(err, &pe) {
		return pe.Error()
	}

	msg := err.Error()
	if strings.HasPrefix(msg, domain.ErrInvalidTokenFormat) {
		return msg
	}
	return domain.ErrInvalidTokenFormat + ": " + msg
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON error body.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{Error: InvalidTokenMessage(err)}

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{Error: "The requested resource was not found"}

	case apperrors.Is(err, apperrors.ErrTooManyRequests):
		statusCode = http.StatusTooManyRequests
		errorResponse = ErrorResponse{Error: "Too many requests. Please retry after the specified delay."}

	case apperrors.Is(err, apperrors.ErrUnavailable):
		statusCode = http.StatusServiceUnavailable
		errorResponse = ErrorResponse{Error: "The service is unavailable"}

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{Error: "An internal error occurred"}
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleValidationErrorGin writes a 400 Bad Request response for rejected request parameters.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: InvalidTokenMessage(err)})
}

// MakeJSONResponse writes body as JSON with the given status code on a plain http.ResponseWriter.
func MakeJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode json response", slog.Any("error", err))
	}
}
