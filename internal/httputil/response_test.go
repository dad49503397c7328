package httputil

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/tokenparser/internal/errors"
	"github.com/allisson/tokenparser/internal/tokenparser/domain"
)

func TestMakeJSONResponse(t *testing.T) {
	tests := []struct {
		name         string
		body         interface{}
		statusCode   int
		expectedBody string
	}{
		{
			name:         "alive response",
			body:         map[string]string{"Status": "ALIVE-AND-KICKING"},
			statusCode:   http.StatusOK,
			expectedBody: `{"Status":"ALIVE-AND-KICKING"}`,
		},
		{
			name:         "error response",
			body:         ErrorResponse{Error: "An internal error occurred"},
			statusCode:   http.StatusInternalServerError,
			expectedBody: `{"Error":"An internal error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			MakeJSONResponse(w, tt.statusCode, tt.body)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestInvalidTokenMessage(t *testing.T) {
	assert.Equal(t,
		"Invalid string token format: token is required",
		InvalidTokenMessage(errors.New("token is required")),
	)
	assert.Equal(t,
		"Invalid string token format: Invalid length in token: [ALPHA-0]",
		InvalidTokenMessage(domain.NewParseError("[ALPHA-0]", "Invalid length in token")),
	)
}

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "parse error",
			err:          domain.NewParseError("[FOO]", "unrecognised date token"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"Error":"Invalid string token format: unrecognised date token: [FOO]"}`,
		},
		{
			name:         "wrapped parse error",
			err:          apperrors.Wrap(domain.NewParseError("[FOO]", ""), "evaluate"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"Error":"Invalid string token format: [FOO]"}`,
		},
		{
			name:         "invalid input",
			err:          apperrors.WithKind(apperrors.ErrInvalidInput, "token is required"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"Error":"Invalid string token format: token is required"}`,
		},
		{
			name:         "not found",
			err:          apperrors.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"Error":"The requested resource was not found"}`,
		},
		{
			name:         "too many requests",
			err:          apperrors.ErrTooManyRequests,
			expectedCode: http.StatusTooManyRequests,
			expectedBody: `{"Error":"Too many requests. Please retry after the specified delay."}`,
		},
		{
			name:         "unavailable",
			err:          apperrors.ErrUnavailable,
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"Error":"The service is unavailable"}`,
		},
		{
			name:         "internal error hides details",
			err:          errors.New("entropy exhausted"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"Error":"An internal error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleErrorGin(c, nil, nil)

	assert.Equal(t, 0, w.Body.Len())
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleValidationErrorGin(c, errors.New("token is required"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"Error":"Invalid string token format: token is required"}`, w.Body.String())
}
