// Package http provides HTTP handlers for the token parser endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/tokenparser/internal/httputil"
	"github.com/allisson/tokenparser/internal/tokenparser/http/dto"
	"github.com/allisson/tokenparser/internal/tokenparser/usecase"
	customValidation "github.com/allisson/tokenparser/internal/validation"
)

// AliveStatus is the body value of the liveness endpoint.
const AliveStatus = "ALIVE-AND-KICKING"

// TokenParserHandler handles HTTP requests for date and dynamic string tokens.
type TokenParserHandler struct {
	tokenParserUseCase usecase.TokenParserUseCase
	logger             *slog.Logger
}

// NewTokenParserHandler creates a new token parser handler with required dependencies.
func NewTokenParserHandler(
	tokenParserUseCase usecase.TokenParserUseCase,
	logger *slog.Logger,
) *TokenParserHandler {
	return &TokenParserHandler{
		tokenParserUseCase: tokenParserUseCase,
		logger:             logger,
	}
}

// bindToken reads and validates the token query parameter. It writes the error
// response itself and returns false when the request must stop.
func (h *TokenParserHandler) bindToken(c *gin.Context) (string, bool) {
	var req dto.TokenRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", false
	}

	return req.Token, true
}

// AliveHandler reports that the process is serving requests.
// GET /alive
func (h *TokenParserHandler) AliveHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AliveResponse{Status: AliveStatus})
}

// ParseDateTokenHandler evaluates any date token, ranges included.
// GET /parse-date-token?token=[TODAY+1DAY]
// Returns 200 with ParsedToken, plus Start and End for range tokens.
func (h *TokenParserHandler) ParseDateTokenHandler(c *gin.Context) {
	token, ok := h.bindToken(c)
	if !ok {
		return
	}

	value, err := h.tokenParserUseCase.EvaluateDate(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDateValueToResponse(value))
}

// ParseDateRangeTokenHandler evaluates a `[A<->B]` token.
// GET /parse-date-range-token?token=[START-MARCH-2025<->END-MARCH-2025]
func (h *TokenParserHandler) ParseDateRangeTokenHandler(c *gin.Context) {
	token, ok := h.bindToken(c)
	if !ok {
		return
	}

	dateRange, err := h.tokenParserUseCase.ParseDateRange(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDateRangeToResponse(dateRange))
}

// ParseDynamicStringTokenHandler generates the string described by a dynamic string token.
// GET /parse-dynamic-string-token?token=[ALPHA-NUMERIC-10-LINES-2]
func (h *TokenParserHandler) ParseDynamicStringTokenHandler(c *gin.Context) {
	token, ok := h.bindToken(c)
	if !ok {
		return
	}

	value, err := h.tokenParserUseCase.GenerateString(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ParsedTokenResponse{ParsedToken: value})
}
