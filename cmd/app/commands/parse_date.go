package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/tokenparser/internal/tokenparser/http/dto"
	tokenparserUseCase "github.com/allisson/tokenparser/internal/tokenparser/usecase"
)

// RunParseDate evaluates a date token, either a single date or a range, and writes the
// result in text or JSON format.
func RunParseDate(
	ctx context.Context,
	useCase tokenparserUseCase.TokenParserUseCase,
	logger *slog.Logger,
	w io.Writer,
	token string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	value, err := useCase.EvaluateDate(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to parse date token: %w", err)
	}

	response := dto.MapDateValueToResponse(value)
	if format == "json" {
		if err := writeJSON(w, response); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w, response.ParsedToken); err != nil {
		return err
	}

	logger.Debug("date token parsed", slog.Bool("range", value.IsRange()))
	return nil
}
