package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/tokenparser/internal/tokenparser/http/dto"
	tokenparserUseCase "github.com/allisson/tokenparser/internal/tokenparser/usecase"
)

// RunParseDateRange evaluates a date range token. Text output prints the start and end
// dates on separate lines.
func RunParseDateRange(
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

	dateRange, err := useCase.ParseDateRange(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to parse date range token: %w", err)
	}

	response := dto.MapDateRangeToResponse(dateRange)
	if format == "json" {
		if err := writeJSON(w, response); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "Start: %s\nEnd:   %s\n", response.Start, response.End); err != nil {
		return err
	}

	logger.Debug("date range token parsed")
	return nil
}
