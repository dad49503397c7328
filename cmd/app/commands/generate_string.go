package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/tokenparser/internal/tokenparser/http/dto"
	tokenparserUseCase "github.com/allisson/tokenparser/internal/tokenparser/usecase"
)

// RunGenerateString generates the string described by a dynamic string token. Text
// output writes the value as is, line separators included.
func RunGenerateString(
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

	value, err := useCase.GenerateString(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to generate dynamic string: %w", err)
	}

	if format == "json" {
		if err := writeJSON(w, dto.ParsedTokenResponse{ParsedToken: value}); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w, value); err != nil {
		return err
	}

	logger.Debug("dynamic string generated", slog.Int("length", len(value)))
	return nil
}
