package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tokenparser/cmd/app/commands"
	"github.com/allisson/tokenparser/internal/app"
	"github.com/allisson/tokenparser/internal/config"
	tokenparserService "github.com/allisson/tokenparser/internal/tokenparser/service"
)

func tokenFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "token",
			Aliases:  []string{"t"},
			Required: true,
			Usage:    "Bracketed token to evaluate",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "text",
			Usage:   "Output format: 'text' or 'json'",
		},
	}
}

// newCommandContainer builds a container whose logs go to stderr, leaving stdout to
// the command output.
func newCommandContainer(version string, opts ...app.Option) *app.Container {
	cfg := config.Load()
	cfg.MetricsEnabled = false
	opts = append([]app.Option{app.WithVersion(version), app.WithLogOutput(os.Stderr)}, opts...)
	return app.NewContainer(cfg, opts...)
}

func getTokenCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "parse-date",
			Usage: "Evaluate a date token or a date range token",
			Flags: tokenFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newCommandContainer(version)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.TokenParserUseCase()
				if err != nil {
					return err
				}

				return commands.RunParseDate(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "parse-date-range",
			Usage: "Evaluate a date range token",
			Flags: tokenFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := newCommandContainer(version)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.TokenParserUseCase()
				if err != nil {
					return err
				}

				return commands.RunParseDateRange(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-string",
			Usage: "Generate the string described by a dynamic string token",
			Flags: append(tokenFlags(),
				&cli.Uint64Flag{
					Name:    "seed",
					Aliases: []string{"s"},
					Usage:   "Seed for reproducible output (crypto/rand when omitted)",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				var opts []app.Option
				if cmd.IsSet("seed") {
					opts = append(opts, app.WithRandomSource(tokenparserService.NewSeededRandomSource(cmd.Uint64("seed"))))
				}

				container := newCommandContainer(version, opts...)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.TokenParserUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerateString(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
	}
}
