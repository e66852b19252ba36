package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// New builds the ocaval root command.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:    "ocaval",
		Usage:   "Validate tabular data sets against OCA schema bundles",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(version),
			inspectCmd(),
			serveCmd(version),
		},
	}
}

// setupLogging configures the default slog handler.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
