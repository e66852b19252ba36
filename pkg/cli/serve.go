package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/overlaykit/ocaval/pkg/api"
	"github.com/overlaykit/ocaval/pkg/server"
)

func serveCmd(version string) *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the validation HTTP API server",
		Description: `Starts an HTTP server exposing the validation engine.

POST /v1/validate accepts a JSON body with a "bundle" field (the OCA
schema bundle document, JSON or YAML) and a "data" field (the CSV data
set) and responds with the full validation report.

Health, readiness and Prometheus metrics are served on /health, /ready
and /metrics.

# Examples

Serve on the default port:
  ocaval serve

Serve on a custom port:
  ocaval serve --port 9090`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind to (all interfaces when empty)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Port to listen on",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.DefaultConfig()
			cfg.Address = cmd.String("address")
			if cmd.IsSet("port") {
				cfg.Port = int(cmd.Int("port"))
			}
			return api.Serve(ctx, version, cfg)
		},
	}
}
