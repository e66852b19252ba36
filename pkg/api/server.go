// Package api wires the validation engine into an HTTP service.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/overlaykit/ocaval/pkg/server"
	"github.com/overlaykit/ocaval/pkg/validator"
)

const name = "ocaval-api-server"

// Serve starts the validation API server and blocks until shutdown.
// Returns an error if the server fails to start or encounters a fatal
// error.
func Serve(ctx context.Context, version string, cfg *server.Config) error {
	slog.Info("starting", "name", name, "version", version)

	v := validator.New(validator.WithVersion(version))

	r := map[string]http.HandlerFunc{
		"/v1/validate": v.HandleValidate,
	}

	opts := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	}
	if cfg != nil {
		opts = append(opts, server.WithConfig(cfg))
	}

	s := server.New(opts...)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
