package validator

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/overlaykit/ocaval/pkg/bundle"
	"github.com/overlaykit/ocaval/pkg/dataset"
	"github.com/overlaykit/ocaval/pkg/serializer"
	"github.com/overlaykit/ocaval/pkg/server"
)

// ValidateRequest is the request body for the validation endpoint.
// Bundle carries the schema bundle document (JSON or YAML) and Data
// the data set in CSV form, header row first.
type ValidateRequest struct {
	Bundle string `json:"bundle" yaml:"bundle"`
	Data   string `json:"data" yaml:"data"`
}

// HandleValidate handles POST requests carrying a schema bundle and a
// CSV data set, responding with the full validation report document.
func (v *Validator) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteError(w, r, http.StatusMethodNotAllowed,
			server.ErrCodeMethodNotAllowed, "only POST is supported", false, nil)
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.WriteError(w, r, http.StatusBadRequest,
			server.ErrCodeInvalidRequest, "request body must be valid JSON", false,
			map[string]any{"error": err.Error()})
		return
	}

	b, err := bundle.Parse([]byte(req.Bundle))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest,
			server.ErrCodeInvalidRequest, "invalid schema bundle", false,
			map[string]any{"error": err.Error()})
		return
	}

	ds, err := dataset.ReadCSVFrom(strings.NewReader(req.Data))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest,
			server.ErrCodeInvalidRequest, "invalid data set", false,
			map[string]any{"error": err.Error()})
		return
	}

	doc, err := v.Validate(r.Context(), b, ds)
	if err != nil {
		slog.Error("validation run failed", "error", err)
		server.WriteError(w, r, http.StatusInternalServerError,
			server.ErrCodeInternalError, "validation run failed", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, doc)
}
