// Package header carries the Kubernetes-style header stamped onto
// ocaval output documents.
package header

import (
	"fmt"
	"strings"
	"time"
)

var (
	ApiVersionDomain = "overlaykit.io"
	ApiVersionV1     = "v1"
)

// Header contains metadata and versioning information for ocaval
// output documents. It follows Kubernetes-style resource conventions
// with Kind, APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the output document.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the output document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithAPIVersion returns an Option that overrides the APIVersion
// derived from the kind.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// WithMetadata returns an Option that adds a metadata key-value pair
// to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		h.Metadata[key] = value
	}
}

// New creates a Header for the given document kind. The APIVersion
// defaults to "<kind>.overlaykit.io/v1" and the metadata records the
// creation time under "report-timestamp".
func New(kind string, opts ...Option) *Header {
	h := &Header{
		Kind:       kind,
		APIVersion: fmt.Sprintf("%s.%s/%s", strings.ToLower(kind), ApiVersionDomain, ApiVersionV1),
		Metadata: map[string]string{
			"report-timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}
