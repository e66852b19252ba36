package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDerivesAPIVersionAndTimestamp(t *testing.T) {
	h := New("ValidationReport")

	assert.Equal(t, "ValidationReport", h.Kind)
	assert.Equal(t, "validationreport.overlaykit.io/v1", h.APIVersion)

	ts, ok := h.Metadata["report-timestamp"]
	assert.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestNewAppliesOptions(t *testing.T) {
	h := New("ValidationReport",
		WithAPIVersion("ocaval.overlaykit.io/v1alpha1"),
		WithMetadata("report-id", "abc"),
		WithMetadata("validator-version", "1.2.3"),
	)

	assert.Equal(t, "ocaval.overlaykit.io/v1alpha1", h.APIVersion)
	assert.Equal(t, "abc", h.Metadata["report-id"])
	assert.Equal(t, "1.2.3", h.Metadata["validator-version"])

	// Options add to the stamped metadata, they do not replace it.
	assert.Contains(t, h.Metadata, "report-timestamp")
}
