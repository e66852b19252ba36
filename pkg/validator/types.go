package validator

import (
	"time"

	"github.com/overlaykit/ocaval/pkg/header"
	"github.com/overlaykit/ocaval/pkg/report"
)

// Status is the overall outcome of a validation run.
type Status string

const (
	// StatusPass means no pass recorded any finding.
	StatusPass Status = "pass"
	// StatusFail means at least one finding was recorded.
	StatusFail Status = "fail"
)

// Summary holds the aggregate counts for a validation run.
type Summary struct {
	// Attributes is the number of capture-base attributes checked.
	Attributes int `json:"attributes" yaml:"attributes"`

	// Rows is the data set row count.
	Rows int `json:"rows" yaml:"rows"`

	// AttributeErrors counts unmatched plus missing attributes.
	AttributeErrors int `json:"attributeErrors" yaml:"attributeErrors"`

	// FormatErrors counts cells with format pass findings.
	FormatErrors int `json:"formatErrors" yaml:"formatErrors"`

	// EntryCodeErrors counts cells with entry code pass findings.
	EntryCodeErrors int `json:"entryCodeErrors" yaml:"entryCodeErrors"`

	// EncodingErrors counts cells with encoding pass findings.
	EncodingErrors int `json:"encodingErrors" yaml:"encodingErrors"`

	// AffectedRows counts distinct rows with at least one finding.
	AffectedRows int `json:"affectedRows" yaml:"affectedRows"`

	// Status is the overall outcome.
	Status Status `json:"status" yaml:"status"`

	// Duration is the wall-clock validation time.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Document is the serializable validation report document: a
// Kubernetes-style header, the run summary, and the full report.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Summary Summary        `json:"summary" yaml:"summary"`
	Report  *report.Report `json:"report" yaml:"report"`
}
