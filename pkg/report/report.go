// Package report collects the findings of one validation run: the
// raw per-pass error collections plus derived cross-cutting views
// (affected columns and rows, missing and unmatched attribute sets)
// recomputed on demand.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// errThreshold bounds how many attribute names the summaries list
// before switching to a bare count.
const errThreshold = 5

// AttributeErrorKind classifies a structural mismatch between data
// columns and schema attributes.
type AttributeErrorKind string

const (
	// AttributeUnmatched marks a data column absent from the schema.
	AttributeUnmatched AttributeErrorKind = "unmatched"
	// AttributeMissing marks a schema attribute absent from the data.
	AttributeMissing AttributeErrorKind = "missing"
)

// AttributeError is one unmatched or missing attribute finding.
type AttributeError struct {
	Name string             `json:"name" yaml:"name"`
	Kind AttributeErrorKind `json:"kind" yaml:"kind"`

	// Suggestion is the nearest schema attribute name, when an
	// unmatched column looks like a misspelling of one.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// NoticeKind classifies an advisory side-channel notice.
type NoticeKind string

const (
	// NoticeFlagged warns that the bundle declares flagged
	// (sensitive) attributes.
	NoticeFlagged NoticeKind = "flagged"
	// NoticeVersion warns that a bundle section declares a spec
	// version the validator was not developed for.
	NoticeVersion NoticeKind = "version"
)

// Notice is an advisory warning. Notices never contribute to the
// report's failure semantics.
type Notice struct {
	Kind    NoticeKind `json:"kind" yaml:"kind"`
	Message string     `json:"message" yaml:"message"`
}

// RowErrors maps row index to finding message. Sparse: only failing
// rows appear.
type RowErrors map[int]string

// Report aggregates the findings of the four validation passes.
// Mutated by the engine during a run, read-only afterward; the
// derived views are a pure function of the raw collections.
type Report struct {
	Attributes []AttributeError     `json:"attributeErrors,omitempty" yaml:"attributeErrors,omitempty"`
	Format     map[string]RowErrors `json:"formatErrors,omitempty" yaml:"formatErrors,omitempty"`
	EntryCode  map[string]RowErrors `json:"entryCodeErrors,omitempty" yaml:"entryCodeErrors,omitempty"`
	Encoding   map[string]RowErrors `json:"encodingErrors,omitempty" yaml:"encodingErrors,omitempty"`
	Notices    []Notice             `json:"notices,omitempty" yaml:"notices,omitempty"`

	missing   map[string]struct{}
	unmatched map[string]struct{}
	errCols   map[string]struct{}
	errRows   map[int]struct{}
}

// New returns an empty report with all four collections constructed.
func New() *Report {
	return &Report{
		Format:    map[string]RowErrors{},
		EntryCode: map[string]RowErrors{},
		Encoding:  map[string]RowErrors{},
	}
}

// AddAttributeError records an unmatched or missing attribute.
func (r *Report) AddAttributeError(err AttributeError) {
	r.Attributes = append(r.Attributes, err)
}

// AddFormatError records a format pass finding for one cell.
func (r *Report) AddFormatError(attr string, row int, msg string) {
	addRowError(r.Format, attr, row, msg)
}

// AddEntryCodeError records an entry code pass finding for one cell.
func (r *Report) AddEntryCodeError(attr string, row int, msg string) {
	addRowError(r.EntryCode, attr, row, msg)
}

// AddEncodingError records an encoding pass finding for one cell.
func (r *Report) AddEncodingError(attr string, row int, msg string) {
	addRowError(r.Encoding, attr, row, msg)
}

func addRowError(m map[string]RowErrors, attr string, row int, msg string) {
	rows, ok := m[attr]
	if !ok {
		rows = RowErrors{}
		m[attr] = rows
	}
	rows[row] = msg
}

// Update recomputes the derived views from the raw collections.
// The sets are rebuilt from scratch, so repeated calls are idempotent
// and never double-count.
func (r *Report) Update() {
	r.missing = map[string]struct{}{}
	r.unmatched = map[string]struct{}{}
	r.errCols = map[string]struct{}{}
	r.errRows = map[int]struct{}{}

	for _, ae := range r.Attributes {
		switch ae.Kind {
		case AttributeMissing:
			r.missing[ae.Name] = struct{}{}
		case AttributeUnmatched:
			r.unmatched[ae.Name] = struct{}{}
		}
	}
	for _, m := range []map[string]RowErrors{r.Format, r.EntryCode, r.Encoding} {
		for attr, rows := range m {
			if len(rows) == 0 {
				continue
			}
			r.errCols[attr] = struct{}{}
			for row := range rows {
				r.errRows[row] = struct{}{}
			}
		}
	}
}

// MissingAttributes returns the sorted schema attributes absent from
// the data set.
func (r *Report) MissingAttributes() []string {
	r.Update()
	return sortedKeys(r.missing)
}

// UnmatchedAttributes returns the sorted data columns absent from the
// schema.
func (r *Report) UnmatchedAttributes() []string {
	r.Update()
	return sortedKeys(r.unmatched)
}

// AffectedColumns returns the sorted columns with at least one
// format, entry code or encoding finding.
func (r *Report) AffectedColumns() []string {
	r.Update()
	return sortedKeys(r.errCols)
}

// AffectedRows returns the sorted row indices with at least one
// format, entry code or encoding finding.
func (r *Report) AffectedRows() []int {
	r.Update()
	rows := make([]int, 0, len(r.errRows))
	for row := range r.errRows {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// HasErrors reports whether any pass recorded a finding. Notices do
// not count.
func (r *Report) HasErrors() bool {
	r.Update()
	return len(r.Attributes) > 0 || len(r.errCols) > 0 || len(r.errRows) > 0
}

// Overview summarizes the report: attribute mismatch counts and the
// number of problematic rows per affected column. Attribute name
// lists collapse to a count above the threshold.
func (r *Report) Overview() string {
	r.Update()
	if len(r.Attributes) == 0 && len(r.errCols) == 0 && len(r.errRows) == 0 {
		return "No error was found."
	}

	var sb strings.Builder
	if len(r.Attributes) > 0 {
		fmt.Fprintf(&sb, "Attribute error found. %s found in the schema bundle but not in the data set; %s found in the data set but not in the schema bundle.",
			nameList(sortedKeys(r.missing)), nameList(sortedKeys(r.unmatched)))
	}
	if len(r.errCols) > 0 || len(r.errRows) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		cols := sortedKeys(r.errCols)
		if len(cols) > errThreshold {
			fmt.Fprintf(&sb, "Found %d problematic row(s) in %d attributes.", len(r.errRows), len(cols))
		} else {
			fmt.Fprintf(&sb, "Found %d problematic row(s) in the following attribute(s): %s.", len(r.errRows), strings.Join(cols, ", "))
		}
	}
	return sb.String()
}

// FirstErrorColumn reports the detail of the lexicographically
// smallest affected column.
func (r *Report) FirstErrorColumn() string {
	cols := r.AffectedColumns()
	if len(cols) == 0 {
		return "No error was found."
	}
	return fmt.Sprintf("The first problematic column is: %s\n%s", cols[0], r.ColumnDetail(cols[0]))
}

// ColumnDetail lists every recorded finding for one column, keyed by
// row: format pass findings first, then entry code, then encoding.
func (r *Report) ColumnDetail(attr string) string {
	if !r.HasErrors() {
		return "No error was found."
	}

	var sb strings.Builder
	writeRowErrors(&sb, "Format error(s) in the following row(s):", r.Format[attr])
	writeRowErrors(&sb, "Entry code error(s) in the following row(s):", r.EntryCode[attr])
	writeRowErrors(&sb, "Character encoding error(s) in the following row(s):", r.Encoding[attr])
	if sb.Len() == 0 {
		return fmt.Sprintf("No error was found in column %q.", attr)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeRowErrors(sb *strings.Builder, heading string, rows RowErrors) {
	if len(rows) == 0 {
		return
	}
	sb.WriteString(heading)
	sb.WriteString("\n")
	indices := make([]int, 0, len(rows))
	for row := range rows {
		indices = append(indices, row)
	}
	sort.Ints(indices)
	for _, row := range indices {
		fmt.Fprintf(sb, "row %d: %s\n", row, rows[row])
	}
}

func nameList(names []string) string {
	if len(names) == 0 {
		return "0 attributes"
	}
	if len(names) > errThreshold {
		return fmt.Sprintf("%d attributes", len(names))
	}
	return strings.Join(names, ", ")
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
