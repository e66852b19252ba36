package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/overlaykit/ocaval/pkg/bundle"
	"github.com/overlaykit/ocaval/pkg/dataset"
	"github.com/overlaykit/ocaval/pkg/header"
	"github.com/overlaykit/ocaval/pkg/matcher"
	"github.com/overlaykit/ocaval/pkg/report"
)

const (
	// APIVersion is the API version for validation report documents.
	APIVersion = "ocaval.overlaykit.io/v1alpha1"

	// Kind is the kind for validation report documents.
	Kind = "ValidationReport"
)

// Finding message texts.
const (
	msgMissingMandatory  = "Missing mandatory attribute."
	msgInvalidArray      = "Valid array required."
	msgFormatMismatch    = "Format mismatch. Supported format: %s."
	msgEntryCodeFormat   = "Entry code format mismatch (manually fix the attribute format). Supported format for entry code is: %s."
	msgEntryCode         = "One of the entry codes required. Entry codes allowed: %s."
	msgEncodingMismatch  = "Character encoding mismatch. Supported character encoding: %s."
	msgFlaggedAttributes = "Contains flagged data. Please check the following attribute(s): %s."
	msgSectionVersion    = "Bundle section %q declares OCA specification version %s, validator supports %s."
)

// suggestionDistance bounds how far an unmatched column name may be
// from a schema attribute to still be offered as a suggestion.
const suggestionDistance = 2

// Validator checks a tabular data set against an OCA schema bundle.
// A Validator holds no per-run state and may be reused.
type Validator struct {
	version      string
	preview      io.Writer
	flaggedAlarm bool
	versionAlarm bool
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the validator version
// recorded in report metadata (typically the CLI version).
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.version = version
	}
}

// WithPreview returns an Option that makes Validate write a preview
// of the data set to w before validating.
func WithPreview(w io.Writer) Option {
	return func(v *Validator) {
		v.preview = w
	}
}

// WithoutFlaggedAlarm disables the flagged-attribute notice.
func WithoutFlaggedAlarm() Option {
	return func(v *Validator) {
		v.flaggedAlarm = false
	}
}

// WithoutVersionAlarm disables the spec-version compatibility notice.
func WithoutVersionAlarm() Option {
	return func(v *Validator) {
		v.versionAlarm = false
	}
}

// New creates a new Validator with the provided options. Both
// advisory notices are enabled by default.
func New(opts ...Option) *Validator {
	v := &Validator{flaggedAlarm: true, versionAlarm: true}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs the four validation passes (attribute, format, entry
// code, encoding) against the data set and assembles the findings
// into a report document. Data conformance findings are collected,
// never returned as errors; the error return covers only malformed
// runs (nil inputs, cancelled context).
func (v *Validator) Validate(ctx context.Context, b *bundle.Bundle, ds *dataset.DataSet) (*Document, error) {
	start := time.Now()

	if b == nil {
		return nil, fmt.Errorf("bundle cannot be nil")
	}
	if ds == nil {
		return nil, fmt.Errorf("data set cannot be nil")
	}

	if v.preview != nil {
		writePreview(v.preview, ds)
	}

	rep := report.New()
	if v.flaggedAlarm {
		v.flaggedNotice(b, rep)
	}
	if v.versionAlarm {
		v.versionNotices(b, rep)
	}

	// The passes are independent: each accumulates into its own
	// collection, merged after the group completes.
	var (
		attrErrs   []report.AttributeError
		formatErrs map[string]report.RowErrors
		ecodeErrs  map[string]report.RowErrors
		encErrs    map[string]report.RowErrors
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		attrErrs = v.ValidateAttribute(b, ds)
		return nil
	})
	g.Go(func() error {
		formatErrs = v.ValidateFormat(b, ds)
		return nil
	})
	g.Go(func() error {
		ecodeErrs = v.ValidateEntryCode(b, ds)
		return nil
	})
	g.Go(func() error {
		encErrs = v.ValidateEncoding(b, ds)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		validationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	rep.Attributes = attrErrs
	rep.Format = formatErrs
	rep.EntryCode = ecodeErrs
	rep.Encoding = encErrs

	hopts := []header.Option{
		header.WithAPIVersion(APIVersion),
		header.WithMetadata("report-id", uuid.NewString()),
	}
	if v.version != "" {
		hopts = append(hopts, header.WithMetadata("validator-version", v.version))
	}
	doc := &Document{Header: *header.New(Kind, hopts...), Report: rep}

	doc.Summary = Summary{
		Attributes:      len(b.AttributeNames()),
		Rows:            ds.Rows(),
		AttributeErrors: len(attrErrs),
		FormatErrors:    countCells(formatErrs),
		EntryCodeErrors: countCells(ecodeErrs),
		EncodingErrors:  countCells(encErrs),
		AffectedRows:    len(rep.AffectedRows()),
		Duration:        time.Since(start),
	}
	if rep.HasErrors() {
		doc.Summary.Status = StatusFail
	} else {
		doc.Summary.Status = StatusPass
	}

	validationDuration.Observe(doc.Summary.Duration.Seconds())
	validationsTotal.WithLabelValues(string(doc.Summary.Status)).Inc()
	validationFindings.Set(float64(doc.Summary.AttributeErrors + doc.Summary.FormatErrors +
		doc.Summary.EntryCodeErrors + doc.Summary.EncodingErrors))

	slog.Debug("validation completed",
		"attributes", doc.Summary.Attributes,
		"rows", doc.Summary.Rows,
		"attributeErrors", doc.Summary.AttributeErrors,
		"formatErrors", doc.Summary.FormatErrors,
		"entryCodeErrors", doc.Summary.EntryCodeErrors,
		"encodingErrors", doc.Summary.EncodingErrors,
		"status", doc.Summary.Status,
		"duration", doc.Summary.Duration)

	return doc, nil
}

// ValidateAttribute cross-checks data columns against capture-base
// attributes: columns absent from the bundle are unmatched, bundle
// attributes absent from the data are missing. Unmatched entries come
// first, in data column order, then missing entries in schema order.
func (v *Validator) ValidateAttribute(b *bundle.Bundle, ds *dataset.DataSet) []report.AttributeError {
	var errs []report.AttributeError
	for _, col := range ds.Columns() {
		if b.HasAttribute(col) {
			continue
		}
		errs = append(errs, report.AttributeError{
			Name:       col,
			Kind:       report.AttributeUnmatched,
			Suggestion: nearestAttribute(col, b.AttributeNames()),
		})
	}
	for _, attr := range b.AttributeNames() {
		if ds.HasColumn(attr) {
			continue
		}
		errs = append(errs, report.AttributeError{Name: attr, Kind: report.AttributeMissing})
	}
	return errs
}

// ValidateFormat checks every cell of every schema attribute against
// the attribute's declared type and format pattern, and records
// missing mandatory cells. Attributes without a data column are
// skipped; the attribute pass reports those.
func (v *Validator) ValidateFormat(b *bundle.Bundle, ds *dataset.DataSet) map[string]report.RowErrors {
	errs := map[string]report.RowErrors{}
	for _, attr := range b.AttributeNames() {
		cells, ok := ds.Column(attr)
		if !ok {
			continue
		}
		attrType, _ := b.Type(attr)
		pattern, _ := b.Format(attr)
		mandatory := b.Mandatory(attr)
		_, hasCodes := b.EntryCodes(attr)

		for i, cell := range cells {
			value := cell.String()
			if cell.IsMissing() {
				if mandatory {
					addRowError(errs, attr, i, msgMissingMandatory)
					continue
				}
				value = ""
			}

			if attrType.Array {
				elements, ok := parseArray(value)
				if !ok {
					addRowError(errs, attr, i, msgInvalidArray)
					continue
				}
				for _, element := range elements {
					if !matcher.MatchFormat(attrType, pattern, element) {
						addRowError(errs, attr, i, fmt.Sprintf(msgFormatMismatch, pattern))
						break
					}
				}
				continue
			}

			if !matcher.MatchFormat(attrType, pattern, value) {
				if hasCodes {
					addRowError(errs, attr, i, fmt.Sprintf(msgEntryCodeFormat, pattern))
				} else {
					addRowError(errs, attr, i, fmt.Sprintf(msgFormatMismatch, pattern))
				}
			}
		}
	}
	return errs
}

// ValidateEntryCode checks every cell of every attribute carrying an
// entry code constraint for membership in the permitted set. Missing
// cells are stringified and checked like any other value.
func (v *Validator) ValidateEntryCode(b *bundle.Bundle, ds *dataset.DataSet) map[string]report.RowErrors {
	errs := map[string]report.RowErrors{}
	for _, attr := range b.AttributeNames() {
		codes, ok := b.EntryCodes(attr)
		if !ok {
			continue
		}
		cells, ok := ds.Column(attr)
		if !ok {
			continue
		}
		for i, cell := range cells {
			if !slices.Contains(codes, cell.String()) {
				addRowError(errs, attr, i, fmt.Sprintf(msgEntryCode, strings.Join(codes, ", ")))
			}
		}
	}
	return errs
}

// ValidateEncoding checks every cell of every schema attribute
// against the attribute's resolved character encoding.
func (v *Validator) ValidateEncoding(b *bundle.Bundle, ds *dataset.DataSet) map[string]report.RowErrors {
	errs := map[string]report.RowErrors{}
	for _, attr := range b.AttributeNames() {
		cells, ok := ds.Column(attr)
		if !ok {
			continue
		}
		enc := b.CharacterEncoding(attr)
		for i, cell := range cells {
			if !matcher.MatchCharacterEncoding(cell.String(), enc) {
				addRowError(errs, attr, i, fmt.Sprintf(msgEncodingMismatch, enc))
			}
		}
	}
	return errs
}

func (v *Validator) flaggedNotice(b *bundle.Bundle, rep *report.Report) {
	flagged := b.FlaggedAttributes()
	if len(flagged) == 0 {
		return
	}
	slog.Warn("bundle contains flagged attributes", "attributes", flagged)
	rep.Notices = append(rep.Notices, report.Notice{
		Kind:    report.NoticeFlagged,
		Message: fmt.Sprintf(msgFlaggedAttributes, strings.Join(flagged, ", ")),
	})
}

func (v *Validator) versionNotices(b *bundle.Bundle, rep *report.Report) {
	for _, sv := range b.SectionVersions() {
		if sv.Version == "" || sv.Version == bundle.SpecVersion {
			continue
		}
		slog.Warn("bundle section has a different spec version",
			"section", sv.Section, "version", sv.Version, "supported", bundle.SpecVersion)
		rep.Notices = append(rep.Notices, report.Notice{
			Kind:    report.NoticeVersion,
			Message: fmt.Sprintf(msgSectionVersion, sv.Section, sv.Version, bundle.SpecVersion),
		})
	}
}

// nearestAttribute returns the schema attribute closest to name, when
// close enough to look like a misspelling.
func nearestAttribute(name string, attrs []string) string {
	best, bestDist := "", suggestionDistance+1
	for _, attr := range attrs {
		if d := levenshtein.ComputeDistance(name, attr); d < bestDist {
			best, bestDist = attr, d
		}
	}
	return best
}

// parseArray parses a JSON array literal and stringifies its
// elements. Returns false when the value is not valid JSON or not an
// array.
func parseArray(value string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(value))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, false
	}
	if dec.More() {
		return nil, false
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	elements := make([]string, len(arr))
	for i, el := range arr {
		elements[i] = fmt.Sprintf("%v", el)
	}
	return elements, true
}

func addRowError(m map[string]report.RowErrors, attr string, row int, msg string) {
	rows, ok := m[attr]
	if !ok {
		rows = report.RowErrors{}
		m[attr] = rows
	}
	rows[row] = msg
}

func countCells(m map[string]report.RowErrors) int {
	n := 0
	for _, rows := range m {
		n += len(rows)
	}
	return n
}

func writePreview(w io.Writer, ds *dataset.DataSet) {
	cols := ds.Columns()
	fmt.Fprintln(w, strings.Join(cols, "\t"))
	for i := 0; i < ds.Rows(); i++ {
		row := make([]string, len(cols))
		for j, col := range cols {
			cells, _ := ds.Column(col)
			row[j] = cells[i].String()
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}
