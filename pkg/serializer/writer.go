// Package serializer writes validation output documents as YAML or
// JSON to stdout or files.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the output serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// IsUnknown reports whether the format is not a supported one.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return false
	default:
		return true
	}
}

// Writer serializes documents in a fixed format to a destination.
type Writer struct {
	format Format
	out    io.Writer
	close  func() error
}

// NewWriter returns a Writer emitting the given format to out.
// Unknown formats fall back to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter returns a Writer emitting to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout returns a Writer emitting to the given file
// path, or to stdout when the path is empty or StdoutURI.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	w := NewWriter(format, f)
	w.close = f.Close
	return w, nil
}

// Close releases the destination when the Writer owns it (file-backed
// writers). Safe to call more than once; stdout-backed writers are a
// no-op.
func (w *Writer) Close() error {
	if w.close == nil {
		return nil
	}
	err := w.close()
	w.close = nil
	if err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// Serialize writes the document to the destination in the configured
// format. The Writer stays usable afterward; callers owning a
// file-backed Writer release it with Close.
func (w *Writer) Serialize(ctx context.Context, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(data)
		return err
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		if _, err := w.out.Write(data); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w.out)
		return err
	}
}
