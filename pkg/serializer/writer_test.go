package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type testDoc struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testDoc{
		{Name: "test1", Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testDoc
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != "test1" || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testDoc{
		{Name: "test1", Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testDoc
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != "test1" || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)
	if writer == nil {
		t.Fatal("Expected non-nil writer with unknown format")
	}

	data := testDoc{Name: "test", Value: 123}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize should not fail with unknown format (falls back to JSON): %v", err)
	}

	var result testDoc
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Fallback output is not JSON: %v", err)
	}
}

func TestWriter_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := writer.Serialize(ctx, testDoc{Name: "test"}); err == nil {
		t.Fatal("Expected error with cancelled context")
	}
}

func TestNewFileWriterOrStdout_Stdout(t *testing.T) {
	for _, path := range []string{"", StdoutURI} {
		writer, err := NewFileWriterOrStdout(FormatJSON, path)
		if err != nil {
			t.Fatalf("NewFileWriterOrStdout(%q) failed: %v", path, err)
		}
		if writer.out != os.Stdout {
			t.Errorf("Expected stdout writer for path %q", path)
		}
	}
}

func TestNewFileWriterOrStdout_File(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "out.json")

	writer, err := NewFileWriterOrStdout(FormatJSON, tmpFile)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout failed: %v", err)
	}
	if err := writer.Serialize(context.Background(), testDoc{Name: "test", Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Reading output file failed: %v", err)
	}
	var result testDoc
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Output file is not JSON: %v", err)
	}
	if result.Value != 7 {
		t.Errorf("Unexpected value: %d", result.Value)
	}
}

func TestWriter_ReusableUntilClosed(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "out.yaml")

	writer, err := NewFileWriterOrStdout(FormatYAML, tmpFile)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout failed: %v", err)
	}

	// Serializing must not close the file: a second document on the
	// same Writer has to succeed.
	if err := writer.Serialize(context.Background(), testDoc{Name: "first", Value: 1}); err != nil {
		t.Fatalf("First Serialize failed: %v", err)
	}
	if err := writer.Serialize(context.Background(), testDoc{Name: "second", Value: 2}); err != nil {
		t.Fatalf("Second Serialize failed: %v", err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Repeated Close failed: %v", err)
	}

	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Reading output file failed: %v", err)
	}
	if !bytes.Contains(content, []byte("first")) || !bytes.Contains(content, []byte("second")) {
		t.Errorf("Output file is missing serialized documents: %q", content)
	}
}

func TestWriter_CloseAfterCancelledContext(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "out.json")

	writer, err := NewFileWriterOrStdout(FormatJSON, tmpFile)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := writer.Serialize(ctx, testDoc{Name: "test"}); err == nil {
		t.Fatal("Expected error with cancelled context")
	}

	// The early return must not leave the file handle behind.
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestWriter_CloseWithoutFileIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)
	if err := writer.Close(); err != nil {
		t.Fatalf("Close on non-owning writer failed: %v", err)
	}
}

func TestNewFileWriterOrStdout_BadPath(t *testing.T) {
	if _, err := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json"); err == nil {
		t.Fatal("Expected error for unwritable path")
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatYAML, false},
		{FormatJSON, false},
		{"table", true},
		{"", true},
	}
	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}
