package bundle

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bundle document key names. Internal contract with the OCA bundle
// file layout; not part of the public API.
const (
	captureBaseKey = "capture_base"
	formatKey      = "format"
	conformanceKey = "conformance"
	entryCodeKey   = "entry_code"
	encodingKey    = "character_encoding"
)

type document struct {
	CaptureBase captureBase `yaml:"capture_base" json:"capture_base"`
	Overlays    overlays    `yaml:"overlays" json:"overlays"`
}

type captureBase struct {
	Type       string    `yaml:"type" json:"type"`
	Attributes yaml.Node `yaml:"attributes" json:"attributes"`
	Flagged    []string  `yaml:"flagged_attributes" json:"flagged_attributes"`
}

type overlays struct {
	Format            *formatOverlay      `yaml:"format" json:"format"`
	Conformance       *conformanceOverlay `yaml:"conformance" json:"conformance"`
	EntryCode         *entryCodeOverlay   `yaml:"entry_code" json:"entry_code"`
	CharacterEncoding *encodingOverlay    `yaml:"character_encoding" json:"character_encoding"`
}

type formatOverlay struct {
	Type    string            `yaml:"type" json:"type"`
	Formats map[string]string `yaml:"attribute_formats" json:"attribute_formats"`
}

type conformanceOverlay struct {
	Type        string            `yaml:"type" json:"type"`
	Conformance map[string]string `yaml:"attribute_conformance" json:"attribute_conformance"`
}

type entryCodeOverlay struct {
	Type  string              `yaml:"type" json:"type"`
	Codes map[string][]string `yaml:"attribute_entry_codes" json:"attribute_entry_codes"`
}

type encodingOverlay struct {
	Type      string            `yaml:"type" json:"type"`
	Encodings map[string]string `yaml:"attribute_character_encoding" json:"attribute_character_encoding"`
	Default   string            `yaml:"default_character_encoding" json:"default_character_encoding"`
}

// Load reads an OCA bundle file and builds a Bundle from its capture
// base and overlays. Both JSON and YAML bundle files are accepted.
// A bundle without a capture base or without attributes is a hard
// error; absent overlays simply impose no constraints.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle file: %w", err)
	}
	return Parse(data)
}

// Parse builds a Bundle from raw bundle document bytes.
func Parse(data []byte) (*Bundle, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing bundle document: %w", err)
	}
	if doc.CaptureBase.Attributes.Kind == 0 {
		return nil, fmt.Errorf("bundle document has no capture base")
	}

	attrs, err := decodeAttributes(&doc.CaptureBase.Attributes)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithFlaggedAttributes(doc.CaptureBase.Flagged),
	}
	if v, ok := sectionVersion(doc.CaptureBase.Type); ok {
		opts = append(opts, WithSectionVersion(captureBaseKey, v))
	}
	if o := doc.Overlays.Format; o != nil {
		opts = append(opts, WithFormats(o.Formats))
		if v, ok := sectionVersion(o.Type); ok {
			opts = append(opts, WithSectionVersion(formatKey, v))
		}
	}
	if o := doc.Overlays.Conformance; o != nil {
		opts = append(opts, WithConformance(o.Conformance))
		if v, ok := sectionVersion(o.Type); ok {
			opts = append(opts, WithSectionVersion(conformanceKey, v))
		}
	}
	if o := doc.Overlays.EntryCode; o != nil {
		opts = append(opts, WithEntryCodes(o.Codes))
		if v, ok := sectionVersion(o.Type); ok {
			opts = append(opts, WithSectionVersion(entryCodeKey, v))
		}
	}
	if o := doc.Overlays.CharacterEncoding; o != nil {
		opts = append(opts, WithCharacterEncodings(o.Encodings, o.Default))
		if v, ok := sectionVersion(o.Type); ok {
			opts = append(opts, WithSectionVersion(encodingKey, v))
		}
	}

	return New(attrs, opts...)
}

// decodeAttributes walks the capture-base attributes mapping node
// directly so declaration order survives; unmarshalling into a Go map
// would lose it.
func decodeAttributes(node *yaml.Node) ([]Attribute, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("capture base attributes: expected a mapping")
	}
	attrs := make([]Attribute, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		attrs = append(attrs, Attribute{
			Name: key.Value,
			Type: ParseType(val.Value),
		})
	}
	if len(attrs) == 0 {
		return nil, fmt.Errorf("capture base declares no attributes")
	}
	return attrs, nil
}

// sectionVersion extracts the spec version from a section type tag:
// the final path segment, e.g. "spec/overlays/format/1.0" -> "1.0".
func sectionVersion(typeTag string) (string, bool) {
	if typeTag == "" {
		return "", false
	}
	parts := strings.Split(typeTag, "/")
	return parts[len(parts)-1], true
}
