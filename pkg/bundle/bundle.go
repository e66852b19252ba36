package bundle

import (
	"fmt"
)

const (
	// SpecVersion is the OCA Technical Specification version this
	// validator was developed against.
	SpecVersion = "1.0"

	// DefaultCharacterEncoding applies to attributes without an entry
	// in the character encoding overlay.
	DefaultCharacterEncoding = "utf-8"
)

// SectionVersion pairs a bundle section name with the spec version
// declared in its type tag.
type SectionVersion struct {
	Section string `json:"section" yaml:"section"`
	Version string `json:"version" yaml:"version"`
}

// Bundle is a read-only view over a parsed OCA schema bundle: the
// capture base attribute declarations plus the format, conformance,
// entry code and character encoding overlays. Build one with New or
// Load and reuse it across any number of validation runs.
type Bundle struct {
	names           []string
	attrs           map[string]Type
	formats         map[string]string
	mandatory       map[string]bool
	entryCodes      map[string][]string
	encodings       map[string]string
	defaultEncoding string
	flagged         []string
	sections        []SectionVersion
}

// Attribute declares one capture-base attribute in declaration order.
type Attribute struct {
	Name string
	Type Type
}

// New assembles a Bundle from its already-parsed parts. The attribute
// list is the source of truth for which attributes exist; overlay maps
// may reference attributes outside it, which the accessors simply
// never surface.
func New(attrs []Attribute, opts ...Option) (*Bundle, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("capture base declares no attributes")
	}
	b := &Bundle{
		attrs:           make(map[string]Type, len(attrs)),
		formats:         map[string]string{},
		mandatory:       map[string]bool{},
		entryCodes:      map[string][]string{},
		encodings:       map[string]string{},
		defaultEncoding: DefaultCharacterEncoding,
	}
	for _, a := range attrs {
		if _, dup := b.attrs[a.Name]; dup {
			return nil, fmt.Errorf("duplicate attribute %q in capture base", a.Name)
		}
		b.names = append(b.names, a.Name)
		b.attrs[a.Name] = a.Type
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Option configures overlay data on a Bundle under construction.
type Option func(*Bundle)

// WithFormats sets the attribute format overlay.
func WithFormats(formats map[string]string) Option {
	return func(b *Bundle) {
		for k, v := range formats {
			b.formats[k] = v
		}
	}
}

// WithConformance sets the mandatory flags from the conformance
// overlay. The overlay value "M" marks an attribute mandatory.
func WithConformance(conformance map[string]string) Option {
	return func(b *Bundle) {
		for k, v := range conformance {
			b.mandatory[k] = v == "M"
		}
	}
}

// WithEntryCodes sets the permitted entry codes per attribute.
func WithEntryCodes(codes map[string][]string) Option {
	return func(b *Bundle) {
		for k, v := range codes {
			b.entryCodes[k] = v
		}
	}
}

// WithCharacterEncodings sets per-attribute character encodings and
// the bundle default. An empty defaultEncoding keeps utf-8.
func WithCharacterEncodings(encodings map[string]string, defaultEncoding string) Option {
	return func(b *Bundle) {
		for k, v := range encodings {
			b.encodings[k] = v
		}
		if defaultEncoding != "" {
			b.defaultEncoding = defaultEncoding
		}
	}
}

// WithFlaggedAttributes marks attributes carrying sensitive data.
func WithFlaggedAttributes(flagged []string) Option {
	return func(b *Bundle) {
		b.flagged = append(b.flagged, flagged...)
	}
}

// WithSectionVersion records the spec version of one bundle section,
// as extracted from its type tag.
func WithSectionVersion(section, version string) Option {
	return func(b *Bundle) {
		b.sections = append(b.sections, SectionVersion{Section: section, Version: version})
	}
}

// AttributeNames returns the capture-base attribute names in
// declaration order.
func (b *Bundle) AttributeNames() []string {
	names := make([]string, len(b.names))
	copy(names, b.names)
	return names
}

// Type returns the declared type of an attribute.
func (b *Bundle) Type(name string) (Type, bool) {
	t, ok := b.attrs[name]
	return t, ok
}

// HasAttribute reports whether the capture base declares the attribute.
func (b *Bundle) HasAttribute(name string) bool {
	_, ok := b.attrs[name]
	return ok
}

// Format returns the attribute's format pattern. Absence means the
// attribute has no format constraint.
func (b *Bundle) Format(name string) (string, bool) {
	f, ok := b.formats[name]
	return f, ok
}

// Mandatory reports whether the conformance overlay marks the
// attribute mandatory. Attributes without an overlay entry are not
// mandatory.
func (b *Bundle) Mandatory(name string) bool {
	return b.mandatory[name]
}

// EntryCodes returns the permitted entry codes for an attribute, in
// overlay order. Absence means the attribute has no entry code
// constraint.
func (b *Bundle) EntryCodes(name string) ([]string, bool) {
	codes, ok := b.entryCodes[name]
	return codes, ok
}

// CharacterEncoding resolves the attribute's character encoding,
// falling back to the bundle default when the overlay has no entry.
func (b *Bundle) CharacterEncoding(name string) string {
	if enc, ok := b.encodings[name]; ok && enc != "" {
		return enc
	}
	return b.defaultEncoding
}

// FlaggedAttributes returns the attributes marked as sensitive in the
// capture base.
func (b *Bundle) FlaggedAttributes() []string {
	flagged := make([]string, len(b.flagged))
	copy(flagged, b.flagged)
	return flagged
}

// SectionVersions returns the spec version declared by each bundle
// section, in bundle order.
func (b *Bundle) SectionVersions() []SectionVersion {
	sections := make([]SectionVersion, len(b.sections))
	copy(sections, b.sections)
	return sections
}
