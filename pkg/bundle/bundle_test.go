package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		tag  string
		want Type
	}{
		{"Text", Type{Kind: KindText}},
		{"Numeric", Type{Kind: KindNumeric}},
		{"Boolean", Type{Kind: KindBoolean}},
		{"DateTime", Type{Kind: KindDateTime}},
		{"Binary", Type{Kind: KindBinary}},
		{"Array[Text]", Type{Kind: KindText, Array: true}},
		{"Array[Numeric]", Type{Kind: KindNumeric, Array: true}},
		{"Array[DateTime]", Type{Kind: KindDateTime, Array: true}},
		{"Geolocation", Type{Kind: KindUnknown}},
		{"Array[Geolocation]", Type{Kind: KindUnknown, Array: true}},
		{"", Type{Kind: KindUnknown}},
	}
	for _, tt := range tests {
		if got := ParseType(tt.tag); got != tt.want {
			t.Errorf("ParseType(%q) = %+v, want %+v", tt.tag, got, tt.want)
		}
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Text", Type{Kind: KindText}.String())
	assert.Equal(t, "Array[Numeric]", Type{Kind: KindNumeric, Array: true}.String())
	assert.Equal(t, "Unknown", Type{}.String())
}

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := New(
		[]Attribute{
			{Name: "name", Type: ParseType("Text")},
			{Name: "age", Type: ParseType("Numeric")},
			{Name: "status", Type: ParseType("Text")},
		},
		WithFormats(map[string]string{"age": "^[0-9]+$"}),
		WithConformance(map[string]string{"name": "M", "age": "O"}),
		WithEntryCodes(map[string][]string{"status": {"A", "B"}}),
		WithCharacterEncodings(map[string]string{"name": "iso-8859-1"}, ""),
		WithFlaggedAttributes([]string{"name"}),
		WithSectionVersion("capture_base", "1.0"),
		WithSectionVersion("format", "2.0"),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

func TestBundleAccessors(t *testing.T) {
	b := testBundle(t)

	assert.Equal(t, []string{"name", "age", "status"}, b.AttributeNames())

	typ, ok := b.Type("age")
	assert.True(t, ok)
	assert.Equal(t, KindNumeric, typ.Kind)
	_, ok = b.Type("unknown")
	assert.False(t, ok)

	format, ok := b.Format("age")
	assert.True(t, ok)
	assert.Equal(t, "^[0-9]+$", format)
	_, ok = b.Format("name")
	assert.False(t, ok)

	assert.True(t, b.Mandatory("name"))
	assert.False(t, b.Mandatory("age"))
	assert.False(t, b.Mandatory("status"))

	codes, ok := b.EntryCodes("status")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, codes)
	_, ok = b.EntryCodes("name")
	assert.False(t, ok)

	assert.Equal(t, "iso-8859-1", b.CharacterEncoding("name"))
	assert.Equal(t, DefaultCharacterEncoding, b.CharacterEncoding("age"))

	assert.Equal(t, []string{"name"}, b.FlaggedAttributes())

	sections := b.SectionVersions()
	assert.Len(t, sections, 2)
	assert.Equal(t, SectionVersion{Section: "format", Version: "2.0"}, sections[1])
}

func TestBundleDefaultEncodingOverride(t *testing.T) {
	b, err := New(
		[]Attribute{{Name: "a", Type: ParseType("Text")}},
		WithCharacterEncodings(nil, "utf-16le"),
	)
	assert.NoError(t, err)
	assert.Equal(t, "utf-16le", b.CharacterEncoding("a"))
}

func TestNewRejectsEmptyAndDuplicateAttributes(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]Attribute{
		{Name: "a", Type: ParseType("Text")},
		{Name: "a", Type: ParseType("Numeric")},
	})
	assert.Error(t, err)
}
