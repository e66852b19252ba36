package matcher

import "testing"

func TestMatchCharacterEncoding(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		encoding string
		want     bool
	}{
		{"ascii utf-8", "hello", "utf-8", true},
		{"multibyte utf-8", "日本語", "utf-8", true},
		{"invalid utf-8 bytes", "\xff\xfe", "utf-8", false},

		{"ascii utf-16le", "hello", "utf-16le", true},
		{"multibyte utf-16le", "日本語", "utf-16le", true},
		{"invalid bytes utf-16le", "\xff\xfe", "utf-16le", false},

		{"ascii iso-8859-1", "hello", "iso-8859-1", true},
		{"latin-1 accents", "café naïve", "iso-8859-1", true},
		{"outside latin-1", "日本語", "iso-8859-1", false},
		{"euro sign outside latin-1", "€10", "iso-8859-1", false},

		{"unknown encoding fails closed", "hello", "latin-9", false},
		{"empty encoding fails closed", "hello", "", false},
		{"uppercase name fails closed", "hello", "UTF-8", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchCharacterEncoding(tt.value, tt.encoding); got != tt.want {
				t.Errorf("MatchCharacterEncoding(%q, %q) = %v, want %v", tt.value, tt.encoding, got, tt.want)
			}
		})
	}
}
