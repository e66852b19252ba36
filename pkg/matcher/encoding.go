package matcher

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// characterEncodings names the encodings a character encoding overlay
// may declare.
var characterEncodings = map[string]encoding.Encoding{
	"utf-8":      unicode.UTF8,
	"utf-16le":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"iso-8859-1": charmap.ISO8859_1,
}

// MatchCharacterEncoding reports whether the value can be encoded in
// the named character encoding without loss. Only the exact lowercase
// encoding names are recognized; anything else fails closed, every
// value reported as non-matching.
func MatchCharacterEncoding(value, encodingName string) bool {
	enc, ok := characterEncodings[encodingName]
	if !ok {
		return false
	}
	if !utf8.ValidString(value) {
		return false
	}
	// The encoders reject unrepresentable runes instead of
	// substituting replacement characters.
	_, _, err := transform.String(enc.NewEncoder(), value)
	return err == nil
}
