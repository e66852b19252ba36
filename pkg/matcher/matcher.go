// Package matcher implements the per-value conformance checks used by
// the validation engine: boolean literal matching, regex matching,
// ISO 8601 date/time and interval matching, and character encoding
// checks. All matchers are pure functions over a single string value.
package matcher

import (
	"regexp"

	"github.com/overlaykit/ocaval/pkg/bundle"
)

// booleanLiterals is the fixed set of accepted boolean spellings.
// This is deliberately not a general boolean parse: "yes"/"no" and
// locale forms do not pass.
var booleanLiterals = map[string]struct{}{
	"True": {}, "true": {}, "TRUE": {}, "T": {}, "1": {}, "1.0": {},
	"False": {}, "false": {}, "FALSE": {}, "F": {}, "0": {}, "0.0": {},
}

// MatchBoolean reports whether the value is one of the fixed boolean
// literal forms.
func MatchBoolean(value string) bool {
	_, ok := booleanLiterals[value]
	return ok
}

// MatchRegex reports whether the pattern is found anywhere within the
// value (a search, not an anchored full match). An empty pattern
// passes vacuously; an invalid pattern does not match.
func MatchRegex(pattern, value string) bool {
	if pattern == "" {
		return true
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// MatchFormat checks one value against the format constraint for the
// given attribute type: DateTime formats use the ISO 8601 grammar,
// Text and Numeric formats are regular expressions, Boolean ignores
// the pattern, and unknown kinds pass unconditionally.
func MatchFormat(t bundle.Type, pattern, value string) bool {
	switch t.Kind {
	case bundle.KindDateTime:
		return MatchDateTime(pattern, value)
	case bundle.KindText, bundle.KindNumeric:
		return MatchRegex(pattern, value)
	case bundle.KindBoolean:
		return MatchBoolean(value)
	default:
		return true
	}
}
