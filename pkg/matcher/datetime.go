package matcher

import (
	"regexp"
	"strings"
	"time"
)

// isoToken maps one ISO 8601 pattern token to a Go time layout
// fragment and to a validating regular expression fragment. Table
// order is the tokenizer's priority order: longer tokens must come
// before the shorter tokens they contain (DDD before DD before D,
// sss before ss, +hh:mm before hh and mm).
type isoToken struct {
	token  string
	layout string // empty when Go layouts cannot express the token
	regex  string
}

var isoTokens = []isoToken{
	{"YYYY", "2006", `[0-9]{4}`},
	{"MM", "01", `(0[1-9]|1[0-2])`},
	{"DDD", "002", `([0-2][0-9]{2}|3[0-5][0-9]|36[0-6])`},
	{"DD", "02", `(0[1-9]|[12][0-9]|3[01])`},
	{"D", "", `[0-6]`},
	{"ww", "", `([0-4][0-9]|5[0-3])`},
	{"+hh:mm", "-07:00", `[+-][0-9]{2}:[0-9]{2}`},
	{"-hh:mm", "-07:00", `[+-][0-9]{2}:[0-9]{2}`},
	{"+hhmm", "-0700", `[+-][0-9]{4}`},
	{"-hhmm", "-0700", `[+-][0-9]{4}`},
	{"Z", "Z07:00", `(Z|[+-][0-9]{2}:?[0-9]{2})`},
	{"hh", "15", `([01][0-9]|2[0-3])`},
	{"mm", "04", `[0-5][0-9]`},
	{"sss", "000", `[0-9]{3}`},
	{"ss", "05", `[0-5][0-9]`},
}

// MatchDateTime reports whether a value conforms to an ISO 8601 style
// date/time pattern. An empty pattern passes vacuously.
//
// A pattern containing "/" denotes an interval: pattern and value are
// split on their first "/" and both halves must match independently.
// A pattern starting with "P" or "R" is a duration or repeating
// interval marker, matched as a regex with "n" standing for a number.
// Anything else is translated token by token: when every token has a
// Go time layout equivalent the value is range-checked with
// time.Parse, otherwise (week and weekday numbers, which Go layouts
// cannot express) the pattern becomes an anchored digit-class regex.
func MatchDateTime(pattern, value string) bool {
	if pattern == "" {
		return true
	}

	if strings.Contains(pattern, "/") {
		patHead, patTail, _ := strings.Cut(pattern, "/")
		valHead, valTail, found := strings.Cut(value, "/")
		if !found {
			return false
		}
		return MatchDateTime(patHead, valHead) && MatchDateTime(patTail, valTail)
	}

	if pattern[0] == 'P' || pattern[0] == 'R' {
		return MatchRegex("^"+strings.ReplaceAll(pattern, "n", "[0-9]+")+"$", value)
	}

	segs := tokenize(pattern)
	if layout, ok := isoLayout(segs); ok {
		_, err := time.Parse(layout, value)
		return err == nil
	}
	return MatchRegex("^"+isoRegex(segs)+"$", value)
}

type isoSegment struct {
	tok     *isoToken // nil for literal text
	literal string
}

// tokenize splits a pattern into ISO tokens and literal runs in a
// single left-to-right scan, so substituted text is never rescanned.
func tokenize(pattern string) []isoSegment {
	var segs []isoSegment
	for i := 0; i < len(pattern); {
		matched := false
		for t := range isoTokens {
			tok := &isoTokens[t]
			if strings.HasPrefix(pattern[i:], tok.token) {
				segs = append(segs, isoSegment{tok: tok})
				i += len(tok.token)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if n := len(segs); n > 0 && segs[n-1].tok == nil {
			segs[n-1].literal += string(pattern[i])
		} else {
			segs = append(segs, isoSegment{literal: string(pattern[i])})
		}
		i++
	}
	return segs
}

// isoLayout assembles a Go time layout from the tokenized pattern.
// Returns false when the pattern uses a token Go layouts cannot
// express.
func isoLayout(segs []isoSegment) (string, bool) {
	var sb strings.Builder
	for _, s := range segs {
		if s.tok == nil {
			sb.WriteString(s.literal)
			continue
		}
		if s.tok.layout == "" {
			return "", false
		}
		sb.WriteString(s.tok.layout)
	}
	return sb.String(), true
}

// isoRegex assembles an unanchored validating regex from the
// tokenized pattern; literal runs are quoted.
func isoRegex(segs []isoSegment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s.tok == nil {
			sb.WriteString(regexp.QuoteMeta(s.literal))
			continue
		}
		sb.WriteString(s.tok.regex)
	}
	return sb.String()
}
