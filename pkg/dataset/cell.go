package dataset

import "strconv"

// CellKind discriminates the raw value held by a Cell.
type CellKind int

const (
	// KindMissing marks an absent value. Distinguishable from an
	// ordinary empty string by IsMissing.
	KindMissing CellKind = iota
	KindString
	KindNumber
	KindBool
)

// Cell is one raw data value: a string, a number, a boolean, or the
// missing-value sentinel.
type Cell struct {
	kind CellKind
	str  string
	num  float64
	b    bool
}

// Str returns a string cell.
func Str(s string) Cell { return Cell{kind: KindString, str: s} }

// Num returns a numeric cell.
func Num(f float64) Cell { return Cell{kind: KindNumber, num: f} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{kind: KindBool, b: b} }

// Missing returns the missing-value sentinel.
func Missing() Cell { return Cell{kind: KindMissing} }

// Kind returns the cell's kind.
func (c Cell) Kind() CellKind { return c.kind }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// String returns the cell's validation string form. Missing cells
// stringify to the empty string; booleans to "True"/"False".
func (c Cell) String() string {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindBool:
		if c.b {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}
