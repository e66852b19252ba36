package bundle

import "strings"

// Kind is the base attribute kind declared in a capture base.
type Kind int

const (
	// KindUnknown marks a type tag the validator does not recognize.
	// Unknown kinds are not format-constrained.
	KindUnknown Kind = iota
	KindText
	KindNumeric
	KindBoolean
	KindDateTime
	KindBinary
)

// String returns the capture-base spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNumeric:
		return "Numeric"
	case KindBoolean:
		return "Boolean"
	case KindDateTime:
		return "DateTime"
	case KindBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Type is a parsed capture-base attribute type: a base kind plus an
// array marker. "Array[Text]" parses to {KindText, Array: true}.
type Type struct {
	Kind  Kind
	Array bool
}

// ParseType parses a capture-base type tag into a Type. Unrecognized
// base tags yield KindUnknown rather than an error; the engine treats
// them as unconstrained.
func ParseType(tag string) Type {
	if inner, ok := arrayInner(tag); ok {
		return Type{Kind: parseKind(inner), Array: true}
	}
	return Type{Kind: parseKind(tag)}
}

func arrayInner(tag string) (string, bool) {
	if strings.HasPrefix(tag, "Array[") && strings.HasSuffix(tag, "]") {
		return tag[len("Array[") : len(tag)-1], true
	}
	return "", false
}

func parseKind(tag string) Kind {
	switch tag {
	case "Text":
		return KindText
	case "Numeric":
		return KindNumeric
	case "Boolean":
		return KindBoolean
	case "DateTime":
		return KindDateTime
	case "Binary":
		return KindBinary
	default:
		return KindUnknown
	}
}

// String returns the capture-base spelling of the type.
func (t Type) String() string {
	if t.Array {
		return "Array[" + t.Kind.String() + "]"
	}
	return t.Kind.String()
}
