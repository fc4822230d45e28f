package pyson

import (
	"strconv"
	"strings"
)

// Type identifies the active variant of a [Value].
type Type int

const (
	// TypeString is a verbatim text value, tagged "str".
	TypeString Type = iota

	// TypeInteger is a signed base-10 integer, tagged "int".
	TypeInteger

	// TypeFloat is a decimal floating-point number, tagged "float".
	TypeFloat

	// TypeList is an ordered sequence of strings, tagged "list".
	TypeList
)

// String returns the type tag as written in PYSON source.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "str"
	case TypeInteger:
		return "int"
	case TypeFloat:
		return "float"
	case TypeList:
		return "list"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseType returns the Type named by tag.
// Tags are case-sensitive; ok is false for anything but the four literals.
func ParseType(tag string) (t Type, ok bool) {
	switch tag {
	case "str":
		return TypeString, true
	case "int":
		return TypeInteger, true
	case "float":
		return TypeFloat, true
	case "list":
		return TypeList, true
	default:
		return 0, false
	}
}

// Value is a decoded PYSON value.
//
// The set of implementations is closed: [String], [Integer], [Float], and
// [List]. Inspect the active variant with a type switch or [Value.Type]
// before reading the payload.
type Value interface {
	// Type returns the variant tag.
	Type() Type
	// Native returns the payload as a plain Go value (string, int64,
	// float64, or []string).
	Native() any
	// String formats the payload for display.
	String() string

	value()
}

type (
	// String is the "str" variant.
	String string
	// Integer is the "int" variant.
	Integer int64
	// Float is the "float" variant.
	Float float64
	// List is the "list" variant.
	List []string
)

func (String) Type() Type  { return TypeString }
func (Integer) Type() Type { return TypeInteger }
func (Float) Type() Type   { return TypeFloat }
func (List) Type() Type    { return TypeList }

func (v String) Native() any  { return string(v) }
func (v Integer) Native() any { return int64(v) }
func (v Float) Native() any   { return float64(v) }

// Native returns a copy of the list elements.
func (v List) Native() any { return append([]string{}, v...) }

func (v String) String() string  { return string(v) }
func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// String formats the list as "[a, b, c]".
func (v List) String() string {
	return "[" + strings.Join(v, ", ") + "]"
}

func (String) value()  {}
func (Integer) value() {}
func (Float) value()   {}
func (List) value()    {}
