package document

import (
	"strconv"
	"strings"
)

// ValueKind discriminates the three attribute value shapes a document can
// carry.
type ValueKind int

const (
	KindScalar ValueKind = iota
	KindVector
	KindBool
)

// Value is one attribute value: a scalar kept as text, an ordered numeric
// vector, or a boolean. Values are immutable once constructed; the zero
// value is an empty scalar.
type Value struct {
	kind ValueKind
	text string
	vec  []float64
	b    bool
}

// String returns a scalar holding s verbatim.
func String(s string) Value { return Value{kind: KindScalar, text: s} }

// Number returns a scalar holding the shortest decimal form of f that
// round-trips.
func Number(f float64) Value {
	return Value{kind: KindScalar, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Vector returns a vector over a copy of components.
func Vector(components []float64) Value {
	return Value{kind: KindVector, vec: append([]float64(nil), components...)}
}

// Kind reports which shape the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Scalar returns the scalar text; ok is false for other kinds.
func (v Value) Scalar() (string, bool) {
	return v.text, v.kind == KindScalar
}

// Vector returns a copy of the components; ok is false for other kinds.
func (v Value) Vector() ([]float64, bool) {
	if v.kind != KindVector {
		return nil, false
	}
	return append([]float64(nil), v.vec...), true
}

// Bool returns the boolean; ok is false for other kinds.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Encode renders the value in the output document's attribute syntax:
// scalars verbatim, vector components %g-formatted and space-joined,
// booleans lowercase.
func (v Value) Encode() string {
	switch v.kind {
	case KindVector:
		parts := make([]string, len(v.vec))
		for i, f := range v.vec {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, " ")
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return v.text
	}
}
