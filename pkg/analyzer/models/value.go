// Package models defines data structures for loaded workbooks and their
// tabular contents.
package models

import (
	"strconv"
	"time"
)

// Kind identifies the type of a cell value.
type Kind int

const (
	// KindNull is an empty cell.
	KindNull Kind = iota
	// KindBool is a boolean cell.
	KindBool
	// KindInt is an integer cell.
	KindInt
	// KindFloat is a floating-point cell.
	KindFloat
	// KindText is a text cell.
	KindText
	// KindDateTime is a date/time cell.
	KindDateTime
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindDateTime:
		return "datetime"
	}
	return "unknown"
}

// DateTimeLayout is the canonical textual layout for date/time values.
const DateTimeLayout = "2006-01-02 15:04:05"

// Value is a single cell value: one of null, bool, int, float, text or
// date/time. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// DateTime returns a date/time value.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Canonical returns the canonical textual representation of the value.
// The rule is fixed so both sides of a comparison render identically:
// integers in base 10, floats in shortest decimal form without exponent or
// trailing zeros (1.0 renders as "1"), booleans as "true"/"false", date/times
// as "2006-01-02 15:04:05", text verbatim, null as the empty string.
func (v Value) Canonical() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindText:
		return v.s
	case KindDateTime:
		return v.t.Format(DateTimeLayout)
	}
	return ""
}

// String implements fmt.Stringer using the canonical representation.
func (v Value) String() string { return v.Canonical() }

// Number returns the numeric interpretation of the value. Int and Float
// values convert directly; text that parses as a decimal number also counts.
// Null, bool and date/time values are not numeric.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindText:
		f, err := strconv.ParseFloat(v.s, 64)
		return f, err == nil
	}
	return 0, false
}

// Equal reports whether two values are equal under the comparison rule:
// null equals null, exactly one null is unequal, anything else is compared
// by canonical text.
func Equal(a, b Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	return a.Canonical() == b.Canonical()
}
