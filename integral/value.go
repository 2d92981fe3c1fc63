// Package integral decides equality between integral values of different
// Go types. Every input is first normalized into a Value, which is either
// absent (a nil) or a present int64. Equality is defined on the widened
// numeric value only: the source type, its width, and whether it arrived
// through a pointer never change the outcome.
package integral

import (
	"strconv"

	"github.com/amp-labs/amp-truth/compare"
)

// Char is a character code. It compares like any other integer, but renders
// as its glyph in failure messages.
type Char uint16

// Value is the normalized form of an integral input: either absent, or a
// present 64-bit value. The zero Value is absent.
type Value struct {
	n       int64
	present bool
	isChar  bool
}

var _ compare.Comparable[Value] = Value{}

// Absent returns the Value of a nil input.
func Absent() Value {
	return Value{}
}

// Of returns a present, non-character Value.
func Of(n int64) Value {
	return Value{n: n, present: true}
}

// OfChar returns a present Value that renders as a character.
func OfChar(c Char) Value {
	return Value{n: int64(c), present: true, isChar: true}
}

// IsAbsent returns true for the Value of a nil input.
func (v Value) IsAbsent() bool {
	return !v.present
}

// Int64 returns the widened value and whether it is present.
func (v Value) Int64() (int64, bool) {
	return v.n, v.present
}

// IsChar reports whether the value came from a Char. It only affects rendering.
func (v Value) IsChar() bool {
	return v.present && v.isChar
}

// Equals reports whether two values are equal: both absent, or both present
// with the same int64. The character flag is ignored.
func (v Value) Equals(other Value) bool {
	if v.present != other.present {
		return false
	}

	if !v.present {
		return true
	}

	return v.n == other.n
}

// String renders the value for failure messages: "null" when absent, the
// glyph for characters, and the decimal numeral otherwise.
func (v Value) String() string {
	switch {
	case !v.present:
		return "null"
	case v.isChar:
		return string(rune(v.n))
	default:
		return strconv.FormatInt(v.n, 10)
	}
}
