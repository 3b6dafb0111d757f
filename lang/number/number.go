// Package number implements the ECMAScript Number type and its binary
// arithmetic operators over IEEE-754 binary64 values.
//
// Every Number belongs to exactly one Class: NaN, +Infinity, -Infinity, +0,
// -0 or finite nonzero. The multiplicative operators first classify both
// operands and decide the special cases (NaN, signed zero and signed infinity
// results) explicitly, only falling back to the host's round-to-nearest
// arithmetic when both operands are finite. All functions in this package are
// pure and safe for concurrent use.
package number

import (
	"math"
)

// Number is an ECMAScript Number value. The zero value is +0.
type Number float64

// Class is the partition of Number values that selects which rule applies to
// an operation.
type Class uint8

// List of number classes.
const (
	ClassFinite  Class = iota // finite and nonzero
	ClassPosZero              // +0
	ClassNegZero              // -0
	ClassPosInf               // +Infinity
	ClassNegInf               // -Infinity
	ClassNaN                  // any NaN
)

var classNames = [...]string{
	ClassFinite:  "finite",
	ClassPosZero: "+0",
	ClassNegZero: "-0",
	ClassPosInf:  "+Infinity",
	ClassNegInf:  "-Infinity",
	ClassNaN:     "NaN",
}

func (c Class) String() string { return classNames[c] }

// IsZero returns true for both +0 and -0.
func (c Class) IsZero() bool { return c == ClassPosZero || c == ClassNegZero }

// IsInf returns true for both +Infinity and -Infinity.
func (c Class) IsInf() bool { return c == ClassPosInf || c == ClassNegInf }

// Sign is the sign of a Number. It is defined for zeros and infinities as
// well as for finite nonzero values.
type Sign int8

// List of signs.
const (
	Negative Sign = -1
	Positive Sign = +1
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Mul returns the sign of a product or quotient of operands with signs s and
// o: positive iff both signs match.
func (s Sign) Mul(o Sign) Sign {
	if s == o {
		return Positive
	}
	return Negative
}

const signMask = 1 << 63

// NaN returns the canonical NaN value.
func NaN() Number { return Number(math.NaN()) }

// Inf returns the infinity of the provided sign.
func Inf(s Sign) Number { return Number(math.Inf(int(s))) }

// Zero returns the zero of the provided sign.
func Zero(s Sign) Number {
	if s == Negative {
		return Number(math.Float64frombits(signMask))
	}
	return 0
}

// Of returns the Number for the float64 value f. All NaN payloads are
// collapsed to the canonical NaN.
func Of(f float64) Number {
	if f != f {
		return NaN()
	}
	return Number(f)
}

// Float64 returns the float64 value of n.
func (n Number) Float64() float64 { return float64(n) }

// Type returns the type name of n used in evaluation error messages.
func (n Number) Type() string { return "number" }

// Class returns the class of n.
func (n Number) Class() Class {
	f := float64(n)
	switch {
	case f != f:
		return ClassNaN
	case f == 0:
		if math.Signbit(f) {
			return ClassNegZero
		}
		return ClassPosZero
	case math.IsInf(f, 1):
		return ClassPosInf
	case math.IsInf(f, -1):
		return ClassNegInf
	}
	return ClassFinite
}

// Sign returns the sign of n, which is read from the sign bit so that it is
// meaningful for -0 and -Infinity. The sign of NaN is reported as Positive,
// no rule depends on it.
func (n Number) Sign() Sign {
	if n.Class() == ClassNaN || !math.Signbit(float64(n)) {
		return Positive
	}
	return Negative
}

// IsNaN returns true iff x is NaN, the only value not equal to itself.
func IsNaN(x Number) bool {
	return x != x
}

// StrictEquals implements the === operator on numbers. NaN is not equal to
// anything, including itself, and +0 is equal to -0.
func StrictEquals(x, y Number) bool {
	if IsNaN(x) || IsNaN(y) {
		return false
	}
	return float64(x) == float64(y)
}

// SameValue implements the SameValue comparison (Object.is): NaN is the same
// value as NaN, and +0 is not the same value as -0.
func SameValue(x, y Number) bool {
	cx, cy := x.Class(), y.Class()
	if cx != ClassFinite || cy != ClassFinite {
		return cx == cy
	}
	return float64(x) == float64(y)
}
