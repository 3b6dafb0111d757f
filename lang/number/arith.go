package number

import (
	"math"
)

// Neg implements the unary - operator. It flips the sign of every value
// including zeros and infinities; NaN stays NaN.
func Neg(x Number) Number {
	if IsNaN(x) {
		return NaN()
	}
	return Number(math.Float64frombits(math.Float64bits(float64(x)) ^ signMask))
}

// Plus implements the unary + operator, the identity on numbers.
func Plus(x Number) Number {
	if IsNaN(x) {
		return NaN()
	}
	return x
}

// Add implements the + operator on numbers.
//
//   - If either operand is NaN, the result is NaN.
//   - The sum of two infinities of opposite sign is NaN, of the same sign it
//     is that infinity.
//   - The sum of an infinity and a finite value is the infinity.
//   - The sum of two negative zeros is -0, of two zeros of any other signs it
//     is +0.
//   - The sum of a zero and a nonzero finite value is the nonzero operand.
//   - The sum of two nonzero finite values of the same magnitude and opposite
//     sign is +0.
//   - Otherwise the sum is rounded to nearest, ties to even, and a magnitude
//     too large to represent becomes an infinity of the appropriate sign.
func Add(x, y Number) Number {
	cx, cy := x.Class(), y.Class()
	switch {
	case cx == ClassNaN || cy == ClassNaN:
		return NaN()

	case cx.IsInf() && cy.IsInf():
		if cx != cy {
			return NaN()
		}
		return x
	case cx.IsInf():
		return x
	case cy.IsInf():
		return y

	case cx.IsZero() && cy.IsZero():
		if cx == ClassNegZero && cy == ClassNegZero {
			return Zero(Negative)
		}
		return Zero(Positive)
	case cx.IsZero():
		return y
	case cy.IsZero():
		return x
	}

	sum := float64(x) + float64(y)
	if sum == 0 {
		// exact cancellation, round-to-nearest yields +0
		return Zero(Positive)
	}
	return Number(sum)
}

// Sub implements the - operator on numbers: x - y is x + (-y).
func Sub(x, y Number) Number {
	return Add(x, Neg(y))
}

// Mul implements the * operator on numbers. The rules are applied in order:
//
//  1. If either operand is NaN, the result is NaN.
//  2. The sign of the result is positive iff both operands have the same
//     sign.
//  3. The product of a zero and an infinity is NaN.
//  4. The product of two infinities is an infinity of the sign from 2.
//  5. The product of an infinity and a finite nonzero value is an infinity
//     of the sign from 2.
//  6. Otherwise the product is rounded to nearest, overflow gives an
//     infinity and underflow a (possibly subnormal) value or a zero of the
//     sign from 2.
func Mul(x, y Number) Number {
	cx, cy := x.Class(), y.Class()
	if cx == ClassNaN || cy == ClassNaN {
		return NaN()
	}

	sign := x.Sign().Mul(y.Sign())
	switch {
	case cx.IsZero() && cy.IsInf(), cx.IsInf() && cy.IsZero():
		return NaN()
	case cx.IsInf() || cy.IsInf():
		return Inf(sign)
	}
	return rounded(float64(x)*float64(y), sign)
}

// Div implements the / operator on numbers. The rules are applied in order:
//
//  1. If either operand is NaN, the result is NaN.
//  2. The sign of the result is positive iff both operands have the same
//     sign.
//  3. An infinity divided by an infinity is NaN.
//  4. An infinity divided by a finite value (zero or not) is an infinity of
//     the sign from 2.
//  5. A finite nonzero value divided by a zero is an infinity of the sign
//     from 2.
//  6. A zero divided by a zero is NaN.
//  7. A zero divided by a finite nonzero value is a zero of the sign from 2.
//  8. A finite value divided by an infinity is a zero of the sign from 2.
//  9. Otherwise the quotient is rounded to nearest, overflow and underflow
//     are handled as for Mul.
func Div(x, y Number) Number {
	cx, cy := x.Class(), y.Class()
	if cx == ClassNaN || cy == ClassNaN {
		return NaN()
	}

	sign := x.Sign().Mul(y.Sign())
	switch {
	case cx.IsInf() && cy.IsInf():
		return NaN()
	case cx.IsInf():
		return Inf(sign)
	case cy.IsZero():
		if cx.IsZero() {
			return NaN()
		}
		return Inf(sign)
	case cx.IsZero(), cy.IsInf():
		return Zero(sign)
	}
	return rounded(float64(x)/float64(y), sign)
}

// rounded returns the Number for the rounded result f of an operation on two
// finite nonzero operands, forcing the sign of the overflowed infinity or
// underflowed zero to sign.
func rounded(f float64, sign Sign) Number {
	switch {
	case f == 0:
		return Zero(sign)
	case math.IsInf(f, 0):
		return Inf(sign)
	}
	return Number(f)
}
