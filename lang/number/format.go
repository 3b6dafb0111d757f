package number

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// String returns the decimal representation of n as produced by
// Number.prototype.toString with a radix of 10: the shortest digit string that
// round-trips, in plain notation when the decimal exponent is in [-7, 21) and
// in exponential notation otherwise. Both zeros are printed as "0".
func (n Number) String() string {
	switch n.Class() {
	case ClassNaN:
		return "NaN"
	case ClassPosZero, ClassNegZero:
		return "0"
	case ClassPosInf:
		return "Infinity"
	case ClassNegInf:
		return "-Infinity"
	}
	if n.Sign() == Negative {
		return "-" + Neg(n).String()
	}

	// shortest round-trip digits, as d.ddde±xx
	s := strconv.FormatFloat(float64(n), 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)
	e, _ := strconv.Atoi(exp)

	k := len(digits) // number of significant digits
	p := e + 1       // position of the decimal point relative to the digits

	var sb strings.Builder
	switch {
	case k <= p && p <= 21:
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", p-k))
	case 0 < p && p <= 21:
		sb.WriteString(digits[:p])
		sb.WriteByte('.')
		sb.WriteString(digits[p:])
	case -6 < p && p <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -p))
		sb.WriteString(digits)
	default:
		sb.WriteByte(digits[0])
		if k > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('e')
		if e >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(e))
	}
	return sb.String()
}

// ErrSyntax is returned (wrapped) by Parse when the string is not a valid
// numeric literal.
var ErrSyntax = errors.New("invalid numeric literal")

// Parse converts the decimal numeric literal s to the nearest Number. It
// accepts an optional leading sign and the "Infinity" and "NaN" spellings, so
// that it can parse the output of String as well as "-0". Magnitudes too
// large to represent parse as an infinity, too small ones as a zero of the
// appropriate sign.
func Parse(s string) (Number, error) {
	body := strings.TrimSpace(s)
	sign := Positive
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = Negative
		}
		body = body[1:]
	}

	var n Number
	switch body {
	case "Infinity":
		n = Inf(Positive)
	case "NaN":
		if body != strings.TrimSpace(s) {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		return NaN(), nil
	default:
		// strconv also accepts the inf and nan spellings, signs and digit
		// separators, which are not numeric literals.
		lower := strings.ToLower(body)
		if body == "" || body[0] == '+' || body[0] == '-' || strings.Contains(body, "_") ||
			strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		f, err := strconv.ParseFloat(body, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		n = Number(f)
	}

	if sign == Negative {
		n = Neg(n)
	}
	return n, nil
}
