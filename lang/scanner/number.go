package scanner

import (
	"errors"
	"strconv"
	"strings"
)

// number scans a numeric literal and returns its raw text and decoded value.
// Decimal literals may have a fractional part and an exponent, integer
// literals may also be written in hexadecimal, octal or binary with the 0x,
// 0o and 0b prefixes. The '_' separator is allowed between digits.
func (s *Scanner) number() (lit string, val float64) {
	startOff, startLine, startCol := s.off, s.line, s.col
	errCount := s.errCount

	base := 10        // number base
	prefix := rune(0) // one of 0 (decimal), 'x', 'o', or 'b'
	digsep := 0       // bit 0: digit present, bit 1: '_' present
	invalid := -1     // index of invalid digit in literal, or < 0

	// integer part
	if s.cur != '.' {
		if s.cur == '0' {
			s.advance()
			switch lower(s.cur) {
			case 'x':
				s.advance()
				base, prefix = 16, 'x'
			case 'o':
				s.advance()
				base, prefix = 8, 'o'
			case 'b':
				s.advance()
				base, prefix = 2, 'b'
			default:
				// the leading 0 is a digit
				digsep = 1
				if isDecimal(s.cur) || s.cur == '_' {
					s.error(startOff, startLine, startCol, "decimal literal cannot have a leading zero")
				}
			}
		}
		digsep |= s.digits(base, &invalid)
	}

	// fractional part
	if prefix == 0 && s.cur == '.' {
		s.advance()
		digsep |= s.digits(base, &invalid)
	}

	if digsep&1 == 0 {
		s.error(s.off, s.line, s.col, litname(prefix)+" has no digits")
	}

	// exponent
	if prefix == 0 && lower(s.cur) == 'e' {
		s.advance()
		if s.cur == '+' || s.cur == '-' {
			s.advance()
		}
		ds := s.digits(10, nil)
		digsep |= ds
		if ds&1 == 0 {
			s.error(s.off, s.line, s.col, "exponent has no digits")
		}
	}

	lit = string(s.src[startOff:s.off])
	if invalid >= 0 {
		s.errorf(invalid, startLine, startCol+invalid-startOff, "invalid digit %q in %s", lit[invalid-startOff], litname(prefix))
	}
	if digsep&2 != 0 {
		if i := invalidSep(lit); i >= 0 {
			s.error(startOff+i, startLine, startCol+i, "'_' must separate successive digits")
		}
	}
	if isLetter(s.cur) || isDigit(s.cur) {
		s.errorf(s.off, s.line, s.col, "invalid character %#U after %s", s.cur, litname(prefix))
	}

	val, err := numberToFloat(lit, base)
	if err != nil && errCount == s.errCount {
		// only report if the literal did not already fail with a more specific
		// error.
		s.errorf(startOff, startLine, startCol, "invalid %s %s", litname(prefix), lit)
	}
	return lit, val
}

func isDecimal(rn rune) bool {
	return '0' <= rn && rn <= '9'
}

func isHexadecimal(rn rune) bool {
	return isDecimal(rn) ||
		'a' <= rn && rn <= 'f' ||
		'A' <= rn && rn <= 'F'
}

// digits accepts the sequence { digit | '_' }.
// If base <= 10, digits accepts any decimal digit but records
// the offset (relative to the source start) of a digit >= base
// in *invalid, if *invalid < 0.
// digits returns a bitset describing whether the sequence contained
// digits (bit 0 is set), or separators '_' (bit 1 is set).
func (s *Scanner) digits(base int, invalid *int) (digsep int) {
	if base <= 10 {
		max := rune('0' + base)
		for isDecimal(s.cur) || s.cur == '_' {
			ds := 1
			if s.cur == '_' {
				ds = 2
			} else if s.cur >= max && invalid != nil && *invalid < 0 {
				*invalid = s.off
			}
			digsep |= ds
			s.advance()
		}
	} else {
		for isHexadecimal(s.cur) || s.cur == '_' {
			ds := 1
			if s.cur == '_' {
				ds = 2
			}
			digsep |= ds
			s.advance()
		}
	}
	return
}

// invalidSep returns the index of the first invalid separator in x, or -1.
func invalidSep(x string) int {
	x1 := ' ' // prefix char, we only care if it's 'x'
	d := '.'  // digit, one of '_', '0' (a digit), or '.' (anything else)
	i := 0

	// a prefix counts as a digit
	if len(x) >= 2 && x[0] == '0' {
		x1 = lower(rune(x[1]))
		if x1 == 'x' || x1 == 'o' || x1 == 'b' {
			d = '0'
			i = 2
		}
	}

	// mantissa and exponent
	for ; i < len(x); i++ {
		p := d // previous digit
		d = rune(x[i])
		switch {
		case d == '_':
			if p != '0' {
				return i
			}
		case isDecimal(d) || x1 == 'x' && isHexadecimal(d):
			d = '0'
		default:
			if p == '_' {
				return i - 1
			}
			d = '.'
		}
	}
	if d == '_' {
		return len(x) - 1
	}

	return -1
}

func litname(prefix rune) string {
	switch prefix {
	case 'x':
		return "hexadecimal literal"
	case 'o':
		return "octal literal"
	case 'b':
		return "binary literal"
	}
	return "decimal literal"
}

func lower(ch rune) rune {
	return ('a' - 'A') | ch // returns lower-case ch iff ch is ASCII letter
}

// numberToFloat decodes the literal to the nearest float64. Magnitudes too
// large to represent decode to +Inf.
func numberToFloat(lit string, base int) (float64, error) {
	lit = strings.ReplaceAll(lit, "_", "")
	switch base {
	case 16:
		// ParseFloat requires the p exponent for hexadecimal mantissas.
		lit += "p0"
	case 8, 2:
		n, err := strconv.ParseUint(lit[2:], base, 64)
		if err == nil {
			return float64(n), nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
		// too large for an uint64, go through the hexadecimal representation
		return bigRadixToFloat(lit[2:], base)
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

// bigRadixToFloat converts the octal or binary digits to a float64, rounding
// to nearest.
func bigRadixToFloat(digits string, base int) (float64, error) {
	bitsPerDigit := 3
	if base == 2 {
		bitsPerDigit = 1
	}

	// convert to a binary string, then group by 4 bits to build hex digits.
	var bin strings.Builder
	for _, d := range digits {
		v := int(d - '0')
		if v < 0 || v >= base {
			return 0, strconv.ErrSyntax
		}
		s := strconv.FormatInt(int64(v), 2)
		bin.WriteString(strings.Repeat("0", bitsPerDigit-len(s)))
		bin.WriteString(s)
	}
	b := bin.String()
	if pad := len(b) % 4; pad != 0 {
		b = strings.Repeat("0", 4-pad) + b
	}

	var hex strings.Builder
	hex.WriteString("0x")
	for i := 0; i < len(b); i += 4 {
		v, _ := strconv.ParseUint(b[i:i+4], 2, 8)
		hex.WriteString(strconv.FormatUint(v, 16))
	}
	hex.WriteString("p0")

	f, err := strconv.ParseFloat(hex.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}
