package number_test

import (
	"math"
	"testing"

	"github.com/mna/ecmanum/lang/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	cases := []struct {
		in   number.Number
		want string
	}{
		{nan, "NaN"},
		{posInf, "Infinity"},
		{negInf, "-Infinity"},
		{posZ, "0"},
		{negZ, "0"},
		{1, "1"},
		{-6, "-6"},
		{0.1, "0.1"},
		{-0.5, "-0.5"},
		{1.5, "1.5"},
		{123.456, "123.456"},
		{9999999, "9999999"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e21, "1.5e+21"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{-1.25e-7, "-1.25e-7"},
		{0.30000000000000004, "0.30000000000000004"},
		{number.Of(math.MaxFloat64), "1.7976931348623157e+308"},
		{number.Of(math.SmallestNonzeroFloat64), "5e-324"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.in.String())
		})
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want number.Number
	}{
		{"0", posZ},
		{"-0", negZ},
		{"+0", posZ},
		{"Infinity", posInf},
		{"+Infinity", posInf},
		{"-Infinity", negInf},
		{"NaN", nan},
		{"3", 3},
		{"-3.0", -3},
		{" 0.1 ", 0.1},
		{"1e21", 1e21},
		{"1e400", posInf},
		{"-1e400", negInf},
		{"1e-400", posZ},
		{"-1e-400", negZ},
		{"5e-324", number.Of(math.SmallestNonzeroFloat64)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := number.Parse(c.in)
			require.NoError(t, err)
			assertSame(t, c.want, got)
		})
	}

	invalid := []string{"", "-", "--1", "+-1", "inf", "-inf", "Inf", "nan", "-NaN", "1x", "1.2.3", "infinity", "1_000", "-1_0.5", "0x_1"}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := number.Parse(in)
			assert.ErrorIs(t, err, number.ErrSyntax)
		})
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	for _, n := range specials {
		if n.Class() == number.ClassNegZero {
			// -0 prints as "0"
			continue
		}
		got, err := number.Parse(n.String())
		require.NoError(t, err)
		assertSame(t, n, got)
	}
}
