// Package trig_test contains test helpers.
//
// Purpose:
//   - Build exact decimal fixtures from text.
//   - Compare results within a number of decimal digits without going through
//     binary floats.

package trig_test

import (
	"fmt"

	"github.com/db47h/decimal"
	"github.com/katalvlaran/dectrig/trig"
)

// fatalT is satisfied by *testing.T, *testing.B and *rapid.T.
type fatalT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// cmpPrec is the precision used for differences in assertions; large enough
// that subtracting two ≤ 201-digit operands of similar magnitude is exact.
const cmpPrec = 500

// MustParse returns the exact Decimal for s or fails the test.
func MustParse(tb fatalT, s string) *decimal.Decimal {
	tb.Helper()
	x, err := trig.Parse(s)
	if err != nil {
		tb.Fatalf("Parse(%q): %v", s, err)
	}

	return x
}

// MustPi returns π at prec digits or fails the test.
func MustPi(tb fatalT, prec int) *decimal.Decimal {
	tb.Helper()
	pi, err := trig.Pi(prec)
	if err != nil {
		tb.Fatalf("Pi(%d): %v", prec, err)
	}

	return pi
}

// one returns the Decimal 1.
func one() *decimal.Decimal {
	return new(decimal.Decimal).SetInt64(1)
}

// neg returns -x without rounding.
func neg(x *decimal.Decimal) *decimal.Decimal {
	return new(decimal.Decimal).Neg(x)
}

// absDiff returns |a - b| computed at cmpPrec digits.
func absDiff(a, b *decimal.Decimal) *decimal.Decimal {
	d := new(decimal.Decimal).SetPrec(cmpPrec).Sub(a, b)

	return d.Abs(d)
}

// pow10 returns 10^-digits.
func pow10(digits int) *decimal.Decimal {
	d, ok := new(decimal.Decimal).SetPrec(10).SetString(fmt.Sprintf("1e-%d", digits))
	if !ok {
		panic("bad exponent")
	}

	return d
}

// withinAbs reports whether |a - b| ≤ 10^-digits.
func withinAbs(a, b *decimal.Decimal, digits int) bool {
	return absDiff(a, b).Cmp(pow10(digits)) <= 0
}

// withinRel reports whether |a - b| ≤ |b| · 10^-digits.
func withinRel(a, b *decimal.Decimal, digits int) bool {
	bound := new(decimal.Decimal).SetPrec(cmpPrec).Abs(b)
	bound.Mul(bound, pow10(digits))

	return absDiff(a, b).Cmp(bound) <= 0
}

// scaled returns n·10^-6 as an exact Decimal.
func scaled(tb fatalT, n int64) *decimal.Decimal {
	tb.Helper()

	return MustParse(tb, fmt.Sprintf("%de-6", n))
}
