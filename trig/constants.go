package trig

import (
	"strings"

	"github.com/db47h/decimal"
)

// PiDigits is π to 200 decimal places (201 significant digits).
const PiDigits = "3.14159265358979323846264338327950288419716939937510" +
	"58209749445923078164062862089986280348253421170679" +
	"82148086513282306647093844609550582231725359408128" +
	"48111745028410270193852110555964462294895493038196"

// PiPrecision is the number of significant digits carried by PiDigits.
const PiPrecision = 201

// Pi returns π rounded (half to even) to prec significant digits.
// Returns ErrInvalidPrecision unless 1 ≤ prec ≤ PiPrecision.
//
// Pi is meant for callers doing their own range reduction, e.g. x mod 2π,
// before calling Cos or Sin.
func Pi(prec int) (*decimal.Decimal, error) {
	if prec < 1 || prec > PiPrecision {
		return nil, trigErrorf("Pi", ErrInvalidPrecision)
	}
	pi, ok := new(decimal.Decimal).SetMode(DefaultRoundingMode).SetPrec(uint(prec)).SetString(PiDigits)
	if !ok {
		// unreachable: PiDigits is a valid literal
		panic("trig: malformed PiDigits")
	}

	return pi, nil
}

// Parse converts decimal text ("0.5", "-1.25e-3", "+7") into a Decimal whose
// precision equals the number of mantissa digits, so the value is stored exactly.
// Returns ErrInvalidArgument for empty or malformed input, and for infinities.
func Parse(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	n := mantissaDigits(s)
	if n == 0 {
		return nil, trigErrorf("Parse", ErrInvalidArgument)
	}
	x, ok := new(decimal.Decimal).SetMode(DefaultRoundingMode).SetPrec(uint(n)).SetString(s)
	if !ok || x.IsInf() {
		return nil, trigErrorf("Parse", ErrInvalidArgument)
	}

	return x, nil
}
