package trig

import (
	"strings"

	"github.com/db47h/decimal"
)

// validatePrecision checks 1 ≤ prec and prec+guard ≤ decimal.MaxPrec.
func validatePrecision(prec, guard int) error {
	if prec < 1 {
		return ErrInvalidPrecision
	}
	if uint64(prec)+uint64(guard) > uint64(decimal.MaxPrec) {
		return ErrInvalidPrecision
	}

	return nil
}

// validateArgument rejects nil and ±Inf; the series needs a finite value.
func validateArgument(x *decimal.Decimal) error {
	if x == nil || x.IsInf() {
		return ErrInvalidArgument
	}

	return nil
}

// mantissaDigits counts the decimal digits before any exponent marker in s.
// Used to give parsed values exactly enough precision to be stored without
// rounding.
func mantissaDigits(s string) int {
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}

	return n
}
