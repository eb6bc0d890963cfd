// SPDX-License-Identifier: MIT
// Package trig: sentinel error set.
// Every public operation returns one of these (wrapped with the operation tag)
// and tests match them via errors.Is. Panics are reserved for invalid Option
// constructor arguments.

package trig

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrecision is returned when the requested number of significant
	// digits is < 1, or exceeds what the decimal package (or PiDigits) can carry.
	ErrInvalidPrecision = errors.New("trig: precision must be a positive number of digits")

	// ErrInvalidArgument indicates a nil or infinite argument, or text that is
	// not a decimal number.
	ErrInvalidArgument = errors.New("trig: invalid argument")

	// ErrDivisionByZero is returned by Sec and Csc when the base function rounds
	// to exactly zero at the requested precision.
	ErrDivisionByZero = errors.New("trig: division by zero")

	// ErrNonConvergence indicates the series did not reach a fixed point within
	// the configured term cap (see WithMaxTerms).
	ErrNonConvergence = errors.New("trig: series did not converge")

	// ErrOutOfDomain is returned by Atan for |x| ≥ 1 when WithDomainCheck is set.
	ErrOutOfDomain = errors.New("trig: argument outside series domain")

	// ErrUnknownFunc indicates an unsupported function name or Func value.
	ErrUnknownFunc = errors.New("trig: unknown function")
)

// trigErrorf tags err with the failing operation.
func trigErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
