package trig

import (
	"github.com/db47h/decimal"
	dctx "github.com/db47h/decimal/context"
)

// seedFunc builds the initial accumulator state for one series.
type seedFunc func(ctx *dctx.Context, x *decimal.Decimal) *series

// Cos returns cos(x) rounded to prec significant digits.
//
// x is used as given (no range reduction). The series converges for every
// finite x but loses roughly log10(e^|x|) digits to cancellation, so reduce
// large angles with Pi first.
//
// Errors: ErrInvalidPrecision, ErrInvalidArgument, and ErrNonConvergence
// when a WithMaxTerms cap is hit.
func Cos(x *decimal.Decimal, prec int, opts ...Option) (*decimal.Decimal, error) {
	return evalSeries(Cosine, seedCos, factorialStep, x, prec, gatherOptions(opts...))
}

// Sin returns sin(x) rounded to prec significant digits.
//
// Errors: ErrInvalidPrecision, ErrInvalidArgument, ErrNonConvergence.
func Sin(x *decimal.Decimal, prec int, opts ...Option) (*decimal.Decimal, error) {
	return evalSeries(Sine, seedSin, factorialStep, x, prec, gatherOptions(opts...))
}

// Sec returns 1/cos(x) at prec digits.
// Fails with ErrDivisionByZero when cos(x) rounds to zero at prec digits.
func Sec(x *decimal.Decimal, prec int, opts ...Option) (*decimal.Decimal, error) {
	o := gatherOptions(opts...)
	c, err := evalSeries(Secant, seedCos, factorialStep, x, prec, o)
	if err != nil {
		return nil, err
	}

	return reciprocal("Sec", c, prec, o.mode)
}

// Csc returns 1/sin(x) at prec digits.
// Fails with ErrDivisionByZero when sin(x) rounds to zero (x = 0 in particular).
func Csc(x *decimal.Decimal, prec int, opts ...Option) (*decimal.Decimal, error) {
	o := gatherOptions(opts...)
	s, err := evalSeries(Cosecant, seedSin, factorialStep, x, prec, o)
	if err != nil {
		return nil, err
	}

	return reciprocal("Csc", s, prec, o.mode)
}

// Atan returns atan(x) rounded to prec significant digits.
//
// The Gregory series only converges for |x| ≤ 1 and is practical for |x| < 1.
// No argument reduction is done and no term cap applies by default, so for
// |x| ≥ 1 the call does not return in practical time. Bound it with
// WithMaxTerms (ErrNonConvergence) or reject such x up front with
// WithDomainCheck (ErrOutOfDomain).
func Atan(x *decimal.Decimal, prec int, opts ...Option) (*decimal.Decimal, error) {
	o := gatherOptions(opts...)
	if o.domainCheck {
		if err := validatePrecision(prec, o.guard); err != nil {
			return nil, trigErrorf("Atan", err)
		}
		if err := validateArgument(x); err != nil {
			return nil, trigErrorf("Atan", err)
		}
		one := new(decimal.Decimal).SetInt64(1)
		if new(decimal.Decimal).Abs(x).Cmp(one) >= 0 {
			return nil, trigErrorf("Atan", ErrOutOfDomain)
		}
	}

	return evalSeries(Arctangent, seedAtan, gregoryStep, x, prec, o)
}

// Evaluate dispatches to the operation named by fn.
// Returns ErrUnknownFunc for values outside the Func constants.
func Evaluate(fn Func, x *decimal.Decimal, prec int, opts ...Option) (*decimal.Decimal, error) {
	switch fn {
	case Cosine:
		return Cos(x, prec, opts...)
	case Sine:
		return Sin(x, prec, opts...)
	case Secant:
		return Sec(x, prec, opts...)
	case Cosecant:
		return Csc(x, prec, opts...)
	case Arctangent:
		return Atan(x, prec, opts...)
	default:
		return nil, trigErrorf("Evaluate", ErrUnknownFunc)
	}
}

// evalSeries validates inputs, runs one series in a fresh context and rounds
// the sum to prec digits. fn is the public operation, used for error tags and
// logging; Sec and Csc pass their own name while running the cos/sin series.
func evalSeries(fn Func, seed seedFunc, step stepFunc, x *decimal.Decimal, prec int, o Options) (*decimal.Decimal, error) {
	tag := opTag(fn)
	if err := validatePrecision(prec, o.guard); err != nil {
		return nil, trigErrorf(tag, err)
	}
	if err := validateArgument(x); err != nil {
		return nil, trigErrorf(tag, err)
	}

	ctx := dctx.New(uint(prec+o.guard), o.mode)
	s := seed(&ctx, x)
	terms, err := s.converge(step, o.maxTerms)
	if o.logger != nil {
		o.logger.Debug("trig series finished",
			"func", fn.String(), "prec", prec, "guard", o.guard, "terms", terms, "error", err)
	}
	if err != nil {
		return nil, trigErrorf(tag, err)
	}

	return roundTo(s.sum, prec, o.mode), nil
}

// reciprocal returns 1/base at prec digits, or ErrDivisionByZero.
func reciprocal(tag string, base *decimal.Decimal, prec int, mode decimal.RoundingMode) (*decimal.Decimal, error) {
	if base.Sign() == 0 {
		return nil, trigErrorf(tag, ErrDivisionByZero)
	}
	one := new(decimal.Decimal).SetInt64(1)

	return new(decimal.Decimal).SetMode(mode).SetPrec(uint(prec)).Quo(one, base), nil
}

// opTag names the public operation for error wrapping.
func opTag(fn Func) string {
	switch fn {
	case Cosine:
		return "Cos"
	case Sine:
		return "Sin"
	case Secant:
		return "Sec"
	case Cosecant:
		return "Csc"
	case Arctangent:
		return "Atan"
	}

	return "Evaluate"
}
