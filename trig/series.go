// SPDX-License-Identifier: MIT
// Package: trig
//
// Series engine shared by Cos, Sin and Atan.
//
// Algorithm Outline:
//  1. Build a call-local context at prec+guard digits.
//  2. Seed sum, numerator and denominator for the requested function. The
//     seeds and the factorial are exact; x² is rounded once.
//  3. Repeat one step (advance index, grow numerator and denominator, add the
//     signed term) until the sum equals the previous sum at working precision.
//  4. Round the sum into a fresh Decimal of precision prec.
//
// The context is never shared, so there is no precision to restore on any
// exit path: the caller's values keep their own precision throughout.

package trig

import (
	"math/big"

	"github.com/db47h/decimal"
	dctx "github.com/db47h/decimal/context"
)

// series holds the accumulator state for one evaluation.
//
// Context operations re-precision their destination before writing, so a
// destination never doubles as an operand: each step writes into a spare
// accumulator and swaps it in.
type series struct {
	ctx *dctx.Context

	sum  *decimal.Decimal // current partial sum
	last *decimal.Decimal // partial sum before the latest step
	num  *decimal.Decimal // term numerator, x^k (with sign for atan)
	term *decimal.Decimal // scratch
	xx   *decimal.Decimal // x² (cos/sin) or -x² (atan), computed once
	den  *big.Int         // exact running factorial (cos/sin)

	i   int64 // term index
	neg bool  // sign of the next term (cos/sin)
}

// stepFunc advances s by one term.
type stepFunc func(s *series)

// newSeries allocates the accumulators at the context's working precision.
// x² is rounded once, straight from the caller's x.
func newSeries(ctx *dctx.Context, x *decimal.Decimal) *series {
	s := &series{
		ctx:  ctx,
		sum:  ctx.New(),
		last: ctx.New(),
		num:  ctx.New(),
		term: ctx.New(),
		xx:   ctx.New(),
		den:  big.NewInt(1),
	}
	ctx.Mul(s.xx, x, x)

	return s
}

// int64Digits holds any int64 without rounding.
const int64Digits = 19

// exact returns a copy of x at x's own precision.
func exact(x *decimal.Decimal) *decimal.Decimal {
	return new(decimal.Decimal).SetPrec(x.Prec()).Set(x)
}

// exactInt returns n as a Decimal wide enough to hold every digit of n.
func exactInt(n *big.Int) *decimal.Decimal {
	digits := uint(n.BitLen())*30103/100000 + 2

	return new(decimal.Decimal).SetPrec(digits).SetInt(n)
}

// seedCos: sum = 1, num = 1, den = 1, i = 0.
func seedCos(ctx *dctx.Context, x *decimal.Decimal) *series {
	s := newSeries(ctx, x)
	s.sum.SetInt64(1)
	s.num.SetInt64(1)

	return s
}

// seedSin: sum = x, num = x, den = 1, i = 1. Both start unrounded.
func seedSin(ctx *dctx.Context, x *decimal.Decimal) *series {
	s := newSeries(ctx, x)
	s.sum = exact(x)
	s.num = exact(x)
	s.i = 1

	return s
}

// seedAtan: sum = x, num = x, i = 0, xx = -x². sum and num start unrounded.
func seedAtan(ctx *dctx.Context, x *decimal.Decimal) *series {
	s := newSeries(ctx, x)
	s.sum = exact(x)
	s.num = exact(x)
	ctx.Neg(s.xx, s.xx)

	return s
}

// mulNum sets num = num·xx.
func (s *series) mulNum() {
	s.ctx.Mul(s.term, s.num, s.xx)
	s.num, s.term = s.term, s.num
}

// addTerm sets sum = sum ± term and keeps the previous sum in last.
func (s *series) addTerm(neg bool) {
	if neg {
		s.ctx.Sub(s.last, s.sum, s.term)
	} else {
		s.ctx.Add(s.last, s.sum, s.term)
	}
	s.sum, s.last = s.last, s.sum
}

// factorialStep is the cos/sin step:
// i += 2; den *= i(i-1); num *= x²; flip sign; sum ± num/den.
func factorialStep(s *series) {
	s.i += 2
	s.den.Mul(s.den, big.NewInt(s.i*(s.i-1)))
	s.mulNum()
	s.neg = !s.neg
	s.ctx.Quo(s.term, s.num, exactInt(s.den))
	s.addTerm(s.neg)
}

// gregoryStep is the atan step: i += 1; num *= -x²; sum += num/(2i+1).
func gregoryStep(s *series) {
	s.i++
	s.mulNum()
	s.ctx.Quo(s.term, s.num, new(decimal.Decimal).SetPrec(int64Digits).SetInt64(2*s.i+1))
	s.addTerm(false)
}

// converge applies step until the sum reaches a fixed point.
// Returns the number of steps taken.
//
// Errors:
//   - ErrNonConvergence when maxTerms > 0 steps did not settle the sum.
//   - ErrInvalidArgument when the context recorded a NaN (should not happen
//     for finite input).
func (s *series) converge(step stepFunc, maxTerms int) (int, error) {
	for terms := 1; ; terms++ {
		step(s)
		if err := s.ctx.Err(); err != nil {
			return terms, ErrInvalidArgument
		}
		if s.sum.Cmp(s.last) == 0 {
			return terms, nil
		}
		if maxTerms > 0 && terms >= maxTerms {
			return terms, ErrNonConvergence
		}
	}
}

// roundTo returns a new Decimal holding x rounded to prec digits with mode.
func roundTo(x *decimal.Decimal, prec int, mode decimal.RoundingMode) *decimal.Decimal {
	return new(decimal.Decimal).SetMode(mode).SetPrec(uint(prec)).Set(x)
}
