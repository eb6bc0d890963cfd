package trig

import (
	"math/big"
	"testing"

	"github.com/db47h/decimal"
	dctx "github.com/db47h/decimal/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReciprocal_ZeroBase covers the Sec path where cos(x) rounds to exactly
// zero: the reciprocal must fail with ErrDivisionByZero, never return ±Inf.
func TestReciprocal_ZeroBase(t *testing.T) {
	zero := new(decimal.Decimal).SetPrec(50)

	got, err := reciprocal("Sec", zero, 50, DefaultRoundingMode)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Nil(t, got)

	negZero := new(decimal.Decimal).SetPrec(50).Neg(zero)
	_, err = reciprocal("Csc", negZero, 50, DefaultRoundingMode)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

// TestReciprocal_Value checks 1/4 = 0.25 at the requested precision.
func TestReciprocal_Value(t *testing.T) {
	four := new(decimal.Decimal).SetInt64(4)

	got, err := reciprocal("Sec", four, 10, DefaultRoundingMode)
	require.NoError(t, err)
	assert.Equal(t, "0.25", got.Text('g', 10))
	assert.Equal(t, uint(10), got.Prec())
}

// TestConverge_Cap ensures the cap is honored exactly and reported.
func TestConverge_Cap(t *testing.T) {
	ctx := dctx.New(22, DefaultRoundingMode)
	x := new(decimal.Decimal).SetInt64(3)
	s := seedAtan(&ctx, x)

	terms, err := s.converge(gregoryStep, 17)
	assert.ErrorIs(t, err, ErrNonConvergence)
	assert.Equal(t, 17, terms)
	assert.EqualValues(t, 17, s.i)
}

// TestConverge_FixedPoint ensures a cos series at low precision settles in a
// handful of terms and leaves the context error-free.
func TestConverge_FixedPoint(t *testing.T) {
	ctx := dctx.New(12, DefaultRoundingMode)
	x, ok := new(decimal.Decimal).SetPrec(2).SetString("0.1")
	require.True(t, ok)
	s := seedCos(&ctx, x)

	terms, err := s.converge(factorialStep, 0)
	require.NoError(t, err)
	assert.Less(t, terms, 10)
	assert.NoError(t, ctx.Err())
}

// TestSeeds verifies the per-function initial state.
func TestSeeds(t *testing.T) {
	ctx := dctx.New(10, DefaultRoundingMode)
	x := new(decimal.Decimal).SetInt64(3)
	one := new(decimal.Decimal).SetInt64(1)

	c := seedCos(&ctx, x)
	assert.Zero(t, c.sum.Cmp(one))
	assert.Zero(t, c.num.Cmp(one))
	assert.EqualValues(t, 0, c.i)
	assert.Equal(t, "9", c.xx.Text('g', -1))

	s := seedSin(&ctx, x)
	assert.Zero(t, s.sum.Cmp(x))
	assert.Zero(t, s.num.Cmp(x))
	assert.EqualValues(t, 1, s.i)
	assert.Equal(t, x.Prec(), s.sum.Prec(), "sin seed keeps x unrounded")

	a := seedAtan(&ctx, x)
	assert.Zero(t, a.sum.Cmp(x))
	assert.Equal(t, x.Prec(), a.num.Prec(), "atan seed keeps x unrounded")
	assert.Equal(t, "-9", a.xx.Text('g', -1))
	assert.EqualValues(t, 0, a.i)
}

// TestSeeds_WideArgument checks x² is rounded once from the full-width x: a
// 30-digit x at 6 working digits must square to round(x²), not round(round(x)²).
func TestSeeds_WideArgument(t *testing.T) {
	ctx := dctx.New(6, DefaultRoundingMode)
	x, ok := new(decimal.Decimal).SetPrec(30).SetString("1.00000499999999999999999999999")
	require.True(t, ok)

	s := seedCos(&ctx, x)
	// x² = 1.00000999999...; a pre-rounded x = 1.00000 would give exactly 1.
	assert.Equal(t, "1.00001", s.xx.Text('g', -1))
}

// TestFactorialStep_ExactDenominator runs cos far enough that the factorial
// outgrows the working precision and checks it stays an exact integer.
func TestFactorialStep_ExactDenominator(t *testing.T) {
	ctx := dctx.New(8, DefaultRoundingMode)
	x := new(decimal.Decimal).SetInt64(1)
	s := seedCos(&ctx, x)
	for k := 0; k < 15; k++ {
		factorialStep(s)
	}

	want := new(big.Int).MulRange(1, 30)
	assert.Zero(t, s.den.Cmp(want), "den = 30!")
	assert.Equal(t, want.String(), exactInt(s.den).Text('f', 0))
}

// TestMantissaDigits covers exponent stripping and sign/point skipping.
func TestMantissaDigits(t *testing.T) {
	cases := map[string]int{
		"":           0,
		"0":          1,
		"-1.25e-3":   3,
		"+7":         1,
		"12345E+100": 5,
		"abc":        0,
		"0.00010":    6,
	}
	for in, want := range cases {
		assert.Equal(t, want, mantissaDigits(in), "mantissaDigits(%q)", in)
	}
}

// TestValidatePrecision covers the lower and upper bounds.
func TestValidatePrecision(t *testing.T) {
	assert.ErrorIs(t, validatePrecision(0, 2), ErrInvalidPrecision)
	assert.NoError(t, validatePrecision(1, 0))
	assert.ErrorIs(t, validatePrecision(int(decimal.MaxPrec), 1), ErrInvalidPrecision)
}

// TestGatherOptions_Defaults pins the documented defaults.
func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptions()
	assert.Equal(t, DefaultGuardDigits, o.guard)
	assert.Equal(t, DefaultRoundingMode, o.mode)
	assert.Equal(t, DefaultMaxTerms, o.maxTerms)
	assert.Equal(t, DefaultDomainCheck, o.domainCheck)
	assert.Nil(t, o.logger)

	o = gatherOptions(nil, WithMaxTerms(0), WithGuardDigits(5))
	assert.Equal(t, 0, o.maxTerms)
	assert.Equal(t, 5, o.guard)
}
