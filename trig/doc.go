// Package trig evaluates trigonometric functions to an arbitrary number of
// significant decimal digits using Taylor series over base-10 arithmetic.
//
// 🚀 What does it compute?
//
//	cos, sin      : alternating factorial series, convergent for every finite x
//	sec, csc      : reciprocals of cos and sin (not independent series)
//	atan          : Gregory series, useful only for |x| < 1
//
// ✨ Key features:
//   - decimal mantissa (github.com/db47h/decimal): no binary rounding, ever
//   - guard digits: the series runs at P+2 digits and the result is rounded to P
//   - fixed-point termination: summation stops when a new term no longer
//     changes the rounded sum
//   - call-local precision context: no global state, safe for concurrent use
//   - optional term cap, domain check and slog debug logging (see Option)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dectrig/trig"
//
//	x, _ := trig.Parse("0.5")
//	c, err := trig.Cos(x, 50)
//	if err != nil {
//	  // ErrInvalidPrecision, ErrInvalidArgument, ErrNonConvergence
//	}
//	fmt.Println(c.Text('g', 50))
//
// Range reduction is the caller's job. Use Pi to map an angle into a principal
// interval before calling Cos/Sin, and keep |x| < 1 for Atan.
//
// Complexity:
//
//   - Terms:  O(P / log P) for cos/sin with |x| ≤ 1; O(P / -log|x|) for atan
//   - Each term costs one multiplication and one division at P+guard digits.
package trig
