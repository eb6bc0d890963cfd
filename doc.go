// Package dectrig is an arbitrary-precision decimal trigonometry toolkit:
// cos, sin, sec, csc and atan evaluated by Taylor series to any requested
// number of significant digits.
//
// 🚀 What is dectrig?
//
//	A small, concurrency-safe library plus a command line around it:
//		• trig/           : the evaluator: Cos, Sin, Sec, Csc, Atan, Pi, Parse
//		• internal/config/: YAML/TOML settings mapped onto trig options
//		• internal/cmd/   : the cobra command tree (eval, pi, funcs, config show)
//		• cmd/dectrig/    : the binary
//		• examples/       : runnable scenarios (angle table, Machin's π)
//
// ✨ Why decimal?
//
//   - Base-10 throughout: "0.1" is exactly 0.1, results print without binary noise
//   - Call-local precision: every call owns its context, nothing global to restore
//   - Guard digits: series run a little wider than requested, then round once
//
// Quick example:
//
//	x, _ := trig.Parse("0.5")
//	c, _ := trig.Cos(x, 25) // 0.8775825618903727161162816
//
//	go install github.com/katalvlaran/dectrig/cmd/dectrig@latest
//	dectrig eval sin 1 -p 40
package dectrig
