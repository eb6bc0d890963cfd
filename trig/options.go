// SPDX-License-Identifier: MIT

// Package trig: functional configuration for the series evaluator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options never carry the target precision; it is an explicit argument of
//     every operation so that a missing or zero precision is a visible error.
//   - The working context is derived per call from (prec + guard, mode) and is
//     never shared.
package trig

import (
	"log/slog"

	"github.com/db47h/decimal"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGuardDigits is the number of extra digits carried while summing.
	DefaultGuardDigits = 2

	// DefaultRoundingMode rounds half to even, matching IEEE-754 decimal defaults.
	DefaultRoundingMode = decimal.ToNearestEven

	// DefaultMaxTerms leaves the number of series steps uncapped, so every
	// convergent series runs to its fixed point however slowly it settles
	// (atan close to |x| = 1). Set a cap with WithMaxTerms to bound a call.
	DefaultMaxTerms = 0

	// DefaultDomainCheck leaves atan unrestricted (documented scope limitation).
	DefaultDomainCheck = false
)

const (
	panicGuardInvalid    = "trig: WithGuardDigits: guard must be >= 0"
	panicMaxTermsInvalid = "trig: WithMaxTerms: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	guard       int
	mode        decimal.RoundingMode
	maxTerms    int
	domainCheck bool
	logger      *slog.Logger
}

// WithGuardDigits sets how many extra digits the series carries beyond the
// requested precision. Panics if guard < 0.
func WithGuardDigits(guard int) Option {
	if guard < 0 {
		panic(panicGuardInvalid)
	}

	return func(o *Options) { o.guard = guard }
}

// WithRoundingMode sets the rounding mode used by every intermediate operation
// and by the final rounding to the requested precision.
func WithRoundingMode(mode decimal.RoundingMode) Option {
	return func(o *Options) { o.mode = mode }
}

// WithMaxTerms caps the number of series steps; exceeding it yields
// ErrNonConvergence. n == 0 removes the cap. Panics if n < 0.
func WithMaxTerms(n int) Option {
	if n < 0 {
		panic(panicMaxTermsInvalid)
	}

	return func(o *Options) { o.maxTerms = n }
}

// WithDomainCheck makes Atan reject |x| ≥ 1 with ErrOutOfDomain instead of
// summing a series that converges too slowly or diverges there.
func WithDomainCheck() Option {
	return func(o *Options) { o.domainCheck = true }
}

// WithLogger routes one Debug record per evaluation (func, prec, terms) to l.
// A nil logger keeps the evaluator silent.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts on top of the defaults. Useful for inspecting the
// effective configuration (e.g. from a CLI).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// GuardDigits reports the effective guard digit count.
func (o Options) GuardDigits() int { return o.guard }

// RoundingMode reports the effective rounding mode.
func (o Options) RoundingMode() decimal.RoundingMode { return o.mode }

// MaxTerms reports the effective term cap (0 = unlimited).
func (o Options) MaxTerms() int { return o.maxTerms }

// DomainCheck reports whether Atan rejects |x| ≥ 1.
func (o Options) DomainCheck() bool { return o.domainCheck }

// gatherOptions applies user setters on top of the documented defaults.
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		guard:       DefaultGuardDigits,
		mode:        DefaultRoundingMode,
		maxTerms:    DefaultMaxTerms,
		domainCheck: DefaultDomainCheck,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
