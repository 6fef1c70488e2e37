// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for builders, validators and the
// pseudoinverse. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a sequence of setters.
//
// Notes:
//   - eps and rcond are different knobs. eps is an absolute tolerance for
//     structural checks (symmetry, zero row sums). rcond is relative: singular
//     values σ ≤ rcond·σ_max are discarded by PseudoInverse.
//   - The numeric policy (validateNaNInf) is copied into matrices at creation
//     time; existing matrices keep their own flag.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultTolerance is the relative singular-value cutoff (rcond) of
	// PseudoInverse; it matches the usual numerical-library default.
	DefaultTolerance = 1e-15

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultMaxRank disables the rank cap of PseudoInverse.
	DefaultMaxRank = -1
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "matrix: WithTolerance: rcond must be finite, non-negative"
	panicMaxRankInvalid   = "matrix: WithMaxRank: k must be non-negative"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	rcond          float64 // >= 0; DefaultTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
	maxRank        int     // < 0 disables; DefaultMaxRank
}

// WithEpsilon sets the absolute tolerance eps used by structural checks
// (ValidateSymmetric inside PseudoInverse, ValidateLaplacian on built L).
//
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0; panic otherwise.
//   - Stage 2: return a setter that writes eps into Options.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithTolerance sets the relative singular-value cutoff rcond of
// PseudoInverse: σ ≤ rcond·σ_max is treated as zero.
//
// Behavior highlights:
//   - rcond = 0 keeps every strictly positive singular value.
//   - Larger rcond lowers the reported rank on ill-conditioned input.
//
// Errors:
//   - Panics with a stable message when rcond is negative or non-finite.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithTolerance(rcond float64) Option {
	if isNonFinite(rcond) || rcond < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

// WithMaxRank caps the number of singular values PseudoInverse keeps at k,
// on top of the rcond cutoff. Callers that know the structural rank (n − c
// for a Laplacian with c components) use it to drop kernel directions that
// round-off lifted above the cutoff.
// Panics if k < 0.
func WithMaxRank(k int) Option {
	if k < 0 {
		panic(panicMaxRankInvalid)
	}

	return func(o *Options) { o.maxRank = k }
}

// WithValidateNaNInf enables strict finite-value validation for newly
// created matrices (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Input validation of PseudoInverse is unaffected: SVD never accepts NaN/±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults and returns the
// effective configuration (useful for logging and tests).
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Tolerance returns the resolved singular-value cutoff rcond.
func (o Options) Tolerance() float64 { return o.rcond }

// ValidateNaNInf reports whether new matrices reject NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// MaxRank returns the rank cap, or a negative value when uncapped.
func (o Options) MaxRank() int { return o.maxRank }

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters apply in order; last writer wins.
// Complexity: O(k), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		rcond:          DefaultTolerance,
		validateNaNInf: DefaultValidateNaNInf,
		maxRank:        DefaultMaxRank,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
