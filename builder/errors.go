// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach context with %w ("Path: n=1 < min=2: ...").
//   • Errors from core (ErrBadWeight, ErrMultiEdgeNotAllowed) pass through wrapped.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed
// (e.g. a nil constructor handed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
