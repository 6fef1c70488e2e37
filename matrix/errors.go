// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with an
// operation tag) and tests match them via errors.Is. No algorithm panics on
// user-triggered error conditions.

package matrix

import "errors"

// Error priority, checked in this order by every facade:
// nil -> shape/index -> NaN/Inf -> structural violations -> numerical failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrGraphNil indicates that a nil *core.Graph was passed into a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a vertex ID is not present in the index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrNotLaplacian indicates that a matrix violates the Laplacian contract:
	// symmetric, non-positive off-diagonal, zero row and column sums.
	ErrNotLaplacian = errors.New("matrix: not a graph Laplacian")

	// ErrSVDFailed indicates that the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("matrix: SVD factorization failed")
)
