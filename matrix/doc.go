// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra behind resistance-distance
// analytics: a row-major *Dense matrix, canonical validators, small
// deterministic kernels, the graph Laplacian builder and an SVD-based
// Moore–Penrose pseudoinverse.
//
// The package provides:
//
//   - Matrix, a minimal mutable 2-D interface (Rows, Cols, At, Set, Clone),
//     and Dense, its cache-friendly row-major implementation with an optional
//     finite-only numeric policy (NaN/±Inf rejected by Set when enabled).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSymmetric, ...) shared
//     by every kernel so guard logic stays uniform.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, Trace, RowSums, ColSums,
//     AllClose. *Dense operands hit flat-slice fast paths; other Matrix
//     implementations fall back to At/Set in fixed i→j order.
//   - NewLaplacian: L = D − A from a *core.Graph, indexed in the graph's
//     vertex insertion order, together with the vertex index, degrees and
//     volume. ValidateLaplacian checks the structural contract of an L.
//   - PseudoInverse: L⁺ = VΣ⁺Uᵀ on top of gonum's mat.SVD, with singular
//     values σ ≤ rcond·σ_max treated as zero (default rcond 1e-15). The
//     numerical rank is returned alongside.
//
// Errors are package-level sentinels ("matrix: ...") wrapped with an
// operation tag ("Mul: matrix: dimension mismatch"); match them with
// errors.Is.
//
// Matrices here are dense: O(V²) memory and O(V³) pseudoinverse time. They
// are meant for small and medium graphs.
package matrix
