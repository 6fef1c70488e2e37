// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/symmetry/finite checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape → values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of m is finite.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite",
					fmt.Errorf("(%d,%d): %w", idx/d.c, idx%d.c, ErrNaNInf))
			}
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare on structural issues.
//   - ErrNaNInf when tol is not finite.
//   - ErrAsymmetry on the first violating pair (fixed i→j scan).
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	if n <= 1 {
		return nil
	}

	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // indices are in range after shape validation
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
