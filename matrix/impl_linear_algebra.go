// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, multiplication, transpose, scalar
// scaling, trace, row/column sums and tolerance comparison. All functions
// validate fail-fast and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path on the flat buffer and a generic
//     At/Set fallback with a fixed i→j order; both produce identical results.
//   - Inputs are never mutated; every result is a freshly allocated Dense.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opTrace     = "Trace"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w: "Op: underlying". Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub is the shared kernel of Add and Sub: C = A + sign·B.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: allocate C; single flat loop for *Dense pairs, else i→j via At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: *Dense pair → i→k→j on row-major strides with zero skip;
//     otherwise i→j→k through At with zero skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c) time and space.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new Dense.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// Trace returns Σ_i m[i,i] of a square matrix, summed in index order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	n := m.Rows()
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}

		return sum, nil
	}
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// RowSums returns s[i] = Σ_j m[i,j].
// Complexity: O(r*c) time, O(r) space.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				out[i] += d.data[i*cols+j]
			}
		}

		return out, nil
	}
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns s[j] = Σ_i m[i,j].
// Complexity: O(r*c) time, O(c) space.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				out[j] += d.data[i*cols+j]
			}
		}

		return out, nil
	}
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
//   - A NaN element never compares close.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinTol(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !withinTol(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// withinTol is the scalar AllClose relation; any NaN operand yields false.
func withinTol(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
