// SPDX-License-Identifier: MIT
// Package matrix - Moore–Penrose pseudoinverse via SVD (gonum backend).
//
// Given M = U·Σ·Vᵀ (full SVD), M⁺ = V·Σ⁺·Uᵀ where Σ⁺ inverts every singular
// value σ > rcond·σ_max and zeroes the rest. For a connected graph Laplacian
// the single zero eigenvalue (constant vector) is discarded, so L⁺ is the
// Green's function on the complement of 1.

package matrix

import "gonum.org/v1/gonum/mat"

const (
	opPseudoInverse = "PseudoInverse"
	opToGonum       = "ToGonum"
	opFromGonum     = "FromGonum"
)

// PseudoInverse computes the Moore–Penrose pseudoinverse of m and its
// numerical rank.
//
// Implementation:
//   - Stage 1: NotNil → positive shape → finite entries.
//   - Stage 2: copy into a gonum *mat.Dense and factorize with mat.SVDFull.
//   - Stage 3: cutoff = rcond·σ_max; keep σ_k > cutoff (rank = kept count),
//     at most MaxRank of them when WithMaxRank is set.
//   - Stage 4: P = (V_k · diag(1/σ_k)) · U_kᵀ via gonum Mul.
//   - Stage 5: when m is symmetric within eps, P ← (P + Pᵀ)/2.
//
// Behavior highlights:
//   - The zero matrix (σ_max = 0) yields P = 0 and rank 0.
//   - Output shape is Cols(m)×Rows(m).
//   - Deterministic: identical input gives bit-identical output.
//
// Inputs:
//   - m: any finite matrix (r×c, r,c > 0).
//   - opts: WithTolerance(rcond), WithEpsilon(eps), WithMaxRank(k), numeric policy of the result.
//
// Returns:
//   - *Dense: M⁺.
//   - int: numerical rank (number of retained singular values).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (0-sized input), ErrNaNInf, ErrSVDFailed.
//
// Complexity:
//   - Time O(r·c·min(r,c)) for the SVD plus O(r·c·k) for the product,
//     Space O(r² + c²).
//
// AI-Hints:
//   - Verify with AllClose(Mul(Mul(L, P), L), L), the first Penrose identity.
//   - For Laplacians of connected graphs expect rank n−1.
func PseudoInverse(m Matrix, opts ...Option) (*Dense, int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matrixErrorf(opPseudoInverse, err)
	}
	o := gatherOptions(opts...)
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, 0, matrixErrorf(opPseudoInverse, ErrInvalidDimensions)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, 0, matrixErrorf(opPseudoInverse, err)
	}

	src, err := ToGonum(m)
	if err != nil {
		return nil, 0, matrixErrorf(opPseudoInverse, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(src, mat.SVDFull); !ok {
		return nil, 0, matrixErrorf(opPseudoInverse, ErrSVDFailed)
	}
	values := svd.Values(nil) // descending, length min(rows, cols)

	var u, v mat.Dense
	svd.UTo(&u) // rows×rows
	svd.VTo(&v) // cols×cols

	// Rank under the relative cutoff.
	cutoff := o.rcond * values[0]
	rank := 0
	for _, s := range values {
		if s > cutoff {
			rank++
		}
	}
	if o.maxRank >= 0 && rank > o.maxRank {
		rank = o.maxRank
	}

	out, err := newDenseWithPolicy(cols, rows, o.validateNaNInf)
	if err != nil {
		return nil, 0, matrixErrorf(opPseudoInverse, err)
	}
	if rank == 0 {
		return out, 0, nil
	}

	// V_k · diag(1/σ_k): scale the kept right singular vectors.
	vs := mat.NewDense(cols, rank, nil)
	var i, k int
	for i = 0; i < cols; i++ {
		for k = 0; k < rank; k++ {
			vs.Set(i, k, v.At(i, k)/values[k])
		}
	}
	var p mat.Dense
	p.Mul(vs, u.Slice(0, rows, 0, rank).T())

	copyFromGonum(out, &p)

	if rows == cols && ValidateSymmetric(m, o.eps) == nil {
		symmetrize(out)
	}
	if err = ValidateFinite(out); err != nil {
		return nil, 0, matrixErrorf(opPseudoInverse, err)
	}

	return out, rank, nil
}

// ToGonum copies m into a freshly allocated gonum *mat.Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (gonum forbids zero-sized matrices).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return mat.NewDense(rows, cols, buf), nil
	}

	out := mat.NewDense(rows, cols, nil)
	var i, j int
	var val float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if val, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			out.Set(i, j, val)
		}
	}

	return out, nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (default numeric policy).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	rows, cols := src.Dims()
	out, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	copyFromGonum(out, src)
	if o.validateNaNInf {
		if err = ValidateFinite(out); err != nil {
			return nil, matrixErrorf(opFromGonum, err)
		}
	}

	return out, nil
}

// copyFromGonum writes src into dst row-major. Shapes must already match.
func copyFromGonum(dst *Dense, src mat.Matrix) {
	var i, j int
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			dst.data[i*dst.c+j] = src.At(i, j)
		}
	}
}

// symmetrize replaces a square d with (d + dᵀ)/2 in place, upper triangle first.
func symmetrize(d *Dense) {
	n := d.r
	var i, j int
	var avg float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			avg = (d.data[i*n+j] + d.data[j*n+i]) / 2
			d.data[i*n+j] = avg
			d.data[j*n+i] = avg
		}
	}
}
