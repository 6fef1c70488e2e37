// SPDX-License-Identifier: MIT
// Package matrix - graph Laplacian L = D − A.
//
// Purpose:
//   - Build the combinatorial Laplacian of a weighted undirected *core.Graph.
//   - Fix the vertex → index mapping once (graph insertion order) so every
//     downstream matrix (L⁺, H, R) is indexed consistently.
//
// Contract of a Laplacian (checked by ValidateLaplacian):
//   - square and symmetric;
//   - off-diagonal entries ≤ 0 (L[i,j] = −Σ w(i,j) over parallel edges);
//   - every row and column sums to 0 (L[i,i] is the weighted degree).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	opNewLaplacian      = "NewLaplacian"
	opValidateLaplacian = "ValidateLaplacian"
)

// LaplacianMatrix is the Laplacian of a graph together with its vertex index.
type LaplacianMatrix struct {
	// Mat holds L in row-major form; n×n (0×0 for the empty graph).
	Mat *Dense

	// VertexIndex maps vertex ID → row/column index in Mat.
	VertexIndex map[string]int

	order []string // index → vertex ID (insertion order of the source graph)
	opts  Options
}

// NewLaplacian builds L = D − A for g.
//
// Implementation:
//   - Stage 1: snapshot g.Vertices() (insertion order) and build the index.
//   - Stage 2: for every edge e=(u,v,w) in insertion order:
//     L[u,u] += w, L[v,v] += w, L[u,v] −= w, L[v,u] −= w.
//   - Stage 3: ValidateLaplacian within the configured eps.
//
// Behavior highlights:
//   - Parallel edges accumulate (conductances in parallel).
//   - The empty graph yields a legal 0×0 Laplacian.
//   - Two calls on an unchanged graph produce bit-identical matrices.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrUnknownVertex if an edge endpoint vanished between the two snapshots
//     (concurrent RemoveVertex).
//   - ErrNotLaplacian if the built matrix fails validation (non-finite sums).
//
// Complexity:
//   - Time O(V² + E·log E), Space O(V²).
func NewLaplacian(g *core.Graph, opts ...Option) (*LaplacianMatrix, error) {
	if g == nil {
		return nil, matrixErrorf(opNewLaplacian, ErrGraphNil)
	}
	o := gatherOptions(opts...)

	order := g.Vertices()
	n := len(order)
	idx := make(map[string]int, n)
	for i, id := range order {
		idx[id] = i
	}

	L, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewLaplacian, err)
	}
	L.validateNaNInf = o.validateNaNInf

	var (
		i, j   int
		okI    bool
		okJ    bool
		weight float64
	)
	for _, e := range g.Edges() {
		i, okI = idx[e.From]
		j, okJ = idx[e.To]
		if !okI || !okJ {
			return nil, matrixErrorf(opNewLaplacian, fmt.Errorf("edge %s: %w", e.ID, ErrUnknownVertex))
		}
		weight = e.Weight
		L.data[i*n+i] += weight
		L.data[j*n+j] += weight
		L.data[i*n+j] -= weight
		L.data[j*n+i] -= weight
	}

	if err = ValidateLaplacian(L, o.eps); err != nil {
		return nil, matrixErrorf(opNewLaplacian, err)
	}

	return &LaplacianMatrix{Mat: L, VertexIndex: idx, order: order, opts: o}, nil
}

// Size returns n, the number of vertices.
func (lm *LaplacianMatrix) Size() int { return len(lm.order) }

// VertexOrder returns the vertex IDs in index order (a copy).
func (lm *LaplacianMatrix) VertexOrder() []string {
	out := make([]string, len(lm.order))
	copy(out, lm.order)

	return out
}

// Index returns the matrix index of vertex id.
// Errors: ErrUnknownVertex.
func (lm *LaplacianMatrix) Index(id string) (int, error) {
	i, ok := lm.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("vertex %q: %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// Degrees returns the weighted degrees (diagonal of L) in index order.
func (lm *LaplacianMatrix) Degrees() []float64 {
	return lm.Mat.Diag()
}

// Volume returns Vol(G) = Σ_i L[i,i], summed in index order.
func (lm *LaplacianMatrix) Volume() float64 {
	vol := ZeroSum
	for _, d := range lm.Degrees() {
		vol += d
	}

	return vol
}

// Options returns the options the Laplacian was built with.
func (lm *LaplacianMatrix) Options() Options { return lm.opts }

// ValidateLaplacian checks the structural contract of a graph Laplacian:
// square, symmetric within eps, off-diagonal ≤ eps, and every row and
// column summing to 0 within eps·max(1, |L[i,i]|).
//
// Implementation:
//   - Stage 1: NotNil → Square → finite eps.
//   - Stage 2: ValidateSymmetric(m, eps).
//   - Stage 3: off-diagonal sign scan and RowSums/ColSums against the
//     degree-scaled tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad eps or non-finite entries).
//   - ErrNotLaplacian for any contract violation (asymmetry included).
//
// Complexity:
//   - Time O(n²), Space O(n).
func ValidateLaplacian(m Matrix, eps float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opValidateLaplacian, err)
	}
	if isNonFinite(eps) || eps < 0 {
		return matrixErrorf(opValidateLaplacian, ErrNaNInf)
	}
	if err := ValidateFinite(m); err != nil {
		return matrixErrorf(opValidateLaplacian, err)
	}
	if err := ValidateSymmetric(m, eps); err != nil {
		return matrixErrorf(opValidateLaplacian, fmt.Errorf("%w (%v)", ErrNotLaplacian, err))
	}

	n := m.Rows()
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = m.At(i, j)
			if v > eps {
				return matrixErrorf(opValidateLaplacian,
					fmt.Errorf("positive off-diagonal at (%d,%d): %w", i, j, ErrNotLaplacian))
			}
		}
	}

	rows, err := RowSums(m)
	if err != nil {
		return matrixErrorf(opValidateLaplacian, err)
	}
	cols, err := ColSums(m)
	if err != nil {
		return matrixErrorf(opValidateLaplacian, err)
	}
	var tol float64
	for i = 0; i < n; i++ {
		v, _ = m.At(i, i)
		tol = eps * math.Max(1, math.Abs(v))
		if math.Abs(rows[i]) > tol {
			return matrixErrorf(opValidateLaplacian,
				fmt.Errorf("row %d sums to %g: %w", i, rows[i], ErrNotLaplacian))
		}
		if math.Abs(cols[i]) > tol {
			return matrixErrorf(opValidateLaplacian,
				fmt.Errorf("column %d sums to %g: %w", i, cols[i], ErrNotLaplacian))
		}
	}

	return nil
}
