// SPDX-License-Identifier: MIT

package resistance

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

// HittingTimes builds H with H[i,j] = Vol(G)·(L⁺[j,j] − L⁺[i,j]) for i ≠ j
// and H[i,i] = 0, indexed like kr.
//
// g must be the graph kr was computed from: same vertex set, same order.
// Vol(G) is taken from kr.Laplacian, so edges added or reweighted on g after
// Kirchhoff do not leak into H.
//
// Errors:
//   - ErrNilGraph, ErrNilResult.
//   - ErrDimensionMismatch if g's vertex order differs from kr's.
//
// Complexity: O(n²).
func HittingTimes(g *core.Graph, kr *KirchhoffResult) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !kr.complete() {
		return nil, ErrNilResult
	}
	if err := sameOrder(g.Vertices(), kr.Laplacian.VertexOrder()); err != nil {
		return nil, err
	}

	vol := kr.Laplacian.Volume()
	d := kr.Pseudoinverse.Diag()
	H, ok := kr.Pseudoinverse.Clone().(*matrix.Dense)
	if !ok {
		return nil, ErrNilResult
	}
	if err := H.Apply(func(i, j int, p float64) float64 {
		if i == j {
			return 0
		}
		return vol * (d[j] - p)
	}); err != nil {
		return nil, fmt.Errorf("resistance: hitting times: %w", err)
	}

	return H, nil
}

// sameOrder checks that two vertex enumerations are identical.
func sameOrder(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: %d vertices, result has %d", ErrDimensionMismatch, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("%w: index %d is %q, result has %q", ErrDimensionMismatch, i, got[i], want[i])
		}
	}

	return nil
}
