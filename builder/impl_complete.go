// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Emits pairs (i,j) with i<j in lexicographic index order.
//
// Complexity:
//   - Time: O(n²). Space: O(n) for the ID slice.
//
// Unit weights: Kf(K_n) = n − 1, R(u,v) = 2/n.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}

		return addCompleteEdges(g, cfg, methodComplete, ids)
	}
}
