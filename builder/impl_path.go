// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.
//   - Weight per edge: cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.
//
// Unit weights: Kf(P_n) = (n³ − n)/6, R(0, n-1) = n − 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}

		var i int
		for i = 1; i < n; i++ {
			if err := addWeightedEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
