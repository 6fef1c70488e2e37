// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending order.
//   - Emits ring edges i–(i+1) for i=0..n-2, then the closing edge (n-1)–0.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.
//
// Unit weights: Kf(C_n) = (n³ − n)/12.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}

		var i int
		for i = 0; i < n; i++ {
			if err := addWeightedEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
