// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical model:
//   - W_n = C_{n-1} + hub "Center" joined to every rim vertex.
//   - Rim vertices take cfg.idFn(1..n-1).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Emits the hub first, rim edges 1–2, …, (n-2)–(n-1), (n-1)–1, then spokes.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, CenterVertexID, err)
		}

		rim := n - 1
		var i int
		for i = 1; i <= rim; i++ {
			if err := addWeightedEdge(g, cfg, methodWheel, cfg.idFn(i), cfg.idFn(i%rim+1)); err != nil {
				return err
			}
		}
		for i = 1; i <= rim; i++ {
			if err := addWeightedEdge(g, cfg, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
