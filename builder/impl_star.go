// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub CenterVertexID first, then leaves cfg.idFn(1..n-1).
//   - Emits spokes Center–leaf in increasing leaf index.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.
//
// Unit weights: Kf(S_n) = (n − 1)².

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

// CenterVertexID is the fixed hub ID used by Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub "Center" and
// n-1 leaves. Leaves take indices 1..n-1 so the hub never collides with
// the default decimal scheme.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}

		var (
			i    int
			leaf string
		)
		for i = 1; i < n; i++ {
			leaf = cfg.idFn(i)
			if err := addWeightedEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
