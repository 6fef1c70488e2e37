// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid, 4-neighborhood.
//   • Vertex IDs use the fixed scheme "r,c" (row-major); cfg.idFn is not consulted.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right (r,c+1) then Bottom (r+1,c).
//
// Complexity:
//   • Time: O(rows·cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		var u string
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = gridVertexID(r, c)
				if c+1 < cols {
					if err := addWeightedEdge(g, cfg, methodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addWeightedEdge(g, cfg, methodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
