// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/kirchhoff/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	var (
		i   int
		id  string
		err error
	)
	for i = 0; i < n; i++ {
		id = cfg.idFn(i)
		if err = g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addWeightedEdge draws one weight from cfg and adds u–v.
func addWeightedEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair of ids, i<j in slice order.
// Complexity: O(m²) for m = len(ids).
func addCompleteEdges(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	var (
		i, j int
		err  error
	)
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			if err = addWeightedEdge(g, cfg, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
