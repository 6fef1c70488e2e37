// SPDX-License-Identifier: MIT
// File: methods_degree.go
// Role: Weighted degree, graph volume and connectivity queries.
//
// Determinism:
//   - ConnectedComponents() lists components by their earliest vertex and
//     vertices inside each component in insertion order.
//   - Degree and volume sums run over edges in insertion order, so repeated
//     calls on an unchanged graph are bit-identical.
//
// Concurrency:
//   - Read locks only; muVert is taken before muEdgeAdj.

package core

import "sort"

// WeightedDegree returns the sum of weights of all edges incident to id.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)·log deg(v)).
func (g *Graph) WeightedDegree(id string) (float64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return weightedDegree(g, id), nil
}

// Volume returns Vol(G) = Σ_v deg_w(v). Every edge is counted once per
// endpoint, so Volume equals twice the total edge weight.
//
// Implementation:
//   - Stage 1: Under muEdgeAdj read lock, collect edges in insertion order.
//   - Stage 2: Accumulate 2·w per edge in that fixed order.
//
// Returns:
//   - float64: 0 for a graph without edges.
//
// Complexity:
//   - Time O(E·log E), Space O(E).
func (g *Graph) Volume() float64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var vol float64
	for _, e := range sortedEdges(g) {
		vol += 2 * e.Weight
	}

	return vol
}

// ConnectedComponents partitions the vertex set into connected components
// via breadth-first search.
//
// Implementation:
//   - Stage 1: Snapshot vertices in insertion order.
//   - Stage 2: For every unseen vertex, BFS over neighborIDs and collect the
//     reached set.
//   - Stage 3: Sort each component by insertion order.
//
// Returns:
//   - [][]string: empty for the empty graph; a single component for a
//     connected non-empty graph.
//
// Complexity:
//   - Time O(V + E·log d), Space O(V).
func (g *Graph) ConnectedComponents() [][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	order := sortedVertexIDs(g)
	seen := make(map[string]bool, len(order))
	var comps [][]string

	var (
		queue []string
		comp  []string
		u     string
		qi    int
	)
	for _, root := range order {
		if seen[root] {
			continue
		}
		seen[root] = true
		queue = append(queue[:0], root)
		comp = nil
		for qi = 0; qi < len(queue); qi++ {
			u = queue[qi]
			comp = append(comp, u)
			for _, v := range neighborIDs(g, u) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool {
			return g.vertices[comp[i]].seq < g.vertices[comp[j]].seq
		})
		comps = append(comps, comp)
	}

	return comps
}

// IsConnected reports whether the graph has exactly one connected component.
// The empty graph is not connected.
func (g *Graph) IsConnected() bool {
	return len(g.ConnectedComponents()) == 1
}

// weightedDegree sums incident weights in edge insertion order.
// Caller must hold muEdgeAdj.
func weightedDegree(g *Graph, id string) float64 {
	var incident []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			incident = append(incident, g.edges[eid])
		}
	}
	sort.Slice(incident, func(i, j int) bool { return incident[i].seq < incident[j].seq })

	var d float64
	for _, e := range incident {
		d += e.Weight
	}

	return d
}
