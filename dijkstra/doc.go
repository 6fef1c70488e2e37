// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths on a core.Graph
// where each edge's length is derived from its conductance.
//
// Overview:
//
//   - By default an edge of conductance w has length 1/w, its resistance when
//     used alone, so a shortest path is the path of least series resistance.
//   - Rayleigh monotonicity gives R(s,v) ≤ dist(s,v) for the effective
//     resistance R computed by the resistance package, with equality on trees.
//   - WithLength swaps in any other positive, finite length (e.g. the raw weight).
//
// Parallel edges are separate candidates; the shortest single edge wins.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//   - ErrEmptySource    if no source was set.
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrVertexNotFound if the source is not a vertex.
//   - ErrBadLength      if the length function yields a non-positive or non-finite value.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("series resistance to C: %.3f via %s\n", dist["C"], prev["C"])
package dijkstra
