// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies g into a gonum weighted undirected graph. Node IDs are the
// vertex positions in g.Vertices(); ids[k] is the vertex behind node k.
// Parallel edges are merged by summing their weights.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, []string, error) {
	if g == nil {
		return nil, nil, convErrorf(opToGonum, ErrNilGraph)
	}
	ids := g.Vertices()
	pos := make(map[string]int64, len(ids))
	dst := simple.NewWeightedUndirectedGraph(0, 0)
	for k, id := range ids {
		pos[id] = int64(k)
		dst.AddNode(simple.Node(k))
	}

	var (
		u, v   int64
		okU    bool
		okV    bool
		weight float64
	)
	for _, e := range g.Edges() {
		u, okU = pos[e.From]
		v, okV = pos[e.To]
		if !okU || !okV {
			return nil, nil, convErrorf(opToGonum, fmt.Errorf("edge %s: %w", e.ID, core.ErrVertexNotFound))
		}
		weight = e.Weight
		if prev, ok := dst.Weight(u, v); ok {
			weight += prev
		}
		dst.SetWeightedEdge(dst.NewWeightedEdge(simple.Node(u), simple.Node(v), weight))
	}

	return dst, ids, nil
}

// FromGonum builds a core.Graph from src. Nodes are visited in ascending ID
// order and labelled with label (decimal IDs when nil); each undirected edge
// is emitted once, from its lower endpoint, neighbors in ascending ID order.
//
// Errors:
//   - ErrNilGraph for a nil src.
//   - ErrInvalidDocument for duplicate labels or weights core rejects.
func FromGonum(src graph.WeightedUndirected, label func(int64) string) (*core.Graph, error) {
	if src == nil {
		return nil, convErrorf(opFromGonum, ErrNilGraph)
	}
	if label == nil {
		label = func(id int64) string { return strconv.FormatInt(id, 10) }
	}

	nodes := sortedByID(graph.NodesOf(src.Nodes()))
	g := core.NewGraph()
	names := make(map[int64]string, len(nodes))
	for _, n := range nodes {
		id := label(n.ID())
		if g.HasVertex(id) {
			return nil, convErrorf(opFromGonum, fmt.Errorf("%w: duplicate label %q", ErrInvalidDocument, id))
		}
		if err := g.AddVertex(id); err != nil {
			return nil, convErrorf(opFromGonum, fmt.Errorf("%w: node %d: %w", ErrInvalidDocument, n.ID(), err))
		}
		names[n.ID()] = id
	}

	for _, u := range nodes {
		for _, v := range sortedByID(graph.NodesOf(src.From(u.ID()))) {
			if v.ID() <= u.ID() {
				continue
			}
			w, ok := src.Weight(u.ID(), v.ID())
			if !ok {
				continue
			}
			if _, err := g.AddEdge(names[u.ID()], names[v.ID()], w); err != nil {
				return nil, convErrorf(opFromGonum, fmt.Errorf("%w: edge %d--%d: %w", ErrInvalidDocument, u.ID(), v.ID(), err))
			}
		}
	}

	return g, nil
}

// sortedByID orders nodes by ascending ID in place and returns them.
func sortedByID(nodes []graph.Node) []graph.Node {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	return nodes
}
