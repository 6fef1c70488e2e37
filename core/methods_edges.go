// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount/EdgeWeight.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; AddEdge also holds muVert.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to with the given
// weight and returns its unique Edge.ID. Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight (positive, finite), loops.
//  2. Lock muVert then muEdgeAdj (the RemoveVertex order) and register
//     missing endpoints, so a concurrent RemoveVertex never leaves a
//     dangling edge.
//  3. Check multi-edge constraint.
//  4. Generate eid atomically, store, link adjacency both ways.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !validWeight(weight) {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	addVertexLocked(g, from)
	addVertexLocked(g, to)

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: formatEdgeID(seq), From: from, To: to, Weight: weight, seq: seq}

	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	ensureAdjacency(g, to, from)
	g.adjacencyList[from][to][e.ID] = struct{}{}
	g.adjacencyList[to][from][e.ID] = struct{}{}

	return e.ID, nil
}

// RemoveEdge deletes one edge and its mirror.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e.From, e.To, eid)
	removeAdjacency(g, e.To, e.From, eid)

	return nil
}

// HasEdge reports whether at least one edge joins from and to.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edge returns the edge with the given ID.
// The returned pointer is shared with the graph; treat it as read-only.
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeWeight returns the total weight of all edges joining from and to
// (a single weight in simple graphs, the parallel sum in multigraphs).
//
// Errors:
//   - ErrVertexNotFound if either endpoint is missing.
//   - ErrEdgeNotFound if the endpoints are not adjacent.
//
// Complexity: O(k) for k parallel edges.
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.muVert.RLock()
	_, okFrom := g.vertices[from]
	_, okTo := g.vertices[to]
	g.muVert.RUnlock()
	if !okFrom || !okTo {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return 0, ErrEdgeNotFound
	}
	var w float64
	for eid := range bucket {
		w += g.edges[eid].Weight
	}

	return w, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedEdges(g)
}

// EdgeCount returns the number of edges (parallel edges counted individually).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// sortedEdges collects edges by insertion sequence. Caller must hold muEdgeAdj.
func sortedEdges(g *Graph) []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// validWeight accepts strictly positive finite weights only.
func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// formatEdgeID renders "e<seq>" without fmt allocations.
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// ensureAdjacency lazily creates adjacencyList[from][to]. Caller must hold muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	ensureAdjacencyRow(g, from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency drops eid from adjacencyList[from][to] and deletes the
// bucket once empty. Caller must hold muEdgeAdj.
func removeAdjacency(g *Graph, from, to, eid string) {
	bucket := g.adjacencyList[from][to]
	if bucket == nil {
		return
	}
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacencyList[from], to)
	}
}
