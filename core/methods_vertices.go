// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order (Vertex.seq asc).
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, assign the
//     next insertion sequence and register the Vertex.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Re-adding an existing vertex keeps its original position in Vertices().
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.muEdgeAdj.Lock()
	addVertexLocked(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// addVertexLocked registers id if missing and bootstraps its adjacency row.
// Caller must hold muVert and muEdgeAdj write locks.
func addVertexLocked(g *Graph, id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.nextVertexSeq++
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{}), seq: g.nextVertexSeq}
	ensureAdjacencyRow(g, id)
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if vertex does not exist.
// The relative order of the remaining vertices is unchanged.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for nbr, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			delete(g.edges, eid)
		}
		delete(g.adjacencyList[nbr], id) // drop the mirror bucket
	}
	delete(g.adjacencyList, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// This is the canonical enumeration used for matrix indices.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return sortedVertexIDs(g)
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Neighbors returns the unique neighbor IDs of id, ordered by vertex
// insertion order. Parallel edges contribute a single neighbor.
// Returns ErrVertexNotFound if the vertex is missing.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return neighborIDs(g, id), nil
}

// sortedVertexIDs collects vertex IDs ordered by insertion sequence.
// Caller must hold muVert (read or write).
func sortedVertexIDs(g *Graph) []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return g.vertices[ids[i]].seq < g.vertices[ids[j]].seq
	})

	return ids
}

// neighborIDs lists neighbors of id with at least one live edge, in
// insertion order. Caller must hold muVert and muEdgeAdj.
func neighborIDs(g *Graph, id string) []string {
	row := g.adjacencyList[id]
	out := make([]string, 0, len(row))
	for nbr, bucket := range row {
		if _, ok := g.vertices[nbr]; ok && len(bucket) > 0 {
			out = append(out, nbr)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return g.vertices[out[i]].seq < g.vertices[out[j]].seq
	})

	return out
}

// ensureAdjacencyRow lazily creates adjacencyList[id]. Caller must hold muEdgeAdj.
func ensureAdjacencyRow(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}
