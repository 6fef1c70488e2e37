// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of the graph: vertices (with shallow-copied
// Metadata maps), edges, adjacency, policy flags and sequence counters.
// The clone enumerates vertices and edges in the same order as g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		allowMulti:    g.allowMulti,
		nextVertexSeq: g.nextVertexSeq,
		nextEdgeID:    g.nextEdgeID,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.adjacencyList)),
	}

	for id, v := range g.vertices {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		c.vertices[id] = &Vertex{ID: id, Metadata: md, seq: v.seq}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for from, row := range g.adjacencyList {
		c.adjacencyList[from] = make(map[string]map[string]struct{}, len(row))
		for to, bucket := range row {
			nb := make(map[string]struct{}, len(bucket))
			for eid := range bucket {
				nb[eid] = struct{}{}
			}
			c.adjacencyList[from][to] = nb
		}
	}

	return c
}
