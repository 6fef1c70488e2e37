// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is not a positive finite real.
	ErrBadWeight = errors.New("core: edge weight must be positive and finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shallow-copied by Clone.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}

	seq uint64 // insertion sequence; defines the enumeration order
}

// Edge represents an undirected weighted connection between two vertices.
//
// From and To record the orientation used at insertion time only; the edge
// is traversable both ways.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the conductance of the edge (> 0).
	Weight float64

	seq uint64 // insertion sequence; defines Edges() order
}

// Other returns the endpoint of e opposite to id, or "" if id is not an endpoint.
func (e *Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return ""
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
// Parallel weights accumulate in WeightedDegree, Volume and EdgeWeight.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices and the vertex sequence counter; muEdgeAdj protects
// edges, adjacencyList and the edge sequence counter.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowMulti bool // allow parallel edges

	nextVertexSeq uint64             // monotonic vertex insertion counter
	nextEdgeID    uint64             // atomic edge ID generator
	vertices      map[string]*Vertex // vertex ID → Vertex
	edges         map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is simple: no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
