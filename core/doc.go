// Package core provides a thread-safe in-memory weighted undirected Graph,
// the input model of every resistance-distance computation in this module.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; every edge is mirrored in the adjacency.
//   - Positive finite real weights (conductances); zero, negative, NaN and
//     ±Inf weights are rejected with ErrBadWeight.
//   - No self-loops (ErrLoopNotAllowed).
//   - Parallel edges are rejected unless the graph is created with
//     WithMultiEdges(); parallel weights then add up in degrees and volume.
//   - Vertices() enumerates vertices in insertion order. That order is the
//     caller-visible index order of every matrix derived from the graph.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj). Lock order is always muVert → muEdgeAdj.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1), idempotent
//	HasVertex(id string) bool               // O(1)
//	RemoveVertex(id string) error           // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error         // O(1)
//	HasEdge(from, to string) bool           // O(1)
//	Edge(edgeID string) (*Edge, error)      // O(1)
//
//	// Query
//	Vertices() []string                     // O(V·log V), insertion order
//	Edges() []*Edge                         // O(E·log E), insertion order
//	Neighbors(id string) ([]string, error)  // O(d·log d), unique, insertion order
//	EdgeWeight(from, to string) (float64, error)
//
//	// Degrees
//	WeightedDegree(id string) (float64, error) // Σ incident weights
//	Volume() float64                           // Σ weighted degrees = 2·Σ weights
//
//	// Connectivity
//	ConnectedComponents() [][]string
//	IsConnected() bool
//
//	// Cloning
//	Clone() *Graph
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – weight not positive and finite
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
