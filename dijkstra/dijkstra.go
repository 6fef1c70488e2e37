// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/kirchhoff/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g. Unreachable vertices (or those beyond MaxDistance) get +Inf.
//
// Returns:
//
//   - dist: vertex ID → shortest distance.
//   - prev: predecessor map when WithReturnPath is set, nil otherwise;
//     prev[v] == "" for the source and unreached vertices.
//
// Preconditions and validation (in order):
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. Source present (ErrVertexNotFound).
//  4. Every edge length positive and finite (ErrBadLength).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	adj, err := buildAdjacency(g, cfg.Length)
	if err != nil {
		return nil, nil, err
	}

	vertices := g.Vertices()
	r := &runner{
		options: cfg,
		adj:     adj,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	r.init(vertices)
	r.process()

	return r.dist, r.prev, nil
}

// arc is one traversable direction of an edge with its precomputed length.
type arc struct {
	to     string
	length float64
}

// buildAdjacency resolves every edge length once, failing on the first bad one.
func buildAdjacency(g *core.Graph, length LengthFn) (map[string][]arc, error) {
	adj := make(map[string][]arc, g.VertexCount())
	var l float64
	for _, e := range g.Edges() {
		l = length(e)
		if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
			return nil, fmt.Errorf("%w: edge %s (%s--%s) length=%g", ErrBadLength, e.ID, e.From, e.To, l)
		}
		adj[e.From] = append(adj[e.From], arc{to: e.To, length: l})
		adj[e.To] = append(adj[e.To], arc{to: e.From, length: l})
	}

	return adj, nil
}

// runner holds the mutable state of one execution.
type runner struct {
	options Options
	adj     map[string][]arc
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops vertices in distance order until the heap is empty or the
// cap is exceeded. Stale heap entries are skipped.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

func (r *runner) relax(u string) {
	var nd float64
	for _, a := range r.adj[u] {
		nd = r.dist[u] + a.length
		if nd > r.options.MaxDistance || nd >= r.dist[a.to] {
			continue
		}
		r.dist[a.to] = nd
		if r.prev != nil {
			r.prev[a.to] = u
		}
		heap.Push(&r.pq, &nodeItem{id: a.to, dist: nd})
	}
}

type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem by dist (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
