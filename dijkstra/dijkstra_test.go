// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/dijkstra"
)

// diamond is A–B 1, B–D 1, A–C 4, C–D 4 plus the chord B–C 0.5.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "D", 1}, {"A", "C", 4}, {"C", "D", 4}, {"B", "C", 0.5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := diamond(t)

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("Z"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"),
		dijkstra.WithLength(func(*core.Edge) float64 { return 0 }))
	assert.ErrorIs(t, err, dijkstra.ErrBadLength)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithLength(nil) })
}

func TestDijkstra_ResistanceLengths(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist["A"])
	assert.InDelta(t, 1.0, dist["B"], 1e-12)
	assert.InDelta(t, 0.25, dist["C"], 1e-12, "A-C has conductance 4")
	assert.InDelta(t, 0.5, dist["D"], 1e-12, "A-C-D beats A-B-D")
	assert.Equal(t, "C", prev["D"])
	assert.Equal(t, "", prev["A"])
}

func TestDijkstra_WeightLengths(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source("A"),
		dijkstra.WithLength(dijkstra.WeightLength))
	require.NoError(t, err)
	assert.Nil(t, prev)

	assert.InDelta(t, 1.5, dist["C"], 1e-12, "A-B-C")
	assert.InDelta(t, 2.0, dist["D"], 1e-12, "A-B-D")
}

func TestDijkstra_UnreachableAndCap(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex("island"))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(0.3))
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["island"], 1))
	assert.True(t, math.IsInf(dist["D"], 1), "D lies beyond the cap")
	assert.InDelta(t, 0.25, dist["C"], 1e-12)
}

func TestDijkstra_ParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, err := g.AddEdge("x", "y", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("x", "y", 5)
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("y"))
	require.NoError(t, err)
	assert.InDelta(t, 0.2, dist["x"], 1e-12, "best single edge")
}
