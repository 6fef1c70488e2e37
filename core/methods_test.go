// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate constraint enforcement (weights, loops, multi-edges).
//   - Anchor the insertion-order enumeration that matrix indices depend on.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))

	// Duplicate insert is a no-op.
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("missing"), core.ErrVertexNotFound)

	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
}

func TestGraph_VerticesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"V10", "V2", "B", "A"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"V10", "V2", "B", "A"}, g.Vertices())

	// Re-adding keeps the original position.
	require.NoError(t, g.AddVertex("V10"))
	assert.Equal(t, []string{"V10", "V2", "B", "A"}, g.Vertices())

	// Removal keeps the relative order of the rest.
	require.NoError(t, g.RemoveVertex("V2"))
	assert.Equal(t, []string{"V10", "B", "A"}, g.Vertices())

	// Vertices created implicitly by AddEdge follow its argument order.
	_, err := g.AddEdge("X", "Y", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"V10", "B", "A", "X", "Y"}, g.Vertices())
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()

	for name, tc := range map[string]struct {
		from, to string
		w        float64
		want     error
	}{
		"empty from":  {"", "B", 1, core.ErrEmptyVertexID},
		"empty to":    {"A", "", 1, core.ErrEmptyVertexID},
		"zero weight": {"A", "B", 0, core.ErrBadWeight},
		"negative":    {"A", "B", -1.5, core.ErrBadWeight},
		"NaN weight":  {"A", "B", math.NaN(), core.ErrBadWeight},
		"+Inf weight": {"A", "B", math.Inf(1), core.ErrBadWeight},
		"self-loop":   {"A", "A", 1, core.ErrLoopNotAllowed},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := g.AddEdge(tc.from, tc.to, tc.w)
			require.ErrorIs(t, err, tc.want)
		})
	}
	// Rejected edges must not leave vertices behind.
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_AddEdgeMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "C"))
	assert.False(t, g.HasEdge("", "A"))

	e, err := g.Edge(eid)
	require.NoError(t, err)
	assert.Equal(t, "A", e.From)
	assert.Equal(t, "B", e.To)
	assert.Equal(t, 2.5, e.Weight)
	assert.Equal(t, "B", e.Other("A"))
	assert.Equal(t, "A", e.Other("B"))
	assert.Equal(t, "", e.Other("Z"))

	_, err = g.Edge("e42")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_MultiEdgePolicy(t *testing.T) {
	simple := core.NewGraph()
	_, err := simple.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = simple.AddEdge("B", "A", 1) // reverse orientation is the same undirected pair
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.False(t, simple.Multigraph())

	multi := core.NewGraph(core.WithMultiEdges())
	assert.True(t, multi.Multigraph())
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = multi.AddEdge("B", "A", 2)
	require.NoError(t, err)

	w, err := multi.EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 2, multi.EdgeCount())

	nbrs, err := multi.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrs, "parallel edges yield one neighbor")
}

func TestGraph_EdgeWeightErrors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("C"))

	_, err = g.EdgeWeight("A", "missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.EdgeWeight("A", "C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 2, g.VertexCount(), "endpoints survive edge removal")
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "A", 1)

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("C", "B"))
	assert.True(t, g.HasEdge("A", "C"))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, nbrs)
}

func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	// Enough edges to make lexicographic ID order ("e10" < "e2") differ from insertion order.
	prev := "V0"
	for i := 1; i <= 12; i++ {
		next := "V" + string(rune('a'+i))
		_, err := g.AddEdge(prev, next, float64(i))
		require.NoError(t, err)
		prev = next
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, float64(i+1), e.Weight)
	}
	assert.Equal(t, "e10", edges[9].ID)
}

func TestGraph_NeighborsOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"hub", "z", "m", "a"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, _ = g.AddEdge("hub", "a", 1)
	_, _ = g.AddEdge("hub", "z", 1)
	_, _ = g.AddEdge("hub", "m", 1)

	nbrs, err := g.Neighbors("hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a"}, nbrs)
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("B", "C", 2)

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.True(t, c.Multigraph())
	assert.Equal(t, g.Volume(), c.Volume())

	// Mutating the clone leaves the source intact.
	require.NoError(t, c.RemoveVertex("C"))
	assert.True(t, g.HasVertex("C"))
	assert.True(t, g.HasEdge("B", "C"))

	// The clone keeps issuing fresh edge IDs.
	eid, err := c.AddEdge("A", "D", 1)
	require.NoError(t, err)
	assert.Equal(t, "e4", eid)
}
