// SPDX-License-Identifier: MIT
package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/builder"
	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/resistance"
)

const tol = 1e-9

// weightedGrid is a 3x4 grid with seeded conductances in [0.5, 4).
func weightedGrid(tb testing.TB) *core.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0.5, 4)},
		builder.Grid(3, 4))
	require.NoError(tb, err)

	return g
}

func kirchhoff(tb testing.TB, g *core.Graph) float64 {
	tb.Helper()
	kr, err := resistance.Kirchhoff(g)
	require.NoError(tb, err)

	return kr.Index
}

// requireSameEdges checks that every edge of want has a twin of equal weight
// in got; parallel edges are compared through their summed weight.
func requireSameEdges(tb testing.TB, want, got *core.Graph) {
	tb.Helper()
	require.Equal(tb, want.EdgeCount(), got.EdgeCount())
	for _, e := range want.Edges() {
		wantW, err := want.EdgeWeight(e.From, e.To)
		require.NoError(tb, err)
		gotW, err := got.EdgeWeight(e.From, e.To)
		require.NoError(tb, err, "edge %s-%s", e.From, e.To)
		require.InDelta(tb, wantW, gotW, tol, "edge %s-%s", e.From, e.To)
	}
}
