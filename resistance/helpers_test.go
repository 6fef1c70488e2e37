// SPDX-License-Identifier: MIT
package resistance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/builder"
	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

// tol is the absolute tolerance of numeric comparisons on small graphs.
const tol = 1e-9

func mustBuild(tb testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(tb, err)

	return g
}

// twoNode is A–B with conductance 2.
func twoNode(tb testing.TB) *core.Graph {
	tb.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 2)
	require.NoError(tb, err)

	return g
}

// triangle is A–B 2, B–C 1.5, C–A 1.5.
func triangle(tb testing.TB) *core.Graph {
	tb.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 2}, {"B", "C", 1.5}, {"C", "A", 1.5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(tb, err)
	}

	return g
}

// randomConnected is a seeded random graph over a path backbone with
// uniform conductances in [0.5, 4).
func randomConnected(tb testing.TB, n int, p float64, seed int64) *core.Graph {
	tb.Helper()

	return mustBuild(tb,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0.5, 4)},
		builder.Path(n), builder.RandomSparse(n, p))
}

func at(tb testing.TB, m *matrix.Dense, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}
