// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures for kernels, Laplacians and the pseudoinverse.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

// tightTol is the absolute/relative tolerance for SVD-derived comparisons.
const tightTol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or aborts the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// fromRows builds a *Dense from literal rows or aborts the test.
func fromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or aborts the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// fillDenseRand fills m with values in [-1,1) from a fixed seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 {
		return 2*rng.Float64() - 1
	}))
}

// requireClose asserts AllClose(a, b) within tightTol.
func requireClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, tightTol, tightTol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}

// triangleGraph builds A–B(2), B–C(1.5), C–A(1.5).
func triangleGraph(tb testing.TB) *core.Graph {
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

// pathGraph builds the unit-weight path v0–v1–…–v(n−1).
func pathGraph(tb testing.TB, n int) *core.Graph {
	tb.Helper()
	g := core.NewGraph()
	require.NoError(tb, g.AddVertex("v0"))
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(vid(i-1), vid(i), 1)
		require.NoError(tb, err)
	}

	return g
}

func vid(i int) string { return "v" + strconv.Itoa(i) }
