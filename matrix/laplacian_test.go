// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

func TestNewLaplacian_Triangle(t *testing.T) {
	lm, err := matrix.NewLaplacian(triangleGraph(t))
	require.NoError(t, err)

	want := fromRows(t, [][]float64{
		{3.5, -2, -1.5},
		{-2, 3.5, -1.5},
		{-1.5, -1.5, 3},
	})
	requireClose(t, want, lm.Mat)

	assert.Equal(t, []string{"A", "B", "C"}, lm.VertexOrder())
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, lm.VertexIndex)
	assert.Equal(t, []float64{3.5, 3.5, 3}, lm.Degrees())
	assert.Equal(t, 10.0, lm.Volume())
	assert.Equal(t, 3, lm.Size())

	i, err := lm.Index("C")
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	_, err = lm.Index("Z")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestNewLaplacian_ZeroRowSums(t *testing.T) {
	lm, err := matrix.NewLaplacian(pathGraph(t, 6))
	require.NoError(t, err)

	rows, err := matrix.RowSums(lm.Mat)
	require.NoError(t, err)
	cols, err := matrix.ColSums(lm.Mat)
	require.NoError(t, err)
	for i := range rows {
		assert.Zero(t, rows[i])
		assert.Zero(t, cols[i])
	}
	require.NoError(t, matrix.ValidateSymmetric(lm.Mat, 0))
}

func TestNewLaplacian_InsertionOrderAndMultiEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex("z"))
	_, err := g.AddEdge("z", "a", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "z", 2)
	require.NoError(t, err)

	lm, err := matrix.NewLaplacian(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, lm.VertexOrder())
	requireClose(t, fromRows(t, [][]float64{{3, -3}, {-3, 3}}), lm.Mat)
}

func TestNewLaplacian_Degenerate(t *testing.T) {
	_, err := matrix.NewLaplacian(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	empty, err := matrix.NewLaplacian(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, 0, empty.Mat.Rows())
	assert.Zero(t, empty.Volume())

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("solo"))
	lm, err := matrix.NewLaplacian(single)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mustAt(t, lm.Mat, 0, 0))
}

func TestNewLaplacian_Deterministic(t *testing.T) {
	g := triangleGraph(t)
	a, err := matrix.NewLaplacian(g)
	require.NoError(t, err)
	b, err := matrix.NewLaplacian(g)
	require.NoError(t, err)
	assert.Equal(t, a.Mat.String(), b.Mat.String())
}

func TestValidateLaplacian(t *testing.T) {
	for name, tc := range map[string]struct {
		rows [][]float64
		want error
	}{
		"asymmetric":        {[][]float64{{1, -1}, {0, 0}}, matrix.ErrNotLaplacian},
		"positive off-diag": {[][]float64{{-1, 1}, {1, -1}}, matrix.ErrNotLaplacian},
		"nonzero row sum":   {[][]float64{{2, -1}, {-1, 2}}, matrix.ErrNotLaplacian},
		"non-square":        {[][]float64{{1, -1, 0}, {-1, 1, 0}}, matrix.ErrNonSquare},
		"valid":             {[][]float64{{1, -1}, {-1, 1}}, nil},
	} {
		t.Run(name, func(t *testing.T) {
			err := matrix.ValidateLaplacian(fromRows(t, tc.rows), matrix.DefaultEpsilon)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.ErrorIs(t, matrix.ValidateLaplacian(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateLaplacian(mustDense(t, 1, 1), -1), matrix.ErrNaNInf)
}
