// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kirchhoff/matrix"
)

func TestNewDense_ZeroInitAndShape(t *testing.T) {
	m := mustDense(t, 2, 3)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	m.Do(func(i, j int, v float64) bool {
		assert.Zerof(t, v, "element (%d,%d)", i, j)
		return true
	})

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 4.5))
	assert.Equal(t, 4.5, mustAt(t, m, 1, 0))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestDense_NumericPolicy(t *testing.T) {
	m := mustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) }), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6.0, mustAt(t, m, 1, 2))
	assert.Equal(t, []float64{4, 5, 6}, m.RawRow(1))
	assert.Nil(t, m.RawRow(2))
	assert.Equal(t, []float64{1, 5}, m.Diag())

	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_CloneIndependence(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	assert.Equal(t, 1.0, mustAt(t, m, 0, 0))
	assert.Equal(t, 100.0, mustAt(t, c, 0, 0))
}

func TestDense_DoEarlyStopAndString(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	visited := 0
	m.Do(func(_, _ int, _ float64) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
