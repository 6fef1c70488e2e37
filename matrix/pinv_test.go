// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

func TestPseudoInverse_TwoNodeLaplacian(t *testing.T) {
	L := fromRows(t, [][]float64{{2, -2}, {-2, 2}})
	P, rank, err := matrix.PseudoInverse(L)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	requireClose(t, fromRows(t, [][]float64{{0.125, -0.125}, {-0.125, 0.125}}), P)
}

func TestPseudoInverse_Invertible(t *testing.T) {
	A := fromRows(t, [][]float64{{4, 7}, {2, 6}})
	P, rank, err := matrix.PseudoInverse(A)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	requireClose(t, fromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), P)
}

func TestPseudoInverse_Rectangular(t *testing.T) {
	A := fromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	P, rank, err := matrix.PseudoInverse(hide{A})
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	assert.Equal(t, 2, P.Rows())
	assert.Equal(t, 3, P.Cols())

	// A·P·A = A and P·A·P = P.
	AP, err := matrix.Mul(A, P)
	require.NoError(t, err)
	APA, err := matrix.Mul(AP, A)
	require.NoError(t, err)
	requireClose(t, A, APA)

	PA, err := matrix.Mul(P, A)
	require.NoError(t, err)
	PAP, err := matrix.Mul(PA, P)
	require.NoError(t, err)
	requireClose(t, P, PAP)
}

func TestPseudoInverse_LaplacianPenroseAndSymmetry(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"triangle": triangleGraph(t),
		"path7":    pathGraph(t, 7),
	} {
		t.Run(name, func(t *testing.T) {
			lm, err := matrix.NewLaplacian(g)
			require.NoError(t, err)
			P, rank, err := matrix.PseudoInverse(lm.Mat)
			require.NoError(t, err)
			assert.Equal(t, lm.Size()-1, rank, "connected graph has one zero eigenvalue")
			require.NoError(t, matrix.ValidateSymmetric(P, 0), "result is exactly symmetric")

			LP, err := matrix.Mul(lm.Mat, P)
			require.NoError(t, err)
			LPL, err := matrix.Mul(LP, lm.Mat)
			require.NoError(t, err)
			requireClose(t, lm.Mat, LPL)

			// L⁺ annihilates the constant vector: rows sum to zero.
			sums, err := matrix.RowSums(P)
			require.NoError(t, err)
			for _, s := range sums {
				assert.InDelta(t, 0, s, tightTol)
			}
		})
	}
}

func TestPseudoInverse_ToleranceControlsRank(t *testing.T) {
	A := fromRows(t, [][]float64{{1, 0}, {0, 1e-10}})

	_, rank, err := matrix.PseudoInverse(A)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)

	P, rank, err := matrix.PseudoInverse(A, matrix.WithTolerance(1e-8))
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
	requireClose(t, fromRows(t, [][]float64{{1, 0}, {0, 0}}), P)
}

func TestPseudoInverse_MaxRankCapsKeptValues(t *testing.T) {
	A := fromRows(t, [][]float64{{3, 0, 0}, {0, 2, 0}, {0, 0, 1e-3}})

	P, rank, err := matrix.PseudoInverse(A, matrix.WithMaxRank(2))
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	requireClose(t, fromRows(t, [][]float64{{1.0 / 3, 0, 0}, {0, 0.5, 0}, {0, 0, 0}}), P)

	_, rank, err = matrix.PseudoInverse(A, matrix.WithMaxRank(5))
	require.NoError(t, err)
	assert.Equal(t, 3, rank, "cap above the numerical rank is a no-op")

	P, rank, err = matrix.PseudoInverse(A, matrix.WithMaxRank(0))
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
	assert.Equal(t, 0.0, mustAt(t, P, 0, 0))
}

func TestPseudoInverse_ZeroAndDegenerate(t *testing.T) {
	P, rank, err := matrix.PseudoInverse(mustDense(t, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, rank)
	assert.Equal(t, 0.0, mustAt(t, P, 0, 0))

	_, _, err = matrix.PseudoInverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewLaplacian(core.NewGraph())
	require.NoError(t, err)
	_, _, err = matrix.PseudoInverse(empty.Mat)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	loose, err := matrix.FromGonum(mat.NewDense(1, 1, []float64{math.NaN()}), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, _, err = matrix.PseudoInverse(loose)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestPseudoInverse_Deterministic(t *testing.T) {
	lm, err := matrix.NewLaplacian(triangleGraph(t))
	require.NoError(t, err)
	a, _, err := matrix.PseudoInverse(lm.Mat)
	require.NoError(t, err)
	b, _, err := matrix.PseudoInverse(lm.Mat)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestGonumRoundTrip(t *testing.T) {
	A := fromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g, err := matrix.ToGonum(A)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, g.At(1, 2))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	requireClose(t, A, back)

	// The copy is independent of the source.
	g.Set(0, 0, 42)
	assert.Equal(t, 1.0, mustAt(t, A, 0, 0))

	_, err = matrix.FromGonum(mat.NewDense(1, 1, []float64{math.Inf(1)}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
