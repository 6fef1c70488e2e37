// SPDX-License-Identifier: MIT

package resistance

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

// Kirchhoff computes the Kirchhoff index Kf = n·trace(L⁺) of g together with
// L, L⁺ and the numerical rank of L.
//
// Implementation:
//   - Stage 1: nil → empty → connectivity (skipped with WithAllowDisconnected).
//   - Stage 2: matrix.NewLaplacian in insertion order.
//   - Stage 3: matrix.PseudoInverse with the rank capped at n − components.
//   - Stage 4: Kf = n·trace(L⁺).
//
// A single vertex gives L = [0], L⁺ = [0], rank 0 and Kf = 0.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrDisconnected, or a wrapped matrix error.
func Kirchhoff(g *core.Graph, opts ...Option) (*KirchhoffResult, error) {
	return kirchhoff(g, gatherOptions(opts...))
}

// kirchhoff is Kirchhoff with the options already resolved.
func kirchhoff(g *core.Graph, o Options) (*KirchhoffResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	components := len(g.ConnectedComponents())
	if components > 1 && !o.AllowDisconnected {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, components)
	}

	lm, err := matrix.NewLaplacian(g, o.matrixOptions()...)
	if err != nil {
		return nil, fmt.Errorf("resistance: laplacian: %w", err)
	}
	n = lm.Size()

	structural := n - components
	if structural < 0 {
		structural = 0
	}
	pinvOpts := append(o.matrixOptions(), matrix.WithMaxRank(structural))
	P, rank, err := matrix.PseudoInverse(lm.Mat, pinvOpts...)
	if err != nil {
		return nil, fmt.Errorf("resistance: pseudoinverse: %w", err)
	}

	tr, err := matrix.Trace(P)
	if err != nil {
		return nil, fmt.Errorf("resistance: trace: %w", err)
	}
	kf := float64(n) * tr

	log := o.Logger.WithFields(logrus.Fields{
		"vertices":   n,
		"edges":      g.EdgeCount(),
		"components": components,
		"rank":       rank,
		"kirchhoff":  kf,
	})
	if rank < structural {
		log.WithField("expected_rank", structural).Warn("laplacian rank below n - components")
	}
	log.Debug("kirchhoff index computed")

	return &KirchhoffResult{
		Index:         kf,
		Laplacian:     lm,
		Pseudoinverse: P,
		Rank:          rank,
		Components:    components,
	}, nil
}

// VertexOrder returns the vertex IDs in matrix index order.
func (kr *KirchhoffResult) VertexOrder() []string {
	return kr.Laplacian.VertexOrder()
}

// EffectiveResistance returns R(u,v) = L⁺[u,u] + L⁺[v,v] − 2·L⁺[u,v].
// R(u,u) = 0. Errors: ErrNilResult, ErrVertexNotFound.
func (kr *KirchhoffResult) EffectiveResistance(u, v string) (float64, error) {
	i, j, err := kr.pair(u, v)
	if err != nil {
		return 0, err
	}
	if i == j {
		return 0, nil
	}

	return resistanceAt(kr.Pseudoinverse, i, j), nil
}

// ResistanceMatrix returns the n×n effective-resistance matrix in vertex
// order, with a zero diagonal.
// Complexity: O(n²).
func (kr *KirchhoffResult) ResistanceMatrix() (*matrix.Dense, error) {
	if !kr.complete() {
		return nil, ErrNilResult
	}
	d := kr.Pseudoinverse.Diag()
	R, ok := kr.Pseudoinverse.Clone().(*matrix.Dense)
	if !ok {
		return nil, ErrNilResult
	}
	if err := R.Apply(func(i, j int, p float64) float64 {
		if i == j {
			return 0
		}
		return d[i] + d[j] - 2*p
	}); err != nil {
		return nil, fmt.Errorf("resistance: resistance matrix: %w", err)
	}

	return R, nil
}

// complete reports whether the result carries both matrices.
func (kr *KirchhoffResult) complete() bool {
	return kr != nil && kr.Laplacian != nil && kr.Pseudoinverse != nil
}

// pair resolves two vertex IDs to matrix indices.
func (kr *KirchhoffResult) pair(u, v string) (int, int, error) {
	if !kr.complete() {
		return 0, 0, ErrNilResult
	}
	i, err := kr.Laplacian.Index(u)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	j, err := kr.Laplacian.Index(v)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return i, j, nil
}

// resistanceAt reads R(i,j) from P; i and j are valid indices.
func resistanceAt(P *matrix.Dense, i, j int) float64 {
	pii, _ := P.At(i, i)
	pjj, _ := P.At(j, j)
	pij, _ := P.At(i, j)

	return pii + pjj - 2*pij
}
