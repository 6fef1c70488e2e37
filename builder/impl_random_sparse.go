// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi trials: each unordered pair {i,j}, i<j, is joined with probability p.
//   - Pairs that are already adjacent are skipped without consuming a weight draw,
//     so RandomSparse composes with Path/Cycle backbones into connected fixtures.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be set for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) trials. Space: O(1) extra.
//
// Determinism:
//   - Trial order i asc, then j asc; one rng.Float64 per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		var (
			i, j int
			u, v string
			hit  bool
		)
		for i = 0; i < n; i++ {
			u = cfg.idFn(i)
			for j = i + 1; j < n; j++ {
				switch {
				case p == probMax:
					hit = true
				case p == probMin:
					hit = false
				default:
					hit = cfg.rng.Float64() < p
				}
				if !hit {
					continue
				}
				v = cfg.idFn(j)
				if g.HasEdge(u, v) {
					continue
				}
				if err := addWeightedEdge(g, cfg, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
