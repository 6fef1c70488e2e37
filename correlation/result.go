// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/kirchhoff/core"
	"github.com/katalvlaran/kirchhoff/matrix"
)

// Result is a symmetric correlation matrix indexed by Symbols.
type Result struct {
	// Symbols in input order; Matrix row i belongs to Symbols[i].
	Symbols []string

	// Matrix holds ρ with a unit diagonal.
	Matrix *matrix.Dense

	index map[string]int
}

// At returns ρ(a, b).
func (r *Result) At(a, b string) (float64, error) {
	i, ok := r.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, a)
	}
	j, ok := r.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	}

	return r.Matrix.At(i, j)
}

// Pairs lists every unordered pair once (A before B in input order), sorted
// by descending |ρ|, ties broken by A then B.
func (r *Result) Pairs() []Pair {
	k := len(r.Symbols)
	out := make([]Pair, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			rho, _ := r.Matrix.At(i, j)
			out = append(out, Pair{A: r.Symbols[i], B: r.Symbols[j], Rho: rho})
		}
	}
	sort.Slice(out, func(x, y int) bool {
		ax, ay := math.Abs(out[x].Rho), math.Abs(out[y].Rho)
		if ax != ay {
			return ax > ay
		}
		if out[x].A != out[y].A {
			return out[x].A < out[y].A
		}

		return out[x].B < out[y].B
	})

	return out
}

// Network builds a graph with every symbol as a vertex (input order) and an
// edge of weight ρ for each pair with ρ > threshold.
// Returns ErrInvalidThreshold unless 0 ≤ threshold < 1.
func (r *Result) Network(threshold float64) (*core.Graph, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold >= 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidThreshold, threshold)
	}
	g := core.NewGraph()
	for _, s := range r.Symbols {
		if err := g.AddVertex(s); err != nil {
			return nil, err
		}
	}
	k := len(r.Symbols)
	var rho float64
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			rho, _ = r.Matrix.At(i, j)
			if rho <= threshold {
				continue
			}
			if _, err := g.AddEdge(r.Symbols[i], r.Symbols[j], rho); err != nil {
				return nil, fmt.Errorf("correlation: network %s--%s: %w", r.Symbols[i], r.Symbols[j], err)
			}
		}
	}

	return g, nil
}
