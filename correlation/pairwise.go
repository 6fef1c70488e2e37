// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/kirchhoff/matrix"
)

const opPairwise = "Pairwise"

// minLevels and minReturns are the shortest series each mode accepts.
const (
	minLevels  = 2
	minReturns = 3
)

// Pairwise computes the Pearson correlation matrix of series, indexed in
// input order.
//
// Steps:
//  1. Validate: ≥ 2 series, unique non-empty symbols, equal lengths, enough
//     observations, finite prices (and positive ones in returns mode).
//  2. Transform to returns when WithReturns is set.
//  3. Fill the upper triangle with stat.Correlation and mirror it; undefined
//     values (constant series) become 0, the diagonal is 1.
//
// Complexity: O(k²·m) for k series of m observations.
func Pairwise(series []Series, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if err := validate(series, o.Returns); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}

	k := len(series)
	obs := make([][]float64, k)
	symbols := make([]string, k)
	for i, s := range series {
		symbols[i] = s.Symbol
		if o.Returns {
			obs[i] = simpleReturns(s.Prices)
		} else {
			obs[i] = s.Prices
		}
	}

	m, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwise, err)
	}
	var (
		i, j int
		rho  float64
	)
	for i = 0; i < k; i++ {
		if err = m.Set(i, i, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", opPairwise, err)
		}
		for j = i + 1; j < k; j++ {
			rho = stat.Correlation(obs[i], obs[j], nil)
			if math.IsNaN(rho) || math.IsInf(rho, 0) {
				rho = 0
			}
			if err = m.Set(i, j, rho); err != nil {
				return nil, fmt.Errorf("%s: %w", opPairwise, err)
			}
			if err = m.Set(j, i, rho); err != nil {
				return nil, fmt.Errorf("%s: %w", opPairwise, err)
			}
		}
	}

	mode := "levels"
	if o.Returns {
		mode = "returns"
	}
	o.Logger.WithFields(logrus.Fields{
		"series":       k,
		"observations": len(obs[0]),
		"mode":         mode,
	}).Debug("correlation matrix computed")

	index := make(map[string]int, k)
	for i, s := range symbols {
		index[s] = i
	}

	return &Result{Symbols: symbols, Matrix: m, index: index}, nil
}

func validate(series []Series, returns bool) error {
	if len(series) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSeries, len(series))
	}
	need := minLevels
	if returns {
		need = minReturns
	}
	n := len(series[0].Prices)
	seen := make(map[string]struct{}, len(series))
	for _, s := range series {
		if s.Symbol == "" {
			return ErrDuplicateSymbol
		}
		if _, dup := seen[s.Symbol]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, s.Symbol)
		}
		seen[s.Symbol] = struct{}{}
		if len(s.Prices) != n {
			return fmt.Errorf("%w: %q has %d, want %d", ErrLengthMismatch, s.Symbol, len(s.Prices), n)
		}
		for t, p := range s.Prices {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return fmt.Errorf("%w: %q[%d]", ErrNonFinite, s.Symbol, t)
			}
			if returns && p <= 0 {
				return fmt.Errorf("%w: %q[%d] = %g", ErrNonPositivePrice, s.Symbol, t, p)
			}
		}
	}
	if n < need {
		return fmt.Errorf("%w: %d, need %d", ErrTooFewObservations, n, need)
	}

	return nil
}

// simpleReturns maps m prices to m−1 returns p[t]/p[t−1] − 1.
func simpleReturns(prices []float64) []float64 {
	out := make([]float64, len(prices)-1)
	for t := 1; t < len(prices); t++ {
		out[t-1] = prices[t]/prices[t-1] - 1
	}

	return out
}
