// SPDX-License-Identifier: MIT

// Package correlation computes pairwise Pearson correlations of aligned price
// series and turns them into correlation networks that the resistance package
// can analyze.
//
// Modes:
//   - levels (default): ρ of the raw price vectors.
//   - returns (WithReturns): ρ of simple returns r[t] = p[t]/p[t−1] − 1,
//     which needs strictly positive prices and at least three observations.
//
// The result matrix is symmetric with a unit diagonal; a constant series has
// no defined correlation and yields 0 against every other series.
//
// Network(threshold) keeps an edge of weight ρ for every pair with
// ρ > threshold. Thresholds lie in [0, 1), so every kept weight is a positive
// conductance, and every symbol is present as a vertex even when isolated.
//
// Example:
//
//	res, err := correlation.Pairwise(series, correlation.WithReturns())
//	if err != nil { ... }
//	g, _ := res.Network(0.5)
//	kr, err := resistance.Kirchhoff(g, resistance.WithAllowDisconnected())
package correlation
