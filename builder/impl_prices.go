// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// impl_prices.go - deterministic daily close prices via discrete-time GBM.
//
// Contract:
//   - BuildPriceSeries(days, seed, opts...) → closes[0..days-1], closes[0] = S0.
//   - days < 1 ⇒ nil; never panics.
//   - Every price is strictly positive and finite.
//
// Determinism policy:
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed/WithRand).
//   - Else → rand.New(rand.NewSource(seed)).

package builder

import "math"

// BuildPriceSeries returns days daily closes following
//
//	S_{t+1} = S_t · exp((μ − σ²/2) + σ·Z),  Z ~ N(0,1)
//
// with S0, μ and σ from WithStartPrice, WithDrift and WithVolatility.
// Complexity: O(days).
func BuildPriceSeries(days int, seed int64, opts ...BuilderOption) []float64 {
	if days < 1 {
		return nil
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, days)
	out[0] = cfg.startPrice

	drift := cfg.drift - 0.5*cfg.volatility*cfg.volatility
	var t int
	for t = 1; t < days; t++ {
		out[t] = out[t-1] * math.Exp(drift+cfg.volatility*rng.NormFloat64())
	}

	return out
}
