// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn        ("0","1","2",...)
//   • rng       = nil                (pure unless seeded)
//   • weightFn  = DefaultWeightFn    (unit conductance)
//   • price     = S0 100, μ 0.0005/day, σ 0.02/day

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn

	// BuildPriceSeries controls.
	startPrice float64 // > 0
	drift      float64 // daily μ
	volatility float64 // daily σ ≥ 0
}

const (
	defaultStartPrice = 100.0
	defaultDrift      = 0.0005
	defaultVolatility = 0.02
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies opts in order (last wins). Nil options are skipped.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		weightFn:   DefaultWeightFn,
		startPrice: defaultStartPrice,
		drift:      defaultDrift,
		volatility: defaultVolatility,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local source
// seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
