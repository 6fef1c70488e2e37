// SPDX-License-Identifier: MIT
// Package: kirchhoff/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG shared by every stochastic step.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. The function must
// return positive finite weights; anything else surfaces as core.ErrBadWeight
// from the constructor. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithStartPrice sets the initial price S0 of BuildPriceSeries.
// Panics unless S0 is positive and finite.
func WithStartPrice(s0 float64) BuilderOption {
	if !(s0 > 0) || math.IsInf(s0, 0) {
		panic("builder: WithStartPrice(S0<=0)")
	}

	return func(c *builderConfig) { c.startPrice = s0 }
}

// WithDrift sets the daily drift μ of BuildPriceSeries. Panics on NaN/±Inf.
func WithDrift(mu float64) BuilderOption {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic("builder: WithDrift(non-finite)")
	}

	return func(c *builderConfig) { c.drift = mu }
}

// WithVolatility sets the daily volatility σ of BuildPriceSeries.
// Panics if σ is negative or non-finite.
func WithVolatility(sigma float64) BuilderOption {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("builder: WithVolatility(sigma<0)")
	}

	return func(c *builderConfig) { c.volatility = sigma }
}
