// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the unit conductance used when no WeightFn is set.
const DefaultEdgeWeight = 1.0

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics unless value is positive and finite.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0 and finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min, max).
// Without an RNG it yields the midpoint, keeping unseeded builds deterministic.
// Panics unless 0 < min ≤ max < +Inf.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if rng == nil || span == 0 {
			return min + span/2
		}

		return min + rng.Float64()*span
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
