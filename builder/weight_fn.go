// Package builder provides internal helper functions and types
// for configuring coupling distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the coupling assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a coupling J given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and return finite values.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Any finite sign is accepted. Panics on NaN/Inf.
func ConstantWeightFn(value float64) WeightFn {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if max < min or either bound is not finite.
// If rng is nil, yields the interval midpoint to keep a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}
		if rng == nil {
			return min + (max-min)/2
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev).
// Panics if stddev < 0 or a parameter is not finite.
// If rng is nil, yields mean.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		panic(fmt.Sprintf("NormalWeightFn: require finite mean and stddev ≥ 0, got mean=%g, stddev=%g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// BimodalWeightFn returns a WeightFn yielding +j with probability p and −j
// otherwise (the ±J spin glass). Panics if p ∉ [0,1] or j is not finite.
// If rng is nil, yields +j when p ≥ 0.5 and −j otherwise.
func BimodalWeightFn(j, p float64) WeightFn {
	if math.IsNaN(j) || math.IsInf(j, 0) || !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("BimodalWeightFn: require finite j and p in [0,1], got j=%g, p=%g", j, p))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			if p >= 0.5 {
				return j
			}
			return -j
		}
		if rng.Float64() < p {
			return j
		}

		return -j
	}
}

// WithConstantWeight sets a fixed coupling via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets couplings ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets couplings ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithBimodalWeight sets ±j couplings via BimodalWeightFn.
func WithBimodalWeight(j, p float64) BuilderOption {
	return WithWeightFn(BimodalWeightFn(j, p))
}
