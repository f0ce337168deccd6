// Package montecarlo - random sources shared by the sampler and chain runner.
//
// Goals:
//   - Determinism: same seed ⇒ identical chains across platforms.
//   - Encapsulation: no time-based or process-wide sources anywhere.
//
// Concurrency:
//   - Sources are NOT goroutine-safe. Each chain owns its own stream;
//     use deriveSeed to seed per-chain streams from one base seed.
package montecarlo

import "math/rand"

// Source yields uniform draws in [0, 1). *rand.Rand and *MT19937 satisfy it.
type Source interface {
	Float64() float64
}

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or no source.
const defaultRNGSeed int64 = 1

// sourceFromSeed returns a deterministic math/rand stream.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func sourceFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with the SplitMix64 finalizer, so chain k of a run never shares a
// stream with chain k+1.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
