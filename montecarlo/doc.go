// Package montecarlo estimates Ising thermal averages with single-site
// Metropolis sampling.
//
// One run owns one spin.Config. Each sweep proposes a flip at every site
// 0..N−1 in fixed order; a proposal with energy change Δ is accepted when
// Δ ≤ 0 or exp(−Δ/T) > u for a fresh uniform draw u ∈ [0,1). Every proposal
// consumes exactly one draw, accepted or not. After every sweep whose index is
// ≥ nBurn the total energy and magnetization are recorded.
//
// Sites are updated strictly in sequence because each decision depends on the
// spins just updated. Parallelism is therefore across chains only: RunChains
// runs independent chains on goroutines, each with its own derived seed.
//
// Randomness is injected through Source. The default is a math/rand stream
// with a fixed seed; NewMT19937 gives the MT19937 stream NumPy's RandomState
// produces, for cross-checking against reference runs.
package montecarlo
