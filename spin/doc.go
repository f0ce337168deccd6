// Package spin defines Config, the fixed-length vector of two-state sites
// shared by the ising Hamiltonian, the exact enumerator and the Monte Carlo
// sampler.
//
// Encoding:
//
//   - Each site holds a bit b ∈ {0,1}; its physical spin is s = 1 − 2b, so
//     bit 0 is spin up (+1) and bit 1 is spin down (−1).
//   - CountOn counts set bits and CountOff clear bits, so the magnetization
//     CountOn − CountOff is −Σ s_i.
//   - Integer conversions are big-endian: site 0 is the most significant bit.
//     SetInteger(x) followed by Integer() returns x for every x in [0, 2^N)
//     when N ≤ 64; this is the labeling the exact enumerator walks.
//   - SetInteger keeps only the low N bits of its argument. Larger values are
//     truncated silently and deterministically.
//
// Ownership:
//
//   - A Config is mutated in place and is not safe for concurrent use.
//     Whoever runs a loop over it (an enumeration block, a sampler run) owns it
//     exclusively; hand out Clone() copies to other goroutines.
package spin
