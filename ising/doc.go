// Package ising binds an interaction graph and a per-site bias field to spin
// configurations, and computes exact thermal averages by enumeration.
//
// Energy convention (Boltzmann constant fixed at 1):
//
//	E(s) = Σ_{i<j} J_ij·s_i·s_j + Σ_i h_i·(−s_i),   s_i = 1 − 2·bit_i
//
// J_ij is the weight of the edge between sites i and j (0 when absent) and h_i
// is the bias of site i. With this sign convention a positive coupling favors
// anti-aligned neighbors and a positive bias favors spin up (bit 0).
// Magnetization counts set bits against clear ones, M = CountOn − CountOff,
// so a positive bias drives ⟨M⟩ negative.
//
// Site i is the i-th vertex of the core.Graph in insertion order. The graph is
// snapshotted at New: later graph mutations do not reach the Hamiltonian.
//
// What lives here:
//
//   - Hamiltonian: Energy, Magnetization and the O(deg) DeltaEnergy, which
//     equals Energy(flipped) − Energy(current) for every configuration.
//   - Exact ensemble: ComputeAverageValues(T) and Ensemble(ctx, T, opts...)
//     enumerate all 2^N configurations in integer label order, optionally split
//     across goroutines by contiguous label blocks. Boltzmann weights are kept
//     relative to the lowest energy seen, so the partition sum never overflows.
//
//   - Spectrum(ctx, tol) lists the distinct energy levels with their
//     degeneracies (the density of states), ordered by energy.
//
// Cost is exponential in N; Ensemble and Spectrum refuse N > MaxExactSites.
package ising
