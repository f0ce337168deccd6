// Package isingraph models classical Ising spin systems on arbitrary weighted
// interaction graphs and computes their thermal averages, exactly or by
// Metropolis sampling.
//
// Layout:
//
//	core/        — interaction graph: sites (vertices) and couplings (undirected weighted edges)
//	matrix/      — dense row-major matrices and the site-indexed coupling matrix
//	builder/     — deterministic lattices (cycle, path, grid, torus, complete, random) and coupling generators
//	bfs/         — breadth-first search and the decomposition into coupled clusters
//	spin/        — SpinConfiguration: N binary sites, spin = 1 − 2·bit
//	ising/       — Hamiltonian (energy, magnetization, flip delta) and the exact ensemble
//	montecarlo/  — single-spin-flip Metropolis sampler, seeded sources, parallel chains
//	cmd/isingctl — command-line driver over a YAML model file
//
// Energy convention:
//
//	E(s) = Σ_{i<j} J_ij s_i s_j + Σ_i h_i (−s_i)
//
// so J > 0 favors anti-aligned neighbors and h_i > 0 favors bit 0 (spin +1).
// Magnetization counts set bits against clear ones, M = CountOn − CountOff.
//
// Quick example (6-site antiferromagnetic ring, J = 2):
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle(6))
//	h, _ := ising.New(g)
//	avg, _ := h.ComputeAverageValues(1.0) // ⟨E⟩ ≈ −11.9599
//
//	m, _ := montecarlo.NewMetropolis(h, montecarlo.WithSeed(42))
//	res, _ := m.Run(context.Background(), 1.0, 20000, 2000)
//	est, _ := res.Summary(1.0)
package isingraph
