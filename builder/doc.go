// Package builder provides reusable "functional-options"-style constructors
// for the interaction graphs an Ising model is defined on. It lives alongside
// core and ising to centralize lattice topology, vertex ID schemes and
// coupling distributions, keeping fixtures DRY, testable and reproducible.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph and apply constructors in order.
//     – Constructor: a closure that mutates a graph using the resolved builderConfig.
//   - Topologies (site order = vertex insertion order):
//     – Cycle(n), Path(n):        1D rings and open chains.
//     – Grid(rows, cols):         2D square lattice with open boundaries, IDs "r,c".
//     – Torus(rows, cols):        2D square lattice with periodic boundaries, IDs "r,c".
//     – Complete(n):              all-to-all couplings (Sherrington–Kirkpatrick style).
//     – RandomSparse(n, p):       Erdős–Rényi couplings; needs WithSeed/WithRand.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolNumberIDFn, ExcelColumnIDFn.
//   - Coupling distributions (WeightFn):
//     – ConstantWeightFn:  ferromagnetic (J>0) or antiferromagnetic (J<0) uniform coupling.
//     – UniformWeightFn:   J ∼ U[min,max], signs allowed.
//     – NormalWeightFn:    Gaussian J ∼ N(mean,stddev) (SK spin glass).
//     – BimodalWeightFn:   ±J spin glass with P(+J)=p.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors never panic; they return sentinel errors wrapped with %w.
//   - Same seed, options and constructor order ⇒ identical graphs and site order.
//
// Energy convention reminder: the Hamiltonian adds +J s_i s_j per coupled pair,
// so a negative coupling favors aligned spins and a positive one anti-aligned.
package builder
