// Package matrix offers the dense, index-addressed view of an interaction
// graph that the Hamiltonian uses for O(1) coupling lookups.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - AdjacencyMatrix: the symmetric coupling matrix J of a core.Graph, indexed
//     by site (the graph's vertex insertion order), plus the reverse lookup.
//   - Validators (ValidateSquare, ValidateSymmetric) shared by both.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable; the Hamiltonian keeps a sparse
// neighbor list next to it for the O(deg) hot paths.
package matrix
