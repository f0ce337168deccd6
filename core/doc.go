// Package core provides the thread-safe, in-memory interaction graph that
// every Ising Hamiltonian in this module is built from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; an edge {u,v} carries one real coupling Weight J_uv.
//   - No self-loops (a site does not couple to itself).
//   - At most one edge per unordered pair. With WithAccumulatedWeights a repeated
//     AddEdge adds to the existing coupling instead of failing, which is the
//     natural reading of edge lists that mention a pair twice.
//   - Vertices remember their insertion order. That order is the site index
//     used by spin configurations: the first vertex added is site 0.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj);
//     lock order is always muVert → muEdgeAdj.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                               // O(1)
//	HasVertex(id string) bool                                // O(1)
//	RemoveVertex(id string) error                            // O(V + deg(v))
//	IndexOf(id string) (int, error)                          // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (string, error) // O(1)
//	Weight(from, to string) (float64, error)                 // O(1)
//	SetWeight(from, to string, weight float64) error         // O(1)
//	RemoveEdge(edgeID string) error                          // O(1)
//
//	// Queries (deterministic order)
//	Vertices() []string                // insertion order
//	Edges() []*Edge                    // creation order
//	Neighbors(id string) ([]*Edge, error)  // by neighbor site index
//	NeighborIDs(id string) ([]string, error)
//	Degree(id string) (int, error)
//
// Quick ASCII example, the 4-site ring used throughout the tests:
//
//	0───1
//	│   │
//	3───2
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is NaN or ±Inf.
//	ErrLoopNotAllowed      - both endpoints are the same vertex.
//	ErrMultiEdgeNotAllowed - pair already coupled and accumulation is disabled.
package core
