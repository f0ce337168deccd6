// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

import "math"

// GraphStats is an immutable-by-convention snapshot of catalog sizes and
// coupling statistics.
type GraphStats struct {
	// AccumulatedWeights reports the WithAccumulatedWeights policy.
	AccumulatedWeights bool

	// VertexCount is the number of sites.
	VertexCount int

	// EdgeCount is the number of coupled pairs.
	EdgeCount int

	// MaxDegree is the largest number of neighbors of any site.
	MaxDegree int

	// TotalWeight is Σ J over all edges.
	TotalWeight float64

	// MaxAbsWeight is max |J| over all edges (0 for an edgeless graph).
	MaxAbsWeight float64
}

// Stats produces a deterministic, read-only snapshot of the graph.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot policy and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, scan edges and adjacency rows, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//   - TotalWeight is summed in creation order so repeated calls agree bit-for-bit.
//
// Returns:
//   - *GraphStats: snapshot of counts and coupling statistics.
//
// Complexity:
//   - Time O(V + E log E), Space O(E) for the ordered edge scan.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		AccumulatedWeights: g.accumulate,
		VertexCount:        len(g.order),
	}
	g.muVert.RUnlock()

	// Edges() takes muEdgeAdj itself and orders by creation sequence.
	edges := g.Edges()
	stats.EdgeCount = len(edges)
	for _, e := range edges {
		stats.TotalWeight += e.Weight
		stats.MaxAbsWeight = math.Max(stats.MaxAbsWeight, math.Abs(e.Weight))
	}

	g.muEdgeAdj.RLock()
	for _, row := range g.adjacencyList {
		if len(row) > stats.MaxDegree {
			stats.MaxDegree = len(row)
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
