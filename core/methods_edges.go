// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/SetWeight/Edges/EdgeCount.
//       Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge couples from and to with the given weight and returns the edge ID.
// Missing endpoints are added first, from before to, so their site indices
// follow the call order.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the pair; accumulate or reject a repeat.
//  4. Generate eid atomically, store, mirror adjacency for both endpoints.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("AddEdge(%s,%s, w=%g): %w", from, to, weight, ErrBadWeight)
	}
	if from == to {
		return "", fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrLoopNotAllowed)
	}

	// 2) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) Repeated pair: sum or reject.
	if eid, ok := g.adjacencyList[from][to]; ok {
		if !g.accumulate {
			return "", fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrMultiEdgeNotAllowed)
		}
		g.edges[eid].Weight += weight

		return eid, nil
	}

	// 4) New edge, mirrored in both adjacency rows.
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	eid := formatEdgeID(seq)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}
	g.adjacencyList[from][to] = eid
	g.adjacencyList[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID from the catalog and both adjacency rows.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacencyList[e.From], e.To)
	delete(g.adjacencyList[e.To], e.From)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether from and to are coupled (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// Weight returns the coupling J between from and to.
// Uncoupled pairs of existing vertices report ErrEdgeNotFound; callers that
// want the physical convention "no edge means J=0" should check errors.Is.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", from, to, ErrVertexNotFound)
	}
	if _, ok := g.vertices[to]; !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", from, to, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", from, to, ErrEdgeNotFound)
	}

	return g.edges[eid].Weight, nil
}

// SetWeight replaces the coupling of an existing edge.
//
// Errors: ErrBadWeight, ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) SetWeight(from, to string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("SetWeight(%s,%s, w=%g): %w", from, to, weight, ErrBadWeight)
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return fmt.Errorf("SetWeight(%s,%s): %w", from, to, ErrEdgeNotFound)
	}
	g.edges[eid].Weight = weight

	return nil
}

// GetEdge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order.
// Returned pointers reference live catalog edges; treat them as read-only.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// formatEdgeID renders a sequence number as "e<n>" without fmt.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
