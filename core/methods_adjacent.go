// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() and NeighborIDs() are ordered by the neighbor's site index.
//   - AdjacencyList() returns per-vertex edgeID slices in the same order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id, ordered by the
// site index of the opposite endpoint.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert read lock and muEdgeAdj read lock (in that order).
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect incident edges and sort by neighbor index.
//
// Returns pointers to live catalog edges (read-only by convention).
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	row := g.adjacencyList[id]
	out := make([]*Edge, 0, len(row))
	for _, eid := range row {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool {
		return g.index[out[i].Other(id)] < g.index[out[j].Other(id)]
	})

	return out, nil
}

// NeighborIDs returns the IDs of the sites coupled to id, ordered by site index.
//
// Errors: propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Other(id)
	}

	return out, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its incident edge IDs,
// each slice ordered by neighbor site index. Slices are independent copies.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		row := g.adjacencyList[id]
		nbrs := make([]string, 0, len(row))
		for nbr := range row {
			nbrs = append(nbrs, nbr)
		}
		sort.Slice(nbrs, func(i, j int) bool { return g.index[nbrs[i]] < g.index[nbrs[j]] })
		eids := make([]string, len(nbrs))
		for i, nbr := range nbrs {
			eids[i] = row[nbr]
		}
		out[id] = eids
	}

	return out
}
