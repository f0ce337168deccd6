// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order; that order is the site index.
//   - RemoveVertex compacts the order, shifting later sites down by one.
//
// Concurrency:
//   - Vertex catalog and order protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "fmt"

// AddVertex inserts a new vertex with the given ID into the Graph.
// The vertex receives the next free site index.
//
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent) and its index is kept.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)

	// Initialize adjacency entry for this vertex
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the live *Vertex for id so callers can attach Metadata.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Sites after the removed one shift down by one index.
//
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound if vertex does not exist.
// Complexity: O(V + deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	pos, exists := g.index[id]
	if !exists {
		return ErrVertexNotFound
	}

	// Drop incident edges from both adjacency rows and the catalog.
	for nbr, eid := range g.adjacencyList[id] {
		delete(g.adjacencyList[nbr], id)
		delete(g.edges, eid)
	}
	delete(g.adjacencyList, id)
	delete(g.vertices, id)
	delete(g.index, id)

	// Compact the order and re-index the tail.
	copy(g.order[pos:], g.order[pos+1:])
	g.order = g.order[:len(g.order)-1]
	for i := pos; i < len(g.order); i++ {
		g.index[g.order[i]] = i
	}

	return nil
}

// Vertices returns all vertex IDs in insertion (site index) order.
// The returned slice is a fresh copy.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// IndexOf returns the site index of id (its position in Vertices()).
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) IndexOf(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("IndexOf(%q): %w", id, ErrVertexNotFound)
	}

	return i, nil
}

// Degree returns the number of sites coupled to id.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[id]), nil
}
