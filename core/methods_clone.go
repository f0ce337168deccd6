// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves vertex order (site indices), edge IDs and nextEdgeID.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: options, vertices, edges and adjacency.
// Vertex Metadata maps are shared, not copied.
//
// Carries over nextEdgeID so that future AddEdge calls on the clone continue the
// same textual sequence.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithCapacity(len(g.order)))
	clone.accumulate = g.accumulate
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for i, id := range g.order {
		v := g.vertices[id]
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.index[id] = i
		clone.order = append(clone.order, id)
		clone.adjacencyList[id] = make(map[string]string, len(g.adjacencyList[id]))
	}
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, seq: e.seq}
		clone.adjacencyList[e.From][e.To] = eid
		clone.adjacencyList[e.To][e.From] = eid
	}

	return clone
}

// Clear resets the graph to an empty state but preserves options.
// Complexity: O(1) (old catalogs are released to the GC).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.index = make(map[string]int)
	g.order = nil
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
