// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building, querying, and cloning
// interaction graphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a coupling that is not a finite real number.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between an already coupled pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a site of the interaction graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents the undirected coupling between two sites.
//
// From/To record the orientation the edge was added with; it carries no
// meaning beyond reproducible printing. Weight is the coupling strength J.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the coupling strength J between From and To.
	Weight float64

	seq uint64 // creation sequence, used for deterministic ordering
}

// Other returns the endpoint of e opposite to id.
// The result is undefined if id is not an endpoint of e.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithAccumulatedWeights makes AddEdge on an already coupled pair add the new
// weight to the existing coupling instead of returning ErrMultiEdgeNotAllowed.
func WithAccumulatedWeights() GraphOption {
	return func(g *Graph) { g.accumulate = true }
}

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.order = make([]string, 0, n)
		}
	}
}

// Graph is the core in-memory interaction graph.
//
// muVert protects vertices and order; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	accumulate bool // repeated AddEdge sums weights

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	index      map[string]int     // vertex ID → position in order
	order      []string           // insertion order of vertex IDs
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[u][v] = edge ID, mirrored for both endpoints.
	adjacencyList map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default repeated edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		index:         make(map[string]int),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]string),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
