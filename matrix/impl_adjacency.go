// SPDX-License-Identifier: MIT
// Package matrix - the site-indexed coupling matrix of an interaction graph.
//
// Deliverables:
//   1) Row/column i is the i-th vertex in core insertion order (the site index).
//   2) Every edge is mirrored: J[i][j] == J[j][i]; the diagonal stays zero.
//   3) Per-site neighbor lists are ascending by site index and skip zero couplings.
//   4) Deterministic iteration over edges in creation order (no map order reliance).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isingraph/core"
)

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// AdjacencyMatrix wraps a Dense coupling matrix together with the site index.
// VertexIndex maps VertexID → row/col in Mat.
// vertexByIndex provides reverse lookup from index to VertexID.
// neighbors[i] lists the sites j with J[i][j] != 0, ascending.
type AdjacencyMatrix struct {
	Mat           *Dense         // symmetric coupling matrix
	VertexIndex   map[string]int // mapping of VertexID to index
	vertexByIndex []string       // reverse lookup by index
	neighbors     [][]int        // sparse rows, ascending
}

// NewAdjacencyMatrix builds the coupling matrix of g.
//
// Implementation:
//   - Stage 1: validate input graph (ErrGraphNil, ErrInvalidDimensions for V=0).
//   - Stage 2: snapshot vertices in insertion order and build the index.
//   - Stage 3: mirror every edge weight into Mat (non-finite → ErrNaNInf).
//   - Stage 4: derive ascending sparse rows from the dense matrix.
//
// Errors:
//   - ErrGraphNil, ErrInvalidDimensions, ErrUnknownVertex, ErrNaNInf.
//
// Complexity:
//   - Time O(V² + E), Space O(V²).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", ErrGraphNil)
	}

	ids := g.Vertices()
	n := len(ids)
	mat, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	var (
		e    *core.Edge
		u, v int
		ok   bool
	)
	for _, e = range g.Edges() {
		if u, ok = index[e.From]; !ok {
			return nil, fmt.Errorf("NewAdjacencyMatrix: edge %s from %q: %w", e.ID, e.From, ErrUnknownVertex)
		}
		if v, ok = index[e.To]; !ok {
			return nil, fmt.Errorf("NewAdjacencyMatrix: edge %s to %q: %w", e.ID, e.To, ErrUnknownVertex)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("NewAdjacencyMatrix: edge %s: %w", e.ID, ErrNaNInf)
		}
		if u == v {
			continue // core forbids loops; a zero diagonal keeps the energy well-defined anyway
		}
		// Add rather than Set so an accumulating graph snapshot stays exact.
		_ = mat.Add(u, v, e.Weight)
		_ = mat.Add(v, u, e.Weight)
	}

	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, 0, defaultReserve)
		for j := 0; j < n; j++ {
			if mat.data[i*n+j] != 0 {
				row = append(row, j)
			}
		}
		neighbors[i] = row
	}

	return &AdjacencyMatrix{
		Mat:           mat,
		VertexIndex:   index,
		vertexByIndex: ids,
		neighbors:     neighbors,
	}, nil
}

// VertexCount returns the number of sites.
// Complexity: O(1).
func (am *AdjacencyMatrix) VertexCount() int {
	return len(am.vertexByIndex)
}

// Index returns the site index of the given vertex ID.
// Errors: ErrUnknownVertex.
// Complexity: O(1).
func (am *AdjacencyMatrix) Index(id string) (int, error) {
	i, ok := am.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("AdjacencyMatrix.Index(%q): %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// VertexID returns the vertex ID at site index i.
// Errors: ErrIndexOutOfBounds.
// Complexity: O(1).
func (am *AdjacencyMatrix) VertexID(i int) (string, error) {
	if i < 0 || i >= len(am.vertexByIndex) {
		return "", fmt.Errorf("AdjacencyMatrix.VertexID(%d): %w", i, ErrIndexOutOfBounds)
	}

	return am.vertexByIndex[i], nil
}

// VertexIDs returns a copy of the site-ordered vertex IDs.
func (am *AdjacencyMatrix) VertexIDs() []string {
	out := make([]string, len(am.vertexByIndex))
	copy(out, am.vertexByIndex)

	return out
}

// Weight returns J[i][j] (zero when the sites are not coupled).
// Errors: ErrIndexOutOfBounds.
// Complexity: O(1).
func (am *AdjacencyMatrix) Weight(i, j int) (float64, error) {
	return am.Mat.At(i, j)
}

// Neighbors returns a copy of the coupled sites of i, ascending.
// Errors: ErrIndexOutOfBounds.
// Complexity: O(deg(i)).
func (am *AdjacencyMatrix) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(am.neighbors) {
		return nil, fmt.Errorf("AdjacencyMatrix.Neighbors(%d): %w", i, ErrIndexOutOfBounds)
	}
	out := make([]int, len(am.neighbors[i]))
	copy(out, am.neighbors[i])

	return out, nil
}

// DegreeVector returns Σ_j |J[i][j]| for every site i.
// Complexity: O(V + E).
func (am *AdjacencyMatrix) DegreeVector() []float64 {
	n := len(am.vertexByIndex)
	out := make([]float64, n)
	for i, row := range am.neighbors {
		for _, j := range row {
			out[i] += math.Abs(am.Mat.data[i*n+j])
		}
	}

	return out
}
