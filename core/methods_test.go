// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order site indices, since spin configurations rely on them.
//   - Validate constraint enforcement (finite weights, loops, repeated pairs).

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/core"
)

// ring4 builds the 0-1-2-3-0 ring with couplings 1,2,3,4.
func ring4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}} {
		_, err := g.AddEdge(pair[0], pair[1], float64(i+1))
		require.NoError(t, err)
	}

	return g
}

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))

	// Duplicate AddVertex is a no-op.
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("X"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	require.False(t, g.HasVertex("A"))
	require.Zero(t, g.VertexCount())
}

func TestGraph_InsertionOrderIsSiteIndex(t *testing.T) {
	g := core.NewGraph()
	// "10" sorts before "2" lexicographically; insertion order must win.
	for _, id := range []string{"2", "10", "0"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.Equal(t, []string{"2", "10", "0"}, g.Vertices())

	idx, err := g.IndexOf("10")
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	_, err = g.IndexOf("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	// Removing a middle vertex shifts the tail down.
	require.NoError(t, g.RemoveVertex("10"))
	idx, err = g.IndexOf("0")
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	require.Equal(t, []string{"2", "0"}, g.Vertices())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		weight  float64
		wantErr error
	}{
		{name: "empty endpoint", from: "", to: "B", weight: 1, wantErr: core.ErrEmptyVertexID},
		{name: "self loop", from: "A", to: "A", weight: 1, wantErr: core.ErrLoopNotAllowed},
		{name: "NaN weight", from: "A", to: "B", weight: math.NaN(), wantErr: core.ErrBadWeight},
		{name: "Inf weight", from: "A", to: "B", weight: math.Inf(-1), wantErr: core.ErrBadWeight},
		{name: "negative coupling", from: "A", to: "B", weight: -1.5},
		{name: "zero coupling", from: "A", to: "B", weight: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			eid, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, eid)
				require.Zero(t, g.EdgeCount())

				return
			}
			require.NoError(t, err)
			require.Equal(t, "e1", eid)
			w, err := g.Weight(tc.to, tc.from)
			require.NoError(t, err)
			require.Equal(t, tc.weight, w)
		})
	}
}

func TestGraph_RepeatedPair(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	acc := core.NewGraph(core.WithAccumulatedWeights())
	first, err := acc.AddEdge("A", "B", 1)
	require.NoError(t, err)
	second, err := acc.AddEdge("B", "A", 2.5)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, acc.EdgeCount())
	w, err := acc.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 3.5, w)
}

func TestGraph_WeightAndSetWeight(t *testing.T) {
	g := ring4(t)

	w, err := g.Weight("2", "1")
	require.NoError(t, err)
	require.Equal(t, 2.0, w)

	_, err = g.Weight("0", "2")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Weight("0", "9")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.NoError(t, g.SetWeight("1", "2", -7))
	w, err = g.Weight("1", "2")
	require.NoError(t, err)
	require.Equal(t, -7.0, w)

	require.ErrorIs(t, g.SetWeight("0", "2", 1), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.SetWeight("0", "1", math.NaN()), core.ErrBadWeight)
}

func TestGraph_EdgesAndNeighborsOrder(t *testing.T) {
	g := ring4(t)
	// Twelve extra edges push IDs past "e9" so lexicographic order would break.
	for i := 4; i < 16; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)), 1)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 16)
	for i, e := range edges {
		require.Equal(t, "e"+itoa(i+1), e.ID)
	}

	nbrs, err := g.NeighborIDs("0")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, nbrs)

	deg, err := g.Degree("hub")
	require.NoError(t, err)
	require.Equal(t, 12, deg)

	_, err = g.Neighbors("nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	adj := g.AdjacencyList()
	require.Equal(t, []string{"e1", "e4"}, adj["0"])
}

func TestGraph_RemoveEdgeAndVertexCascade(t *testing.T) {
	g := ring4(t)

	require.ErrorIs(t, g.RemoveEdge("e99"), core.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge("e1"))
	require.False(t, g.HasEdge("0", "1"))
	require.False(t, g.HasEdge("1", "0"))

	require.NoError(t, g.RemoveVertex("2"))
	require.Equal(t, 1, g.EdgeCount()) // only 3-0 survives
	require.True(t, g.HasEdge("0", "3"))
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := ring4(t)
	v, err := g.Vertex("0")
	require.NoError(t, err)
	v.Metadata["bias"] = 0.5

	c := g.Clone()
	require.Equal(t, g.Vertices(), c.Vertices())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())

	require.NoError(t, c.SetWeight("0", "1", 42))
	w, err := g.Weight("0", "1")
	require.NoError(t, err)
	require.Equal(t, 1.0, w)

	eid, err := c.AddEdge("0", "2", 1)
	require.NoError(t, err)
	require.Equal(t, "e5", eid)

	cv, err := c.Vertex("0")
	require.NoError(t, err)
	require.Equal(t, 0.5, cv.Metadata["bias"])

	c.Clear()
	require.Zero(t, c.VertexCount())
	require.Equal(t, 4, g.VertexCount())
}

func TestGraph_Stats(t *testing.T) {
	g := ring4(t)
	_, err := g.AddEdge("0", "2", -9)
	require.NoError(t, err)

	s := g.Stats()
	require.Equal(t, 4, s.VertexCount)
	require.Equal(t, 5, s.EdgeCount)
	require.Equal(t, 3, s.MaxDegree)
	require.Equal(t, 1.0, s.TotalWeight)
	require.Equal(t, 9.0, s.MaxAbsWeight)
	require.False(t, s.AccumulatedWeights)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = g.AddEdge("w"+itoa(w), "n"+itoa(i), 1)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*50, g.EdgeCount())
	require.Equal(t, workers+50, g.VertexCount())
	for i, id := range g.Vertices() {
		idx, err := g.IndexOf(id)
		require.NoError(t, err)
		require.Equal(t, i, idx)
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf []byte
	for ; i > 0; i /= 10 {
		buf = append([]byte{byte('0' + i%10)}, buf...)
	}

	return string(buf)
}
