package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/bfs"
	"github.com/katalvlaran/isingraph/builder"
	"github.com/katalvlaran/isingraph/core"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.Clusters(g, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.Clusters(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_RingDepthsAndPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "5", "2", "4", "3"}, res.Order)
	require.Equal(t, 3, res.Depth["3"])

	path, err := res.PathTo("4")
	require.NoError(t, err)
	require.Equal(t, []string{"0", "5", "4"}, path)

	path, err = res.PathTo("0")
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, path)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, res.Order)
	_, err = res.PathTo("4")
	require.ErrorIs(t, err, bfs.ErrNoPath)

	require.NoError(t, g.SetWeight("2", "3", -1))
	res, err = bfs.BFS(g, "0", bfs.WithEdgeFilter(func(e *core.Edge) bool { return e.Weight > 0 }))
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = bfs.BFS(g, "0", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestClusters(t *testing.T) {
	g := core.NewGraph()
	// Sites in insertion order: a c b d e f.
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"a", "c", 1},
		{"b", "d", 0}, // zero coupling does not join
		{"e", "b", -2},
		{"c", "f", 0.5},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	clusters, err := bfs.Clusters(g)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "c", "f"}, {"b", "e"}, {"d"}}, clusters)

	// A filter can only split clusters further.
	clusters, err = bfs.Clusters(g, bfs.WithEdgeFilter(func(e *core.Edge) bool { return e.Weight > 0 }))
	require.NoError(t, err)
	require.Len(t, clusters, 4)
}

func TestClusters_ConnectedLattice(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Torus(3, 4))
	require.NoError(t, err)

	clusters, err := bfs.Clusters(g)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	require.Equal(t, g.Vertices(), clusters[0])
}
