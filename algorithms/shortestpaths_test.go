package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/algorithms"
	"github.com/katalvlaran/graphkit/core"
)

func TestShortestPathsOnTriangle(t *testing.T) {
	g := graph1(t)
	dist, parents := algorithms.ShortestPaths(g, 0, g.IDs())

	require.Equal(t, 0, *dist[0])
	require.Equal(t, 1, *dist[1])
	require.Equal(t, 1, *dist[2])
	require.True(t, parents[0].Contains(0))
}

func TestShortestPathsOnPendantTriangle(t *testing.T) {
	g := graph5(t)
	dist, _ := algorithms.ShortestPaths(g, 0, g.IDs())
	require.Equal(t, 2, *dist[3])
}

func TestShortestPathsBFSCountsPaths(t *testing.T) {
	g := graph2(t)
	_, counts, _ := algorithms.ShortestPathsBFS(g, 0)
	// Node 3 is adjacent to 0, so the direct edge is its only shortest path
	// (the route via 1 has length 2); this just checks the count is positive.
	require.Greater(t, counts[3], 0)
}

func TestEnumerateShortestPathsOnTriangle(t *testing.T) {
	g := graph1(t)
	dist, parents := algorithms.ShortestPaths(g, 0, g.IDs())
	paths := algorithms.EnumerateShortestPaths(dist, parents, core.NodeID(0))
	require.NotEmpty(t, paths[1])
}
