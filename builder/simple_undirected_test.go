package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

func TestSimpleUndirectedBuilderFromTuples(t *testing.T) {
	var b builder.SimpleUndirectedBuilder
	g, err := b.FromTuples([]builder.EdgeTuple{
		{Source: 0, Target: 1},
		{Source: 1, Target: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.CountNodes())
	require.Equal(t, 2, g.CountEdges())
}

func TestSimpleUndirectedBuilderFromPairs(t *testing.T) {
	var b builder.SimpleUndirectedBuilder
	g, err := b.FromPairs([][2]int64{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	require.Equal(t, 3, g.CountNodes())
	require.Equal(t, 3, g.CountEdges())
	require.ElementsMatch(t, []core.NodeID{1, 2}, g.Node(0).Neighbors().SortedIDs())
}

func TestSimpleUndirectedBuilderPreservesParallelEdges(t *testing.T) {
	var b builder.SimpleUndirectedBuilder
	g, err := b.FromTuples([]builder.EdgeTuple{
		{Source: 0, Target: 1},
		{Source: 0, Target: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.CountEdges())
	require.Equal(t, 2, g.Node(0).Degree())
}
