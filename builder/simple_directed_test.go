package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
)

func TestSimpleDirectedBuilderFromTuples(t *testing.T) {
	var b builder.SimpleDirectedBuilder
	g, err := b.FromTuples([]builder.EdgeTuple{
		{Source: 0, Target: 1},
		{Source: 1, Target: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.CountNodes())
	require.Equal(t, 2, g.CountEdges())
	require.True(t, g.NodeDirected(0).OutNeighbors().Contains(1))
	require.False(t, g.NodeDirected(1).OutNeighbors().Contains(0))
}
