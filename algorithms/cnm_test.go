package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/algorithms"
)

func TestCNMCommunitiesModularityChangesTriangle(t *testing.T) {
	_, changes := algorithms.CNMCommunities(graph1(t))
	require.InDeltaSlice(t, []float64{0.1111111111111111, 0.2222222222222222}, changes, 1e-9)
}

func TestCNMCommunitiesModularityChangesTriangleWithPendant(t *testing.T) {
	_, changes := algorithms.CNMCommunities(graph5(t))
	require.InDeltaSlice(t, []float64{0.15625, 0.125, 0}, changes, 1e-9)
}

func TestCNMCommunitiesAssignsEveryNode(t *testing.T) {
	g := graph9(t)
	assignments, _ := algorithms.CNMCommunities(g)
	require.Len(t, assignments, g.CountNodes())

	// The disjoint edge {3,4} never shares a triangle with {0,1,2}, so the
	// best cut should keep them in separate communities.
	require.NotEqual(t, assignments[0], assignments[3])
}
