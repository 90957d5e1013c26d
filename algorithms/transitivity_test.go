package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/algorithms"
)

func TestTriangleAndTriplesCountOnTriangle(t *testing.T) {
	g := graph1(t)
	require.Equal(t, 1, algorithms.TriangleCount(g, 0))
	require.Equal(t, 1, algorithms.TriplesCount(g, 0))
}

func TestTransitivityOnTriangle(t *testing.T) {
	require.Equal(t, 1.0, algorithms.Transitivity(graph1(t)))
}

func TestTransitivityOnPendantTriangleIsBetweenZeroAndOne(t *testing.T) {
	trans := algorithms.Transitivity(graph5(t))
	require.Greater(t, trans, 0.0)
	require.Less(t, trans, 1.0)
}

func TestApproxTransitivityIsReproducibleWithFixedSeed(t *testing.T) {
	g := graph2(t)
	a := algorithms.ApproxTransitivity(g, 1000, rand.New(rand.NewSource(7)))
	b := algorithms.ApproxTransitivity(g, 1000, rand.New(rand.NewSource(7)))
	require.Equal(t, a, b)
}
