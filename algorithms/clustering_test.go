package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/algorithms"
)

func TestClusteringCoefficientOnTriangle(t *testing.T) {
	c, ok := algorithms.ClusteringCoefficient(graph1(t), 0)
	require.True(t, ok)
	require.Equal(t, 1.0, c)
}

func TestClusteringCoefficientUndefinedBelowTwoNeighbors(t *testing.T) {
	g := graph5(t)
	_, ok := algorithms.ClusteringCoefficient(g, 3)
	require.False(t, ok)
}

func TestAverageClusteringOnTriangle(t *testing.T) {
	require.Equal(t, 1.0, algorithms.AverageClustering(graph1(t)))
}

func TestApproxAverageClusteringIsReproducibleWithFixedSeed(t *testing.T) {
	g := graph2(t)
	a := algorithms.ApproxAverageClustering(g, 1000, rand.New(rand.NewSource(1)))
	b := algorithms.ApproxAverageClustering(g, 1000, rand.New(rand.NewSource(1)))
	require.Equal(t, a, b)
}
