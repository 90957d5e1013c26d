package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/algorithms"
)

func TestBetweennessNaiveOnTriangle(t *testing.T) {
	bc, err := algorithms.BetweennessNaive(graph1(t))
	require.NoError(t, err)
	for _, v := range bc {
		require.Equal(t, 0.0, v)
	}
}

func TestBetweennessNaiveOnPendantTriangle(t *testing.T) {
	bc, err := algorithms.BetweennessNaive(graph5(t))
	require.NoError(t, err)
	// Every shortest path between node 3 and {0,1} passes through node 2.
	require.Greater(t, bc[2], 0.0)
}

func TestBetweennessNaiveRejectsDisconnectedGraph(t *testing.T) {
	_, err := algorithms.BetweennessNaive(graph3(t))
	require.Error(t, err)
}

func TestBetweennessBrandesMatchesNaive(t *testing.T) {
	naive, err := algorithms.BetweennessNaive(graph5(t))
	require.NoError(t, err)
	brandes, err := algorithms.BetweennessBrandes(graph5(t))
	require.NoError(t, err)

	require.InDelta(t, naive[2], brandes[2], 1e-9)
	require.InDelta(t, naive[0], brandes[0], 1e-9)
}
