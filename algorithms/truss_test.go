package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/algorithms"
	"github.com/katalvlaran/graphkit/core"
)

func TestKTrussesComponentCounts(t *testing.T) {
	_, nodes := algorithms.KTrusses(graph1(t), 3)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0], 3)

	_, nodes = algorithms.KTrusses(graph2(t), 3)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0], 4)

	_, nodes = algorithms.KTrusses(graph3(t), 3)
	require.Len(t, nodes, 2)

	_, nodes = algorithms.KTrusses(graph4(t), 3)
	require.Len(t, nodes, 2)

	_, nodes = algorithms.KTrusses(graph5(t), 3)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0], 3)
}

func TestKTrussesOnSparseGraphSurvivesTwoTriangles(t *testing.T) {
	_, nodes := algorithms.KTrusses(graph0(t), 3)
	require.Len(t, nodes, 2)

	want := []core.NodeSet{
		core.NewNodeSet(0, 1, 9),
		core.NewNodeSet(8, 10, 16),
	}
	requireContainsSet(t, nodes, want[0])
	requireContainsSet(t, nodes, want[1])
}

func TestKTrussesOnDenserGraphFourTruss(t *testing.T) {
	_, nodes := algorithms.KTrusses(graph6(t), 4)
	require.Len(t, nodes, 2)

	requireContainsSet(t, nodes, core.NewNodeSet(3, 8, 9, 18))
	requireContainsSet(t, nodes, core.NewNodeSet(7, 11, 15, 21))
}

func requireContainsSet(t *testing.T, comps [][]core.NodeID, want core.NodeSet) {
	t.Helper()
	for _, comp := range comps {
		if len(comp) != len(want) {
			continue
		}
		match := true
		for _, id := range comp {
			if !want.Contains(id) {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	t.Fatalf("no component matched %v", want.SortedIDs())
}
