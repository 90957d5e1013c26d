package algorithms_test

import (
	"testing"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

// mustGraph builds a SimpleUndirectedGraph from bare (u, v) pairs. The
// fixtures below (graphs 0-9) are the literal test graphs from the
// retrieved dachshund-style graph catalog's test suite.
func mustGraph(t *testing.T, pairs [][2]int64) *core.SimpleUndirectedGraph {
	t.Helper()
	var b builder.SimpleUndirectedBuilder
	g, err := b.FromPairs(pairs)
	if err != nil {
		t.Fatalf("building fixture graph: %v", err)
	}
	return g
}

// graph1 is a bare triangle.
func graph1(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{{0, 1}, {1, 2}, {2, 0}})
}

// graph2 is a triangle with an extra node bridged via two edges.
func graph2(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 0}})
}

// graph3 is two disjoint triangles: a pair of 3-cycles, each node coreness 2.
func graph3(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
}

// graph4 is graph3 with one bridging edge added between the two triangles.
func graph4(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{
		{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3},
	})
}

// graph5 is a triangle with a pendant edge off one vertex.
func graph5(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
}

// graph7 is the coreness edge case: hubs 1 and 2 each carry four pendant
// leaves and link, via 11 and 12 respectively, to the cluster
// {11,12,13,14}, a 4-clique missing the edge 11-12.
func graph7(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{
		{1, 3}, {2, 4}, {1, 5}, {2, 6}, {1, 7}, {2, 8}, {1, 9}, {2, 10},
		{1, 11}, {2, 12}, {11, 13}, {11, 14}, {12, 13}, {12, 14}, {13, 14},
	})
}

// graph9 is a triangle {0,1,2} plus a disjoint single edge {3,4}.
func graph9(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{{0, 1}, {1, 2}, {0, 2}, {3, 4}})
}

// graph8 is a K6 clique {0..5} with two attachment clusters: a sparser
// 5-node near-clique {8,10,11,12,13}, bridge nodes 6 and 7 linking the two,
// and pendants 9 (off node 0) and 14 (off node 12).
func graph8(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5}, {3, 4}, {3, 5}, {4, 5},
		{6, 1}, {6, 2}, {6, 3}, {6, 4}, {7, 4}, {7, 6}, {8, 5}, {8, 7}, {9, 0},
		{10, 6}, {10, 8}, {10, 11}, {10, 12}, {10, 13}, {11, 4}, {11, 12},
		{11, 13}, {12, 8}, {12, 14}, {12, 13}, {13, 8},
	})
}

// graph0 is a 20-node sparse graph whose 3-truss peels down to two
// surviving triangles: {0,1,9} and {8,10,16}.
func graph0(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{
		{0, 1}, {0, 10}, {0, 14}, {0, 9}, {1, 9}, {1, 2}, {1, 3}, {1, 18},
		{2, 8}, {3, 6}, {4, 6}, {4, 7}, {5, 12}, {6, 8}, {7, 8}, {7, 19},
		{8, 16}, {8, 9}, {8, 10}, {8, 13}, {9, 19}, {9, 15}, {10, 18},
		{10, 16}, {10, 17}, {12, 19}, {14, 19}, {15, 17},
	})
}

// graph6 is a 25-node denser graph whose 4-truss peels down to two
// surviving 4-cliques: {3,8,9,18} and {7,11,15,21}.
func graph6(t *testing.T) *core.SimpleUndirectedGraph {
	return mustGraph(t, [][2]int64{
		{0, 19}, {0, 1}, {0, 18}, {0, 11}, {0, 9}, {1, 19}, {1, 5}, {1, 7},
		{1, 8}, {1, 12}, {2, 23}, {3, 18}, {3, 19}, {3, 20}, {3, 5}, {3, 8},
		{3, 9}, {4, 16}, {4, 17}, {4, 19}, {4, 20}, {4, 22}, {4, 23}, {4, 13},
		{5, 11}, {5, 14}, {5, 23}, {6, 16}, {6, 15}, {7, 21}, {7, 17}, {7, 9},
		{7, 11}, {7, 15}, {8, 15}, {8, 18}, {8, 9}, {9, 12}, {9, 13}, {9, 15},
		{9, 16}, {9, 17}, {9, 18}, {9, 20}, {9, 23}, {10, 17}, {10, 12},
		{10, 20}, {11, 16}, {11, 19}, {11, 21}, {11, 15}, {12, 22}, {12, 17},
		{12, 13}, {13, 18}, {13, 24}, {13, 15}, {14, 21}, {14, 15}, {15, 24},
		{15, 19}, {15, 21}, {16, 19}, {16, 23}, {16, 24}, {17, 24}, {18, 21},
		{18, 23}, {19, 20}, {20, 22}, {20, 24},
	})
}
