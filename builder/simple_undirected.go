package builder

import "github.com/katalvlaran/graphkit/core"

// SimpleUndirectedBuilder constructs a core.SimpleUndirectedGraph from an
// edge list. Weight and type fields on EdgeTuple are ignored.
type SimpleUndirectedBuilder struct{}

// FromTuples builds a graph, appending both half-edges for each tuple and
// preserving input multiplicities (parallel edges are not deduplicated).
func (SimpleUndirectedBuilder) FromTuples(tuples []EdgeTuple) (*core.SimpleUndirectedGraph, error) {
	a := core.NewAssembler()
	for _, t := range tuples {
		a.EnsureNode(t.Source, "")
		a.EnsureNode(t.Target, "")
		a.AddHalfEdge(t.Source, core.Edge{Target: t.Target})
		a.AddHalfEdge(t.Target, core.Edge{Target: t.Source})
	}
	return core.NewSimpleUndirectedGraph(a), nil
}

// FromPairs is a convenience wrapper around FromTuples for callers that
// only have bare (u, v) pairs, such as the literal test fixtures mirrored
// from the original dachshund-style graph catalog.
func (b SimpleUndirectedBuilder) FromPairs(pairs [][2]int64) (*core.SimpleUndirectedGraph, error) {
	tuples := make([]EdgeTuple, len(pairs))
	for i, p := range pairs {
		tuples[i] = EdgeTuple{Source: core.NodeID(p[0]), Target: core.NodeID(p[1])}
	}
	return b.FromTuples(tuples)
}
