package builder

import "github.com/katalvlaran/graphkit/core"

// SimpleDirectedBuilder constructs a core.SimpleDirectedGraph from an edge
// list, without mirroring a reverse half-edge.
type SimpleDirectedBuilder struct{}

// FromTuples builds a directed graph.
func (SimpleDirectedBuilder) FromTuples(tuples []EdgeTuple) (*core.SimpleDirectedGraph, error) {
	a := core.NewDirectedAssembler()
	for _, t := range tuples {
		a.EnsureNode(t.Source)
		a.EnsureNode(t.Target)
		a.AddEdge(t.Source, t.Target, t.Weight)
	}
	return core.NewSimpleDirectedGraph(a), nil
}
