package builder

import "github.com/katalvlaran/graphkit/core"

// WeightedUndirectedBuilder constructs a core.WeightedUndirectedGraph,
// rejecting negative weights per spec.md §4.B.
type WeightedUndirectedBuilder struct{}

// FromTuples builds a weighted graph. A tuple's Weight must be >= 0; a
// negative weight returns a *core.Error of kind ErrKindBuild.
func (WeightedUndirectedBuilder) FromTuples(tuples []EdgeTuple) (*core.WeightedUndirectedGraph, error) {
	a := core.NewAssembler()
	for _, t := range tuples {
		if t.Weight < 0 {
			return nil, errNegativeWeight(t.Source, t.Target, t.Weight)
		}
		a.EnsureNode(t.Source, "")
		a.EnsureNode(t.Target, "")
		a.AddHalfEdge(t.Source, core.Edge{Target: t.Target, Weight: t.Weight})
		a.AddHalfEdge(t.Target, core.Edge{Target: t.Source, Weight: t.Weight})
	}
	return core.NewWeightedUndirectedGraph(a), nil
}
