package builder

import "github.com/katalvlaran/graphkit/core"

// TypedBuilder constructs a bipartite core.TypedGraph. CoreType and
// NonCoreType name the two sides of the partition; every SourceType/
// TargetType observed on an EdgeTuple must match one of the two, or the
// builder rejects the edge list with a BuildError (spec.md §4.C.4).
type TypedBuilder struct {
	CoreType    string
	NonCoreType string
}

// FromTuples builds a typed graph. Each tuple's source is expected to carry
// CoreType and its target NonCoreType (or vice versa; the builder accepts
// either orientation and records the half-edges accordingly), mirroring a
// bipartite adjacency where core-type nodes connect only to non-core-type
// nodes.
func (b TypedBuilder) FromTuples(tuples []EdgeTuple) (*core.TypedGraph, error) {
	a := core.NewAssembler()
	var coreIDs, nonCoreIDs []core.NodeID
	seenCore := make(core.NodeSet)
	seenNonCore := make(core.NodeSet)

	registerSide := func(id core.NodeID, typ string) error {
		switch typ {
		case b.CoreType:
			a.EnsureNode(id, b.CoreType)
			if existing := a.Type(id); existing != b.CoreType {
				return errTypeConflict(id, existing, typ)
			}
			if !seenCore.Contains(id) {
				seenCore.Add(id)
				coreIDs = append(coreIDs, id)
			}
		case b.NonCoreType:
			a.EnsureNode(id, b.NonCoreType)
			if existing := a.Type(id); existing != b.NonCoreType {
				return errTypeConflict(id, existing, typ)
			}
			if !seenNonCore.Contains(id) {
				seenNonCore.Add(id)
				nonCoreIDs = append(nonCoreIDs, id)
			}
		default:
			return errUnknownType(id, typ, b.CoreType, b.NonCoreType)
		}
		return nil
	}

	for _, t := range tuples {
		if err := registerSide(t.Source, t.SourceType); err != nil {
			return nil, err
		}
		if err := registerSide(t.Target, t.TargetType); err != nil {
			return nil, err
		}
		a.AddHalfEdge(t.Source, core.Edge{Target: t.Target, TargetType: t.TargetType})
		a.AddHalfEdge(t.Target, core.Edge{Target: t.Source, TargetType: t.SourceType})
	}
	return core.NewTypedGraph(a, coreIDs, nonCoreIDs), nil
}
