package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// errUnknownType wraps a typed-edge validation failure: the builder saw a
// source or target type that wasn't previously established as the core or
// non-core side of the bipartite graph.
func errUnknownType(id NodeID, typ, coreType, nonCoreType string) error {
	return core.NewBuildError(
		fmt.Sprintf("node %s has type %q, expected %q or %q", id, typ, coreType, nonCoreType),
		nil,
	)
}

// errTypeConflict reports a node observed with two different type tags
// across the edge list, which would break the bipartite partition.
func errTypeConflict(id NodeID, want, got string) error {
	return core.NewBuildError(
		fmt.Sprintf("node %s previously typed %q, now seen as %q", id, want, got),
		nil,
	)
}

// errNegativeWeight reports a negative weight on a WeightedUndirectedGraph,
// which spec.md §4.B disallows ("edges carry a non-negative numeric weight").
func errNegativeWeight(u, v NodeID, w float64) error {
	return core.NewBuildError(
		fmt.Sprintf("edge (%s,%s) has negative weight %v", u, v, w),
		nil,
	)
}
