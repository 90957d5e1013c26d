package builder

import "github.com/katalvlaran/graphkit/core"

// EdgeTuple is the common input unit every builder in this package
// consumes: a (u, v[, weight][, u_type, v_type]) row per spec.md §4.C.
type EdgeTuple struct {
	Source NodeID
	Target NodeID

	// Weight is read by WeightedUndirectedBuilder and copied onto edges by
	// SimpleDirectedBuilder; the other builders ignore it.
	Weight float64

	// SourceType/TargetType are read only by TypedBuilder.
	SourceType string
	TargetType string
}

// NodeID is a local alias so callers can build EdgeTuple literals without
// importing core directly for the common case.
type NodeID = core.NodeID
