package algorithms

import "github.com/katalvlaran/graphkit/core"

// IsAcyclic reports whether a directed graph has no cycles, by repeatedly
// peeling off "leaves" — nodes whose only out-neighbors are already-peeled
// leaves — until every node has been peeled or a pass peels nothing, in
// which case a cycle remains among the unpeeled nodes (spec.md §4.D.11).
func IsAcyclic(g core.DirectedGraph) bool {
	leaves := make(core.NodeSet)
	total := g.CountNodes()

	for len(leaves) < total {
		found := false
		for _, id := range g.IDs() {
			if leaves.Contains(id) {
				continue
			}
			if g.NodeDirected(id).HasNoOutNeighborsExcept(leaves) {
				leaves.Add(id)
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}
