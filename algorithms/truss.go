package algorithms

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// KTrusses computes the k-truss decomposition: a k-truss is a maximal
// edge-induced subgraph in which every edge participates in at least (k-2)
// triangles (spec.md §4.D.3). Implementation: iteratively find edges whose
// triangle count (restricted to not-yet-ignored edges) falls below (k-2)
// and mark them ignored; repeat until no edge is newly ignored, then compute
// connected components over the nodes that keep a surviving edge, skipping
// ignored edges.
//
// Returns the surviving components (as node id slices) and, in parallel,
// each component's node set as an ordered id slice (the Go stand-in for the
// Rust source's Vec<BTreeSet<NodeId>>).
func KTrusses(g core.UndirectedGraph, k int) (trusses [][]core.NodeID, trussNodes [][]core.NodeID) {
	ignored := make(IgnoredEdges)
	threshold := k - 2

	for {
		newlyIgnored := edgeTriangleDeficient(g, ignored, threshold)
		if len(newlyIgnored) == 0 {
			break
		}
		for _, p := range newlyIgnored {
			ignored.Add(p[0], p[1])
		}
	}

	// Nodes with at least one surviving edge participate in the truss;
	// fully-peeled isolated nodes are dropped.
	alive := make(core.NodeSet)
	for _, id := range g.IDs() {
		for _, e := range g.Node(id).Edges() {
			if !ignored.Contains(id, e.Target) {
				alive.Add(id)
				break
			}
		}
	}

	comps := connectedComponentsOnSubsetIgnoring(g, alive, ignored)
	for _, comp := range comps {
		trusses = append(trusses, comp)
		trussNodes = append(trussNodes, comp)
	}
	return trusses, trussNodes
}

// edgeTriangleDeficient scans every non-ignored edge and returns the (u,v)
// pairs whose triangle count (counting only non-ignored edges) is below
// threshold. Each logical edge is reported once (u < v).
func edgeTriangleDeficient(g core.UndirectedGraph, ignored IgnoredEdges, threshold int) [][2]core.NodeID {
	var deficient [][2]core.NodeID
	for _, u := range g.IDs() {
		uNbrs := liveNeighbors(g, u, ignored)
		for _, e := range g.Node(u).Edges() {
			v := e.Target
			if u >= v || ignored.Contains(u, v) {
				continue
			}
			vNbrs := liveNeighbors(g, v, ignored)
			common := 0
			for nbr := range uNbrs {
				if vNbrs.Contains(nbr) {
					common++
				}
			}
			if common < threshold {
				deficient = append(deficient, [2]core.NodeID{u, v})
			}
		}
	}
	return deficient
}

// liveNeighbors returns u's distinct neighbors reachable over non-ignored
// edges.
func liveNeighbors(g core.UndirectedGraph, u core.NodeID, ignored IgnoredEdges) core.NodeSet {
	s := make(core.NodeSet)
	for _, e := range g.Node(u).Edges() {
		if !ignored.Contains(u, e.Target) {
			s.Add(e.Target)
		}
	}
	return s
}

// connectedComponentsOnSubsetIgnoring restricts traversal to nodes in keep
// and skips ignored edges.
func connectedComponentsOnSubsetIgnoring(g core.UndirectedGraph, keep core.NodeSet, ignored IgnoredEdges) [][]core.NodeID {
	visited := make(core.NodeSet, len(keep))
	var components [][]core.NodeID

	for _, root := range keep.SortedIDs() {
		if visited.Contains(root) {
			continue
		}
		comp := make(core.NodeSet)
		stack := []core.NodeID{root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited.Contains(id) {
				continue
			}
			visited.Add(id)
			comp.Add(id)
			for _, e := range g.Node(id).Edges() {
				if !keep.Contains(e.Target) || ignored.Contains(id, e.Target) {
					continue
				}
				if !visited.Contains(e.Target) {
					stack = append(stack, e.Target)
				}
			}
		}
		components = append(components, comp.SortedIDs())
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}
