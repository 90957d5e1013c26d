package algorithms

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// edgeKey canonicalizes an undirected edge (u,v) as an unordered pair, used
// by ConnectedComponentsIgnoring to test membership in an ignored-edge set.
type edgeKey struct{ a, b core.NodeID }

func newEdgeKey(u, v core.NodeID) edgeKey {
	if u <= v {
		return edgeKey{u, v}
	}
	return edgeKey{v, u}
}

// IgnoredEdges is a set of undirected edges k-truss peeling marks as
// removed without actually mutating the graph, per spec.md §4.D.1.
type IgnoredEdges map[edgeKey]struct{}

// NewIgnoredEdges builds an IgnoredEdges set from (u,v) pairs.
func NewIgnoredEdges(pairs ...[2]core.NodeID) IgnoredEdges {
	s := make(IgnoredEdges, len(pairs))
	for _, p := range pairs {
		s[newEdgeKey(p[0], p[1])] = struct{}{}
	}
	return s
}

// Add marks (u,v) as ignored.
func (s IgnoredEdges) Add(u, v core.NodeID) { s[newEdgeKey(u, v)] = struct{}{} }

// Contains reports whether (u,v) is ignored.
func (s IgnoredEdges) Contains(u, v core.NodeID) bool {
	_, ok := s[newEdgeKey(u, v)]
	return ok
}

// ConnectedComponents partitions g's nodes into connected components via
// iterative DFS from each unvisited node, using an explicit stack (spec.md
// §4.D.1). Components are returned in ascending order of their smallest
// member id, and each component's ids are ascending.
func ConnectedComponents(g core.UndirectedGraph) [][]core.NodeID {
	return ConnectedComponentsIgnoring(g, nil)
}

// ConnectedComponentsIgnoring is the k-truss-peeling variant: edges present
// in ignored are skipped during traversal.
func ConnectedComponentsIgnoring(g core.UndirectedGraph, ignored IgnoredEdges) [][]core.NodeID {
	visited := make(core.NodeSet, g.CountNodes())
	var components [][]core.NodeID

	for _, root := range g.IDs() {
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
				if ignored != nil && ignored.Contains(id, e.Target) {
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

// IsConnected reports whether g is a single connected component. It returns
// an AlgorithmPrecondition error on an empty graph, per spec.md §8's
// boundary behaviors.
func IsConnected(g core.UndirectedGraph) (bool, error) {
	if g.CountNodes() == 0 {
		return false, core.NewPreconditionError("graph is empty")
	}
	comps := ConnectedComponents(g)
	return len(comps) == 1, nil
}

// StronglyConnectedComponents computes the strongly connected components of
// a directed graph by Tarjan's algorithm (spec.md §4.D.1). Components are
// returned in the order their root was popped off Tarjan's stack; within a
// component, ids are ascending.
func StronglyConnectedComponents(g core.DirectedGraph) [][]core.NodeID {
	type frame struct {
		id      core.NodeID
		edgeIdx int
	}

	index := make(map[core.NodeID]int)
	lowlink := make(map[core.NodeID]int)
	onStack := make(core.NodeSet)
	var tarjanStack []core.NodeID
	var components [][]core.NodeID
	next := 0

	for _, root := range g.IDs() {
		if _, ok := index[root]; ok {
			continue
		}
		// Iterative Tarjan using an explicit call stack of frames, to avoid
		// recursion depth limits on large graphs.
		var work []frame
		work = append(work, frame{id: root})

		for len(work) > 0 {
			top := &work[len(work)-1]
			if _, ok := index[top.id]; !ok {
				index[top.id] = next
				lowlink[top.id] = next
				next++
				tarjanStack = append(tarjanStack, top.id)
				onStack.Add(top.id)
			}

			edges := g.NodeDirected(top.id).OutEdges()
			descended := false
			for top.edgeIdx < len(edges) {
				w := edges[top.edgeIdx].Target
				top.edgeIdx++
				if _, ok := index[w]; !ok {
					work = append(work, frame{id: w})
					descended = true
					break
				} else if onStack.Contains(w) {
					if lowlink[w] < lowlink[top.id] {
						lowlink[top.id] = lowlink[w]
					}
				}
			}
			if descended {
				continue
			}

			// top is finished: pop it, propagate lowlink to its caller.
			id := top.id
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[id] < lowlink[parent.id] {
					lowlink[parent.id] = lowlink[id]
				}
			}
			if lowlink[id] == index[id] {
				var comp core.NodeSet = make(core.NodeSet)
				for {
					n := tarjanStack[len(tarjanStack)-1]
					tarjanStack = tarjanStack[:len(tarjanStack)-1]
					delete(onStack, n)
					comp.Add(n)
					if n == id {
						break
					}
				}
				components = append(components, comp.SortedIDs())
			}
		}
	}
	return components
}
