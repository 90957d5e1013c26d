package algorithms

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// Coreness computes each node's core number by repeated minimum-degree
// peeling: bucket nodes by current degree, repeatedly remove the
// minimum-degree node, decrementing its neighbors' degrees, and record the
// maximum of (node's remaining degree at removal time) seen so far as its
// core number (spec.md §4.D.2).
func Coreness(g core.UndirectedGraph) map[core.NodeID]int {
	degree := make(map[core.NodeID]int)
	for _, id := range g.IDs() {
		degree[id] = g.Node(id).Degree()
	}

	maxDeg := 0
	for _, d := range degree {
		if d > maxDeg {
			maxDeg = d
		}
	}

	// buckets[d] holds nodes whose current degree is d.
	buckets := make([][]core.NodeID, maxDeg+1)
	pos := make(map[core.NodeID]int) // index of id within its bucket slice
	for _, id := range g.IDs() {
		d := degree[id]
		pos[id] = len(buckets[d])
		buckets[d] = append(buckets[d], id)
	}

	removed := make(core.NodeSet, g.CountNodes())
	coreNum := make(map[core.NodeID]int, g.CountNodes())
	curMin := 0

	removeFromBucket := func(id core.NodeID, d int) {
		b := buckets[d]
		i := pos[id]
		last := len(b) - 1
		b[i] = b[last]
		pos[b[i]] = i
		buckets[d] = b[:last]
	}

	for processed := 0; processed < g.CountNodes(); processed++ {
		for curMin <= maxDeg && len(buckets[curMin]) == 0 {
			curMin++
		}
		id := buckets[curMin][len(buckets[curMin])-1]
		removeFromBucket(id, curMin)
		removed.Add(id)
		coreNum[id] = curMin

		for _, nbrID := range g.Node(id).Neighbors().SortedIDs() {
			if removed.Contains(nbrID) {
				continue
			}
			d := degree[nbrID]
			removeFromBucket(nbrID, d)
			if d-1 > curMin {
				degree[nbrID] = d - 1
				pos[nbrID] = len(buckets[d-1])
				buckets[d-1] = append(buckets[d-1], nbrID)
			} else {
				degree[nbrID] = curMin
				pos[nbrID] = len(buckets[curMin])
				buckets[curMin] = append(buckets[curMin], nbrID)
			}
		}
	}

	return coreNum
}

// KCores returns the connected components of the subgraph induced on nodes
// whose core number is >= k (spec.md §4.D.2).
func KCores(g core.UndirectedGraph, coreness map[core.NodeID]int, k int) [][]core.NodeID {
	keep := make(core.NodeSet)
	for id, c := range coreness {
		if c >= k {
			keep.Add(id)
		}
	}
	return connectedComponentsOnSubset(g, keep)
}

// connectedComponentsOnSubset runs the same iterative-DFS traversal as
// ConnectedComponents, restricted to nodes in keep; edges leaving keep are
// treated as absent.
func connectedComponentsOnSubset(g core.UndirectedGraph, keep core.NodeSet) [][]core.NodeID {
	visited := make(core.NodeSet, len(keep))
	var components [][]core.NodeID

	ids := keep.SortedIDs()
	for _, root := range ids {
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
				if keep.Contains(e.Target) && !visited.Contains(e.Target) {
					stack = append(stack, e.Target)
				}
			}
		}
		components = append(components, comp.SortedIDs())
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

// AveragedTiesRanking returns, for a mapping id→score, the fractional rank
// where tied scores share the mean of their positions: sort descending by
// score, break ties by averaging (spec.md §4.D.2). Ranks are in [1, n] and
// sum to n(n+1)/2.
func AveragedTiesRanking(values map[core.NodeID]float64) map[core.NodeID]float64 {
	ids := make([]core.NodeID, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if values[ids[i]] != values[ids[j]] {
			return values[ids[i]] > values[ids[j]]
		}
		return ids[i] < ids[j]
	})

	ranks := make(map[core.NodeID]float64, len(ids))
	for i := 0; i < len(ids); {
		j := i
		for j < len(ids) && values[ids[j]] == values[ids[i]] {
			j++
		}
		// positions i+1..j (1-indexed) share the mean rank.
		avg := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[ids[k]] = avg
		}
		i = j
	}
	return ranks
}
