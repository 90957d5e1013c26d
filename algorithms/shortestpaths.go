package algorithms

import "github.com/katalvlaran/graphkit/core"

// ShortestPaths computes single-source shortest-path distances and the
// (possibly multi-valued) parent sets realizing them, by repeated
// minimum-distance extraction over an unweighted graph (spec.md §4.D.6).
// If within is non-nil, only those node ids are considered reachable
// targets (an optimization when the caller already knows source's
// connected component); pass nil to scan every node in g.
//
// dist[id] is nil until reached; parents[source] always contains source
// itself, matching the convention EnumerateShortestPaths relies on to
// start every path at source.
func ShortestPaths(g core.UndirectedGraph, source core.NodeID, within []core.NodeID) (dist map[core.NodeID]*int, parents map[core.NodeID]core.NodeSet) {
	targets := within
	if targets == nil {
		targets = g.IDs()
	}

	dist = make(map[core.NodeID]*int, len(targets))
	parents = make(map[core.NodeID]core.NodeSet, len(targets))
	remaining := make(core.NodeSet, len(targets))
	for _, id := range targets {
		dist[id] = nil
		parents[id] = make(core.NodeSet)
		remaining.Add(id)
	}
	zero := 0
	dist[source] = &zero

	for len(remaining) > 0 {
		var u core.NodeID
		var minDist int
		found := false
		for id := range remaining {
			d := dist[id]
			if d != nil && (!found || *d < minDist) {
				minDist, u, found = *d, id, true
			}
		}
		if !found {
			break
		}
		delete(remaining, u)

		for _, e := range g.Node(u).Edges() {
			v := e.Target
			if !remaining.Contains(v) {
				continue
			}
			alt := minDist + 1
			if dist[v] == nil || alt <= *dist[v] {
				d := alt
				dist[v] = &d
				parents[v].Add(u)
			}
		}
	}
	parents[source].Add(source)
	return dist, parents
}

// ShortestPathsBFS runs single-source BFS over an unweighted graph,
// returning nodes in nondecreasing distance order (the Brandes accumulation
// stack), each node's shortest-path count from source, and each node's
// immediate predecessors on a shortest path (spec.md §4.D.6/§4.D.7).
func ShortestPathsBFS(g core.UndirectedGraph, source core.NodeID) (stack []core.NodeID, pathCounts map[core.NodeID]int, preds map[core.NodeID][]core.NodeID) {
	ids := g.IDs()
	preds = make(map[core.NodeID][]core.NodeID, len(ids))
	pathCounts = make(map[core.NodeID]int, len(ids))
	dist := make(map[core.NodeID]int, len(ids))
	for _, id := range ids {
		preds[id] = nil
		if id == source {
			pathCounts[id], dist[id] = 1, 0
		} else {
			pathCounts[id], dist[id] = 0, -1
		}
	}

	queue := []core.NodeID{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)
		for _, e := range g.Node(v).Edges() {
			n := e.Target
			if dist[n] < 0 {
				queue = append(queue, n)
				dist[n] = dist[v] + 1
			}
			if dist[n] == dist[v]+1 {
				pathCounts[n] += pathCounts[v]
				preds[n] = append(preds[n], v)
			}
		}
	}
	return stack, pathCounts, preds
}

// EnumerateShortestPaths reconstructs every shortest path from each node to
// destination, given the dist/parents produced by ShortestPaths, by
// processing nodes in nondecreasing distance order and extending each
// parent's already-known paths by one hop (spec.md §4.D.7, the
// naive-betweenness enumeration step).
func EnumerateShortestPaths(dist map[core.NodeID]*int, parents map[core.NodeID]core.NodeSet, destination core.NodeID) map[core.NodeID][][]core.NodeID {
	nodesByDistance := make(map[int][]core.NodeID)
	for id, d := range dist {
		if id == destination || d == nil {
			continue
		}
		nodesByDistance[*d] = append(nodesByDistance[*d], id)
	}
	nodesByDistance[0] = []core.NodeID{destination}

	distances := make([]int, 0, len(nodesByDistance))
	for d := range nodesByDistance {
		distances = append(distances, d)
	}
	for i := 1; i < len(distances); i++ {
		for j := i; j > 0 && distances[j] < distances[j-1]; j-- {
			distances[j], distances[j-1] = distances[j-1], distances[j]
		}
	}

	paths := make(map[core.NodeID][][]core.NodeID)
	paths[destination] = [][]core.NodeID{{}}
	for _, d := range distances {
		for _, id := range nodesByDistance[d] {
			var newPaths [][]core.NodeID
			for parentID := range parents[id] {
				for _, parentPath := range paths[parentID] {
					np := make([]core.NodeID, len(parentPath), len(parentPath)+1)
					copy(np, parentPath)
					np = append(np, id)
					newPaths = append(newPaths, np)
				}
			}
			paths[id] = newPaths
		}
	}
	return paths
}
