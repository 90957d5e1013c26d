package algorithms

import "github.com/katalvlaran/graphkit/core"

// BetweennessNaive computes node betweenness centrality by enumerating every
// shortest path between every pair of sources and a fixed destination,
// splitting each destination's weight evenly across its shortest paths and
// crediting every interior node (both endpoints skipped) with
// 0.5/|paths| (spec.md §4.D.7, §9's naive-betweenness convention). Returns
// an AlgorithmPrecondition error on an empty graph.
func BetweennessNaive(g core.UndirectedGraph) (map[core.NodeID]float64, error) {
	if g.CountNodes() == 0 {
		return nil, core.NewPreconditionError("graph is empty")
	}
	connected, err := IsConnected(g)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, core.NewPreconditionError("graph must be connected to compute betweenness")
	}
	return betweennessFromSources(g, g.IDs())
}

func betweennessFromSources(g core.UndirectedGraph, sources []core.NodeID) (map[core.NodeID]float64, error) {
	counts := make(map[core.NodeID]float64, g.CountNodes())
	for _, id := range g.IDs() {
		counts[id] = 0
	}

	for _, source := range sources {
		dist, parents := ShortestPaths(g, source, nil)
		paths := EnumerateShortestPaths(dist, parents, source)
		for _, ps := range paths {
			if len(ps) == 0 {
				continue
			}
			weight := 0.5 / float64(len(ps))
			for _, path := range ps {
				if len(path) <= 2 {
					continue
				}
				for _, id := range path[1 : len(path)-1] {
					counts[id] += weight
				}
			}
		}
	}
	return counts, nil
}

// BetweennessBrandes computes node betweenness centrality via Brandes'
// accumulation algorithm (spec.md §4.D.7): a BFS per source feeding a
// dependency-accumulation pass over the BFS stack in reverse (nonincreasing
// distance) order. Requires the graph to be connected; returns an
// AlgorithmPrecondition error otherwise (including on an empty graph).
func BetweennessBrandes(g core.UndirectedGraph) (map[core.NodeID]float64, error) {
	if g.CountNodes() == 0 {
		return nil, core.NewPreconditionError("graph is empty")
	}
	connected, err := IsConnected(g)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, core.NewPreconditionError("graph must be connected to compute betweenness")
	}

	betweenness := make(map[core.NodeID]float64, g.CountNodes())
	for _, id := range g.IDs() {
		betweenness[id] = 0
	}

	for _, source := range g.IDs() {
		stack, pathCounts, preds := ShortestPathsBFS(g, source)

		dependency := make(map[core.NodeID]float64, g.CountNodes())
		for _, id := range g.IDs() {
			dependency[id] = 0
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, pred := range preds[w] {
				dependency[pred] += (0.5 + dependency[w]) * (float64(pathCounts[pred]) / float64(pathCounts[w]))
			}
			if w != source {
				betweenness[w] += dependency[w]
			}
		}
	}
	return betweenness, nil
}
