package algorithms

import (
	"math/rand"

	"github.com/katalvlaran/graphkit/core"
)

// ClusteringCoefficient returns id's local clustering coefficient: the
// fraction of pairs of id's distinct neighbors that are themselves tied,
// out of all possible such pairs (spec.md §4.D.8). Returns (0, false) for
// nodes with fewer than two distinct neighbors, matching the source's
// Option::None (undefined, not zero).
func ClusteringCoefficient(g core.UndirectedGraph, id core.NodeID) (float64, bool) {
	node := g.Node(id)
	neighbors := node.Neighbors()
	numNeighbors := len(neighbors)
	if numNeighbors <= 1 {
		return 0, false
	}
	ties := 0
	for nbrID := range neighbors {
		ties += g.Node(nbrID).CountTiesWith(neighbors)
	}
	return float64(ties) / float64(numNeighbors*(numNeighbors-1)), true
}

// AverageClustering averages ClusteringCoefficient over every node for
// which it is defined (spec.md §4.D.8).
func AverageClustering(g core.UndirectedGraph) float64 {
	sum := 0.0
	n := 0
	for _, id := range g.IDs() {
		if c, ok := ClusteringCoefficient(g, id); ok {
			sum += c
			n++
		}
	}
	return sum / float64(n)
}

// ApproxAverageClustering estimates average clustering by repeatedly
// picking a random node with degree >= 2, drawing two of its neighbors at
// random, and checking whether they are tied (spec.md §4.D.8's sampling
// variant; ~26000 samples gives <1% chance of exceeding 1 percentage point
// of error per the Schank-Wagner approximation bound the source cites). rng
// must be supplied by the caller (spec.md §9 rejects a process-global RNG).
func ApproxAverageClustering(g core.UndirectedGraph, samples int, rng *rand.Rand) float64 {
	var eligible []core.NodeID
	for _, id := range g.IDs() {
		if g.Node(id).Degree() >= 2 {
			eligible = append(eligible, id)
		}
	}
	if len(eligible) == 0 {
		return 0
	}

	successes := 0
	for i := 0; i < samples; i++ {
		v := eligible[rng.Intn(len(eligible))]
		u, w, ok := twoRandomEdgeTargets(g, v, rng)
		if !ok {
			continue
		}
		if tied(g, u, w) {
			successes++
		}
	}
	return float64(successes) / float64(samples)
}

// twoRandomEdgeTargets draws two distinct edges of v (by position) and
// returns their targets.
func twoRandomEdgeTargets(g core.UndirectedGraph, v core.NodeID, rng *rand.Rand) (core.NodeID, core.NodeID, bool) {
	edges := g.Node(v).Edges()
	if len(edges) < 2 {
		return 0, 0, false
	}
	i := rng.Intn(len(edges))
	j := rng.Intn(len(edges) - 1)
	if j >= i {
		j++
	}
	return edges[i].Target, edges[j].Target, true
}

// tied reports whether there is an edge u->w.
func tied(g core.UndirectedGraph, u, w core.NodeID) bool {
	for _, e := range g.Node(u).Edges() {
		if e.Target == w {
			return true
		}
	}
	return false
}
