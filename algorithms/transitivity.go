package algorithms

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// TriangleCount returns the number of triangles id participates in
// (spec.md §4.D.8): for each distinct neighbor, count how many of id's
// other distinct neighbors it also ties to, summed and halved since every
// triangle is counted from both of its non-id vertices.
func TriangleCount(g core.UndirectedGraph, id core.NodeID) int {
	neighbors := g.Node(id).Neighbors()
	count := 0
	for nbrID := range neighbors {
		count += g.Node(nbrID).CountTiesWith(neighbors)
	}
	return count / 2
}

// TriplesCount returns the number of distinct neighbor pairs of id (spec.md
// §4.D.8): C(degree, 2).
func TriplesCount(g core.UndirectedGraph, id core.NodeID) int {
	d := g.Node(id).Degree()
	return d * (d - 1) / 2
}

// Transitivity returns the graph-wide transitivity ratio (spec.md §4.D.8):
// sum of TriangleCount over every node, divided by sum of TriplesCount.
// Every real triangle is counted once at each of its three member nodes, so
// this ratio already equals 3*(distinct triangles)/(distinct triples)
// without an explicit factor of 3.
func Transitivity(g core.UndirectedGraph) float64 {
	var triangles, triples int
	for _, id := range g.IDs() {
		triangles += TriangleCount(g, id)
		triples += TriplesCount(g, id)
	}
	return float64(triangles) / float64(triples)
}

// ApproxTransitivity estimates transitivity by sampling a node weighted by
// its triples count, drawing two of its neighbors at random, and checking
// whether they are tied (spec.md §4.D.8's sampling variant). Weighted
// sampling is done via cumulative-sum plus binary search over rng.Float64.
func ApproxTransitivity(g core.UndirectedGraph, samples int, rng *rand.Rand) float64 {
	var eligible []core.NodeID
	var weights []float64
	var cumulative []float64
	total := 0.0
	for _, id := range g.IDs() {
		if g.Node(id).Degree() < 2 {
			continue
		}
		w := float64(TriplesCount(g, id))
		eligible = append(eligible, id)
		total += w
		cumulative = append(cumulative, total)
		weights = append(weights, w)
	}
	if len(eligible) == 0 || total == 0 {
		return 0
	}

	successes := 0
	for i := 0; i < samples; i++ {
		target := rng.Float64() * total
		j := sort.SearchFloat64s(cumulative, target)
		if j >= len(eligible) {
			j = len(eligible) - 1
		}
		v := eligible[j]
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
