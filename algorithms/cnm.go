package algorithms

import "github.com/katalvlaran/graphkit/core"

// CNMCommunities runs the Clauset-Newman-Moore greedy modularity-maximizing
// agglomeration (spec.md §4.D.5): start every node in its own community and
// repeatedly merge the pair of communities whose merger yields the largest
// modularity gain dQ = 2*(e_ij - a_i*a_j), where e_ij is the fraction of the
// graph's edge weight running between the two communities and a_i is the
// fraction of total degree owned by community i. Each merge's dQ is appended
// to modularityChanges in merge order. Ties between equally-good candidate
// pairs, and ties over which id a merge keeps, resolve toward the lower
// community id. assignments reflects the partition at the point in the merge
// sequence where cumulative modularity gain is maximized.
func CNMCommunities(g core.UndirectedGraph) (assignments map[core.NodeID]int, modularityChanges []float64) {
	ids := g.IDs()
	n := len(ids)
	assignments = make(map[core.NodeID]int, n)
	if n == 0 {
		return assignments, nil
	}

	idx := make(map[core.NodeID]int, n)
	for i, id := range ids {
		idx[id] = i
	}
	if n == 1 {
		assignments[ids[0]] = 0
		return assignments, nil
	}

	a, e, totalWeight := cnmInit(ids, idx, g)
	if totalWeight == 0 {
		for _, id := range ids {
			assignments[id] = idx[id]
		}
		return assignments, nil
	}

	root := make([]int, n)
	for i := range root {
		root[i] = i
	}
	alive := make(map[int]bool, n)
	for i := range ids {
		alive[i] = true
	}

	type merge struct{ keep, drop int }
	var merges []merge

	bestPrefix, cumulative := 0.0, 0.0
	bestStep := -1

	for len(alive) > 1 {
		keep, drop, dq, found := cnmBestPair(alive, e, a)
		if !found {
			break
		}

		modularityChanges = append(modularityChanges, dq)
		cumulative += dq
		if cumulative > bestPrefix {
			bestPrefix = cumulative
			bestStep = len(merges)
		}
		merges = append(merges, merge{keep, drop})

		cnmMerge(alive, e, a, keep, drop)
		for i := range root {
			if root[i] == drop {
				root[i] = keep
			}
		}
	}

	// Replay merges up to and including bestStep to recover the best-cut
	// partition: communities merged after that point stay split.
	cut := make([]int, n)
	for i := range cut {
		cut[i] = i
	}
	for step, m := range merges {
		if step > bestStep {
			break
		}
		for i := range cut {
			if cut[i] == m.drop {
				cut[i] = m.keep
			}
		}
	}
	for _, id := range ids {
		assignments[id] = cut[idx[id]]
	}
	return assignments, modularityChanges
}

// cnmInit builds the initial singleton-per-node modularity bookkeeping: a[i]
// is community i's share of total degree weight, e[i][j] its share of edge
// weight running to community j, both normalized by total edge weight.
func cnmInit(ids []core.NodeID, idx map[core.NodeID]int, g core.UndirectedGraph) (a []float64, e []map[int]float64, totalWeight float64) {
	n := len(ids)
	e = make([]map[int]float64, n)
	for i := range e {
		e[i] = make(map[int]float64)
	}
	degWeight := make([]float64, n)
	for _, id := range ids {
		i := idx[id]
		for _, edge := range g.Node(id).Edges() {
			j, ok := idx[edge.Target]
			if !ok {
				continue
			}
			w := edge.Weight
			if w == 0 {
				w = 1
			}
			degWeight[i] += w
			if i != j {
				e[i][j] += w
			}
			totalWeight += w
		}
	}
	a = make([]float64, n)
	if totalWeight == 0 {
		return a, e, totalWeight
	}
	for i := range a {
		a[i] = degWeight[i] / totalWeight
		for j, w := range e[i] {
			e[i][j] = w / totalWeight
		}
	}
	return a, e, totalWeight
}

// cnmBestPair scans every pair of adjacent live communities and returns the
// (keep, drop) pair maximizing dQ, keep always the lower id.
func cnmBestPair(alive map[int]bool, e []map[int]float64, a []float64) (keep, drop int, dq float64, found bool) {
	bestI, bestJ := -1, -1
	bestDQ := 0.0
	for i := range alive {
		for j, eij := range e[i] {
			if j <= i || !alive[j] {
				continue
			}
			candidate := 2 * (eij - a[i]*a[j])
			if !found || candidate > bestDQ || (candidate == bestDQ && (i < bestI || (i == bestI && j < bestJ))) {
				bestDQ, bestI, bestJ, found = candidate, i, j, true
			}
		}
	}
	if !found {
		return 0, 0, 0, false
	}
	keep, drop = bestI, bestJ
	if drop < keep {
		keep, drop = drop, keep
	}
	return keep, drop, bestDQ, true
}

// cnmMerge folds community drop into keep in place: e-rows combine, a
// combines, and drop is removed from the live set.
func cnmMerge(alive map[int]bool, e []map[int]float64, a []float64, keep, drop int) {
	for k := range alive {
		if k == keep || k == drop {
			continue
		}
		merged := e[keep][k] + e[drop][k]
		if merged != 0 {
			e[keep][k] = merged
			e[k][keep] = merged
		} else {
			delete(e[keep], k)
			delete(e[k], keep)
		}
		delete(e[k], drop)
	}
	delete(e[keep], drop)
	delete(e[drop], keep)
	a[keep] += a[drop]
	delete(alive, drop)
}
