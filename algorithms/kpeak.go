package algorithms

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// KPeakMountainAssignment computes each node's peak number and groups nodes
// into mountains (spec.md §4.D.4). Unlike Coreness's outside-in min-degree
// peeling, the peak number comes from repeatedly peeling the densest
// remaining shell: at each round, the core numbers of the currently
// remaining induced subgraph are recomputed from scratch, the nodes
// attaining that round's maximum core number are assigned it as their peak
// number and removed, and the next round recurses on what's left. This lets
// a component's peeling continue past whatever minimum an unrelated denser
// region reached, which is what separates a node's peak number from its
// plain coreness.
//
// Mountains are built round by round, highest peak first: each connected
// component of a round's same-peak batch (a batch can span several
// components, e.g. two disjoint triangles) counts its edges to every
// already-placed mountain and to still-unplaced nodes. It joins the mountain it is most attached to only when that
// mountain's edge count strictly beats the tally of edges leading to
// unplaced nodes; otherwise it starts a new mountain, since the batch isn't
// yet clearly annexed by anything and later rounds may claim it instead.
// Mountains are numbered in the order they're created, i.e. non-increasing
// peak number.
func KPeakMountainAssignment(g core.UndirectedGraph) (peakNumbers map[core.NodeID]int, mountains map[int]map[core.NodeID]struct{}) {
	peakNumbers = peelDensestShells(g)

	order := make([]core.NodeID, 0, len(peakNumbers))
	for id := range peakNumbers {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		if peakNumbers[order[i]] != peakNumbers[order[j]] {
			return peakNumbers[order[i]] > peakNumbers[order[j]]
		}
		return order[i] < order[j]
	})

	assigned := make(map[core.NodeID]int, len(order))
	mountainPeak := make(map[int]int)
	mountains = make(map[int]map[core.NodeID]struct{})
	next := 0

	for _, id := range order {
		if _, ok := assigned[id]; ok {
			continue
		}
		comp := samePeakComponent(g, id, peakNumbers)

		tally := make(map[int]int)
		outsideUnassigned := 0
		for member := range comp {
			for _, e := range g.Node(member).Edges() {
				if _, in := comp[e.Target]; in {
					continue
				}
				if m, ok := assigned[e.Target]; ok {
					tally[m]++
				} else {
					outsideUnassigned++
				}
			}
		}

		candidates := make([]int, 0, len(tally))
		for m := range tally {
			candidates = append(candidates, m)
		}
		sort.Ints(candidates)

		bestMountain, bestCount, bestPeak := -1, -1, -1
		for _, m := range candidates {
			count := tally[m]
			peak := mountainPeak[m]
			if count > bestCount || (count == bestCount && peak > bestPeak) {
				bestMountain, bestCount, bestPeak = m, count, peak
			}
		}

		mIdx := -1
		if bestMountain != -1 && bestCount > outsideUnassigned {
			mIdx = bestMountain
		}
		if mIdx == -1 {
			mIdx = next
			next++
			mountains[mIdx] = make(map[core.NodeID]struct{})
			mountainPeak[mIdx] = peakNumbers[id]
		}
		for member := range comp {
			assigned[member] = mIdx
			mountains[mIdx][member] = struct{}{}
		}
	}

	return peakNumbers, mountains
}

// peelDensestShells assigns every node a peak number by repeatedly computing
// the core decomposition of whatever nodes remain, crediting the round's
// maximum core number to the nodes that attain it, and recursing on the
// rest until nothing remains (spec.md §4.D.4).
func peelDensestShells(g core.UndirectedGraph) map[core.NodeID]int {
	remaining := make(core.NodeSet, g.CountNodes())
	for _, id := range g.IDs() {
		remaining.Add(id)
	}

	peak := make(map[core.NodeID]int, len(remaining))
	for len(remaining) > 0 {
		local := corenessOnSubset(g, remaining)

		kmax := 0
		for _, c := range local {
			if c > kmax {
				kmax = c
			}
		}

		var batch []core.NodeID
		for id, c := range local {
			if c == kmax {
				batch = append(batch, id)
			}
		}
		for _, id := range batch {
			peak[id] = kmax
			delete(remaining, id)
		}
	}
	return peak
}

// corenessOnSubset computes standard bucket-peeling core numbers restricted
// to the induced subgraph on nodes, ignoring edges to anything outside it.
func corenessOnSubset(g core.UndirectedGraph, nodes core.NodeSet) map[core.NodeID]int {
	degree := make(map[core.NodeID]int, len(nodes))
	maxDeg := 0
	for id := range nodes {
		d := 0
		for _, e := range g.Node(id).Edges() {
			if _, in := nodes[e.Target]; in {
				d++
			}
		}
		degree[id] = d
		if d > maxDeg {
			maxDeg = d
		}
	}

	buckets := make([][]core.NodeID, maxDeg+1)
	pos := make(map[core.NodeID]int, len(nodes))
	for id, d := range degree {
		pos[id] = len(buckets[d])
		buckets[d] = append(buckets[d], id)
	}

	removed := make(core.NodeSet, len(nodes))
	coreNum := make(map[core.NodeID]int, len(nodes))
	curMin := 0

	removeFromBucket := func(id core.NodeID, d int) {
		b := buckets[d]
		i := pos[id]
		last := len(b) - 1
		b[i] = b[last]
		pos[b[i]] = i
		buckets[d] = b[:last]
	}

	for processed := 0; processed < len(nodes); processed++ {
		for curMin <= maxDeg && len(buckets[curMin]) == 0 {
			curMin++
		}
		id := buckets[curMin][len(buckets[curMin])-1]
		removeFromBucket(id, curMin)
		removed.Add(id)
		coreNum[id] = curMin

		for _, e := range g.Node(id).Edges() {
			nbrID := e.Target
			if _, in := nodes[nbrID]; !in {
				continue
			}
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

// samePeakComponent returns the connected component of root within the
// subgraph induced by nodes sharing root's exact peak number. Each round of
// peelDensestShells assigns a strictly smaller peak number than the one
// before, so this is the connected piece of that round's batch containing
// root; a batch spanning several components yields one piece per call.
func samePeakComponent(g core.UndirectedGraph, root core.NodeID, peak map[core.NodeID]int) core.NodeSet {
	target := peak[root]
	comp := make(core.NodeSet)
	stack := []core.NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if comp.Contains(id) {
			continue
		}
		comp.Add(id)
		for _, e := range g.Node(id).Edges() {
			if peak[e.Target] == target && !comp.Contains(e.Target) {
				stack = append(stack, e.Target)
			}
		}
	}
	return comp
}
