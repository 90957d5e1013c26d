package transform

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/graphkit/algorithms"
	"github.com/katalvlaran/graphkit/core"
)

// StatsRecord is the closed JSON field set emitted once per input graph
// (spec.md §6). Measures that don't apply (too few nodes, above a
// configured size ceiling) are left as nil pointers/maps and therefore
// rendered as JSON null.
type StatsRecord struct {
	NumNodes              int                     `json:"num_nodes"`
	NumEdges              int                     `json:"num_edges"`
	ConnectedComponents   int                     `json:"connected_components"`
	AverageClustering     *float64                `json:"average_clustering"`
	Transitivity          *float64                `json:"transitivity"`
	ApproxTransitivity    *float64                `json:"approx_transitivity"`
	KCores                map[int]int             `json:"k_cores"`
	KTrusses              map[int]int             `json:"k_trusses"`
	KPeaks                map[int]int             `json:"k_peaks"`
	AlgebraicConnectivity *float64                `json:"algebraic_connectivity"`
	EigenvectorCentrality map[core.NodeID]float64 `json:"eigenvector_centrality"`
	Betweenness           map[core.NodeID]float64 `json:"betweenness"`
}

// ComputeStats runs the algorithm catalog over g and assembles a
// StatsRecord, dispatching on cfg's approximation thresholds and spectral
// ceiling (spec.md §5, SPEC_FULL.md §4.E).
func ComputeStats(g core.UndirectedGraph, cfg Config, rng *rand.Rand) (StatsRecord, error) {
	rec := StatsRecord{
		NumNodes: g.CountNodes(),
		NumEdges: g.CountEdges(),
	}

	components := algorithms.ConnectedComponents(g)
	rec.ConnectedComponents = len(components)

	if rec.NumNodes > 0 {
		if rec.NumNodes <= cfg.ClusteringExactCeiling {
			// Both are NaN (0/0) when no node has two neighbors; such
			// undefined values stay nil.
			if avg := algorithms.AverageClustering(g); !math.IsNaN(avg) {
				rec.AverageClustering = &avg
			}
			if trans := algorithms.Transitivity(g); !math.IsNaN(trans) {
				rec.Transitivity = &trans
			}
		} else {
			avg := algorithms.ApproxAverageClustering(g, cfg.samples(), rng)
			rec.AverageClustering = &avg
			trans := algorithms.ApproxTransitivity(g, cfg.samples(), rng)
			approxTrans := trans
			rec.ApproxTransitivity = &approxTrans
		}
	}

	coreness := algorithms.Coreness(g)
	rec.KCores = distribution(coreness)

	rec.KTrusses = trussSizeDistribution(g, coreness)

	peakNumbers, _ := algorithms.KPeakMountainAssignment(g)
	rec.KPeaks = distribution(peakNumbers)

	if rec.NumNodes >= 2 && rec.NumNodes <= cfg.SpectralNodeCeiling {
		ac, err := algorithms.AlgebraicConnectivity(g)
		if err != nil {
			return rec, err
		}
		rec.AlgebraicConnectivity = &ac
		rec.EigenvectorCentrality = algorithms.EigenvectorCentrality(g, cfg.epsilon(), cfg.maxIter())
	}

	if rec.NumNodes > 0 && rec.ConnectedComponents == 1 {
		bc, err := algorithms.BetweennessBrandes(g)
		if err != nil {
			return rec, err
		}
		rec.Betweenness = bc
	}

	return rec, nil
}

// distribution counts how many nodes fall at each integer value of a
// per-node measure, e.g. core numbers or peak numbers.
func distribution(values map[core.NodeID]int) map[int]int {
	dist := make(map[int]int)
	for _, v := range values {
		dist[v]++
	}
	return dist
}

// trussSizeDistribution computes, for every k from 3 up to the graph's
// degeneracy (max core number) + 2, the number of nodes surviving in the
// k-truss decomposition; k values with zero surviving nodes are omitted.
func trussSizeDistribution(g core.UndirectedGraph, coreness map[core.NodeID]int) map[int]int {
	maxCore := 0
	for _, c := range coreness {
		if c > maxCore {
			maxCore = c
		}
	}

	dist := make(map[int]int)
	for k := 3; k <= maxCore+2; k++ {
		_, trussNodes := algorithms.KTrusses(g, k)
		total := 0
		for _, comp := range trussNodes {
			total += len(comp)
		}
		if total == 0 {
			continue
		}
		dist[k] = total
	}
	return dist
}

func (cfg Config) samples() int {
	if cfg.ApproxSamples > 0 {
		return cfg.ApproxSamples
	}
	return 26000
}

func (cfg Config) epsilon() float64 {
	if cfg.EigenvectorEpsilon > 0 {
		return cfg.EigenvectorEpsilon
	}
	return 1e-9
}

func (cfg Config) maxIter() int {
	if cfg.EigenvectorMaxIter > 0 {
		return cfg.EigenvectorMaxIter
	}
	return 1000
}
