package transform

// Config selects the graph kind to build from input rows and tunes the
// algorithm catalog's approximation/threshold knobs (spec.md §4.E, §5).
type Config struct {
	// Typed builds a TypedBuilder (bipartite core/non-core) graph instead of
	// a plain simple/weighted one. CoreType and NonCoreType name the two
	// sides; ignored unless Typed is set.
	Typed       bool
	CoreType    string
	NonCoreType string

	// Weighted builds a WeightedUndirectedGraph instead of a SimpleUndirectedGraph.
	// Ignored when Typed is set.
	Weighted bool

	// Parallel runs ParallelTransformer instead of SerialTransformer.
	Parallel bool
	// Workers is the ParallelTransformer worker pool size. Zero or negative
	// means runtime.NumCPU() (spec.md §5).
	Workers int

	// FailOnParseError aborts the whole run on the first malformed input
	// line rather than skipping it. Defaults to true at the CLI layer.
	FailOnParseError bool

	// ClusteringExactCeiling is the largest node count for which
	// AverageClustering/Transitivity are computed exactly; above it the
	// approximate sampled estimators are used instead (spec.md §5).
	ClusteringExactCeiling int
	// ApproxSamples is the sample count passed to ApproxAverageClustering
	// and ApproxTransitivity when the exact ceiling is exceeded.
	ApproxSamples int

	// SpectralNodeCeiling is the largest node count for which
	// AlgebraicConnectivity/EigenvectorCentrality are computed; graphs
	// larger than this are skipped and left out of the StatsRecord (dense
	// eigendecomposition is cubic in node count).
	SpectralNodeCeiling int

	// EigenvectorEpsilon and EigenvectorMaxIter bound the power iteration
	// used by EigenvectorCentrality.
	EigenvectorEpsilon float64
	EigenvectorMaxIter int
}

// DefaultConfig returns the knob values used by cmd/graphstat when the
// corresponding flags are left unset.
func DefaultConfig() Config {
	return Config{
		FailOnParseError:       true,
		ClusteringExactCeiling: 2000,
		ApproxSamples:          26000,
		SpectralNodeCeiling:    5000,
		EigenvectorEpsilon:     1e-9,
		EigenvectorMaxIter:     1000,
	}
}
