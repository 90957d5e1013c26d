// Package graphkit is an in-memory graph analytics library: build a graph
// once from an edge list, then run structural algorithms over it without
// mutating it again.
//
// Everything is organized under four subpackages:
//
//	core/       — NodeID, Node, and the UndirectedGraph/DirectedGraph
//	              capability interfaces every graph kind satisfies
//	builder/    — assemblers that turn edge tuples into a SimpleUndirectedGraph,
//	              WeightedUndirectedGraph, TypedGraph, or directed graph
//	algorithms/ — connected components, k-core/k-truss/k-peak decomposition,
//	              CNM community detection, betweenness, clustering,
//	              spectral measures, brokerage roles, acyclicity
//	transform/  — the streaming pipeline: parse tab-separated rows grouped
//	              by graph id, build, run the algorithm catalog, emit one
//	              JSON stats line per graph, serially or over a worker pool
//
// A graph is immutable once a builder returns it; algorithms only read.
package graphkit
