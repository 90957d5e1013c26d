// Package transform is the streaming pipeline (spec.md §4.E): it parses
// tab-separated edge rows grouped by graph id, builds a graph per group with
// the builder package, runs the algorithm catalog over each graph, and
// writes one JSON stats line per graph. SerialTransformer processes graphs
// one at a time; ParallelTransformer fans them out across a fixed worker
// pool fed by a bounded channel, matching spec.md §5's concurrency model.
package transform
