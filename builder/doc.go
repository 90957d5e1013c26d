// Package builder constructs immutable core graphs from edge lists.
//
// Each builder consumes a slice of EdgeTuple and produces a graph satisfying
// the invariants in spec.md §3: every endpoint appears at most once in the
// node mapping, undirected builders append both half-edges, input edge
// multiplicities are preserved (no silent deduplication), and malformed
// input is rejected with a *core.Error of kind ErrKindBuild.
package builder
