package algorithms

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/graphkit/core"
)

// AsInputRows round-trips a graph back to tab-separated "graphID\tu\tv"
// rows, emitting only the u<v half of each symmetric undirected pair so the
// output is idempotent under re-parsing (spec.md §4's `as_input_rows`
// port, exercised by the §8 round-trip tests).
func AsInputRows(g core.UndirectedGraph, graphID int64) string {
	var rows []string
	graphIDStr := strconv.FormatInt(graphID, 10)
	for _, id := range g.IDs() {
		for _, e := range g.Node(id).Edges() {
			if id < e.Target {
				rows = append(rows, graphIDStr+"\t"+
					strconv.FormatInt(int64(id), 10)+"\t"+
					strconv.FormatInt(int64(e.Target), 10))
			}
		}
	}
	return strings.Join(rows, "\n")
}
