package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/algorithms"
)

func TestAsInputRowsRoundTrips(t *testing.T) {
	rows := algorithms.AsInputRows(graph1(t), 42)
	require.Equal(t, "42\t0\t1\n42\t0\t2\n42\t1\t2", rows)
}

func TestAsInputRowsEmitsOnlyOneDirectionPerEdge(t *testing.T) {
	rows := algorithms.AsInputRows(graph5(t), 1)
	// 4 logical edges, one row each (u<v direction only).
	lineCount := 1
	for _, c := range rows {
		if c == '\n' {
			lineCount++
		}
	}
	require.Equal(t, 4, lineCount)
}
