package transform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/transform"
)

func TestParseLineBasic(t *testing.T) {
	row, err := transform.ParseLine("1\t0\t2")
	require.NoError(t, err)
	require.Equal(t, int64(1), row.GraphID)
	require.Equal(t, core.NodeID(0), row.Source)
	require.Equal(t, core.NodeID(2), row.Target)
}

func TestParseLineWithWeightAndTypes(t *testing.T) {
	row, err := transform.ParseLine("1\t0\t2\t3.5\tuser\tgroup")
	require.NoError(t, err)
	require.Equal(t, 3.5, row.Weight)
	require.Equal(t, "user", row.SourceType)
	require.Equal(t, "group", row.TargetType)
}

func TestParseLineRejectsTooFewFields(t *testing.T) {
	_, err := transform.ParseLine("1\t0")
	require.Error(t, err)
}

func TestParseLineRejectsNonIntegerID(t *testing.T) {
	_, err := transform.ParseLine("1\tabc\t2")
	require.Error(t, err)
}

func TestGroupRowsBatchesByGraphID(t *testing.T) {
	input := "0\t0\t1\n0\t1\t2\n1\t0\t1\n"
	groups, err := transform.GroupRows(strings.NewReader(input), true)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, int64(0), groups[0].GraphID)
	require.Len(t, groups[0].Rows, 2)
	require.Equal(t, int64(1), groups[1].GraphID)
	require.Len(t, groups[1].Rows, 1)
}

func TestGroupRowsSkipsBlankLines(t *testing.T) {
	input := "0\t0\t1\n\n0\t1\t2\n"
	groups, err := transform.GroupRows(strings.NewReader(input), true)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Rows, 2)
}

func TestGroupRowsFailFastAbortsOnParseError(t *testing.T) {
	input := "0\t0\t1\nbad\n0\t1\t2\n"
	_, err := transform.GroupRows(strings.NewReader(input), true)
	require.Error(t, err)
}

func TestGroupRowsSkipsParseErrorsWhenNotFailFast(t *testing.T) {
	input := "0\t0\t1\nbad\n0\t1\t2\n"
	groups, err := transform.GroupRows(strings.NewReader(input), false)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Rows, 2)
}

func TestBuildUndirectedSimple(t *testing.T) {
	rows := []transform.Row{{Source: 0, Target: 1}, {Source: 1, Target: 2}}
	g, err := transform.BuildUndirected(rows, transform.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 3, g.CountNodes())
	require.False(t, g.Weighted())
}

func TestBuildUndirectedWeighted(t *testing.T) {
	cfg := transform.DefaultConfig()
	cfg.Weighted = true
	rows := []transform.Row{{Source: 0, Target: 1, Weight: 2.0}}
	g, err := transform.BuildUndirected(rows, cfg)
	require.NoError(t, err)
	require.True(t, g.Weighted())
}

func TestBuildUndirectedTyped(t *testing.T) {
	cfg := transform.DefaultConfig()
	cfg.Typed = true
	cfg.CoreType = "user"
	cfg.NonCoreType = "group"
	rows := []transform.Row{{Source: 0, Target: 1, SourceType: "user", TargetType: "group"}}
	g, err := transform.BuildUndirected(rows, cfg)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0}, g.CoreIDs())
}
