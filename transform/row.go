package transform

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

// Row is one parsed input line: graph_id, source_id, target_id, and the
// optional trailing weight/type fields (spec.md §6's Input format).
type Row struct {
	GraphID    int64
	Source     core.NodeID
	Target     core.NodeID
	Weight     float64
	SourceType string
	TargetType string
}

// ParseLine parses one tab-separated input line into a Row. Lines need at
// least three fields (graph_id, source_id, target_id); a fourth field is
// the edge weight, a fifth and sixth are the source/target type labels.
// Malformed lines produce a ParseError.
func ParseLine(line string) (Row, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return Row{}, core.NewParseError("expected at least 3 tab-separated fields, got "+strconv.Itoa(len(fields)), nil)
	}

	graphID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Row{}, core.NewParseError("invalid graph_id "+strconv.Quote(fields[0]), err)
	}
	source, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Row{}, core.NewParseError("invalid source_id "+strconv.Quote(fields[1]), err)
	}
	target, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Row{}, core.NewParseError("invalid target_id "+strconv.Quote(fields[2]), err)
	}

	row := Row{GraphID: graphID, Source: core.NodeID(source), Target: core.NodeID(target)}
	if len(fields) > 3 && fields[3] != "" {
		w, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return Row{}, core.NewParseError("invalid weight "+strconv.Quote(fields[3]), err)
		}
		row.Weight = w
	}
	if len(fields) > 4 {
		row.SourceType = fields[4]
	}
	if len(fields) > 5 {
		row.TargetType = fields[5]
	}
	return row, nil
}

// GraphRows is every parsed Row belonging to one graph id, in input order.
type GraphRows struct {
	GraphID int64
	Rows    []Row
}

// GroupRows reads lines from r, skipping blank lines, and batches
// consecutive rows sharing a graph id into a GraphRows (spec.md §4.E's
// "rows are already grouped" assumption). It returns once r is exhausted;
// any parse error (when failOnParseError is true) aborts immediately,
// otherwise the offending line is skipped.
func GroupRows(r io.Reader, failOnParseError bool) ([]GraphRows, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var groups []GraphRows
	var current *GraphRows

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row, err := ParseLine(line)
		if err != nil {
			if failOnParseError {
				return nil, err
			}
			continue
		}
		if current == nil || current.GraphID != row.GraphID {
			groups = append(groups, GraphRows{GraphID: row.GraphID})
			current = &groups[len(groups)-1]
		}
		current.Rows = append(current.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, core.NewIOError("reading input", err)
	}
	return groups, nil
}

// BuildUndirected constructs an undirected graph from a group of rows,
// dispatching on cfg's Typed/Weighted flags (spec.md §4.E).
func BuildUndirected(rows []Row, cfg Config) (core.UndirectedGraph, error) {
	tuples := make([]builder.EdgeTuple, len(rows))
	for i, r := range rows {
		tuples[i] = builder.EdgeTuple{
			Source: r.Source, Target: r.Target, Weight: r.Weight,
			SourceType: r.SourceType, TargetType: r.TargetType,
		}
	}

	switch {
	case cfg.Typed:
		b := builder.TypedBuilder{CoreType: cfg.CoreType, NonCoreType: cfg.NonCoreType}
		return b.FromTuples(tuples)
	case cfg.Weighted:
		var b builder.WeightedUndirectedBuilder
		return b.FromTuples(tuples)
	default:
		var b builder.SimpleUndirectedBuilder
		return b.FromTuples(tuples)
	}
}
