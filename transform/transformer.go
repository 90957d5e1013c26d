package transform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"

	"github.com/katalvlaran/graphkit/core"
)

// Transformer runs the parse-build-analyze-emit pipeline over an input
// stream (spec.md §4.E).
type Transformer interface {
	Run(ctx context.Context, r io.Reader, w io.Writer, cfg Config) error
}

// SerialTransformer processes each graph group one at a time, in input
// order.
type SerialTransformer struct{}

// Run implements Transformer.
func (SerialTransformer) Run(ctx context.Context, r io.Reader, w io.Writer, cfg Config) error {
	groups, err := GroupRows(r, cfg.FailOnParseError)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(1))
	for _, grp := range groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := renderGroup(grp, cfg, rng)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return core.NewIOError("writing output", err)
		}
	}
	return nil
}

// ParallelTransformer fans graph groups out across a fixed worker pool fed
// by a bounded channel, grounded on the goroutine/WaitGroup/Mutex pattern
// used for concurrent finite-difference evaluation in gonum's diff/fd
// package: a pool of workers pulls jobs off a shared channel, and a single
// mutex guards the output writer since groups may finish out of input
// order (spec.md §5).
type ParallelTransformer struct{}

// Run implements Transformer.
func (ParallelTransformer) Run(ctx context.Context, r io.Reader, w io.Writer, cfg Config) error {
	groups, err := GroupRows(r, cfg.FailOnParseError)
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(groups) && len(groups) > 0 {
		workers = len(groups)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan GraphRows, len(groups))
	for _, grp := range groups {
		jobs <- grp
	}
	close(jobs)

	var (
		wg       sync.WaitGroup
		writeMu  sync.Mutex
		errOnce  sync.Once
		firstErr error
	)
	setErr := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	for i := 0; i < workers; i++ {
		// Each worker gets its own RNG so ApproxAverageClustering/
		// ApproxTransitivity sampling never races on shared state.
		rng := rand.New(rand.NewSource(int64(i) + 1))
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			for grp := range jobs {
				if ctx.Err() != nil {
					setErr(ctx.Err())
					return
				}
				line, err := renderGroup(grp, cfg, rng)
				if err != nil {
					setErr(err)
					continue
				}
				writeMu.Lock()
				_, werr := io.WriteString(w, line)
				writeMu.Unlock()
				if werr != nil {
					setErr(core.NewIOError("writing output", werr))
				}
			}
		}(rng)
	}
	wg.Wait()

	return firstErr
}

// renderGroup builds the graph for one GraphRows, computes its stats
// record, and renders the "<graph_id>\t<json>\n" output line (spec.md §6).
func renderGroup(grp GraphRows, cfg Config, rng *rand.Rand) (string, error) {
	g, err := BuildUndirected(grp.Rows, cfg)
	if err != nil {
		return "", err
	}

	rec, err := ComputeStats(g, cfg, rng)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return "", core.NewGenericError("encoding stats record", err)
	}

	return fmt.Sprintf("%d\t%s\n", grp.GraphID, payload), nil
}
