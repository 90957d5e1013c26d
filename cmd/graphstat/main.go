// Command graphstat reads tab-separated edge rows grouped by graph id and
// writes one JSON statistics line per graph (spec.md §6).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/graphkit/transform"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "graphstat:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("graphstat", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputPath  = fs.String("input", "-", `input path, or "-" for stdin`)
		outputPath = fs.String("output", "-", `output path, or "-" for stdout`)
		parallel   = fs.Bool("parallel", false, "use the parallel worker-pool transformer")
		workers    = fs.Int("workers", 0, "worker pool size when -parallel is set (0 = runtime.NumCPU())")
		typed      = fs.Bool("typed", false, "build a bipartite typed graph")
		weighted   = fs.Bool("weighted", false, "build a weighted graph (ignored when -typed)")
		failFast   = fs.Bool("fail-fast-parse", true, "abort on the first malformed input line instead of skipping it")
		coreType   = fs.String("core-type", "", "core-side type label, required with -typed")
		nonCore    = fs.String("non-core-type", "", "non-core-side type label, required with -typed")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := transform.DefaultConfig()
	cfg.Parallel = *parallel
	cfg.Workers = *workers
	cfg.Typed = *typed
	cfg.Weighted = *weighted
	cfg.FailOnParseError = *failFast
	cfg.CoreType = *coreType
	cfg.NonCoreType = *nonCore

	if cfg.Typed && (cfg.CoreType == "" || cfg.NonCoreType == "") {
		return fmt.Errorf("-typed requires both -core-type and -non-core-type")
	}

	r, closeR, err := openInput(*inputPath, stdin)
	if err != nil {
		return err
	}
	defer closeR()

	w, closeW, err := openOutput(*outputPath, stdout)
	if err != nil {
		return err
	}
	defer closeW()

	var t transform.Transformer = transform.SerialTransformer{}
	if cfg.Parallel {
		t = transform.ParallelTransformer{}
	}
	return t.Run(context.Background(), r, w, cfg)
}

func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "-" || path == "" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" || path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
