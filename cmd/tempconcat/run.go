// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tempnet/builder"
	"github.com/katalvlaran/tempnet/concat"
	"github.com/katalvlaran/tempnet/metrics"
	"github.com/katalvlaran/tempnet/temporal"
	"github.com/katalvlaran/tempnet/traceio"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage: tempconcat concat|gen|schema [flags]")

// run executes one command and returns the process exit code.
func run(args, environ []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(environ)
	if err != nil {
		fmt.Fprintln(stderr, "tempconcat:", err)
		return exitUsage
	}
	level, err := cfg.slogLevel()
	if err != nil {
		fmt.Fprintln(stderr, "tempconcat:", err)
		return exitUsage
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.New().String())

	if len(args) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch args[0] {
	case "concat":
		err = runConcat(ctx, cfg, logger, args[1:], stdin, stdout, stderr)
	case "gen":
		err = runGen(cfg, logger, args[1:], stdout, stderr)
	case "schema":
		err = traceio.WriteSchema(stdout)
	default:
		fmt.Fprintln(stderr, errUsage)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	logger.Error("command failed", "command", args[0], "error", err)

	return exitError
}

// runConcat decodes every input, concatenates and writes the merged document.
func runConcat(ctx context.Context, cfg Config, logger *slog.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("concat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outFormat := fs.String("format", cfg.Format, "output format: yaml or json")
	inFormat := fs.String("in-format", cfg.Format, "input format for stdin and unknown extensions")
	outPath := fs.String("o", "", "output file (default stdout)")
	metricsFile := fs.String("metrics-file", cfg.MetricsFile, "write Prometheus text-file metrics here")
	if err := fs.Parse(args); err != nil {
		return err
	}

	of, err := traceio.ParseFormat(*outFormat)
	if err != nil {
		return err
	}
	inf, err := traceio.ParseFormat(*inFormat)
	if err != nil {
		return err
	}

	docs, err := readInputs(ctx, fs.Args(), inf, stdin, cfg.Parallelism)
	if err != nil {
		return err
	}
	joined, err := traceio.Join(docs...)
	if err != nil {
		return err
	}
	logger.Debug("inputs decoded", "files", len(docs), "segments", joined.Len(), "kind", joined.Kind)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	merged, err := concat.Segments(joined.Segments(), m.Options()...)
	m.ObserveConcat(joined.Kind, joined.Len(), err)
	if *metricsFile != "" {
		if werr := metrics.WriteTextfile(*metricsFile, reg); werr != nil {
			logger.Warn("metrics not written", "path", *metricsFile, "error", werr)
		}
	}
	if err != nil {
		return err
	}

	out, err := traceio.DocumentOf(merged)
	if err != nil {
		return err
	}
	if err := writeOutput(*outPath, of, out, stdout); err != nil {
		return err
	}
	logger.Info("concatenated",
		"kind", joined.Kind,
		"segments", joined.Len(),
		"nodes", merged.NodeCount(),
		"tmax", merged.End(),
	)

	return nil
}

// readInputs decodes each path, or stdin when no path is given. Files are
// decoded concurrently, at most limit at a time; order is preserved.
func readInputs(ctx context.Context, paths []string, fallback traceio.Format, stdin io.Reader, limit int) ([]*traceio.Document, error) {
	if len(paths) == 0 {
		d, err := traceio.Decode(stdin, fallback)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}

		return []*traceio.Document{d}, nil
	}

	docs := make([]*traceio.Document, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := traceio.ReadFile(p, fallback)
			if err != nil {
				return err
			}
			docs[i] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// runGen writes one randomly generated segment.
func runGen(cfg Config, logger *slog.Logger, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindName := fs.String("kind", "events", "representation: snapshots or events")
	n := fs.Int("n", 10, "node count")
	steps := fs.Int("steps", 20, "sampling times (snapshots) or events (events)")
	p := fs.Float64("p", 0.1, "edge / toggle probability")
	start := fs.Float64("start", 0, "local time origin")
	step := fs.Float64("step", 1, "time between samples or events (> 0)")
	seed := fs.Int64("seed", cfg.Seed, "RNG seed")
	unit := fs.String("time-unit", "", "time unit tag")
	outFormat := fs.String("format", cfg.Format, "output format: yaml or json")
	outPath := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !(*step > 0) || math.IsInf(*step, 0) {
		return fmt.Errorf("-step must be finite and > 0: %w", errUsage)
	}
	if math.IsNaN(*start) || math.IsInf(*start, 0) {
		return fmt.Errorf("-start must be finite: %w", errUsage)
	}

	kind, err := temporal.ParseKind(*kindName)
	if err != nil {
		return err
	}
	of, err := traceio.ParseFormat(*outFormat)
	if err != nil {
		return err
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(*seed),
		builder.WithStart(*start),
		builder.WithStep(*step),
		builder.WithTimeUnit(*unit),
	}
	var seg temporal.Segment
	switch kind {
	case temporal.KindSnapshots:
		seg, err = builder.RandomSnapshots(*n, *steps, *p, opts...)
	default:
		seg, err = builder.RandomEvents(*n, *steps, *p, opts...)
	}
	if err != nil {
		return err
	}

	doc, err := traceio.DocumentOf(seg)
	if err != nil {
		return err
	}
	if err := writeOutput(*outPath, of, doc, stdout); err != nil {
		return err
	}
	logger.Info("generated", "kind", kind, "n", *n, "steps", *steps, "seed", *seed)

	return nil
}

// writeOutput encodes d to path, or to stdout when path is empty.
func writeOutput(path string, f traceio.Format, d *traceio.Document, stdout io.Writer) error {
	if path == "" {
		return traceio.Encode(stdout, f, d)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := traceio.Encode(fh, f, d); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
