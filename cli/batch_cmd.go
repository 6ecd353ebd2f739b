package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/travelvibe/vibeboard/guide"
)

// runBatch generates boards for many destinations, writing one file per
// destination. Concurrency defaults to 1 so batches behave like the
// interactive loop unless the user opts into parallelism.
func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	var (
		gf          generateFlags
		file        string
		outputDir   string
		format      string
		concurrency int
		qps         float64
	)
	fs.StringVar(&gf.model, "model", "", "model name (default from config, then "+guide.DefaultModel+")")
	fs.StringVar(&gf.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.DurationVar(&gf.timeout, "timeout", 0, "per-request timeout (0 keeps the transport default)")
	fs.StringVar(&file, "file", "", "destinations file, one per line (# comments allowed)")
	fs.StringVar(&outputDir, "output", "", "output directory for board files (default from config, then \".\")")
	fs.StringVar(&format, "format", "md", "output format per board: md or json")
	fs.IntVar(&concurrency, "concurrency", 0, "simultaneous generations (default from config, then 1)")
	fs.Float64Var(&qps, "qps", 0, "pace requests at this rate (0 disables pacing)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if format != "md" && format != "json" {
		fmt.Fprintf(os.Stderr, "error: unknown format %q (want md or json)\n", format)
		return 2
	}

	destinations := append([]string{}, fs.Args()...)
	if file != "" {
		fromFile, err := readDestinationsFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", file, err)
			return 2
		}
		destinations = append(destinations, fromFile...)
	}
	if len(destinations) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: vibeboard batch <destination>... [flags]")
		return 2
	}

	cfg, err := guide.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if concurrency <= 0 {
		concurrency = cfg.Batch.Concurrency
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	if outputDir == "" {
		outputDir = cfg.Batch.OutputDir
	}
	if outputDir == "" {
		outputDir = "."
	}

	curator, err := buildCurator(gf)
	if err != nil {
		if errors.Is(err, guide.ErrMissingAPIKey) {
			printSetupInstructions(apiKeyEnvName())
			return 2
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: creating output directory: %v\n", err)
		return 2
	}

	fmt.Printf("vibeboard %s — %d destination(s), concurrency %d\n", version, len(destinations), concurrency)

	failed := generateAll(context.Background(), curator, destinations, outputDir, format, concurrency, qps)

	fmt.Printf("[batch] %d ok, %d failed\n", len(destinations)-failed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// generateAll runs one generation per destination with bounded concurrency
// and optional request pacing. Per-destination failures are reported and
// counted, never fatal; each destination gets exactly one attempt.
func generateAll(ctx context.Context, gen boardGenerator, destinations []string, outputDir, format string, concurrency int, qps float64) int {
	var limiter *rate.Limiter
	if qps > 0 {
		limiter = rate.NewLimiter(rate.Limit(qps), 1)
	}

	var (
		mu     sync.Mutex
		failed int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, destination := range destinations {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gCtx); err != nil {
					return err
				}
			}

			board, err := gen.Generate(gCtx, destination)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %s: %v\n", destination, err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}

			path := filepath.Join(outputDir, guide.Slug(destination)+"."+format)
			if err := board.WriteFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", path, err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}

			fmt.Printf("[batch] wrote %s (%d tokens)\n", path, board.Usage.TotalTokens)
			return nil
		})
	}

	// Goroutines only return errors on context cancellation.
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "error: batch aborted: %v\n", err)
	}
	return failed
}

// parseDestinations splits file content into destinations: one per line,
// trimmed, blank lines and #-comments skipped.
func parseDestinations(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
