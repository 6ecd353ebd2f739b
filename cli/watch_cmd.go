package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/travelvibe/vibeboard/guide"
)

// runWatch watches a destinations file and regenerates boards whenever it
// changes. Generation stays sequential; this is a convenience wrapper around
// the same one-call-per-destination behavior.
func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	var (
		gf        generateFlags
		outputDir string
		format    string
		debounce  time.Duration
	)
	fs.StringVar(&gf.model, "model", "", "model name (default from config, then "+guide.DefaultModel+")")
	fs.StringVar(&gf.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.DurationVar(&gf.timeout, "timeout", 0, "per-request timeout (0 keeps the transport default)")
	fs.StringVar(&outputDir, "output", ".", "output directory for board files")
	fs.StringVar(&format, "format", "md", "output format per board: md or json")
	fs.DurationVar(&debounce, "debounce", 0, "debounce interval for file changes (default from config, then 500ms)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vibeboard watch <destinations-file> [flags]")
		return 2
	}
	target := fs.Arg(0)

	cfg, err := guide.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if debounce == 0 && cfg.Watch.Debounce != "" {
		debounce, err = time.ParseDuration(cfg.Watch.Debounce)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid watch.debounce in config: %v\n", err)
			return 2
		}
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: creating watcher: %v\n", err)
		return 2
	}
	defer watcher.Close()

	// Watch the parent directory: editors typically replace the file, which
	// drops a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		fmt.Fprintf(os.Stderr, "error: watching %s: %v\n", target, err)
		return 2
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	regenerate := func() {
		destinations, err := readDestinationsFile(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: reading %s: %v\n", target, err)
			return
		}
		if len(destinations) == 0 {
			fmt.Println("[watch] no destinations listed")
			return
		}
		failed := generateAll(context.Background(), curator, destinations, outputDir, format, 1, 0)
		fmt.Printf("[watch] %d ok, %d failed\n", len(destinations)-failed, failed)
	}

	fmt.Printf("watch: %s (debounce: %s)\n", target, debounce)
	regenerate()

	var mu sync.Mutex
	var timer *time.Timer

	resetTimer := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			fmt.Printf("watch: %s changed, regenerating\n", target)
			regenerate()
		})
	}

	absTarget, _ := filepath.Abs(target)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			absName, _ := filepath.Abs(event.Name)
			if absName != absTarget {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				resetTimer()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-sigCh:
			fmt.Println("\nwatch: stopped")
			return 0
		}
	}
}
