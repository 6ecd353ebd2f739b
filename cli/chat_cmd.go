package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/travelvibe/vibeboard/guide"
)

// boardGenerator is the slice of guide.Curator the commands need; tests
// substitute a stub.
type boardGenerator interface {
	Generate(ctx context.Context, destination string) (*guide.Board, error)
}

// separator frames successful board output at the classic 80 columns.
var separator = strings.Repeat("─", 80)

// runChat starts the interactive destination prompt. Remote failures never
// terminate the loop; only the exit tokens (or EOF) do, always with code 0.
func runChat(args []string) int {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	var gf generateFlags
	fs.StringVar(&gf.model, "model", "", "model name (default from config, then "+guide.DefaultModel+")")
	fs.StringVar(&gf.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.DurationVar(&gf.timeout, "timeout", 0, "per-request timeout (0 keeps the transport default)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	curator, err := buildCurator(gf)
	if err != nil {
		if errors.Is(err, guide.ErrMissingAPIKey) {
			printSetupInstructions(apiKeyEnvName())
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	return chatLoop(os.Stdin, os.Stdout, curator)
}

// chatLoop runs the read-generate-print loop over the given streams.
func chatLoop(in io.Reader, out io.Writer, gen boardGenerator) int {
	fmt.Fprintln(out, "✨ Welcome to the Travel Vibe Curator! 🗺️")
	fmt.Fprintln(out, "I'll create custom vibe boards with local phrases, music, food, and first-day plans!")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, "Enter a travel destination (or 'quit' to exit): ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return 0
		}

		destination := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(destination) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Happy travels! 🌟")
			return 0
		}
		if destination == "" {
			fmt.Fprintln(out, "Please enter a valid destination!")
			continue
		}

		fmt.Fprintf(out, "\n✨ Creating vibe board for %s...\n\n", destination)

		board, err := gen.Generate(context.Background(), destination)
		if err != nil {
			fmt.Fprintf(out, "Error creating vibe board: %v\n", err)
			fmt.Fprintln(out, "Sorry, I couldn't generate a vibe board for that destination. Please try again!")
			fmt.Fprintln(out)
			continue
		}

		fmt.Fprintln(out, separator)
		fmt.Fprintln(out, board.Content)
		fmt.Fprintln(out, separator)
		fmt.Fprintln(out)
	}
}

// runGenerate produces a single board for the destination given as an
// argument and prints it, or writes it to --output.
func runGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	var gf generateFlags
	var output string
	fs.StringVar(&gf.model, "model", "", "model name (default from config, then "+guide.DefaultModel+")")
	fs.StringVar(&gf.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.DurationVar(&gf.timeout, "timeout", 0, "per-request timeout (0 keeps the transport default)")
	fs.StringVar(&output, "output", "", "write the board to this file (.json for the full document, anything else for raw markdown)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vibeboard generate <destination> [flags]")
		return 2
	}
	destination := strings.Join(fs.Args(), " ")

	curator, err := buildCurator(gf)
	if err != nil {
		if errors.Is(err, guide.ErrMissingAPIKey) {
			printSetupInstructions(apiKeyEnvName())
			return 2
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	start := time.Now()
	board, err := curator.Generate(context.Background(), destination)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if output != "" {
		if err := board.WriteFile(output); err != nil {
			fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", output, err)
			return 1
		}
		fmt.Printf("[generate] wrote %s (%d tokens, %s)\n",
			output, board.Usage.TotalTokens, time.Since(start).Round(time.Millisecond))
		return 0
	}

	fmt.Println(separator)
	fmt.Println(board.Content)
	fmt.Println(separator)
	return 0
}
