// Package main is the entry point for the vibeboard CLI.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the exit code.
// 0 = ok, 1 = generation failed (one-shot commands only), 2 = usage or setup error.
func run(args []string) int {
	fs := flag.NewFlagSet("vibeboard", flag.ContinueOnError)

	var versionFlag bool
	fs.BoolVar(&versionFlag, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vibeboard [command] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  chat                   Interactive destination prompt (default)\n")
		fmt.Fprintf(os.Stderr, "  generate <destination> Generate one vibe board and print or save it\n")
		fmt.Fprintf(os.Stderr, "  batch <dest>...        Generate boards for many destinations\n")
		fmt.Fprintf(os.Stderr, "  watch <file>           Regenerate boards when a destinations file changes\n")
		fmt.Fprintf(os.Stderr, "  tui                    Full-screen terminal UI\n")
		fmt.Fprintf(os.Stderr, "  serve                  HTTP API (POST /generate, GET /health)\n")
		fmt.Fprintf(os.Stderr, "  mcp                    MCP server on stdio\n")
		fmt.Fprintf(os.Stderr, "  version                Print version and exit\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if versionFlag {
		fmt.Printf("vibeboard %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return runChat(nil)
	}

	command := remaining[0]
	switch command {
	case "chat":
		return runChat(remaining[1:])
	case "generate":
		return runGenerate(remaining[1:])
	case "batch":
		return runBatch(remaining[1:])
	case "watch":
		return runWatch(remaining[1:])
	case "tui":
		return runTUI(remaining[1:])
	case "serve":
		return runServe(remaining[1:])
	case "mcp":
		return runMCP(remaining[1:])
	case "version":
		fmt.Printf("vibeboard %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		fmt.Fprintln(os.Stderr, "Usage: vibeboard [command] [flags]")
		return 2
	}
}
