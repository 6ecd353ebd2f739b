package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/travelvibe/vibeboard/cli/tui"
	"github.com/travelvibe/vibeboard/guide"
)

// runTUI starts the full-screen terminal UI.
func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	var gf generateFlags
	fs.StringVar(&gf.model, "model", "", "model name (default from config, then "+guide.DefaultModel+")")
	fs.StringVar(&gf.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.DurationVar(&gf.timeout, "timeout", 0, "per-request timeout (0 keeps the transport default)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "error: tui requires a terminal (use chat or generate for piped output)")
		return 2
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

	p := tea.NewProgram(tui.New(curator), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: tui failed: %v\n", err)
		return 2
	}
	return 0
}
