package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/travelvibe/vibeboard/guide"
	"github.com/travelvibe/vibeboard/server"
)

// runServe starts the HTTP API. Unlike the interactive loop, a missing
// credential is a startup error here: a server that can never generate is
// not worth binding a port for.
func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var gf generateFlags
	var addr string
	fs.StringVar(&gf.model, "model", "", "model name (default from config, then "+guide.DefaultModel+")")
	fs.StringVar(&gf.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.DurationVar(&gf.timeout, "timeout", 0, "per-request timeout (0 keeps the transport default)")
	fs.StringVar(&addr, "addr", "", "listen address (default from config, then :8080)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := guide.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if addr == "" {
		addr = cfg.Serve.Addr
	}
	if addr == "" {
		addr = ":8080"
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

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	api := server.NewAPI(curator, version, logger)
	if err := api.Run(context.Background(), addr); err != nil {
		fmt.Fprintf(os.Stderr, "error: http server failed: %v\n", err)
		return 2
	}
	return 0
}

// runMCP starts the MCP server on stdio.
func runMCP(args []string) int {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	var gf generateFlags
	fs.StringVar(&gf.model, "model", "", "model name (default from config, then "+guide.DefaultModel+")")
	fs.StringVar(&gf.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.DurationVar(&gf.timeout, "timeout", 0, "per-request timeout (0 keeps the transport default)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	curator, err := buildCurator(gf)
	if err != nil {
		// Guidance goes to stderr: stdout carries the MCP protocol.
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	srv := server.NewMCP(curator, version)
	if err := srv.Serve(); err != nil {
		fmt.Fprintf(os.Stderr, "error: MCP server failed: %v\n", err)
		return 2
	}
	return 0
}
