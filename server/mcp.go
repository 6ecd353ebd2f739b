package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/travelvibe/vibeboard/guide"
)

// MCP is the vibeboard MCP server. It exposes board generation as a tool so
// agents can request travel primers over stdio.
type MCP struct {
	version string
	gen     Generator

	mu   sync.RWMutex
	last *guide.Board
}

// NewMCP creates a new MCP server around a generator.
func NewMCP(gen Generator, version string) *MCP {
	return &MCP{version: version, gen: gen}
}

// Serve starts the MCP server on stdio and blocks until the client
// disconnects.
func (s *MCP) Serve() error {
	srv := mcpserver.NewMCPServer(
		"vibeboard",
		s.version,
		mcpserver.WithRecovery(),
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithResourceCapabilities(false, false),
	)

	s.registerTools(srv)
	s.registerResources(srv)

	return mcpserver.ServeStdio(srv)
}

func (s *MCP) registerTools(srv *mcpserver.MCPServer) {
	srv.AddTool(
		mcp.NewTool("generate_vibe_board",
			mcp.WithDescription("Generate a travel vibe board (local phrases, music, food, first-day plan) for a destination"),
			mcp.WithString("destination",
				mcp.Description("The travel destination, e.g. \"Tokyo\""),
				mcp.Required(),
			),
		),
		s.handleGenerate,
	)
}

func (s *MCP) registerResources(srv *mcpserver.MCPServer) {
	srv.AddResource(
		mcp.NewResource("vibeboard://last", "Last vibe board",
			mcp.WithResourceDescription("The most recently generated vibe board as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		s.handleResourceLast,
	)
}

func (s *MCP) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	destination, err := request.RequireString("destination")
	if err != nil {
		return mcp.NewToolResultError("missing required argument: destination"), nil
	}

	board, err := s.gen.Generate(ctx, destination)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	// Cache for the vibeboard://last resource.
	s.mu.Lock()
	s.last = board
	s.mu.Unlock()

	return mcp.NewToolResultText(board.Content), nil
}

func (s *MCP) handleResourceLast(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	if last == nil {
		return nil, fmt.Errorf("no vibe board available — call the generate_vibe_board tool first")
	}

	data, err := last.JSON()
	if err != nil {
		return nil, fmt.Errorf("marshalling vibe board: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
