// Package mcp exposes the digest pipeline to MCP clients over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pulsefeed/pulsefeed/internal/digest"
	"github.com/pulsefeed/pulsefeed/internal/format"
)

// Config holds MCP server configuration.
type Config struct {
	Name    string
	Version string
}

// Server wraps the MCP server around a digest pipeline.
type Server struct {
	mcpServer *server.MCPServer
	pipeline  *digest.Pipeline
}

// NewServer creates an MCP server with digest and search tools.
func NewServer(config Config, pipeline *digest.Pipeline) *Server {
	mcpServer := server.NewMCPServer(
		config.Name,
		config.Version,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcpServer: mcpServer,
		pipeline:  pipeline,
	}

	digestTool := mcp.NewTool("get_digest",
		mcp.WithDescription("Build the AI-news digest for a calendar date. Returns formatted text."),
		mcp.WithString("date",
			mcp.Description("Target date as YYYY-MM-DD (default: today)"),
		),
		mcp.WithString("mode",
			mcp.Description("Rendering mode: short, long or plain (default: plain)"),
		),
	)
	mcpServer.AddTool(digestTool, s.digestHandler)

	searchTool := mcp.NewTool("search_content",
		mcp.WithDescription("Search previously indexed digest items by query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query string"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 10)"),
		),
	)
	mcpServer.AddTool(searchTool, s.searchHandler)

	return s
}

// digestHandler handles the get_digest tool call.
func (s *Server) digestHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := time.Now()
	if raw := req.GetString("date", ""); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", raw)), nil
		}
		date = parsed
	}

	mode := format.Mode(req.GetString("mode", string(format.ModePlain)))
	switch mode {
	case format.ModeShort, format.ModeLong, format.ModePlain:
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid mode %q, want short, long or plain", mode)), nil
	}

	result := s.pipeline.Build(ctx, date, mode)
	return mcp.NewToolResultText(result.Payload), nil
}

// searchHandler handles the search_content tool call.
func (s *Server) searchHandler(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	limit := req.GetInt("limit", 10)

	items, err := s.pipeline.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// ServeStdio starts the MCP server using stdio transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
