// Package mcpserver exposes the metrics engine over the Model Context
// Protocol, so agent tooling can request code metrics without shelling out
// to the CLI.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with every strata tool registered.
type Server struct {
	server *mcp.Server
}

// NewServer creates an MCP server advertising the strata tools.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "strata",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_file",
		Description: describeAnalyzeFile(),
	}, handleAnalyzeFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_source",
		Description: describeAnalyzeSource(),
	}, handleAnalyzeSource)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_path",
		Description: describeAnalyzePath(),
	}, handleAnalyzePath)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_languages",
		Description: describeListLanguages(),
	}, handleListLanguages)
}
