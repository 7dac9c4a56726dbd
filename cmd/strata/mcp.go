package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/stratametrics/strata/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes strata's metrics
engine as tools that LLMs can invoke.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "strata": {
        "command": "strata",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - analyze_file     Metrics tree for one file
  - analyze_source   Metrics for an in-memory buffer
  - analyze_path     Per-file trees plus a project summary
  - list_languages   Supported languages`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}
