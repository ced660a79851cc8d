// Package main provides the entry point for the savi CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	savimcp "github.com/savi-dev/savi/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run savi as a Model Context Protocol (MCP) server over stdio.

This exposes the savi tools to any MCP-capable agent environment.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "savi": {
        "command": "savi",
        "args": ["serve"]
      }
    }
  }

Available tools: render_ascii, scan_repos, notify_long_operation`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := savimcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
