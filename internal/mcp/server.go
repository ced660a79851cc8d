// Package mcp provides a Model Context Protocol server for savi.
// It exposes the toolbox operations as MCP tools that any MCP-capable
// agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all savi tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "savi",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all savi tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_ascii",
		Description: "Render text as 5-line ASCII block art. Unknown characters render as blanks.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderASCII)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_repos",
		Description: "Scan a directory tree for git repositories that are off their default branch or have uncommitted changes.",
		Annotations: readOnlyAnnotations(),
	}, handleScanRepos)

	mcp.AddTool(server, &mcp.Tool{
		Name: "notify_long_operation",
		Description: "Send a Slack notification about a long-running operation if its duration exceeds the threshold. " +
			"Requires SLACK_WEBHOOK_URL and SLACK_MEMBER_ID.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleNotifyLongOperation)
}
