// Package mcptool exposes the contributions widget as an MCP tool, so MCP
// clients can embed the same HTML component the web app serves.
package mcptool

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vmarko/contribgraph/internal/contrib"
	"github.com/vmarko/contribgraph/internal/render"
)

const (
	serverName = "github-contributions-mcp"
	toolName   = "github_contributions"
	widgetURI  = "app://github-contributions"
)

// Aggregator is the one capability the tool needs from the engine.
type Aggregator interface {
	Fetch(ctx context.Context, username string) contrib.Result
}

type ContributionsTool struct {
	service Aggregator
}

func NewTool(service Aggregator) *ContributionsTool {
	return &ContributionsTool{service: service}
}

func (t *ContributionsTool) Definition() mcp.Tool {
	return mcp.NewTool(toolName,
		mcp.WithDescription("Display an interactive GitHub contributions widget that shows a "+
			"contribution heatmap, statistics, and user profile. Returns an HTML component."),
		mcp.WithString("username",
			mcp.Description("GitHub username to fetch contributions for. If not provided, "+
				"an input field will be shown in the UI."),
		),
	)
}

// Handle renders the widget for the requested username, or the bare search
// form when no username was given. Lookup failures surface inside the
// widget, never as a tool error.
func (t *ContributionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	username := req.GetString("username", "")

	var result *contrib.Result
	if username != "" {
		r := t.service.Fetch(ctx, username)
		result = &r
	}

	html, err := render.Page(username, result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering widget: %v", err)), nil
	}

	return mcp.NewToolResultResource("GitHub contributions widget", mcp.TextResourceContents{
		URI:      widgetURI,
		MIMEType: "text/html",
		Text:     string(html),
	}), nil
}

// NewServer wires the tool onto a fresh MCP server instance.
func NewServer(service Aggregator, version string) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	tool := NewTool(service)
	s.AddTool(tool.Definition(), tool.Handle)

	return s
}
