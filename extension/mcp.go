// mcp.go lets extensions contribute MCP tools next to their commands.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool is a tool definition together with the function that serves it.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler serves one tool call. The server loads the catalog lazily, so
// extCtx.Service() may not be loaded yet when a handler runs.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Name returns the name clients call the tool by.
func (t MCPTool) Name() string { return t.Tool.Name }
