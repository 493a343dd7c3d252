// serve.go implements the "codefind serve" command. Unlike other commands
// it blocks, answering MCP requests over stdio until the client closes.

package core

import (
	"github.com/jpl-au/codefind/cmd"
	"github.com/jpl-au/codefind/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

The catalog is fetched on the first tool call:
  codefind -s https://example.com/snippets/ serve`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.Context())
}
