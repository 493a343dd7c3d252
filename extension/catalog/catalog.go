// Package catalog provides the catalog extension: the read-only commands
// that list, search, print and compare entries.
// Registers commands: ls, find, cat, diff.
package catalog

import (
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the catalog extension.
type Extension struct {
	svc service.Service
	msg *i18n.Localizer
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "catalog".
func (e *Extension) Name() string { return "catalog" }

// Init connects to the shared catalog.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.msg = ctx.Messages()
	return nil
}

// Commands returns the catalog commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newLsCmd(),
		e.newFindCmd(),
		e.newCatCmd(),
		e.newDiffCmd(),
	}
}

// MCPTools returns the variants tool; list, search and read are served by
// internal/mcp directly.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{variantsTool()}
}
