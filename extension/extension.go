// Package extension provides the plugin architecture for codefind.
// Extensions bundle related commands and MCP tools and register at init
// time, so new surfaces can be added without touching the root command.
package extension

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrDuplicateTool is returned when two extensions offer the same MCP tool.
var ErrDuplicateTool = errors.New("duplicate MCP tool")

// Extension defines the contract for codefind extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the Context once the catalog exists.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Catalogless is implemented by extensions with commands that never touch
// a catalog (config, lang, guide, version). Those commands run without a
// source and without a network round-trip.
type Catalogless interface {
	NoCatalogCommands() []string
}

// LazyLoader is implemented by extensions with commands that need a
// catalog but load it themselves, e.g. to stream entries into a UI or to
// defer the fetch until a client asks for something.
type LazyLoader interface {
	LazyLoadCommands() []string
}
