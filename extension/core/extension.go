// Package core provides the core extension for codefind.
// It registers commands: config, lang, guide, llm, serve, version.
package core

import (
	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var (
	_ extension.Extension    = (*Extension)(nil)
	_ extension.Catalogless  = (*Extension)(nil)
	_ extension.LazyLoader   = (*Extension)(nil)
	_ extension.EventHandler = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the commands that manage codefind itself.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newLangCmd(),
		newServeCmd(),
		newGuideCmd(),
		newLlmCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil; the MCP server registers config and guide tools itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoCatalogCommands returns the commands that never read a catalog.
func (e *Extension) NoCatalogCommands() []string {
	return []string{"config", "lang", "guide", "llm", "version"}
}

// LazyLoadCommands returns serve, which loads on the first tool call.
func (e *Extension) LazyLoadCommands() []string {
	return []string{"serve"}
}

// HandleEvent records manifest failures in the audit log with their source
// so a broken catalog shows up next to the command that hit it.
func (e *Extension) HandleEvent(_ extension.Context, ev extension.Event) error {
	switch ev := ev.(type) {
	case extension.CatalogLoadEvent:
		if ev.Err != nil {
			log.Event("core:event", string(ev.EventType())).
				Variant(ev.Variant).
				Resolved(ev.Source).
				Write(ev.Err)
		}
	case extension.LanguageChangeEvent:
		log.Event("core:event", string(ev.EventType())).
			Detail("from", ev.From).
			Detail("to", ev.To).
			Write(nil)
	}
	return nil
}
