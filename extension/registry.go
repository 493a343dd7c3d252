// registry.go holds the extensions registered from init() and answers the
// questions the root command and the MCP server ask of them as a group.

package extension

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds an extension. It panics on an empty or duplicate name, the
// same way database/sql.Register does, since both are programming errors.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if name == "" {
		panic("extension: empty name")
	}
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}
	registry[name] = e
	order = append(order, name)
}

// All returns the registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Lookup returns the named extension, or nil.
func Lookup(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns extension names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), order...)
}

// CommandSets says how the root command prepares the catalog for each
// subcommand. Commands in neither set get a loaded catalog.
type CommandSets struct {
	// NoCatalog commands run without a source.
	NoCatalog map[string]bool
	// LazyLoad commands get the catalog unloaded and load it themselves.
	LazyLoad map[string]bool
}

// Sets collects the Catalogless and LazyLoader declarations of every
// extension. cobra's help and completion never need a catalog.
func Sets() CommandSets {
	s := CommandSets{
		NoCatalog: map[string]bool{"help": true, "completion": true},
		LazyLoad:  map[string]bool{},
	}
	for _, ext := range All() {
		if c, ok := ext.(Catalogless); ok {
			for _, name := range c.NoCatalogCommands() {
				s.NoCatalog[name] = true
			}
		}
		if l, ok := ext.(LazyLoader); ok {
			for _, name := range l.LazyLoadCommands() {
				s.LazyLoad[name] = true
			}
		}
	}
	return s
}

// Tools returns every extension's MCP tools in registration order. Two
// extensions offering the same tool name is an error.
func Tools() ([]MCPTool, error) {
	var tools []MCPTool
	owner := make(map[string]string)
	for _, ext := range All() {
		for _, t := range ext.MCPTools() {
			if prev, ok := owner[t.Name()]; ok {
				return nil, fmt.Errorf("%w: %s (from %s and %s)", ErrDuplicateTool, t.Name(), prev, ext.Name())
			}
			owner[t.Name()] = ext.Name()
			tools = append(tools, t)
		}
	}
	return tools, nil
}
