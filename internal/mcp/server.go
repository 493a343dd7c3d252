// Package mcp implements the Model Context Protocol server, exposing a
// codefind catalog to LLMs over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/i18n"
	"github.com/jpl-au/codefind/internal/service"
	"github.com/jpl-au/codefind/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio.
//
// The catalog is loaded on the first tool call rather than at startup, so
// a slow or unreachable source does not stall the client handshake.
func Serve(extCtx extension.Context) error {
	// stdout carries JSON-RPC; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s, err := NewServer(extCtx)
	if err != nil {
		return err
	}

	slog.Info("codefind MCP server ready",
		"version", version.Short(),
		"transport", "stdio",
		"source", extCtx.Service().Source(),
		"variant", extCtx.Service().Variant().Name)

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with all core and extension tools.
func NewServer(extCtx extension.Context) (*server.MCPServer, error) {
	h := &handlers{ext: extCtx, svc: extCtx.Service()}

	s := server.NewMCPServer(
		"codefind",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	if err := registerExtensionTools(s, extCtx); err != nil {
		return nil, err
	}
	return s, nil
}

// handlers provides MCP request handlers with access to the catalog.
type handlers struct {
	ext extension.Context
	svc service.Service

	loadOnce sync.Once
	loadErr  error
}

// ready loads the catalog on first use. A manifest failure is remembered
// and returned to every later call.
//
// The load outlives the request that triggered it: the catalog is frozen
// afterwards, so a cancelled first call must not leave it empty or full of
// fetch placeholders for the rest of the session.
func (h *handlers) ready(ctx context.Context) *mcp.CallToolResult {
	h.loadOnce.Do(func() {
		if h.svc.Loaded() {
			return
		}
		h.loadErr = h.svc.Load(context.WithoutCancel(ctx))
		if h.loadErr != nil {
			slog.Error("catalog load failed", "source", h.svc.Source(), "error", h.loadErr)
		}
	})
	if h.loadErr != nil {
		return mcp.NewToolResultError(h.ext.Messages().T(i18n.ErrorLoading) + " " + h.loadErr.Error())
	}
	return nil
}

func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"codefind://items/{name}",
			"Catalog entry",
			mcp.WithTemplateDescription("Body of a catalog entry by name or key"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		h.readItem,
	)
}

func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("codefind_list",
			mcp.WithDescription("List catalog entries in manifest order"),
			mcp.WithString("pattern", mcp.Description("Glob over entry names (supports *, ?, [..], {a,b})")),
		),
		h.listItems,
	)

	s.AddTool(
		mcp.NewTool("codefind_search",
			mcp.WithDescription("Case-insensitive substring search over the catalog's searchable fields"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Text to look for")),
			mcp.WithBoolean("content", mcp.Description("Include entry bodies in the result")),
		),
		h.searchItems,
	)

	s.AddTool(
		mcp.NewTool("codefind_read",
			mcp.WithDescription("Read one or more entries' bodies (or link targets)"),
			mcp.WithString("name", mcp.Description("Entry name or key")),
			mcp.WithArray("names", mcp.Description("Several entry names"), mcp.WithStringItems()),
		),
		h.readItems,
	)

	s.AddTool(
		mcp.NewTool("codefind_diff",
			mcp.WithDescription("Show the differences between two entries' bodies"),
			mcp.WithString("a", mcp.Required(), mcp.Description("First entry")),
			mcp.WithString("b", mcp.Required(), mcp.Description("Second entry")),
		),
		h.diffItems,
	)

	s.AddTool(
		mcp.NewTool("codefind_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (source.base, source.variant, fetch.workers, language, ...) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("codefind_config_set",
			mcp.WithDescription("Set a configuration value. Source changes apply after a restart."),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("codefind_guide",
			mcp.WithDescription("Get help/guide content for codefind commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'find', 'variants') or empty for index")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds tools contributed by extensions.
func registerExtensionTools(s *server.MCPServer, extCtx extension.Context) error {
	tools, err := extension.Tools()
	if err != nil {
		return err
	}
	for _, t := range tools {
		handler := t.Handler
		s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handler(ctx, extCtx, req)
		})
	}
	return nil
}
