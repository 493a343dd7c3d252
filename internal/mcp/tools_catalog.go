// tools_catalog.go implements the catalog tools: list, search, read, diff.

package mcp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jpl-au/codefind/internal/diff"
	"github.com/jpl-au/codefind/internal/filter"
	"github.com/jpl-au/codefind/internal/glob"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/jpl-au/codefind/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// listItems handles codefind_list tool calls.
func (h *handlers) listItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.ready(ctx); res != nil {
		return res, nil
	}
	pattern := getString(req, "pattern", "")

	items, err := glob.Filter(pattern, h.svc.Items())

	log.Event("mcp:list", "list").
		Variant(h.svc.Variant().Name).
		Detail("pattern", pattern).
		Count(len(items)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(service.ToJSON(h.svc, items, false))
}

// searchItems handles codefind_search tool calls.
func (h *handlers) searchItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}
	if res := h.ready(ctx); res != nil {
		return res, nil
	}

	items := h.svc.Search(query)
	state := filter.Outcome(h.svc.Len(), len(items), query)

	log.Event("mcp:search", "search").
		Variant(h.svc.Variant().Name).
		Detail("query", query).
		Count(len(items)).
		Write(nil)

	return jsonResult(map[string]any{
		"query":   query,
		"fields":  h.svc.Variant().Fields.String(),
		"state":   state.String(),
		"message": h.ext.Messages().Outcome(state, query),
		"items":   service.ToJSON(h.svc, items, getBool(req, "content", false)),
	})
}

// readItems handles codefind_read tool calls with one or several names.
func (h *handlers) readItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := getStrings(req, "names")
	if name := getString(req, "name", ""); name != "" {
		names = append([]string{name}, names...)
	}
	if len(names) == 0 {
		return mcp.NewToolResultError("name or names is required"), nil
	}
	if res := h.ready(ctx); res != nil {
		return res, nil
	}

	// A single name returns plain text, several return a JSON array with
	// per-entry errors so one bad name does not hide the rest.
	if len(names) == 1 {
		it, err := h.svc.Item(names[0])
		log.Event("mcp:read", "read").Variant(h.svc.Variant().Name).Item(names[0]).Resolved(h.svc.Resolve(it)).Write(err)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", names[0], err)), nil
		}
		if !it.HasContent {
			return mcp.NewToolResultText(h.svc.Resolve(it)), nil
		}
		return mcp.NewToolResultText(it.Content), nil
	}

	type entry struct {
		service.ItemJSON
		Error string `json:"error,omitempty"`
	}
	out := make([]entry, 0, len(names))
	for _, name := range names {
		it, err := h.svc.Item(name)
		log.Event("mcp:read", "read").Variant(h.svc.Variant().Name).Item(name).Write(err)
		if err != nil {
			out = append(out, entry{ItemJSON: service.ItemJSON{Name: name}, Error: err.Error()})
			continue
		}
		out = append(out, entry{ItemJSON: service.ToJSON(h.svc, []item.Item{it}, true)[0]})
	}
	return jsonResult(out)
}

// diffItems handles codefind_diff tool calls.
func (h *handlers) diffItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireString("a")
	if err != nil {
		return mcp.NewToolResultError("a is required"), nil //nolint:nilerr
	}
	b, err := req.RequireString("b")
	if err != nil {
		return mcp.NewToolResultError("b is required"), nil //nolint:nilerr
	}
	if res := h.ready(ctx); res != nil {
		return res, nil
	}

	var buf bytes.Buffer
	r, err := diff.Run(&buf, h.svc, a, b, false)

	log.Event("mcp:diff", "diff").Variant(h.svc.Variant().Name).Item(a).Detail("other", b).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"old":  r.Old,
		"new":  r.New,
		"same": r.Same(),
		"diff": r.Diff,
	})
}
