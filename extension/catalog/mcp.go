package catalog

import (
	"context"
	"encoding/json"

	"github.com/jpl-au/codefind/extension"
	"github.com/jpl-au/codefind/internal/variant"
	"github.com/mark3labs/mcp-go/mcp"
)

// variantInfo describes a variant for MCP clients.
type variantInfo struct {
	Name     string `json:"name"`
	Manifest string `json:"manifest"`
	Content  bool   `json:"content"`
	Links    bool   `json:"links"`
	Fields   string `json:"fields"`
	Active   bool   `json:"active"`
}

// variantsTool lets a client learn what the search tool will match on.
func variantsTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("codefind_variants",
			mcp.WithDescription("List catalog variants, their manifests and searchable fields"),
		),
		Handler: listVariants,
	}
}

func listVariants(_ context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active := ""
	if extCtx != nil && extCtx.Service() != nil {
		active = extCtx.Service().Variant().Name
	}
	out := variantInfos(active)
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func variantInfos(active string) []variantInfo {
	names := variant.Names()
	out := make([]variantInfo, 0, len(names))
	for _, n := range names {
		v, _ := variant.Get(n)
		out = append(out, variantInfo{
			Name:     v.Name,
			Manifest: v.Manifest,
			Content:  v.LoadContent,
			Links:    v.Links,
			Fields:   v.Fields.String(),
			Active:   v.Name == active,
		})
	}
	return out
}
