// tools_config.go implements the configuration tools.
//
// The running server keeps the catalog it loaded at startup, so source
// changes are written to disk and only picked up after a restart.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/codefind/internal/config"
	"github.com/jpl-au/codefind/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles codefind_config_get tool calls.
func (h *handlers) configGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx unused
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:config_get", "get").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:config_get", "list").Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:config_get", "get").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{key: v})
}

// configSet handles codefind_config_set tool calls.
func (h *handlers) configSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx unused
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Set(key, value)
	}
	if err == nil {
		err = cfg.Save()
	}

	log.Event("mcp:config_set", "set").Detail("key", key).Detail("value", value).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg := fmt.Sprintf("%s = %s", key, value)
	if strings.HasPrefix(key, "source.") || strings.HasPrefix(key, "fetch.") {
		msg += " (restart the server to apply)"
	}
	return mcp.NewToolResultText(msg), nil
}
