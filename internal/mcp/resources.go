// resources.go exposes catalog entries as MCP resources under
// codefind://items/{name}, so clients can pull a body into context without
// a tool call.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jpl-au/codefind/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

const itemPrefix = "codefind://items/"

var (
	// ErrInvalidURI is returned for URIs outside the items scheme.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyName is returned when the URI names no entry.
	ErrEmptyName = errors.New("empty entry name")
)

// readItem serves one entry. Link entries return their target.
func (h *handlers) readItem(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	name, err := parseItemURI(uri)
	if err != nil {
		return nil, err
	}
	if res := h.ready(ctx); res != nil {
		return nil, errors.New(h.loadErr.Error())
	}

	it, err := h.svc.Item(name)

	log.Event("mcp:resource", "read").Variant(h.svc.Variant().Name).Item(name).Write(err)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	text := it.Content
	if !it.HasContent {
		text = h.svc.Resolve(it)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}

// parseItemURI extracts the entry name. Names with spaces arrive escaped.
func parseItemURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, itemPrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	rest := strings.TrimPrefix(uri, itemPrefix)
	name, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
