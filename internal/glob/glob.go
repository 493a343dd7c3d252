// Package glob matches manifest entries against shell-style patterns.
//
// Patterns use doublestar syntax (*, ?, [...], {a,b}, **). An entry matches
// if either its raw name or its sanitised key does, so "Alpha_*" finds
// "Alpha One" without quoting the space.
package glob

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jpl-au/codefind/internal/item"
)

// Match reports whether name (or its sanitised key) matches pattern.
// Returns an error if the pattern is malformed.
func Match(pattern string, it item.Item) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	if doublestar.MatchUnvalidated(pattern, it.Name) {
		return true, nil
	}
	return doublestar.MatchUnvalidated(pattern, it.Key), nil
}

// Filter returns the items matching pattern, in order. An empty pattern
// matches everything.
func Filter(pattern string, items []item.Item) ([]item.Item, error) {
	if pattern == "" {
		return items, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	var out []item.Item
	for _, it := range items {
		if doublestar.MatchUnvalidated(pattern, it.Name) || doublestar.MatchUnvalidated(pattern, it.Key) {
			out = append(out, it)
		}
	}
	return out, nil
}
