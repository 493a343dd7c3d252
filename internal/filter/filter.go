// Package filter decides which catalog entries match a search query.
//
// Matching is a literal, case-insensitive substring test over the fields a
// variant marks as searchable. There is no tokenising, fuzzy matching or
// ranking: catalogs hold tens to a few hundred entries and a linear scan
// keeps results predictable.
package filter

import (
	"strings"

	"github.com/jpl-au/codefind/internal/format"
	"github.com/jpl-au/codefind/internal/item"
)

// Field is a searchable attribute of an item.
type Field uint8

const (
	// FieldName is the raw manifest entry.
	FieldName Field = 1 << iota
	// FieldDisplayName is the formatted title (see format.DisplayName).
	FieldDisplayName
	// FieldContent is the loaded body, placeholder included.
	FieldContent
)

// Has reports whether f includes field.
func (f Field) Has(field Field) bool { return f&field != 0 }

// String lists the fields, e.g. "name+content".
func (f Field) String() string {
	var parts []string
	if f.Has(FieldName) {
		parts = append(parts, "name")
	}
	if f.Has(FieldDisplayName) {
		parts = append(parts, "display")
	}
	if f.Has(FieldContent) {
		parts = append(parts, "content")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Normalize trims and lower-cases a query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Match reports whether it matches an already normalised query.
func Match(it item.Item, q string, fields Field) bool {
	if q == "" {
		return true
	}
	if fields.Has(FieldName) && strings.Contains(strings.ToLower(it.Name), q) {
		return true
	}
	if fields.Has(FieldDisplayName) && strings.Contains(strings.ToLower(format.DisplayName(it.Name)), q) {
		return true
	}
	if fields.Has(FieldContent) && strings.Contains(strings.ToLower(it.Content), q) {
		return true
	}
	return false
}

// Visible returns one flag per item, in order.
func Visible(items []item.Item, query string, fields Field) []bool {
	q := Normalize(query)
	vis := make([]bool, len(items))
	for i, it := range items {
		vis[i] = Match(it, q, fields)
	}
	return vis
}

// Filter returns the matching items in their original order. An empty
// query returns every item.
func Filter(items []item.Item, query string, fields Field) []item.Item {
	q := Normalize(query)
	if q == "" {
		out := make([]item.Item, len(items))
		copy(out, items)
		return out
	}
	var out []item.Item
	for _, it := range items {
		if Match(it, q, fields) {
			out = append(out, it)
		}
	}
	return out
}

// State describes what a result list should tell the user.
type State int

const (
	// StateResults means at least one entry is visible.
	StateResults State = iota
	// StateEmpty means the manifest had no entries at all.
	StateEmpty
	// StateNoMatch means entries exist but the query hid every one.
	StateNoMatch
	// StateNothingToDisplay means entries exist and no query is set, yet
	// the caller has nothing visible (e.g. a sink that hides placeholders).
	StateNothingToDisplay
)

// String returns a short name for the state, used in JSON output.
func (s State) String() string {
	switch s {
	case StateResults:
		return "results"
	case StateEmpty:
		return "empty"
	case StateNoMatch:
		return "no-match"
	case StateNothingToDisplay:
		return "nothing-to-display"
	default:
		return "unknown"
	}
}

// Outcome classifies a filter result so "nothing loaded" and "no matches"
// can be reported differently.
func Outcome(total, visible int, query string) State {
	switch {
	case visible > 0:
		return StateResults
	case total == 0:
		return StateEmpty
	case Normalize(query) != "":
		return StateNoMatch
	default:
		return StateNothingToDisplay
	}
}
