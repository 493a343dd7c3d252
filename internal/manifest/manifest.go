// Package manifest loads the list of entry names a catalog is built from.
//
// A manifest is plain text with one name per line. Blank lines and
// surrounding whitespace are ignored; everything else is kept in order.
package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/codefind/internal/source"
)

// LoadError reports that the manifest itself could not be fetched. Unlike a
// missing content file this halts loading: there is nothing to show.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load manifest %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load fetches the manifest and returns its entries. Single attempt.
func Load(ctx context.Context, f source.Fetcher, name string) ([]string, error) {
	text, err := f.Fetch(ctx, name)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return Parse(text), nil
}

// Parse splits text into trimmed, non-empty lines, preserving order.
func Parse(text string) []string {
	lines := strings.Split(text, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line) // also drops the \r of CRLF files
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
