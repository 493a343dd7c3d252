// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// loading and filtering while this package handles presentation concerns
// like display names, column alignment and match excerpts.
package format

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jpl-au/codefind/internal/item"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// knownExts are stripped from the end of a name before display.
var knownExts = []string{".html", ".htm", ".txt"}

// separators are shown as spaces.
var separators = strings.NewReplacer("-", " ", "_", " ")

var upper = cases.Upper(language.Und)

// DisplayName turns a manifest entry into a human-readable title:
// "get-http-client.html" becomes "Get Http Client". Only the first letter
// of each whitespace-delimited word changes; separators and the rest of
// each word keep their form.
func DisplayName(raw string) string {
	name := raw
	for _, ext := range knownExts {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	name = separators.Replace(name)

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := true
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune(r)
			prevSpace = true
		case prevSpace:
			b.WriteString(upper.String(string(r)))
			prevSpace = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SnippetTitle is the heading used for content entries, which only turn
// underscores into spaces and keep their own casing.
func SnippetTitle(raw string) string {
	return strings.ReplaceAll(raw, "_", " ")
}

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// Titler returns the display title for an entry.
type Titler func(raw string) string

// List prints one title per line.
func List(w io.Writer, items []item.Item, title Titler) error {
	for _, it := range items {
		fmt.Fprintln(w, title(it.Name))
	}
	return nil
}

// Names prints just the raw manifest entries, one per line.
func Names(w io.Writer, items []item.Item) error {
	for _, it := range items {
		fmt.Fprintln(w, it.Name)
	}
	return nil
}

// Links prints each title followed by the location it links to.
func Links(w io.Writer, items []item.Item, title Titler, resolve func(string) string) error {
	if len(items) == 0 {
		return nil
	}
	maxTitle := 0
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = title(it.Name)
		if n := utf8.RuneCountInString(titles[i]); n > maxTitle {
			maxTitle = n
		}
	}
	for i, it := range items {
		fmt.Fprintf(w, "%-*s  %s\n", maxTitle, titles[i], resolve(it.Name))
	}
	return nil
}

// Long prints entries with their key and content size.
//
// Column order is SIZE, KEY, NAME. Fixed-width columns come first so
// they align; the free-form name goes last.
func Long(w io.Writer, items []item.Item) error {
	if len(items) == 0 {
		return nil
	}

	maxKey := 3 // minimum "KEY"
	for _, it := range items {
		if len(it.Key) > maxKey {
			maxKey = len(it.Key)
		}
	}

	fmt.Fprintf(w, "%6s  %-*s  %s\n", "SIZE", maxKey, "KEY", "NAME")
	for _, it := range items {
		size := "-"
		if it.HasContent {
			size = humanSize(int64(len(it.Content)))
		}
		fmt.Fprintf(w, "%6s  %-*s  %s\n", size, maxKey, it.Key, it.Name)
	}
	return nil
}

// SearchResults prints matches. Entries with content show each matching
// line as name:line: text; entries matched on their name alone print the
// title only.
func SearchResults(w io.Writer, items []item.Item, query string, title Titler) error {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, it := range items {
		if !it.HasContent || q == "" {
			fmt.Fprintln(w, title(it.Name))
			continue
		}
		lines := strings.Split(it.Content, "\n")
		shown := false
		for i, line := range lines {
			if strings.Contains(strings.ToLower(line), q) {
				fmt.Fprintf(w, "%s:%d: %s\n", it.Name, i+1, excerpt(line))
				shown = true
			}
		}
		if !shown {
			fmt.Fprintln(w, title(it.Name))
		}
	}
	return nil
}

// excerpt trims a line for single-line display.
func excerpt(line string) string {
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) <= 80 {
		return line
	}
	r := []rune(line)
	return string(r[:77]) + "..."
}

// Message prints a status line such as "no results".
func Message(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}
