// Package guide provides the embedded help pages shown by "codefind guide"
// and the MCP guide tool.
package guide

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed *.md
var files embed.FS

// Main is the index page returned for an empty topic.
const Main = "guide"

// ErrUnknownTopic is returned for a topic with no page.
var ErrUnknownTopic = errors.New("unknown guide topic")

// Get returns a guide page. Topics are matched case-insensitively, so
// "Find" and "find" both work.
func Get(topic string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(topic))
	if name == "" {
		name = Main
	}
	if strings.ContainsAny(name, `/\.`) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	data, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}
	return string(data), nil
}

// List returns the topic names, sorted, without the main page.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != Main {
			names = append(names, name)
		}
	}
	return names, nil
}
