// Package catalogtest builds loaded catalogs over temporary directories for
// tests in other packages.
package catalogtest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/codefind/internal/catalog"
)

// Dir writes files into a new temporary directory and returns its path.
func Dir(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// New returns a loaded catalog of the given variant over files.
func New(t testing.TB, variant string, files map[string]string) *catalog.Service {
	t.Helper()
	svc, err := catalog.New(catalog.Options{Source: Dir(t, files), Variant: variant})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return svc
}

// Snippets is a small content catalog: two bodies and one missing file.
func Snippets(t testing.TB) *catalog.Service {
	return New(t, "snippets", map[string]string{
		"code_modul.txt":  "Card Layout\nButton\nMissing One\n",
		"Card_Layout.txt": "<div class=\"card\">\n  <p>Hello</p>\n</div>\n",
		"Button.txt":      "<button>Go</button>\n",
	})
}

// Codes is a small link catalog.
func Codes(t testing.TB) *catalog.Service {
	return New(t, "codes", map[string]string{
		"codes.txt": "get-http-client.html\njson_parser.html\nhttp_server.html\n",
	})
}
