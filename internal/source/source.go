// Package source fetches text resources for the catalog.
//
// A source is either a base URL (the widget's original home, a static web
// directory) or a local directory holding the same files. Both report a
// failed lookup the same way so callers never need to know which one they
// were handed.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// DefaultTimeout bounds a single HTTP fetch.
const DefaultTimeout = 30 * time.Second

// maxBody caps how much of a single resource is read into memory.
const maxBody = 32 * 1024 * 1024

// ErrEmptyBase is returned by Open when no source was configured.
var ErrEmptyBase = errors.New("no source configured")

// Fetcher returns the text of a resource relative to the source root.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (string, error)
	// Resolve returns the location a resource would be fetched from.
	// Used to build links for entries that are not fetched themselves.
	Resolve(name string) string
}

// StatusError reports a resource that was reachable but not served
// successfully. Directory sources use 404 for missing files.
type StatusError struct {
	Name   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: status %d %s", e.Name, e.Status, http.StatusText(e.Status))
}

// IsNotFound reports whether err is a StatusError with a 404 status.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// Open returns an HTTP fetcher for http(s) URLs and a directory fetcher for
// anything else. A timeout of zero uses DefaultTimeout.
func Open(base string, timeout time.Duration) (Fetcher, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil, ErrEmptyBase
	}
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return NewHTTP(base, timeout)
	}
	return NewDir(strings.TrimPrefix(base, "file://"))
}

// HTTP fetches resources relative to a base URL.
type HTTP struct {
	base   *url.URL
	client *http.Client
}

// NewHTTP creates an HTTP fetcher. The base is treated as a directory, so
// "https://example.com/tools" and "https://example.com/tools/" are equivalent.
func NewHTTP(base string, timeout time.Duration) (*HTTP, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTP{
		base:   u,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Resolve returns the absolute URL for name.
func (h *HTTP) Resolve(name string) string {
	ref, err := url.Parse(name)
	if err != nil {
		return h.base.String() + name
	}
	return h.base.ResolveReference(ref).String()
}

// Fetch performs a single GET. There are no retries.
func (h *HTTP) Fetch(ctx context.Context, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Resolve(name), nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", name, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{Name: name, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// Dir fetches resources from a local directory. Access goes through
// os.Root so manifest entries cannot reach outside the directory.
type Dir struct {
	dir string
}

// NewDir creates a directory fetcher. The directory must exist.
func NewDir(dir string) (*Dir, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open source directory: %s is not a directory", dir)
	}
	return &Dir{dir: dir}, nil
}

// Resolve returns the filesystem path for name.
func (d *Dir) Resolve(name string) string {
	return path.Join(d.dir, name)
}

// Fetch reads name from the directory.
func (d *Dir) Fetch(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	root, err := os.OpenRoot(d.dir)
	if err != nil {
		return "", fmt.Errorf("open source directory: %w", err)
	}
	defer root.Close()

	f, err := root.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", &StatusError{Name: name, Status: http.StatusNotFound}
	}
	if err != nil {
		// Escapes and permission failures look like a forbidden resource.
		if errors.Is(err, fs.ErrPermission) || strings.Contains(err.Error(), "escapes") {
			return "", &StatusError{Name: name, Status: http.StatusForbidden}
		}
		return "", fmt.Errorf("fetch %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBody))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
