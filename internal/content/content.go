// Package content fetches the text body behind each manifest entry.
//
// A missing or unreachable body never fails the batch. It is replaced with a
// placeholder naming the entry and the file that was tried, so the entry still
// shows up in listings and the filter always has a non-empty string to scan.
package content

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jpl-au/codefind/internal/source"
	"github.com/sourcegraph/conc/pool"
)

// DefaultExt is appended to the sanitised name to build the content filename.
const DefaultExt = ".txt"

// DefaultWorkers bounds the concurrent policy when no limit is configured.
const DefaultWorkers = 8

var whitespace = regexp.MustCompile(`\s+`)

// Sanitize derives the storage key for a name: trimmed, with every run of
// whitespace replaced by a single underscore.
func Sanitize(name string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(name), "_")
}

// Filename returns the content file for name with the given extension.
func Filename(name, ext string) string {
	if ext == "" {
		ext = DefaultExt
	}
	return Sanitize(name) + ext
}

// MissingPlaceholder is the body used when the content file was not served.
func MissingPlaceholder(name, file string) string {
	return fmt.Sprintf("// Error: Could not load code for %s. Check if file %s exists.", name, file)
}

// FetchPlaceholder is the body used when the request itself failed.
func FetchPlaceholder(file string) string {
	return fmt.Sprintf("// Error fetching file: %s", file)
}

// Result is the outcome of loading one entry. Content is always set; Err
// records the contained failure, if any, for logging.
type Result struct {
	Name    string
	File    string
	Content string
	Err     error
}

// Failed reports whether Content is a placeholder.
func (r Result) Failed() bool { return r.Err != nil }

// Load fetches the body for name using the default extension.
func Load(ctx context.Context, f source.Fetcher, name string) string {
	return load(ctx, f, name, DefaultExt).Content
}

func load(ctx context.Context, f source.Fetcher, name, ext string) Result {
	file := Filename(name, ext)
	r := Result{Name: name, File: file}

	body, err := f.Fetch(ctx, file)
	switch {
	case err == nil:
		r.Content = body
	case isStatus(err):
		r.Content = MissingPlaceholder(name, file)
		r.Err = err
	default:
		r.Content = FetchPlaceholder(file)
		r.Err = err
	}
	return r
}

func isStatus(err error) bool {
	var se *source.StatusError
	return errors.As(err, &se)
}

// Policy selects how a batch of entries is fetched.
type Policy int

const (
	// Sequential fetches one entry at a time in manifest order. Each entry
	// is reported as soon as it completes, so a slow network shows a list
	// that grows from the top.
	Sequential Policy = iota
	// Concurrent fetches up to Workers entries at once. Results are put
	// back in manifest order and reported only after the whole batch is in.
	Concurrent
)

// String returns the policy name used in config and logs.
func (p Policy) String() string {
	if p == Concurrent {
		return "concurrent"
	}
	return "sequential"
}

// Reporter receives progress updates while a batch loads.
type Reporter interface {
	Increment()
	Print()
	Done()
}

// Loader fetches bodies for a batch of names.
type Loader struct {
	Fetcher source.Fetcher
	Ext     string
	Policy  Policy
	Workers int

	// Progress is optional.
	Progress Reporter

	// OnResult, if set, is called once per entry in manifest order.
	OnResult func(index int, r Result)
}

// LoadAll returns one Result per name, in the order of names.
func (l *Loader) LoadAll(ctx context.Context, names []string) []Result {
	var results []Result
	if l.Policy == Concurrent {
		results = l.loadConcurrent(ctx, names)
	} else {
		results = l.loadSequential(ctx, names)
	}
	if l.Progress != nil {
		l.Progress.Done()
	}
	return results
}

func (l *Loader) loadSequential(ctx context.Context, names []string) []Result {
	results := make([]Result, len(names))
	for i, name := range names {
		results[i] = load(ctx, l.Fetcher, name, l.Ext)
		l.tick()
		if l.OnResult != nil {
			l.OnResult(i, results[i])
		}
	}
	return results
}

func (l *Loader) loadConcurrent(ctx context.Context, names []string) []Result {
	workers := l.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	// Each goroutine owns exactly one slot, so no locking is needed for
	// results; progress updates are funnelled through a channel.
	results := make([]Result, len(names))
	done := make(chan struct{}, len(names))
	p := pool.New().WithMaxGoroutines(workers)
	for i, name := range names {
		p.Go(func() {
			results[i] = load(ctx, l.Fetcher, name, l.Ext)
			done <- struct{}{}
		})
	}

	finished := make(chan struct{})
	go func() {
		for range done {
			l.tick()
		}
		close(finished)
	}()
	p.Wait()
	close(done)
	<-finished

	if l.OnResult != nil {
		for i := range results {
			l.OnResult(i, results[i])
		}
	}
	return results
}

func (l *Loader) tick() {
	if l.Progress == nil {
		return
	}
	l.Progress.Increment()
	l.Progress.Print()
}
