// Package catalog ties a source, a variant and an item collection together.
//
// A Service is the unit commands work with: it loads the manifest, fetches
// bodies when the variant wants them, freezes the result and then answers
// list, lookup and search requests. Each Service owns its collection, so
// several catalogs can be open in one process.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jpl-au/codefind/internal/content"
	"github.com/jpl-au/codefind/internal/filter"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/manifest"
	"github.com/jpl-au/codefind/internal/source"
	"github.com/jpl-au/codefind/internal/variant"
)

// ErrAlreadyLoaded is returned by a second call to Load.
var ErrAlreadyLoaded = errors.New("catalog already loaded")

// Options configures a Service.
type Options struct {
	Source   string // base URL or directory
	Variant  string // variant name, empty for the default
	Manifest string // manifest override, empty for the variant's own
	Policy   content.Policy
	Workers  int
	Timeout  time.Duration

	// Fetcher replaces the fetcher Source would open.
	Fetcher source.Fetcher
}

// Service is a loaded (or loading) catalog.
type Service struct {
	src     string
	fetcher source.Fetcher
	variant variant.Variant
	policy  content.Policy
	workers int
	items   *item.Collection

	mu      sync.Mutex
	loading bool
	loadErr error
}

// New creates a Service. It does not touch the network; call Load.
func New(opts Options) (*Service, error) {
	v, err := variant.Get(opts.Variant)
	if err != nil {
		return nil, err
	}
	v = v.WithManifest(opts.Manifest)

	f := opts.Fetcher
	if f == nil {
		f, err = source.Open(opts.Source, opts.Timeout)
		if err != nil {
			return nil, err
		}
	}
	return &Service{
		src:     opts.Source,
		fetcher: f,
		variant: v,
		policy:  opts.Policy,
		workers: opts.Workers,
		items:   item.NewCollection(),
	}, nil
}

// LoadOption customises a single Load call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	progress func(total int) content.Reporter
	onItem   func(index int, it item.Item)
	onList   func(names []string)
}

// WithProgress reports body fetches to the Reporter returned by fn, which
// is called once the manifest size is known.
func WithProgress(fn func(total int) content.Reporter) LoadOption {
	return func(c *loadConfig) { c.progress = fn }
}

// WithItem calls fn for each item as it joins the collection, in manifest order.
func WithItem(fn func(index int, it item.Item)) LoadOption {
	return func(c *loadConfig) { c.onItem = fn }
}

// WithManifest calls fn with the parsed manifest before any body is fetched.
func WithManifest(fn func(names []string)) LoadOption {
	return func(c *loadConfig) { c.onList = fn }
}

// Load fetches the manifest and, for content variants, every body. The
// collection is frozen when Load returns, whatever the outcome. A manifest
// failure is returned as *manifest.LoadError; body failures never are.
func (s *Service) Load(ctx context.Context, opts ...LoadOption) error {
	s.mu.Lock()
	if s.loading || s.items.Frozen() {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.loading = true
	s.mu.Unlock()

	err := s.load(ctx, opts)

	s.mu.Lock()
	s.loadErr = err
	s.loading = false
	s.mu.Unlock()
	s.items.Freeze()
	return err
}

func (s *Service) load(ctx context.Context, opts []LoadOption) error {
	var cfg loadConfig
	for _, o := range opts {
		o(&cfg)
	}

	names, err := manifest.Load(ctx, s.fetcher, s.variant.Manifest)
	if err != nil {
		return err
	}
	if cfg.onList != nil {
		cfg.onList(names)
	}

	add := func(i int, it item.Item) {
		// The collection is ours and unfrozen until load returns.
		_ = s.items.Append(it)
		if cfg.onItem != nil {
			cfg.onItem(i, it)
		}
	}

	if !s.variant.LoadContent {
		for i, name := range names {
			add(i, item.New(name))
		}
		return nil
	}

	l := &content.Loader{
		Fetcher: s.fetcher,
		Policy:  s.policy,
		Workers: s.workers,
		OnResult: func(i int, r content.Result) {
			if r.Failed() {
				slog.Debug("content unavailable", "item", r.Name, "file", r.File, "error", r.Err)
			}
			add(i, item.New(r.Name).WithContent(r.Content))
		},
	}
	if cfg.progress != nil {
		l.Progress = cfg.progress(len(names))
	}
	l.LoadAll(ctx, names)
	return nil
}

// Err returns the error from the last Load, if any.
func (s *Service) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Loaded reports whether Load has finished.
func (s *Service) Loaded() bool {
	return s.items.Frozen()
}

// Source returns the configured source.
func (s *Service) Source() string { return s.src }

// Variant returns the variant in use.
func (s *Service) Variant() variant.Variant { return s.variant }

// Items returns every item in manifest order.
func (s *Service) Items() []item.Item { return s.items.Items() }

// Len returns the number of loaded items.
func (s *Service) Len() int { return s.items.Len() }

// Item returns the item with the given name or key.
func (s *Service) Item(name string) (item.Item, error) {
	return s.items.Get(name)
}

// Search returns the items matching query over the variant's fields.
func (s *Service) Search(query string) []item.Item {
	return filter.Filter(s.items.Items(), query, s.variant.Fields)
}

// Visible returns one visibility flag per item for query.
func (s *Service) Visible(query string) []bool {
	return filter.Visible(s.items.Items(), query, s.variant.Fields)
}

// Outcome classifies the result of searching for query.
func (s *Service) Outcome(query string) filter.State {
	return filter.Outcome(s.items.Len(), len(s.Search(query)), query)
}

// Title returns the display title of it for this variant.
func (s *Service) Title(it item.Item) string {
	return s.variant.Title(it.Name)
}

// Resolve returns where it lives: the link target for link variants, the
// content file otherwise.
func (s *Service) Resolve(it item.Item) string {
	if s.variant.Links {
		return s.fetcher.Resolve(it.Name)
	}
	return s.fetcher.Resolve(content.Filename(it.Name, content.DefaultExt))
}
