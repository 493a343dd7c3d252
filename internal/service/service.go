// Package service defines the catalog operations commands depend on.
// Commands and extensions take this interface rather than *catalog.Service
// so they can be tested against a fixed set of items.
package service

import (
	"context"

	"github.com/jpl-au/codefind/internal/catalog"
	"github.com/jpl-au/codefind/internal/filter"
	"github.com/jpl-au/codefind/internal/item"
	"github.com/jpl-au/codefind/internal/variant"
)

// Service defines all catalog operations.
//
// Obtain one with catalog.New and load it before use:
//
//	svc, err := catalog.New(catalog.Options{Source: base})
//	if err != nil {
//	    return err
//	}
//	if err := svc.Load(ctx); err != nil {
//	    return err
//	}
//	matches := svc.Search("http")
type Service interface {
	// Load fetches the manifest and any bodies, then freezes the catalog.
	// Returns *manifest.LoadError when the manifest is unavailable and
	// catalog.ErrAlreadyLoaded on a second call.
	Load(ctx context.Context, opts ...catalog.LoadOption) error

	// Loaded reports whether Load has finished.
	Loaded() bool

	// Source returns the base URL or directory the catalog reads from.
	Source() string

	// Variant returns the catalog variant.
	Variant() variant.Variant

	// Items returns every item in manifest order.
	Items() []item.Item

	// Len returns the number of loaded items.
	Len() int

	// Item looks up an item by name or sanitised key.
	// Returns item.ErrNotFound when nothing matches.
	Item(name string) (item.Item, error)

	// Search returns items matching query, in manifest order. An empty
	// query returns everything.
	Search(query string) []item.Item

	// Visible returns one flag per item for query.
	Visible(query string) []bool

	// Outcome tells "nothing loaded" apart from "nothing matched".
	Outcome(query string) filter.State

	// Title returns the display title for an item.
	Title(it item.Item) string

	// Resolve returns the URL or path an item points at.
	Resolve(it item.Item) string
}

var _ Service = (*catalog.Service)(nil)
