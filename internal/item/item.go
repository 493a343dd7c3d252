// Package item defines the catalog entry and the ordered collection that
// holds them for the life of a session.
package item

import (
	"errors"
	"sync"

	"github.com/jpl-au/codefind/internal/content"
)

var (
	// ErrFrozen is returned by Append once loading has finished.
	ErrFrozen = errors.New("collection is frozen")
	// ErrNotFound is returned when no entry has the requested name.
	ErrNotFound = errors.New("item not found")
)

// Item is one searchable entry. Content is empty only for variants that do
// not load bodies; a failed load stores a placeholder instead.
type Item struct {
	Name       string // manifest line, trimmed
	Key        string // sanitised name used to build the content path
	Content    string
	HasContent bool
}

// New builds an item without content.
func New(name string) Item {
	return Item{Name: name, Key: content.Sanitize(name)}
}

// WithContent returns a copy of the item carrying body.
func (it Item) WithContent(body string) Item {
	it.Content = body
	it.HasContent = true
	return it
}

// Collection is an ordered, append-only list of items. It is populated once
// while loading and then frozen; after that it is safe to read from any
// goroutine.
type Collection struct {
	mu     sync.RWMutex
	items  []Item
	frozen bool
}

// NewCollection returns an empty, unfrozen collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Append adds an item at the end.
func (c *Collection) Append(it Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return ErrFrozen
	}
	c.items = append(c.items, it)
	return nil
}

// Freeze ends the loading phase. Calling it twice is harmless.
func (c *Collection) Freeze() {
	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
}

// Frozen reports whether loading has finished.
func (c *Collection) Frozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

// Len returns the number of items.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Items returns a copy of the items in insertion order.
func (c *Collection) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the first item whose name or key equals name.
func (c *Collection) Get(name string) (Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := content.Sanitize(name)
	for _, it := range c.items {
		if it.Name == name || it.Key == key {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}
