// Package catalog holds the ordered, read-only list of showcase items.
//
// A Catalog is built once at startup from externally supplied content and is
// never mutated afterwards. Every accessor returns copies.
package catalog

import (
	"errors"
	"fmt"
)

// ID identifies a catalog item for the lifetime of a session.
type ID int64

// Item is one showcase entry.
type Item struct {
	ID          ID       `json:"id" msgpack:"id"`
	Title       string   `json:"title" msgpack:"title"`
	Description string   `json:"description" msgpack:"description"`
	Features    []string `json:"features" msgpack:"features"`
	MediaRef    string   `json:"media_ref,omitempty" msgpack:"media_ref,omitempty"`
}

// HasMedia reports whether the item carries a preview asset reference.
func (it Item) HasMedia() bool { return it.MediaRef != "" }

func (it Item) clone() Item {
	out := it
	if it.Features != nil {
		out.Features = append([]string(nil), it.Features...)
	}
	return out
}

var (
	ErrDuplicateID   = errors.New("catalog: duplicate item id")
	ErrUnknownFormat = errors.New("catalog: unknown bundle format")
	ErrNoMatch       = errors.New("catalog: no matching item")
)

// Catalog is an immutable ordered item list.
type Catalog struct {
	items []Item
	index map[ID]int
}

// New copies items into a new Catalog. Order is preserved.
func New(items ...Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[ID]int, len(items)),
	}
	for _, it := range items {
		if _, dup := c.index[it.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		c.index[it.ID] = len(c.items)
		c.items = append(c.items, it.clone())
	}
	return c, nil
}

// MustNew is New for static content known to be valid.
func MustNew(items ...Item) *Catalog {
	c, err := New(items...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns the items in display order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = it.clone()
	}
	return out
}

// At returns the item at display position i.
func (c *Catalog) At(i int) (Item, bool) {
	if c == nil || i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i].clone(), true
}

func (c *Catalog) Lookup(id ID) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i].clone(), true
}

func (c *Catalog) Contains(id ID) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// IDs returns item ids in display order.
func (c *Catalog) IDs() []ID {
	if c == nil {
		return nil
	}
	out := make([]ID, len(c.items))
	for i, it := range c.items {
		out[i] = it.ID
	}
	return out
}

// Position returns the display index of id, or -1.
func (c *Catalog) Position(id ID) int {
	if c == nil {
		return -1
	}
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}
