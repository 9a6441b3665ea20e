// Package items defines list items, the ordered collection the list navigates,
// and the providers that supply them.
package items

import "errors"

// ErrDuplicateID is returned by providers when two items share an id.
var ErrDuplicateID = errors.New("duplicate item id")

// ContentFunc renders custom item content. keyword is the active search
// keyword, always empty until find-as-you-type exists.
type ContentFunc func(keyword string, item Item) string

// Item is a single navigable row.
type Item struct {
	ID          string      `yaml:"id"          json:"id"`
	Label       string      `yaml:"label"       json:"label"`
	Icon        string      `yaml:"icon"        json:"icon,omitempty"`
	Placeholder string      `yaml:"placeholder" json:"placeholder,omitempty"`
	Disabled    bool        `yaml:"disabled"    json:"disabled,omitempty"`
	Content     ContentFunc `yaml:"-"           json:"-"`
}

// Collection is an immutable ordered set of items with an id index.
// Lookups are first-match; duplicate ids are not supported.
type Collection struct {
	items []Item
	index map[string]int
}

// NewCollection copies items into a collection.
func NewCollection(list []Item) *Collection {
	c := &Collection{
		items: make([]Item, len(list)),
		index: make(map[string]int, len(list)),
	}
	copy(c.items, list)
	for i, it := range c.items {
		if _, seen := c.index[it.ID]; !seen {
			c.index[it.ID] = i
		}
	}
	return c
}

// Len returns the number of items.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at i. ok is false when i is out of range.
func (c *Collection) At(i int) (Item, bool) {
	if c == nil || i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// ID returns the id at i, or "" when out of range.
func (c *Collection) ID(i int) string {
	it, _ := c.At(i)
	return it.ID
}

// Disabled reports whether the item at i is disabled.
func (c *Collection) Disabled(i int) bool {
	it, _ := c.At(i)
	return it.Disabled
}

// Index returns the first index holding id, or -1.
func (c *Collection) Index(id string) int {
	if c == nil {
		return -1
	}
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// IDs returns every id in item order.
func (c *Collection) IDs() []string {
	ids := make([]string, c.Len())
	for i := range ids {
		ids[i] = c.items[i].ID
	}
	return ids
}

// Items returns a copy of the underlying items.
func (c *Collection) Items() []Item {
	out := make([]Item, c.Len())
	copy(out, c.items)
	return out
}
