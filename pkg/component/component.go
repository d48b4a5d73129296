// Package component defines the declarative descriptors that spots are built from.
//
// A [Component] describes one region of a screen: which kind of spot renders it,
// its items, and its layout parameters. Descriptors are plain values. They are
// usually decoded from a YAML or JSON payload with [Decode] and handed to a
// registry, which resolves them into live spots.
package component

import (
	"maps"
	"slices"

	"github.com/go-drift/spots/pkg/graphics"
)

// Item is one element of a component.
type Item struct {
	Title    string        `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle string        `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Text     string        `yaml:"text,omitempty" json:"text,omitempty"`
	Image    string        `yaml:"image,omitempty" json:"image,omitempty"`
	Kind     string        `yaml:"kind,omitempty" json:"kind,omitempty"`
	Action   string        `yaml:"action,omitempty" json:"action,omitempty"`
	Size     graphics.Size `yaml:"size,omitempty" json:"size"`
	// Index is the item's position in its component. It is rewritten on every
	// structural mutation.
	Index int `yaml:"-" json:"index"`
}

// Equal reports whether two items have the same title, kind, size and index.
func (i Item) Equal(other Item) bool {
	return i.Title == other.Title &&
		i.Kind == other.Kind &&
		i.Size == other.Size &&
		i.Index == other.Index
}

// Layout holds the layout parameters of a component.
type Layout struct {
	// ItemsPerRow is the number of items per row (grid) or per column group
	// (carousel). Values below 1 are treated as 1.
	ItemsPerRow int                 `yaml:"itemsPerRow,omitempty" json:"itemsPerRow"`
	Inset       graphics.EdgeInsets `yaml:"inset,omitempty" json:"inset"`
	ItemSpacing float64             `yaml:"itemSpacing,omitempty" json:"itemSpacing"`
	LineSpacing float64             `yaml:"lineSpacing,omitempty" json:"lineSpacing"`
}

// Columns returns ItemsPerRow clamped to at least 1.
func (l Layout) Columns() int {
	if l.ItemsPerRow < 1 {
		return 1
	}
	return l.ItemsPerRow
}

// Component is the declarative description of a spot.
type Component struct {
	Title  string            `yaml:"title,omitempty" json:"title,omitempty"`
	Kind   string            `yaml:"kind,omitempty" json:"kind"`
	Header *Item             `yaml:"header,omitempty" json:"header,omitempty"`
	Footer *Item             `yaml:"footer,omitempty" json:"footer,omitempty"`
	Items  []Item            `yaml:"items,omitempty" json:"items"`
	Layout Layout            `yaml:"layout,omitempty" json:"layout"`
	Meta   map[string]string `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// Clone returns a deep copy of c.
func (c Component) Clone() Component {
	out := c
	out.Items = slices.Clone(c.Items)
	out.Meta = maps.Clone(c.Meta)
	if c.Header != nil {
		h := *c.Header
		out.Header = &h
	}
	if c.Footer != nil {
		f := *c.Footer
		out.Footer = &f
	}
	return out
}

// Count returns the number of items.
func (c *Component) Count() int {
	return len(c.Items)
}

// Item returns the item at index.
func (c *Component) Item(index int) (Item, bool) {
	if index < 0 || index >= len(c.Items) {
		return Item{}, false
	}
	return c.Items[index], true
}

// ItemByTitle returns the first item with the given title.
func (c *Component) ItemByTitle(title string) (Item, bool) {
	for _, item := range c.Items {
		if item.Title == title {
			return item, true
		}
	}
	return Item{}, false
}

// Append adds items to the end.
func (c *Component) Append(items ...Item) {
	c.Items = append(c.Items, items...)
	c.Reindex()
}

// Prepend adds items to the front, keeping their relative order.
func (c *Component) Prepend(items ...Item) {
	c.Items = slices.Insert(c.Items, 0, items...)
	c.Reindex()
}

// Insert adds items before index. An index equal to Count appends.
// Returns false if index is out of range.
func (c *Component) Insert(index int, items ...Item) bool {
	if index < 0 || index > len(c.Items) {
		return false
	}
	c.Items = slices.Insert(c.Items, index, items...)
	c.Reindex()
	return true
}

// Delete removes the item at index. Returns false if index is out of range.
func (c *Component) Delete(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = slices.Delete(c.Items, index, index+1)
	c.Reindex()
	return true
}

// Update replaces the item at index. Returns false if index is out of range.
func (c *Component) Update(index int, item Item) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	item.Index = index
	c.Items[index] = item
	return true
}

// Reload replaces all items.
func (c *Component) Reload(items []Item) {
	c.Items = slices.Clone(items)
	c.Reindex()
}

// Reindex sets every item's Index to its position.
func (c *Component) Reindex() {
	for i := range c.Items {
		c.Items[i].Index = i
	}
}
