package spots

import (
	"slices"

	"github.com/go-drift/spots/pkg/component"
	"github.com/go-drift/spots/pkg/core"
	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/scroll"
)

// Controller resolves descriptors into spots and stacks their views in a
// single [scroll.ScrollView].
type Controller struct {
	// Changed is notified after spots are added, removed or reloaded.
	Changed *core.Notifier

	registry   *Registry
	scrollView *scroll.ScrollView
	spots      []Spot
}

// NewController resolves components with reg, or [DefaultRegistry] when reg
// is nil, and adds every spot's view to a new scroll view.
func NewController(reg *Registry, components []component.Component) *Controller {
	if reg == nil {
		reg = DefaultRegistry
	}
	c := &Controller{
		Changed:    core.NewNotifier(),
		registry:   reg,
		scrollView: scroll.New("spots"),
	}
	for _, comp := range components {
		c.Append(comp)
	}
	return c
}

// ScrollView returns the container holding the spots' views.
func (c *Controller) ScrollView() *scroll.ScrollView {
	return c.scrollView
}

// Spots returns the spots in display order.
func (c *Controller) Spots() []Spot {
	return slices.Clone(c.spots)
}

// SpotAt returns the spot at index.
func (c *Controller) SpotAt(index int) (Spot, bool) {
	if index < 0 || index >= len(c.spots) {
		return nil, false
	}
	return c.spots[index], true
}

// Components returns the current descriptors of all spots, in order.
func (c *Controller) Components() []component.Component {
	out := make([]component.Component, len(c.spots))
	for i, s := range c.spots {
		out[i] = s.Component().Clone()
	}
	return out
}

// Append resolves comp and adds it below the existing spots.
func (c *Controller) Append(comp component.Component) Spot {
	spot, _ := c.Insert(len(c.spots), comp)
	return spot
}

// Insert resolves comp and places it at index. It reports false if index is
// out of range.
func (c *Controller) Insert(index int, comp component.Component) (Spot, bool) {
	if index < 0 || index > len(c.spots) {
		return nil, false
	}
	spot := c.registry.Resolve(comp)
	c.spots = slices.Insert(c.spots, index, spot)
	c.scrollView.InsertChild(spot.View(), index)
	c.Changed.Notify()
	return spot, true
}

// Remove detaches and disposes the spot at index.
func (c *Controller) Remove(index int) bool {
	spot, ok := c.SpotAt(index)
	if !ok {
		return false
	}
	c.spots = slices.Delete(c.spots, index, index+1)
	c.scrollView.RemoveChild(spot.View())
	spot.Dispose()
	c.Changed.Notify()
	return true
}

// Reload replaces every spot with spots resolved from components.
func (c *Controller) Reload(components []component.Component) {
	for len(c.spots) > 0 {
		c.Remove(len(c.spots) - 1)
	}
	for _, comp := range components {
		c.Append(comp)
	}
}

// SetViewport resizes the scroll view. Spots relayout against the new width.
func (c *Controller) SetViewport(size graphics.Size) {
	c.scrollView.SetFrame(graphics.RectFromOriginSize(graphics.Offset{}, size))
}
