package spots

import (
	"github.com/go-drift/spots/pkg/component"
	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/layout"
	"github.com/go-drift/spots/pkg/view"
)

// Carousel scrolls its items horizontally. Items without a width span the
// content width, so one item is visible at a time.
type Carousel struct{ *Base }

// NewCarousel creates a carousel spot for c.
func NewCarousel(c component.Component) Spot {
	return &Carousel{NewBase(c, view.NewScrollable(viewName(c, KindCarousel), layout.Horizontal), layout.Horizontal, carouselSize)}
}

func carouselSize(b *Base, proposed graphics.Size) graphics.Size {
	if proposed.Width == 0 {
		proposed.Width = b.ContentWidth()
	}
	if proposed.Height == 0 {
		proposed.Height = DefaultItemHeight
	}
	return proposed
}

// List stacks full-width rows.
type List struct{ *Base }

// NewList creates a list spot for c.
func NewList(c component.Component) Spot {
	return &List{NewBase(c, view.NewScrollable(viewName(c, KindList), layout.Vertical), layout.Vertical, listSize)}
}

func listSize(b *Base, proposed graphics.Size) graphics.Size {
	proposed.Width = b.ContentWidth()
	if proposed.Height == 0 {
		proposed.Height = DefaultItemHeight
	}
	return proposed
}

// Grid splits the content width into ItemsPerRow equal columns. Items without
// a height are square.
type Grid struct{ *Base }

// NewGrid creates a grid spot for c.
func NewGrid(c component.Component) Spot {
	return &Grid{NewBase(c, view.NewScrollable(viewName(c, KindGrid), layout.Vertical), layout.Vertical, gridSize)}
}

func gridSize(b *Base, proposed graphics.Size) graphics.Size {
	proposed.Width = b.ColumnWidth(b.component.Layout.Columns())
	if proposed.Height == 0 {
		proposed.Height = proposed.Width
	}
	return proposed
}

// Row places its items side by side. Without ItemsPerRow every item shares
// one line.
type Row struct{ *Base }

// NewRow creates a row spot for c.
func NewRow(c component.Component) Spot {
	return &Row{NewBase(c, view.NewScrollable(viewName(c, KindRow), layout.Vertical), layout.Vertical, rowSize)}
}

func rowSize(b *Base, proposed graphics.Size) graphics.Size {
	columns := b.component.Layout.ItemsPerRow
	if columns < 1 {
		columns = len(b.component.Items)
	}
	proposed.Width = b.ColumnWidth(columns)
	if proposed.Height == 0 {
		proposed.Height = DefaultItemHeight
	}
	return proposed
}

// ViewSpot renders into a plain, non-scrolling view that grows to fit its
// items. Declared item sizes are kept.
type ViewSpot struct{ *Base }

// NewViewSpot creates a view spot for c.
func NewViewSpot(c component.Component) Spot {
	return &ViewSpot{NewBase(c, view.New(viewName(c, KindView)), layout.Vertical, nil)}
}

// Generic is the fallback when neither a component's kind nor the registry's
// default kind is registered. It lays items out as full-width rows.
type Generic struct{ *Base }

// NewGeneric creates a generic spot for c.
func NewGeneric(c component.Component) Spot {
	return &Generic{NewBase(c, view.NewScrollable(viewName(c, "generic"), layout.Vertical), layout.Vertical, genericSize)}
}

func genericSize(b *Base, proposed graphics.Size) graphics.Size {
	proposed.Width = b.ContainerWidth()
	if proposed.Height == 0 {
		proposed.Height = DefaultItemHeight
	}
	return proposed
}

func viewName(c component.Component, fallback string) string {
	if c.Title != "" {
		return c.Title
	}
	return fallback
}
