package layout

import (
	"github.com/go-drift/spots/pkg/component"
	"github.com/go-drift/spots/pkg/graphics"
)

// Style carries the spacing and inset a spot applies to its layout before
// every computation.
type Style struct {
	ItemSpacing float64
	LineSpacing float64
	Inset       graphics.EdgeInsets
}

// Apply copies the style onto l and marks it as needing layout.
func (s Style) Apply(l *FlowLayout) {
	if l == nil {
		return
	}
	l.ItemSpacing = s.ItemSpacing
	l.LineSpacing = s.LineSpacing
	l.Inset = s.Inset
	l.MarkNeedsLayout()
}

// StyleFromLayout derives a style from a descriptor's layout parameters.
func StyleFromLayout(l component.Layout) Style {
	return Style{
		ItemSpacing: l.ItemSpacing,
		LineSpacing: l.LineSpacing,
		Inset:       l.Inset,
	}
}
