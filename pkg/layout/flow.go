// Package layout computes item frames and content size for a spot.
//
// [FlowLayout] lays out items in one of two scroll directions. Vertical layouts
// flow items left to right and wrap into lines that stack downward. Horizontal
// layouts group every ItemsPerRow items into a column block and advance to the
// right one block at a time, which is how carousels with several rows scroll.
//
// A FlowLayout is a plain value holder: set its inputs, call Prepare, then read
// ContentSize and Frames. Prepare is deterministic, so calling it again with
// unchanged inputs yields identical results.
package layout

import (
	"slices"

	"github.com/go-drift/spots/pkg/graphics"
)

// Direction is the axis along which a layout scrolls.
type Direction int

const (
	// Vertical scrolls top to bottom. It is the zero value.
	Vertical Direction = iota
	// Horizontal scrolls left to right.
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// FlowLayout holds layout inputs and the cached results of the last Prepare.
type FlowLayout struct {
	Direction Direction
	// ItemSizes holds the size of each item, in order.
	ItemSizes []graphics.Size
	// ItemsPerRow is clamped to at least 1 during Prepare.
	ItemsPerRow  int
	Inset        graphics.EdgeInsets
	ItemSpacing  float64
	LineSpacing  float64
	HeaderHeight float64
	FooterHeight float64
	// ContainerSize is the size of the view the layout is displayed in.
	ContainerSize graphics.Size

	contentSize graphics.Size
	frames      []graphics.Rect
	needsLayout bool
	prepared    bool
}

// MarkNeedsLayout flags the cached results as stale.
func (l *FlowLayout) MarkNeedsLayout() {
	l.needsLayout = true
}

// NeedsLayout reports whether Prepare has not run since the last MarkNeedsLayout.
func (l *FlowLayout) NeedsLayout() bool {
	return l.needsLayout || !l.prepared
}

// Columns returns ItemsPerRow clamped to at least 1.
func (l *FlowLayout) Columns() int {
	if l.ItemsPerRow < 1 {
		return 1
	}
	return l.ItemsPerRow
}

// Prepare recomputes content size and frames from the current inputs.
func (l *FlowLayout) Prepare() {
	var natural []graphics.Rect
	var naturalHeight float64
	if l.Direction == Horizontal {
		natural = l.horizontalNatural()
	} else {
		natural, naturalHeight = l.verticalNatural()
	}

	l.contentSize = l.computeContentSize(naturalHeight)
	l.frames = l.placeFrames(natural)
	l.needsLayout = false
	l.prepared = true
}

// ContentSize returns the size computed by the last Prepare.
func (l *FlowLayout) ContentSize() graphics.Size {
	return l.contentSize
}

// Frames returns a copy of the item frames computed by the last Prepare.
func (l *FlowLayout) Frames() []graphics.Rect {
	return slices.Clone(l.frames)
}

// FrameAt returns the frame of the item at index.
func (l *FlowLayout) FrameAt(index int) (graphics.Rect, bool) {
	if index < 0 || index >= len(l.frames) {
		return graphics.Rect{}, false
	}
	return l.frames[index], true
}

// IndexesInRect returns the indexes of items whose frames intersect rect.
func (l *FlowLayout) IndexesInRect(rect graphics.Rect) []int {
	var out []int
	for i, f := range l.frames {
		if f.Right > rect.Left && f.Left < rect.Right && f.Bottom > rect.Top && f.Top < rect.Bottom {
			out = append(out, i)
		}
	}
	return out
}

// ShouldInvalidate reports whether a bounds change to newBounds requires a new
// layout. Only a height that differs from the container height plus the header
// and footer offset counts.
func (l *FlowLayout) ShouldInvalidate(newBounds graphics.Size) bool {
	offset := l.HeaderHeight + l.FooterHeight
	return newBounds.Height != l.ContainerSize.Height+offset
}

func (l *FlowLayout) computeContentSize(naturalHeight float64) graphics.Size {
	var size graphics.Size
	columns := l.Columns()

	switch l.Direction {
	case Horizontal:
		if len(l.ItemSizes) > 0 {
			first := l.ItemSizes[0]
			size.Height = first.Height * float64(columns)
			// A single trailing item forms its own row.
			if len(l.ItemSizes)%columns == 1 {
				size.Width += first.Width + l.LineSpacing
			}
		}
		for i, item := range l.ItemSizes {
			if completesRow(i, columns) {
				size.Width += item.Width + l.ItemSpacing
			}
		}
		size.Height += l.HeaderHeight + l.FooterHeight
		// Remove the spacing added after the last row, but never below zero
		// when no row contributed.
		if size.Width > 0 {
			size.Width -= l.ItemSpacing
		}
		size.Width += l.Inset.Right
	default:
		size.Width = l.ContainerSize.Width
		size.Height = naturalHeight + l.HeaderHeight + l.FooterHeight
	}

	size.Height += l.Inset.Top + l.Inset.Bottom
	return size
}

func (l *FlowLayout) placeFrames(natural []graphics.Rect) []graphics.Rect {
	frames := make([]graphics.Rect, len(natural))
	if l.Direction != Horizontal {
		for i, f := range natural {
			frames[i] = f.Translate(0, l.HeaderHeight)
		}
		return frames
	}

	columns := l.Columns()
	nextX := l.Inset.Left
	nextY := 0.0
	for i, f := range natural {
		origin := f.Origin()
		if columns > 1 {
			if i%columns == 0 {
				origin.Y += l.Inset.Top + l.HeaderHeight
			} else {
				origin.Y = nextY
			}
		} else {
			origin.Y += l.HeaderHeight
		}
		origin.X = nextX
		frame := f.WithOrigin(origin)
		frames[i] = frame

		if completesRow(i, columns) {
			nextX += frame.Width() + l.ItemSpacing
			nextY = 0
		} else {
			nextY = frame.Bottom
		}
	}
	return frames
}

// horizontalNatural returns unpositioned frames; placeFrames assigns origins.
func (l *FlowLayout) horizontalNatural() []graphics.Rect {
	frames := make([]graphics.Rect, len(l.ItemSizes))
	for i, s := range l.ItemSizes {
		frames[i] = graphics.RectFromLTWH(0, 0, s.Width, s.Height)
	}
	return frames
}

// verticalNatural flows items into lines within the container width. It
// returns frames starting at the top-left inset and the height of all lines
// including line spacing, excluding insets.
func (l *FlowLayout) verticalNatural() ([]graphics.Rect, float64) {
	frames := make([]graphics.Rect, len(l.ItemSizes))
	if len(l.ItemSizes) == 0 {
		return frames, 0
	}

	limit := l.ContainerSize.Width - l.Inset.Right
	x := l.Inset.Left
	y := l.Inset.Top
	lineHeight := 0.0
	lineCount := 0
	total := 0.0

	for i, s := range l.ItemSizes {
		if lineCount > 0 && x+s.Width > limit+epsilon {
			total += lineHeight + l.LineSpacing
			y += lineHeight + l.LineSpacing
			x = l.Inset.Left
			lineHeight = 0
			lineCount = 0
		}
		frames[i] = graphics.RectFromLTWH(x, y, s.Width, s.Height)
		x += s.Width + l.ItemSpacing
		lineHeight = max(lineHeight, s.Height)
		lineCount++
	}
	total += lineHeight
	return frames, total
}

const epsilon = 0.0001

func completesRow(index, columns int) bool {
	return index%columns == columns-1 || columns == 1
}
