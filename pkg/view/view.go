// Package view models the host views spots are attached to.
//
// A [View] is a headless stand-in for a toolkit view: it has a frame, a
// superview and ordered subviews, and, when scrollable, a content size,
// content offset and pan gesture. Geometry that other parts of the system
// react to is published through [core.Observable] fields so observers get
// both the previous and the new value. A host adapter mirrors these values
// onto real widgets.
package view

import (
	"slices"

	"github.com/go-drift/spots/pkg/core"
	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/layout"
)

// View is a node in the view hierarchy.
type View struct {
	// Name identifies the view in snapshots and debug output.
	Name string
	// Direction is the axis a scrollable view scrolls along.
	Direction layout.Direction
	// Scrollable marks views whose content can be larger than their frame.
	Scrollable bool
	// ScrollEnabled reports whether the view scrolls on its own in response
	// to its pan gesture.
	ScrollEnabled bool
	// ContentInset pads the scrollable content.
	ContentInset graphics.EdgeInsets

	// ContentSize is the size of the scrollable content.
	ContentSize *core.Observable[graphics.Size]
	// ContentOffset is the scroll position.
	ContentOffset *core.Observable[graphics.Offset]
	// Bounds is the visible region in the view's own coordinates: its origin
	// is the content offset and its size the frame size.
	Bounds *core.Observable[graphics.Rect]

	// DidAddSubview is called after a subview is added.
	DidAddSubview func(sub *View)
	// WillRemoveSubview is called before a subview is removed.
	WillRemoveSubview func(sub *View)

	pan       *PanGesture
	frame     graphics.Rect
	superview *View
	subviews  []*View
}

// New creates a plain, non-scrolling view.
func New(name string) *View {
	return &View{
		Name:          name,
		ContentSize:   core.NewObservable(graphics.Size{}),
		ContentOffset: core.NewObservable(graphics.Offset{}),
		Bounds:        core.NewObservable(graphics.Rect{}),
	}
}

// NewScrollable creates a view that scrolls along direction.
func NewScrollable(name string, direction layout.Direction) *View {
	v := New(name)
	v.Direction = direction
	v.Scrollable = true
	v.ScrollEnabled = true
	v.pan = newPanGesture(v)
	return v
}

// Pan returns the view's pan gesture, or nil for non-scrollable views.
func (v *View) Pan() *PanGesture {
	return v.pan
}

// Frame returns the view's frame in its superview's coordinates.
func (v *View) Frame() graphics.Rect {
	return v.frame
}

// SetFrame sets the frame and republishes the bounds size.
func (v *View) SetFrame(frame graphics.Rect) {
	v.frame = frame
	v.Bounds.Set(graphics.RectFromOriginSize(v.ContentOffset.Value(), frame.Size()))
}

// SetContentOffset scrolls the view and republishes the bounds origin.
func (v *View) SetContentOffset(offset graphics.Offset) {
	v.ContentOffset.Set(offset)
	v.Bounds.Set(graphics.RectFromOriginSize(offset, v.frame.Size()))
}

// SetContentSize publishes a new content size.
func (v *View) SetContentSize(size graphics.Size) {
	v.ContentSize.Set(size)
}

// Superview returns the parent view, or nil.
func (v *View) Superview() *View {
	return v.superview
}

// Subviews returns a copy of the subviews in order.
func (v *View) Subviews() []*View {
	return slices.Clone(v.subviews)
}

// Contains reports whether sub is a direct subview of v. Views are compared
// by identity.
func (v *View) Contains(sub *View) bool {
	return slices.Contains(v.subviews, sub)
}

// AddSubview appends sub, detaching it from any previous superview.
func (v *View) AddSubview(sub *View) {
	v.InsertSubview(sub, len(v.subviews))
}

// InsertSubview inserts sub at index, clamped to the valid range. A view that
// is already a subview of v is moved.
func (v *View) InsertSubview(sub *View, index int) {
	if sub == nil || sub == v {
		return
	}
	if sub.superview != nil {
		sub.RemoveFromSuperview()
	}
	index = max(0, min(index, len(v.subviews)))
	v.subviews = slices.Insert(v.subviews, index, sub)
	sub.superview = v
	if v.DidAddSubview != nil {
		v.DidAddSubview(sub)
	}
}

// RemoveFromSuperview detaches v from its superview.
func (v *View) RemoveFromSuperview() {
	parent := v.superview
	if parent == nil {
		return
	}
	if parent.WillRemoveSubview != nil {
		parent.WillRemoveSubview(v)
	}
	parent.subviews = slices.DeleteFunc(parent.subviews, func(s *View) bool { return s == v })
	v.superview = nil
}
