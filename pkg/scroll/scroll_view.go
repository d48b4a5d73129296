// Package scroll presents a stack of independently sized scrollable regions as
// one continuous scroll surface.
//
// A [ScrollView] owns a content view. Every view added to it is stacked below
// the previous one. Vertically scrolling children lose their own scrolling: the
// ScrollView pins each of them to the visible region and drives its content
// offset from the outer offset, so their content reads as part of one long
// page. Horizontally scrolling children (carousels) keep their own horizontal
// scrolling and are laid out at their full content height.
//
// The ScrollView watches each child's content size, content offset and bounds
// and lays everything out again when one of them changes by at least one
// point. Changes below that are ignored, which also stops a layout pass from
// retriggering itself through the values it just wrote.
package scroll

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-drift/spots/pkg/errors"
	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/layout"
	"github.com/go-drift/spots/pkg/view"
)

// ScrollView synchronizes child scroll views into a single scroll surface.
type ScrollView struct {
	*view.View

	// ContentView holds the children. Adding or removing its subviews directly
	// is equivalent to AddChild and RemoveChild.
	ContentView *view.View
	// MinimumContentHeight is the smallest content height reported.
	MinimumContentHeight float64

	subviewsInLayoutOrder []*view.View
	bindings              map[*view.View]*binding
	layoutPasses          int
}

// binding holds the unsubscribe functions of one observed child.
type binding struct {
	unsubscribe []func()
}

func (b *binding) release() {
	for _, unsub := range b.unsubscribe {
		unsub()
	}
	b.unsubscribe = nil
}

// New creates an empty ScrollView.
func New(name string) *ScrollView {
	s := &ScrollView{
		View:        view.NewScrollable(name, layout.Vertical),
		ContentView: view.New(name + ".content"),
		bindings:    make(map[*view.View]*binding),
	}
	s.View.AddSubview(s.ContentView)
	s.ContentView.DidAddSubview = s.didAddSubview
	s.ContentView.WillRemoveSubview = s.willRemoveSubview

	pan := s.Pan()
	pan.Delegate = s
	pan.OnUpdate = s.handlePan

	s.Bounds.AddListener(func(old, new graphics.Rect) {
		if graphics.RectEqualTruncated(old, new) {
			return
		}
		s.LayoutViews()
	})
	return s
}

// AddChild appends child below the existing children.
func (s *ScrollView) AddChild(child *view.View) {
	s.InsertChild(child, len(s.subviewsInLayoutOrder))
}

// InsertChild inserts child at index in the stack. A child that is already
// present is left where it is.
func (s *ScrollView) InsertChild(child *view.View, index int) {
	if child == nil || s.ContentView.Contains(child) {
		return
	}
	if child == s.View || child == s.ContentView {
		errors.Report(&errors.SpotError{
			Op:   "scroll.InsertChild",
			Kind: errors.KindSync,
			Err:  fmt.Errorf("cannot add %q to itself", child.Name),
		})
		return
	}
	s.ContentView.InsertSubview(child, index)
}

// RemoveChild removes child from the stack. Unknown views are ignored.
func (s *ScrollView) RemoveChild(child *view.View) {
	if child == nil || !s.ContentView.Contains(child) {
		return
	}
	child.RemoveFromSuperview()
}

// SubviewsInLayoutOrder returns the children in the order they are stacked.
func (s *ScrollView) SubviewsInLayoutOrder() []*view.View {
	return slices.Clone(s.subviewsInLayoutOrder)
}

// IsObserving reports whether child currently has watches installed.
func (s *ScrollView) IsObserving(child *view.View) bool {
	_, ok := s.bindings[child]
	return ok
}

// LayoutPasses returns the number of layout passes run so far.
func (s *ScrollView) LayoutPasses() int {
	return s.layoutPasses
}

func (s *ScrollView) didAddSubview(child *view.View) {
	if child.Scrollable && child.Direction == layout.Vertical {
		setIndependentScrolling(child, false)
	}
	s.observe(child)
	s.subviewsInLayoutOrder = s.ContentView.Subviews()
	s.LayoutViews()
}

func (s *ScrollView) willRemoveSubview(child *view.View) {
	s.unobserve(child)
	if child.Scrollable {
		setIndependentScrolling(child, true)
	}
	// The content view still lists child until this hook returns.
	s.subviewsInLayoutOrder = slices.DeleteFunc(s.ContentView.Subviews(), func(v *view.View) bool {
		return v == child
	})
	s.LayoutViews()
}

func setIndependentScrolling(v *view.View, enabled bool) {
	v.ScrollEnabled = enabled
	if pan := v.Pan(); pan != nil {
		pan.Enabled = enabled
	}
}

func (s *ScrollView) observe(child *view.View) {
	if _, ok := s.bindings[child]; ok {
		return
	}
	b := &binding{}
	b.unsubscribe = append(b.unsubscribe,
		child.ContentSize.AddListener(func(old, new graphics.Size) {
			if graphics.SizeEqualTruncated(old, new) {
				return
			}
			s.LayoutViews()
		}),
		child.ContentOffset.AddListener(func(old, new graphics.Offset) {
			if graphics.OffsetEqualTruncated(old, new) {
				return
			}
			s.LayoutViews()
		}),
		child.Bounds.AddListener(func(old, new graphics.Rect) {
			if graphics.RectEqualTruncated(old, new) {
				return
			}
			s.LayoutViews()
		}),
	)
	s.bindings[child] = b
}

func (s *ScrollView) unobserve(child *view.View) {
	b, ok := s.bindings[child]
	if !ok {
		return
	}
	delete(s.bindings, child)
	b.release()
}

// LayoutViews stacks the children and recomputes the content size.
func (s *ScrollView) LayoutViews() {
	defer errors.Recover("scroll.LayoutViews")
	s.layoutPasses++

	bounds := s.Bounds.Value()
	width := bounds.Width()
	offsetY := bounds.Top
	y := 0.0

	for _, child := range s.subviewsInLayoutOrder {
		if child.Scrollable && child.Direction == layout.Vertical {
			contentOffset := child.ContentOffset.Value()
			top := y
			if offsetY < y {
				contentOffset.Y = 0
			} else {
				contentOffset.Y = offsetY - y
				top = offsetY
			}
			contentHeight := child.ContentSize.Value().Height
			remainingBounds := math.Max(bounds.Bottom-top, 0)
			remainingContent := math.Max(contentHeight-contentOffset.Y, 0)
			height := math.Ceil(math.Min(remainingBounds, remainingContent))

			child.SetFrame(graphics.RectFromLTWH(0, top, width, height))
			child.SetContentOffset(contentOffset)
			y += child.ContentSize.Value().Height + child.ContentInset.Vertical()
			continue
		}

		height := child.Frame().Height()
		if child.Scrollable {
			height = child.ContentSize.Value().Height
		}
		child.SetFrame(graphics.RectFromLTWH(0, y, width, height))
		y += height
	}

	s.ContentView.SetFrame(graphics.RectFromLTWH(0, 0, width, y))
	s.SetContentSize(graphics.Size{Width: width, Height: math.Max(y, s.MinimumContentHeight)})
}

// ScrollTo moves the outer content offset, clamped to the scrollable range.
func (s *ScrollView) ScrollTo(offset graphics.Offset) {
	viewport := s.Frame().Height()
	minY := -s.ContentInset.Top
	maxY := math.Max(s.ContentSize.Value().Height+s.ContentInset.Bottom-viewport, minY)
	offset.X = 0
	offset.Y = math.Min(math.Max(offset.Y, minY), maxY)
	s.SetContentOffset(offset)
}

// SetContentInset changes the content inset. While a drag is in flight the
// pan translation is compensated so the content does not jump.
func (s *ScrollView) SetContentInset(insets graphics.EdgeInsets) {
	if pan := s.Pan(); pan != nil && pan.IsTracking() {
		diff := insets.Top - s.ContentInset.Top
		translation := pan.Translation()
		translation.Y -= diff * 3.0 / 2.0
		pan.SetTranslation(translation)
	}
	s.ContentInset = insets
}

// ShouldRecognizeSimultaneously allows the outer pan to track together with
// other only when other belongs to a direct child of the content view.
func (s *ScrollView) ShouldRecognizeSimultaneously(_, other *view.PanGesture) bool {
	if other == nil || other.View() == nil {
		return false
	}
	return other.View().Superview() == s.ContentView
}

func (s *ScrollView) handlePan(delta graphics.Offset) {
	if !s.ScrollEnabled {
		return
	}
	current := s.ContentOffset.Value()
	s.ScrollTo(graphics.Offset{Y: current.Y - delta.Y})
}
