package spots

import (
	"math"

	"github.com/go-drift/spots/pkg/component"
	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/layout"
	"github.com/go-drift/spots/pkg/view"
)

// DefaultItemHeight is the height given to list-like items that declare none.
const DefaultItemHeight = 44.0

// Spot is a live component: it owns one descriptor, a view, and the layout
// that positions the descriptor's items inside that view.
type Spot interface {
	// Component returns the descriptor the spot renders. Mutating it directly
	// bypasses relayout; use the mutation methods instead.
	Component() *component.Component
	// Items returns a copy of the descriptor's items.
	Items() []component.Item
	// SizeForItem returns the laid-out size of the item at index.
	SizeForItem(index int) graphics.Size
	// View returns the view the spot renders into.
	View() *view.View
	// Layout returns the spot's flow layout.
	Layout() *layout.FlowLayout
	// Relayout recomputes the layout and publishes the content size.
	Relayout()

	Append(items ...component.Item)
	Prepend(items ...component.Item)
	Insert(index int, items ...component.Item) bool
	Delete(index int) bool
	Update(index int, item component.Item) bool
	Reload(items []component.Item)

	// Dispose releases the spot's subscriptions. The spot must not be used
	// afterwards.
	Dispose()
}

// sizeStrategy computes the size of one item for a variant. proposed is the
// item's declared size, already filled in from the item kind when empty.
type sizeStrategy func(b *Base, proposed graphics.Size) graphics.Size

// Base implements the behavior shared by every spot variant. Variants embed
// it and supply a sizing strategy.
type Base struct {
	component   component.Component
	view        *view.View
	flow        layout.FlowLayout
	sizeFor     sizeStrategy
	itemSizes   map[string]graphics.Size
	style       *layout.Style
	unsubscribe func()
}

// NewBase creates the shared state for a variant. v becomes the spot's view
// and sizeFor decides item sizes; a nil sizeFor keeps declared sizes.
func NewBase(c component.Component, v *view.View, direction layout.Direction, sizeFor func(b *Base, proposed graphics.Size) graphics.Size) *Base {
	b := &Base{
		component: c.Clone(),
		view:      v,
		sizeFor:   sizeFor,
	}
	b.flow.Direction = direction
	b.unsubscribe = v.Bounds.AddListener(b.boundsChanged)
	if pan := v.Pan(); pan != nil && direction == layout.Horizontal {
		pan.OnUpdate = b.scrollHorizontally
	}
	b.Relayout()
	return b
}

func (b *Base) Component() *component.Component {
	return &b.component
}

func (b *Base) Items() []component.Item {
	items := make([]component.Item, len(b.component.Items))
	copy(items, b.component.Items)
	return items
}

func (b *Base) View() *view.View {
	return b.view
}

func (b *Base) Layout() *layout.FlowLayout {
	return &b.flow
}

// SetStyle overrides the style derived from the descriptor's layout.
func (b *Base) SetStyle(style layout.Style) {
	b.style = &style
	b.Relayout()
}

// Style returns the style applied before every layout computation.
func (b *Base) Style() layout.Style {
	if b.style != nil {
		return *b.style
	}
	return layout.StyleFromLayout(b.component.Layout)
}

// HeaderHeight returns the descriptor's header height, or 0.
func (b *Base) HeaderHeight() float64 {
	if b.component.Header == nil {
		return 0
	}
	return b.component.Header.Size.Height
}

// FooterHeight returns the descriptor's footer height, or 0.
func (b *Base) FooterHeight() float64 {
	if b.component.Footer == nil {
		return 0
	}
	return b.component.Footer.Size.Height
}

// ContainerWidth is the width items are sized against.
func (b *Base) ContainerWidth() float64 {
	return b.view.Frame().Width()
}

// ContentWidth is the container width minus horizontal insets.
func (b *Base) ContentWidth() float64 {
	return math.Max(b.ContainerWidth()-b.Style().Inset.Horizontal(), 0)
}

// ColumnWidth splits the content width into columns separated by item spacing.
func (b *Base) ColumnWidth(columns int) float64 {
	if columns < 1 {
		columns = 1
	}
	spacing := b.Style().ItemSpacing * float64(columns-1)
	return math.Max((b.ContentWidth()-spacing)/float64(columns), 0)
}

func (b *Base) SizeForItem(index int) graphics.Size {
	item, ok := b.component.Item(index)
	if !ok {
		return graphics.Size{}
	}
	proposed := item.Size
	// Items without a kind get no kind-based size.
	if item.Kind != "" {
		if preferred, ok := b.itemSizes[item.Kind]; ok {
			if proposed.Width == 0 {
				proposed.Width = preferred.Width
			}
			if proposed.Height == 0 {
				proposed.Height = preferred.Height
			}
		}
	}
	if b.sizeFor == nil {
		return proposed
	}
	return b.sizeFor(b, proposed)
}

func (b *Base) Relayout() {
	b.flow.ItemsPerRow = b.component.Layout.Columns()
	b.flow.HeaderHeight = b.HeaderHeight()
	b.flow.FooterHeight = b.FooterHeight()
	b.flow.ContainerSize = b.view.Frame().Size()
	b.Style().Apply(&b.flow)

	sizes := make([]graphics.Size, len(b.component.Items))
	for i := range sizes {
		sizes[i] = b.SizeForItem(i)
	}
	b.flow.ItemSizes = sizes
	b.flow.Prepare()

	content := b.flow.ContentSize()
	b.view.SetContentSize(content)
	if !b.view.Scrollable {
		// Plain views are stacked by frame height, so they grow to fit.
		b.view.SetFrame(b.view.Frame().WithSize(graphics.Size{Width: b.view.Frame().Width(), Height: content.Height}))
	}
}

func (b *Base) Append(items ...component.Item) {
	b.component.Append(items...)
	b.Relayout()
}

func (b *Base) Prepend(items ...component.Item) {
	b.component.Prepend(items...)
	b.Relayout()
}

func (b *Base) Insert(index int, items ...component.Item) bool {
	if !b.component.Insert(index, items...) {
		return false
	}
	b.Relayout()
	return true
}

func (b *Base) Delete(index int) bool {
	if !b.component.Delete(index) {
		return false
	}
	b.Relayout()
	return true
}

func (b *Base) Update(index int, item component.Item) bool {
	if !b.component.Update(index, item) {
		return false
	}
	b.Relayout()
	return true
}

func (b *Base) Reload(items []component.Item) {
	b.component.Reload(items)
	b.Relayout()
}

func (b *Base) Dispose() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
	if pan := b.view.Pan(); pan != nil {
		pan.OnUpdate = nil
	}
}

func (b *Base) setItemSizes(sizes map[string]graphics.Size) {
	b.itemSizes = sizes
}

func (b *Base) boundsChanged(old, new graphics.Rect) {
	widthChanged := graphics.Truncated(old.Width()) != graphics.Truncated(new.Width())
	if widthChanged || (!graphics.SizeEqualTruncated(old.Size(), new.Size()) && b.flow.ShouldInvalidate(new.Size())) {
		b.Relayout()
	}
}

func (b *Base) scrollHorizontally(delta graphics.Offset) {
	if !b.view.ScrollEnabled {
		return
	}
	maxX := math.Max(b.view.ContentSize.Value().Width-b.view.Frame().Width(), 0)
	offset := b.view.ContentOffset.Value()
	offset.X = math.Min(math.Max(offset.X-delta.X, 0), maxX)
	b.view.SetContentOffset(offset)
}
