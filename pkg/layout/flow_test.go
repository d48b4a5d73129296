package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/spots/pkg/component"
	"github.com/go-drift/spots/pkg/graphics"
)

func uniform(n int, w, h float64) []graphics.Size {
	sizes := make([]graphics.Size, n)
	for i := range sizes {
		sizes[i] = graphics.Size{Width: w, Height: h}
	}
	return sizes
}

func TestHorizontalTwoRowsHeight(t *testing.T) {
	for n := 1; n <= 7; n++ {
		l := &FlowLayout{
			Direction:   Horizontal,
			ItemSizes:   uniform(n, 100, 50),
			ItemsPerRow: 2,
		}
		l.Prepare()
		assert.Equal(t, 100.0, l.ContentSize().Height, "n=%d", n)
	}
}

func TestHorizontalWidthMonotonic(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 9; n++ {
		l := &FlowLayout{
			Direction:   Horizontal,
			ItemSizes:   uniform(n, 100, 50),
			ItemsPerRow: 2,
			ItemSpacing: 10,
			LineSpacing: 10,
			Inset:       graphics.EdgeInsets{Right: 16},
		}
		l.Prepare()
		w := l.ContentSize().Width
		assert.GreaterOrEqual(t, w, prev, "n=%d", n)
		prev = w
	}
}

func TestHorizontalContentSize(t *testing.T) {
	tests := []struct {
		name string
		l    FlowLayout
		want graphics.Size
	}{
		{
			name: "single row per column",
			l: FlowLayout{
				ItemSizes:   uniform(3, 100, 50),
				ItemsPerRow: 1,
				ItemSpacing: 10,
				Inset:       graphics.EdgeInsets{Top: 5, Bottom: 5, Right: 20},
			},
			// 3*(100+10) - 10 + 20, 50 + 10
			want: graphics.Size{Width: 340, Height: 60},
		},
		{
			name: "dangling last row",
			l: FlowLayout{
				ItemSizes:   uniform(3, 100, 50),
				ItemsPerRow: 2,
				ItemSpacing: 10,
				LineSpacing: 4,
			},
			// (100+4) + (100+10) - 10
			want: graphics.Size{Width: 204, Height: 100},
		},
		{
			name: "header and footer",
			l: FlowLayout{
				ItemSizes:    uniform(2, 100, 50),
				ItemsPerRow:  2,
				HeaderHeight: 30,
				FooterHeight: 20,
			},
			want: graphics.Size{Width: 100, Height: 150},
		},
		{
			name: "empty keeps header footer and insets",
			l: FlowLayout{
				ItemsPerRow:  2,
				ItemSpacing:  10,
				HeaderHeight: 30,
				FooterHeight: 20,
				Inset:        graphics.EdgeInsets{Top: 1, Bottom: 2, Right: 3},
			},
			want: graphics.Size{Width: 3, Height: 53},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.l
			l.Direction = Horizontal
			l.Prepare()
			assert.Equal(t, tt.want, l.ContentSize())
		})
	}
}

func TestHorizontalFramesColumnMajor(t *testing.T) {
	l := &FlowLayout{
		Direction:    Horizontal,
		ItemSizes:    uniform(5, 100, 50),
		ItemsPerRow:  2,
		ItemSpacing:  10,
		HeaderHeight: 20,
		Inset:        graphics.EdgeInsets{Top: 8, Left: 16},
	}
	l.Prepare()

	want := []graphics.Rect{
		graphics.RectFromLTWH(16, 28, 100, 50),
		graphics.RectFromLTWH(16, 78, 100, 50),
		graphics.RectFromLTWH(126, 28, 100, 50),
		graphics.RectFromLTWH(126, 78, 100, 50),
		graphics.RectFromLTWH(236, 28, 100, 50),
	}
	assert.Equal(t, want, l.Frames())
}

func TestHorizontalFramesSingleRowIgnoresTopInset(t *testing.T) {
	l := &FlowLayout{
		Direction:    Horizontal,
		ItemSizes:    []graphics.Size{{Width: 80, Height: 40}, {Width: 120, Height: 40}},
		ItemsPerRow:  1,
		ItemSpacing:  5,
		HeaderHeight: 12,
		Inset:        graphics.EdgeInsets{Top: 8, Left: 4},
	}
	l.Prepare()

	assert.Equal(t, []graphics.Rect{
		graphics.RectFromLTWH(4, 12, 80, 40),
		graphics.RectFromLTWH(89, 12, 120, 40),
	}, l.Frames())
}

func TestVerticalFlowWrapsLines(t *testing.T) {
	l := &FlowLayout{
		ItemSizes:     uniform(5, 100, 40),
		ItemSpacing:   10,
		LineSpacing:   6,
		HeaderHeight:  30,
		FooterHeight:  10,
		Inset:         graphics.EdgeInsets{Top: 4, Left: 10, Bottom: 4, Right: 10},
		ContainerSize: graphics.Size{Width: 320, Height: 600},
	}
	l.Prepare()

	// 10 + 100 + 10 + 100 + 10 + 100 = 330 > 310, so two per line.
	frames := l.Frames()
	require.Len(t, frames, 5)
	assert.Equal(t, graphics.RectFromLTWH(10, 34, 100, 40), frames[0])
	assert.Equal(t, graphics.RectFromLTWH(120, 34, 100, 40), frames[1])
	assert.Equal(t, graphics.RectFromLTWH(10, 80, 100, 40), frames[2])
	assert.Equal(t, graphics.RectFromLTWH(10, 126, 100, 40), frames[4])

	// Three lines: 3*40 + 2*6 = 132, + header/footer 40, + insets 8.
	assert.Equal(t, graphics.Size{Width: 320, Height: 180}, l.ContentSize())
}

func TestVerticalFullWidthItems(t *testing.T) {
	l := &FlowLayout{
		ItemSizes:     uniform(3, 375, 44),
		ContainerSize: graphics.Size{Width: 375},
	}
	l.Prepare()
	assert.Equal(t, graphics.Size{Width: 375, Height: 132}, l.ContentSize())
	assert.Equal(t, 88.0, l.Frames()[2].Top)
}

func TestVerticalEmpty(t *testing.T) {
	l := &FlowLayout{
		HeaderHeight:  20,
		Inset:         graphics.EdgeInsets{Top: 5, Bottom: 5},
		ContainerSize: graphics.Size{Width: 200},
	}
	l.Prepare()
	assert.Equal(t, graphics.Size{Width: 200, Height: 30}, l.ContentSize())
	assert.Empty(t, l.Frames())
}

func TestPrepareIsIdempotent(t *testing.T) {
	for _, dir := range []Direction{Vertical, Horizontal} {
		l := &FlowLayout{
			Direction:     dir,
			ItemSizes:     []graphics.Size{{Width: 90, Height: 33.3}, {Width: 70.5, Height: 20}, {Width: 120, Height: 41}},
			ItemsPerRow:   2,
			ItemSpacing:   7,
			LineSpacing:   3,
			HeaderHeight:  11,
			FooterHeight:  9,
			Inset:         graphics.EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4},
			ContainerSize: graphics.Size{Width: 200, Height: 300},
		}
		l.Prepare()
		size, frames := l.ContentSize(), l.Frames()
		l.Prepare()
		assert.Equal(t, size, l.ContentSize(), dir.String())
		assert.Equal(t, frames, l.Frames(), dir.String())
	}
}

func TestZeroItemsPerRowIsClamped(t *testing.T) {
	l := &FlowLayout{Direction: Horizontal, ItemSizes: uniform(2, 10, 10)}
	assert.NotPanics(t, l.Prepare)
	assert.Equal(t, 1, l.Columns())
	assert.Equal(t, graphics.Size{Width: 20, Height: 10}, l.ContentSize())
}

func TestShouldInvalidate(t *testing.T) {
	l := &FlowLayout{
		HeaderHeight:  20,
		FooterHeight:  10,
		ContainerSize: graphics.Size{Width: 100, Height: 200},
	}
	assert.False(t, l.ShouldInvalidate(graphics.Size{Width: 50, Height: 230}))
	assert.True(t, l.ShouldInvalidate(graphics.Size{Width: 100, Height: 200}))
}

func TestNeedsLayoutLifecycle(t *testing.T) {
	l := &FlowLayout{}
	assert.True(t, l.NeedsLayout())
	l.Prepare()
	assert.False(t, l.NeedsLayout())

	Style{ItemSpacing: 3, LineSpacing: 4, Inset: graphics.EdgeInsetsAll(2)}.Apply(l)
	assert.True(t, l.NeedsLayout())
	assert.Equal(t, 3.0, l.ItemSpacing)
	assert.Equal(t, 4.0, l.LineSpacing)
	assert.Equal(t, graphics.EdgeInsetsAll(2), l.Inset)
}

func TestIndexesInRect(t *testing.T) {
	l := &FlowLayout{
		Direction:   Horizontal,
		ItemSizes:   uniform(4, 100, 50),
		ItemsPerRow: 1,
	}
	l.Prepare()
	assert.Equal(t, []int{1, 2}, l.IndexesInRect(graphics.RectFromLTWH(150, 0, 100, 50)))
}

func TestStyleFromLayout(t *testing.T) {
	s := StyleFromLayout(component.Layout{
		ItemsPerRow: 3,
		ItemSpacing: 8,
		LineSpacing: 12,
		Inset:       graphics.EdgeInsets{Top: 1, Left: 2},
	})
	assert.Equal(t, Style{ItemSpacing: 8, LineSpacing: 12, Inset: graphics.EdgeInsets{Top: 1, Left: 2}}, s)

	var nilLayout *FlowLayout
	s.Apply(nilLayout)
}
