package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/layout"
)

func names(views []*View) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func TestSubviewOrder(t *testing.T) {
	root := New("root")
	a, b, c := New("a"), New("b"), New("c")

	root.AddSubview(a)
	root.AddSubview(c)
	root.InsertSubview(b, 1)

	assert.Equal(t, []string{"a", "b", "c"}, names(root.Subviews()))
	assert.Same(t, root, b.Superview())

	b.RemoveFromSuperview()
	assert.Equal(t, []string{"a", "c"}, names(root.Subviews()))
	assert.Nil(t, b.Superview())
	assert.False(t, root.Contains(b))
}

func TestAddSubviewMovesBetweenParents(t *testing.T) {
	p1, p2 := New("p1"), New("p2")
	child := New("child")

	p1.AddSubview(child)
	p2.AddSubview(child)

	assert.Empty(t, p1.Subviews())
	assert.Equal(t, []string{"child"}, names(p2.Subviews()))
}

func TestSubviewHooks(t *testing.T) {
	root := New("root")
	var events []string
	root.DidAddSubview = func(v *View) { events = append(events, "add "+v.Name) }
	root.WillRemoveSubview = func(v *View) {
		require.True(t, root.Contains(v), "hook must run before removal")
		events = append(events, "remove "+v.Name)
	}

	a := New("a")
	root.AddSubview(a)
	a.RemoveFromSuperview()
	a.RemoveFromSuperview()

	assert.Equal(t, []string{"add a", "remove a"}, events)
}

func TestSelfAndNilInsertIgnored(t *testing.T) {
	root := New("root")
	root.AddSubview(root)
	root.AddSubview(nil)
	assert.Empty(t, root.Subviews())
}

func TestBoundsFollowFrameAndOffset(t *testing.T) {
	v := NewScrollable("list", layout.Vertical)
	var seen []graphics.Rect
	v.Bounds.AddListener(func(_, b graphics.Rect) { seen = append(seen, b) })

	v.SetFrame(graphics.RectFromLTWH(0, 100, 320, 480))
	v.SetContentOffset(graphics.Offset{Y: 40})

	assert.Equal(t, []graphics.Rect{
		graphics.RectFromLTWH(0, 0, 320, 480),
		graphics.RectFromLTWH(0, 40, 320, 480),
	}, seen)
	assert.Equal(t, graphics.RectFromLTWH(0, 100, 320, 480), v.Frame())
}

func TestPanGesture(t *testing.T) {
	v := NewScrollable("carousel", layout.Horizontal)
	pan := v.Pan()
	require.NotNil(t, pan)
	assert.Same(t, v, pan.View())

	var deltas []graphics.Offset
	ended := false
	pan.OnUpdate = func(d graphics.Offset) { deltas = append(deltas, d) }
	pan.OnEnd = func() { ended = true }

	pan.Move(graphics.Offset{X: 1})
	assert.Empty(t, deltas, "move before begin is ignored")

	pan.Begin()
	pan.Move(graphics.Offset{X: -10})
	pan.Move(graphics.Offset{X: -5, Y: 2})
	assert.True(t, pan.IsTracking())
	assert.Equal(t, GestureChanged, pan.State())
	assert.Equal(t, graphics.Offset{X: -15, Y: 2}, pan.Translation())

	pan.End()
	assert.True(t, ended)
	assert.False(t, pan.IsTracking())
	assert.Len(t, deltas, 2)
}

func TestDisabledPanDoesNotBegin(t *testing.T) {
	pan := NewScrollable("list", layout.Vertical).Pan()
	pan.Enabled = false
	pan.Begin()
	assert.Equal(t, GesturePossible, pan.State())
}

func TestPlainViewHasNoPan(t *testing.T) {
	assert.Nil(t, New("plain").Pan())
}

type delegateFunc func(g, other *PanGesture) bool

func (f delegateFunc) ShouldRecognizeSimultaneously(g, other *PanGesture) bool { return f(g, other) }

func TestShouldRecognizeSimultaneously(t *testing.T) {
	a := NewScrollable("a", layout.Vertical).Pan()
	b := NewScrollable("b", layout.Horizontal).Pan()

	assert.False(t, a.ShouldRecognizeSimultaneously(b), "no delegate")

	a.Delegate = delegateFunc(func(g, other *PanGesture) bool { return other == b })
	assert.True(t, a.ShouldRecognizeSimultaneously(b))
	assert.False(t, a.ShouldRecognizeSimultaneously(nil))
}
