// Package snapshot records the laid-out state of a scroll container.
//
// [Capture] walks a [scroll.ScrollView] and the spots rendered in it and
// produces a [Snapshot]: the viewport, the aggregate content size, and the
// frame, content size and item frames of every child. Snapshots serialize to
// stable, indented JSON so they can be checked in as golden files and compared
// with [Snapshot.MatchesFile]. [Snapshot.RenderPNG] draws a snapshot as a wireframe.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/scroll"
	"github.com/go-drift/spots/pkg/spots"
	"github.com/go-drift/spots/pkg/view"
)

// UpdateEnv names the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "SPOTS_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is the serialized state of a scroll container.
type Snapshot struct {
	Viewport      [2]float64  `json:"viewport"`
	ContentSize   [2]float64  `json:"contentSize"`
	ContentOffset [2]float64  `json:"contentOffset"`
	Views         []*ViewNode `json:"views"`
}

// ViewNode is one child of the container, in stacking order.
type ViewNode struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Title         string     `json:"title,omitempty"`
	Direction     string     `json:"direction,omitempty"`
	Frame         [4]float64 `json:"frame"`
	ContentSize   [2]float64 `json:"contentSize"`
	ContentOffset [2]float64 `json:"contentOffset"`
	Items         []ItemNode `json:"items,omitempty"`
}

// ItemNode is one item frame in its spot's content coordinates.
type ItemNode struct {
	Index int        `json:"index"`
	Title string     `json:"title,omitempty"`
	Kind  string     `json:"kind,omitempty"`
	Frame [4]float64 `json:"frame"`
}

// Capture records sv and the item frames of spots rendered in it. Children
// that belong to none of the given spots are recorded without items.
func Capture(sv *scroll.ScrollView, rendered []spots.Spot) *Snapshot {
	bySpotView := make(map[*view.View]spots.Spot, len(rendered))
	for _, s := range rendered {
		bySpotView[s.View()] = s
	}

	frame := sv.Frame()
	snap := &Snapshot{
		Viewport:      [2]float64{round2(frame.Width()), round2(frame.Height())},
		ContentSize:   size2(sv.ContentSize.Value()),
		ContentOffset: offset2(sv.ContentOffset.Value()),
	}

	counter := &typeCounter{}
	for _, child := range sv.SubviewsInLayoutOrder() {
		typeName := "View"
		spot, ok := bySpotView[child]
		if ok {
			typeName = spotTypeName(spot)
		}
		node := &ViewNode{
			ID:            counter.next(typeName),
			Type:          typeName,
			Title:         child.Name,
			Frame:         rect4(child.Frame()),
			ContentSize:   size2(child.ContentSize.Value()),
			ContentOffset: offset2(child.ContentOffset.Value()),
		}
		if child.Scrollable {
			node.Direction = child.Direction.String()
		}
		if ok {
			node.Items = captureItems(spot)
		}
		snap.Views = append(snap.Views, node)
	}
	return snap
}

// CaptureController records the scroll view and spots of ctrl.
func CaptureController(ctrl *spots.Controller) *Snapshot {
	return Capture(ctrl.ScrollView(), ctrl.Spots())
}

func captureItems(spot spots.Spot) []ItemNode {
	frames := spot.Layout().Frames()
	items := spot.Items()
	out := make([]ItemNode, 0, len(frames))
	for i, f := range frames {
		node := ItemNode{Index: i, Frame: rect4(f)}
		if i < len(items) {
			node.Title = items[i].Title
			node.Kind = items[i].Kind
		}
		out = append(out, node)
	}
	return out
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When SPOTS_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.MarshalIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MarshalIndent encodes the snapshot as indented JSON with a trailing newline.
func (s *Snapshot) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Diff returns a unified diff from other to this snapshot, or "" if they
// are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.MarshalIndent()
	b, _ := other.MarshalIndent()
	if bytes.Equal(a, b) {
		return ""
	}
	return udiff.Unified("expected", "actual", string(b), string(a))
}

// Load reads a snapshot written by UpdateFile.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// typeCounter assigns stable IDs like "List#0", "List#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func spotTypeName(spot spots.Spot) string {
	t := reflect.TypeOf(spot)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func size2(s graphics.Size) [2]float64 {
	return [2]float64{round2(s.Width), round2(s.Height)}
}

func offset2(o graphics.Offset) [2]float64 {
	return [2]float64{round2(o.X), round2(o.Y)}
}

func rect4(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Width()), round2(r.Height())}
}
