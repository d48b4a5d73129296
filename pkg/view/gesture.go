package view

import "github.com/go-drift/spots/pkg/graphics"

// GestureState is the lifecycle state of a pan gesture.
type GestureState int

const (
	GesturePossible GestureState = iota
	GestureBegan
	GestureChanged
	GestureEnded
	GestureCancelled
)

func (s GestureState) String() string {
	switch s {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "possible"
	}
}

// GestureDelegate arbitrates simultaneous recognition between two gestures.
type GestureDelegate interface {
	ShouldRecognizeSimultaneously(gesture, other *PanGesture) bool
}

// PanGesture tracks a drag on a scrollable view.
//
// The host feeds touch movement through Begin, Move and End; the gesture
// accumulates the translation and reports each delta to OnUpdate.
type PanGesture struct {
	Enabled  bool
	Delegate GestureDelegate
	// OnUpdate receives the translation delta of every Move.
	OnUpdate func(delta graphics.Offset)
	// OnEnd is called when the gesture ends or is cancelled.
	OnEnd func()

	view        *View
	state       GestureState
	translation graphics.Offset
}

func newPanGesture(v *View) *PanGesture {
	return &PanGesture{Enabled: true, view: v}
}

// View returns the view the gesture is attached to.
func (p *PanGesture) View() *View {
	return p.view
}

// State returns the current state.
func (p *PanGesture) State() GestureState {
	return p.state
}

// IsTracking reports whether a drag is in flight.
func (p *PanGesture) IsTracking() bool {
	return p.state == GestureBegan || p.state == GestureChanged
}

// Translation returns the accumulated translation since Begin.
func (p *PanGesture) Translation() graphics.Offset {
	return p.translation
}

// SetTranslation overrides the accumulated translation.
func (p *PanGesture) SetTranslation(t graphics.Offset) {
	p.translation = t
}

// Begin starts tracking. Disabled gestures ignore it.
func (p *PanGesture) Begin() {
	if !p.Enabled {
		return
	}
	p.state = GestureBegan
	p.translation = graphics.Offset{}
}

// Move adds delta to the translation and reports it.
func (p *PanGesture) Move(delta graphics.Offset) {
	if !p.IsTracking() {
		return
	}
	p.state = GestureChanged
	p.translation.X += delta.X
	p.translation.Y += delta.Y
	if p.OnUpdate != nil {
		p.OnUpdate(delta)
	}
}

// End finishes tracking.
func (p *PanGesture) End() {
	p.finish(GestureEnded)
}

// Cancel aborts tracking.
func (p *PanGesture) Cancel() {
	p.finish(GestureCancelled)
}

func (p *PanGesture) finish(state GestureState) {
	if !p.IsTracking() {
		return
	}
	p.state = state
	if p.OnEnd != nil {
		p.OnEnd()
	}
}

// ShouldRecognizeSimultaneously asks the delegate whether p may track at the
// same time as other. Without a delegate the answer is no.
func (p *PanGesture) ShouldRecognizeSimultaneously(other *PanGesture) bool {
	if p.Delegate == nil || other == nil {
		return false
	}
	return p.Delegate.ShouldRecognizeSimultaneously(p, other)
}
