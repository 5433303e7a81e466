package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// pointer is a scripted InputSource for one frame.
type pointer struct {
	pos      Vec2
	pressed  bool
	released bool
}

func (p pointer) MousePos() Vec2                        { return p.pos }
func (p pointer) MouseJustPressed(b MouseButton) bool  { return b == MouseButtonLeft && p.pressed }
func (p pointer) MouseJustReleased(b MouseButton) bool { return b == MouseButtonLeft && p.released }

var buttonRect = Rect{X: 10, Y: 10, W: 100, H: 30}

const (
	inside  = 20
	outside = 500
)

func frame(s *InteractionState, id ID, in pointer) Interaction {
	r := s.Interact(id, buttonRect, true, in)
	s.EndFrame(in)
	return r
}

func TestInteraction_ClickLifecycle(t *testing.T) {
	var s InteractionState
	const id ID = 42
	at := Vec2{X: inside, Y: inside}

	r := frame(&s, id, pointer{pos: at})
	assert.True(t, r.Hovered)
	assert.False(t, r.Active)
	assert.Equal(t, id, s.Hot())

	r = frame(&s, id, pointer{pos: at, pressed: true})
	assert.True(t, r.Active)
	assert.False(t, r.Clicked)
	assert.Equal(t, id, s.Active())

	r = frame(&s, id, pointer{pos: at})
	assert.True(t, r.Active, "press lock holds while the button stays down")

	r = frame(&s, id, pointer{pos: at, released: true})
	assert.True(t, r.Clicked)
	assert.False(t, r.Active)
	assert.Equal(t, ID(0), s.Active())

	r = frame(&s, id, pointer{pos: at})
	assert.False(t, r.Clicked, "clicked is reported for exactly one poll")
}

func TestInteraction_ReleaseOutsideCancels(t *testing.T) {
	var s InteractionState
	const id ID = 7

	frame(&s, id, pointer{pos: Vec2{X: inside, Y: inside}, pressed: true})
	assert.Equal(t, id, s.Active())

	r := frame(&s, id, pointer{pos: Vec2{X: outside, Y: outside}})
	assert.True(t, r.Active, "dragging off keeps the press lock")
	assert.False(t, r.Hovered)

	r = frame(&s, id, pointer{pos: Vec2{X: outside, Y: outside}, released: true})
	assert.False(t, r.Clicked)
	assert.Equal(t, ID(0), s.Active())
}

func TestInteraction_PressOutsideDoesNothing(t *testing.T) {
	var s InteractionState
	r := frame(&s, 1, pointer{pos: Vec2{X: outside, Y: outside}, pressed: true})
	assert.False(t, r.Active)
	assert.Equal(t, ID(0), s.Active())

	// Moving in while held and releasing is not a click.
	r = frame(&s, 1, pointer{pos: Vec2{X: inside, Y: inside}, released: true})
	assert.True(t, r.Hovered)
	assert.False(t, r.Clicked)
}

func TestInteraction_HotResetsEveryFrame(t *testing.T) {
	var s InteractionState
	frame(&s, 1, pointer{pos: Vec2{X: inside, Y: inside}})
	assert.Equal(t, ID(1), s.Hot())

	// Widget not built this frame: nothing stages a hit.
	s.EndFrame(pointer{pos: Vec2{X: inside, Y: inside}})
	assert.Equal(t, ID(0), s.Hot())
}

func TestInteraction_LastOverlappingWins(t *testing.T) {
	var s InteractionState
	in := pointer{pos: Vec2{X: inside, Y: inside}, pressed: true}

	a := s.Interact(1, buttonRect, true, in)
	b := s.Interact(2, buttonRect, true, in)
	s.EndFrame(in)

	assert.True(t, a.Hovered)
	assert.True(t, b.Active)
	assert.Equal(t, ID(2), s.Hot())
	assert.Equal(t, ID(2), s.Active())
}

func TestInteraction_NoBoundsNeverHovered(t *testing.T) {
	var s InteractionState
	r := s.Interact(1, Rect{}, false, pointer{pos: Vec2{}, pressed: true})
	assert.False(t, r.Hovered)
	assert.False(t, r.Active)
}

func TestInteraction_OrphanedActiveClearedOnRelease(t *testing.T) {
	var s InteractionState
	frame(&s, 3, pointer{pos: Vec2{X: inside, Y: inside}, pressed: true})
	assert.Equal(t, ID(3), s.Active())

	// Widget disappears; the lock survives frames without a release.
	s.EndFrame(pointer{})
	assert.Equal(t, ID(3), s.Active())

	s.EndFrame(pointer{released: true})
	assert.Equal(t, ID(0), s.Active())
}

func TestInteraction_NilInput(t *testing.T) {
	var s InteractionState
	r := s.Interact(1, buttonRect, true, nil)
	s.EndFrame(nil)
	assert.False(t, r.Hovered)
	assert.Equal(t, ID(0), s.Hot())
}

func TestInteraction_Reset(t *testing.T) {
	var s InteractionState
	frame(&s, 5, pointer{pos: Vec2{X: inside, Y: inside}, pressed: true})
	s.Reset()
	assert.Equal(t, ID(0), s.Hot())
	assert.Equal(t, ID(0), s.Active())
}
