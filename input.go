package gui

import "math"

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// InputSource is the pointer state the GUI reads while widgets are built.
// MousePos must be in the same coordinate space as layout.
type InputSource interface {
	MousePos() Vec2
	MouseJustPressed(button MouseButton) bool
	MouseJustReleased(button MouseButton) bool
}

// InputState holds input state for the current frame and implements
// InputSource. It is typically populated by the application from GLFW or
// similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseOutside moves the pointer out of reach of every widget, for
// when the cursor leaves the window. Held buttons stay held.
func (s *InputState) SetMouseOutside() {
	s.MouseX, s.MouseY = offscreen, offscreen
}

// SetMouseButton sets mouse button state and records press/release edges.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseJustPressed returns true if a mouse button was pressed this frame.
func (s *InputState) MouseJustPressed(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseJustReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseJustReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// noInput is used when a frame is begun without an input source.
type noInput struct{}

const offscreen = -math.MaxFloat32

func (noInput) MousePos() Vec2 {
	return Vec2{X: offscreen, Y: offscreen}
}

func (noInput) MouseJustPressed(MouseButton) bool  { return false }
func (noInput) MouseJustReleased(MouseButton) bool { return false }
