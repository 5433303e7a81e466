package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/flexgui"
)

// GLFWInputAdapter adapts GLFW pointer input to gui.InputState.
// The returned state is in window coordinates, matching a renderer sized
// to the window rather than the framebuffer.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState
	inside bool
}

// NewGLFWInputAdapter creates a new GLFW input adapter and installs its
// mouse callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
		inside: window.GetAttrib(glfw.Hovered) == glfw.True,
	}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetCursorEnterCallback(adapter.cursorEnterCallback)

	return adapter
}

// Update clears last frame's press and release edges and samples the
// cursor. Call it before glfw.PollEvents so the frame's callbacks record
// fresh edges. While the cursor is outside the window no widget is hovered.
func (a *GLFWInputAdapter) Update() *gui.InputState {
	a.input.Reset()

	if !a.inside {
		a.input.SetMouseOutside()
		return a.input
	}
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if a.inside {
		a.input.SetMousePos(float32(xpos), float32(ypos))
	}
}

func (a *GLFWInputAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	a.inside = entered
	if !entered {
		a.input.SetMouseOutside()
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
