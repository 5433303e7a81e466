// Example demonstrates a minimal GUI window with a panel and a few widgets.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -theme theme.toml -legacy -v
//
// The example creates a GLFW window, initializes the OpenGL GUI renderer
// with a Go Regular glyph atlas, and renders a panel with a click counter.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/flexgui"
	"github.com/go-theft-auto/flexgui/backend/opengl"
	"github.com/go-theft-auto/flexgui/fontmetrics"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "flexgui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	themePath := flag.String("theme", "", "TOML theme file")
	legacy := flag.Bool("legacy", false, "use legacy layout arithmetic")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	gui.SetVerbose(*verbose)

	if err := run(*themePath, *legacy); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(themePath string, legacy bool) error {
	opts := []gui.GUIOption{}
	if themePath != "" {
		theme, err := gui.LoadTheme(themePath)
		if err != nil {
			return err
		}
		opts = append(opts, gui.WithTheme(theme))
	}
	if legacy {
		opts = append(opts, gui.WithLegacyLayout())
	}

	atlas, err := fontmetrics.GoRegular()
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the GUI renderer (takes initial viewport size) and input adapter.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()
	renderer.SetAtlas(atlas.Image())

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	ui := gui.New(renderer, atlas, opts...)

	// Application state.
	clickCount := 0

	// Main loop.
	for !window.ShouldClose() {
		input := inputAdapter.Update()
		glfw.PollEvents()

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Layout runs in window coordinates, the same space as the cursor.
		w, h := window.GetSize()
		ui.Resize(w, h)

		// Start a GUI frame.
		ctx := ui.Begin(input, gui.Vec2{X: float32(w), Y: float32(h)})

		panel := ctx.Panel(ctx.Root(), "Example Panel").
			Width(gui.Pixels(300)).
			Pos(20, 20).
			Render()

		ctx.Label(panel.Index, "Hello from flexgui!")
		ctx.WrappedLabel(panel.Index, "Widgets are rebuilt every frame; the click counter below keeps "+
			"its identity because its label never changes.")

		row := ctx.Row(panel.Index, "buttons").Width(gui.Grow()).Render()
		counter := ctx.ButtonWith(ctx.Widget("counter").
			Parent(row.Index).
			Size(gui.TextSize(), gui.TextSize()).
			Text(fmt.Sprintf("Click me (%d)", clickCount)))
		if counter.Clicked {
			clickCount++
			slog.Info("clicked", "count", clickCount)
		}
		ctx.Spacer(row.Index)
		if ctx.Button(row.Index, "Reset").Clicked {
			clickCount = 0
		}

		// End the GUI frame and render.
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
