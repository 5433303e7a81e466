// Command gen renders sample layouts with the OpenGL backend, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/flexgui"
	"github.com/go-theft-auto/flexgui/backend/opengl"
	"github.com/go-theft-auto/flexgui/fontmetrics"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single layout screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	draw   func(ctx *gui.Context) // layout declaration
	opts   []gui.GUIOption
}

func run() error {
	atlas, err := fontmetrics.GoRegular()
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()
	renderer.SetAtlas(atlas.Image())

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, atlas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, glyphs gui.GlyphMetricsProvider, s screenshot, outDir string) error {
	// Only update the renderer projection. The hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	ui := gui.New(renderer, glyphs, s.opts...)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	displaySize := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
	ctx := ui.Begin(nil, displaySize)
	s.draw(ctx)
	if err := ui.End(); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all layout screenshots to generate.
func buildScreenshots() []screenshot {
	sizing := func(ctx *gui.Context) {
		col := ctx.Column(ctx.Root(), "sizing").
			Size(gui.Grow(), gui.Grow()).
			Padding(12, 12).
			Render()

		swatch := func(parent int, label string, w gui.SizeKind, c gui.Vec4) {
			ctx.Widget(label).Parent(parent).
				Size(w, gui.Pixels(28)).
				Color(c).
				BorderRadius(gui.SpaceSM).
				Padding(gui.SpaceMD, gui.SpaceSM).
				Text(label).
				Render()
		}

		row := ctx.Row(col.Index, "fixed+grow").Width(gui.Grow()).Render()
		swatch(row.Index, "120px", gui.Pixels(120), gui.ColorDarkGray)
		swatch(row.Index, "grow", gui.Grow(), gui.RGBA(40, 90, 160, 255))

		swatch(col.Index, "50%", gui.Percent(0.5), gui.RGBA(160, 90, 40, 255))
		swatch(col.Index, "text", gui.TextSize(), gui.RGBA(60, 130, 60, 255))
	}

	alignment := func(ctx *gui.Context) {
		col := ctx.Column(ctx.Root(), "alignment").Padding(12, 12).Gap(8).Render()
		for _, a := range []gui.Alignment{gui.AlignStart, gui.AlignCenter, gui.AlignEnd} {
			ctx.PushID(a.String())
			row := ctx.Widget("track").Parent(col.Index).
				Size(gui.Pixels(376), gui.Pixels(36)).
				Direction(gui.Row).
				Gap(gui.SpaceSM).
				MainAxis(a).
				CrossAxis(gui.AlignCenter).
				Color(gui.RGBA(35, 35, 40, 255)).
				Render()
			ctx.Label(row.Index, a.String())
			ctx.Widget("dot").Parent(row.Index).
				Size(gui.Pixels(20), gui.Pixels(20)).
				Color(gui.ColorYellow).
				BorderRadius(10).
				Render()
			ctx.PopID()
		}
	}

	panel := func(ctx *gui.Context) {
		p := ctx.Panel(ctx.Root(), "panel").Width(gui.Pixels(280)).Pos(12, 12).Render()
		ctx.Label(p.Index, "Settings")
		ctx.WrappedLabel(p.Index, "Text wraps at the panel's content width, and the panel grows to fit it.")
		row := ctx.Row(p.Index, "actions").Width(gui.Grow()).Render()
		ctx.Spacer(row.Index)
		ctx.Button(row.Index, "Cancel")
		ctx.Button(row.Index, "Apply")
	}

	return []screenshot{
		{name: "sizing", width: 400, height: 160, draw: sizing},
		{name: "alignment", width: 400, height: 160, draw: alignment},
		{name: "alignment_legacy", width: 400, height: 160, draw: alignment, opts: []gui.GUIOption{gui.WithLegacyLayout()}},
		{name: "panel", width: 320, height: 200, draw: panel},
	}
}
