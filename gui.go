package gui

import (
	"errors"
	"fmt"
	"log/slog"
)

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(instances *InstanceList) error
	AtlasTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer Renderer
	glyphs   GlyphMetricsProvider
	theme    Theme
	logger   *slog.Logger

	legacy    bool
	strictIDs bool
	fallback  rune

	state    InteractionState
	resolver *Resolver
	emitter  *Emitter
	ctx      *Context

	// Double-buffered trees. current is built between Begin and End,
	// previous holds last frame's resolved geometry for hit testing.
	current  *Tree
	previous *Tree

	inFrame    bool
	frameCount uint64
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithTheme sets the theme convenience widgets use.
func WithTheme(theme Theme) GUIOption {
	return func(g *GUI) { g.theme = theme }
}

// WithLogger sets the logger for warnings and diagnostics.
func WithLogger(logger *slog.Logger) GUIOption {
	return func(g *GUI) { g.logger = logger }
}

// WithLegacyLayout enables layout parity with the historical resolver
// (see ResolverConfig.Legacy).
func WithLegacyLayout() GUIOption {
	return func(g *GUI) { g.legacy = true }
}

// WithStrictIDs makes End return an error wrapping ErrDuplicateID when two
// clickable widgets share an ID in the same frame.
func WithStrictIDs() GUIOption {
	return func(g *GUI) { g.strictIDs = true }
}

// WithFallbackGlyph sets the rune drawn for characters the font lacks.
// A negative rune disables the fallback and skips such characters.
func WithFallbackGlyph(r rune) GUIOption {
	return func(g *GUI) { g.fallback = r }
}

// New creates a new GUI instance. renderer may be nil for headless use,
// in which case End resolves and emits but draws nothing.
func New(renderer Renderer, glyphs GlyphMetricsProvider, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		glyphs:   glyphs,
		theme:    DefaultTheme(),
		logger:   guiLogger,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.resolver = NewResolver(glyphs, ResolverConfig{
		Legacy:   g.legacy,
		Fallback: g.fallback,
		Logger:   g.logger,
	})
	g.emitter = NewEmitter(g.resolver)
	g.ctx = newContext(&g.state, g.logger)

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before declaring any UI.
// A nil input behaves as a pointer that is off screen with no buttons held.
func (g *GUI) Begin(input InputSource, displaySize Vec2) *Context {
	g.previous, g.current = g.current, g.previous
	if g.current == nil {
		g.current = NewTree(displaySize)
	} else {
		g.current.Reset(displaySize)
	}

	g.frameCount++
	g.ctx.theme = g.theme
	g.ctx.reset(g.current, g.previous, input, displaySize, g.frameCount)
	g.inFrame = true

	return g.ctx
}

// End resolves the frame's layout, settles interaction state, emits draw
// instances and hands them to the renderer.
// Call this after all UI is declared.
func (g *GUI) End() error {
	if !g.inFrame {
		return nil
	}
	g.inFrame = false

	g.resolver.Resolve(g.current)
	g.state.EndFrame(g.ctx.input)

	list := AcquireInstanceList()
	g.emitter.Emit(g.current, list)

	var renderErr error
	if g.renderer != nil {
		if err := g.renderer.Render(list); err != nil {
			renderErr = fmt.Errorf("render instances: %w", err)
		}
	}
	ReleaseInstanceList(list)

	if !g.strictIDs {
		return renderErr
	}
	return errors.Join(append([]error{renderErr}, g.ctx.duplicates...)...)
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Tree returns the most recently built tree. After End it is fully resolved.
func (g *GUI) Tree() *Tree {
	return g.current
}

// State returns the interaction state.
func (g *GUI) State() *InteractionState {
	return &g.state
}

// Theme returns the current theme.
func (g *GUI) Theme() Theme {
	return g.theme
}

// SetTheme replaces the theme starting with the next frame.
func (g *GUI) SetTheme(theme Theme) {
	g.theme = theme
}

// Legacy reports whether legacy layout parity is enabled.
func (g *GUI) Legacy() bool {
	return g.legacy
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
