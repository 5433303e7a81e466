package gui

import (
	"fmt"
	"log/slog"
)

// Context holds all state for building one frame's widget tree.
// This is NOT context.Context - it's a dedicated GUI context type.
// It is only valid between GUI.Begin and GUI.End.
type Context struct {
	// Trees: the one being built and last frame's, which answers hit tests
	// because this frame's geometry is not resolved until End.
	tree *Tree
	prev *Tree

	// Widget interaction state (persisted between frames, owned by GUI)
	state *InteractionState

	// Input (read-only during frame)
	input InputSource

	theme  Theme
	logger *slog.Logger

	// IDs
	idStack []ID

	// duplicates collects clickable ID collisions seen this frame.
	duplicates []error

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
}

// newContext creates a GUI context with default settings.
func newContext(state *InteractionState, logger *slog.Logger) *Context {
	return &Context{
		state:   state,
		logger:  logger,
		idStack: make([]ID, 0, 32),
		theme:   DefaultTheme(),
	}
}

// reset prepares the context for a new frame.
func (ctx *Context) reset(tree, prev *Tree, input InputSource, displaySize Vec2, frame uint64) {
	if input == nil {
		input = noInput{}
	}
	ctx.tree = tree
	ctx.prev = prev
	ctx.input = input
	ctx.idStack = ctx.idStack[:0]
	ctx.duplicates = ctx.duplicates[:0]
	ctx.DisplaySize = displaySize
	ctx.FrameCount = frame
}

// Root returns the index of the frame's root widget.
func (ctx *Context) Root() int {
	return ctx.tree.Root()
}

// Tree returns the tree being built this frame.
func (ctx *Context) Tree() *Tree {
	return ctx.tree
}

// PreviousTree returns last frame's resolved tree, or nil on the first frame.
func (ctx *Context) PreviousTree() *Tree {
	return ctx.prev
}

// Input returns the frame's input source.
func (ctx *Context) Input() InputSource {
	return ctx.input
}

// Theme returns the theme convenience widgets use.
func (ctx *Context) Theme() Theme {
	return ctx.theme
}

// Interaction returns the GUI's interaction state.
func (ctx *Context) Interaction() *InteractionState {
	return ctx.state
}

// IsHot reports whether id was under the pointer last frame.
func (ctx *Context) IsHot(id ID) bool {
	return id != 0 && ctx.state.Hot() == id
}

// IsActive reports whether id holds the press lock.
func (ctx *Context) IsActive(id ID) bool {
	return id != 0 && ctx.state.Active() == id
}

// register makes idx the hit-test target for id in this frame's tree.
// When two clickable widgets share an ID the later one wins.
func (ctx *Context) register(w *Widget, idx int) {
	prev, dup := ctx.tree.register(w.ID, idx)
	if !dup {
		return
	}
	ctx.logger.Warn("duplicate widget id, later widget wins",
		"label", w.Label, "id", w.ID, "first", prev, "second", idx)
	ctx.duplicates = append(ctx.duplicates,
		fmt.Errorf("%w: label %q at widgets %d and %d", ErrDuplicateID, w.Label, prev, idx))
}
