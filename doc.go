/*
Package gui provides an immediate-mode GUI layout and interaction engine.

# Overview

The UI is declared from scratch every frame. Each declaration appends a
Widget to an index-based Tree; once the frame is complete a Resolver sizes
and positions every widget, an Emitter turns the tree into a flat
InstanceList of rounded quads and glyphs, and a Renderer draws the list.
Interaction results are returned directly from the declaring call, so no
callbacks or retained widget objects are needed.

# Quick Start

	// Setup
	atlas, _ := fontmetrics.GoRegular()
	renderer, _ := opengl.NewRenderer(1280, 720)
	renderer.SetAtlas(atlas.Image())
	ui := gui.New(renderer, atlas)

	// Frame loop
	for !window.ShouldClose() {
	    input := adapter.Update()
	    glfw.PollEvents()

	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 720})

	    panel := ctx.Panel(ctx.Root(), "menu").Width(gui.Pixels(300)).Render()
	    ctx.Label(panel.Index, "Hello World")
	    if ctx.Button(panel.Index, "Click Me").Clicked {
	        // Button was clicked
	    }

	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    window.SwapBuffers()
	}

# Widget Tree

Widgets live in a slice owned by the Tree. Index 0 is the root, sized to the
display and parented to itself. A child is always created after its parent,
so parent indices are strictly smaller than child indices and a forward walk
visits parents first. Siblings keep declaration order.

Two trees alternate between frames. Hit tests run against the previous
frame's resolved geometry, looked up by widget ID.

# Sizing

Each axis of a widget carries a SizeKind:

	Pixels(n)      Fixed size
	Percent(f)     Fraction of the parent's size (f in 0..1)
	TextSize()     Measured size of the widget's text plus padding
	ChildrenSum()  Hug the children: sum on the main axis, max on the cross axis
	Grow()         Share the parent's remaining main-axis space

Sizes are resolved in ordered passes over the tree: fixed, percent, text,
children sum (post-order), grow (parents first), overflow diagnostics and
finally positions. Resolving the same tree twice yields the same geometry.

Overflow never clips or shrinks content. It is recorded per widget and per
axis and can be read with Tree.Overflows.

# Layout Fields

	Direction              Row or Column, the main axis for children
	Gap                    Space between adjacent children on the main axis
	Padding                Inner inset applied on both sides of each axis
	Margin                 Offset of a child inside its parent's content box
	MainAxisAlignment      AlignStart, AlignCenter or AlignEnd along the main axis
	CrossAxisAlignment     AlignStart, AlignCenter or AlignEnd across it
	Pos                    Extra offset added to the flow position

# Legacy Layout

WithLegacyLayout reproduces an older arithmetic for existing layouts:
children sums ignore gaps and apply a single cross-axis inset, grow children
take whatever the preceding siblings leave, text sizes exclude padding and
alignment ignores gaps. New code should use the default mode.

# Text

Text is measured and drawn with a GlyphMetricsProvider. Glyph metrics are
normalized to a 1.0 line height and scaled by the widget's FontSize. With
TextWrap set, a line breaks before a glyph that would cross the wrap bound,
falling back to the parent's content width when the widget's own width is
not yet known. A '\n' always starts a new line. Runes missing from the
provider are replaced by the fallback glyph (see WithFallbackGlyph) and
reported once.

# Interaction

A Clickable widget is hot while the cursor is over it. Pressing the left
button over a hot widget makes it active. Releasing the button ends the
press, and the widget reports Clicked only if the cursor is still over it.
When several clickable widgets overlap, the one declared last wins.

	resp := ctx.Button(parent, "Save")
	resp.Hovered   // cursor over the widget this frame
	resp.Active    // widget holds the press
	resp.Clicked   // press and release both landed on the widget

# IDs

A widget's ID is a hash of its label within the current ID scope. Use
PushID/PopID to disambiguate repeated labels:

	for i, item := range items {
	    ctx.PushID(strconv.Itoa(i))
	    ctx.Button(list.Index, "Delete")
	    ctx.PopID()
	}

Duplicate clickable IDs in a frame are logged. With WithStrictIDs, End also
returns them joined as ErrDuplicateID errors.

# Themes

Theme values come from DefaultTheme or from TOML:

	font_size = 18
	text_color = "#e6e6e6"
	button_color = "#3a3a44"
	button_padding = { x = 8, y = 4 }

See ParseTheme and LoadTheme.

# Spacing Constants

Use these instead of magic numbers:

	SpaceNone  = 0   // No spacing
	SpaceXS    = 2   // Extra small
	SpaceSM    = 4   // Small (default gap)
	SpaceMD    = 8   // Medium (default padding)
	SpaceLG    = 12  // Large
	SpaceXL    = 16  // Extra large

# Logging

The package logs through log/slog. SetVerbose enables debug output for
layout passes and interaction transitions.
*/
package gui
