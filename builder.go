package gui

// Builder declares one widget. Setters return a modified copy, so a
// partially configured Builder can be reused as a template:
//
//	card := ctx.Widget("card").Direction(gui.Column).Padding(8, 8)
//	left := card.Width(gui.Percent(0.5)).Render()
//	ctx.Label(left.Index, "Left")
//
// Render is the only call with side effects.
type Builder struct {
	ctx    *Context
	parent int
	w      Widget

	hotColor    Vec4
	activeColor Vec4
}

// Response is what Render reports about the inserted widget.
type Response struct {
	Interaction

	Index int // arena index, usable as a parent for later widgets
	ID    ID
}

// Widget starts declaring a widget under the root.
// Both axes default to ChildrenSum and text uses the theme's font size and color.
func (ctx *Context) Widget(label string) Builder {
	return Builder{
		ctx:    ctx,
		parent: ctx.tree.Root(),
		w: Widget{
			Label:     label,
			ID:        ctx.GetID(label),
			Width:     ChildrenSum(),
			Height:    ChildrenSum(),
			FontSize:  ctx.theme.FontSize,
			TextColor: ctx.theme.TextColor,
		},
	}
}

// Parent sets the index of the widget's parent.
func (b Builder) Parent(index int) Builder { b.parent = index; return b }

// Pos sets an offset added to the widget's flow position.
func (b Builder) Pos(x, y float32) Builder { b.w.Pos = Vec2{X: x, Y: y}; return b }

// Width sets the horizontal sizing strategy.
func (b Builder) Width(k SizeKind) Builder { b.w.Width = k; return b }

// Height sets the vertical sizing strategy.
func (b Builder) Height(k SizeKind) Builder { b.w.Height = k; return b }

// Size sets both sizing strategies.
func (b Builder) Size(width, height SizeKind) Builder {
	b.w.Width = width
	b.w.Height = height
	return b
}

// Color sets the background color. The zero color draws nothing.
func (b Builder) Color(c Vec4) Builder { b.w.Color = c; return b }

// HotColor sets the background used while the pointer is over a clickable widget.
func (b Builder) HotColor(c Vec4) Builder { b.hotColor = c; return b }

// ActiveColor sets the background used while a clickable widget is pressed.
func (b Builder) ActiveColor(c Vec4) Builder { b.activeColor = c; return b }

// BorderRadius rounds the background's corners.
func (b Builder) BorderRadius(r float32) Builder { b.w.BorderRadius = r; return b }

// Padding sets the inner padding on each side.
func (b Builder) Padding(x, y float32) Builder { b.w.Padding = Vec2{X: x, Y: y}; return b }

// Margin sets the margin on each side.
func (b Builder) Margin(x, y float32) Builder { b.w.Margin = Vec2{X: x, Y: y}; return b }

// Gap sets the spacing between children.
func (b Builder) Gap(g float32) Builder { b.w.Gap = g; return b }

// Direction sets the axis children stack along.
func (b Builder) Direction(d Direction) Builder { b.w.Direction = d; return b }

// MainAxis sets the alignment of children along the main axis.
func (b Builder) MainAxis(a Alignment) Builder { b.w.MainAxisAlignment = a; return b }

// CrossAxis sets the alignment of children along the cross axis.
func (b Builder) CrossAxis(a Alignment) Builder { b.w.CrossAxisAlignment = a; return b }

// Text sets the widget's text.
func (b Builder) Text(s string) Builder { b.w.Text = s; return b }

// TextColor sets the text color.
func (b Builder) TextColor(c Vec4) Builder { b.w.TextColor = c; return b }

// FontSize sets the font size in pixels (the line height).
func (b Builder) FontSize(size float32) Builder { b.w.FontSize = size; return b }

// Wrap enables wrapping text at the available width.
func (b Builder) Wrap(enabled bool) Builder { b.w.TextWrap = enabled; return b }

// Clickable makes the widget take part in hot/active tracking.
func (b Builder) Clickable(enabled bool) Builder { b.w.Clickable = enabled; return b }

// Render polls interaction for clickable widgets, inserts the widget into
// the frame's tree and returns its index and interaction result.
//
// Hit testing uses the widget's geometry from the previous frame, found by
// ID, because this frame's layout is not resolved until GUI.End.
func (b Builder) Render() Response {
	ctx := b.ctx
	w := b.w

	var in Interaction
	if w.Clickable {
		bounds, ok := ctx.prev.BoundsOf(w.ID)
		in = ctx.state.Interact(w.ID, bounds, ok, ctx.input)
		switch {
		case in.Active && !b.activeColor.IsZero():
			w.Color = b.activeColor
		case in.Hovered && !b.hotColor.IsZero():
			w.Color = b.hotColor
		}
	}

	idx := ctx.tree.CreateWidget(b.parent, w)
	if w.Clickable {
		ctx.register(ctx.tree.At(idx), idx)
	}

	return Response{Interaction: in, Index: idx, ID: w.ID}
}
