package gui

// Label draws text sized to its content.
func (ctx *Context) Label(parent int, text string) Response {
	return ctx.Widget(text).
		Parent(parent).
		Size(TextSize(), TextSize()).
		Text(text).
		Render()
}

// WrappedLabel draws text that wraps at the parent's content width.
func (ctx *Context) WrappedLabel(parent int, text string) Response {
	return ctx.Widget(text).
		Parent(parent).
		Size(TextSize(), TextSize()).
		Text(text).
		Wrap(true).
		Render()
}

// Button draws a clickable button sized to its label.
// Clicked is true on the frame a press that started on the button is
// released over it.
//
// Usage:
//
//	if ctx.Button(row.Index, "Save").Clicked {
//	    save()
//	}
func (ctx *Context) Button(parent int, label string) Response {
	return ctx.ButtonWith(ctx.Widget(label).Parent(parent).Size(TextSize(), TextSize()))
}

// ButtonWith renders b as a button, applying the theme's button colors,
// padding and radius on top of b's own configuration. Without explicit
// text the label is drawn, so a button whose caption changes every frame
// can keep a stable label (and ID):
//
//	ctx.ButtonWith(ctx.Widget("counter").Text(fmt.Sprintf("Clicked %d", n)))
func (ctx *Context) ButtonWith(b Builder) Response {
	th := ctx.theme
	if b.w.Text == "" {
		b = b.Text(b.w.Label)
	}
	return b.
		Padding(th.ButtonPadding.X, th.ButtonPadding.Y).
		Color(th.ButtonColor).
		HotColor(th.ButtonHotColor).
		ActiveColor(th.ButtonActiveColor).
		BorderRadius(th.ButtonRadius).
		Clickable(true).
		Render()
}

// Row starts a horizontal container that fits its children.
//
// Usage:
//
//	row := ctx.Row(ctx.Root(), "toolbar").Render()
//	ctx.Button(row.Index, "Open")
//	ctx.Button(row.Index, "Close")
func (ctx *Context) Row(parent int, label string) Builder {
	return ctx.Widget(label).Parent(parent).Direction(Row).Gap(ctx.theme.Gap)
}

// Column starts a vertical container that fits its children.
func (ctx *Context) Column(parent int, label string) Builder {
	return ctx.Widget(label).Parent(parent).Direction(Column).Gap(ctx.theme.Gap)
}

// Panel starts a vertical container with the theme's background and padding.
func (ctx *Context) Panel(parent int, label string) Builder {
	th := ctx.theme
	return ctx.Column(parent, label).
		Color(th.PanelColor).
		Padding(th.PanelPadding.X, th.PanelPadding.Y).
		BorderRadius(th.PanelRadius)
}

// Spacer inserts an invisible widget that takes the parent's leftover space.
func (ctx *Context) Spacer(parent int) int {
	return ctx.Widget("").Parent(parent).Size(Grow(), Pixels(0)).Render().Index
}
