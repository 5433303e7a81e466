package gui

// Emitter turns a resolved tree into draw instances.
type Emitter struct {
	shaper *shaper
}

// NewEmitter creates an Emitter that shapes text exactly like r measured it.
func NewEmitter(r *Resolver) *Emitter {
	return &Emitter{shaper: r.shaper}
}

// Emit appends instances for t to out in pre-order, so parents paint
// beneath their children. Widgets with a zero color draw no quad; text is
// emitted per glyph in TextColor.
func (e *Emitter) Emit(t *Tree, out *InstanceList) {
	t.Walk(t.Root(), func(_ int, w *Widget) {
		if !w.Color.IsZero() {
			out.AddQuad(w.ComputedPos, w.ComputedSize, w.Color, w.BorderRadius)
		}
		if w.Text != "" && !w.TextColor.IsZero() {
			e.emitText(w, out)
		}
	})
}

func (e *Emitter) emitText(w *Widget, out *InstanceList) {
	bound := w.wrapWidth
	if w.Width.Type != SizeText && w.Height.Type != SizeText && w.TextWrap {
		bound = w.InnerSize().X
	}
	size := w.fontSize()
	origin := w.InnerPos()
	e.shaper.walk(w.Text, size, bound, func(_ rune, g GlyphInfo, pen Vec2) {
		out.AddGlyph(
			origin.Add(pen).Add(g.LocalOffset.Mul(size)),
			g.SizeUnorm.Mul(size),
			g.AtlasOffset,
			g.AtlasDimensions,
			w.TextColor,
		)
	})
}
