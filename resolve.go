package gui

import (
	"log/slog"

	"github.com/chewxy/math32"
)

// overflowEpsilon ignores float noise when checking containers for overflow.
const overflowEpsilon = 0.01

var axes = [2]Axis{AxisX, AxisY}

// Overflow records a container whose children do not fit its content box.
// Overflow is never corrected; it is reported so callers can spot it.
type Overflow struct {
	Index  int
	Label  string
	Axis   Axis
	Excess float32 // pixels past the content box
}

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	// Legacy reproduces the older layout arithmetic: ChildrenSum
	// ignores gaps and adds a single inset on the cross axis, Grow
	// siblings each subtract every other sibling instead of sharing the
	// remainder, TextSize ignores the widget's own padding, and alignment
	// ignores gaps.
	Legacy bool

	// Fallback replaces unsupported runes. Zero selects
	// DefaultFallbackGlyph; a negative value skips unsupported runes.
	Fallback rune

	Logger *slog.Logger
}

// Resolver turns every widget's SizeKinds into ComputedSize and ComputedPos.
//
// Resolve runs seven passes over the tree, each completing before the next
// starts: fixed, percent, text, children-sum, grow, violations and
// positioning. Later passes only read values that earlier passes finalized.
type Resolver struct {
	legacy bool
	shaper *shaper
	logger *slog.Logger
}

// NewResolver creates a Resolver measuring text with glyphs.
func NewResolver(glyphs GlyphMetricsProvider, cfg ResolverConfig) *Resolver {
	logger := cfg.Logger
	if logger == nil {
		logger = guiLogger
	}
	fallback := cfg.Fallback
	switch {
	case fallback == 0:
		fallback = DefaultFallbackGlyph
	case fallback < 0:
		fallback = 0
	}
	return &Resolver{
		legacy: cfg.Legacy,
		shaper: newShaper(glyphs, fallback, logger),
		logger: logger,
	}
}

// Legacy reports whether the resolver runs in legacy-parity mode.
func (r *Resolver) Legacy() bool { return r.legacy }

// Resolve lays out t in place.
func (r *Resolver) Resolve(t *Tree) {
	root := t.Root()

	t.Walk(root, func(_ int, w *Widget) { r.fixed(w) })
	t.Walk(root, func(i int, w *Widget) { r.percent(t, i, w) })
	t.Walk(root, func(i int, w *Widget) { r.text(t, i, w) })
	t.walkPost(root, func(_ int, w *Widget) { r.childrenSum(t, w) })
	t.Walk(root, func(_ int, w *Widget) { r.grow(t, w) })

	t.overflows = t.overflows[:0]
	t.Walk(root, func(i int, w *Widget) { r.violations(t, i, w) })

	rw := t.At(root)
	rw.ComputedPos = rw.Pos
	t.Walk(root, func(_ int, w *Widget) { r.position(t, w) })
}

// fixed writes Pixels sizes and clears everything else, so resolving the
// same tree twice gives the same result.
func (r *Resolver) fixed(w *Widget) {
	w.ComputedPos = Vec2{}
	w.wrapWidth = 0
	for _, a := range axes {
		k := w.Sizing(a)
		if k.Type == SizePixels {
			w.ComputedSize.Set(a, k.Value)
		} else {
			w.ComputedSize.Set(a, 0)
		}
	}
}

func (r *Resolver) percent(t *Tree, i int, w *Widget) {
	if i == t.Root() {
		return
	}
	inner := t.At(w.Parent).InnerSize()
	for _, a := range axes {
		if k := w.Sizing(a); k.Type == SizePercent {
			w.ComputedSize.Set(a, k.Value*inner.Get(a))
		}
	}
}

func (r *Resolver) text(t *Tree, i int, w *Widget) {
	if w.Width.Type != SizeText && w.Height.Type != SizeText {
		return
	}
	w.wrapWidth = r.wrapBound(t, i, w)
	layout := r.shaper.walk(w.Text, w.fontSize(), w.wrapWidth, nil)

	size := Vec2{X: layout.Width, Y: layout.Height}
	if !r.legacy {
		size = size.Add(Vec2{X: 2 * w.inset(AxisX), Y: 2 * w.inset(AxisY)})
	}
	for _, a := range axes {
		if w.Sizing(a).Type == SizeText {
			w.ComputedSize.Set(a, size.Get(a))
		}
	}
}

// wrapBound returns the width the text of w wraps against, 0 for none.
// A TextSize width wraps against the parent's content box; any other width
// wraps against the widget's own content box.
func (r *Resolver) wrapBound(t *Tree, i int, w *Widget) float32 {
	if !w.TextWrap {
		return 0
	}
	var bound float32
	if w.Width.Type == SizeText {
		if i == t.Root() {
			return 0
		}
		bound = t.At(w.Parent).InnerSize().X
		if !r.legacy {
			bound -= 2 * w.inset(AxisX)
		}
	} else {
		bound = w.InnerSize().X
	}
	return math32.Max(0, bound)
}

func (r *Resolver) childrenSum(t *Tree, w *Widget) {
	if w.Width.Type != SizeChildren && w.Height.Type != SizeChildren {
		return
	}
	main := w.Direction.MainAxis()
	n := len(w.Children)
	for _, a := range axes {
		if w.Sizing(a).Type != SizeChildren {
			continue
		}
		var size float32
		if a == main {
			for _, c := range w.Children {
				size += t.At(c).ComputedSize.Get(a)
			}
			if !r.legacy && n > 1 {
				size += w.Gap * float32(n-1)
			}
			size += 2 * w.inset(a)
		} else {
			for _, c := range w.Children {
				size = math32.Max(size, t.At(c).ComputedSize.Get(a))
			}
			if r.legacy {
				size += w.inset(a)
			} else {
				size += 2 * w.inset(a)
			}
		}
		w.ComputedSize.Set(a, size)
	}
}

// grow sizes the Grow children of parent p. It runs parent-first, so p's
// own size is final before its children read it.
func (r *Resolver) grow(t *Tree, p *Widget) {
	if len(p.Children) == 0 {
		return
	}
	inner := p.InnerSize()
	main := p.Direction.MainAxis()
	cross := main.Other()

	for _, c := range p.Children {
		cw := t.At(c)
		if cw.Sizing(cross).Type == SizeGrow {
			cw.ComputedSize.Set(cross, inner.Get(cross))
		}
	}

	if r.legacy {
		for _, c := range p.Children {
			cw := t.At(c)
			if cw.Sizing(main).Type != SizeGrow {
				continue
			}
			var others float32
			for _, o := range p.Children {
				if o != c {
					others += t.At(o).ComputedSize.Get(main)
				}
			}
			cw.ComputedSize.Set(main, math32.Max(0, inner.Get(main)-others))
		}
		return
	}

	var used float32
	growing := 0
	for _, c := range p.Children {
		cw := t.At(c)
		if cw.Sizing(main).Type == SizeGrow {
			growing++
			continue
		}
		used += cw.ComputedSize.Get(main)
	}
	if growing == 0 {
		return
	}
	used += p.Gap * float32(len(p.Children)-1)
	share := math32.Max(0, inner.Get(main)-used) / float32(growing)
	for _, c := range p.Children {
		cw := t.At(c)
		if cw.Sizing(main).Type == SizeGrow {
			cw.ComputedSize.Set(main, share)
		}
	}
}

// violations records containers whose children overflow their content box.
// Geometry is left untouched.
func (r *Resolver) violations(t *Tree, i int, p *Widget) {
	if len(p.Children) == 0 {
		return
	}
	inner := p.InnerSize()
	main := p.Direction.MainAxis()
	cross := main.Other()

	total := p.Gap * float32(len(p.Children)-1)
	var widest float32
	for _, c := range p.Children {
		size := t.At(c).ComputedSize
		total += size.Get(main)
		widest = math32.Max(widest, size.Get(cross))
	}

	r.recordOverflow(t, i, p, main, total-inner.Get(main))
	r.recordOverflow(t, i, p, cross, widest-inner.Get(cross))
}

func (r *Resolver) recordOverflow(t *Tree, i int, p *Widget, a Axis, excess float32) {
	if excess <= overflowEpsilon {
		return
	}
	t.overflows = append(t.overflows, Overflow{Index: i, Label: p.Label, Axis: a, Excess: excess})
	if guiVerbose() {
		r.logger.Debug("layout overflow", "label", p.Label, "index", i, "axis", a, "excess", excess)
	}
}

// position places the children of p inside its content box.
func (r *Resolver) position(t *Tree, p *Widget) {
	if len(p.Children) == 0 {
		return
	}
	origin := p.InnerPos()
	inner := p.InnerSize()
	main := p.Direction.MainAxis()
	cross := main.Other()

	var total float32
	for _, c := range p.Children {
		total += t.At(c).ComputedSize.Get(main)
	}
	if !r.legacy {
		total += p.Gap * float32(len(p.Children)-1)
	}

	offset := p.MainAxisAlignment.offset(inner.Get(main), total)
	for _, c := range p.Children {
		cw := t.At(c)
		crossOffset := p.CrossAxisAlignment.offset(inner.Get(cross), cw.ComputedSize.Get(cross))

		var pos Vec2
		pos.Set(main, origin.Get(main)+offset)
		pos.Set(cross, origin.Get(cross)+crossOffset)
		cw.ComputedPos = pos.Add(cw.Pos)

		offset += cw.ComputedSize.Get(main) + p.Gap
	}
}
