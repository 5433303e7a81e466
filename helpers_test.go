package gui

// monoGlyphs returns a provider where every printable ASCII rune advances
// by adv line-height units and occupies a full-height cell that wide.
func monoGlyphs(adv float32) GlyphMetricsProvider {
	return GlyphFunc(func(r rune) (GlyphInfo, bool) {
		if r < ' ' || r > '~' {
			return GlyphInfo{}, false
		}
		return GlyphInfo{
			AtlasOffset:     Vec2{X: float32(r-' ') / 95},
			AtlasDimensions: Vec2{X: 1.0 / 95, Y: 1},
			SizeUnorm:       Vec2{X: adv, Y: 1},
			Advance:         Vec2{X: adv},
		}, true
	})
}

func testTree() *Tree {
	return NewTree(Vec2{X: 800, Y: 600})
}

func resolveWith(t *Tree, legacy bool) {
	NewResolver(monoGlyphs(0.5), ResolverConfig{Legacy: legacy}).Resolve(t)
}

// box is a widget with pixel sizes on both axes.
func box(label string, w, h float32) Widget {
	return Widget{Label: label, Width: Pixels(w), Height: Pixels(h)}
}
