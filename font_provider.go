package gui

// GlyphMetricsProvider supplies per-character metrics for text layout and
// glyph emission. It abstracts font loading and atlas management, allowing
// different implementations to be injected (x/image fonts, bitmap fonts,
// fixed-advance fakes for testing).
//
// All GlyphInfo values are normalized to line-height units: multiplying by a
// font size in pixels gives pixel metrics.
//
// Example usage:
//
//	glyphs, err := fontmetrics.GoRegular()
//	if err != nil {
//	    return err
//	}
//	ui := gui.New(renderer, glyphs)
type GlyphMetricsProvider interface {
	// Glyph returns the metrics for r. The boolean is false when r is not
	// part of the provider's pre-rasterized set.
	Glyph(r rune) (GlyphInfo, bool)
}

// GlyphInfo describes one glyph, normalized to line-height units.
type GlyphInfo struct {
	// AtlasOffset is the top-left of the glyph cell in the atlas, in [0,1] texture space.
	AtlasOffset Vec2
	// AtlasDimensions is the extent of the glyph cell in the atlas, in [0,1] texture space.
	AtlasDimensions Vec2
	// SizeUnorm is the rendered glyph size.
	SizeUnorm Vec2
	// LocalOffset is the offset of the glyph quad from the pen position.
	LocalOffset Vec2
	// Advance is how far the pen moves after this glyph.
	Advance Vec2
}

// GlyphFunc adapts an ordinary function to GlyphMetricsProvider.
type GlyphFunc func(r rune) (GlyphInfo, bool)

// Glyph calls f(r).
func (f GlyphFunc) Glyph(r rune) (GlyphInfo, bool) {
	return f(r)
}
