package gui

import (
	"log/slog"
)

// DefaultFallbackGlyph replaces characters the glyph provider does not know.
const DefaultFallbackGlyph = '?'

// TextLayout is the measured bounding box of a shaped text run.
type TextLayout struct {
	Width  float32 // widest line in pixels
	Height float32 // Lines * font size
	Lines  int
}

// shaper lays text out glyph by glyph. The Text sizing pass and the draw
// emitter both go through walk, so measured boxes and emitted glyphs agree.
type shaper struct {
	glyphs   GlyphMetricsProvider
	fallback rune
	logger   *slog.Logger

	// warned remembers runes already reported as unsupported.
	warned map[rune]bool
}

func newShaper(glyphs GlyphMetricsProvider, fallback rune, logger *slog.Logger) *shaper {
	if logger == nil {
		logger = guiLogger
	}
	return &shaper{
		glyphs:   glyphs,
		fallback: fallback,
		logger:   logger,
		warned:   make(map[rune]bool),
	}
}

// glyph resolves r, substituting the fallback glyph for unsupported runes.
// It returns false when neither r nor the fallback is available; the caller
// then skips the character.
func (s *shaper) glyph(r rune) (GlyphInfo, bool) {
	if s.glyphs == nil {
		return GlyphInfo{}, false
	}
	if g, ok := s.glyphs.Glyph(r); ok {
		return g, true
	}
	if !s.warned[r] {
		s.warned[r] = true
		s.logger.Warn("unsupported glyph", "rune", string(r), "code", int(r), "fallback", string(s.fallback))
	}
	if s.fallback != 0 && s.fallback != r {
		return s.glyphs.Glyph(s.fallback)
	}
	return GlyphInfo{}, false
}

// walk runs the greedy line-break simulation over text at fontSize.
// A line breaks before a glyph whose advance would push the pen strictly past
// maxWidth, and on every '\n'. maxWidth <= 0 disables wrapping. fn, if not
// nil, receives each placed glyph and its pen position relative to the text
// origin.
func (s *shaper) walk(text string, fontSize, maxWidth float32, fn func(r rune, g GlyphInfo, pen Vec2)) TextLayout {
	if text == "" {
		return TextLayout{}
	}

	var (
		penX  float32
		line  int
		width float32
	)
	for _, r := range text {
		if r == '\n' {
			width = max(width, penX)
			penX = 0
			line++
			continue
		}
		g, ok := s.glyph(r)
		if !ok {
			continue
		}
		adv := g.Advance.X * fontSize
		if maxWidth > 0 && penX > 0 && penX+adv > maxWidth {
			width = max(width, penX)
			penX = 0
			line++
		}
		if fn != nil {
			fn(r, g, Vec2{X: penX, Y: float32(line) * fontSize})
		}
		penX += adv
	}
	width = max(width, penX)

	lines := line + 1
	return TextLayout{
		Width:  width,
		Height: float32(lines) * fontSize,
		Lines:  lines,
	}
}

// MeasureText returns the bounds of text at fontSize wrapped to maxWidth
// (maxWidth <= 0 disables wrapping), using the same rules as layout.
func MeasureText(glyphs GlyphMetricsProvider, text string, fontSize, maxWidth float32) TextLayout {
	s := newShaper(glyphs, DefaultFallbackGlyph, nil)
	return s.walk(text, fontSize, maxWidth, nil)
}
