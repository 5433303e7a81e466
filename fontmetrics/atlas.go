// Package fontmetrics rasterizes a TrueType/OpenType font into a grid glyph
// atlas and serves its metrics to the gui layout engine.
//
// Metrics are normalized to the font's line height, so one atlas serves
// every font size.
package fontmetrics

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	gui "github.com/go-theft-auto/flexgui"
)

// ErrNoGlyphs is returned when none of the requested runes exist in the font.
var ErrNoGlyphs = errors.New("font has none of the requested glyphs")

// Options configures rasterization.
type Options struct {
	// Size is the raster line size in pixels. Larger atlases look sharper
	// when scaled up. Default 32.
	Size float64

	// Runes lists the characters to rasterize. Default printable ASCII.
	Runes []rune

	// Columns is the number of atlas cells per row. Default 16.
	Columns int

	// Padding is the empty border around each cell in pixels. Default 1,
	// negative for none.
	Padding int
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Size <= 0 {
		out.Size = 32
	}
	if len(out.Runes) == 0 {
		out.Runes = ASCII()
	}
	if out.Columns <= 0 {
		out.Columns = 16
	}
	switch {
	case out.Padding == 0:
		out.Padding = 1
	case out.Padding < 0:
		out.Padding = 0
	}
	return out
}

// ASCII returns the printable ASCII range, space through tilde.
func ASCII() []rune {
	runes := make([]rune, 0, '~'-' '+1)
	for r := ' '; r <= '~'; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Atlas is a rasterized glyph set. It implements gui.GlyphMetricsProvider.
type Atlas struct {
	glyphs     map[rune]gui.GlyphInfo
	image      *image.Alpha
	lineHeight float32
}

// cell is the measured pixel box of one glyph relative to its dot.
type cell struct {
	r             rune
	minX, minY    int
	width, height int
	advance       fixed.Int26_6
}

// New parses ttf and rasterizes the requested runes into a grid atlas.
// Runes missing from the font are left out; Glyph reports them unsupported.
func New(ttf []byte, opts *Options) (*Atlas, error) {
	o := opts.withDefaults()

	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    o.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	lineHeight := fixedToFloat(metrics.Height)
	ascent := metrics.Ascent.Ceil()

	cells := make([]cell, 0, len(o.Runes))
	cellW, cellH := 1, 1
	for _, r := range o.Runes {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		c := cell{
			r:       r,
			minX:    bounds.Min.X.Floor(),
			minY:    bounds.Min.Y.Floor(),
			advance: adv,
		}
		c.width = bounds.Max.X.Ceil() - c.minX
		c.height = bounds.Max.Y.Ceil() - c.minY
		cellW = max(cellW, c.width)
		cellH = max(cellH, c.height)
		cells = append(cells, c)
	}
	if len(cells) == 0 {
		return nil, ErrNoGlyphs
	}

	cellW += 2 * o.Padding
	cellH += 2 * o.Padding
	rows := (len(cells) + o.Columns - 1) / o.Columns
	img := image.NewAlpha(image.Rect(0, 0, o.Columns*cellW, rows*cellH))
	atlasW, atlasH := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())

	a := &Atlas{
		glyphs:     make(map[rune]gui.GlyphInfo, len(cells)),
		image:      img,
		lineHeight: lineHeight,
	}
	for i, c := range cells {
		x := (i%o.Columns)*cellW + o.Padding
		y := (i/o.Columns)*cellH + o.Padding

		if c.width > 0 && c.height > 0 {
			dot := fixed.P(x-c.minX, y-c.minY)
			dr, mask, maskp, _, ok := face.Glyph(dot, c.r)
			if ok {
				draw.DrawMask(img, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
			}
		}

		a.glyphs[c.r] = gui.GlyphInfo{
			AtlasOffset:     gui.Vec2{X: float32(x) / atlasW, Y: float32(y) / atlasH},
			AtlasDimensions: gui.Vec2{X: float32(c.width) / atlasW, Y: float32(c.height) / atlasH},
			SizeUnorm:       gui.Vec2{X: float32(c.width) / lineHeight, Y: float32(c.height) / lineHeight},
			LocalOffset:     gui.Vec2{X: float32(c.minX) / lineHeight, Y: float32(ascent+c.minY) / lineHeight},
			Advance:         gui.Vec2{X: fixedToFloat(c.advance) / lineHeight},
		}
	}

	return a, nil
}

// GoRegular rasterizes the Go Regular font with default options.
func GoRegular() (*Atlas, error) {
	return New(goregular.TTF, nil)
}

// Glyph implements gui.GlyphMetricsProvider.
func (a *Atlas) Glyph(r rune) (gui.GlyphInfo, bool) {
	g, ok := a.glyphs[r]
	return g, ok
}

// Image returns the 8-bit coverage atlas, ready for upload as a
// single-channel texture.
func (a *Atlas) Image() *image.Alpha {
	return a.image
}

// LineHeight returns the raster line height in pixels.
func (a *Atlas) LineHeight() float32 {
	return a.lineHeight
}

// Len returns the number of rasterized glyphs.
func (a *Atlas) Len() int {
	return len(a.glyphs)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
