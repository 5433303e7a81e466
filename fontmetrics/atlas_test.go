package fontmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	gui "github.com/go-theft-auto/flexgui"
)

func TestGoRegular(t *testing.T) {
	atlas, err := GoRegular()
	require.NoError(t, err)

	assert.Equal(t, len(ASCII()), atlas.Len())
	assert.Greater(t, atlas.LineHeight(), float32(30))

	b := atlas.Image().Bounds()
	assert.Equal(t, 0, b.Dx()%16)
	assert.Greater(t, b.Dy(), 0)

	a, ok := atlas.Glyph('A')
	require.True(t, ok)
	assert.Greater(t, a.Advance.X, float32(0))
	assert.InDelta(t, 0.6, a.SizeUnorm.Y, 0.3)
	assert.GreaterOrEqual(t, a.LocalOffset.Y, float32(0))
	assert.LessOrEqual(t, a.LocalOffset.Y+a.SizeUnorm.Y, float32(1.01))
	assert.LessOrEqual(t, a.AtlasOffset.X+a.AtlasDimensions.X, float32(1))

	i, _ := atlas.Glyph('i')
	w, _ := atlas.Glyph('W')
	assert.Less(t, i.Advance.X, w.Advance.X, "proportional font")

	space, ok := atlas.Glyph(' ')
	require.True(t, ok)
	assert.Greater(t, space.Advance.X, float32(0))
	assert.Equal(t, float32(0), space.SizeUnorm.X)

	_, ok = atlas.Glyph('é')
	assert.False(t, ok, "only the requested runes are rasterized")
}

func TestAtlasHasCoverage(t *testing.T) {
	atlas, err := New(goregularTTF(), &Options{Runes: []rune("M"), Columns: 1})
	require.NoError(t, err)

	img := atlas.Image()
	var lit int
	for _, px := range img.Pix {
		if px > 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 0)
}

func TestNewCustomRunes(t *testing.T) {
	atlas, err := New(goregularTTF(), &Options{Size: 16, Runes: []rune("abcé")})
	require.NoError(t, err)
	assert.Equal(t, 4, atlas.Len())

	_, ok := atlas.Glyph('é')
	assert.True(t, ok)
}

func TestNewInvalidFont(t *testing.T) {
	_, err := New([]byte("not a font"), nil)
	assert.ErrorContains(t, err, "parse font")
}

func TestNoGlyphs(t *testing.T) {
	_, err := New(goregularTTF(), &Options{Runes: []rune{0x10FFF0}})
	assert.ErrorIs(t, err, ErrNoGlyphs)
}

func TestMeasureWithAtlas(t *testing.T) {
	atlas, err := GoRegular()
	require.NoError(t, err)

	one := gui.MeasureText(atlas, "Hello", 20, 0)
	two := gui.MeasureText(atlas, "Hello", 40, 0)
	assert.Equal(t, 1, one.Lines)
	assert.InDelta(t, 2*one.Width, two.Width, 1e-3, "metrics scale with font size")
	assert.Equal(t, float32(20), one.Height)
}

func goregularTTF() []byte {
	return goregular.TTF
}
