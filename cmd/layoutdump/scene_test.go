package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/flexgui"
)

var halfAdvance = gui.GlyphFunc(func(r rune) (gui.GlyphInfo, bool) {
	return gui.GlyphInfo{SizeUnorm: gui.Vec2{X: 0.5, Y: 1}, Advance: gui.Vec2{X: 0.5}}, true
})

const toolbarScene = `
width = 400
height = 300

[[widget]]
label = "toolbar"
width = "100%"
direction = "row"
gap = 4
color = "#202020"

  [[widget.children]]
  label = "Open"
  text = "Open"
  width = "text"
  height = "text"
  clickable = true

  [[widget.children]]
  label = "fill"
  width = "grow"
  height = "10px"
`

func TestParseScene(t *testing.T) {
	s, err := ParseScene([]byte(toolbarScene))
	require.NoError(t, err)

	assert.Equal(t, float32(400), s.Width)
	require.Len(t, s.Widgets, 1)
	bar := s.Widgets[0]
	assert.Equal(t, gui.Percent(1), *bar.Width)
	assert.Nil(t, bar.Height)
	assert.Equal(t, gui.Row, bar.Direction)
	require.Len(t, bar.Children, 2)
	assert.Equal(t, gui.Grow(), *bar.Children[1].Width)
}

func TestParseSceneDefaults(t *testing.T) {
	s, err := ParseScene([]byte(`[[widget]]
label = "a"`))
	require.NoError(t, err)
	assert.Equal(t, float32(800), s.Width)
	assert.Equal(t, float32(600), s.Height)
}

func TestParseSceneErrors(t *testing.T) {
	_, err := ParseScene([]byte(`width = -1`))
	assert.Error(t, err)

	_, err = ParseScene([]byte("[[widget]]\nwidth = \"wide\""))
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	s, err := ParseScene([]byte(toolbarScene))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, dump(&out, s, halfAdvance))

	text := out.String()
	assert.Contains(t, text, "toolbar")
	assert.Contains(t, text, "instances: 5 (quads 1, glyphs 4)")
	assert.NotContains(t, text, "overflow")
}

func TestDumpReportsOverflow(t *testing.T) {
	s, err := ParseScene([]byte(`
width = 100
height = 100

[[widget]]
label = "box"
width = "50px"
height = "50px"

  [[widget.children]]
  label = "big"
  width = "80px"
  height = "10px"
`))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, dump(&out, s, halfAdvance))
	assert.Contains(t, out.String(), `overflow: "box"`)
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(toolbarScene), 0o600))

	s, err := LoadScene(path)
	require.NoError(t, err)
	assert.Len(t, s.Widgets, 1)

	_, err = LoadScene(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
