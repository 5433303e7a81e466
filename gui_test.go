package gui_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/flexgui"
)

// mockRenderer records what it was asked to draw.
type mockRenderer struct {
	renderCalls int
	last        []gui.WidgetInstance
	err         error
}

func (m *mockRenderer) Render(l *gui.InstanceList) error {
	m.renderCalls++
	m.last = append(m.last[:0], l.Instances...)
	return m.err
}

func (m *mockRenderer) AtlasTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func (m *mockRenderer) count(t gui.InstanceType) int {
	n := 0
	for _, inst := range m.last {
		if inst.Type == t {
			n++
		}
	}
	return n
}

// fixedGlyphs advances every printable ASCII rune by half the line height.
var fixedGlyphs = gui.GlyphFunc(func(r rune) (gui.GlyphInfo, bool) {
	if r < ' ' || r > '~' {
		return gui.GlyphInfo{}, false
	}
	return gui.GlyphInfo{
		SizeUnorm: gui.Vec2{X: 0.5, Y: 1},
		Advance:   gui.Vec2{X: 0.5},
	}, true
})

var screen = gui.Vec2{X: 800, Y: 600}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, fixedGlyphs)

	ctx := ui.Begin(gui.NewInputState(), screen)
	require.NotNil(t, ctx)

	panel := ctx.Panel(ctx.Root(), "panel").Render()
	ctx.Label(panel.Index, "Hello")
	ctx.Label(panel.Index, "World")

	require.NoError(t, ui.End())
	assert.Equal(t, 1, renderer.renderCalls)
	assert.Equal(t, 1, renderer.count(gui.InstanceQuad))
	assert.Equal(t, 10, renderer.count(gui.InstanceGlyph))

	tree := ui.Tree()
	w := tree.At(panel.Index)
	th := ui.Theme()
	// Two 16px lines stacked in a column, plus gap and padding.
	assert.Equal(t, 2*th.FontSize+th.Gap+2*th.PanelPadding.Y, w.ComputedSize.Y)
}

func TestButtonClickAcrossFrames(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, fixedGlyphs)
	input := gui.NewInputState()

	button := func() gui.Response {
		ctx := ui.Begin(input, screen)
		r := ctx.Button(ctx.Root(), "Save")
		require.NoError(t, ui.End())
		input.Reset()
		return r
	}

	input.SetMousePos(5, 5)
	r := button()
	assert.False(t, r.Hovered, "no geometry exists on the first frame")

	r = button()
	assert.True(t, r.Hovered)
	assert.Equal(t, ui.Theme().ButtonHotColor, renderer.last[0].Color)

	input.SetMouseButton(gui.MouseButtonLeft, true)
	r = button()
	assert.True(t, r.Active)
	assert.False(t, r.Clicked)
	assert.Equal(t, ui.Theme().ButtonActiveColor, renderer.last[0].Color)

	r = button()
	assert.True(t, r.Active, "held button stays active")

	input.SetMouseButton(gui.MouseButtonLeft, false)
	r = button()
	assert.True(t, r.Clicked)
	assert.False(t, r.Active)

	r = button()
	assert.False(t, r.Clicked)
}

func TestButtonDragOffCancels(t *testing.T) {
	ui := gui.New(nil, fixedGlyphs)
	input := gui.NewInputState()
	frame := func() gui.Response {
		ctx := ui.Begin(input, screen)
		r := ctx.Button(ctx.Root(), "Cancel")
		require.NoError(t, ui.End())
		input.Reset()
		return r
	}

	input.SetMousePos(5, 5)
	frame()
	input.SetMouseButton(gui.MouseButtonLeft, true)
	frame()
	input.SetMousePos(700, 500)
	frame()
	input.SetMouseButton(gui.MouseButtonLeft, false)
	r := frame()

	assert.False(t, r.Clicked)
	assert.Equal(t, gui.ID(0), ui.State().Active())
}

func TestDuplicateIDs(t *testing.T) {
	build := func(ui *gui.GUI) error {
		ctx := ui.Begin(nil, screen)
		row := ctx.Row(ctx.Root(), "row").Render()
		ctx.Button(row.Index, "OK")
		ctx.Button(row.Index, "OK")
		return ui.End()
	}

	t.Run("lenient", func(t *testing.T) {
		ui := gui.New(nil, fixedGlyphs, gui.WithLogger(quietLogger()))
		assert.NoError(t, build(ui))
	})

	t.Run("strict", func(t *testing.T) {
		ui := gui.New(nil, fixedGlyphs, gui.WithStrictIDs(), gui.WithLogger(quietLogger()))
		err := build(ui)
		assert.ErrorIs(t, err, gui.ErrDuplicateID)

		// Later widget wins the hit test.
		idx, ok := ui.Tree().Lookup(gui.HashLabel(0, "OK"))
		require.True(t, ok)
		assert.Equal(t, 3, idx)
	})
}

func TestPushIDScopesLabels(t *testing.T) {
	ui := gui.New(nil, fixedGlyphs, gui.WithStrictIDs())
	ctx := ui.Begin(nil, screen)
	list := ctx.Column(ctx.Root(), "list").Render()
	var ids []gui.ID
	for _, row := range []string{"a", "b"} {
		ctx.PushID(row)
		ids = append(ids, ctx.Button(list.Index, "Delete").ID)
		ctx.PopID()
	}
	require.NoError(t, ui.End())
	assert.NotEqual(t, ids[0], ids[1])
	assert.Equal(t, gui.ID(0), ctx.CurrentID())
}

func TestEndWrapsRenderError(t *testing.T) {
	boom := errors.New("device lost")
	ui := gui.New(&mockRenderer{err: boom}, fixedGlyphs)
	ui.Begin(nil, screen)
	err := ui.End()
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "render instances")
}

func TestEndWithoutBegin(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, fixedGlyphs)
	assert.NoError(t, ui.End())
	assert.Equal(t, 0, renderer.renderCalls)
}

func TestLegacyLayoutOption(t *testing.T) {
	measure := func(opts ...gui.GUIOption) gui.Vec2 {
		ui := gui.New(nil, fixedGlyphs, opts...)
		ctx := ui.Begin(nil, screen)
		row := ctx.Row(ctx.Root(), "row").Gap(10).Render()
		ctx.Widget("a").Parent(row.Index).Size(gui.Pixels(20), gui.Pixels(20)).Render()
		ctx.Widget("b").Parent(row.Index).Size(gui.Pixels(20), gui.Pixels(20)).Render()
		require.NoError(t, ui.End())
		return ui.Tree().At(row.Index).ComputedSize
	}

	assert.Equal(t, gui.Vec2{X: 50, Y: 20}, measure())
	assert.Equal(t, gui.Vec2{X: 40, Y: 20}, measure(gui.WithLegacyLayout()))
}

func TestWithTheme(t *testing.T) {
	theme := gui.DefaultTheme()
	theme.FontSize = 32
	ui := gui.New(nil, fixedGlyphs, gui.WithTheme(theme))

	ctx := ui.Begin(nil, screen)
	l := ctx.Label(ctx.Root(), "abc")
	require.NoError(t, ui.End())
	assert.Equal(t, gui.Vec2{X: 48, Y: 32}, ui.Tree().At(l.Index).ComputedSize)
}

func TestSpacerPushesToEnd(t *testing.T) {
	ui := gui.New(nil, fixedGlyphs)
	ctx := ui.Begin(nil, screen)
	bar := ctx.Row(ctx.Root(), "bar").Width(gui.Pixels(200)).Gap(0).Render()
	ctx.Widget("left").Parent(bar.Index).Size(gui.Pixels(20), gui.Pixels(10)).Render()
	ctx.Spacer(bar.Index)
	right := ctx.Widget("right").Parent(bar.Index).Size(gui.Pixels(30), gui.Pixels(10)).Render()
	require.NoError(t, ui.End())

	assert.Equal(t, float32(170), ui.Tree().At(right.Index).ComputedPos.X)
}
