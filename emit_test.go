package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emitTree(t *testing.T, tree *Tree) *InstanceList {
	t.Helper()
	r := NewResolver(monoGlyphs(0.5), ResolverConfig{})
	r.Resolve(tree)
	out := &InstanceList{}
	NewEmitter(r).Emit(tree, out)
	return out
}

func TestEmit_QuadsAndGlyphsInPaintOrder(t *testing.T) {
	tree := testTree()
	panel := tree.CreateWidget(tree.Root(), Widget{
		Label: "panel", Width: ChildrenSum(), Height: ChildrenSum(),
		Color: ColorDarkGray, BorderRadius: 4, Padding: Vec2{X: 2, Y: 2},
	})
	tree.CreateWidget(panel, Widget{
		Label: "label", Text: "hi", FontSize: 10, TextColor: ColorWhite,
		Width: TextSize(), Height: TextSize(),
	})
	tree.CreateWidget(tree.Root(), Widget{Label: "invisible", Width: Pixels(10), Height: Pixels(10)})

	out := emitTree(t, tree)
	require.Equal(t, 3, out.Len())
	assert.Equal(t, 1, out.Count(InstanceQuad))
	assert.Equal(t, 2, out.Count(InstanceGlyph))

	quad := out.Instances[0]
	assert.Equal(t, InstanceQuad, quad.Type)
	assert.Equal(t, Vec2{X: 14, Y: 14}, quad.Scale)
	assert.Equal(t, float32(4), quad.BorderRadius)

	h, i := out.Instances[1], out.Instances[2]
	assert.Equal(t, Vec2{X: 2, Y: 2}, h.Position)
	assert.Equal(t, Vec2{X: 7, Y: 2}, i.Position)
	assert.Equal(t, Vec2{X: 5, Y: 10}, h.Scale)
	assert.Equal(t, ColorWhite, h.Color)
}

func TestEmit_WrappedGlyphsMatchMeasuredBox(t *testing.T) {
	tree := testTree()
	p := tree.CreateWidget(tree.Root(), Widget{Label: "p", Width: Pixels(15), Height: ChildrenSum(), Direction: Column})
	l := tree.CreateWidget(p, Widget{
		Label: "l", Text: "abcdefgh", FontSize: 10, TextColor: ColorWhite,
		Width: TextSize(), Height: TextSize(), TextWrap: true,
	})

	out := emitTree(t, tree)
	box := tree.At(l).Bounds()
	require.Equal(t, 8, out.Count(InstanceGlyph))
	for _, g := range out.Instances {
		assert.LessOrEqual(t, g.Position.X+g.Scale.X, box.X+box.W)
		assert.LessOrEqual(t, g.Position.Y+g.Scale.Y, box.Y+box.H)
	}
	assert.Equal(t, float32(20), out.Instances[len(out.Instances)-1].Position.Y, "third line")
}

func TestEmit_TransparentSkipped(t *testing.T) {
	tree := testTree()
	tree.CreateWidget(tree.Root(), Widget{
		Label: "ghost", Width: Pixels(10), Height: Pixels(10),
		Color: Vec4{X: 1, Y: 1, Z: 1, W: 0},
		Text:  "x", TextColor: Vec4{},
	})
	assert.Equal(t, 0, emitTree(t, tree).Len())
}

func TestInstanceListPool(t *testing.T) {
	l := AcquireInstanceList()
	l.AddQuad(Vec2{}, Vec2{X: 1, Y: 1}, ColorRed, 0)
	ReleaseInstanceList(l)

	l = AcquireInstanceList()
	assert.Equal(t, 0, l.Len(), "acquired lists are cleared")
	ReleaseInstanceList(l)
	ReleaseInstanceList(nil)
}
