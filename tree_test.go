package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_RootIsOwnParent(t *testing.T) {
	tree := testTree()
	require.Equal(t, 1, tree.Len())

	root := tree.At(tree.Root())
	assert.Equal(t, 0, root.Parent)
	assert.Equal(t, RootLabel, root.Label)
	assert.Equal(t, Pixels(800), root.Width)
	assert.Equal(t, Pixels(600), root.Height)
}

func TestTree_CreateWidgetLinksParent(t *testing.T) {
	tree := testTree()
	a := tree.CreateWidget(tree.Root(), Widget{Label: "a"})
	b := tree.CreateWidget(a, Widget{Label: "b"})
	c := tree.CreateWidget(a, Widget{Label: "c"})

	assert.Equal(t, []int{a}, tree.At(tree.Root()).Children)
	assert.Equal(t, []int{b, c}, tree.At(a).Children)
	assert.Equal(t, a, tree.At(c).Parent)
	assert.Greater(t, b, a)
	assert.Equal(t, HashLabel(0, "b"), tree.At(b).ID, "id derived from label when unset")
}

func TestTree_CreateWidgetBadParentPanics(t *testing.T) {
	tree := testTree()
	assert.Panics(t, func() { tree.CreateWidget(5, Widget{}) })
	assert.Panics(t, func() { tree.CreateWidget(-1, Widget{}) })
}

func TestTree_ResetKeepsNothing(t *testing.T) {
	tree := testTree()
	a := tree.CreateWidget(tree.Root(), Widget{Label: "a", Clickable: true})
	tree.register(tree.At(a).ID, a)

	tree.Reset(Vec2{X: 100, Y: 50})
	assert.Equal(t, 1, tree.Len())
	assert.Empty(t, tree.At(tree.Root()).Children)
	assert.Equal(t, Pixels(100), tree.At(tree.Root()).Width)
	_, ok := tree.Lookup(HashLabel(0, "a"))
	assert.False(t, ok)
}

func TestTree_RegisterLastWins(t *testing.T) {
	tree := testTree()
	id := HashLabel(0, "dup")
	_, dup := tree.register(id, 1)
	assert.False(t, dup)

	prev, dup := tree.register(id, 2)
	assert.True(t, dup)
	assert.Equal(t, 1, prev)

	idx, ok := tree.Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestTree_BoundsOfNilTree(t *testing.T) {
	var tree *Tree
	_, ok := tree.BoundsOf(1)
	assert.False(t, ok)
}

func TestTree_WalkOrder(t *testing.T) {
	tree := testTree()
	a := tree.CreateWidget(tree.Root(), Widget{Label: "a"})
	tree.CreateWidget(tree.Root(), Widget{Label: "b"})
	tree.CreateWidget(a, Widget{Label: "a1"})

	var pre, post []string
	tree.Walk(tree.Root(), func(_ int, w *Widget) { pre = append(pre, w.Label) })
	tree.walkPost(tree.Root(), func(_ int, w *Widget) { post = append(post, w.Label) })

	assert.Equal(t, []string{RootLabel, "a", "a1", "b"}, pre)
	assert.Equal(t, []string{"a1", "a", "b", RootLabel}, post)
}

func TestHashLabel(t *testing.T) {
	assert.Equal(t, HashLabel(0, "ok"), HashLabel(0, "ok"))
	assert.NotEqual(t, HashLabel(0, "ok"), HashLabel(0, "cancel"))

	scope := HashLabel(0, "row 1")
	assert.NotEqual(t, HashLabel(0, "ok"), HashLabel(scope, "ok"))
	assert.NotEqual(t, ID(0), HashLabel(0, ""))
}

func TestWidget_InnerBox(t *testing.T) {
	w := Widget{
		ComputedPos:  Vec2{X: 10, Y: 20},
		ComputedSize: Vec2{X: 100, Y: 10},
		Padding:      Vec2{X: 4, Y: 4},
		Margin:       Vec2{X: 1, Y: 2},
	}
	assert.Equal(t, Vec2{X: 90, Y: 0}, w.InnerSize(), "inner size clamps at zero")
	assert.Equal(t, Vec2{X: 15, Y: 26}, w.InnerPos())
	assert.Equal(t, Rect{X: 10, Y: 20, W: 100, H: 10}, w.Bounds())
}
