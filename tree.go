package gui

import "fmt"

// RootLabel is the label of the synthesized root widget.
const RootLabel = "__root"

// Tree is the arena holding one frame's widgets.
// Parent and child links are indices into the arena; index 0 is the root and
// is its own parent. Children always have larger indices than their parent,
// because a parent must exist before a child can reference it.
type Tree struct {
	widgets []Widget

	// byID maps clickable widget IDs to their index (last insertion wins).
	byID map[ID]int

	overflows []Overflow
}

// NewTree creates a tree whose root covers a screen of the given size.
func NewTree(screen Vec2) *Tree {
	t := &Tree{
		widgets: make([]Widget, 0, 64),
		byID:    make(map[ID]int),
	}
	t.Reset(screen)
	return t
}

// Reset discards every widget and synthesizes a new root.
// Retains allocated capacity to avoid reallocations.
func (t *Tree) Reset(screen Vec2) {
	for i := range t.widgets {
		t.widgets[i] = Widget{}
	}
	t.widgets = t.widgets[:0]
	clear(t.byID)
	t.overflows = t.overflows[:0]

	t.widgets = append(t.widgets, Widget{
		Label:  RootLabel,
		ID:     HashLabel(0, RootLabel),
		Width:  Pixels(screen.X),
		Height: Pixels(screen.Y),
		Parent: 0,
	})
}

// Root returns the index of the root widget.
func (t *Tree) Root() int { return 0 }

// Len returns the number of widgets, root included.
func (t *Tree) Len() int { return len(t.widgets) }

// At returns the widget at index i.
func (t *Tree) At(i int) *Widget { return &t.widgets[i] }

// CreateWidget appends w as the last child of parent and returns its index.
// The widget's ID is derived from its label when unset.
// An unknown parent index is a programmer error and panics.
func (t *Tree) CreateWidget(parent int, w Widget) int {
	if parent < 0 || parent >= len(t.widgets) {
		panic(fmt.Sprintf("gui: parent index %d out of range [0,%d)", parent, len(t.widgets)))
	}
	if w.ID == 0 {
		w.ID = HashLabel(0, w.Label)
	}
	w.Parent = parent
	w.Children = nil
	idx := len(t.widgets)
	t.widgets = append(t.widgets, w)
	t.widgets[parent].Children = append(t.widgets[parent].Children, idx)
	return idx
}

// register records idx as the hit-test target for id.
// It returns the previously registered index, if any.
func (t *Tree) register(id ID, idx int) (prev int, dup bool) {
	prev, dup = t.byID[id]
	t.byID[id] = idx
	return prev, dup
}

// Lookup returns the index of the clickable widget registered under id.
func (t *Tree) Lookup(id ID) (int, bool) {
	if t == nil {
		return 0, false
	}
	idx, ok := t.byID[id]
	return idx, ok
}

// BoundsOf returns the laid-out rectangle of the clickable widget with id.
func (t *Tree) BoundsOf(id ID) (Rect, bool) {
	idx, ok := t.Lookup(id)
	if !ok {
		return Rect{}, false
	}
	return t.widgets[idx].Bounds(), true
}

// Overflows returns the overflow diagnostics recorded by the last Resolve.
func (t *Tree) Overflows() []Overflow {
	return t.overflows
}

// Walk visits the subtree rooted at i in pre-order (parent before children,
// children in insertion order).
func (t *Tree) Walk(i int, fn func(i int, w *Widget)) {
	fn(i, &t.widgets[i])
	for _, c := range t.widgets[i].Children {
		t.Walk(c, fn)
	}
}

// walkPost visits the subtree rooted at i in post-order.
func (t *Tree) walkPost(i int, fn func(i int, w *Widget)) {
	for _, c := range t.widgets[i].Children {
		t.walkPost(c, fn)
	}
	fn(i, &t.widgets[i])
}
