package gui

import "hash/fnv"

// ID identifies a widget across frames.
// Widgets are rebuilt every frame, so the ID is the only join key between
// the current tree and the previous one. The zero ID means "no widget".
type ID uint64

// HashLabel returns the ID for label under the given scope.
// Scope 0 is the root scope, so HashLabel(0, l) is the plain label hash.
func HashLabel(scope ID, label string) ID {
	h := fnv.New64a()
	if scope != 0 {
		var b [8]byte
		for i := range b {
			b[i] = byte(scope >> (8 * i))
		}
		h.Write(b[:])
	}
	h.Write([]byte(label))
	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

// GetID returns the stable ID for label in the current ID scope.
func (ctx *Context) GetID(label string) ID {
	return HashLabel(ctx.CurrentID(), label)
}

// PushID pushes a scope onto the ID stack.
// Widgets created until the matching PopID hash their labels relative to it,
// so the same label can be reused inside loops.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the last ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current scope (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
