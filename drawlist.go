package gui

import "sync"

// InstanceType tags what a WidgetInstance draws.
type InstanceType uint32

const (
	InstanceQuad  InstanceType = iota // solid, optionally rounded rectangle
	InstanceGlyph                     // textured glyph from the atlas
)

func (t InstanceType) String() string {
	if t == InstanceGlyph {
		return "glyph"
	}
	return "quad"
}

// WidgetInstance is one draw primitive handed to the Renderer.
// Memory layout is flat so a backend can upload the slice as an
// instance buffer without conversion.
type WidgetInstance struct {
	Position     Vec2 // top-left, pixels
	Scale        Vec2 // size, pixels
	AtlasOffset  Vec2 // top-left in atlas texture space (glyphs only)
	AtlasScale   Vec2 // extent in atlas texture space (glyphs only)
	Color        Vec4
	Type         InstanceType
	BorderRadius float32
}

// instanceListPool provides efficient reuse of InstanceList buffers.
// This avoids allocations on every frame, which is critical for
// immediate-mode UI where we rebuild the entire list each frame.
var instanceListPool = sync.Pool{
	New: func() any {
		return &InstanceList{
			Instances: make([]WidgetInstance, 0, 1024),
		}
	},
}

// AcquireInstanceList gets an InstanceList from the pool.
// Call ReleaseInstanceList when done to return it.
func AcquireInstanceList() *InstanceList {
	l := instanceListPool.Get().(*InstanceList)
	l.Clear()
	return l
}

// ReleaseInstanceList returns an InstanceList to the pool for reuse.
func ReleaseInstanceList(l *InstanceList) {
	if l != nil {
		instanceListPool.Put(l)
	}
}

// InstanceList accumulates draw primitives for a frame, in paint order.
type InstanceList struct {
	Instances []WidgetInstance
}

// Clear resets the list for a new frame.
// Retains allocated capacity to avoid reallocations.
func (l *InstanceList) Clear() {
	l.Instances = l.Instances[:0]
}

// Len returns the number of instances.
func (l *InstanceList) Len() int {
	return len(l.Instances)
}

// AddQuad appends a filled rectangle.
func (l *InstanceList) AddQuad(pos, size Vec2, color Vec4, radius float32) {
	if color.W <= 0 { // Skip fully transparent
		return
	}
	l.Instances = append(l.Instances, WidgetInstance{
		Position:     pos,
		Scale:        size,
		Color:        color,
		Type:         InstanceQuad,
		BorderRadius: radius,
	})
}

// AddGlyph appends a glyph quad sampling the atlas cell at atlasOffset.
func (l *InstanceList) AddGlyph(pos, size, atlasOffset, atlasScale Vec2, color Vec4) {
	if color.W <= 0 || size.X <= 0 || size.Y <= 0 {
		return
	}
	l.Instances = append(l.Instances, WidgetInstance{
		Position:    pos,
		Scale:       size,
		AtlasOffset: atlasOffset,
		AtlasScale:  atlasScale,
		Color:       color,
		Type:        InstanceGlyph,
	})
}

// Count returns how many instances of type t the list holds.
func (l *InstanceList) Count(t InstanceType) int {
	n := 0
	for i := range l.Instances {
		if l.Instances[i].Type == t {
			n++
		}
	}
	return n
}
