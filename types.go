package gui

import (
	"github.com/chewxy/math32"
)

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Axis selects one component of a Vec2.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Get returns the component on axis a.
func (v Vec2) Get(a Axis) float32 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// Set writes the component on axis a.
func (v *Vec2) Set(a Axis, value float32) {
	if a == AxisX {
		v.X = value
	} else {
		v.Y = value
	}
}

// Vec4 is an RGBA color with float components in [0,1].
// The zero value is fully transparent and is never drawn.
type Vec4 struct {
	X, Y, Z, W float32
}

// IsZero reports whether every component is zero.
func (c Vec4) IsZero() bool {
	return c == Vec4{}
}

// Packed returns the color packed as 0xAABBGGRR for OpenGL vertex attributes.
func (c Vec4) Packed() uint32 {
	r, g, b, a := unorm8(c.X), unorm8(c.Y), unorm8(c.Z), unorm8(c.W)
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// unorm8 converts a [0,1] component to 0-255, rounding to nearest.
func unorm8(v float32) uint8 {
	return uint8(clampf(v, 0, 1)*255 + 0.5)
}

// RGBA creates a color from individual components (0-255).
func RGBA(r, g, b, a uint8) Vec4 {
	return Vec4{X: float32(r) / 255, Y: float32(g) / 255, Z: float32(b) / 255, W: float32(a) / 255}
}

// Color constants
var (
	ColorWhite       = Vec4{1, 1, 1, 1}
	ColorBlack       = Vec4{0, 0, 0, 1}
	ColorRed         = Vec4{1, 0, 0, 1}
	ColorGreen       = Vec4{0, 1, 0, 1}
	ColorBlue        = Vec4{0, 0, 1, 1}
	ColorYellow      = Vec4{1, 1, 0, 1}
	ColorGray        = RGBA(128, 128, 128, 255)
	ColorDarkGray    = RGBA(64, 64, 64, 255)
	ColorTransparent = Vec4{}
)

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	return math32.Max(minVal, math32.Min(v, maxVal))
}
