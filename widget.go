package gui

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeKindType enumerates the sizing strategies for one axis.
type SizeKindType uint8

const (
	SizePixels   SizeKindType = iota // fixed size in pixels
	SizePercent                      // fraction of the parent's inner size
	SizeText                         // measured text bounds
	SizeChildren                     // sum/max of the children
	SizeGrow                         // fill the parent's remaining space
)

// SizeKind is the sizing strategy for one axis of one widget.
type SizeKind struct {
	Type  SizeKindType
	Value float32 // pixels for SizePixels, fraction for SizePercent
}

// Pixels sizes an axis to a fixed number of pixels.
func Pixels(px float32) SizeKind { return SizeKind{Type: SizePixels, Value: px} }

// Percent sizes an axis to fraction p of the parent's inner size.
func Percent(p float32) SizeKind { return SizeKind{Type: SizePercent, Value: p} }

// TextSize sizes an axis to the widget's measured text.
func TextSize() SizeKind { return SizeKind{Type: SizeText} }

// ChildrenSum sizes an axis to fit the widget's children.
func ChildrenSum() SizeKind { return SizeKind{Type: SizeChildren} }

// Grow sizes an axis to the space left over in the parent.
func Grow() SizeKind { return SizeKind{Type: SizeGrow} }

func (k SizeKind) String() string {
	switch k.Type {
	case SizePixels:
		return strconv.FormatFloat(float64(k.Value), 'g', -1, 32) + "px"
	case SizePercent:
		return strconv.FormatFloat(float64(k.Value*100), 'g', -1, 32) + "%"
	case SizeText:
		return "text"
	case SizeChildren:
		return "children"
	case SizeGrow:
		return "grow"
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler.
func (k SizeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Accepted forms are "120px", "120", "50%", "text", "children" and "grow".
func (k *SizeKind) UnmarshalText(b []byte) error {
	kind, err := ParseSizeKind(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseSizeKind parses the text form of a SizeKind.
func ParseSizeKind(s string) (SizeKind, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "text":
		return TextSize(), nil
	case "children":
		return ChildrenSum(), nil
	case "grow":
		return Grow(), nil
	}
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(rest, 32)
		if err != nil {
			return SizeKind{}, fmt.Errorf("%w: %q", ErrInvalidSizeKind, s)
		}
		return Percent(float32(v) / 100), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 32)
	if err != nil {
		return SizeKind{}, fmt.Errorf("%w: %q", ErrInvalidSizeKind, s)
	}
	return Pixels(float32(v)), nil
}

// Direction is the main axis along which a container stacks its children.
type Direction uint8

const (
	Row    Direction = iota // children left to right
	Column                  // children top to bottom
)

// MainAxis returns the axis children advance along.
func (d Direction) MainAxis() Axis {
	if d == Column {
		return AxisY
	}
	return AxisX
}

func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "row":
		*d = Row
	case "column", "col":
		*d = Column
	default:
		return fmt.Errorf("invalid direction %q", b)
	}
	return nil
}

// Alignment positions children along an axis of their parent.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	}
	return "start"
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "start":
		*a = AlignStart
	case "center":
		*a = AlignCenter
	case "end":
		*a = AlignEnd
	default:
		return fmt.Errorf("invalid alignment %q", b)
	}
	return nil
}

// offset returns where content of length used starts inside length avail.
func (a Alignment) offset(avail, used float32) float32 {
	switch a {
	case AlignCenter:
		return avail/2 - used/2
	case AlignEnd:
		return avail - used
	}
	return 0
}

// Widget is one node of a frame's layout tree.
//
// Everything above ComputedSize is declared by the caller. ComputedSize and
// ComputedPos are written only by the Resolver.
type Widget struct {
	Label string
	ID    ID

	Pos    Vec2 // offset relative to the flow position inside the parent
	Width  SizeKind
	Height SizeKind

	Color        Vec4 // zero = not drawn
	BorderRadius float32

	Parent   int
	Children []int

	Padding            Vec2
	Margin             Vec2
	Gap                float32
	Direction          Direction
	MainAxisAlignment  Alignment
	CrossAxisAlignment Alignment

	Text      string
	TextColor Vec4
	FontSize  float32
	TextWrap  bool

	Clickable bool

	ComputedSize Vec2
	ComputedPos  Vec2

	// wrapWidth is the bound the text pass wrapped against (0 = unbounded).
	// The emitter reuses it so glyphs land inside the measured box.
	wrapWidth float32
}

// Sizing returns the sizing strategy for axis a.
func (w *Widget) Sizing(a Axis) SizeKind {
	if a == AxisX {
		return w.Width
	}
	return w.Height
}

// inset is the distance from the outer edge to the content box on axis a.
func (w *Widget) inset(a Axis) float32 {
	return w.Padding.Get(a) + w.Margin.Get(a)
}

// InnerSize returns the content box size: computed size minus padding and margin on both sides.
func (w *Widget) InnerSize() Vec2 {
	return Vec2{
		X: max(0, w.ComputedSize.X-2*w.inset(AxisX)),
		Y: max(0, w.ComputedSize.Y-2*w.inset(AxisY)),
	}
}

// InnerPos returns the absolute top-left corner of the content box.
func (w *Widget) InnerPos() Vec2 {
	return Vec2{X: w.ComputedPos.X + w.inset(AxisX), Y: w.ComputedPos.Y + w.inset(AxisY)}
}

// Bounds returns the widget's laid-out rectangle.
func (w *Widget) Bounds() Rect {
	return Rect{X: w.ComputedPos.X, Y: w.ComputedPos.Y, W: w.ComputedSize.X, H: w.ComputedSize.Y}
}

// DefaultFontSize is used for text widgets that set no font size.
const DefaultFontSize float32 = 16

func (w *Widget) fontSize() float32 {
	if w.FontSize > 0 {
		return w.FontSize
	}
	return DefaultFontSize
}
