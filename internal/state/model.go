package state

import (
	"fmt"
	"image/color"
)

type Point struct{ X, Y float32 }

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// ShapeMode selects what a pointer drag paints.
type ShapeMode int

const (
	Freehand ShapeMode = iota
	Circle
	Rectangle
)

func (m ShapeMode) String() string {
	switch m {
	case Circle:
		return "Circle"
	case Rectangle:
		return "Rectangle"
	default:
		return "Freehand"
	}
}

// ParseShapeMode maps a label back to a mode. Unknown labels are Freehand.
func ParseShapeMode(s string) ShapeMode {
	switch s {
	case "Circle":
		return Circle
	case "Rectangle":
		return Rectangle
	}
	return Freehand
}

// ShapeModes lists the modes in sidebar order.
var ShapeModes = []ShapeMode{Freehand, Circle, Rectangle}

// ToolState is everything the sidebar controls.
type ToolState struct {
	Color  color.RGBA
	Width  int
	Shape  ShapeMode
	Eraser bool
}

// PaintColor is the colour a stroke is laid down with.
func (t ToolState) PaintColor(background color.RGBA) color.RGBA {
	if t.Eraser {
		return background
	}
	return t.Color
}

// StrokeCursor remembers the last freehand position. The zero value has
// no position.
type StrokeCursor struct {
	pos Point
	set bool
}

func (c *StrokeCursor) Set(p Point) {
	c.pos = p
	c.set = true
}

func (c *StrokeCursor) Clear() { *c = StrokeCursor{} }

func (c StrokeCursor) Get() (Point, bool) { return c.pos, c.set }

// Interaction is the pointer state machine. Painting and ImageDragging
// are only ever entered from Idle.
type Interaction int

const (
	Idle Interaction = iota
	Painting
	ImageDragging
)

func (i Interaction) String() string {
	switch i {
	case Painting:
		return "Painting"
	case ImageDragging:
		return "ImageDragging"
	default:
		return "Idle"
	}
}

type PrimitiveKind int

const (
	KindLine PrimitiveKind = iota
	KindEllipse
	KindRect
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindRect:
		return "rect"
	default:
		return "line"
	}
}

// Primitive is one painted element. For lines P1 and P2 are the
// endpoints; for ellipses and rectangles they are the top-left and
// bottom-right corners of the bounding box.
type Primitive struct {
	ID    string
	Seq   uint64
	Kind  PrimitiveKind
	P1    Point
	P2    Point
	Width float32 // line thickness, unused for filled shapes
	Color color.RGBA
}

func NewLine(from, to Point, width int, c color.RGBA) Primitive {
	return newPrimitive(KindLine, from, to, float32(width), c)
}

// NewEllipse builds a filled ellipse centred on center with radii rx, ry.
func NewEllipse(center Point, rx, ry int, c color.RGBA) Primitive {
	return newCentered(KindEllipse, center, float32(rx), float32(ry), c)
}

// NewRect builds a filled rectangle centred on center with half extents hw, hh.
func NewRect(center Point, hw, hh int, c color.RGBA) Primitive {
	return newCentered(KindRect, center, float32(hw), float32(hh), c)
}

func newCentered(kind PrimitiveKind, center Point, hx, hy float32, c color.RGBA) Primitive {
	return newPrimitive(kind,
		Point{X: center.X - hx, Y: center.Y - hy},
		Point{X: center.X + hx, Y: center.Y + hy},
		0, c)
}

func newPrimitive(kind PrimitiveKind, p1, p2 Point, width float32, c color.RGBA) Primitive {
	id, seq := NewPrimitiveID()
	return Primitive{ID: id, Seq: seq, Kind: kind, P1: p1, P2: p2, Width: width, Color: c}
}

// Area is the region the primitive can touch, including line thickness.
func (p Primitive) Area() Area {
	a := AreaOf(p.P1, p.P2)
	if p.Kind == KindLine {
		return a.Inset(-p.Width / 2)
	}
	return a
}

// Geometry compares everything except identity.
func (p Primitive) Geometry() Primitive {
	p.ID, p.Seq = "", 0
	return p
}

func (p Primitive) String() string {
	return fmt.Sprintf("%s(%.0f,%.0f)-(%.0f,%.0f) w=%.0f #%02x%02x%02x",
		p.Kind, p.P1.X, p.P1.Y, p.P2.X, p.P2.Y, p.Width, p.Color.R, p.Color.G, p.Color.B)
}
