package geom

import (
	"fmt"
	"math"
)

// Point is a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle stored as edges.
// A Rect with Left >= Right or Top >= Bottom is empty.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// LTRB creates a Rect from its edges.
func LTRB(l, t, r, b float64) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// XYWH creates a Rect from origin and size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// WH creates a Rect at the origin with the given size.
func WH(w, h float64) Rect {
	return Rect{Right: w, Bottom: h}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// Sorted returns r with Left<=Right and Top<=Bottom.
func (r Rect) Sorted() Rect {
	return Rect{
		Left:   math.Min(r.Left, r.Right),
		Top:    math.Min(r.Top, r.Bottom),
		Right:  math.Max(r.Left, r.Right),
		Bottom: math.Max(r.Top, r.Bottom),
	}
}

// Union returns the smallest rectangle containing r and o.
// An empty operand is ignored.
func (r Rect) Union(o Rect) Rect {
	if o.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return o
	}
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}

// Inset shrinks the rectangle by dx horizontally and dy vertically.
// Negative values grow it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right - dx, Bottom: r.Bottom - dy}
}

// Offset translates the rectangle.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect: (L: %g, T: %g, R: %g, B: %g)", r.Left, r.Top, r.Right, r.Bottom)
}

// BoundsOf returns the bounding box of pts. It returns the zero Rect for no points.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	b := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		b.Left = math.Min(b.Left, p.X)
		b.Top = math.Min(b.Top, p.Y)
		b.Right = math.Max(b.Right, p.X)
		b.Bottom = math.Max(b.Bottom, p.Y)
	}
	return b
}

// IRect is an integer rectangle, used for nine-patch centers and regions.
type IRect struct {
	Left, Top, Right, Bottom int32
}

// IXYWH creates an IRect from origin and size.
func IXYWH(x, y, w, h int32) IRect {
	return IRect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right-Left.
func (r IRect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r IRect) Height() int32 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no area.
func (r IRect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// Rect converts r to a float rectangle.
func (r IRect) Rect() Rect {
	return Rect{Left: float64(r.Left), Top: float64(r.Top), Right: float64(r.Right), Bottom: float64(r.Bottom)}
}

func (r IRect) String() string {
	return fmt.Sprintf("IRect: (L: %d, T: %d, R: %d, B: %d)", r.Left, r.Top, r.Right, r.Bottom)
}
