package geom

import (
	"fmt"
	"math"
)

// Corner indexes the radii of a rounded rectangle, clockwise from the
// upper left.
type Corner int

const (
	UpperLeft Corner = iota
	UpperRight
	LowerRight
	LowerLeft
)

// RRect is a rectangle with an elliptical radius per corner.
// Radii[c].X is the horizontal radius of corner c, Radii[c].Y the vertical one.
type RRect struct {
	Rect  Rect
	Radii [4]Point
}

// RRectXY creates a rounded rectangle with the same radii on every corner.
// Radii are clamped to half the rectangle size.
func RRectXY(r Rect, rx, ry float64) RRect {
	r = r.Sorted()
	rx = math.Max(0, math.Min(rx, r.Width()/2))
	ry = math.Max(0, math.Min(ry, r.Height()/2))
	if rx == 0 || ry == 0 {
		rx, ry = 0, 0
	}
	rr := RRect{Rect: r}
	for i := range rr.Radii {
		rr.Radii[i] = Point{X: rx, Y: ry}
	}
	return rr
}

// RRectOval creates a rounded rectangle describing the oval inscribed in r.
func RRectOval(r Rect) RRect {
	r = r.Sorted()
	return RRectXY(r, r.Width()/2, r.Height()/2)
}

// Bounds returns the enclosing rectangle.
func (rr RRect) Bounds() Rect { return rr.Rect }

// IsRect reports whether every corner is square.
func (rr RRect) IsRect() bool {
	for _, r := range rr.Radii {
		if r.X != 0 || r.Y != 0 {
			return false
		}
	}
	return true
}

// Inset returns rr shrunk by d on every side, reducing radii accordingly.
func (rr RRect) Inset(d float64) RRect {
	out := RRect{Rect: rr.Rect.Inset(d, d)}
	for i, r := range rr.Radii {
		out.Radii[i] = Point{X: math.Max(0, r.X-d), Y: math.Max(0, r.Y-d)}
	}
	return out
}

func (rr RRect) String() string {
	return fmt.Sprintf("RRect: %v UL %v UR %v LR %v LL %v",
		rr.Rect, rr.Radii[UpperLeft], rr.Radii[UpperRight], rr.Radii[LowerRight], rr.Radii[LowerLeft])
}
