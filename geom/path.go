package geom

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Verb identifies one path construction step.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbConic
	VerbCubic
	VerbClose
)

var verbNames = [...]string{
	VerbMove:  "move",
	VerbLine:  "line",
	VerbQuad:  "quad",
	VerbConic: "conic",
	VerbCubic: "cubic",
	VerbClose: "close",
}

func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "Unknown"
}

// ParseVerb maps a name produced by Verb.String back to the verb.
func ParseVerb(s string) (Verb, bool) {
	for i, n := range verbNames {
		if n == s {
			return Verb(i), true
		}
	}
	return 0, false
}

// PointCount returns how many points the verb consumes.
func (v Verb) PointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad, VerbConic:
		return 2
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// FillType selects how the interior of a path is computed.
type FillType uint8

const (
	FillWinding FillType = iota
	FillEvenOdd
	FillInverseWinding
	FillInverseEvenOdd
)

var fillTypeNames = [...]string{
	FillWinding:        "winding",
	FillEvenOdd:        "evenOdd",
	FillInverseWinding: "inverseWinding",
	FillInverseEvenOdd: "inverseEvenOdd",
}

func (f FillType) String() string {
	if int(f) < len(fillTypeNames) {
		return fillTypeNames[f]
	}
	return "Unknown"
}

// ParseFillType maps a name produced by FillType.String back to the fill type.
func ParseFillType(s string) (FillType, bool) {
	for i, n := range fillTypeNames {
		if n == s {
			return FillType(i), true
		}
	}
	return 0, false
}

// IsEvenOdd reports whether f uses the even-odd rule.
func (f FillType) IsEvenOdd() bool { return f == FillEvenOdd || f == FillInverseEvenOdd }

// IsInverse reports whether f fills the outside of the path.
func (f FillType) IsInverse() bool { return f == FillInverseWinding || f == FillInverseEvenOdd }

// Segment is one verb with its points. Only the first Verb.PointCount()
// entries of Pts are meaningful. Weight is set for conics.
type Segment struct {
	Verb   Verb
	Pts    [3]Point
	Weight float64
}

// Points returns the meaningful points of the segment.
func (s Segment) Points() []Point {
	return s.Pts[:s.Verb.PointCount()]
}

// Path is a sequence of verbs with their points and conic weights.
// The zero value is an empty path with winding fill.
type Path struct {
	fill    FillType
	verbs   []Verb
	points  []Point
	weights []float64
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// FillType returns the fill type.
func (p *Path) FillType() FillType { return p.fill }

// SetFillType sets the fill type.
func (p *Path) SetFillType(f FillType) { p.fill = f }

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMove)
	p.points = append(p.points, Pt(x, y))
}

// LineTo adds a line segment.
func (p *Path) LineTo(x, y float64) {
	p.injectMove()
	p.verbs = append(p.verbs, VerbLine)
	p.points = append(p.points, Pt(x, y))
}

// QuadTo adds a quadratic Bezier segment.
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.injectMove()
	p.verbs = append(p.verbs, VerbQuad)
	p.points = append(p.points, Pt(x1, y1), Pt(x2, y2))
}

// ConicTo adds a rational quadratic segment with weight w.
func (p *Path) ConicTo(x1, y1, x2, y2, w float64) {
	p.injectMove()
	p.verbs = append(p.verbs, VerbConic)
	p.points = append(p.points, Pt(x1, y1), Pt(x2, y2))
	p.weights = append(p.weights, w)
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.injectMove()
	p.verbs = append(p.verbs, VerbCubic)
	p.points = append(p.points, Pt(x1, y1), Pt(x2, y2), Pt(x3, y3))
}

// Close closes the current contour. Closing an empty path is a no-op.
func (p *Path) Close() {
	if len(p.verbs) == 0 || p.verbs[len(p.verbs)-1] == VerbClose {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
}

// injectMove starts a contour at the last point (or origin) when a segment
// is added without a preceding MoveTo.
func (p *Path) injectMove() {
	if len(p.verbs) > 0 && p.verbs[len(p.verbs)-1] != VerbClose {
		return
	}
	var last Point
	if len(p.points) > 0 {
		last = p.points[len(p.points)-1]
	}
	p.MoveTo(last.X, last.Y)
}

// CountVerbs returns the number of verbs.
func (p *Path) CountVerbs() int { return len(p.verbs) }

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }

// Segments iterates the path in construction order.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		pi, wi := 0, 0
		for _, v := range p.verbs {
			s := Segment{Verb: v}
			n := v.PointCount()
			copy(s.Pts[:n], p.points[pi:pi+n])
			pi += n
			if v == VerbConic {
				s.Weight = p.weights[wi]
				wi++
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all control points.
func (p *Path) Bounds() Rect {
	return BoundsOf(p.points)
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	return &Path{
		fill:    p.fill,
		verbs:   slices.Clone(p.verbs),
		points:  slices.Clone(p.points),
		weights: slices.Clone(p.weights),
	}
}

// Equal reports whether both paths have the same fill type, verbs, points
// and weights.
func (p *Path) Equal(o *Path) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.fill == o.fill &&
		slices.Equal(p.verbs, o.verbs) &&
		slices.Equal(p.points, o.points) &&
		slices.Equal(p.weights, o.weights)
}

// Transform returns a copy of p with every point mapped by m.
func (p *Path) Transform(m Matrix) *Path {
	out := p.Clone()
	for i, pt := range out.points {
		out.points[i] = m.MapPoint(pt)
	}
	return out
}

// AddRect adds a closed clockwise rectangle contour.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddOval adds a closed oval inscribed in r, built from four conics.
func (p *Path) AddOval(r Rect) {
	p.AddRRect(RRectOval(r))
}

// AddRRect adds a closed rounded rectangle contour.
func (p *Path) AddRRect(rr RRect) {
	if rr.IsRect() {
		p.AddRect(rr.Rect)
		return
	}
	r := rr.Rect
	ul, ur, lr, ll := rr.Radii[UpperLeft], rr.Radii[UpperRight], rr.Radii[LowerRight], rr.Radii[LowerLeft]
	w := math.Sqrt2 / 2

	p.MoveTo(r.Left+ul.X, r.Top)
	p.LineTo(r.Right-ur.X, r.Top)
	p.ConicTo(r.Right, r.Top, r.Right, r.Top+ur.Y, w)
	p.LineTo(r.Right, r.Bottom-lr.Y)
	p.ConicTo(r.Right, r.Bottom, r.Right-lr.X, r.Bottom, w)
	p.LineTo(r.Left+ll.X, r.Bottom)
	p.ConicTo(r.Left, r.Bottom, r.Left, r.Bottom-ll.Y, w)
	p.LineTo(r.Left, r.Top+ul.Y)
	p.ConicTo(r.Left, r.Top, r.Left+ul.X, r.Top, w)
	p.Close()
}

// ConicToCubic approximates the conic p0, p1, p2 with weight w by a cubic
// and returns the two cubic control points. The approximation is exact in
// the limit w=1 and matches the usual circle constant for w=sqrt(2)/2.
func ConicToCubic(p0, p1, p2 Point, w float64) (c1, c2 Point) {
	k := 4 * w / (3 * (1 + w))
	c1 = p0.Add(p1.Sub(p0).Mul(k))
	c2 = p2.Add(p1.Sub(p2).Mul(k))
	return c1, c2
}

func (p *Path) String() string {
	return fmt.Sprintf("Path: %d verbs, fill %v, bounds %v", len(p.verbs), p.fill, p.Bounds())
}
