package geom

import (
	"fmt"
	"math"
)

// Matrix is a 3x3 transformation matrix in row-major order:
//
//	| M[0] M[1] M[2] |   | scaleX skewX  transX |
//	| M[3] M[4] M[5] | = | skewY  scaleY transY |
//	| M[6] M[7] M[8] |   | persp0 persp1 persp2 |
//
// Points are column vectors: x' = (M[0]*x + M[1]*y + M[2]) / w where
// w = M[6]*x + M[7]*y + M[8].
type Matrix [9]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translate creates a translation matrix.
func Translate(dx, dy float64) Matrix {
	return Matrix{1, 0, dx, 0, 1, dy, 0, 0, 1}
}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, 0, sy, 0, 0, 0, 1}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// Affine creates a matrix from the six affine coefficients
// x' = a*x + b*y + c, y' = d*x + e*y + f.
func Affine(a, b, c, d, e, f float64) Matrix {
	return Matrix{a, b, c, d, e, f, 0, 0, 1}
}

// Concat returns m * o: o is applied first, then m.
func (m Matrix) Concat(o Matrix) Matrix {
	var r Matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r[row*3+col] = m[row*3]*o[col] + m[row*3+1]*o[3+col] + m[row*3+2]*o[6+col]
		}
	}
	return r
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// HasPerspective reports whether the bottom row differs from [0 0 1].
func (m Matrix) HasPerspective() bool {
	return m[6] != 0 || m[7] != 0 || m[8] != 1
}

// MapPoint transforms p, dividing by w when the matrix has perspective.
func (m Matrix) MapPoint(p Point) Point {
	x := m[0]*p.X + m[1]*p.Y + m[2]
	y := m[3]*p.X + m[4]*p.Y + m[5]
	if m.HasPerspective() {
		w := m[6]*p.X + m[7]*p.Y + m[8]
		if w != 0 {
			w = 1 / w
		}
		x *= w
		y *= w
	}
	return Point{X: x, Y: y}
}

// MapRect returns the bounding box of the transformed corners of r.
func (m Matrix) MapRect(r Rect) Rect {
	return BoundsOf([]Point{
		m.MapPoint(Point{X: r.Left, Y: r.Top}),
		m.MapPoint(Point{X: r.Right, Y: r.Top}),
		m.MapPoint(Point{X: r.Right, Y: r.Bottom}),
		m.MapPoint(Point{X: r.Left, Y: r.Bottom}),
	})
}

// Invert returns the inverse of m. ok is false when m is singular.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	co0 := e*i - f*h
	co1 := f*g - d*i
	co2 := d*h - e*g
	det := a*co0 + b*co1 + c*co2
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	s := 1 / det
	return Matrix{
		co0 * s, (c*h - b*i) * s, (b*f - c*e) * s,
		co1 * s, (a*i - c*g) * s, (c*d - a*f) * s,
		co2 * s, (b*g - a*h) * s, (a*e - b*d) * s,
	}, true
}

// AffineCoefficients returns the top two rows, ignoring perspective.
func (m Matrix) AffineCoefficients() (a, b, c, d, e, f float64) {
	return m[0], m[1], m[2], m[3], m[4], m[5]
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g][%g %g %g][%g %g %g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
