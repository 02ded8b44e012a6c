package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointsAlmostEqual(a, b Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
	if m.HasPerspective() {
		t.Error("Identity().HasPerspective() = true, want false")
	}
	if got := m.MapPoint(Pt(3, 4)); got != Pt(3, 4) {
		t.Errorf("MapPoint(3, 4) = %v, want (3, 4)", got)
	}
}

func TestConcatOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Concat(Scale(2, 3))
	if got := m.MapPoint(Pt(1, 1)); got != Pt(12, 23) {
		t.Errorf("MapPoint(1, 1) = %v, want (12, 23)", got)
	}

	// Translate first, then scale.
	m = Scale(2, 3).Concat(Translate(10, 20))
	if got := m.MapPoint(Pt(1, 1)); got != Pt(22, 63) {
		t.Errorf("MapPoint(1, 1) = %v, want (22, 63)", got)
	}
}

func TestRotate(t *testing.T) {
	got := Rotate(math.Pi / 2).MapPoint(Pt(1, 0))
	if !pointsAlmostEqual(got, Pt(0, 1)) {
		t.Errorf("Rotate(pi/2).MapPoint(1, 0) = %v, want (0, 1)", got)
	}
}

func TestPerspectiveMapPoint(t *testing.T) {
	m := Matrix{1, 0, 0, 0, 1, 0, 0, 0, 2}
	if !m.HasPerspective() {
		t.Fatal("HasPerspective() = false, want true")
	}
	if got := m.MapPoint(Pt(4, 6)); got != Pt(2, 3) {
		t.Errorf("MapPoint(4, 6) = %v, want (2, 3)", got)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translate", Translate(5, -7)},
		{"scale", Scale(2, 4)},
		{"rotate", Rotate(0.3)},
		{"mixed", Translate(3, 4).Concat(Rotate(1)).Concat(Scale(2, 0.5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert() ok = false, want true")
			}
			p := Pt(13, -2)
			if got := inv.MapPoint(tt.m.MapPoint(p)); !pointsAlmostEqual(got, p) {
				t.Errorf("inv(m(p)) = %v, want %v", got, p)
			}
		})
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Scale(0, 1).Invert() ok = true, want false")
	}
}

func TestMapRect(t *testing.T) {
	got := Rotate(math.Pi / 2).MapRect(LTRB(0, 0, 10, 20))
	want := LTRB(-20, 0, 0, 10)
	if !almostEqual(got.Left, want.Left) || !almostEqual(got.Top, want.Top) ||
		!almostEqual(got.Right, want.Right) || !almostEqual(got.Bottom, want.Bottom) {
		t.Errorf("MapRect() = %v, want %v", got, want)
	}
}
