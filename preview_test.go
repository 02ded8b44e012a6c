package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

func preview(t *testing.T, cmd Command) (*Recording, bool) {
	t.Helper()
	rec := NewRecorder(100, 100)
	ok := RenderPreview(cmd, rec)
	return rec.Finish(), ok
}

func assertRect(t *testing.T, want, got geom.Rect) {
	t.Helper()
	assert.InDelta(t, want.Left, got.Left, 1e-9, "left")
	assert.InDelta(t, want.Top, got.Top, 1e-9, "top")
	assert.InDelta(t, want.Right, got.Right, 1e-9, "right")
	assert.InDelta(t, want.Bottom, got.Bottom, 1e-9, "bottom")
}

func TestPreviewPathFitsCanvas(t *testing.T) {
	path := geom.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 20)

	r, ok := preview(t, NewDrawPath(path, paint.New()))
	require.True(t, ok)
	assert.Equal(t, []string{"DrawClear", "Save", "Concat", "DrawPath", "Restore"}, opNames(r))

	m := r.At(2).(*ConcatCommand).Matrix
	tests := []struct {
		in, want geom.Point
	}{
		{geom.Pt(5, 10), geom.Pt(50, 50)},
		{geom.Pt(5, 0), geom.Pt(50, 5)},
		{geom.Pt(5, 20), geom.Pt(50, 95)},
	}
	for _, tt := range tests {
		got := m.MapPoint(tt.in)
		assert.InDelta(t, tt.want.X, got.X, 1e-9, "x of %v", tt.in)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-9, "y of %v", tt.in)
	}

	draw := r.At(3).(*DrawPathCommand)
	assert.Equal(t, paint.StyleStroke, draw.Paint.Style)
	assert.Equal(t, paint.Black, draw.Paint.Color)
}

func TestPreviewLeavesPayload(t *testing.T) {
	path := testPath()
	cmd := NewDrawPath(path, fullPaint(t))
	before := EncodeCommand(cmd, WithBinaries(true))

	_, ok := preview(t, cmd)
	require.True(t, ok)
	assert.Equal(t, before, EncodeCommand(cmd, WithBinaries(true)))
}

func TestPreviewShapes(t *testing.T) {
	rr := geom.RRect{Rect: geom.LTRB(0, 0, 20, 10)}
	tests := []struct {
		name string
		cmd  Command
		draw string
	}{
		{"oval", NewDrawOval(geom.LTRB(0, 0, 20, 10), paint.New()), "DrawRRect"},
		{"rrect", NewDrawRRect(rr, paint.New()), "DrawRRect"},
		{"clip rrect", NewClipRRect(rr, geom.OpIntersect, false), "DrawRRect"},
		{"drrect", NewDrawDRRect(rr, geom.RRect{Rect: geom.LTRB(5, 2, 15, 8)}, paint.New()), "DrawPath"},
		{"clip path", NewClipPath(testPath(), geom.OpIntersect, true), "DrawPath"},
		{"points", NewDrawPoints(PointsModePolygon, []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, paint.New()), "DrawPath"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := preview(t, tt.cmd)
			require.True(t, ok)
			assert.Equal(t, []string{"DrawClear", "Save", "Concat", tt.draw, "Restore"}, opNames(r))
		})
	}
}

func TestPreviewEmptyGeometry(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"empty path", NewDrawPath(geom.NewPath(), paint.New())},
		{"no points", NewDrawPoints(PointsModePoints, nil, paint.New())},
		{"empty oval", NewDrawOval(geom.LTRB(5, 5, 5, 5), paint.New())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := preview(t, tt.cmd); ok {
				t.Error("RenderPreview() = true, want false")
			}
		})
	}
}

func TestPreviewBitmap(t *testing.T) {
	bm := testBitmap()
	src := geom.LTRB(0, 0, 2, 2)

	r, ok := preview(t, NewDrawBitmapRect(bm, &src, geom.LTRB(0, 0, 8, 8), nil, ConstraintStrict))
	require.True(t, ok)
	assert.Equal(t, []string{"DrawClear", "DrawBitmap", "DrawBitmapRect", "DrawRect"}, opNames(r))

	// 4x3 pixels keep their aspect ratio inside a 100x100 canvas.
	draw := r.At(2).(*DrawBitmapRectCommand)
	assert.Same(t, bm, draw.Bitmap)
	assert.Nil(t, draw.Src)
	assertRect(t, geom.LTRB(1, 1, 99, 74.5), draw.Dst)

	outline := r.At(3).(*DrawRectCommand)
	assertRect(t, geom.LTRB(1, 1, 50, 50), outline.Rect)
	assert.Equal(t, paint.Red, outline.Paint.Color)

	checker := r.At(1).(*DrawBitmapCommand)
	assert.Equal(t, 98, checker.Bitmap.Width())
	assert.Equal(t, 73, checker.Bitmap.Height())
}

func TestPreviewImages(t *testing.T) {
	img := bitmap.NewImage(testBitmap())
	tests := []struct {
		name string
		cmd  Command
		ops  int
	}{
		{"bitmap", NewDrawBitmap(testBitmap(), 0, 0, nil), 3},
		{"nine", NewDrawBitmapNine(testBitmap(), geom.IRect{Left: 1, Top: 1, Right: 2, Bottom: 2}, geom.LTRB(0, 0, 9, 9), nil), 3},
		{"image", NewDrawImage(img, 0, 0, nil), 3},
		{"image rect", NewDrawImageRect(img, nil, geom.LTRB(0, 0, 9, 9), nil, ConstraintFast), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := preview(t, tt.cmd)
			require.True(t, ok)
			assert.Equal(t, tt.ops, r.Len())
		})
	}
}

func TestNoPreview(t *testing.T) {
	cmds := []Command{
		NewSave(),
		NewClipRect(geom.LTRB(0, 0, 1, 1), geom.OpIntersect, false),
		NewDrawRect(geom.LTRB(0, 0, 10, 10), paint.New()),
		NewDrawClear(paint.White),
	}
	for _, cmd := range cmds {
		t.Run(cmd.OpType().String(), func(t *testing.T) {
			r, ok := preview(t, cmd)
			assert.False(t, ok)
			assert.Zero(t, r.Len())
		})
	}
}

func TestFitToBoundsZeroSize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		bounds geom.Rect
	}{
		{"empty bounds", 100, 100, geom.Rect{}},
		{"zero canvas", 0, 100, geom.LTRB(0, 0, 10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &mockCanvas{width: tt.w, height: tt.h}
			if fitToBounds(c, tt.bounds) {
				t.Error("fitToBounds() = true, want false")
			}
			if len(c.calls) != 0 {
				t.Errorf("fitToBounds() made calls %v", c.calls)
			}
		})
	}
}
