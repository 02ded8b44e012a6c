package debugger

import (
	"fmt"
	"image/color"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// mockCanvas logs every call as one line. Arguments are written in their
// wire form so two canvases that received equal calls have equal logs.
type mockCanvas struct {
	width, height int
	calls         []string
}

var _ Canvas = (*mockCanvas)(nil)

func newMockCanvas() *mockCanvas { return &mockCanvas{width: 100, height: 100} }

func (m *mockCanvas) log(name string, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = mockArg(a)
	}
	m.calls = append(m.calls, name+"("+strings.Join(parts, ", ")+")")
}

func (m *mockCanvas) names() []string {
	out := make([]string, len(m.calls))
	for i, c := range m.calls {
		out[i], _, _ = strings.Cut(c, "(")
	}
	return out
}

func mockArg(a any) string {
	cfg := &encodeConfig{binaries: true}
	var v any
	switch x := a.(type) {
	case geom.Rect:
		v = EncodeRect(x)
	case *geom.Rect:
		if x != nil {
			v = EncodeRect(*x)
		}
	case geom.IRect:
		v = EncodeIRect(x)
	case geom.RRect:
		v = EncodeRRect(x)
	case geom.Matrix:
		v = EncodeMatrix(x)
	case *geom.Matrix:
		if x != nil {
			v = EncodeMatrix(*x)
		}
	case *geom.Path:
		v = EncodePath(x)
	case []geom.Point:
		v = EncodePoints(x)
	case paint.Color:
		v = EncodeColor(x)
	case paint.Paint:
		v = encodePaint(&x, cfg)
	case *paint.Paint:
		if x != nil {
			v = encodePaint(x, cfg)
		}
	case paint.Xfermode:
		if x != nil {
			v = encodeFlattenable(x, cfg)
		}
	case *bitmap.Bitmap:
		v = mockBitmap(x)
	case *bitmap.Image:
		v = mockBitmap(x.Bitmap())
	case *TextBlob:
		v = encodeTextBlob(x, cfg)
	case SaveLayerRec:
		v = map[string]any{
			"bounds": mockArg(x.Bounds),
			"paint":  mockArg(x.Paint),
			"flags":  int(x.Flags),
		}
	case fmt.Stringer:
		v = x.String()
	default:
		v = x
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("!%v", err)
	}
	return string(b)
}

// mockBitmap summarizes pixels by size, type and a checksum of the
// straight colors.
func mockBitmap(bm *bitmap.Bitmap) string {
	var sum uint64
	b := bm.Pixels.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(bm.Pixels.At(x, y)).(color.NRGBA)
			sum = sum*31 + uint64(c.R)<<24 | uint64(c.G)<<16 | uint64(c.B)<<8 | uint64(c.A)
		}
	}
	return fmt.Sprintf("%s %v/%v #%x", bm.Describe(), bm.ColorType, bm.AlphaType, sum)
}

func (m *mockCanvas) DeviceSize() (int, int) { return m.width, m.height }

func (m *mockCanvas) Save()                      { m.log("Save") }
func (m *mockCanvas) SaveLayer(rec SaveLayerRec) { m.log("SaveLayer", rec) }
func (m *mockCanvas) Restore()                   { m.log("Restore") }
func (m *mockCanvas) SetMatrix(mat geom.Matrix)  { m.log("SetMatrix", mat) }
func (m *mockCanvas) Concat(mat geom.Matrix)     { m.log("Concat", mat) }

func (m *mockCanvas) ClipRect(r geom.Rect, op geom.RegionOp, aa bool) {
	m.log("ClipRect", r, op, aa)
}

func (m *mockCanvas) ClipRRect(rr geom.RRect, op geom.RegionOp, aa bool) {
	m.log("ClipRRect", rr, op, aa)
}

func (m *mockCanvas) ClipPath(path *geom.Path, op geom.RegionOp, aa bool) {
	m.log("ClipPath", path, op, aa)
}

func (m *mockCanvas) ClipRegion(rgn geom.Region, op geom.RegionOp) {
	m.log("ClipRegion", rgn.String(), op)
}

func (m *mockCanvas) Clear(c paint.Color)                 { m.log("Clear", c) }
func (m *mockCanvas) DrawPaint(p paint.Paint)             { m.log("DrawPaint", p) }
func (m *mockCanvas) DrawRect(r geom.Rect, p paint.Paint) { m.log("DrawRect", r, p) }
func (m *mockCanvas) DrawOval(r geom.Rect, p paint.Paint) { m.log("DrawOval", r, p) }

func (m *mockCanvas) DrawRRect(rr geom.RRect, p paint.Paint) { m.log("DrawRRect", rr, p) }

func (m *mockCanvas) DrawDRRect(outer, inner geom.RRect, p paint.Paint) {
	m.log("DrawDRRect", outer, inner, p)
}

func (m *mockCanvas) DrawPath(path *geom.Path, p paint.Paint) { m.log("DrawPath", path, p) }

func (m *mockCanvas) DrawPoints(mode PointMode, pts []geom.Point, p paint.Paint) {
	m.log("DrawPoints", mode, pts, p)
}

func (m *mockCanvas) DrawBitmap(bm *bitmap.Bitmap, left, top float64, p *paint.Paint) {
	m.log("DrawBitmap", bm, left, top, p)
}

func (m *mockCanvas) DrawBitmapRect(bm *bitmap.Bitmap, src *geom.Rect, dst geom.Rect, p *paint.Paint, c SrcRectConstraint) {
	m.log("DrawBitmapRect", bm, src, dst, p, int(c))
}

func (m *mockCanvas) DrawBitmapNine(bm *bitmap.Bitmap, center geom.IRect, dst geom.Rect, p *paint.Paint) {
	m.log("DrawBitmapNine", bm, center, dst, p)
}

func (m *mockCanvas) DrawImage(img *bitmap.Image, left, top float64, p *paint.Paint) {
	m.log("DrawImage", img, left, top, p)
}

func (m *mockCanvas) DrawImageRect(img *bitmap.Image, src *geom.Rect, dst geom.Rect, p *paint.Paint, c SrcRectConstraint) {
	m.log("DrawImageRect", img, src, dst, p, int(c))
}

func (m *mockCanvas) DrawText(text []byte, x, y float64, p paint.Paint) {
	m.log("DrawText", text, x, y, p)
}

func (m *mockCanvas) DrawPosText(text []byte, pos []geom.Point, p paint.Paint) {
	m.log("DrawPosText", text, pos, p)
}

func (m *mockCanvas) DrawPosTextH(text []byte, xpos []float64, y float64, p paint.Paint) {
	m.log("DrawPosTextH", text, xpos, y, p)
}

func (m *mockCanvas) DrawTextOnPath(text []byte, path *geom.Path, mat *geom.Matrix, p paint.Paint) {
	m.log("DrawTextOnPath", text, path, mat, p)
}

func (m *mockCanvas) DrawTextBlob(blob *TextBlob, x, y float64, p paint.Paint) {
	m.log("DrawTextBlob", blob, x, y, p)
}

func (m *mockCanvas) DrawVertices(v *Vertices, xfer paint.Xfermode, p paint.Paint) {
	m.log("DrawVertices", v.Mode, v.Positions, v.TexCoords, v.Colors, v.Indices, xfer, p)
}

func (m *mockCanvas) DrawPatch(patch *Patch, xfer paint.Xfermode, p paint.Paint) {
	m.log("DrawPatch", patch.Cubics[:], patch.Colors, patch.TexCoords, xfer, p)
}
