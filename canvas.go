package debugger

import (
	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// Canvas is a drawing target. Each command's Execute calls exactly one
// drawing method (or, for picture brackets, a save/concat pair) with its
// stored payload.
//
// Implementations must treat every argument as read-only: paths, slices,
// paints and bitmaps are owned by the command and reused on every replay.
// Optional arguments are passed as nil pointers.
type Canvas interface {
	// DeviceSize returns the size of the base layer in pixels.
	DeviceSize() (width, height int)

	Save()
	SaveLayer(rec SaveLayerRec)
	Restore()
	SetMatrix(m geom.Matrix)
	Concat(m geom.Matrix)

	ClipRect(r geom.Rect, op geom.RegionOp, antiAlias bool)
	ClipRRect(rr geom.RRect, op geom.RegionOp, antiAlias bool)
	ClipPath(path *geom.Path, op geom.RegionOp, antiAlias bool)
	ClipRegion(rgn geom.Region, op geom.RegionOp)

	Clear(c paint.Color)
	DrawPaint(p paint.Paint)
	DrawRect(r geom.Rect, p paint.Paint)
	DrawOval(r geom.Rect, p paint.Paint)
	DrawRRect(rr geom.RRect, p paint.Paint)
	DrawDRRect(outer, inner geom.RRect, p paint.Paint)
	DrawPath(path *geom.Path, p paint.Paint)
	DrawPoints(mode PointMode, pts []geom.Point, p paint.Paint)

	DrawBitmap(bm *bitmap.Bitmap, left, top float64, p *paint.Paint)
	DrawBitmapRect(bm *bitmap.Bitmap, src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint)
	DrawBitmapNine(bm *bitmap.Bitmap, center geom.IRect, dst geom.Rect, p *paint.Paint)
	DrawImage(img *bitmap.Image, left, top float64, p *paint.Paint)
	DrawImageRect(img *bitmap.Image, src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint)

	// Text payloads are bytes in p.TextEncoding.
	DrawText(text []byte, x, y float64, p paint.Paint)
	DrawPosText(text []byte, pos []geom.Point, p paint.Paint)
	DrawPosTextH(text []byte, xpos []float64, y float64, p paint.Paint)
	DrawTextOnPath(text []byte, path *geom.Path, m *geom.Matrix, p paint.Paint)
	DrawTextBlob(blob *TextBlob, x, y float64, p paint.Paint)

	DrawVertices(v *Vertices, xfer paint.Xfermode, p paint.Paint)
	DrawPatch(patch *Patch, xfer paint.Xfermode, p paint.Paint)
}

// PointMode selects how DrawPoints interprets its points.
type PointMode uint8

const (
	PointsModePoints PointMode = iota
	PointsModeLines
	PointsModePolygon
)

var pointModeNames = [...]string{
	PointsModePoints:  "points",
	PointsModeLines:   "lines",
	PointsModePolygon: "polygon",
}

func (m PointMode) String() string { return enumName(pointModeNames[:], int(m)) }

// SrcRectConstraint controls whether sampling may read outside the source
// rectangle of a rect-to-rect image draw.
type SrcRectConstraint uint8

const (
	ConstraintFast SrcRectConstraint = iota
	ConstraintStrict
)

// SaveLayerFlags modify how a layer is initialized.
type SaveLayerFlags uint32

const (
	SaveLayerPreserveLCDText  SaveLayerFlags = 1 << 1
	SaveLayerInitWithPrevious SaveLayerFlags = 1 << 2
)

// SaveLayerRec holds the optional arguments of SaveLayer.
type SaveLayerRec struct {
	Bounds   *geom.Rect
	Paint    *paint.Paint
	Backdrop paint.ImageFilter
	Flags    SaveLayerFlags
}

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return "Unknown"
}

func enumIndex(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}
