package debugger

import (
	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// Recorder is a Canvas that captures every call as a Command. Each command
// takes its own copy of the call's geometry, paint and arrays; bitmaps,
// images, effects, typefaces, text blobs and pictures are shared.
//
// Example:
//
//	rec := debugger.NewRecorder(800, 600)
//	rec.Save()
//	rec.Concat(geom.Translate(10, 10))
//	rec.DrawRect(geom.XYWH(0, 0, 50, 50), paint.New())
//	rec.Restore()
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns a recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height, commands: make([]Command, 0, 256)}
}

// Finish returns the recorded commands. The recorder can keep recording;
// later commands do not appear in the returned recording.
func (r *Recorder) Finish() *Recording {
	return NewRecording(r.width, r.height, r.commands)
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int { return len(r.commands) }

func (r *Recorder) push(cmd Command) { r.commands = append(r.commands, cmd) }

// DeviceSize implements Canvas.
func (r *Recorder) DeviceSize() (int, int) { return r.width, r.height }

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Save implements Canvas.
func (r *Recorder) Save() { r.push(NewSave()) }

// SaveLayer implements Canvas.
func (r *Recorder) SaveLayer(rec SaveLayerRec) { r.push(NewSaveLayer(rec)) }

// Restore implements Canvas.
func (r *Recorder) Restore() { r.push(NewRestore()) }

// SetMatrix implements Canvas.
func (r *Recorder) SetMatrix(m geom.Matrix) { r.push(NewSetMatrix(m)) }

// Concat implements Canvas.
func (r *Recorder) Concat(m geom.Matrix) { r.push(NewConcat(m)) }

// DrawPicture records pic between a begin and an end bracket. The
// picture's commands are recorded individually so they can be stepped
// through and toggled.
func (r *Recorder) DrawPicture(pic *Picture, m *geom.Matrix, p *paint.Paint) {
	begin := NewBeginDrawPicture(pic, m, p)
	r.push(begin)
	pic.Playback(r)
	r.push(NewEndDrawPicture(begin.Restores()))
}

// --------------------------------------------------------------------------
// Clips
// --------------------------------------------------------------------------

// ClipRect implements Canvas.
func (r *Recorder) ClipRect(rect geom.Rect, op geom.RegionOp, antiAlias bool) {
	r.push(NewClipRect(rect, op, antiAlias))
}

// ClipRRect implements Canvas.
func (r *Recorder) ClipRRect(rr geom.RRect, op geom.RegionOp, antiAlias bool) {
	r.push(NewClipRRect(rr, op, antiAlias))
}

// ClipPath implements Canvas.
func (r *Recorder) ClipPath(path *geom.Path, op geom.RegionOp, antiAlias bool) {
	r.push(NewClipPath(path, op, antiAlias))
}

// ClipRegion implements Canvas.
func (r *Recorder) ClipRegion(rgn geom.Region, op geom.RegionOp) {
	r.push(NewClipRegion(rgn, op))
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// Clear implements Canvas.
func (r *Recorder) Clear(c paint.Color) { r.push(NewDrawClear(c)) }

// DrawPaint implements Canvas.
func (r *Recorder) DrawPaint(p paint.Paint) { r.push(NewDrawPaint(p)) }

// DrawRect implements Canvas.
func (r *Recorder) DrawRect(rect geom.Rect, p paint.Paint) { r.push(NewDrawRect(rect, p)) }

// DrawOval implements Canvas.
func (r *Recorder) DrawOval(oval geom.Rect, p paint.Paint) { r.push(NewDrawOval(oval, p)) }

// DrawRRect implements Canvas.
func (r *Recorder) DrawRRect(rr geom.RRect, p paint.Paint) { r.push(NewDrawRRect(rr, p)) }

// DrawDRRect implements Canvas.
func (r *Recorder) DrawDRRect(outer, inner geom.RRect, p paint.Paint) {
	r.push(NewDrawDRRect(outer, inner, p))
}

// DrawPath implements Canvas.
func (r *Recorder) DrawPath(path *geom.Path, p paint.Paint) { r.push(NewDrawPath(path, p)) }

// DrawPoints implements Canvas.
func (r *Recorder) DrawPoints(mode PointMode, pts []geom.Point, p paint.Paint) {
	r.push(NewDrawPoints(mode, pts, p))
}

// DrawVertices implements Canvas.
func (r *Recorder) DrawVertices(v *Vertices, xfer paint.Xfermode, p paint.Paint) {
	r.push(NewDrawVertices(v, xfer, p))
}

// DrawPatch implements Canvas.
func (r *Recorder) DrawPatch(patch *Patch, xfer paint.Xfermode, p paint.Paint) {
	r.push(NewDrawPatch(patch, xfer, p))
}

// --------------------------------------------------------------------------
// Images
// --------------------------------------------------------------------------

// DrawBitmap implements Canvas.
func (r *Recorder) DrawBitmap(bm *bitmap.Bitmap, left, top float64, p *paint.Paint) {
	r.push(NewDrawBitmap(bm, left, top, p))
}

// DrawBitmapRect implements Canvas.
func (r *Recorder) DrawBitmapRect(bm *bitmap.Bitmap, src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint) {
	r.push(NewDrawBitmapRect(bm, src, dst, p, constraint))
}

// DrawBitmapNine implements Canvas.
func (r *Recorder) DrawBitmapNine(bm *bitmap.Bitmap, center geom.IRect, dst geom.Rect, p *paint.Paint) {
	r.push(NewDrawBitmapNine(bm, center, dst, p))
}

// DrawImage implements Canvas.
func (r *Recorder) DrawImage(img *bitmap.Image, left, top float64, p *paint.Paint) {
	r.push(NewDrawImage(img, left, top, p))
}

// DrawImageRect implements Canvas.
func (r *Recorder) DrawImageRect(img *bitmap.Image, src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint) {
	r.push(NewDrawImageRect(img, src, dst, p, constraint))
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// DrawText implements Canvas.
func (r *Recorder) DrawText(text []byte, x, y float64, p paint.Paint) {
	r.push(NewDrawText(text, x, y, p))
}

// DrawString records s as UTF-8 text, converting it to the paint's text
// encoding first.
func (r *Recorder) DrawString(s string, x, y float64, p paint.Paint) error {
	text, err := p.EncodeText(s)
	if err != nil {
		return err
	}
	r.DrawText(text, x, y, p)
	return nil
}

// DrawPosText implements Canvas. A call whose position count differs from
// its glyph count is not recorded.
func (r *Recorder) DrawPosText(text []byte, pos []geom.Point, p paint.Paint) {
	if !positionsMatch(OpDrawPosText, text, len(pos), &p) {
		return
	}
	r.push(NewDrawPosText(text, pos, p))
}

// DrawPosTextH implements Canvas. A call whose position count differs from
// its glyph count is not recorded.
func (r *Recorder) DrawPosTextH(text []byte, xpos []float64, y float64, p paint.Paint) {
	if !positionsMatch(OpDrawPosTextH, text, len(xpos), &p) {
		return
	}
	r.push(NewDrawPosTextH(text, xpos, y, p))
}

func positionsMatch(op OpType, text []byte, n int, p *paint.Paint) bool {
	if glyphs := p.CountText(text); n != glyphs {
		Logger().Warn("debugger: positioned text skipped", "op", op, "positions", n, "glyphs", glyphs)
		return false
	}
	return true
}

// DrawTextOnPath implements Canvas.
func (r *Recorder) DrawTextOnPath(text []byte, path *geom.Path, m *geom.Matrix, p paint.Paint) {
	r.push(NewDrawTextOnPath(text, path, m, p))
}

// DrawTextBlob implements Canvas.
func (r *Recorder) DrawTextBlob(blob *TextBlob, x, y float64, p paint.Paint) {
	r.push(NewDrawTextBlob(blob, x, y, p))
}
