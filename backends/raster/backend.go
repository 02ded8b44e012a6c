// Package raster provides a raster backend for replaying debugger
// recordings. It renders commands to pixels using gg.Context.
//
// # Supported Features
//
//   - Fills and strokes of rects, ovals, rounded rects, paths and points
//   - Solid colors and linear, radial and sweep gradient shaders
//   - Stroke styling (width, cap, join, miter, dash patterns)
//   - Intersect and replace clips; save, restore and save-layer
//   - Bitmaps and images with source rects
//   - Text through the paint's typeface
//   - PNG output
//
// # Limitations
//
// Mask filters, image filters and most transfer modes have no gg
// counterpart and are ignored. Difference, XOR and reverse-difference
// clips are skipped. Nine-patch bitmaps are stretched. Vertex meshes are
// filled flat with the first vertex color.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/gg-debugger/backends/raster"
//
//	// Create via registry
//	backend, _ := debugger.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Replay a recording
//	rec.Render(backend)
//
//	// Get output
//	backend.SavePNG("output.png")
//	img := backend.Image()
package raster

import (
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	debugger "github.com/gogpu/gg-debugger"
	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/effect"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

func init() {
	debugger.Register("raster", func() debugger.Backend {
		return NewBackend()
	})
}

// Backend renders commands to a pixel image using gg.Context.
// It implements debugger.Backend, debugger.WriterBackend and
// debugger.ImageBackend.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int

	// one entry per open save; true when the save also pushed a layer
	layers []bool
	runes  map[*paint.Typeface]map[uint16]rune
}

// Ensure Backend implements all required interfaces.
var (
	_ debugger.Backend       = (*Backend)(nil)
	_ debugger.WriterBackend = (*Backend)(nil)
	_ debugger.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.layers = b.layers[:0]
	return nil
}

// End finalizes rendering. Saves left open by the commands are unwound.
func (b *Backend) End() error {
	for len(b.layers) > 0 {
		b.Restore()
	}
	return nil
}

// DeviceSize returns the size passed to Begin.
func (b *Backend) DeviceSize() (width, height int) {
	return b.width, b.height
}

// Save saves the current transform and clip.
func (b *Backend) Save() {
	b.ctx.Push()
	b.layers = append(b.layers, false)
}

// SaveLayer saves state and opens a compositing layer. The layer takes its
// opacity from the paint alpha and its blend mode from the paint
// transfer mode.
func (b *Backend) SaveLayer(rec debugger.SaveLayerRec) {
	b.ctx.Push()
	mode, opacity := gg.BlendNormal, 1.0
	if rec.Paint != nil {
		mode = layerBlend(rec.Paint.Xfermode)
		opacity = float64(rec.Paint.Alpha()) / 255
	}
	b.ctx.PushLayer(mode, opacity)
	b.layers = append(b.layers, true)
}

// Restore undoes the matching Save or SaveLayer. Unbalanced restores are
// ignored.
func (b *Backend) Restore() {
	n := len(b.layers)
	if n == 0 {
		return
	}
	if b.layers[n-1] {
		b.ctx.PopLayer()
	}
	b.layers = b.layers[:n-1]
	b.ctx.Pop()
}

// SetMatrix replaces the current transform.
func (b *Backend) SetMatrix(m geom.Matrix) {
	b.ctx.SetTransform(toGG(m))
}

// Concat premultiplies the current transform by m.
func (b *Backend) Concat(m geom.Matrix) {
	b.ctx.Transform(toGG(m))
}

// ClipRect clips to r in local coordinates.
func (b *Backend) ClipRect(r geom.Rect, op geom.RegionOp, _ bool) {
	if !b.prepareClip(op) {
		return
	}
	r = r.Sorted()
	b.ctx.ClipRect(r.Left, r.Top, r.Width(), r.Height())
}

// ClipRRect clips to rr in local coordinates.
func (b *Backend) ClipRRect(rr geom.RRect, op geom.RegionOp, _ bool) {
	if !b.prepareClip(op) {
		return
	}
	path := geom.NewPath()
	path.AddRRect(rr)
	b.setPath(path)
	b.ctx.Clip()
}

// ClipPath clips to path in local coordinates.
func (b *Backend) ClipPath(path *geom.Path, op geom.RegionOp, _ bool) {
	if !b.prepareClip(op) {
		return
	}
	b.setPath(path)
	b.ctx.Clip()
}

// ClipRegion clips to the union of the region rects, which are in device
// coordinates.
func (b *Backend) ClipRegion(rgn geom.Region, op geom.RegionOp) {
	if !b.prepareClip(op) {
		return
	}
	b.ctx.Push()
	b.ctx.Identity()
	b.ctx.ClearPath()
	for _, r := range rgn.Rects {
		b.ctx.DrawRectangle(float64(r.Left), float64(r.Top), float64(r.Right-r.Left), float64(r.Bottom-r.Top))
	}
	b.ctx.Pop()
	b.ctx.Clip()
}

// Clear fills the whole device with c, ignoring transform and clip.
func (b *Backend) Clear(c paint.Color) {
	b.ctx.ClearWithColor(c.RGBA())
}

// DrawPaint fills the whole clip with p.
func (b *Backend) DrawPaint(p paint.Paint) {
	b.ctx.Push()
	b.ctx.Identity()
	b.ctx.ClearPath()
	b.ctx.DrawRectangle(0, 0, float64(b.width), float64(b.height))
	b.applyBrush(&p, true)
	if err := b.ctx.Fill(); err != nil {
		debugger.Logger().Warn("raster: fill failed", "err", err)
	}
	b.ctx.Pop()
}

// DrawRect draws r with p.
func (b *Backend) DrawRect(r geom.Rect, p paint.Paint) {
	path := geom.NewPath()
	path.AddRect(r.Sorted())
	b.drawPath(path, &p)
}

// DrawOval draws the ellipse inscribed in r with p.
func (b *Backend) DrawOval(r geom.Rect, p paint.Paint) {
	path := geom.NewPath()
	path.AddOval(r.Sorted())
	b.drawPath(path, &p)
}

// DrawRRect draws rr with p.
func (b *Backend) DrawRRect(rr geom.RRect, p paint.Paint) {
	path := geom.NewPath()
	path.AddRRect(rr)
	b.drawPath(path, &p)
}

// DrawDRRect draws the ring between outer and inner with p.
func (b *Backend) DrawDRRect(outer, inner geom.RRect, p paint.Paint) {
	path := geom.NewPath()
	path.SetFillType(geom.FillEvenOdd)
	path.AddRRect(outer)
	path.AddRRect(inner)
	b.drawPath(path, &p)
}

// DrawPath draws path with p.
func (b *Backend) DrawPath(path *geom.Path, p paint.Paint) {
	b.drawPath(path, &p)
}

// DrawPoints strokes pts as dots, segments or a polyline depending on mode.
func (b *Backend) DrawPoints(mode debugger.PointMode, pts []geom.Point, p paint.Paint) {
	if len(pts) == 0 {
		return
	}
	path := geom.NewPath()
	switch mode {
	case debugger.PointsModeLines:
		for i := 0; i+1 < len(pts); i += 2 {
			path.MoveTo(pts[i].X, pts[i].Y)
			path.LineTo(pts[i+1].X, pts[i+1].Y)
		}
	case debugger.PointsModePolygon:
		path.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			path.LineTo(pt.X, pt.Y)
		}
	default:
		for _, pt := range pts {
			path.MoveTo(pt.X, pt.Y)
			path.LineTo(pt.X, pt.Y)
		}
	}
	p.Style = paint.StyleStroke
	b.drawPath(path, &p)
}

// DrawBitmap draws bm with its top-left corner at (left, top).
func (b *Backend) DrawBitmap(bm *bitmap.Bitmap, left, top float64, p *paint.Paint) {
	if bm == nil {
		return
	}
	dst := geom.XYWH(left, top, float64(bm.Width()), float64(bm.Height()))
	b.drawImage(bm.Pixels, nil, dst, p)
}

// DrawBitmapRect draws the src part of bm scaled into dst.
func (b *Backend) DrawBitmapRect(bm *bitmap.Bitmap, src *geom.Rect, dst geom.Rect, p *paint.Paint, _ debugger.SrcRectConstraint) {
	if bm == nil {
		return
	}
	b.drawImage(bm.Pixels, src, dst, p)
}

// DrawBitmapNine draws bm stretched into dst. The center rect is not
// honored.
func (b *Backend) DrawBitmapNine(bm *bitmap.Bitmap, _ geom.IRect, dst geom.Rect, p *paint.Paint) {
	if bm == nil {
		return
	}
	b.drawImage(bm.Pixels, nil, dst, p)
}

// DrawImage draws img with its top-left corner at (left, top).
func (b *Backend) DrawImage(img *bitmap.Image, left, top float64, p *paint.Paint) {
	if img == nil {
		return
	}
	b.DrawBitmap(img.Bitmap(), left, top, p)
}

// DrawImageRect draws the src part of img scaled into dst.
func (b *Backend) DrawImageRect(img *bitmap.Image, src *geom.Rect, dst geom.Rect, p *paint.Paint, c debugger.SrcRectConstraint) {
	if img == nil {
		return
	}
	b.DrawBitmapRect(img.Bitmap(), src, dst, p, c)
}

// DrawText draws text with its baseline origin at (x, y).
func (b *Backend) DrawText(text []byte, x, y float64, p paint.Paint) {
	s, ok := b.decodeText(text, &p)
	if !ok || !b.applyFont(&p) {
		return
	}
	b.ctx.DrawString(s, x, y)
}

// DrawPosText draws each character at its own position.
func (b *Backend) DrawPosText(text []byte, pos []geom.Point, p paint.Paint) {
	s, ok := b.decodeText(text, &p)
	if !ok || !b.applyFont(&p) {
		return
	}
	i := 0
	for _, r := range s {
		if i >= len(pos) {
			break
		}
		b.ctx.DrawString(string(r), pos[i].X, pos[i].Y)
		i++
	}
}

// DrawPosTextH draws each character at its own x on a shared baseline.
func (b *Backend) DrawPosTextH(text []byte, xpos []float64, y float64, p paint.Paint) {
	s, ok := b.decodeText(text, &p)
	if !ok || !b.applyFont(&p) {
		return
	}
	i := 0
	for _, r := range s {
		if i >= len(xpos) {
			break
		}
		b.ctx.DrawString(string(r), xpos[i], y)
		i++
	}
}

// DrawTextOnPath draws text along a straight baseline starting at the
// first point of path.
func (b *Backend) DrawTextOnPath(text []byte, path *geom.Path, m *geom.Matrix, p paint.Paint) {
	s, ok := b.decodeText(text, &p)
	if !ok || path.IsEmpty() || !b.applyFont(&p) {
		return
	}
	var start geom.Point
	for seg := range path.Segments() {
		start = seg.Pts[0]
		break
	}
	if m != nil {
		start = m.MapPoint(start)
	}
	b.ctx.DrawString(s, start.X, start.Y)
}

// DrawTextBlob draws every run of blob offset by (x, y).
func (b *Backend) DrawTextBlob(blob *debugger.TextBlob, x, y float64, p paint.Paint) {
	if blob == nil {
		return
	}
	for _, run := range blob.Runs() {
		font := run.Font
		font.Color = p.Color
		font.Shader = p.Shader
		font.ColorFilter = p.ColorFilter
		if !b.applyFont(&font) {
			continue
		}
		runes := b.glyphRunes(font.Typeface)
		for i, g := range run.Glyphs {
			r, ok := runes[g]
			if !ok {
				continue
			}
			pt := run.Point(i)
			b.ctx.DrawString(string(r), x+pt.X, y+pt.Y)
		}
	}
}

// DrawVertices fills each triangle of v. The first vertex color is used
// when present, otherwise the paint color.
func (b *Backend) DrawVertices(v *debugger.Vertices, xfer paint.Xfermode, p paint.Paint) {
	if v == nil {
		return
	}
	if len(v.Colors) > 0 {
		p.Color = v.Colors[0]
		p.Shader = nil
	}
	p.Style = paint.StyleFill
	if xfer != nil {
		p.Xfermode = xfer
	}
	path := geom.NewPath()
	v.Triangles(func(a, c, d geom.Point) {
		path.MoveTo(a.X, a.Y)
		path.LineTo(c.X, c.Y)
		path.LineTo(d.X, d.Y)
		path.Close()
	})
	b.drawPath(path, &p)
}

// DrawPatch fills the outline of patch.
func (b *Backend) DrawPatch(patch *debugger.Patch, xfer paint.Xfermode, p paint.Paint) {
	if patch == nil {
		return
	}
	if patch.Colors != nil {
		p.Color = patch.Colors[0]
		p.Shader = nil
	}
	p.Style = paint.StyleFill
	if xfer != nil {
		p.Xfermode = xfer
	}
	b.drawPath(patch.Path(), &p)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.ctx.Image())
	return cw.n, err
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// SavePNG is a convenience method to save the image as PNG.
func (b *Backend) SavePNG(path string) error {
	return b.ctx.SavePNG(path)
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// prepareClip reports whether op can be applied and resets the clip for
// replace.
func (b *Backend) prepareClip(op geom.RegionOp) bool {
	switch op {
	case geom.OpIntersect:
		return true
	case geom.OpReplace:
		b.ctx.ResetClip()
		return true
	default:
		debugger.Logger().Debug("raster: clip op not supported", "op", op)
		return false
	}
}

// drawPath fills, strokes or both according to p.Style.
func (b *Backend) drawPath(path *geom.Path, p *paint.Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	if p.Xfermode != nil {
		b.ctx.PushLayer(layerBlend(p.Xfermode), 1)
		defer b.ctx.PopLayer()
	}

	b.setPath(path)
	var err error
	switch p.Style {
	case paint.StyleStroke:
		b.applyBrush(p, false)
		b.applyStroke(p)
		err = b.ctx.Stroke()
	case paint.StyleStrokeAndFill:
		b.applyBrush(p, true)
		if err = b.ctx.FillPreserve(); err == nil {
			b.applyStroke(p)
			err = b.ctx.Stroke()
		}
	default:
		b.applyBrush(p, true)
		err = b.ctx.Fill()
	}
	if err != nil {
		debugger.Logger().Warn("raster: draw failed", "err", err)
	}
}

// setPath replaces the context path with path, in local coordinates.
func (b *Backend) setPath(path *geom.Path) {
	b.ctx.ClearPath()
	var last geom.Point
	for seg := range path.Segments() {
		pts := seg.Pts
		switch seg.Verb {
		case geom.VerbMove:
			b.ctx.MoveTo(pts[0].X, pts[0].Y)
			last = pts[0]
		case geom.VerbLine:
			b.ctx.LineTo(pts[0].X, pts[0].Y)
			last = pts[0]
		case geom.VerbQuad:
			b.ctx.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
			last = pts[1]
		case geom.VerbConic:
			c1, c2 := geom.ConicToCubic(last, pts[0], pts[1], seg.Weight)
			b.ctx.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			last = pts[1]
		case geom.VerbCubic:
			b.ctx.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			last = pts[2]
		case geom.VerbClose:
			b.ctx.ClosePath()
		}
	}
	if path.FillType().IsEvenOdd() {
		b.ctx.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		b.ctx.SetFillRule(gg.FillRuleNonZero)
	}
}

// applyBrush sets the fill or stroke brush from the paint color and
// shader.
func (b *Backend) applyBrush(p *paint.Paint, fill bool) {
	brush := b.brush(p)
	if fill {
		b.ctx.SetFillBrush(brush)
	} else {
		b.ctx.SetStrokeBrush(brush)
	}
}

func (b *Backend) brush(p *paint.Paint) gg.Brush {
	color := func(c paint.Color) gg.RGBA {
		if p.ColorFilter != nil {
			c = p.ColorFilter.FilterColor(c)
		}
		return c.RGBA()
	}

	switch sh := p.Shader.(type) {
	case nil:
		return gg.Solid(color(p.Color))

	case *effect.ColorShader:
		return gg.Solid(color(sh.Color.WithAlpha(p.Alpha())))

	case *effect.LinearGradient:
		start, end := sh.Matrix.MapPoint(sh.Start), sh.Matrix.MapPoint(sh.End)
		grad := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
		for _, stop := range sh.Stops {
			grad.AddColorStop(stop.Offset, color(stop.Color))
		}
		grad.SetExtend(extendMode(sh.Tile))
		return grad

	case *effect.RadialGradient:
		center, focus := sh.Matrix.MapPoint(sh.Center), sh.Matrix.MapPoint(sh.Focus)
		grad := gg.NewRadialGradientBrush(center.X, center.Y, sh.StartRadius, sh.EndRadius)
		grad.SetFocus(focus.X, focus.Y)
		for _, stop := range sh.Stops {
			grad.AddColorStop(stop.Offset, color(stop.Color))
		}
		grad.SetExtend(extendMode(sh.Tile))
		return grad

	case *effect.SweepGradient:
		center := sh.Matrix.MapPoint(sh.Center)
		grad := gg.NewSweepGradientBrush(center.X, center.Y, sh.StartAngle)
		grad.SetEndAngle(sh.EndAngle)
		for _, stop := range sh.Stops {
			grad.AddColorStop(stop.Offset, color(stop.Color))
		}
		grad.SetExtend(extendMode(sh.Tile))
		return grad

	default:
		debugger.Logger().Debug("raster: shader not supported", "shader", sh.TypeName())
		return gg.Solid(color(p.Color))
	}
}

// applyStroke applies the stroke settings of p to the context.
func (b *Backend) applyStroke(p *paint.Paint) {
	width := p.StrokeWidth
	if width == 0 {
		width = 1
	}
	b.ctx.SetLineWidth(width)
	b.ctx.SetLineCap(p.Cap.LineCap())
	b.ctx.SetLineJoin(p.Join.LineJoin())
	b.ctx.SetMiterLimit(p.StrokeMiter)

	if p.PathEffect != nil {
		if dash, ok := p.PathEffect.AsDash(); ok {
			b.ctx.SetDash(dash.Intervals...)
			b.ctx.SetDashOffset(dash.Phase)
			return
		}
	}
	b.ctx.ClearDash()
}

// drawImage draws the src part of img into dst. A nil src selects the
// whole image.
func (b *Backend) drawImage(img image.Image, src *geom.Rect, dst geom.Rect, p *paint.Paint) {
	if img == nil {
		return
	}
	opts := gg.DrawImageOptions{
		X:             dst.Left,
		Y:             dst.Top,
		DstWidth:      dst.Width(),
		DstHeight:     dst.Height(),
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	}
	if src != nil {
		s := src.Sorted()
		r := image.Rect(int(s.Left), int(s.Top), int(s.Right), int(s.Bottom)).Intersect(img.Bounds())
		if r.Empty() {
			return
		}
		opts.SrcRect = &r
	}
	if p != nil {
		opts.Opacity = float64(p.Alpha()) / 255
		opts.BlendMode = layerBlend(p.Xfermode)
		if !p.AntiAlias {
			opts.Interpolation = gg.InterpNearest
		}
	}
	b.ctx.DrawImageEx(gg.ImageBufFromImage(img), opts)
}

// decodeText converts a text payload to UTF-8. Glyph-id payloads are
// mapped back through the typeface.
func (b *Backend) decodeText(payload []byte, p *paint.Paint) (string, bool) {
	if p.TextEncoding == paint.EncodingGlyphID {
		if p.Typeface == nil {
			return "", false
		}
		runes := b.glyphRunes(p.Typeface)
		ids := paint.BytesToGlyphs(payload)
		out := make([]rune, 0, len(ids))
		for _, g := range ids {
			if r, ok := runes[g]; ok {
				out = append(out, r)
			}
		}
		return string(out), true
	}
	s, err := p.DecodeText(payload)
	if err != nil {
		debugger.Logger().Debug("raster: text skipped", "err", err)
		return "", false
	}
	return s, true
}

// applyFont selects the typeface and color of p. It reports false when p
// has no usable typeface.
func (b *Backend) applyFont(p *paint.Paint) bool {
	if p.Typeface == nil {
		debugger.Logger().Debug("raster: text without typeface skipped")
		return false
	}
	src, err := p.Typeface.Source()
	if err != nil {
		debugger.Logger().Debug("raster: typeface unusable", "err", err)
		return false
	}
	var face text.Face = src.Face(p.TextSize)
	b.ctx.SetFont(face)
	b.ctx.SetFillBrush(b.brush(p))
	return true
}

// glyphRunes returns a reverse character map for tf covering the Basic
// Multilingual Plane, built on first use.
func (b *Backend) glyphRunes(tf *paint.Typeface) map[uint16]rune {
	if tf == nil {
		return nil
	}
	if m, ok := b.runes[tf]; ok {
		return m
	}
	if b.runes == nil {
		b.runes = make(map[*paint.Typeface]map[uint16]rune)
	}
	m := make(map[uint16]rune)
	for r := rune(0x20); r < 0xFFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		g := tf.GlyphIndex(r)
		if g == 0 {
			continue
		}
		if _, dup := m[g]; !dup {
			m[g] = r
		}
	}
	b.runes[tf] = m
	return m
}

// toGG converts an affine matrix. Perspective terms are dropped.
func toGG(m geom.Matrix) gg.Matrix {
	if m.HasPerspective() {
		debugger.Logger().Debug("raster: perspective dropped", "matrix", m.String())
	}
	a, bb, c, d, e, f := m.AffineCoefficients()
	return gg.Matrix{A: a, B: bb, C: c, D: d, E: e, F: f}
}

// layerBlend maps a transfer mode to the nearest gg layer blend mode.
func layerBlend(x paint.Xfermode) gg.BlendMode {
	if x == nil {
		return gg.BlendNormal
	}
	mode, ok := x.AsMode()
	if !ok {
		return gg.BlendNormal
	}
	switch mode {
	case paint.BlendMultiply, paint.BlendModulate:
		return gg.BlendMultiply
	case paint.BlendScreen:
		return gg.BlendScreen
	case paint.BlendOverlay:
		return gg.BlendOverlay
	default:
		return gg.BlendNormal
	}
}

// extendMode converts a gradient tile mode to gg.ExtendMode.
func extendMode(t effect.TileMode) gg.ExtendMode {
	switch t {
	case effect.TileRepeat:
		return gg.ExtendRepeat
	case effect.TileMirror:
		return gg.ExtendReflect
	default:
		return gg.ExtendPad
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
