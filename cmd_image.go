package debugger

import (
	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// Pixel payloads are shared with the caller, not copied: bitmaps and
// images are treated as immutable once drawn.

// --------------------------------------------------------------------------
// Bitmaps
// --------------------------------------------------------------------------

// DrawBitmapCommand draws a bitmap with its top-left corner at a point.
type DrawBitmapCommand struct {
	command
	Bitmap    *bitmap.Bitmap
	Left, Top float64
	Paint     *paint.Paint
}

// NewDrawBitmap returns a bitmap draw command.
func NewDrawBitmap(bm *bitmap.Bitmap, left, top float64, p *paint.Paint) *DrawBitmapCommand {
	cmd := &DrawBitmapCommand{Bitmap: bm, Left: left, Top: top, Paint: copyPaint(p)}
	info := []string{
		"Bitmap: " + bm.Describe(),
		describeScalar("Left: ", left),
		describeScalar("Top: ", top),
	}
	if cmd.Paint != nil {
		info = append(info, describePaint(cmd.Paint))
	}
	cmd.command = newCommand(OpDrawBitmap, info...)
	return cmd
}

// Execute implements Command.
func (cmd *DrawBitmapCommand) Execute(c Canvas) {
	c.DrawBitmap(cmd.Bitmap, cmd.Left, cmd.Top, cmd.Paint)
}

// Render implements Previewer.
func (cmd *DrawBitmapCommand) Render(c Canvas) bool {
	return renderBitmap(c, cmd.Bitmap, nil)
}

func (cmd *DrawBitmapCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{keyCoords: EncodePoint(geom.Pt(cmd.Left, cmd.Top))}
	if v, ok := encodeBitmap(cmd.Bitmap, cfg); ok {
		out[keyBitmap] = v
	}
	if cmd.Paint != nil {
		out[keyPaint] = encodePaint(cmd.Paint, cfg)
	}
	return out
}

func decodeDrawBitmap(d *decoder) Command {
	bm := d.bitmap(keyBitmap)
	at := d.point(keyCoords)
	p := d.optPaint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawBitmap(bm, at.X, at.Y, p)
}

// DrawBitmapNineCommand draws a bitmap stretched as a nine-patch: the
// corners keep their size and the center stretches to fill dst.
type DrawBitmapNineCommand struct {
	command
	Bitmap *bitmap.Bitmap
	Center geom.IRect
	Dst    geom.Rect
	Paint  *paint.Paint
}

// NewDrawBitmapNine returns a nine-patch draw command.
func NewDrawBitmapNine(bm *bitmap.Bitmap, center geom.IRect, dst geom.Rect, p *paint.Paint) *DrawBitmapNineCommand {
	cmd := &DrawBitmapNineCommand{Bitmap: bm, Center: center, Dst: dst, Paint: copyPaint(p)}
	info := []string{"Bitmap: " + bm.Describe(), center.String(), describeRect("Dst: ", dst)}
	if cmd.Paint != nil {
		info = append(info, describePaint(cmd.Paint))
	}
	cmd.command = newCommand(OpDrawBitmapNine, info...)
	return cmd
}

// Execute implements Command.
func (cmd *DrawBitmapNineCommand) Execute(c Canvas) {
	c.DrawBitmapNine(cmd.Bitmap, cmd.Center, cmd.Dst, cmd.Paint)
}

// Render implements Previewer.
func (cmd *DrawBitmapNineCommand) Render(c Canvas) bool {
	return renderBitmap(c, cmd.Bitmap, nil)
}

func (cmd *DrawBitmapNineCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{
		keyCenter: EncodeIRect(cmd.Center),
		keyDst:    EncodeRect(cmd.Dst),
	}
	if v, ok := encodeBitmap(cmd.Bitmap, cfg); ok {
		out[keyBitmap] = v
	}
	if cmd.Paint != nil {
		out[keyPaint] = encodePaint(cmd.Paint, cfg)
	}
	return out
}

func decodeDrawBitmapNine(d *decoder) Command {
	bm := d.bitmap(keyBitmap)
	center := d.irect(keyCenter)
	dst := d.rect(keyDst)
	p := d.optPaint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawBitmapNine(bm, center, dst, p)
}

// DrawBitmapRectCommand draws the src part of a bitmap (all of it when
// src is nil) scaled into dst.
type DrawBitmapRectCommand struct {
	command
	Bitmap     *bitmap.Bitmap
	Src        *geom.Rect
	Dst        geom.Rect
	Paint      *paint.Paint
	Constraint SrcRectConstraint
}

// NewDrawBitmapRect returns a rect-to-rect bitmap draw command.
func NewDrawBitmapRect(bm *bitmap.Bitmap, src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint) *DrawBitmapRectCommand {
	cmd := &DrawBitmapRectCommand{
		Bitmap:     bm,
		Src:        copyRect(src),
		Dst:        dst,
		Paint:      copyPaint(p),
		Constraint: constraint,
	}
	cmd.command = newCommand(OpDrawBitmapRect,
		rectDrawInfo("Bitmap: "+bm.Describe(), cmd.Src, dst, cmd.Paint, constraint)...)
	return cmd
}

// Execute implements Command.
func (cmd *DrawBitmapRectCommand) Execute(c Canvas) {
	c.DrawBitmapRect(cmd.Bitmap, cmd.Src, cmd.Dst, cmd.Paint, cmd.Constraint)
}

// Render implements Previewer.
func (cmd *DrawBitmapRectCommand) Render(c Canvas) bool {
	return renderBitmap(c, cmd.Bitmap, cmd.Src)
}

func (cmd *DrawBitmapRectCommand) encode(cfg *encodeConfig) map[string]any {
	out := encodeRectDraw(cmd.Src, cmd.Dst, cmd.Paint, cmd.Constraint, cfg)
	if v, ok := encodeBitmap(cmd.Bitmap, cfg); ok {
		out[keyBitmap] = v
	}
	return out
}

func decodeDrawBitmapRect(d *decoder) Command {
	bm := d.bitmap(keyBitmap)
	src, dst, p, constraint := d.rectDraw()
	if d.err != nil {
		return nil
	}
	return NewDrawBitmapRect(bm, src, dst, p, constraint)
}

// --------------------------------------------------------------------------
// Images
// --------------------------------------------------------------------------

// DrawImageCommand draws an image with its top-left corner at a point.
type DrawImageCommand struct {
	command
	Image     *bitmap.Image
	Left, Top float64
	Paint     *paint.Paint
}

// NewDrawImage returns an image draw command.
func NewDrawImage(img *bitmap.Image, left, top float64, p *paint.Paint) *DrawImageCommand {
	cmd := &DrawImageCommand{Image: img, Left: left, Top: top, Paint: copyPaint(p)}
	info := []string{"Image: " + img.Bitmap().Describe(), describeScalar("Left: ", left), describeScalar("Top: ", top)}
	if cmd.Paint != nil {
		info = append(info, describePaint(cmd.Paint))
	}
	cmd.command = newCommand(OpDrawImage, info...)
	return cmd
}

// Execute implements Command.
func (cmd *DrawImageCommand) Execute(c Canvas) {
	c.DrawImage(cmd.Image, cmd.Left, cmd.Top, cmd.Paint)
}

// Render implements Previewer.
func (cmd *DrawImageCommand) Render(c Canvas) bool {
	return renderBitmap(c, cmd.Image.Bitmap(), nil)
}

func (cmd *DrawImageCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{keyCoords: EncodePoint(geom.Pt(cmd.Left, cmd.Top))}
	if v, ok := encodeImage(cmd.Image, cfg); ok {
		out[keyImage] = v
	}
	if cmd.Paint != nil {
		out[keyPaint] = encodePaint(cmd.Paint, cfg)
	}
	return out
}

func decodeDrawImage(d *decoder) Command {
	img := d.image(keyImage)
	at := d.point(keyCoords)
	p := d.optPaint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawImage(img, at.X, at.Y, p)
}

// DrawImageRectCommand draws the src part of an image (all of it when
// src is nil) scaled into dst.
type DrawImageRectCommand struct {
	command
	Image      *bitmap.Image
	Src        *geom.Rect
	Dst        geom.Rect
	Paint      *paint.Paint
	Constraint SrcRectConstraint
}

// NewDrawImageRect returns a rect-to-rect image draw command.
func NewDrawImageRect(img *bitmap.Image, src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint) *DrawImageRectCommand {
	cmd := &DrawImageRectCommand{
		Image:      img,
		Src:        copyRect(src),
		Dst:        dst,
		Paint:      copyPaint(p),
		Constraint: constraint,
	}
	cmd.command = newCommand(OpDrawImageRect,
		rectDrawInfo("Image: "+img.Bitmap().Describe(), cmd.Src, dst, cmd.Paint, constraint)...)
	return cmd
}

// Execute implements Command.
func (cmd *DrawImageRectCommand) Execute(c Canvas) {
	c.DrawImageRect(cmd.Image, cmd.Src, cmd.Dst, cmd.Paint, cmd.Constraint)
}

// Render implements Previewer.
func (cmd *DrawImageRectCommand) Render(c Canvas) bool {
	return renderBitmap(c, cmd.Image.Bitmap(), cmd.Src)
}

func (cmd *DrawImageRectCommand) encode(cfg *encodeConfig) map[string]any {
	out := encodeRectDraw(cmd.Src, cmd.Dst, cmd.Paint, cmd.Constraint, cfg)
	if v, ok := encodeImage(cmd.Image, cfg); ok {
		out[keyImage] = v
	}
	return out
}

func decodeDrawImageRect(d *decoder) Command {
	img := d.image(keyImage)
	src, dst, p, constraint := d.rectDraw()
	if d.err != nil {
		return nil
	}
	return NewDrawImageRect(img, src, dst, p, constraint)
}

// Shared by the bitmap and image rect-to-rect commands.

func rectDrawInfo(what string, src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint) []string {
	info := []string{what}
	if src != nil {
		info = append(info, describeRect("Src: ", *src))
	}
	info = append(info, describeRect("Dst: ", dst))
	if p != nil {
		info = append(info, describePaint(p))
	}
	return append(info, describeInt("Constraint: ", int(constraint)))
}

func encodeRectDraw(src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint, cfg *encodeConfig) map[string]any {
	out := map[string]any{keyDst: EncodeRect(dst)}
	if src != nil {
		out[keySrc] = EncodeRect(*src)
	}
	if p != nil {
		out[keyPaint] = encodePaint(p, cfg)
	}
	if constraint == ConstraintStrict {
		out[keyStrict] = true
	}
	return out
}

func (d *decoder) rectDraw() (src *geom.Rect, dst geom.Rect, p *paint.Paint, constraint SrcRectConstraint) {
	src = d.optRect(keySrc)
	dst = d.rect(keyDst)
	p = d.optPaint(keyPaint)
	if d.flag(keyStrict) {
		constraint = ConstraintStrict
	}
	return src, dst, p, constraint
}
