package debugger

import (
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// --------------------------------------------------------------------------
// Fills
// --------------------------------------------------------------------------

// DrawClearCommand fills the clip with a color, ignoring the matrix.
type DrawClearCommand struct {
	command
	Color paint.Color
}

// NewDrawClear returns a clear command.
func NewDrawClear(color paint.Color) *DrawClearCommand {
	return &DrawClearCommand{
		command: newCommand(OpDrawClear, "Color: "+color.String()),
		Color:   color,
	}
}

// Execute implements Command.
func (cmd *DrawClearCommand) Execute(c Canvas) { c.Clear(cmd.Color) }

func (cmd *DrawClearCommand) encode(*encodeConfig) map[string]any {
	return map[string]any{keyColor: EncodeColor(cmd.Color)}
}

func decodeDrawClear(d *decoder) Command {
	color := d.color(keyColor)
	if d.err != nil {
		return nil
	}
	return NewDrawClear(color)
}

// DrawPaintCommand fills the clip with a paint.
type DrawPaintCommand struct {
	command
	Paint paint.Paint
}

// NewDrawPaint returns a paint fill command.
func NewDrawPaint(p paint.Paint) *DrawPaintCommand {
	return &DrawPaintCommand{command: newCommand(OpDrawPaint, describePaint(&p)), Paint: p}
}

// Execute implements Command.
func (cmd *DrawPaintCommand) Execute(c Canvas) { c.DrawPaint(cmd.Paint) }

func (cmd *DrawPaintCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{keyPaint: encodePaint(&cmd.Paint, cfg)}
}

func decodeDrawPaint(d *decoder) Command {
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawPaint(p)
}

// --------------------------------------------------------------------------
// Shapes
// --------------------------------------------------------------------------

// DrawRectCommand draws a rectangle.
type DrawRectCommand struct {
	command
	Rect  geom.Rect
	Paint paint.Paint
}

// NewDrawRect returns a rectangle draw command.
func NewDrawRect(r geom.Rect, p paint.Paint) *DrawRectCommand {
	return &DrawRectCommand{
		command: newCommand(OpDrawRect, describeRect("", r), describePaint(&p)),
		Rect:    r,
		Paint:   p,
	}
}

// Execute implements Command.
func (cmd *DrawRectCommand) Execute(c Canvas) { c.DrawRect(cmd.Rect, cmd.Paint) }

func (cmd *DrawRectCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyCoords: EncodeRect(cmd.Rect),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
}

func decodeDrawRect(d *decoder) Command {
	r := d.rect(keyCoords)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawRect(r, p)
}

// DrawOvalCommand draws the oval inscribed in a rectangle.
type DrawOvalCommand struct {
	command
	Oval  geom.Rect
	Paint paint.Paint
}

// NewDrawOval returns an oval draw command.
func NewDrawOval(oval geom.Rect, p paint.Paint) *DrawOvalCommand {
	return &DrawOvalCommand{
		command: newCommand(OpDrawOval, describeRect("", oval), describePaint(&p)),
		Oval:    oval,
		Paint:   p,
	}
}

// Execute implements Command.
func (cmd *DrawOvalCommand) Execute(c Canvas) { c.DrawOval(cmd.Oval, cmd.Paint) }

// Render implements Previewer.
func (cmd *DrawOvalCommand) Render(c Canvas) bool {
	return renderRRect(c, geom.RRectOval(cmd.Oval))
}

func (cmd *DrawOvalCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyCoords: EncodeRect(cmd.Oval),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
}

func decodeDrawOval(d *decoder) Command {
	r := d.rect(keyCoords)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawOval(r, p)
}

// DrawRRectCommand draws a rounded rectangle.
type DrawRRectCommand struct {
	command
	RRect geom.RRect
	Paint paint.Paint
}

// NewDrawRRect returns a rounded-rectangle draw command.
func NewDrawRRect(rr geom.RRect, p paint.Paint) *DrawRRectCommand {
	return &DrawRRectCommand{
		command: newCommand(OpDrawRRect, rr.String(), describePaint(&p)),
		RRect:   rr,
		Paint:   p,
	}
}

// Execute implements Command.
func (cmd *DrawRRectCommand) Execute(c Canvas) { c.DrawRRect(cmd.RRect, cmd.Paint) }

// Render implements Previewer.
func (cmd *DrawRRectCommand) Render(c Canvas) bool {
	return renderRRect(c, cmd.RRect)
}

func (cmd *DrawRRectCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyCoords: EncodeRRect(cmd.RRect),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
}

func decodeDrawRRect(d *decoder) Command {
	rr := d.rrect(keyCoords)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawRRect(rr, p)
}

// DrawDRRectCommand draws the area between two rounded rectangles.
type DrawDRRectCommand struct {
	command
	Outer geom.RRect
	Inner geom.RRect
	Paint paint.Paint
}

// NewDrawDRRect returns a double rounded-rectangle draw command.
func NewDrawDRRect(outer, inner geom.RRect, p paint.Paint) *DrawDRRectCommand {
	return &DrawDRRectCommand{
		command: newCommand(OpDrawDRRect, outer.String(), inner.String(), describePaint(&p)),
		Outer:   outer,
		Inner:   inner,
		Paint:   p,
	}
}

// Execute implements Command.
func (cmd *DrawDRRectCommand) Execute(c Canvas) { c.DrawDRRect(cmd.Outer, cmd.Inner, cmd.Paint) }

// Render implements Previewer.
func (cmd *DrawDRRectCommand) Render(c Canvas) bool {
	path := geom.NewPath()
	path.AddRRect(cmd.Outer)
	path.AddRRect(cmd.Inner)
	path.SetFillType(geom.FillEvenOdd)
	return renderPath(c, path)
}

func (cmd *DrawDRRectCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyOuter: EncodeRRect(cmd.Outer),
		keyInner: EncodeRRect(cmd.Inner),
		keyPaint: encodePaint(&cmd.Paint, cfg),
	}
}

func decodeDrawDRRect(d *decoder) Command {
	outer := d.rrect(keyOuter)
	inner := d.rrect(keyInner)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawDRRect(outer, inner, p)
}

// DrawPathCommand draws a path.
type DrawPathCommand struct {
	command
	Path  *geom.Path
	Paint paint.Paint
}

// NewDrawPath copies path into a new draw command.
func NewDrawPath(path *geom.Path, p paint.Paint) *DrawPathCommand {
	return &DrawPathCommand{
		command: newCommand(OpDrawPath, path.String(), describePaint(&p)),
		Path:    path.Clone(),
		Paint:   p,
	}
}

// Execute implements Command.
func (cmd *DrawPathCommand) Execute(c Canvas) { c.DrawPath(cmd.Path, cmd.Paint) }

// Render implements Previewer.
func (cmd *DrawPathCommand) Render(c Canvas) bool {
	return renderPath(c, cmd.Path)
}

func (cmd *DrawPathCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyPath:  EncodePath(cmd.Path),
		keyPaint: encodePaint(&cmd.Paint, cfg),
	}
}

func decodeDrawPath(d *decoder) Command {
	path := d.path(keyPath)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawPath(path, p)
}

// --------------------------------------------------------------------------
// Points
// --------------------------------------------------------------------------

// ParsePointMode maps a name produced by PointMode.String back to the mode.
func ParsePointMode(s string) (PointMode, bool) {
	i, ok := enumIndex(pointModeNames[:], s)
	return PointMode(i), ok
}

// DrawPointsCommand draws points, line segments or a polyline.
type DrawPointsCommand struct {
	command
	Mode   PointMode
	Points []geom.Point
	Paint  paint.Paint
}

// NewDrawPoints copies pts into a new draw command.
func NewDrawPoints(mode PointMode, pts []geom.Point, p paint.Paint) *DrawPointsCommand {
	return &DrawPointsCommand{
		command: newCommand(OpDrawPoints,
			describePoints(pts), describeInt("Count: ", len(pts)), "Mode: "+mode.String(), describePaint(&p)),
		Mode:   mode,
		Points: copyPoints(pts),
		Paint:  p,
	}
}

// Execute implements Command.
func (cmd *DrawPointsCommand) Execute(c Canvas) { c.DrawPoints(cmd.Mode, cmd.Points, cmd.Paint) }

// Render implements Previewer.
func (cmd *DrawPointsCommand) Render(c Canvas) bool {
	if len(cmd.Points) == 0 {
		return false
	}
	path := geom.NewPath()
	path.MoveTo(cmd.Points[0].X, cmd.Points[0].Y)
	for _, p := range cmd.Points[1:] {
		path.LineTo(p.X, p.Y)
	}
	return renderPath(c, path)
}

func (cmd *DrawPointsCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyMode:   cmd.Mode.String(),
		keyPoints: EncodePoints(cmd.Points),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
}

func decodeDrawPoints(d *decoder) Command {
	mode := parseEnum(d, keyMode, ParsePointMode)
	pts := d.points(keyPoints)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawPoints(mode, pts, p)
}
