package debugger

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// Text payloads are raw bytes in the paint's text encoding. On the wire,
// character encodings are written as a UTF-8 "text" string and glyph ids
// as a "glyphs" integer list.

// --------------------------------------------------------------------------
// DrawText
// --------------------------------------------------------------------------

// DrawTextCommand draws text with its baseline origin at a point.
type DrawTextCommand struct {
	command
	Text  []byte
	X, Y  float64
	Paint paint.Paint
}

// NewDrawText copies text into a new draw command.
func NewDrawText(text []byte, x, y float64, p paint.Paint) *DrawTextCommand {
	return &DrawTextCommand{
		command: newCommand(OpDrawText,
			describeText(text, &p), describeScalar("X: ", x), describeScalar("Y: ", y), describePaint(&p)),
		Text:  copyBytes(text),
		X:     x,
		Y:     y,
		Paint: p,
	}
}

// Execute implements Command.
func (cmd *DrawTextCommand) Execute(c Canvas) { c.DrawText(cmd.Text, cmd.X, cmd.Y, cmd.Paint) }

func (cmd *DrawTextCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{
		keyCoords: EncodePoint(geom.Pt(cmd.X, cmd.Y)),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
	encodeText(out, cmd.Text, &cmd.Paint)
	return out
}

func decodeDrawText(d *decoder) Command {
	p := d.paint(keyPaint)
	text := d.text(&p)
	at := d.point(keyCoords)
	if d.err != nil {
		return nil
	}
	return NewDrawText(text, at.X, at.Y, p)
}

// --------------------------------------------------------------------------
// DrawPosText / DrawPosTextH
// --------------------------------------------------------------------------

// DrawPosTextCommand draws text with one position per glyph.
type DrawPosTextCommand struct {
	command
	Text      []byte
	Positions []geom.Point
	Paint     paint.Paint
}

// NewDrawPosText copies text and pos into a new draw command.
func NewDrawPosText(text []byte, pos []geom.Point, p paint.Paint) *DrawPosTextCommand {
	return &DrawPosTextCommand{
		command:   newCommand(OpDrawPosText, describeText(text, &p), describePoints(pos), describePaint(&p)),
		Text:      copyBytes(text),
		Positions: copyPoints(pos),
		Paint:     p,
	}
}

// Execute implements Command.
func (cmd *DrawPosTextCommand) Execute(c Canvas) { c.DrawPosText(cmd.Text, cmd.Positions, cmd.Paint) }

func (cmd *DrawPosTextCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{
		keyCoords: EncodePoints(cmd.Positions),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
	encodeText(out, cmd.Text, &cmd.Paint)
	return out
}

func decodeDrawPosText(d *decoder) Command {
	p := d.paint(keyPaint)
	text := d.text(&p)
	pos := d.points(keyCoords)
	if d.err == nil && len(pos) != p.CountText(text) {
		d.failf("%d positions for %d glyphs", len(pos), p.CountText(text))
	}
	if d.err != nil {
		return nil
	}
	return NewDrawPosText(text, pos, p)
}

// DrawPosTextHCommand draws text with one x position per glyph on a
// shared baseline.
type DrawPosTextHCommand struct {
	command
	Text  []byte
	XPos  []float64
	Y     float64
	Paint paint.Paint
}

// NewDrawPosTextH copies text and xpos into a new draw command.
func NewDrawPosTextH(text []byte, xpos []float64, y float64, p paint.Paint) *DrawPosTextHCommand {
	return &DrawPosTextHCommand{
		command: newCommand(OpDrawPosTextH,
			describeText(text, &p), fmt.Sprintf("XPos: %v", xpos), describeScalar("Y: ", y), describePaint(&p)),
		Text:  copyBytes(text),
		XPos:  append([]float64(nil), xpos...),
		Y:     y,
		Paint: p,
	}
}

// Execute implements Command.
func (cmd *DrawPosTextHCommand) Execute(c Canvas) {
	c.DrawPosTextH(cmd.Text, cmd.XPos, cmd.Y, cmd.Paint)
}

func (cmd *DrawPosTextHCommand) encode(cfg *encodeConfig) map[string]any {
	xpos := make([]any, len(cmd.XPos))
	for i, x := range cmd.XPos {
		xpos[i] = x
	}
	out := map[string]any{
		keyPositions: xpos,
		keyY:         cmd.Y,
		keyPaint:     encodePaint(&cmd.Paint, cfg),
	}
	encodeText(out, cmd.Text, &cmd.Paint)
	return out
}

func decodeDrawPosTextH(d *decoder) Command {
	p := d.paint(keyPaint)
	text := d.text(&p)
	xpos := d.numbers(keyPositions)
	y := d.number(keyY)
	if d.err == nil && len(xpos) != p.CountText(text) {
		d.failf("%d positions for %d glyphs", len(xpos), p.CountText(text))
	}
	if d.err != nil {
		return nil
	}
	return NewDrawPosTextH(text, xpos, y, p)
}

// --------------------------------------------------------------------------
// DrawTextOnPath
// --------------------------------------------------------------------------

// DrawTextOnPathCommand draws text along a path, optionally transformed
// by a matrix first.
type DrawTextOnPathCommand struct {
	command
	Text   []byte
	Path   *geom.Path
	Matrix *geom.Matrix
	Paint  paint.Paint
}

// NewDrawTextOnPath copies its arguments into a new draw command.
func NewDrawTextOnPath(text []byte, path *geom.Path, m *geom.Matrix, p paint.Paint) *DrawTextOnPathCommand {
	info := []string{describeText(text, &p), path.String()}
	if m != nil {
		info = append(info, describeMatrix(*m))
	}
	info = append(info, describePaint(&p))
	return &DrawTextOnPathCommand{
		command: newCommand(OpDrawTextOnPath, info...),
		Text:    copyBytes(text),
		Path:    path.Clone(),
		Matrix:  copyMatrix(m),
		Paint:   p,
	}
}

// Execute implements Command.
func (cmd *DrawTextOnPathCommand) Execute(c Canvas) {
	c.DrawTextOnPath(cmd.Text, cmd.Path, cmd.Matrix, cmd.Paint)
}

// Render implements Previewer.
func (cmd *DrawTextOnPathCommand) Render(c Canvas) bool {
	return renderPath(c, cmd.Path)
}

func (cmd *DrawTextOnPathCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{
		keyPath:  EncodePath(cmd.Path),
		keyPaint: encodePaint(&cmd.Paint, cfg),
	}
	if cmd.Matrix != nil {
		out[keyMatrix] = EncodeMatrix(*cmd.Matrix)
	}
	encodeText(out, cmd.Text, &cmd.Paint)
	return out
}

func decodeDrawTextOnPath(d *decoder) Command {
	p := d.paint(keyPaint)
	text := d.text(&p)
	path := d.path(keyPath)
	m := d.optMatrix(keyMatrix)
	if d.err != nil {
		return nil
	}
	return NewDrawTextOnPath(text, path, m, p)
}

// --------------------------------------------------------------------------
// DrawTextBlob
// --------------------------------------------------------------------------

// DrawTextBlobCommand draws a text blob at an origin.
type DrawTextBlobCommand struct {
	command
	Blob  *TextBlob
	X, Y  float64
	Paint paint.Paint
}

// NewDrawTextBlob returns a blob draw command. The blob is shared.
func NewDrawTextBlob(blob *TextBlob, x, y float64, p paint.Paint) *DrawTextBlobCommand {
	info := []string{
		describeScalar("X: ", x),
		describeScalar("Y: ", y),
		describeRect("Bounds: ", blob.Bounds()),
		describeInt("Runs: ", len(blob.Runs())),
	}
	for i := range blob.Runs() {
		r := &blob.Runs()[i]
		info = append(info,
			describeInt("GlyphCount: ", len(r.Glyphs)),
			"Positioning: "+r.Positioning.String(),
			"Offset: "+r.Offset.String(),
			describePaint(&r.Font))
	}
	info = append(info, describePaint(&p))
	return &DrawTextBlobCommand{
		command: newCommand(OpDrawTextBlob, info...),
		Blob:    blob,
		X:       x,
		Y:       y,
		Paint:   p,
	}
}

// Execute implements Command.
func (cmd *DrawTextBlobCommand) Execute(c Canvas) { c.DrawTextBlob(cmd.Blob, cmd.X, cmd.Y, cmd.Paint) }

func (cmd *DrawTextBlobCommand) encode(cfg *encodeConfig) map[string]any {
	return map[string]any{
		keyRuns:  encodeTextBlob(cmd.Blob, cfg),
		keyX:     cmd.X,
		keyY:     cmd.Y,
		keyPaint: encodePaint(&cmd.Paint, cfg),
	}
}

func decodeDrawTextBlob(d *decoder) Command {
	blob := d.textBlob(keyRuns)
	x := d.number(keyX)
	y := d.number(keyY)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawTextBlob(blob, x, y, p)
}

// --------------------------------------------------------------------------
// Text payload codec
// --------------------------------------------------------------------------

func encodeText(out map[string]any, text []byte, p *paint.Paint) {
	if p.TextEncoding == paint.EncodingGlyphID {
		ids := paint.BytesToGlyphs(text)
		glyphs := make([]any, len(ids))
		for i, g := range ids {
			glyphs[i] = int(g)
		}
		out[keyGlyphs] = glyphs
		return
	}
	s, err := p.DecodeText(text)
	if err != nil {
		Logger().Warn("debugger: text payload not valid for its encoding", "encoding", p.TextEncoding, "err", err)
		s = strings.ToValidUTF8(string(text), "\uFFFD")
	}
	out[keyText] = s
}

// text reads a text payload and converts it to p's encoding. It must run
// after the paint is decoded.
func (d *decoder) text(p *paint.Paint) []byte {
	if d.err != nil {
		return nil
	}
	if p.TextEncoding == paint.EncodingGlyphID {
		var ids []uint16
		for _, g := range d.numbers(keyGlyphs) {
			if g < 0 || g > 0xFFFF {
				d.failf("glyph id %v out of range", g)
				return nil
			}
			ids = append(ids, uint16(g))
		}
		return paint.GlyphsToBytes(ids)
	}
	s := d.str(keyText)
	if d.err != nil {
		return nil
	}
	b, err := p.EncodeText(s)
	if err != nil {
		d.failf("%q: %v", keyText, err)
		return nil
	}
	return b
}
