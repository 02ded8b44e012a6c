package debugger

import (
	"fmt"

	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// VertexMode selects how DrawVertices assembles triangles.
type VertexMode uint8

const (
	VertexTriangles VertexMode = iota
	VertexTriangleStrip
	VertexTriangleFan
)

var vertexModeNames = [...]string{
	VertexTriangles:     "triangles",
	VertexTriangleStrip: "triangleStrip",
	VertexTriangleFan:   "triangleFan",
}

func (m VertexMode) String() string { return enumName(vertexModeNames[:], int(m)) }

// ParseVertexMode maps a name produced by VertexMode.String back to the mode.
func ParseVertexMode(s string) (VertexMode, bool) {
	i, ok := enumIndex(vertexModeNames[:], s)
	return VertexMode(i), ok
}

// Vertices is a triangle mesh. TexCoords and Colors are either empty or
// parallel to Positions. Indices, when present, index into Positions.
type Vertices struct {
	Mode      VertexMode
	Positions []geom.Point
	TexCoords []geom.Point
	Colors    []paint.Color
	Indices   []uint16
}

// Clone returns a deep copy of v.
func (v *Vertices) Clone() *Vertices {
	return &Vertices{
		Mode:      v.Mode,
		Positions: copyPoints(v.Positions),
		TexCoords: copyPoints(v.TexCoords),
		Colors:    append([]paint.Color(nil), v.Colors...),
		Indices:   append([]uint16(nil), v.Indices...),
	}
}

// Bounds returns the bounding box of the positions.
func (v *Vertices) Bounds() geom.Rect { return geom.BoundsOf(v.Positions) }

// Triangles calls fn for every assembled triangle.
func (v *Vertices) Triangles(fn func(a, b, c geom.Point)) {
	n := len(v.Positions)
	at := func(i int) (geom.Point, bool) {
		if len(v.Indices) > 0 {
			if i >= len(v.Indices) || int(v.Indices[i]) >= n {
				return geom.Point{}, false
			}
			return v.Positions[v.Indices[i]], true
		}
		if i >= n {
			return geom.Point{}, false
		}
		return v.Positions[i], true
	}
	count := n
	if len(v.Indices) > 0 {
		count = len(v.Indices)
	}
	tri := func(i, j, k int) {
		a, ok1 := at(i)
		b, ok2 := at(j)
		c, ok3 := at(k)
		if ok1 && ok2 && ok3 {
			fn(a, b, c)
		}
	}
	switch v.Mode {
	case VertexTriangles:
		for i := 0; i+2 < count; i += 3 {
			tri(i, i+1, i+2)
		}
	case VertexTriangleStrip:
		for i := 0; i+2 < count; i++ {
			tri(i, i+1, i+2)
		}
	case VertexTriangleFan:
		for i := 1; i+1 < count; i++ {
			tri(0, i, i+1)
		}
	}
}

// DrawVerticesCommand draws a triangle mesh.
type DrawVerticesCommand struct {
	command
	Vertices *Vertices
	Xfermode paint.Xfermode
	Paint    paint.Paint
}

// NewDrawVertices copies v into a new draw command.
func NewDrawVertices(v *Vertices, xfer paint.Xfermode, p paint.Paint) *DrawVerticesCommand {
	info := []string{
		"Mode: " + v.Mode.String(),
		describeInt("Vertices: ", len(v.Positions)),
		describeInt("Indices: ", len(v.Indices)),
	}
	if xfer != nil {
		info = append(info, "Xfermode: "+xfer.Describe())
	}
	info = append(info, describePaint(&p))
	return &DrawVerticesCommand{
		command:  newCommand(OpDrawVertices, info...),
		Vertices: v.Clone(),
		Xfermode: xfer,
		Paint:    p,
	}
}

// Execute implements Command.
func (cmd *DrawVerticesCommand) Execute(c Canvas) {
	c.DrawVertices(cmd.Vertices, cmd.Xfermode, cmd.Paint)
}

func (cmd *DrawVerticesCommand) encode(cfg *encodeConfig) map[string]any {
	v := cmd.Vertices
	out := map[string]any{
		keyMode:   v.Mode.String(),
		keyPoints: EncodePoints(v.Positions),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
	if len(v.TexCoords) > 0 {
		out[keyTexCoords] = EncodePoints(v.TexCoords)
	}
	if len(v.Colors) > 0 {
		out[keyColors] = encodeColors(v.Colors)
	}
	if len(v.Indices) > 0 {
		indices := make([]any, len(v.Indices))
		for i, x := range v.Indices {
			indices[i] = int(x)
		}
		out[keyIndices] = indices
	}
	if cmd.Xfermode != nil {
		out[keyXfermode] = encodeFlattenable(cmd.Xfermode, cfg)
	}
	return out
}

func decodeDrawVertices(d *decoder) Command {
	v := &Vertices{
		Mode:      parseEnum(d, keyMode, ParseVertexMode),
		Positions: d.points(keyPoints),
	}
	if d.has(keyTexCoords) {
		v.TexCoords = d.points(keyTexCoords)
	}
	if d.has(keyColors) {
		v.Colors = d.colors(keyColors)
	}
	if d.has(keyIndices) {
		for _, x := range d.numbers(keyIndices) {
			if x < 0 || x > 0xFFFF || x != float64(int(x)) {
				d.failf("index %v out of range", x)
				break
			}
			v.Indices = append(v.Indices, uint16(x))
		}
	}
	xfer := d.xfermode(keyXfermode)
	p := d.paint(keyPaint)
	if d.err == nil {
		if len(v.TexCoords) > 0 && len(v.TexCoords) != len(v.Positions) {
			d.failf("%d tex coords for %d points", len(v.TexCoords), len(v.Positions))
		}
		if len(v.Colors) > 0 && len(v.Colors) != len(v.Positions) {
			d.failf("%d colors for %d points", len(v.Colors), len(v.Positions))
		}
	}
	if d.err != nil {
		return nil
	}
	return NewDrawVertices(v, xfer, p)
}

// Patch is a Coons patch: four cubic edges given by 12 points clockwise
// from the top-left corner, with optional corner colors and texture
// coordinates.
type Patch struct {
	Cubics    [12]geom.Point
	Colors    *[4]paint.Color
	TexCoords *[4]geom.Point
}

// Clone returns a deep copy of p.
func (p *Patch) Clone() *Patch {
	c := &Patch{Cubics: p.Cubics}
	if p.Colors != nil {
		colors := *p.Colors
		c.Colors = &colors
	}
	if p.TexCoords != nil {
		tex := *p.TexCoords
		c.TexCoords = &tex
	}
	return c
}

// Corners returns the four corner points.
func (p *Patch) Corners() [4]geom.Point {
	return [4]geom.Point{p.Cubics[0], p.Cubics[3], p.Cubics[6], p.Cubics[9]}
}

// Path returns the outline of the patch.
func (p *Patch) Path() *geom.Path {
	path := geom.NewPath()
	path.MoveTo(p.Cubics[0].X, p.Cubics[0].Y)
	for i := 0; i < 12; i += 3 {
		c1, c2, end := p.Cubics[i+1], p.Cubics[i+2], p.Cubics[(i+3)%12]
		path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	path.Close()
	return path
}

// DrawPatchCommand draws a Coons patch.
type DrawPatchCommand struct {
	command
	Patch    *Patch
	Xfermode paint.Xfermode
	Paint    paint.Paint
}

// NewDrawPatch copies patch into a new draw command.
func NewDrawPatch(patch *Patch, xfer paint.Xfermode, p paint.Paint) *DrawPatchCommand {
	info := []string{describePoints(patch.Cubics[:])}
	if patch.Colors != nil {
		info = append(info, fmt.Sprintf("Colors: %v", patch.Colors[:]))
	}
	if patch.TexCoords != nil {
		info = append(info, "TexCoords: "+describePoints(patch.TexCoords[:]))
	}
	if xfer != nil {
		info = append(info, "Xfermode: "+xfer.Describe())
	}
	info = append(info, describePaint(&p))
	return &DrawPatchCommand{
		command:  newCommand(OpDrawPatch, info...),
		Patch:    patch.Clone(),
		Xfermode: xfer,
		Paint:    p,
	}
}

// Execute implements Command.
func (cmd *DrawPatchCommand) Execute(c Canvas) { c.DrawPatch(cmd.Patch, cmd.Xfermode, cmd.Paint) }

func (cmd *DrawPatchCommand) encode(cfg *encodeConfig) map[string]any {
	out := map[string]any{
		keyCubics: EncodePoints(cmd.Patch.Cubics[:]),
		keyPaint:  encodePaint(&cmd.Paint, cfg),
	}
	if cmd.Patch.Colors != nil {
		out[keyColors] = encodeColors(cmd.Patch.Colors[:])
	}
	if cmd.Patch.TexCoords != nil {
		out[keyTexCoords] = EncodePoints(cmd.Patch.TexCoords[:])
	}
	if cmd.Xfermode != nil {
		out[keyXfermode] = encodeFlattenable(cmd.Xfermode, cfg)
	}
	return out
}

func decodeDrawPatch(d *decoder) Command {
	patch := &Patch{}
	if cubics := d.points(keyCubics); d.err == nil {
		if len(cubics) != len(patch.Cubics) {
			d.failf("%q has %d points, want 12", keyCubics, len(cubics))
		}
		copy(patch.Cubics[:], cubics)
	}
	if d.has(keyColors) {
		colors := d.colors(keyColors)
		if d.err == nil && len(colors) != 4 {
			d.failf("%q has %d colors, want 4", keyColors, len(colors))
		} else if d.err == nil {
			patch.Colors = (*[4]paint.Color)(colors)
		}
	}
	if d.has(keyTexCoords) {
		tex := d.points(keyTexCoords)
		if d.err == nil && len(tex) != 4 {
			d.failf("%q has %d points, want 4", keyTexCoords, len(tex))
		} else if d.err == nil {
			patch.TexCoords = (*[4]geom.Point)(tex)
		}
	}
	xfer := d.xfermode(keyXfermode)
	p := d.paint(keyPaint)
	if d.err != nil {
		return nil
	}
	return NewDrawPatch(patch, xfer, p)
}

func encodeColors(colors []paint.Color) any {
	out := make([]any, len(colors))
	for i, c := range colors {
		out[i] = EncodeColor(c)
	}
	return out
}

func (d *decoder) colors(key string) []paint.Color {
	l := d.list(key)
	out := make([]paint.Color, len(l))
	for i, v := range l {
		out[i] = d.asColor(v, key)
	}
	return out
}

// xfermode reads an optional transfer mode effect.
func (d *decoder) xfermode(key string) paint.Xfermode {
	f := d.effect(key)
	if f == nil {
		return nil
	}
	return asEffect[paint.Xfermode](f, key)
}
