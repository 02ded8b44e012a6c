package debugger

import (
	"fmt"

	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// Positioning says how many coordinates each glyph of a run carries.
type Positioning uint8

const (
	// PositionDefault glyphs advance from the run offset by their widths.
	PositionDefault Positioning = iota
	// PositionHorizontal glyphs have an x coordinate each; y is the offset's.
	PositionHorizontal
	// PositionFull glyphs have an x and y coordinate each.
	PositionFull
)

var positioningNames = [...]string{
	PositionDefault:    "default",
	PositionHorizontal: "horizontal",
	PositionFull:       "full",
}

func (p Positioning) String() string { return enumName(positioningNames[:], int(p)) }

// Scalars returns the number of coordinates per glyph.
func (p Positioning) Scalars() int { return int(p) }

// TextRun is a run of glyphs sharing one font. Positions holds
// Positioning.Scalars() values per glyph, relative to Offset.
type TextRun struct {
	Glyphs      []uint16
	Positioning Positioning
	Positions   []float64
	Offset      geom.Point
	Font        paint.Paint
}

// Point returns the position of glyph i relative to the blob origin.
// Default-positioned glyphs are laid out using the typeface advances.
func (r *TextRun) Point(i int) geom.Point {
	switch r.Positioning {
	case PositionHorizontal:
		return geom.Pt(r.Offset.X+r.Positions[i], r.Offset.Y)
	case PositionFull:
		return geom.Pt(r.Offset.X+r.Positions[2*i], r.Offset.Y+r.Positions[2*i+1])
	}
	x := r.Offset.X
	for _, g := range r.Glyphs[:i] {
		x += r.advance(g)
	}
	return geom.Pt(x, r.Offset.Y)
}

func (r *TextRun) advance(g uint16) float64 {
	if r.Font.Typeface != nil {
		return r.Font.Typeface.Advance(g, r.Font.TextSize) * r.Font.TextScaleX
	}
	return r.Font.TextSize / 2 * r.Font.TextScaleX
}

func (r *TextRun) bounds() geom.Rect {
	if len(r.Glyphs) == 0 {
		return geom.Rect{}
	}
	size := r.Font.TextSize
	var b geom.Rect
	for i, g := range r.Glyphs {
		p := r.Point(i)
		gb := geom.LTRB(p.X, p.Y-size, p.X+r.advance(g), p.Y+size/4)
		if i == 0 {
			b = gb
		} else {
			b = b.Union(gb)
		}
	}
	return b
}

func (r *TextRun) clone() TextRun {
	c := *r
	c.Glyphs = append([]uint16(nil), r.Glyphs...)
	c.Positions = append([]float64(nil), r.Positions...)
	return c
}

// TextBlob is an immutable sequence of glyph runs.
type TextBlob struct {
	runs   []TextRun
	bounds geom.Rect
}

// NewTextBlob copies runs into a blob. Each run must carry
// Positioning.Scalars() positions per glyph.
func NewTextBlob(runs []TextRun) (*TextBlob, error) {
	blob := &TextBlob{runs: make([]TextRun, len(runs))}
	for i := range runs {
		r := &runs[i]
		if want := len(r.Glyphs) * r.Positioning.Scalars(); len(r.Positions) != want {
			return nil, fmt.Errorf("%w: run %d has %d positions, want %d", ErrMalformed, i, len(r.Positions), want)
		}
		blob.runs[i] = r.clone()
		rb := r.bounds()
		if i == 0 {
			blob.bounds = rb
		} else {
			blob.bounds = blob.bounds.Union(rb)
		}
	}
	return blob, nil
}

// Runs returns the runs. Callers must not modify them.
func (b *TextBlob) Runs() []TextRun { return b.runs }

// Bounds returns a conservative bounding box relative to the blob origin.
func (b *TextBlob) Bounds() geom.Rect { return b.bounds }

// GlyphCount returns the total number of glyphs.
func (b *TextBlob) GlyphCount() int {
	n := 0
	for i := range b.runs {
		n += len(b.runs[i].Glyphs)
	}
	return n
}

func encodeTextBlob(blob *TextBlob, cfg *encodeConfig) any {
	runs := make([]any, len(blob.runs))
	for i := range blob.runs {
		r := &blob.runs[i]
		glyphs := make([]any, len(r.Glyphs))
		for j, g := range r.Glyphs {
			glyphs[j] = int(g)
		}
		run := map[string]any{
			keyGlyphs: glyphs,
			keyFont:   encodePaint(&r.Font, cfg),
			keyCoords: EncodePoint(r.Offset),
		}
		switch r.Positioning {
		case PositionHorizontal:
			pos := make([]any, len(r.Positions))
			for j, x := range r.Positions {
				pos[j] = x
			}
			run[keyPositions] = pos
		case PositionFull:
			pos := make([]any, len(r.Glyphs))
			for j := range r.Glyphs {
				pos[j] = []any{r.Positions[2*j], r.Positions[2*j+1]}
			}
			run[keyPositions] = pos
		}
		runs[i] = run
	}
	return runs
}

// textBlob reads the runs of a blob. The positioning of each run follows
// from the shape of its positions: absent, numbers, or points.
func (d *decoder) textBlob(key string) *TextBlob {
	raw := d.list(key)
	runs := make([]TextRun, 0, len(raw))
	for _, v := range raw {
		obj := d.asObject(v, key)
		if d.err != nil {
			return nil
		}
		sd := d.sub(obj)
		var run TextRun
		for _, g := range sd.numbers(keyGlyphs) {
			if g < 0 || g > 0xFFFF {
				sd.failf("glyph id %v out of range", g)
				break
			}
			run.Glyphs = append(run.Glyphs, uint16(g))
		}
		run.Font = sd.paint(keyFont)
		run.Offset = sd.point(keyCoords)
		if sd.has(keyPositions) {
			pos := sd.list(keyPositions)
			if len(pos) > 0 {
				if _, isPoint := pos[0].([]any); isPoint {
					run.Positioning = PositionFull
					for _, p := range sd.asPoints(pos, keyPositions) {
						run.Positions = append(run.Positions, p.X, p.Y)
					}
				} else {
					run.Positioning = PositionHorizontal
					run.Positions = sd.asNumbers(pos, keyPositions)
				}
			} else if len(run.Glyphs) > 0 {
				sd.failf("%q is empty", keyPositions)
			}
		}
		d.join(sd)
		if d.err != nil {
			return nil
		}
		runs = append(runs, run)
	}
	if d.err != nil {
		return nil
	}
	blob, err := NewTextBlob(runs)
	if err != nil {
		d.fail(err)
		return nil
	}
	return blob
}
