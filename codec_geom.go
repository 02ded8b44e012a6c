package debugger

import (
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// EncodePoint returns [x, y].
func EncodePoint(p geom.Point) any {
	return []any{p.X, p.Y}
}

// EncodePoints returns a list of encoded points.
func EncodePoints(pts []geom.Point) any {
	out := make([]any, len(pts))
	for i, p := range pts {
		out[i] = EncodePoint(p)
	}
	return out
}

// EncodeRect returns [left, top, right, bottom].
func EncodeRect(r geom.Rect) any {
	return []any{r.Left, r.Top, r.Right, r.Bottom}
}

// EncodeIRect returns [left, top, right, bottom] as integers.
func EncodeIRect(r geom.IRect) any {
	return []any{int(r.Left), int(r.Top), int(r.Right), int(r.Bottom)}
}

// EncodeRRect returns [rect, upperLeft, upperRight, lowerRight, lowerLeft]
// where each corner is an [x, y] radius pair.
func EncodeRRect(rr geom.RRect) any {
	return []any{
		EncodeRect(rr.Rect),
		EncodePoint(rr.Radii[geom.UpperLeft]),
		EncodePoint(rr.Radii[geom.UpperRight]),
		EncodePoint(rr.Radii[geom.LowerRight]),
		EncodePoint(rr.Radii[geom.LowerLeft]),
	}
}

// EncodeMatrix returns the 3x3 matrix as three rows of three numbers.
func EncodeMatrix(m geom.Matrix) any {
	return []any{
		[]any{m[0], m[1], m[2]},
		[]any{m[3], m[4], m[5]},
		[]any{m[6], m[7], m[8]},
	}
}

// EncodeColor returns [a, r, g, b] with straight components.
func EncodeColor(c paint.Color) any {
	return []any{int(c.A()), int(c.R()), int(c.G()), int(c.B())}
}

// EncodePath returns {fillType, verbs}. Each verb is an object keyed by
// verb name except close, which is the bare string "close".
func EncodePath(p *geom.Path) any {
	verbs := make([]any, 0, p.CountVerbs())
	for s := range p.Segments() {
		switch s.Verb {
		case geom.VerbMove, geom.VerbLine:
			verbs = append(verbs, map[string]any{s.Verb.String(): EncodePoint(s.Pts[0])})
		case geom.VerbQuad:
			verbs = append(verbs, map[string]any{s.Verb.String(): []any{EncodePoint(s.Pts[0]), EncodePoint(s.Pts[1])}})
		case geom.VerbCubic:
			verbs = append(verbs, map[string]any{s.Verb.String(): []any{
				EncodePoint(s.Pts[0]), EncodePoint(s.Pts[1]), EncodePoint(s.Pts[2]),
			}})
		case geom.VerbConic:
			verbs = append(verbs, map[string]any{s.Verb.String(): []any{
				EncodePoint(s.Pts[0]), EncodePoint(s.Pts[1]), s.Weight,
			}})
		case geom.VerbClose:
			verbs = append(verbs, geom.VerbClose.String())
		}
	}
	return map[string]any{
		keyFillType: p.FillType().String(),
		keyVerbs:    verbs,
	}
}

// EncodeRegion returns a placeholder: regions have no wire form.
func EncodeRegion(geom.Region) any {
	return regionPlaceholder
}

func (d *decoder) asPoint(v any, key string) geom.Point {
	l := d.asList(v, key, 2)
	if l == nil {
		return geom.Point{}
	}
	return geom.Point{X: d.asNumber(l[0], key), Y: d.asNumber(l[1], key)}
}

func (d *decoder) asRect(v any, key string) geom.Rect {
	l := d.asList(v, key, 4)
	if l == nil {
		return geom.Rect{}
	}
	return geom.Rect{
		Left:   d.asNumber(l[0], key),
		Top:    d.asNumber(l[1], key),
		Right:  d.asNumber(l[2], key),
		Bottom: d.asNumber(l[3], key),
	}
}

func (d *decoder) asRRect(v any, key string) geom.RRect {
	l := d.asList(v, key, 5)
	if l == nil {
		return geom.RRect{}
	}
	rr := geom.RRect{Rect: d.asRect(l[0], key)}
	for i := range rr.Radii {
		rr.Radii[i] = d.asPoint(l[i+1], key)
	}
	return rr
}

func (d *decoder) asMatrix(v any, key string) geom.Matrix {
	rows := d.asList(v, key, 3)
	if rows == nil {
		return geom.Identity()
	}
	var m geom.Matrix
	for r, row := range rows {
		cols := d.asList(row, key, 3)
		if cols == nil {
			return geom.Identity()
		}
		for c, x := range cols {
			m[r*3+c] = d.asNumber(x, key)
		}
	}
	return m
}

func (d *decoder) asColor(v any, key string) paint.Color {
	l := d.asList(v, key, 4)
	if l == nil {
		return paint.Black
	}
	var c [4]uint8
	for i, e := range l {
		n := d.asNumber(e, key)
		if n < 0 || n > 255 {
			d.failf("%q component %v out of range", key, n)
			return paint.Black
		}
		c[i] = uint8(n)
	}
	return paint.ARGB(c[0], c[1], c[2], c[3])
}

func (d *decoder) asPoints(v any, key string) []geom.Point {
	l := d.asList(v, key, -1)
	pts := make([]geom.Point, len(l))
	for i, e := range l {
		pts[i] = d.asPoint(e, key)
	}
	return pts
}

func (d *decoder) asNumbers(v any, key string) []float64 {
	l := d.asList(v, key, -1)
	out := make([]float64, len(l))
	for i, e := range l {
		out[i] = d.asNumber(e, key)
	}
	return out
}

// asPath rebuilds a path verb by verb. An unknown fill type is an
// invariant violation; an unknown verb is malformed input.
func (d *decoder) asPath(v any, key string) *geom.Path {
	obj := d.asObject(v, key)
	if obj == nil {
		return geom.NewPath()
	}
	sd := d.sub(obj)
	defer d.join(sd)

	path := geom.NewPath()
	ft := sd.str(keyFillType)
	if sd.err != nil {
		return path
	}
	fill, ok := geom.ParseFillType(ft)
	if !ok {
		sd.invariantf("unknown fill type %q", ft)
		return path
	}
	path.SetFillType(fill)

	for _, raw := range sd.list(keyVerbs) {
		if sd.err != nil {
			break
		}
		if s, ok := raw.(string); ok {
			if s != geom.VerbClose.String() {
				sd.failf("unknown verb %q", s)
				break
			}
			path.Close()
			continue
		}
		verb := sd.asObject(raw, keyVerbs)
		if len(verb) != 1 {
			sd.failf("verb object has %d keys, want 1", len(verb))
			break
		}
		for name, args := range verb {
			sd.applyVerb(path, name, args)
		}
	}
	return path
}

func (d *decoder) applyVerb(path *geom.Path, name string, args any) {
	vb, ok := geom.ParseVerb(name)
	if !ok || vb == geom.VerbClose {
		d.failf("unknown verb %q", name)
		return
	}
	switch vb {
	case geom.VerbMove:
		p := d.asPoint(args, name)
		path.MoveTo(p.X, p.Y)
	case geom.VerbLine:
		p := d.asPoint(args, name)
		path.LineTo(p.X, p.Y)
	case geom.VerbQuad:
		l := d.asList(args, name, 2)
		if l == nil {
			return
		}
		p1, p2 := d.asPoint(l[0], name), d.asPoint(l[1], name)
		path.QuadTo(p1.X, p1.Y, p2.X, p2.Y)
	case geom.VerbConic:
		l := d.asList(args, name, 3)
		if l == nil {
			return
		}
		p1, p2 := d.asPoint(l[0], name), d.asPoint(l[1], name)
		path.ConicTo(p1.X, p1.Y, p2.X, p2.Y, d.asNumber(l[2], name))
	case geom.VerbCubic:
		l := d.asList(args, name, 3)
		if l == nil {
			return
		}
		p1, p2, p3 := d.asPoint(l[0], name), d.asPoint(l[1], name), d.asPoint(l[2], name)
		path.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}
}

// Required-field helpers.

func (d *decoder) point(key string) geom.Point {
	v, ok := d.field(key)
	if !ok {
		return geom.Point{}
	}
	return d.asPoint(v, key)
}

func (d *decoder) rect(key string) geom.Rect {
	v, ok := d.field(key)
	if !ok {
		return geom.Rect{}
	}
	return d.asRect(v, key)
}

// optRect returns nil when key is absent.
func (d *decoder) optRect(key string) *geom.Rect {
	if !d.has(key) {
		return nil
	}
	r := d.rect(key)
	return &r
}

func (d *decoder) irect(key string) geom.IRect {
	r := d.rect(key)
	return geom.IRect{Left: int32(r.Left), Top: int32(r.Top), Right: int32(r.Right), Bottom: int32(r.Bottom)}
}

func (d *decoder) rrect(key string) geom.RRect {
	v, ok := d.field(key)
	if !ok {
		return geom.RRect{}
	}
	return d.asRRect(v, key)
}

func (d *decoder) matrix(key string) geom.Matrix {
	v, ok := d.field(key)
	if !ok {
		return geom.Identity()
	}
	return d.asMatrix(v, key)
}

// optMatrix returns nil when key is absent.
func (d *decoder) optMatrix(key string) *geom.Matrix {
	if !d.has(key) {
		return nil
	}
	m := d.matrix(key)
	return &m
}

func (d *decoder) color(key string) paint.Color {
	v, ok := d.field(key)
	if !ok {
		return paint.Black
	}
	return d.asColor(v, key)
}

func (d *decoder) path(key string) *geom.Path {
	v, ok := d.field(key)
	if !ok {
		return geom.NewPath()
	}
	return d.asPath(v, key)
}

func (d *decoder) points(key string) []geom.Point {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	return d.asPoints(v, key)
}

func (d *decoder) numbers(key string) []float64 {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	return d.asNumbers(v, key)
}

// regionOp parses a clip op name.
func (d *decoder) regionOp(key string) geom.RegionOp {
	s := d.str(key)
	if d.err != nil {
		return geom.OpIntersect
	}
	op, ok := geom.ParseRegionOp(s)
	if !ok {
		d.invariantf("unknown clip op %q", s)
	}
	return op
}
