package debugger

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// Helpers building the info lines returned by Command.Info.

const noParameters = "No Parameters"

func describeRect(label string, r geom.Rect) string {
	if label == "" {
		return r.String()
	}
	return fmt.Sprintf("%s(L: %g, T: %g, R: %g, B: %g)", label, r.Left, r.Top, r.Right, r.Bottom)
}

func describeScalar(label string, v float64) string {
	return fmt.Sprintf("%s%g", label, v)
}

func describeInt(label string, v int) string {
	return fmt.Sprintf("%s%d", label, v)
}

func describeBool(label string, v bool) string {
	return fmt.Sprintf("%s%t", label, v)
}

func describeOp(op geom.RegionOp) string {
	return "Op: " + op.String()
}

func describeMatrix(m geom.Matrix) string {
	return "Matrix: " + m.String()
}

func describePoints(pts []geom.Point) string {
	var sb strings.Builder
	sb.WriteString("Points:")
	for _, p := range pts {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	return sb.String()
}

// describeText renders a text payload in the paint's encoding. Glyph-id
// payloads are listed as ids.
func describeText(text []byte, p *paint.Paint) string {
	if p.TextEncoding == paint.EncodingGlyphID {
		return fmt.Sprintf("Glyphs: %v", paint.BytesToGlyphs(text))
	}
	s, err := p.DecodeText(text)
	if err != nil {
		return fmt.Sprintf("Text: <%d bytes, %v>", len(text), err)
	}
	return fmt.Sprintf("Text: %q", s)
}

// describePaint lists every attribute that differs from its default.
func describePaint(p *paint.Paint) string {
	var parts []string
	add := func(format string, args ...any) {
		parts = append(parts, fmt.Sprintf(format, args...))
	}
	if p.Color != paint.DefaultColor {
		add("Color: %v", p.Color)
	}
	if p.Style != paint.StyleFill {
		add("Style: %v", p.Style)
	}
	if p.StrokeWidth != 0 {
		add("StrokeWidth: %g", p.StrokeWidth)
	}
	if p.StrokeMiter != paint.DefaultMiterLimit {
		add("StrokeMiter: %g", p.StrokeMiter)
	}
	if p.Cap != paint.DefaultCap {
		add("Cap: %v", p.Cap)
	}
	if p.Join != paint.DefaultJoin {
		add("Join: %v", p.Join)
	}
	if p.AntiAlias {
		add("AntiAlias")
	}
	if p.TextAlign != paint.AlignLeft {
		add("TextAlign: %v", p.TextAlign)
	}
	if p.TextSize != paint.DefaultTextSize {
		add("TextSize: %g", p.TextSize)
	}
	if p.TextScaleX != paint.DefaultTextScaleX {
		add("TextScaleX: %g", p.TextScaleX)
	}
	if p.TextSkewX != paint.DefaultTextSkewX {
		add("TextSkewX: %g", p.TextSkewX)
	}
	if p.TextEncoding != paint.EncodingUTF8 {
		add("TextEncoding: %v", p.TextEncoding)
	}
	for _, e := range []struct {
		label string
		eff   paint.Effect
	}{
		{"Shader", p.Shader},
		{"PathEffect", p.PathEffect},
		{"MaskFilter", p.MaskFilter},
		{"ColorFilter", p.ColorFilter},
		{"Xfermode", p.Xfermode},
		{"ImageFilter", p.ImageFilter},
	} {
		if e.eff != nil {
			add("%s: %s", e.label, e.eff.Describe())
		}
	}
	if p.Typeface != nil {
		add("Typeface: %v", p.Typeface)
	}
	if len(parts) == 0 {
		return "Paint: default"
	}
	return "Paint: " + strings.Join(parts, ", ")
}
