// Package paint defines the drawing style carried by draw commands: color,
// stroke parameters, text attributes, a typeface, and up to six nested
// effects.
//
// Paint is a plain value. Copying a Paint copies every scalar attribute;
// nested effects and the typeface are immutable and shared by reference,
// so a copy never observes later changes to the original.
package paint

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-debugger/geom"
)

// Defaults used by New and by encoders to decide which attributes to elide.
// The stroke defaults come from gg so that replay through gg needs no
// translation.
var (
	DefaultMiterLimit = gg.DefaultStroke().MiterLimit
	DefaultCap        = capFromGG(gg.DefaultStroke().Cap)
	DefaultJoin       = joinFromGG(gg.DefaultStroke().Join)
)

const (
	DefaultTextSize   = 12.0
	DefaultTextScaleX = 1.0
	DefaultTextSkewX  = 0.0
	DefaultColor      = Black
)

// Paint holds the style attributes for one draw operation.
type Paint struct {
	Color        Color
	Style        Style
	StrokeWidth  float64
	StrokeMiter  float64
	Cap          Cap
	Join         Join
	AntiAlias    bool
	TextAlign    Align
	TextSize     float64
	TextScaleX   float64
	TextSkewX    float64
	TextEncoding TextEncoding

	Shader      Shader
	PathEffect  PathEffect
	MaskFilter  MaskFilter
	ColorFilter ColorFilter
	Xfermode    Xfermode
	ImageFilter ImageFilter
	Typeface    *Typeface
}

// New returns a paint with every attribute at its default: opaque black
// fill, hairline stroke, no antialiasing, left-aligned 12pt UTF-8 text.
func New() Paint {
	return Paint{
		Color:       DefaultColor,
		StrokeMiter: DefaultMiterLimit,
		Cap:         DefaultCap,
		Join:        DefaultJoin,
		TextSize:    DefaultTextSize,
		TextScaleX:  DefaultTextScaleX,
		TextSkewX:   DefaultTextSkewX,
	}
}

// Alpha returns the alpha component of the color.
func (p *Paint) Alpha() uint8 { return p.Color.A() }

// SetAlpha replaces the alpha component of the color.
func (p *Paint) SetAlpha(a uint8) { p.Color = p.Color.WithAlpha(a) }

// IsDefault reports whether every attribute equals its default.
func (p *Paint) IsDefault() bool {
	return *p == New()
}

// StrokeOutset returns how far drawing extends beyond the geometry when
// stroking with this paint.
func (p *Paint) StrokeOutset() float64 {
	if p.Style == StyleFill {
		return 0
	}
	w := p.StrokeWidth
	if w == 0 {
		w = 1
	}
	if p.Join == JoinMiter && p.StrokeMiter > 1 {
		return w / 2 * p.StrokeMiter
	}
	return w / 2
}

// FastBounds returns the area a draw of r with this paint may touch,
// including stroke outset and image filter expansion.
func (p *Paint) FastBounds(r geom.Rect) geom.Rect {
	o := p.StrokeOutset()
	r = r.Sorted().Inset(-o, -o)
	if p.ImageFilter != nil {
		r = p.ImageFilter.FilterBounds(r)
	}
	return r
}

func capFromGG(c gg.LineCap) Cap {
	switch c {
	case gg.LineCapRound:
		return CapRound
	case gg.LineCapSquare:
		return CapSquare
	default:
		return CapButt
	}
}

func joinFromGG(j gg.LineJoin) Join {
	switch j {
	case gg.LineJoinRound:
		return JoinRound
	case gg.LineJoinBevel:
		return JoinBevel
	default:
		return JoinMiter
	}
}

// LineCap converts the cap to gg's representation.
func (c Cap) LineCap() gg.LineCap {
	switch c {
	case CapRound:
		return gg.LineCapRound
	case CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// LineJoin converts the join to gg's representation.
func (j Join) LineJoin() gg.LineJoin {
	switch j {
	case JoinRound:
		return gg.LineJoinRound
	case JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
