package paint

import (
	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/geom"
)

// Effect is an immutable nested paint object with a binary form.
// Effects are shared by reference between paints and commands and must
// never be mutated after construction.
type Effect interface {
	flatten.Flattenable

	// Describe returns a short human-readable summary.
	Describe() string
}

// Shader generates source colors.
type Shader interface {
	Effect

	// LocalMatrix returns the shader's pattern transform.
	LocalMatrix() geom.Matrix
}

// PathEffect alters geometry before stroking or filling.
type PathEffect interface {
	Effect

	// AsDash reports the dash pattern when the effect is a plain dash.
	AsDash() (Dash, bool)
}

// MaskFilter alters the coverage mask of drawn geometry.
type MaskFilter interface {
	Effect

	// AsBlur reports the blur parameters when the filter is a Gaussian blur.
	AsBlur() (Blur, bool)
}

// ColorFilter transforms source colors.
type ColorFilter interface {
	Effect

	// FilterColor applies the filter to a single color.
	FilterColor(c Color) Color
}

// Xfermode composites source and destination.
type Xfermode interface {
	Effect

	// AsMode reports the blend mode when the transfer is a plain mode.
	AsMode() (BlendMode, bool)
}

// ImageFilter post-processes a rendered layer.
type ImageFilter interface {
	Effect

	// FilterBounds returns the area affected when filtering src.
	FilterBounds(src geom.Rect) geom.Rect
}

// Dash is a stroke dash pattern: alternating on and off lengths starting
// Phase units into the pattern.
type Dash struct {
	Intervals []float64
	Phase     float64
}

// BlurStyle selects which side of an edge a blur affects.
type BlurStyle uint8

const (
	BlurNormal BlurStyle = iota
	BlurSolid
	BlurOuter
	BlurInner
)

var blurStyleNames = [...]string{
	BlurNormal: "normal",
	BlurSolid:  "solid",
	BlurOuter:  "outer",
	BlurInner:  "inner",
}

func (s BlurStyle) String() string { return enumName(blurStyleNames[:], int(s)) }

// ParseBlurStyle maps a name produced by BlurStyle.String back to the style.
func ParseBlurStyle(s string) (BlurStyle, bool) {
	i, ok := enumIndex(blurStyleNames[:], s)
	return BlurStyle(i), ok
}

// BlurQuality trades accuracy for speed.
type BlurQuality uint8

const (
	BlurLow BlurQuality = iota
	BlurHigh
)

var blurQualityNames = [...]string{
	BlurLow:  "low",
	BlurHigh: "high",
}

func (q BlurQuality) String() string { return enumName(blurQualityNames[:], int(q)) }

// ParseBlurQuality maps a name produced by BlurQuality.String back to the quality.
func ParseBlurQuality(s string) (BlurQuality, bool) {
	i, ok := enumIndex(blurQualityNames[:], s)
	return BlurQuality(i), ok
}

// Blur describes a Gaussian blur mask filter.
type Blur struct {
	Sigma   float64
	Style   BlurStyle
	Quality BlurQuality
}
