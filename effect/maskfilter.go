package effect

import (
	"fmt"

	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/paint"
)

const (
	blurMaskFilterName  = "BlurMaskFilter"
	gammaMaskFilterName = "GammaMaskFilter"
)

// BlurMaskFilter blurs coverage with a Gaussian of standard deviation Sigma.
type BlurMaskFilter struct {
	blur paint.Blur
}

var _ paint.MaskFilter = (*BlurMaskFilter)(nil)

// NewBlurMaskFilter creates a blur mask filter. It returns nil for a
// non-positive sigma.
func NewBlurMaskFilter(sigma float64, style paint.BlurStyle, quality paint.BlurQuality) *BlurMaskFilter {
	if !(sigma > 0) || style > paint.BlurInner || quality > paint.BlurHigh {
		return nil
	}
	return &BlurMaskFilter{blur: paint.Blur{Sigma: sigma, Style: style, Quality: quality}}
}

func (f *BlurMaskFilter) TypeName() string { return blurMaskFilterName }

func (f *BlurMaskFilter) Flatten(w *flatten.WriteBuffer) {
	w.WriteFloat(f.blur.Sigma)
	w.WriteUint32(uint32(f.blur.Style))
	w.WriteUint32(uint32(f.blur.Quality))
}

func (f *BlurMaskFilter) AsBlur() (paint.Blur, bool) { return f.blur, true }

func (f *BlurMaskFilter) Describe() string {
	return fmt.Sprintf("Blur(sigma %g, %v, %v)", f.blur.Sigma, f.blur.Style, f.blur.Quality)
}

func readBlurMaskFilter(r *flatten.ReadBuffer) flatten.Flattenable {
	sigma := r.ReadFloat()
	style := r.ReadUint32()
	quality := r.ReadUint32()
	if !r.IsValid() {
		return nil
	}
	f := NewBlurMaskFilter(sigma, paint.BlurStyle(style), paint.BlurQuality(quality))
	if !r.Validate(f != nil && style <= uint32(paint.BlurInner)) {
		return nil
	}
	return f
}

// GammaMaskFilter remaps coverage through a gamma curve.
type GammaMaskFilter struct {
	Gamma float64
}

var _ paint.MaskFilter = (*GammaMaskFilter)(nil)

// NewGammaMaskFilter creates a gamma mask filter. It returns nil for a
// non-positive gamma.
func NewGammaMaskFilter(gamma float64) *GammaMaskFilter {
	if !(gamma > 0) {
		return nil
	}
	return &GammaMaskFilter{Gamma: gamma}
}

func (f *GammaMaskFilter) TypeName() string { return gammaMaskFilterName }

func (f *GammaMaskFilter) Flatten(w *flatten.WriteBuffer) { w.WriteFloat(f.Gamma) }

func (f *GammaMaskFilter) AsBlur() (paint.Blur, bool) { return paint.Blur{}, false }

func (f *GammaMaskFilter) Describe() string { return fmt.Sprintf("Gamma(%g)", f.Gamma) }

func readGammaMaskFilter(r *flatten.ReadBuffer) flatten.Flattenable {
	g := r.ReadFloat()
	if !r.Validate(g > 0) {
		return nil
	}
	return &GammaMaskFilter{Gamma: g}
}
