package effect

import (
	"fmt"

	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

const (
	blurImageFilterName        = "BlurImageFilter"
	dropShadowImageFilterName  = "DropShadowImageFilter"
	colorFilterImageFilterName = "ColorFilterImageFilter"
)

// BlurImageFilter blurs its input layer.
type BlurImageFilter struct {
	SigmaX, SigmaY float64
	Input          paint.ImageFilter
}

var _ paint.ImageFilter = (*BlurImageFilter)(nil)

// NewBlurImageFilter creates a blur filter. A nil input filters the layer
// itself.
func NewBlurImageFilter(sigmaX, sigmaY float64, input paint.ImageFilter) *BlurImageFilter {
	return &BlurImageFilter{SigmaX: sigmaX, SigmaY: sigmaY, Input: input}
}

func (f *BlurImageFilter) TypeName() string { return blurImageFilterName }

func (f *BlurImageFilter) Flatten(w *flatten.WriteBuffer) {
	w.WriteFloat(f.SigmaX)
	w.WriteFloat(f.SigmaY)
	writeInput(w, f.Input)
}

func (f *BlurImageFilter) FilterBounds(src geom.Rect) geom.Rect {
	return inputBounds(f.Input, src).Inset(-3*f.SigmaX, -3*f.SigmaY)
}

func (f *BlurImageFilter) Describe() string {
	return fmt.Sprintf("BlurImageFilter(%g, %g)%s", f.SigmaX, f.SigmaY, describeInput(f.Input))
}

func readBlurImageFilter(r *flatten.ReadBuffer) flatten.Flattenable {
	f := &BlurImageFilter{SigmaX: r.ReadFloat(), SigmaY: r.ReadFloat()}
	f.Input = readInput(r)
	if !r.Validate(f.SigmaX >= 0 && f.SigmaY >= 0) {
		return nil
	}
	return f
}

// DropShadowImageFilter draws a blurred, offset, tinted copy of its input
// beneath it.
type DropShadowImageFilter struct {
	Dx, Dy         float64
	SigmaX, SigmaY float64
	Color          paint.Color
	ShadowOnly     bool
	Input          paint.ImageFilter
}

var _ paint.ImageFilter = (*DropShadowImageFilter)(nil)

func (f *DropShadowImageFilter) TypeName() string { return dropShadowImageFilterName }

func (f *DropShadowImageFilter) Flatten(w *flatten.WriteBuffer) {
	w.WriteFloat(f.Dx)
	w.WriteFloat(f.Dy)
	w.WriteFloat(f.SigmaX)
	w.WriteFloat(f.SigmaY)
	writeColor(w, f.Color)
	w.WriteBool(f.ShadowOnly)
	writeInput(w, f.Input)
}

func (f *DropShadowImageFilter) FilterBounds(src geom.Rect) geom.Rect {
	in := inputBounds(f.Input, src)
	shadow := in.Offset(f.Dx, f.Dy).Inset(-3*f.SigmaX, -3*f.SigmaY)
	if f.ShadowOnly {
		return shadow
	}
	return in.Union(shadow)
}

func (f *DropShadowImageFilter) Describe() string {
	return fmt.Sprintf("DropShadow(%g, %g, sigma %g/%g, %v)%s", f.Dx, f.Dy, f.SigmaX, f.SigmaY, f.Color, describeInput(f.Input))
}

func readDropShadowImageFilter(r *flatten.ReadBuffer) flatten.Flattenable {
	f := &DropShadowImageFilter{
		Dx:         r.ReadFloat(),
		Dy:         r.ReadFloat(),
		SigmaX:     r.ReadFloat(),
		SigmaY:     r.ReadFloat(),
		Color:      readColor(r),
		ShadowOnly: r.ReadBool(),
	}
	f.Input = readInput(r)
	if !r.Validate(f.SigmaX >= 0 && f.SigmaY >= 0) {
		return nil
	}
	return f
}

// ColorFilterImageFilter applies a color filter to its input layer.
type ColorFilterImageFilter struct {
	Filter paint.ColorFilter
	Input  paint.ImageFilter
}

var _ paint.ImageFilter = (*ColorFilterImageFilter)(nil)

func (f *ColorFilterImageFilter) TypeName() string { return colorFilterImageFilterName }

func (f *ColorFilterImageFilter) Flatten(w *flatten.WriteBuffer) {
	w.WriteFlattenable(f.Filter)
	writeInput(w, f.Input)
}

func (f *ColorFilterImageFilter) FilterBounds(src geom.Rect) geom.Rect {
	return inputBounds(f.Input, src)
}

func (f *ColorFilterImageFilter) Describe() string {
	return "ColorFilterImageFilter(" + f.Filter.Describe() + ")" + describeInput(f.Input)
}

func readColorFilterImageFilter(r *flatten.ReadBuffer) flatten.Flattenable {
	cf, ok := r.ReadFlattenable().(paint.ColorFilter)
	if !r.Validate(ok) {
		return nil
	}
	f := &ColorFilterImageFilter{Filter: cf}
	f.Input = readInput(r)
	if !r.IsValid() {
		return nil
	}
	return f
}

func writeInput(w *flatten.WriteBuffer, in paint.ImageFilter) {
	if in == nil {
		w.WriteFlattenable(nil)
		return
	}
	w.WriteFlattenable(in)
}

// readInput reads an optional nested image filter. A present object of the
// wrong kind fails the buffer.
func readInput(r *flatten.ReadBuffer) paint.ImageFilter {
	obj := r.ReadFlattenable()
	if obj == nil {
		return nil
	}
	in, ok := obj.(paint.ImageFilter)
	r.Validate(ok)
	return in
}

func inputBounds(in paint.ImageFilter, src geom.Rect) geom.Rect {
	if in == nil {
		return src
	}
	return in.FilterBounds(src)
}

func describeInput(in paint.ImageFilter) string {
	if in == nil {
		return ""
	}
	return " <- " + in.Describe()
}
