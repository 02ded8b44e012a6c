package effect

import (
	"fmt"
	"math"

	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/paint"
)

const (
	modeColorFilterName   = "ModeColorFilter"
	matrixColorFilterName = "MatrixColorFilter"
	modeXfermodeName      = "ModeXfermode"
)

// ModeColorFilter blends a constant color over every source color.
type ModeColorFilter struct {
	Color paint.Color
	Mode  paint.BlendMode
}

var _ paint.ColorFilter = (*ModeColorFilter)(nil)

// NewModeColorFilter creates a blend color filter.
func NewModeColorFilter(c paint.Color, mode paint.BlendMode) *ModeColorFilter {
	return &ModeColorFilter{Color: c, Mode: mode}
}

func (f *ModeColorFilter) TypeName() string { return modeColorFilterName }

func (f *ModeColorFilter) Flatten(w *flatten.WriteBuffer) {
	writeColor(w, f.Color)
	w.WriteUint32(uint32(f.Mode))
}

// FilterColor blends the filter color (source) onto c (destination).
// Modes without a closed form on a single color fall back to source-over.
func (f *ModeColorFilter) FilterColor(c paint.Color) paint.Color {
	return blendColor(f.Color, c, f.Mode)
}

func (f *ModeColorFilter) Describe() string {
	return fmt.Sprintf("ModeColorFilter(%v, %v)", f.Color, f.Mode)
}

func readModeColorFilter(r *flatten.ReadBuffer) flatten.Flattenable {
	c := readColor(r)
	mode := r.ReadUint32()
	if !r.Validate(mode <= uint32(paint.BlendLuminosity)) {
		return nil
	}
	return &ModeColorFilter{Color: c, Mode: paint.BlendMode(mode)}
}

// MatrixColorFilter multiplies [r g b a 1] by a 4x5 row-major matrix, with
// components normalized to [0, 1].
type MatrixColorFilter struct {
	Matrix [20]float64
}

var _ paint.ColorFilter = (*MatrixColorFilter)(nil)

// NewMatrixColorFilter creates a color matrix filter.
func NewMatrixColorFilter(m [20]float64) *MatrixColorFilter {
	return &MatrixColorFilter{Matrix: m}
}

func (f *MatrixColorFilter) TypeName() string { return matrixColorFilterName }

func (f *MatrixColorFilter) Flatten(w *flatten.WriteBuffer) {
	for _, v := range f.Matrix {
		w.WriteFloat(v)
	}
}

func (f *MatrixColorFilter) FilterColor(c paint.Color) paint.Color {
	in := [5]float64{
		float64(c.R()) / 255, float64(c.G()) / 255, float64(c.B()) / 255, float64(c.A()) / 255, 1,
	}
	var out [4]uint8
	for row := range out {
		var v float64
		for col, x := range in {
			v += f.Matrix[row*5+col] * x
		}
		out[row] = unit8(v)
	}
	return paint.ARGB(out[3], out[0], out[1], out[2])
}

func (f *MatrixColorFilter) Describe() string { return "MatrixColorFilter" }

func readMatrixColorFilter(r *flatten.ReadBuffer) flatten.Flattenable {
	f := &MatrixColorFilter{}
	for i := range f.Matrix {
		f.Matrix[i] = r.ReadFloat()
	}
	if !r.IsValid() {
		return nil
	}
	return f
}

// ModeXfermode composites with a fixed blend mode.
type ModeXfermode struct {
	Mode paint.BlendMode
}

var _ paint.Xfermode = (*ModeXfermode)(nil)

// NewModeXfermode creates a transfer mode.
func NewModeXfermode(mode paint.BlendMode) *ModeXfermode {
	return &ModeXfermode{Mode: mode}
}

func (x *ModeXfermode) TypeName() string { return modeXfermodeName }

func (x *ModeXfermode) Flatten(w *flatten.WriteBuffer) { w.WriteUint32(uint32(x.Mode)) }

func (x *ModeXfermode) AsMode() (paint.BlendMode, bool) { return x.Mode, true }

func (x *ModeXfermode) Describe() string { return "Xfermode(" + x.Mode.String() + ")" }

func readModeXfermode(r *flatten.ReadBuffer) flatten.Flattenable {
	mode := r.ReadUint32()
	if !r.Validate(mode <= uint32(paint.BlendLuminosity)) {
		return nil
	}
	return &ModeXfermode{Mode: paint.BlendMode(mode)}
}

func unit8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// blendColor composites straight-alpha src over dst with mode.
func blendColor(src, dst paint.Color, mode paint.BlendMode) paint.Color {
	sa, da := float64(src.A())/255, float64(dst.A())/255
	comp := func(s, d uint8) (float64, float64) { return float64(s) / 255 * sa, float64(d) / 255 * da }

	// Premultiplied Porter-Duff coefficients (fs, fd).
	var fs, fd float64
	switch mode {
	case paint.BlendClear:
		return paint.Transparent
	case paint.BlendSrc:
		return src
	case paint.BlendDst:
		return dst
	case paint.BlendDstOver:
		fs, fd = 1-da, 1
	case paint.BlendSrcIn:
		fs, fd = da, 0
	case paint.BlendDstIn:
		fs, fd = 0, sa
	case paint.BlendSrcOut:
		fs, fd = 1-da, 0
	case paint.BlendDstOut:
		fs, fd = 0, 1-sa
	case paint.BlendSrcATop:
		fs, fd = da, 1-sa
	case paint.BlendDstATop:
		fs, fd = 1-da, sa
	case paint.BlendXor:
		fs, fd = 1-da, 1-sa
	case paint.BlendPlus:
		fs, fd = 1, 1
	case paint.BlendModulate, paint.BlendMultiply:
		r, g, b := mulc(src.R(), dst.R()), mulc(src.G(), dst.G()), mulc(src.B(), dst.B())
		return paint.ARGB(unit8(sa*da), r, g, b)
	default:
		fs, fd = 1, 1-sa
	}

	a := sa*fs + da*fd
	if a <= 0 {
		return paint.Transparent
	}
	ch := func(s, d uint8) uint8 {
		ps, pd := comp(s, d)
		return unit8((ps*fs + pd*fd) / a)
	}
	return paint.ARGB(unit8(a), ch(src.R(), dst.R()), ch(src.G(), dst.G()), ch(src.B(), dst.B()))
}

func mulc(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
