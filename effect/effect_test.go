package effect

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

func roundTrip(t *testing.T, in flatten.Flattenable) flatten.Flattenable {
	t.Helper()
	out, err := flatten.Unflatten(in.TypeName(), flatten.Flatten(in))
	if err != nil {
		t.Fatalf("Unflatten(%s) error = %v", in.TypeName(), err)
	}
	return out
}

func TestEffectsRoundTrip(t *testing.T) {
	stops := []Stop{{0, paint.Red}, {0.5, paint.Green}, {1, paint.Blue}}

	tests := []struct {
		name string
		in   flatten.Flattenable
	}{
		{"color shader", NewColorShader(paint.ARGB(128, 1, 2, 3))},
		{"linear", NewLinearGradient(geom.Pt(0, 0), geom.Pt(100, 0), stops, TileRepeat)},
		{"linear fractional", NewLinearGradient(geom.Pt(0.1, 0.3), geom.Pt(99.7, 1.0/3),
			[]Stop{{0.1, paint.Red}, {0.7, paint.Blue}}, TileClamp)},
		{"radial", NewRadialGradient(geom.Pt(50, 50), 0, 25, stops, TileMirror)},
		{"sweep", NewSweepGradient(geom.Pt(10, 10), 0, 3, stops, TileClamp)},
		{"dash", NewDashPathEffect([]float64{4, 2, 1, 2}, 1.5)},
		{"corner", NewCornerPathEffect(3)},
		{"dash fractional", NewDashPathEffect([]float64{0.1, 0.2}, 0.05)},
		{"blur mask", NewBlurMaskFilter(2.5, paint.BlurOuter, paint.BlurHigh)},
		{"gamma mask", NewGammaMaskFilter(2)},
		{"mode color filter", NewModeColorFilter(paint.Red, paint.BlendMultiply)},
		{"matrix color filter", NewMatrixColorFilter([20]float64{1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0.5, 0})},
		{"xfermode", NewModeXfermode(paint.BlendScreen)},
		{"blur image filter", NewBlurImageFilter(1, 2, nil)},
		{"drop shadow", &DropShadowImageFilter{
			Dx: 3, Dy: 4, SigmaX: 1, SigmaY: 1, Color: paint.Black,
			Input: NewBlurImageFilter(1, 1, nil),
		}},
		{"color filter image filter", &ColorFilterImageFilter{Filter: NewModeColorFilter(paint.Blue, paint.BlendSrcIn)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := roundTrip(t, tt.in)
			if !reflect.DeepEqual(out, tt.in) {
				t.Errorf("round trip = %#v, want %#v", out, tt.in)
			}
		})
	}
}

func TestInvalidPayloadsRejected(t *testing.T) {
	var w flatten.WriteBuffer
	w.WriteFloat(-1)
	w.WriteUint32(0)
	w.WriteUint32(0)

	if _, err := flatten.Unflatten(blurMaskFilterName, w.Bytes()); !errors.Is(err, flatten.ErrInvalidBuffer) {
		t.Errorf("Unflatten(negative sigma) error = %v, want ErrInvalidBuffer", err)
	}

	var odd flatten.WriteBuffer
	odd.WriteFloats([]float64{1, 2, 3})
	odd.WriteFloat(0)
	if _, err := flatten.Unflatten(dashPathEffectName, odd.Bytes()); !errors.Is(err, flatten.ErrInvalidBuffer) {
		t.Errorf("Unflatten(odd dash) error = %v, want ErrInvalidBuffer", err)
	}

	// A color filter where an image filter input is expected.
	var wrong flatten.WriteBuffer
	wrong.WriteFloat(1)
	wrong.WriteFloat(1)
	wrong.WriteFlattenable(NewModeColorFilter(paint.Red, paint.BlendSrc))
	if _, err := flatten.Unflatten(blurImageFilterName, wrong.Bytes()); !errors.Is(err, flatten.ErrInvalidBuffer) {
		t.Errorf("Unflatten(wrong input kind) error = %v, want ErrInvalidBuffer", err)
	}
}

func TestClassification(t *testing.T) {
	if _, ok := NewBlurMaskFilter(1, paint.BlurNormal, paint.BlurLow).AsBlur(); !ok {
		t.Error("BlurMaskFilter.AsBlur() ok = false, want true")
	}
	if _, ok := NewGammaMaskFilter(2).AsBlur(); ok {
		t.Error("GammaMaskFilter.AsBlur() ok = true, want false")
	}
	d, ok := NewDashPathEffect([]float64{5, 5}, 2).AsDash()
	if !ok || d.Phase != 2 || len(d.Intervals) != 2 {
		t.Errorf("AsDash() = %+v, %v", d, ok)
	}
	if _, ok := NewCornerPathEffect(2).AsDash(); ok {
		t.Error("CornerPathEffect.AsDash() ok = true, want false")
	}
}

func TestConstructorsRejectInvalid(t *testing.T) {
	if NewDashPathEffect(nil, 0) != nil {
		t.Error("NewDashPathEffect(nil) != nil")
	}
	if NewDashPathEffect([]float64{0, 0}, 0) != nil {
		t.Error("NewDashPathEffect(zero sum) != nil")
	}
	if NewBlurMaskFilter(0, paint.BlurNormal, paint.BlurLow) != nil {
		t.Error("NewBlurMaskFilter(0) != nil")
	}
	if NewCornerPathEffect(0) != nil {
		t.Error("NewCornerPathEffect(0) != nil")
	}
	if NewCornerPathEffect(math.NaN()) != nil {
		t.Error("NewCornerPathEffect(NaN) != nil")
	}
	if NewGammaMaskFilter(-1) != nil {
		t.Error("NewGammaMaskFilter(-1) != nil")
	}
}

func TestFilterColor(t *testing.T) {
	tests := []struct {
		name string
		f    paint.ColorFilter
		in   paint.Color
		want paint.Color
	}{
		{"src", NewModeColorFilter(paint.Red, paint.BlendSrc), paint.Blue, paint.Red},
		{"dst", NewModeColorFilter(paint.Red, paint.BlendDst), paint.Blue, paint.Blue},
		{"src over opaque", NewModeColorFilter(paint.Red, paint.BlendSrcOver), paint.Blue, paint.Red},
		{"clear", NewModeColorFilter(paint.Red, paint.BlendClear), paint.Blue, paint.Transparent},
		{"multiply", NewModeColorFilter(paint.White, paint.BlendMultiply), paint.Green, paint.Green},
		{"matrix half alpha", NewMatrixColorFilter([20]float64{
			1, 0, 0, 0, 0,
			0, 1, 0, 0, 0,
			0, 0, 1, 0, 0,
			0, 0, 0, 0.5, 0,
		}), paint.White, paint.ARGB(128, 255, 255, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.FilterColor(tt.in); got != tt.want {
				t.Errorf("FilterColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilterBounds(t *testing.T) {
	src := geom.LTRB(0, 0, 10, 10)
	got := NewBlurImageFilter(1, 2, nil).FilterBounds(src)
	if want := geom.LTRB(-3, -6, 13, 16); got != want {
		t.Errorf("blur FilterBounds() = %v, want %v", got, want)
	}
	shadow := &DropShadowImageFilter{Dx: 5, Dy: 5}
	if got, want := shadow.FilterBounds(src), geom.LTRB(0, 0, 15, 15); got != want {
		t.Errorf("shadow FilterBounds() = %v, want %v", got, want)
	}
}
