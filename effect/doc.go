// Package effect provides the concrete paint effects: shaders, path
// effects, mask filters, color filters, transfer modes and image filters.
//
// Every effect is immutable once constructed and registers a factory with
// package flatten under its TypeName, so importing this package makes all
// of them decodable from their binary form.
package effect

import (
	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

func init() {
	flatten.Register(colorShaderName, readColorShader)
	flatten.Register(linearGradientName, readLinearGradient)
	flatten.Register(radialGradientName, readRadialGradient)
	flatten.Register(sweepGradientName, readSweepGradient)
	flatten.Register(dashPathEffectName, readDashPathEffect)
	flatten.Register(cornerPathEffectName, readCornerPathEffect)
	flatten.Register(blurMaskFilterName, readBlurMaskFilter)
	flatten.Register(gammaMaskFilterName, readGammaMaskFilter)
	flatten.Register(modeColorFilterName, readModeColorFilter)
	flatten.Register(matrixColorFilterName, readMatrixColorFilter)
	flatten.Register(modeXfermodeName, readModeXfermode)
	flatten.Register(blurImageFilterName, readBlurImageFilter)
	flatten.Register(dropShadowImageFilterName, readDropShadowImageFilter)
	flatten.Register(colorFilterImageFilterName, readColorFilterImageFilter)
}

func writeColor(w *flatten.WriteBuffer, c paint.Color) {
	w.WriteUint32(uint32(c))
}

func readColor(r *flatten.ReadBuffer) paint.Color {
	return paint.Color(r.ReadUint32())
}

func writePoint(w *flatten.WriteBuffer, p geom.Point) {
	w.WriteFloat(p.X)
	w.WriteFloat(p.Y)
}

func readPoint(r *flatten.ReadBuffer) geom.Point {
	x := r.ReadFloat()
	return geom.Point{X: x, Y: r.ReadFloat()}
}

func writeMatrix(w *flatten.WriteBuffer, m geom.Matrix) {
	for _, v := range m {
		w.WriteFloat(v)
	}
}

func readMatrix(r *flatten.ReadBuffer) geom.Matrix {
	var m geom.Matrix
	for i := range m {
		m[i] = r.ReadFloat()
	}
	return m
}
