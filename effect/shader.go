package effect

import (
	"fmt"

	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

const (
	colorShaderName    = "ColorShader"
	linearGradientName = "LinearGradient"
	radialGradientName = "RadialGradient"
	sweepGradientName  = "SweepGradient"
)

// TileMode selects how a gradient continues outside its [0, 1] range.
type TileMode uint8

const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
)

var tileModeNames = [...]string{
	TileClamp:  "clamp",
	TileRepeat: "repeat",
	TileMirror: "mirror",
}

func (m TileMode) String() string {
	if int(m) < len(tileModeNames) {
		return tileModeNames[m]
	}
	return "Unknown"
}

// Stop is a gradient color stop.
type Stop struct {
	Offset float64
	Color  paint.Color
}

// ColorShader fills with a single color.
type ColorShader struct {
	Color paint.Color
}

var _ paint.Shader = (*ColorShader)(nil)

// NewColorShader creates a solid color shader.
func NewColorShader(c paint.Color) *ColorShader {
	return &ColorShader{Color: c}
}

func (s *ColorShader) TypeName() string { return colorShaderName }

func (s *ColorShader) Flatten(w *flatten.WriteBuffer) { writeColor(w, s.Color) }

func (s *ColorShader) LocalMatrix() geom.Matrix { return geom.Identity() }

func (s *ColorShader) Describe() string { return fmt.Sprintf("ColorShader(%v)", s.Color) }

func readColorShader(r *flatten.ReadBuffer) flatten.Flattenable {
	return &ColorShader{Color: readColor(r)}
}

// gradient holds the fields shared by every gradient shader.
type gradient struct {
	Stops  []Stop
	Tile   TileMode
	Matrix geom.Matrix
}

func newGradient(stops []Stop, tile TileMode) gradient {
	return gradient{Stops: append([]Stop(nil), stops...), Tile: tile, Matrix: geom.Identity()}
}

func (g *gradient) LocalMatrix() geom.Matrix { return g.Matrix }

func (g *gradient) writeStops(w *flatten.WriteBuffer) {
	w.WriteUint32(uint32(len(g.Stops)))
	for _, s := range g.Stops {
		w.WriteFloat(s.Offset)
		writeColor(w, s.Color)
	}
	w.WriteUint32(uint32(g.Tile))
	writeMatrix(w, g.Matrix)
}

func readGradient(r *flatten.ReadBuffer) (gradient, bool) {
	n := r.ReadUint32()
	// Each stop is a float64 offset and a 32-bit color.
	if !r.Validate(int(n) <= r.Remaining()/12) {
		return gradient{}, false
	}
	g := gradient{Stops: make([]Stop, n)}
	for i := range g.Stops {
		g.Stops[i].Offset = r.ReadFloat()
		g.Stops[i].Color = readColor(r)
	}
	tile := r.ReadUint32()
	r.Validate(tile <= uint32(TileMirror))
	g.Tile = TileMode(tile)
	g.Matrix = readMatrix(r)
	return g, r.IsValid()
}

// LinearGradient interpolates colors along the line Start-End.
type LinearGradient struct {
	gradient
	Start, End geom.Point
}

var _ paint.Shader = (*LinearGradient)(nil)

// NewLinearGradient creates a linear gradient with an identity local matrix.
func NewLinearGradient(start, end geom.Point, stops []Stop, tile TileMode) *LinearGradient {
	return &LinearGradient{gradient: newGradient(stops, tile), Start: start, End: end}
}

func (g *LinearGradient) TypeName() string { return linearGradientName }

func (g *LinearGradient) Flatten(w *flatten.WriteBuffer) {
	writePoint(w, g.Start)
	writePoint(w, g.End)
	g.writeStops(w)
}

func (g *LinearGradient) Describe() string {
	return fmt.Sprintf("LinearGradient(%v -> %v, %d stops, %v)", g.Start, g.End, len(g.Stops), g.Tile)
}

func readLinearGradient(r *flatten.ReadBuffer) flatten.Flattenable {
	start := readPoint(r)
	end := readPoint(r)
	grad, ok := readGradient(r)
	if !ok {
		return nil
	}
	return &LinearGradient{gradient: grad, Start: start, End: end}
}

// RadialGradient interpolates colors between two circles.
type RadialGradient struct {
	gradient
	Center, Focus          geom.Point
	StartRadius, EndRadius float64
}

var _ paint.Shader = (*RadialGradient)(nil)

// NewRadialGradient creates a radial gradient whose focus is its center.
func NewRadialGradient(center geom.Point, startRadius, endRadius float64, stops []Stop, tile TileMode) *RadialGradient {
	return &RadialGradient{
		gradient:    newGradient(stops, tile),
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
	}
}

func (g *RadialGradient) TypeName() string { return radialGradientName }

func (g *RadialGradient) Flatten(w *flatten.WriteBuffer) {
	writePoint(w, g.Center)
	writePoint(w, g.Focus)
	w.WriteFloat(g.StartRadius)
	w.WriteFloat(g.EndRadius)
	g.writeStops(w)
}

func (g *RadialGradient) Describe() string {
	return fmt.Sprintf("RadialGradient(%v r %g..%g, %d stops, %v)", g.Center, g.StartRadius, g.EndRadius, len(g.Stops), g.Tile)
}

func readRadialGradient(r *flatten.ReadBuffer) flatten.Flattenable {
	g := &RadialGradient{
		Center:      readPoint(r),
		Focus:       readPoint(r),
		StartRadius: r.ReadFloat(),
		EndRadius:   r.ReadFloat(),
	}
	if !r.Validate(g.StartRadius >= 0 && g.EndRadius >= 0) {
		return nil
	}
	grad, ok := readGradient(r)
	if !ok {
		return nil
	}
	g.gradient = grad
	return g
}

// SweepGradient interpolates colors around Center between two angles in
// radians.
type SweepGradient struct {
	gradient
	Center               geom.Point
	StartAngle, EndAngle float64
}

var _ paint.Shader = (*SweepGradient)(nil)

// NewSweepGradient creates a sweep gradient.
func NewSweepGradient(center geom.Point, startAngle, endAngle float64, stops []Stop, tile TileMode) *SweepGradient {
	return &SweepGradient{
		gradient:   newGradient(stops, tile),
		Center:     center,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

func (g *SweepGradient) TypeName() string { return sweepGradientName }

func (g *SweepGradient) Flatten(w *flatten.WriteBuffer) {
	writePoint(w, g.Center)
	w.WriteFloat(g.StartAngle)
	w.WriteFloat(g.EndAngle)
	g.writeStops(w)
}

func (g *SweepGradient) Describe() string {
	return fmt.Sprintf("SweepGradient(%v, %d stops)", g.Center, len(g.Stops))
}

func readSweepGradient(r *flatten.ReadBuffer) flatten.Flattenable {
	g := &SweepGradient{
		Center:     readPoint(r),
		StartAngle: r.ReadFloat(),
		EndAngle:   r.ReadFloat(),
	}
	grad, ok := readGradient(r)
	if !ok {
		return nil
	}
	g.gradient = grad
	return g
}
