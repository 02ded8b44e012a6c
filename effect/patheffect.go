package effect

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/paint"
)

const (
	dashPathEffectName   = "DashPathEffect"
	cornerPathEffectName = "CornerPathEffect"
)

// DashPathEffect turns strokes into dashes.
type DashPathEffect struct {
	dash paint.Dash
}

var _ paint.PathEffect = (*DashPathEffect)(nil)

// NewDashPathEffect creates a dash effect. It returns nil when intervals is
// empty, has an odd count, contains a negative value, or sums to zero.
func NewDashPathEffect(intervals []float64, phase float64) *DashPathEffect {
	if len(intervals) == 0 || len(intervals)%2 != 0 {
		return nil
	}
	var sum float64
	for _, v := range intervals {
		if v < 0 || math.IsNaN(v) {
			return nil
		}
		sum += v
	}
	if sum <= 0 {
		return nil
	}
	return &DashPathEffect{dash: paint.Dash{Intervals: slices.Clone(intervals), Phase: phase}}
}

func (e *DashPathEffect) TypeName() string { return dashPathEffectName }

func (e *DashPathEffect) Flatten(w *flatten.WriteBuffer) {
	w.WriteFloats(e.dash.Intervals)
	w.WriteFloat(e.dash.Phase)
}

// AsDash returns a copy of the dash pattern.
func (e *DashPathEffect) AsDash() (paint.Dash, bool) {
	return paint.Dash{Intervals: slices.Clone(e.dash.Intervals), Phase: e.dash.Phase}, true
}

func (e *DashPathEffect) Describe() string {
	return fmt.Sprintf("Dash(%v, phase %g)", e.dash.Intervals, e.dash.Phase)
}

func readDashPathEffect(r *flatten.ReadBuffer) flatten.Flattenable {
	intervals := r.ReadFloats()
	phase := r.ReadFloat()
	if !r.IsValid() {
		return nil
	}
	e := NewDashPathEffect(intervals, phase)
	if !r.Validate(e != nil) {
		return nil
	}
	return e
}

// CornerPathEffect rounds the corners of a path with the given radius.
type CornerPathEffect struct {
	Radius float64
}

var _ paint.PathEffect = (*CornerPathEffect)(nil)

// NewCornerPathEffect creates a corner-rounding effect. It returns nil for
// a non-positive radius.
func NewCornerPathEffect(radius float64) *CornerPathEffect {
	if !(radius > 0) {
		return nil
	}
	return &CornerPathEffect{Radius: radius}
}

func (e *CornerPathEffect) TypeName() string { return cornerPathEffectName }

func (e *CornerPathEffect) Flatten(w *flatten.WriteBuffer) { w.WriteFloat(e.Radius) }

func (e *CornerPathEffect) AsDash() (paint.Dash, bool) { return paint.Dash{}, false }

func (e *CornerPathEffect) Describe() string { return fmt.Sprintf("Corner(%g)", e.Radius) }

func readCornerPathEffect(r *flatten.ReadBuffer) flatten.Flattenable {
	radius := r.ReadFloat()
	if !r.Validate(radius > 0) {
		return nil
	}
	return &CornerPathEffect{Radius: radius}
}
