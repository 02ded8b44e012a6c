package geom

import (
	"fmt"
	"strings"
)

// RegionOp combines a new clip shape with the current clip.
type RegionOp uint8

const (
	OpDifference RegionOp = iota
	OpIntersect
	OpUnion
	OpXor
	OpReverseDifference
	OpReplace
)

var regionOpNames = [...]string{
	OpDifference:        "difference",
	OpIntersect:         "intersect",
	OpUnion:             "union",
	OpXor:               "xor",
	OpReverseDifference: "reverseDifference",
	OpReplace:           "replace",
}

func (op RegionOp) String() string {
	if int(op) < len(regionOpNames) {
		return regionOpNames[op]
	}
	return "Unknown"
}

// ParseRegionOp maps a name produced by RegionOp.String back to the op.
func ParseRegionOp(s string) (RegionOp, bool) {
	for i, n := range regionOpNames {
		if n == s {
			return RegionOp(i), true
		}
	}
	return 0, false
}

// Region is a set of integer rectangles. Rectangles may overlap; the
// region covers their union.
type Region struct {
	Rects []IRect
}

// NewRegion creates a region covering r.
func NewRegion(r IRect) Region {
	if r.IsEmpty() {
		return Region{}
	}
	return Region{Rects: []IRect{r}}
}

// IsEmpty reports whether the region covers nothing.
func (rg Region) IsEmpty() bool {
	for _, r := range rg.Rects {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// Bounds returns the smallest IRect containing the region.
func (rg Region) Bounds() IRect {
	var b IRect
	first := true
	for _, r := range rg.Rects {
		if r.IsEmpty() {
			continue
		}
		if first {
			b, first = r, false
			continue
		}
		b.Left = min(b.Left, r.Left)
		b.Top = min(b.Top, r.Top)
		b.Right = max(b.Right, r.Right)
		b.Bottom = max(b.Bottom, r.Bottom)
	}
	return b
}

// Clone returns an independent copy.
func (rg Region) Clone() Region {
	return Region{Rects: append([]IRect(nil), rg.Rects...)}
}

func (rg Region) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Region: %d rects", len(rg.Rects))
	if !rg.IsEmpty() {
		fmt.Fprintf(&sb, ", bounds %v", rg.Bounds())
	}
	return sb.String()
}
