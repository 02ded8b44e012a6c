// Package bitmap holds raster payloads for draw commands and converts them
// to and from standard image file formats.
//
// A Bitmap is pixels plus the color and alpha type they are interpreted
// with. An Image is an immutable, shareable Bitmap: commands hold Images by
// pointer and never copy or mutate the pixels.
package bitmap

import (
	"fmt"
	"image"
	"sync/atomic"
)

// ColorType is the in-memory pixel layout.
type ColorType uint8

const (
	ColorTypeUnknown ColorType = iota
	ColorTypeARGB4444
	ColorTypeRGBA8888
	ColorTypeBGRA8888
	ColorTypeRGB565
	ColorTypeGray8
	ColorTypeIndex8
	ColorTypeAlpha8
)

var colorTypeNames = [...]string{
	ColorTypeUnknown:  "Unknown",
	ColorTypeARGB4444: "ARGB4444",
	ColorTypeRGBA8888: "RGBA8888",
	ColorTypeBGRA8888: "BGRA8888",
	ColorTypeRGB565:   "565",
	ColorTypeGray8:    "Gray8",
	ColorTypeIndex8:   "Index8",
	ColorTypeAlpha8:   "Alpha8",
}

func (c ColorType) String() string {
	if int(c) < len(colorTypeNames) {
		return colorTypeNames[c]
	}
	return "Unknown"
}

// ParseColorType maps a name produced by ColorType.String back to the type.
// "Unknown" is not accepted.
func ParseColorType(s string) (ColorType, bool) {
	for i, n := range colorTypeNames {
		if i > 0 && n == s {
			return ColorType(i), true
		}
	}
	return ColorTypeUnknown, false
}

// AlphaType describes how alpha relates to the color channels.
type AlphaType uint8

const (
	AlphaTypeUnknown AlphaType = iota
	AlphaTypeOpaque
	AlphaTypePremul
	AlphaTypeUnpremul
)

var alphaTypeNames = [...]string{
	AlphaTypeUnknown:  "unknown",
	AlphaTypeOpaque:   "opaque",
	AlphaTypePremul:   "premul",
	AlphaTypeUnpremul: "unpremul",
}

func (a AlphaType) String() string {
	if int(a) < len(alphaTypeNames) {
		return alphaTypeNames[a]
	}
	return "unknown"
}

// ParseAlphaType maps a name produced by AlphaType.String back to the type.
// "unknown" is not accepted.
func ParseAlphaType(s string) (AlphaType, bool) {
	for i, n := range alphaTypeNames {
		if i > 0 && n == s {
			return AlphaType(i), true
		}
	}
	return AlphaTypeUnknown, false
}

// Bitmap is pixel data with its interpretation.
type Bitmap struct {
	Pixels    image.Image
	ColorType ColorType
	AlphaType AlphaType
}

// New wraps img, inferring the color and alpha type from its Go type.
func New(img image.Image) *Bitmap {
	bm := &Bitmap{Pixels: img}
	switch p := img.(type) {
	case *image.RGBA:
		bm.ColorType, bm.AlphaType = ColorTypeRGBA8888, AlphaTypePremul
	case *image.NRGBA:
		bm.ColorType, bm.AlphaType = ColorTypeRGBA8888, AlphaTypeUnpremul
	case *image.Gray:
		bm.ColorType, bm.AlphaType = ColorTypeGray8, AlphaTypeOpaque
	case *image.Alpha:
		bm.ColorType, bm.AlphaType = ColorTypeAlpha8, AlphaTypePremul
	case *image.Paletted:
		bm.ColorType, bm.AlphaType = ColorTypeIndex8, AlphaTypePremul
	case *Packed:
		bm.ColorType, bm.AlphaType = p.Format, AlphaTypeUnpremul
		if p.Format == ColorTypeRGB565 {
			bm.AlphaType = AlphaTypeOpaque
		}
	default:
		bm.ColorType, bm.AlphaType = ColorTypeRGBA8888, AlphaTypePremul
	}
	if bm.AlphaType != AlphaTypeOpaque && isOpaque(img) {
		bm.AlphaType = AlphaTypeOpaque
	}
	return bm
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

// Width returns the pixel width.
func (bm *Bitmap) Width() int { return bm.Pixels.Bounds().Dx() }

// Height returns the pixel height.
func (bm *Bitmap) Height() int { return bm.Pixels.Bounds().Dy() }

// Bounds returns the pixel rectangle translated to the origin.
func (bm *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.Width(), bm.Height())
}

// Describe returns the text form used when binaries are not emitted.
func (bm *Bitmap) Describe() string {
	return Describe(bm.Width(), bm.Height())
}

// Describe formats a pixel size the way encoders emit it in place of data.
func Describe(w, h int) string {
	return fmt.Sprintf("%dx%d pixel image", w, h)
}

var nextImageID atomic.Uint32

// Image is an immutable bitmap shared between commands.
type Image struct {
	id uint32
	bm *Bitmap
}

// NewImage wraps bm. The caller must not modify bm afterwards.
func NewImage(bm *Bitmap) *Image {
	return &Image{id: nextImageID.Add(1), bm: bm}
}

// ImageFromStd wraps a standard library image.
func ImageFromStd(img image.Image) *Image {
	return NewImage(New(img))
}

// ID returns a process-unique identifier.
func (im *Image) ID() uint32 { return im.id }

// Bitmap returns the shared pixels. Callers must not modify them.
func (im *Image) Bitmap() *Bitmap { return im.bm }

// Width returns the pixel width.
func (im *Image) Width() int { return im.bm.Width() }

// Height returns the pixel height.
func (im *Image) Height() int { return im.bm.Height() }

func (im *Image) String() string {
	return fmt.Sprintf("Image(%d, %s)", im.id, im.bm.Describe())
}
