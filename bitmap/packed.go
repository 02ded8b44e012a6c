package bitmap

import (
	"image"
	"image/color"
)

// Packed is an image in one of the layouts the standard library has no type
// for: ARGB4444 and RGB565 (two bytes per pixel, little-endian) and
// BGRA8888 (straight alpha).
type Packed struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
	Format ColorType
}

// NewPacked allocates a zeroed image. It returns nil for formats Packed
// does not store.
func NewPacked(r image.Rectangle, format ColorType) *Packed {
	bpp := bytesPerPixel(format)
	if bpp == 0 {
		return nil
	}
	return &Packed{
		Pix:    make([]byte, r.Dx()*r.Dy()*bpp),
		Stride: r.Dx() * bpp,
		Rect:   r,
		Format: format,
	}
}

func bytesPerPixel(format ColorType) int {
	switch format {
	case ColorTypeARGB4444, ColorTypeRGB565:
		return 2
	case ColorTypeBGRA8888:
		return 4
	default:
		return 0
	}
}

func (p *Packed) ColorModel() color.Model { return color.NRGBAModel }

func (p *Packed) Bounds() image.Rectangle { return p.Rect }

func (p *Packed) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*bytesPerPixel(p.Format)
}

// Opaque reports whether every pixel is fully opaque.
func (p *Packed) Opaque() bool {
	if p.Format == ColorTypeRGB565 {
		return true
	}
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			if p.NRGBAAt(x, y).A != 0xff {
				return false
			}
		}
	}
	return true
}

func (p *Packed) At(x, y int) color.Color { return p.NRGBAAt(x, y) }

// NRGBAAt returns the straight-alpha color at (x, y).
func (p *Packed) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.offset(x, y)
	switch p.Format {
	case ColorTypeARGB4444:
		v := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		return color.NRGBA{
			A: expand4(v >> 12), R: expand4(v >> 8), G: expand4(v >> 4), B: expand4(v),
		}
	case ColorTypeRGB565:
		v := uint16(p.Pix[i]) | uint16(p.Pix[i+1])<<8
		r5, g6, b5 := uint8(v>>11&0x1f), uint8(v>>5&0x3f), uint8(v&0x1f)
		return color.NRGBA{R: r5<<3 | r5>>2, G: g6<<2 | g6>>4, B: b5<<3 | b5>>2, A: 0xff}
	default:
		return color.NRGBA{B: p.Pix[i], G: p.Pix[i+1], R: p.Pix[i+2], A: p.Pix[i+3]}
	}
}

func (p *Packed) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := p.offset(x, y)
	switch p.Format {
	case ColorTypeARGB4444:
		v := uint16(n.A>>4)<<12 | uint16(n.R>>4)<<8 | uint16(n.G>>4)<<4 | uint16(n.B>>4)
		p.Pix[i], p.Pix[i+1] = byte(v), byte(v>>8)
	case ColorTypeRGB565:
		v := uint16(n.R>>3)<<11 | uint16(n.G>>2)<<5 | uint16(n.B>>3)
		p.Pix[i], p.Pix[i+1] = byte(v), byte(v>>8)
	default:
		p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3] = n.B, n.G, n.R, n.A
	}
}

func expand4(v uint16) uint8 {
	n := uint8(v & 0xf)
	return n<<4 | n
}
