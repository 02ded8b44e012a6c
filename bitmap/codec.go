package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrEncode is returned when pixels cannot be encoded.
	ErrEncode = errors.New("bitmap: encode failed")

	// ErrUnknownFormat is returned when bytes are not a recognized image.
	ErrUnknownFormat = errors.New("bitmap: unknown image format")

	// ErrDecode is returned when a recognized image stream is corrupt.
	ErrDecode = errors.New("bitmap: decode failed")

	// ErrUnsupportedConversion is returned by Convert for unknown targets.
	ErrUnsupportedConversion = errors.New("bitmap: unsupported conversion")
)

// Encode returns the PNG form of bm. Layouts PNG cannot store directly are
// first converted to 32-bit RGBA. No bytes are returned on failure.
func Encode(bm *Bitmap) ([]byte, error) {
	if bm == nil || bm.Pixels == nil {
		return nil, fmt.Errorf("%w: no pixels", ErrEncode)
	}
	if bm.Width() <= 0 || bm.Height() <= 0 {
		return nil, fmt.Errorf("%w: empty %dx%d bitmap", ErrEncode, bm.Width(), bm.Height())
	}

	img := bm.Pixels
	if !pngNative(img) {
		img = clone.AsRGBA(img)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// One retry through the canonical layout.
		buf.Reset()
		if err2 := png.Encode(&buf, clone.AsRGBA(img)); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	}
	return buf.Bytes(), nil
}

// pngNative reports whether png.Encode writes img without a per-pixel
// color model conversion.
func pngNative(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.Gray, *image.Gray16,
		*image.RGBA64, *image.NRGBA64, *image.Paletted:
		return true
	default:
		return false
	}
}

// Decode detects the image format of data and decodes it.
func Decode(data []byte) (*Bitmap, error) {
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, kindName(kind.Extension))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return New(img), nil
}

// WithAlphaType returns bm with its pixels stored in alpha type at.
// RGBA8888 pixels move between premultiplied and unpremultiplied storage.
// ok is false, and bm is returned unchanged, when the pixels cannot carry
// at: translucent pixels labelled opaque, an unknown type, or a change of
// premultiplication on any other color type.
func WithAlphaType(bm *Bitmap, at AlphaType) (*Bitmap, bool) {
	if bm.AlphaType == at {
		return bm, true
	}
	switch at {
	case AlphaTypeOpaque:
		if !isOpaque(bm.Pixels) {
			return bm, false
		}
		return &Bitmap{Pixels: bm.Pixels, ColorType: bm.ColorType, AlphaType: at}, true
	case AlphaTypePremul, AlphaTypeUnpremul:
	default:
		return bm, false
	}
	if bm.ColorType != ColorTypeRGBA8888 {
		if bm.AlphaType != AlphaTypeOpaque {
			return bm, false
		}
		return &Bitmap{Pixels: bm.Pixels, ColorType: bm.ColorType, AlphaType: at}, true
	}

	pixels := bm.Pixels
	_, premul := pixels.(*image.RGBA)
	_, unpremul := pixels.(*image.NRGBA)
	switch {
	case at == AlphaTypePremul && !premul:
		pixels = redraw(image.NewRGBA(bm.Bounds()), bm.Pixels)
	case at == AlphaTypeUnpremul && !unpremul:
		pixels = redraw(image.NewNRGBA(bm.Bounds()), bm.Pixels)
	}
	return &Bitmap{Pixels: pixels, ColorType: ColorTypeRGBA8888, AlphaType: at}, true
}

func redraw(dst draw.Image, src image.Image) image.Image {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

func kindName(ext string) string {
	if ext == "" || ext == "unknown" {
		return "unrecognized data"
	}
	return ext
}

// Convert returns bm in color type ct. Index8 bitmaps are returned as-is,
// and converting to Index8 is a no-op, because palettes are not built or
// flattened here.
func Convert(bm *Bitmap, ct ColorType) (*Bitmap, error) {
	if bm.ColorType == ct || bm.ColorType == ColorTypeIndex8 || ct == ColorTypeIndex8 {
		return bm, nil
	}

	r := bm.Bounds()
	var dst draw.Image
	switch ct {
	case ColorTypeRGBA8888:
		if bm.AlphaType == AlphaTypeUnpremul {
			dst = image.NewNRGBA(r)
		} else {
			dst = image.NewRGBA(r)
		}
	case ColorTypeGray8:
		dst = image.NewGray(r)
	case ColorTypeAlpha8:
		dst = image.NewAlpha(r)
	case ColorTypeARGB4444, ColorTypeRGB565, ColorTypeBGRA8888:
		dst = NewPacked(r, ct)
	default:
		return nil, fmt.Errorf("%w: %v to %v", ErrUnsupportedConversion, bm.ColorType, ct)
	}
	draw.Draw(dst, r, bm.Pixels, bm.Pixels.Bounds().Min, draw.Src)

	out := New(dst)
	out.ColorType = ct
	if ct == ColorTypeRGB565 || ct == ColorTypeGray8 {
		out.AlphaType = AlphaTypeOpaque
	}
	return out, nil
}
