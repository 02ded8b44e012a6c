package bitmap

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 80), B: 200, A: 255})
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := testImage()
	data, err := Encode(New(src))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	bm, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if bm.Width() != 4 || bm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", bm.Width(), bm.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := src.NRGBAAt(x, y)
			got := color.NRGBAModel.Convert(bm.Pixels.At(x, y)).(color.NRGBA)
			if got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if bm.AlphaType != AlphaTypeOpaque {
		t.Errorf("AlphaType = %v, want opaque", bm.AlphaType)
	}
}

func TestEncodeConvertsPackedLayouts(t *testing.T) {
	p := NewPacked(image.Rect(0, 0, 2, 2), ColorTypeRGB565)
	p.Set(0, 0, color.NRGBA{R: 255, A: 255})
	data, err := Encode(New(p))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	bm, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	r, _, _, _ := bm.Pixels.At(0, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("red = %d, want 255", r>>8)
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode(New(image.NewRGBA(image.Rect(0, 0, 0, 0)))); !errors.Is(err, ErrEncode) {
		t.Errorf("Encode(empty) error = %v, want ErrEncode", err)
	}
	if _, err := Encode(nil); !errors.Is(err, ErrEncode) {
		t.Errorf("Encode(nil) error = %v, want ErrEncode", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	data, err := Encode(New(testImage()))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"garbage", []byte("definitely not an image"), ErrUnknownFormat},
		{"empty", nil, ErrUnknownFormat},
		{"truncated png", data[:40], ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := Decode(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
			if bm != nil {
				t.Error("Decode() returned a bitmap on failure")
			}
		})
	}
}

func TestConvert(t *testing.T) {
	bm := New(testImage())

	tests := []struct {
		ct    ColorType
		alpha AlphaType
	}{
		{ColorTypeGray8, AlphaTypeOpaque},
		{ColorTypeRGB565, AlphaTypeOpaque},
		{ColorTypeARGB4444, AlphaTypeOpaque},
		{ColorTypeBGRA8888, AlphaTypeOpaque},
		{ColorTypeAlpha8, AlphaTypeOpaque},
	}
	for _, tt := range tests {
		t.Run(tt.ct.String(), func(t *testing.T) {
			out, err := Convert(bm, tt.ct)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if out.ColorType != tt.ct {
				t.Errorf("ColorType = %v, want %v", out.ColorType, tt.ct)
			}
			if out.AlphaType != tt.alpha {
				t.Errorf("AlphaType = %v, want %v", out.AlphaType, tt.alpha)
			}
			if out.Width() != 4 || out.Height() != 3 {
				t.Errorf("size = %dx%d, want 4x3", out.Width(), out.Height())
			}
		})
	}
}

func translucentImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	return img
}

func TestWithAlphaType(t *testing.T) {
	bm := New(translucentImage())
	if bm.AlphaType != AlphaTypeUnpremul {
		t.Fatalf("New(NRGBA).AlphaType = %v, want unpremul", bm.AlphaType)
	}

	premul, ok := WithAlphaType(bm, AlphaTypePremul)
	if !ok {
		t.Fatal("WithAlphaType(premul) ok = false")
	}
	rgba, isRGBA := premul.Pixels.(*image.RGBA)
	if !isRGBA {
		t.Fatalf("premul pixels = %T, want *image.RGBA", premul.Pixels)
	}
	if got := rgba.RGBAAt(0, 0); got.R != 0x40 || got.A != 0x80 {
		t.Errorf("premul pixel = %v, want R=0x40 A=0x80", got)
	}

	back, ok := WithAlphaType(premul, AlphaTypeUnpremul)
	if !ok {
		t.Fatal("WithAlphaType(unpremul) ok = false")
	}
	if _, isNRGBA := back.Pixels.(*image.NRGBA); !isNRGBA {
		t.Errorf("unpremul pixels = %T, want *image.NRGBA", back.Pixels)
	}
}

func TestWithAlphaTypeRejectsMismatch(t *testing.T) {
	tests := []struct {
		name string
		bm   *Bitmap
		at   AlphaType
	}{
		{"translucent as opaque", New(translucentImage()), AlphaTypeOpaque},
		{"unknown", New(translucentImage()), AlphaTypeUnknown},
		{"packed as premul", New(NewPacked(image.Rect(0, 0, 1, 1), ColorTypeARGB4444)), AlphaTypePremul},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WithAlphaType(tt.bm, tt.at)
			if ok {
				t.Errorf("WithAlphaType(%v) ok = true, want false", tt.at)
			}
			if got != tt.bm {
				t.Error("WithAlphaType() changed the bitmap on mismatch")
			}
		})
	}
}

func TestConvertIndex8IsIdentity(t *testing.T) {
	pal := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White})
	bm := New(pal)
	out, err := Convert(bm, ColorTypeRGB565)
	if err != nil || out != bm {
		t.Errorf("Convert(Index8) = %p, %v, want same bitmap", out, err)
	}
	out, err = Convert(New(testImage()), ColorTypeIndex8)
	if err != nil || out.ColorType != ColorTypeRGBA8888 {
		t.Errorf("Convert(to Index8) = %v, %v, want unchanged", out.ColorType, err)
	}
}

func TestPackedBGRA(t *testing.T) {
	p := NewPacked(image.Rect(0, 0, 1, 1), ColorTypeBGRA8888)
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	p.Set(0, 0, c)
	if got := p.NRGBAAt(0, 0); got != c {
		t.Errorf("NRGBAAt() = %v, want %v", got, c)
	}
	if p.Pix[0] != 3 || p.Pix[2] != 1 {
		t.Errorf("Pix = %v, want BGRA order", p.Pix)
	}
}

func TestColorTypeNames(t *testing.T) {
	for ct := ColorTypeARGB4444; ct <= ColorTypeAlpha8; ct++ {
		if got, ok := ParseColorType(ct.String()); !ok || got != ct {
			t.Errorf("ParseColorType(%q) = %v, %v", ct.String(), got, ok)
		}
	}
	if _, ok := ParseColorType("Unknown"); ok {
		t.Error(`ParseColorType("Unknown") ok = true, want false`)
	}
	for at := AlphaTypeOpaque; at <= AlphaTypeUnpremul; at++ {
		if got, ok := ParseAlphaType(at.String()); !ok || got != at {
			t.Errorf("ParseAlphaType(%q) = %v, %v", at.String(), got, ok)
		}
	}
}

func TestImageShared(t *testing.T) {
	a := ImageFromStd(testImage())
	b := ImageFromStd(testImage())
	if a.ID() == b.ID() {
		t.Error("distinct images share an ID")
	}
	if got := a.Bitmap().Describe(); got != "4x3 pixel image" {
		t.Errorf("Describe() = %q, want %q", got, "4x3 pixel image")
	}
}
