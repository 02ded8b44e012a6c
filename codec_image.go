package debugger

import (
	"github.com/gogpu/gg-debugger/bitmap"
)

// encodeBitmap returns the wire form of bm: its color and alpha type plus
// PNG bytes, or a size description when binaries are off. ok is false when
// encoding failed; the field must then be left out entirely.
func encodeBitmap(bm *bitmap.Bitmap, cfg *encodeConfig) (map[string]any, bool) {
	out, ok := encodePixels(bm, cfg)
	if !ok {
		return nil, false
	}
	out[keyColor] = bm.ColorType.String()
	out[keyAlpha] = bm.AlphaType.String()
	return out, true
}

func encodeImage(img *bitmap.Image, cfg *encodeConfig) (map[string]any, bool) {
	return encodePixels(img.Bitmap(), cfg)
}

func encodePixels(bm *bitmap.Bitmap, cfg *encodeConfig) (map[string]any, bool) {
	if !cfg.binaries {
		return map[string]any{keyDescription: bm.Describe()}, true
	}
	data, err := bitmap.Encode(bm)
	if err != nil {
		Logger().Warn("debugger: image not encoded", "size", bm.Describe(), "err", err)
		return nil, false
	}
	return map[string]any{keyBytes: encodeBytes(data)}, true
}

// bitmap reads a required bitmap field. Missing or undecodable pixels are
// malformed input; a "color" entry converts the pixels to that color type.
func (d *decoder) bitmap(key string) *bitmap.Bitmap {
	obj := d.object(key)
	if d.err != nil {
		return nil
	}
	sd := d.sub(obj)
	defer d.join(sd)

	if !sd.has(keyBytes) {
		sd.failf("%q has no pixel data", key)
		return nil
	}
	data := sd.bytes(keyBytes)
	if sd.err != nil {
		return nil
	}
	bm, err := bitmap.Decode(data)
	if err != nil {
		Logger().Warn("debugger: image not decoded", "field", key, "err", err)
		sd.failf("%q: %v", key, err)
		return nil
	}
	if sd.has(keyColor) {
		ct := parseEnum(sd, keyColor, bitmap.ParseColorType)
		if sd.err != nil {
			return nil
		}
		if bm, err = bitmap.Convert(bm, ct); err != nil {
			sd.failf("%q: %v", key, err)
			return nil
		}
	}
	if sd.has(keyAlpha) {
		at := parseEnum(sd, keyAlpha, bitmap.ParseAlphaType)
		if sd.err != nil {
			return nil
		}
		var ok bool
		if bm, ok = bitmap.WithAlphaType(bm, at); !ok {
			Logger().Warn("debugger: alpha type does not fit pixels", "field", key, "alpha", at, "pixels", bm.AlphaType)
		}
	}
	return bm
}

func (d *decoder) image(key string) *bitmap.Image {
	bm := d.bitmap(key)
	if bm == nil {
		return nil
	}
	return bitmap.NewImage(bm)
}
