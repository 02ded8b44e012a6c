package debugger

import (
	"encoding/base64"
	"fmt"
	"math"

	json "github.com/goccy/go-json"
)

// Wire attribute names.
const (
	keyCommand      = "command"
	keyVisible      = "visible"
	keyMatrix       = "matrix"
	keyCoords       = "coords"
	keyBounds       = "bounds"
	keyPaint        = "paint"
	keyOuter        = "outer"
	keyInner        = "inner"
	keyMode         = "mode"
	keyPoints       = "points"
	keyPath         = "path"
	keyText         = "text"
	keyGlyphs       = "glyphs"
	keyColor        = "color"
	keyColors       = "colors"
	keyAlpha        = "alpha"
	keyStyle        = "style"
	keyStrokeWidth  = "strokeWidth"
	keyStrokeMiter  = "strokeMiter"
	keyCap          = "cap"
	keyJoin         = "join"
	keyAntiAlias    = "antiAlias"
	keyRegion       = "region"
	keyOp           = "op"
	keyBlur         = "blur"
	keySigma        = "sigma"
	keyQuality      = "quality"
	keyTextAlign    = "textAlign"
	keyTextSize     = "textSize"
	keyTextScaleX   = "textScaleX"
	keyTextSkewX    = "textSkewX"
	keyTextEncoding = "textEncoding"
	keyDashing      = "dashing"
	keyIntervals    = "intervals"
	keyPhase        = "phase"
	keyFillType     = "fillType"
	keyVerbs        = "verbs"
	keyName         = "name"
	keyBytes        = "bytes"
	keyData         = "data"
	keyShader       = "shader"
	keyPathEffect   = "pathEffect"
	keyMaskFilter   = "maskFilter"
	keyXfermode     = "xfermode"
	keyBackdrop     = "backdrop"
	keyColorFilter  = "colorfilter"
	keyImageFilter  = "imagefilter"
	keyTypeface     = "typeface"
	keyImage        = "image"
	keyBitmap       = "bitmap"
	keySrc          = "src"
	keyDst          = "dst"
	keyCenter       = "center"
	keyStrict       = "strict"
	keyDescription  = "description"
	keyX            = "x"
	keyY            = "y"
	keyRuns         = "runs"
	keyPositions    = "positions"
	keyFont         = "font"
	keyFlags        = "flags"
	keyPicture      = "picture"
	keyCommands     = "commands"
	keyRestore      = "restore"
	keyCubics       = "cubics"
	keyTexCoords    = "texCoords"
	keyIndices      = "indices"
)

// regionPlaceholder is written in place of region contents, which have no
// wire form.
const regionPlaceholder = "<unimplemented>"

// encodeBytes returns the wire form of a binary payload.
func encodeBytes(b []byte) any {
	return base64.StdEncoding.EncodeToString(b)
}

// decoder reads fields from one wire object. The first failure is kept in
// err and every later read returns a zero value, so decode functions can
// read all fields and check once.
type decoder struct {
	obj map[string]any
	err error
}

func newDecoder(obj map[string]any) *decoder {
	return &decoder{obj: obj}
}

// failf records a malformed-input error unless one is already recorded.
func (d *decoder) failf(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...)
	}
}

// invariantf records an invalid-enumeration error.
func (d *decoder) invariantf(format string, args ...any) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
	}
}

// fail records err unless an error is already recorded.
func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) has(key string) bool {
	_, ok := d.obj[key]
	return ok
}

// field returns the raw value of a required field.
func (d *decoder) field(key string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	v, ok := d.obj[key]
	if !ok {
		d.failf("missing %q", key)
	}
	return v, ok
}

func (d *decoder) number(key string) float64 {
	v, ok := d.field(key)
	if !ok {
		return 0
	}
	return d.asNumber(v, key)
}

func (d *decoder) optNumber(key string, def float64) float64 {
	if !d.has(key) {
		return def
	}
	return d.number(key)
}

func (d *decoder) flag(key string) bool {
	if !d.has(key) || d.err != nil {
		return false
	}
	b, ok := d.obj[key].(bool)
	if !ok {
		d.failf("%q is not a boolean", key)
	}
	return b
}

func (d *decoder) str(key string) string {
	v, ok := d.field(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.failf("%q is not a string", key)
	}
	return s
}

func (d *decoder) object(key string) map[string]any {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	return d.asObject(v, key)
}

func (d *decoder) list(key string) []any {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	return d.asList(v, key, -1)
}

// bytes reads a binary payload written by encodeBytes. The legacy form, a
// list of 0-255 integers, is also accepted.
func (d *decoder) bytes(key string) []byte {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	switch b := v.(type) {
	case string:
		out, err := base64.StdEncoding.DecodeString(b)
		if err != nil {
			d.failf("%q: %v", key, err)
		}
		return out
	case []any:
		out := make([]byte, len(b))
		for i, e := range b {
			n := d.asNumber(e, key)
			if n < 0 || n > 255 || n != math.Trunc(n) {
				d.failf("%q[%d] = %v is not a byte", key, i, n)
				return nil
			}
			out[i] = byte(n)
		}
		return out
	default:
		d.failf("%q is not binary data", key)
		return nil
	}
}

func (d *decoder) asNumber(v any, key string) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			d.failf("%q: %v", key, err)
		}
		return f
	default:
		d.failf("%q: %T is not a number", key, v)
		return 0
	}
}

func (d *decoder) asObject(v any, key string) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		d.failf("%q is not an object", key)
	}
	return m
}

// asList returns v as a list. n >= 0 requires exactly n elements.
func (d *decoder) asList(v any, key string, n int) []any {
	l, ok := v.([]any)
	if !ok {
		d.failf("%q is not a list", key)
		return nil
	}
	if n >= 0 && len(l) != n {
		d.failf("%q has %d elements, want %d", key, len(l), n)
		return nil
	}
	return l
}

// sub returns a decoder for a nested object whose errors propagate to d.
func (d *decoder) sub(obj map[string]any) *decoder {
	return &decoder{obj: obj, err: d.err}
}

// join copies a nested decoder's error back into d.
func (d *decoder) join(s *decoder) {
	d.fail(s.err)
}
