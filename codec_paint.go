package debugger

import (
	"github.com/gogpu/gg-debugger/effect"
	"github.com/gogpu/gg-debugger/flatten"
	"github.com/gogpu/gg-debugger/paint"
)

// EncodePaint returns the wire form of p. Attributes equal to their
// defaults are omitted, so paint.New() encodes as an empty object.
//
// Dash path effects and blur mask filters use the compact "dashing" and
// "blur" forms; every other effect goes through the flatten bridge.
func EncodePaint(p paint.Paint, opts ...EncodeOption) map[string]any {
	return encodePaint(&p, newEncodeConfig(opts))
}

func encodePaint(p *paint.Paint, cfg *encodeConfig) map[string]any {
	out := make(map[string]any)
	if p.Color != paint.DefaultColor {
		out[keyColor] = EncodeColor(p.Color)
	}
	if p.Style != paint.StyleFill {
		out[keyStyle] = p.Style.String()
	}
	if p.StrokeWidth != 0 {
		out[keyStrokeWidth] = p.StrokeWidth
	}
	if p.StrokeMiter != paint.DefaultMiterLimit {
		out[keyStrokeMiter] = p.StrokeMiter
	}
	if p.Cap != paint.DefaultCap {
		out[keyCap] = p.Cap.String()
	}
	if p.Join != paint.DefaultJoin {
		out[keyJoin] = p.Join.String()
	}
	if p.AntiAlias {
		out[keyAntiAlias] = true
	}
	if p.TextAlign != paint.AlignLeft {
		out[keyTextAlign] = p.TextAlign.String()
	}
	if p.TextSize != paint.DefaultTextSize {
		out[keyTextSize] = p.TextSize
	}
	if p.TextScaleX != paint.DefaultTextScaleX {
		out[keyTextScaleX] = p.TextScaleX
	}
	if p.TextSkewX != paint.DefaultTextSkewX {
		out[keyTextSkewX] = p.TextSkewX
	}
	if p.TextEncoding != paint.EncodingUTF8 {
		out[keyTextEncoding] = p.TextEncoding.String()
	}

	if p.Shader != nil {
		out[keyShader] = encodeFlattenable(p.Shader, cfg)
	}
	if p.PathEffect != nil {
		if dash, ok := p.PathEffect.AsDash(); ok {
			intervals := make([]any, len(dash.Intervals))
			for i, v := range dash.Intervals {
				intervals[i] = v
			}
			out[keyDashing] = map[string]any{keyIntervals: intervals, keyPhase: dash.Phase}
		} else {
			out[keyPathEffect] = encodeFlattenable(p.PathEffect, cfg)
		}
	}
	if p.MaskFilter != nil {
		if blur, ok := p.MaskFilter.AsBlur(); ok {
			out[keyBlur] = map[string]any{
				keySigma:   blur.Sigma,
				keyStyle:   blur.Style.String(),
				keyQuality: blur.Quality.String(),
			}
		} else {
			out[keyMaskFilter] = encodeFlattenable(p.MaskFilter, cfg)
		}
	}
	if p.ColorFilter != nil {
		out[keyColorFilter] = encodeFlattenable(p.ColorFilter, cfg)
	}
	if p.Xfermode != nil {
		out[keyXfermode] = encodeFlattenable(p.Xfermode, cfg)
	}
	if p.ImageFilter != nil {
		out[keyImageFilter] = encodeFlattenable(p.ImageFilter, cfg)
	}
	if p.Typeface != nil && cfg.binaries {
		out[keyTypeface] = map[string]any{keyData: encodeBytes(p.Typeface.Data())}
	}
	return out
}

// DecodePaint rebuilds a paint from its wire form. Absent attributes keep
// their defaults.
func DecodePaint(obj map[string]any) (paint.Paint, error) {
	d := newDecoder(map[string]any{keyPaint: obj})
	p := d.paint(keyPaint)
	return p, d.err
}

// paint reads a paint field. An absent field yields the default paint.
func (d *decoder) paint(key string) paint.Paint {
	if !d.has(key) {
		return paint.New()
	}
	v, _ := d.field(key)
	return d.asPaint(v, key)
}

// optPaint returns nil when key is absent.
func (d *decoder) optPaint(key string) *paint.Paint {
	if !d.has(key) {
		return nil
	}
	p := d.paint(key)
	return &p
}

func (d *decoder) asPaint(v any, key string) paint.Paint {
	p := paint.New()
	obj := d.asObject(v, key)
	if obj == nil {
		return p
	}
	sd := d.sub(obj)
	defer d.join(sd)

	if sd.has(keyColor) {
		p.Color = sd.color(keyColor)
	}
	if sd.has(keyStyle) {
		p.Style = parseEnum(sd, keyStyle, paint.ParseStyle)
	}
	p.StrokeWidth = sd.optNumber(keyStrokeWidth, p.StrokeWidth)
	p.StrokeMiter = sd.optNumber(keyStrokeMiter, p.StrokeMiter)
	if sd.has(keyCap) {
		p.Cap = parseEnum(sd, keyCap, paint.ParseCap)
	}
	if sd.has(keyJoin) {
		p.Join = parseEnum(sd, keyJoin, paint.ParseJoin)
	}
	p.AntiAlias = sd.flag(keyAntiAlias)
	if sd.has(keyTextAlign) {
		p.TextAlign = parseEnum(sd, keyTextAlign, paint.ParseAlign)
	}
	p.TextSize = sd.optNumber(keyTextSize, p.TextSize)
	p.TextScaleX = sd.optNumber(keyTextScaleX, p.TextScaleX)
	p.TextSkewX = sd.optNumber(keyTextSkewX, p.TextSkewX)
	if sd.has(keyTextEncoding) {
		p.TextEncoding = parseEnum(sd, keyTextEncoding, paint.ParseTextEncoding)
	}

	if f := sd.effect(keyShader); f != nil {
		p.Shader = asEffect[paint.Shader](f, keyShader)
	}
	if sd.has(keyDashing) {
		p.PathEffect = sd.dashing(keyDashing)
	} else if f := sd.effect(keyPathEffect); f != nil {
		p.PathEffect = asEffect[paint.PathEffect](f, keyPathEffect)
	}
	if sd.has(keyBlur) {
		p.MaskFilter = sd.blur(keyBlur)
	} else if f := sd.effect(keyMaskFilter); f != nil {
		p.MaskFilter = asEffect[paint.MaskFilter](f, keyMaskFilter)
	}
	if f := sd.effect(keyColorFilter); f != nil {
		p.ColorFilter = asEffect[paint.ColorFilter](f, keyColorFilter)
	}
	if f := sd.effect(keyXfermode); f != nil {
		p.Xfermode = asEffect[paint.Xfermode](f, keyXfermode)
	}
	if f := sd.effect(keyImageFilter); f != nil {
		p.ImageFilter = asEffect[paint.ImageFilter](f, keyImageFilter)
	}
	if sd.has(keyTypeface) {
		p.Typeface = sd.typeface(keyTypeface)
	}
	return p
}

// parseEnum reads a closed-enumeration name. Unknown names are invariant
// violations.
func parseEnum[T any](d *decoder, key string, parse func(string) (T, bool)) T {
	s := d.str(key)
	v, ok := parse(s)
	if d.err == nil && !ok {
		d.invariantf("unknown %s %q", key, s)
	}
	return v
}

// asEffect narrows a decoded effect to the interface the field requires.
// An effect of the wrong kind is dropped with a warning.
func asEffect[T paint.Effect](f flatten.Flattenable, key string) T {
	e, ok := f.(T)
	if !ok {
		Logger().Warn("debugger: effect has wrong kind for field", "field", key, "name", f.TypeName())
	}
	return e
}

func (d *decoder) dashing(key string) paint.PathEffect {
	sd := d.sub(d.object(key))
	defer d.join(sd)

	intervals := sd.numbers(keyIntervals)
	phase := sd.number(keyPhase)
	if sd.err != nil {
		return nil
	}
	e := effect.NewDashPathEffect(intervals, phase)
	if e == nil {
		sd.failf("invalid dash intervals %v", intervals)
		return nil
	}
	return e
}

func (d *decoder) blur(key string) paint.MaskFilter {
	sd := d.sub(d.object(key))
	defer d.join(sd)

	sigma := sd.number(keySigma)
	style := parseEnum(sd, keyStyle, paint.ParseBlurStyle)
	quality := parseEnum(sd, keyQuality, paint.ParseBlurQuality)
	if sd.err != nil {
		return nil
	}
	f := effect.NewBlurMaskFilter(sigma, style, quality)
	if f == nil {
		sd.failf("invalid blur sigma %v", sigma)
		return nil
	}
	return f
}

// typeface loads font bytes. A typeface that fails to parse is dropped
// with a warning; the rest of the paint still applies.
func (d *decoder) typeface(key string) *paint.Typeface {
	sd := d.sub(d.object(key))
	if !sd.has(keyData) {
		d.join(sd)
		Logger().Debug("debugger: typeface without data dropped", "field", key)
		return nil
	}
	data := sd.bytes(keyData)
	d.join(sd)
	if d.err != nil {
		return nil
	}
	tf, err := paint.NewTypeface(data)
	if err != nil {
		Logger().Warn("debugger: typeface dropped", "err", err)
		return nil
	}
	return tf
}
