package paint

// Style selects whether geometry is filled, stroked, or both.
type Style uint8

const (
	StyleFill Style = iota
	StyleStroke
	StyleStrokeAndFill
)

var styleNames = [...]string{
	StyleFill:          "fill",
	StyleStroke:        "stroke",
	StyleStrokeAndFill: "strokeAndFill",
}

func (s Style) String() string { return enumName(styleNames[:], int(s)) }

// ParseStyle maps a name produced by Style.String back to the style.
func ParseStyle(s string) (Style, bool) {
	i, ok := enumIndex(styleNames[:], s)
	return Style(i), ok
}

// Cap is the shape of stroke end points.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

var capNames = [...]string{
	CapButt:   "butt",
	CapRound:  "round",
	CapSquare: "square",
}

func (c Cap) String() string { return enumName(capNames[:], int(c)) }

// ParseCap maps a name produced by Cap.String back to the cap.
func ParseCap(s string) (Cap, bool) {
	i, ok := enumIndex(capNames[:], s)
	return Cap(i), ok
}

// Join is the shape of stroke corners.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

var joinNames = [...]string{
	JoinMiter: "miter",
	JoinRound: "round",
	JoinBevel: "bevel",
}

func (j Join) String() string { return enumName(joinNames[:], int(j)) }

// ParseJoin maps a name produced by Join.String back to the join.
func ParseJoin(s string) (Join, bool) {
	i, ok := enumIndex(joinNames[:], s)
	return Join(i), ok
}

// Align positions text relative to its origin.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

func (a Align) String() string { return enumName(alignNames[:], int(a)) }

// ParseAlign maps a name produced by Align.String back to the alignment.
func ParseAlign(s string) (Align, bool) {
	i, ok := enumIndex(alignNames[:], s)
	return Align(i), ok
}

// TextEncoding describes how the bytes of a text run are interpreted.
type TextEncoding uint8

const (
	EncodingUTF8 TextEncoding = iota
	EncodingUTF16
	EncodingUTF32
	EncodingGlyphID
)

var encodingNames = [...]string{
	EncodingUTF8:    "utf8",
	EncodingUTF16:   "utf16",
	EncodingUTF32:   "utf32",
	EncodingGlyphID: "glyphId",
}

func (e TextEncoding) String() string { return enumName(encodingNames[:], int(e)) }

// ParseTextEncoding maps a name produced by TextEncoding.String back to the encoding.
func ParseTextEncoding(s string) (TextEncoding, bool) {
	i, ok := enumIndex(encodingNames[:], s)
	return TextEncoding(i), ok
}

// BlendMode composites a source color over a destination.
type BlendMode uint8

const (
	BlendClear BlendMode = iota
	BlendSrc
	BlendDst
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcATop
	BlendDstATop
	BlendXor
	BlendPlus
	BlendModulate
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendNames = [...]string{
	"clear", "src", "dst", "srcOver", "dstOver", "srcIn", "dstIn",
	"srcOut", "dstOut", "srcATop", "dstATop", "xor", "plus", "modulate",
	"screen", "overlay", "darken", "lighten", "colorDodge", "colorBurn",
	"hardLight", "softLight", "difference", "exclusion", "multiply",
	"hue", "saturation", "color", "luminosity",
}

func (b BlendMode) String() string { return enumName(blendNames[:], int(b)) }

// ParseBlendMode maps a name produced by BlendMode.String back to the mode.
func ParseBlendMode(s string) (BlendMode, bool) {
	i, ok := enumIndex(blendNames[:], s)
	return BlendMode(i), ok
}

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return "Unknown"
}

func enumIndex(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}
