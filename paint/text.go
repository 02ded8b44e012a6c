package paint

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ErrBadText is returned when a text payload is not valid for its encoding.
var ErrBadText = errors.New("paint: malformed text")

func textCodec(enc TextEncoding) encoding.Encoding {
	switch enc {
	case EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF32:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	default:
		return nil
	}
}

// DecodeText converts a text payload in the paint's encoding to UTF-8.
// Glyph-id payloads cannot be converted and return ErrBadText.
func (p *Paint) DecodeText(b []byte) (string, error) {
	switch p.TextEncoding {
	case EncodingUTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid utf8", ErrBadText)
		}
		return string(b), nil
	case EncodingGlyphID:
		return "", fmt.Errorf("%w: glyph ids have no text form", ErrBadText)
	}
	out, err := textCodec(p.TextEncoding).NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadText, err)
	}
	return string(out), nil
}

// EncodeText converts UTF-8 text to a payload in the paint's encoding.
func (p *Paint) EncodeText(s string) ([]byte, error) {
	switch p.TextEncoding {
	case EncodingUTF8:
		return []byte(s), nil
	case EncodingGlyphID:
		if p.Typeface == nil {
			return nil, fmt.Errorf("%w: glyph encoding needs a typeface", ErrBadText)
		}
		return GlyphsToBytes(p.Typeface.Glyphs(s)), nil
	}
	out, err := textCodec(p.TextEncoding).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadText, err)
	}
	return out, nil
}

// CountText returns the number of glyphs the payload draws: one per code
// point for character encodings, one per id for glyph encoding.
func (p *Paint) CountText(b []byte) int {
	switch p.TextEncoding {
	case EncodingUTF8:
		return utf8.RuneCount(b)
	case EncodingUTF16:
		n := 0
		for i := 0; i+1 < len(b); i += 2 {
			u := binary.LittleEndian.Uint16(b[i:])
			// Low surrogates continue the previous code point.
			if u < 0xDC00 || u > 0xDFFF {
				n++
			}
		}
		return n
	case EncodingUTF32:
		return len(b) / 4
	default:
		return len(b) / 2
	}
}

// Glyphs maps each rune of s to a glyph id.
func (tf *Typeface) Glyphs(s string) []uint16 {
	ids := make([]uint16, 0, len(s))
	for _, r := range s {
		ids = append(ids, tf.GlyphIndex(r))
	}
	return ids
}

// GlyphsToBytes packs glyph ids as little-endian 16-bit values.
func GlyphsToBytes(ids []uint16) []byte {
	b := make([]byte, 0, len(ids)*2)
	for _, id := range ids {
		b = binary.LittleEndian.AppendUint16(b, id)
	}
	return b
}

// BytesToGlyphs unpacks little-endian 16-bit glyph ids. A trailing odd byte
// is ignored.
func BytesToGlyphs(b []byte) []uint16 {
	ids := make([]uint16, len(b)/2)
	for i := range ids {
		ids[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return ids
}
