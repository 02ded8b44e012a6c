package paint

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
)

// ErrInvalidTypeface is returned when font data cannot be parsed.
var ErrInvalidTypeface = errors.New("paint: invalid typeface")

// Typeface is an immutable font file shared between paints.
type Typeface struct {
	data   []byte
	family string

	once   sync.Once
	source *text.FontSource
	err    error
}

// NewTypeface validates data as an OpenType/TrueType font and wraps it.
// The typeface keeps its own copy of data.
func NewTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidTypeface)
	}
	if _, err := font.ParseTTF(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTypeface, err)
	}
	tf := &Typeface{data: bytes.Clone(data)}
	if src, err := tf.Source(); err == nil {
		tf.family = src.Name()
	}
	return tf, nil
}

// Data returns the font file bytes. Callers must not modify them.
func (tf *Typeface) Data() []byte { return tf.data }

// Family returns the family name, or "" when the font has none.
func (tf *Typeface) Family() string { return tf.family }

// Source returns the gg font source for rendering, parsing it on first use.
func (tf *Typeface) Source() (*text.FontSource, error) {
	tf.once.Do(func() {
		tf.source, tf.err = text.NewFontSource(tf.data)
	})
	return tf.source, tf.err
}

// GlyphIndex returns the glyph id for r, or 0 when the font lacks it.
func (tf *Typeface) GlyphIndex(r rune) uint16 {
	src, err := tf.Source()
	if err != nil {
		return 0
	}
	return src.Parsed().GlyphIndex(r)
}

// Advance returns the horizontal advance of glyph at the given size.
func (tf *Typeface) Advance(glyph uint16, size float64) float64 {
	src, err := tf.Source()
	if err != nil {
		return 0
	}
	return src.Parsed().GlyphAdvance(glyph, size)
}

func (tf *Typeface) String() string {
	if tf.family == "" {
		return fmt.Sprintf("Typeface(%d bytes)", len(tf.data))
	}
	return fmt.Sprintf("Typeface(%s, %d bytes)", tf.family, len(tf.data))
}
