package debugger

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/effect"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

func testTypeface(t *testing.T) *paint.Typeface {
	t.Helper()
	tf, err := paint.NewTypeface(goregular.TTF)
	require.NoError(t, err)
	return tf
}

// fullPaint sets every attribute away from its default.
func fullPaint(t *testing.T) paint.Paint {
	t.Helper()
	p := paint.New()
	p.Color = paint.ARGB(200, 10, 20, 30)
	p.Style = paint.StyleStrokeAndFill
	p.StrokeWidth = 3
	p.StrokeMiter = 7
	p.Cap = paint.CapRound
	p.Join = paint.JoinRound
	p.AntiAlias = true
	p.TextAlign = paint.AlignCenter
	p.TextSize = 18
	p.TextScaleX = 1.5
	p.TextSkewX = -0.25
	p.Shader = effect.NewLinearGradient(geom.Pt(0, 0), geom.Pt(10, 0),
		[]effect.Stop{{Offset: 0, Color: paint.Red}, {Offset: 1, Color: paint.Blue}}, effect.TileRepeat)
	p.PathEffect = effect.NewDashPathEffect([]float64{4, 2}, 1)
	p.MaskFilter = effect.NewBlurMaskFilter(2, paint.BlurOuter, paint.BlurHigh)
	p.ColorFilter = effect.NewModeColorFilter(paint.Green, paint.BlendSrcOver)
	p.Xfermode = effect.NewModeXfermode(paint.BlendMultiply)
	p.ImageFilter = effect.NewBlurImageFilter(1, 2, nil)
	p.Typeface = testTypeface(t)
	return p
}

func glyphPaint(t *testing.T) paint.Paint {
	t.Helper()
	p := paint.New()
	p.TextEncoding = paint.EncodingGlyphID
	p.Typeface = testTypeface(t)
	return p
}

func testBitmap() *bitmap.Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 80), B: 128, A: 255})
		}
	}
	return bitmap.New(img)
}

func testPath() *geom.Path {
	p := geom.NewPath()
	p.SetFillType(geom.FillEvenOdd)
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadTo(15, 5, 10, 10)
	p.ConicTo(5, 15, 0, 10, 0.707)
	p.CubicTo(-5, 8, -5, 2, 0, 0)
	p.Close()
	return p
}

func testBlob(t *testing.T) *TextBlob {
	t.Helper()
	font := paint.New()
	font.TextEncoding = paint.EncodingGlyphID
	font.TextSize = 14
	font.Typeface = testTypeface(t)
	blob, err := NewTextBlob([]TextRun{
		{Glyphs: []uint16{36, 37}, Positioning: PositionFull, Positions: []float64{0, 0, 10, 1}, Offset: geom.Pt(1, 2), Font: font},
		{Glyphs: []uint16{38}, Positioning: PositionHorizontal, Positions: []float64{5}, Offset: geom.Pt(0, 20), Font: font},
		{Glyphs: []uint16{39, 40}, Offset: geom.Pt(0, 40), Font: font},
	})
	require.NoError(t, err)
	return blob
}

// sampleCommands returns one command of every kind that has a wire form.
func sampleCommands(t *testing.T) []Command {
	t.Helper()
	full := fullPaint(t)
	plain := paint.New()
	bm := testBitmap()
	img := bitmap.NewImage(testBitmap())
	src := geom.LTRB(1, 0, 3, 2)
	m := geom.Affine(2, 0, 5, 0, 3, 6)
	bounds := geom.LTRB(0, 0, 50, 40)
	rr := geom.RRectXY(geom.LTRB(0, 0, 30, 20), 4, 3)
	inner := geom.RRectXY(geom.LTRB(5, 5, 25, 15), 2, 2)
	glyphs := glyphPaint(t)
	text := paint.GlyphsToBytes([]uint16{36, 37, 38})
	pic := NewPicture(bounds, []Command{NewDrawRect(geom.LTRB(1, 1, 9, 9), plain)})
	colors := [4]paint.Color{paint.Red, paint.Green, paint.Blue, paint.White}
	texs := [4]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	var cubics [12]geom.Point
	for i := range cubics {
		cubics[i] = geom.Pt(float64(i), float64(i%3))
	}

	return []Command{
		NewSave(),
		NewSaveLayer(SaveLayerRec{Bounds: &bounds, Paint: &full, Backdrop: effect.NewBlurImageFilter(3, 3, nil), Flags: SaveLayerInitWithPrevious}),
		NewSaveLayer(SaveLayerRec{}),
		NewRestore(),
		NewSetMatrix(m),
		NewConcat(geom.Rotate(0.5)),
		NewBeginDrawPicture(pic, &m, &full),
		NewBeginDrawPicture(pic, nil, nil),
		NewEndDrawPicture(true),
		NewClipPath(testPath(), geom.OpDifference, true),
		NewClipRect(geom.LTRB(1, 2, 3, 4), geom.OpIntersect, false),
		NewClipRRect(rr, geom.OpReplace, true),
		NewDrawClear(paint.ARGB(128, 1, 2, 3)),
		NewDrawPaint(full),
		NewDrawRect(geom.LTRB(1, 2, 3, 4), full),
		NewDrawOval(geom.LTRB(0, 0, 20, 10), plain),
		NewDrawRRect(rr, full),
		NewDrawDRRect(rr, inner, plain),
		NewDrawPath(testPath(), full),
		NewDrawPoints(PointsModePolygon, []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 0}}, plain),
		NewDrawBitmap(bm, 3, 4, nil),
		NewDrawBitmap(bm, 3, 4, &full),
		NewDrawBitmapNine(bm, geom.IRect{Left: 1, Top: 1, Right: 3, Bottom: 2}, geom.LTRB(0, 0, 40, 30), &plain),
		NewDrawBitmapRect(bm, &src, geom.LTRB(0, 0, 20, 20), nil, ConstraintStrict),
		NewDrawBitmapRect(bm, nil, geom.LTRB(0, 0, 20, 20), &full, ConstraintFast),
		NewDrawImage(img, -1, 2, nil),
		NewDrawImageRect(img, &src, geom.LTRB(5, 5, 25, 25), &plain, ConstraintStrict),
		NewDrawText([]byte("héllo"), 10, 20, full),
		NewDrawText(text, 1, 2, glyphs),
		NewDrawPosText([]byte("abc"), []geom.Point{{X: 0, Y: 1}, {X: 5, Y: 1}, {X: 10, Y: 2}}, plain),
		NewDrawPosTextH(text, []float64{0, 7, 14}, 9, glyphs),
		NewDrawTextOnPath([]byte("on a path"), testPath(), &m, plain),
		NewDrawTextOnPath([]byte("no matrix"), testPath(), nil, plain),
		NewDrawTextBlob(testBlob(t), 3, 4, full),
		NewDrawVertices(&Vertices{
			Mode:      VertexTriangleFan,
			Positions: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
			TexCoords: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			Colors:    []paint.Color{paint.Red, paint.Green, paint.Blue, paint.White},
			Indices:   []uint16{0, 1, 2, 3},
		}, effect.NewModeXfermode(paint.BlendScreen), plain),
		NewDrawVertices(&Vertices{
			Mode:      VertexTriangles,
			Positions: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		}, nil, full),
		NewDrawPatch(&Patch{Cubics: cubics, Colors: &colors, TexCoords: &texs}, effect.NewModeXfermode(paint.BlendOverlay), plain),
		NewDrawPatch(&Patch{Cubics: cubics}, nil, full),
	}
}

// wireRoundTrip encodes cmd to JSON text and decodes it back.
func wireRoundTrip(t *testing.T, cmd Command, opts ...EncodeOption) (Command, error) {
	t.Helper()
	data, err := json.Marshal(EncodeCommand(cmd, opts...))
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var obj map[string]any
	require.NoError(t, dec.Decode(&obj))
	return DecodeCommand(obj)
}

func execute(cmd Command) []string {
	c := newMockCanvas()
	cmd.Execute(c)
	return c.calls
}

func TestCommandRoundTrip(t *testing.T) {
	for _, cmd := range sampleCommands(t) {
		t.Run(cmd.OpType().String(), func(t *testing.T) {
			got, err := wireRoundTrip(t, cmd, WithBinaries(true))
			require.NoError(t, err)

			assert.Equal(t, cmd.OpType(), got.OpType())
			assert.Equal(t, cmd.Info(), got.Info())
			assert.Equal(t, execute(cmd), execute(got))

			want, err := json.Marshal(EncodeCommand(cmd, WithBinaries(true)))
			require.NoError(t, err)
			again, err := json.Marshal(EncodeCommand(got, WithBinaries(true)))
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(again))
		})
	}
}

func TestEveryOpHasSample(t *testing.T) {
	seen := make(map[OpType]bool)
	for _, cmd := range sampleCommands(t) {
		seen[cmd.OpType()] = true
	}
	seen[OpClipRegion] = true // no wire form
	for _, op := range OpTypes() {
		if !seen[op] {
			t.Errorf("no sample command for %v", op)
		}
	}
}

func TestEveryOpHasFactory(t *testing.T) {
	for _, op := range OpTypes() {
		if _, ok := lookupFactory(op.String()); !ok {
			t.Errorf("lookupFactory(%q) not found", op)
		}
	}
	if n := len(factoryTable()); n != len(OpTypes()) {
		t.Errorf("len(factoryTable()) = %d, want %d", n, len(OpTypes()))
	}
}

func TestNestedPictureDecode(t *testing.T) {
	inner := NewPicture(geom.LTRB(0, 0, 5, 5), []Command{NewDrawRect(geom.LTRB(0, 0, 5, 5), paint.New())})
	outer := NewPicture(geom.LTRB(0, 0, 10, 10), []Command{NewBeginDrawPicture(inner, nil, nil), NewEndDrawPicture(false)})

	got, err := wireRoundTrip(t, NewBeginDrawPicture(outer, nil, nil))
	require.NoError(t, err)
	begin, ok := got.(*BeginDrawPictureCommand)
	require.True(t, ok)
	require.Len(t, begin.Picture.Commands, 2)
	nested, ok := begin.Picture.Commands[0].(*BeginDrawPictureCommand)
	require.True(t, ok)
	require.Len(t, nested.Picture.Commands, 1)
	assert.Equal(t, OpDrawRect, nested.Picture.Commands[0].OpType())
}

func TestExecuteCallsCanvas(t *testing.T) {
	m := geom.Translate(4, 5)
	p := paint.New()
	pic := NewPicture(geom.LTRB(0, 0, 10, 10), nil)

	tests := []struct {
		name string
		cmd  Command
		want []string
	}{
		{"save", NewSave(), []string{"Save"}},
		{"restore", NewRestore(), []string{"Restore"}},
		{"clear", NewDrawClear(paint.Red), []string{"Clear"}},
		{"rect", NewDrawRect(geom.LTRB(0, 0, 1, 1), p), []string{"DrawRect"}},
		{"picture with paint", NewBeginDrawPicture(pic, &m, &p), []string{"SaveLayer", "Concat"}},
		{"picture with matrix", NewBeginDrawPicture(pic, &m, nil), []string{"Save", "Concat"}},
		{"bare picture", NewBeginDrawPicture(pic, nil, nil), nil},
		{"end with restore", NewEndDrawPicture(true), []string{"Restore"}},
		{"end without restore", NewEndDrawPicture(false), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newMockCanvas()
			tt.cmd.Execute(c)
			got := c.names()
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetMatrixUserMatrix(t *testing.T) {
	cmd := NewSetMatrix(geom.Translate(10, 0))
	cmd.SetUserMatrix(geom.Scale(2, 2))

	c := newMockCanvas()
	cmd.Execute(c)
	want := newMockCanvas()
	want.SetMatrix(geom.Scale(2, 2).Concat(geom.Translate(10, 0)))
	assert.Equal(t, want.calls, c.calls)
}

func TestSaveLayerVizExecute(t *testing.T) {
	bounds := geom.LTRB(0, 0, 10, 10)
	layer := paint.New()
	cmd := NewSaveLayer(SaveLayerRec{Bounds: &bounds, Paint: &layer})

	c := newMockCanvas()
	cmd.VizExecute(c)
	assert.Equal(t, []string{"Save"}, c.names())

	c = newMockCanvas()
	cmd.Execute(c)
	assert.Equal(t, []string{"SaveLayer"}, c.names())
}

func TestVisibility(t *testing.T) {
	cmd := NewDrawRect(geom.LTRB(0, 0, 1, 1), paint.New())
	assert.True(t, cmd.Visible())
	_, has := EncodeCommand(cmd)[keyVisible]
	assert.False(t, has, "visible commands carry no visible field")

	cmd.SetVisible(false)
	assert.Equal(t, false, EncodeCommand(cmd)[keyVisible])

	got, err := wireRoundTrip(t, cmd)
	require.NoError(t, err)
	assert.False(t, got.Visible())
}

func TestInfoIsACopy(t *testing.T) {
	cmd := NewClipRect(geom.LTRB(1, 2, 3, 4), geom.OpIntersect, true)
	info := cmd.Info()
	require.Equal(t, []string{"Rect: (L: 1, T: 2, R: 3, B: 4)", "Op: intersect", "AntiAlias: true"}, info)
	info[0] = "changed"
	assert.Equal(t, "Rect: (L: 1, T: 2, R: 3, B: 4)", cmd.Info()[0])
}

func TestRestoreInfo(t *testing.T) {
	assert.Equal(t, []string{noParameters}, NewRestore().Info())
}

func TestConstructorsCopyPayload(t *testing.T) {
	path := testPath()
	pts := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	text := []byte("abc")
	m := geom.Translate(1, 1)

	drawPath := NewDrawPath(path, paint.New())
	points := NewDrawPoints(PointsModeLines, pts, paint.New())
	drawText := NewDrawText(text, 0, 0, paint.New())
	onPath := NewDrawTextOnPath(text, path, &m, paint.New())

	before := [][]string{execute(drawPath), execute(points), execute(drawText), execute(onPath)}

	path.LineTo(100, 100)
	pts[0] = geom.Pt(9, 9)
	text[0] = 'z'
	m = geom.Scale(3, 3)

	after := [][]string{execute(drawPath), execute(points), execute(drawText), execute(onPath)}
	assert.Equal(t, before, after)
}
