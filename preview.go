package debugger

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/gg-debugger/bitmap"
	"github.com/gogpu/gg-debugger/geom"
	"github.com/gogpu/gg-debugger/paint"
)

// previewInset is the fraction of the canvas a preview fills.
const previewInset = 0.9

// checkerSize is the tile size of the transparency checkerboard drawn
// under bitmap previews.
const checkerSize = 8

// RenderPreview draws the isolated preview of cmd on c. It reports false
// when cmd has no preview or nothing could be drawn.
func RenderPreview(cmd Command, c Canvas) bool {
	p, ok := cmd.(Previewer)
	if !ok {
		return false
	}
	return p.Render(c)
}

// fitToBounds maps bounds onto the center of the canvas, scaling uniformly
// by the larger bounds dimension.
func fitToBounds(c Canvas, bounds geom.Rect) bool {
	w, h := c.DeviceSize()
	extent := max(bounds.Width(), bounds.Height())
	if w <= 0 || h <= 0 || extent <= 0 {
		return false
	}
	center := bounds.Center()
	m := geom.Translate(float64(w)/2, float64(h)/2).
		Concat(geom.Scale(previewInset*float64(w)/extent, previewInset*float64(h)/extent)).
		Concat(geom.Translate(-center.X, -center.Y))
	c.Concat(m)
	return true
}

func previewStroke() paint.Paint {
	p := paint.New()
	p.Color = paint.Black
	p.Style = paint.StyleStroke
	return p
}

func renderPath(c Canvas, path *geom.Path) bool {
	bounds := path.Bounds()
	c.Clear(paint.White)
	c.Save()
	defer c.Restore()
	if !fitToBounds(c, bounds) {
		return false
	}
	c.DrawPath(path, previewStroke())
	return true
}

func renderRRect(c Canvas, rr geom.RRect) bool {
	c.Clear(paint.White)
	c.Save()
	defer c.Restore()
	if !fitToBounds(c, rr.Bounds()) {
		return false
	}
	c.DrawRRect(rr, previewStroke())
	return true
}

// renderBitmap draws bm over a checkerboard, scaled to the canvas with its
// aspect ratio kept, and outlines src in red when given.
func renderBitmap(c Canvas, bm *bitmap.Bitmap, src *geom.Rect) bool {
	w, h := c.DeviceSize()
	bw, bh := float64(bm.Width()), float64(bm.Height())
	if w <= 2 || h <= 2 || bw <= 0 || bh <= 0 {
		return false
	}
	xScale := float64(w-2) / bw
	yScale := float64(h-2) / bh
	if bw > bh {
		yScale *= bh / bw
	} else {
		xScale *= bw / bh
	}
	dst := geom.LTRB(1, 1, xScale*bw+1, yScale*bh+1)

	c.Clear(paint.White)
	c.DrawBitmap(checkerboard(int(dst.Width()), int(dst.Height())), dst.Left, dst.Top, nil)
	c.DrawBitmapRect(bm, nil, dst, nil, ConstraintFast)

	if src != nil {
		r := geom.LTRB(
			src.Left*xScale+1, src.Top*yScale+1,
			src.Right*xScale+1, src.Bottom*yScale+1)
		p := previewStroke()
		p.Color = paint.Red
		c.DrawRect(r, p)
	}
	return true
}

func checkerboard(w, h int) *bitmap.Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	light := image.NewUniform(paint.LightGray.NRGBA())
	dark := image.NewUniform(paint.DarkGray.NRGBA())
	for y := 0; y < h; y += checkerSize {
		for x := 0; x < w; x += checkerSize {
			tile := light
			if (x/checkerSize+y/checkerSize)%2 == 1 {
				tile = dark
			}
			draw.Draw(img, image.Rect(x, y, x+checkerSize, y+checkerSize), tile, image.Point{}, draw.Src)
		}
	}
	return bitmap.New(img)
}
