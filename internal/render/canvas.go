package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is an anti-aliased RGBA raster implementing Drawer.
// Straight-edged polygons go through x/image/vector; curves and strokes go
// through rasterx. Both composite with draw.Over.
type Canvas struct {
	img     *image.RGBA
	poly    *vector.Rasterizer
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewCanvas allocates a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &Canvas{
		img:     img,
		poly:    vector.NewRasterizer(width, height),
		scanner: scanner,
		filler:  rasterx.NewFiller(width, height, scanner),
		stroker: rasterx.NewStroker(width, height, scanner),
	}
}

// Image returns the backing raster. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillPolygon(points []Point, col color.NRGBA) {
	if len(points) < 3 {
		return
	}
	w, h := c.Size()
	c.poly.Reset(w, h)
	c.poly.DrawOp = draw.Over
	c.poly.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		c.poly.LineTo(float32(p.X), float32(p.Y))
	}
	c.poly.ClosePath()
	c.poly.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) FillRoundRect(rect Rect, radius float64, col color.NRGBA) {
	if radius <= 0 {
		c.FillPolygon([]Point{rect.Min, {X: rect.Max.X, Y: rect.Min.Y}, rect.Max, {X: rect.Min.X, Y: rect.Max.Y}}, col)
		return
	}
	c.fill(col, func(p rasterx.Adder) {
		rasterx.AddRoundRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, radius, radius, 0, rasterx.RoundGap, p)
	})
}

func (c *Canvas) FillCircle(center Point, radius float64, col color.NRGBA) {
	c.fill(col, func(p rasterx.Adder) {
		rasterx.AddCircle(center.X, center.Y, radius, p)
	})
}

func (c *Canvas) FillEllipse(bounds Rect, col color.NRGBA) {
	mid := bounds.Center()
	c.fill(col, func(p rasterx.Adder) {
		rasterx.AddEllipse(mid.X, mid.Y, bounds.Dx()/2, bounds.Dy()/2, 0, p)
	})
}

func (c *Canvas) StrokeCircle(center Point, radius, width float64, col color.NRGBA) {
	c.stroke(col, width, func(p rasterx.Adder) {
		rasterx.AddCircle(center.X, center.Y, radius-width/2, p)
	})
}

func (c *Canvas) StrokeLine(from, to Point, width float64, col color.NRGBA) {
	c.stroke(col, width, func(p rasterx.Adder) {
		p.Start(rasterx.ToFixedP(from.X, from.Y))
		p.Line(rasterx.ToFixedP(to.X, to.Y))
		p.Stop(false)
	})
}

func (c *Canvas) fill(col color.NRGBA, path func(rasterx.Adder)) {
	c.filler.Clear()
	c.filler.SetColor(col)
	path(c.filler)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *Canvas) stroke(col color.NRGBA, width float64, path func(rasterx.Adder)) {
	c.stroker.Clear()
	c.stroker.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)
	c.stroker.SetColor(col)
	path(c.stroker)
	c.stroker.Draw()
	c.stroker.Clear()
}
