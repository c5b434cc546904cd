// Package icon holds the Ark Lens icon artwork: a document page with a
// folded corner and text lines, overlaid by a magnifying lens.
//
// All geometry is authored against a 256x256 canvas and drawn as an ordered
// list of layers; later layers composite over earlier ones.
package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/ark-lens/icongen/internal/render"
	"github.com/ark-lens/icongen/internal/render/layout"
)

// Size is the width and height of the native icon.
const Size = 256

const (
	backgroundRadius = 40

	pageX, pageY = 56, 40
	pageW, pageH = 110, 140
	foldPx       = 24

	linePaddingPx = 14
	lineOffsetPx  = 36
	lineStepPx    = 18
	lineHeightPx  = 6
	lineRadius    = 3

	lensCX, lensCY = 172, 178
	lensRadius     = 48
	lensStroke     = 7
	handleGapPx    = 2
	handleLengthPx = 28
	handleAngleDeg = 45
	handleCapPx    = 5
)

// LineWidthsPct are the text line widths as percent of the page's inner width.
var LineWidthsPct = []int{75, 55, 65, 45, 60}

var (
	BackgroundColor = color.NRGBA{R: 24, G: 24, B: 32, A: 255}
	PageColor       = color.NRGBA{R: 220, G: 220, B: 230, A: 255}
	FoldColor       = color.NRGBA{R: 180, G: 180, B: 195, A: 255}
	LineColor       = color.NRGBA{R: 100, G: 100, B: 120, A: 255}
	GlassColor      = color.NRGBA{R: 80, G: 200, B: 220, A: 90}
	RingColor       = color.NRGBA{R: 140, G: 180, B: 250, A: 255}
	HighlightColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 50}
)

// Layer is one named drawing step.
type Layer struct {
	Name string
	Draw func(d render.Drawer)
}

// Layers returns the drawing sequence in paint order.
func Layers() []Layer {
	return []Layer{
		{Name: "background", Draw: drawBackground},
		{Name: "page", Draw: drawPage},
		{Name: "fold", Draw: drawFold},
		{Name: "lines", Draw: drawLines},
		{Name: "glass", Draw: drawGlass},
		{Name: "ring", Draw: drawRing},
		{Name: "handle", Draw: drawHandle},
		{Name: "highlight", Draw: drawHighlight},
	}
}

// PageRect is the bounding box of the document page.
func PageRect() image.Rectangle {
	return image.Rect(pageX, pageY, pageX+pageW, pageY+pageH)
}

// PageOutline is the page polygon with its top-right corner folded away.
func PageOutline() []image.Point {
	return layout.CutCorner(PageRect(), foldPx)
}

// PageBody is the part of the page not covered by the fold. Together with
// FoldTriangle it tiles PageOutline, and the only diagonal edge belongs to
// the fold, so the seam is rasterized once.
func PageBody() []image.Point {
	return layout.NotchCorner(PageRect(), foldPx)
}

// FoldTriangle is the folded flap. Its hypotenuse is the page's cut edge.
func FoldTriangle() []image.Point {
	outline := PageOutline()
	top, right := outline[1], outline[2]
	return []image.Point{top, right, {X: top.X, Y: right.Y}}
}

// ContentLines returns the text line rectangles, top to bottom.
func ContentLines() []image.Rectangle {
	inner := layout.InsetX(PageRect(), linePaddingPx)
	rows := layout.Rows(inner, lineOffsetPx, lineStepPx, lineHeightPx, len(LineWidthsPct))
	for i, pct := range LineWidthsPct {
		rows[i] = layout.AnchorTopLeft(rows[i], layout.Percent(inner.Dx(), pct), lineHeightPx)
	}
	return rows
}

// LensCenter is the center of the lens glass.
func LensCenter() image.Point { return image.Pt(lensCX, lensCY) }

// Handle returns the handle segment. Offsets are truncated to whole pixels
// per axis, so start and end stay on the pixel grid.
func Handle() (start, end image.Point) {
	rad := handleAngleDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	start = image.Pt(
		lensCX+int((lensRadius+handleGapPx)*cos),
		lensCY+int((lensRadius+handleGapPx)*sin),
	)
	end = image.Pt(
		start.X+int(handleLengthPx*cos),
		start.Y+int(handleLengthPx*sin),
	)
	return start, end
}

// HighlightRect is the bounding box of the specular highlight.
func HighlightRect() image.Rectangle {
	return image.Rect(lensCX-20, lensCY-28, lensCX+4, lensCY-8)
}

func drawBackground(d render.Drawer) {
	w, h := d.Size()
	d.FillRoundRect(render.RectFrom(image.Rect(0, 0, w, h)), backgroundRadius, BackgroundColor)
}

func drawPage(d render.Drawer) { d.FillPolygon(points(PageBody()), PageColor) }

func drawFold(d render.Drawer) { d.FillPolygon(points(FoldTriangle()), FoldColor) }

func drawLines(d render.Drawer) {
	for _, r := range ContentLines() {
		d.FillRoundRect(render.RectFrom(r), lineRadius, LineColor)
	}
}

func drawGlass(d render.Drawer) {
	d.FillCircle(point(LensCenter()), lensRadius, GlassColor)
}

func drawRing(d render.Drawer) {
	d.StrokeCircle(point(LensCenter()), lensRadius, lensStroke, RingColor)
}

func drawHandle(d render.Drawer) {
	start, end := Handle()
	d.StrokeLine(point(start), point(end), lensStroke+2, RingColor)
	d.FillCircle(point(end), handleCapPx, RingColor)
}

func drawHighlight(d render.Drawer) {
	d.FillEllipse(render.RectFrom(HighlightRect()), HighlightColor)
}

func point(p image.Point) render.Point { return render.Pt(p.X, p.Y) }

func points(ps []image.Point) []render.Point {
	out := make([]render.Point, len(ps))
	for i, p := range ps {
		out[i] = point(p)
	}
	return out
}
