package render

import (
	"image"
	"image/color"
)

// Logger is the component-tagged logger used across icongen.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Drawer is the set of vector primitives artwork layers draw with.
// Coordinates are in canvas pixels with the origin at the top-left corner.
// Every fill and stroke composites over existing content.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillRoundRect(rect Rect, radius float64, c color.NRGBA)
	FillPolygon(points []Point, c color.NRGBA)
	FillCircle(center Point, radius float64, c color.NRGBA)
	FillEllipse(bounds Rect, c color.NRGBA)

	// StrokeCircle outlines the circle with the stroke lying inside radius.
	StrokeCircle(center Point, radius, width float64, c color.NRGBA)
	// StrokeLine draws a segment with flat (butt) ends.
	StrokeLine(from, to Point, width float64, c color.NRGBA)
}

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y} from integer coordinates.
func Pt(x, y int) Point { return Point{X: float64(x), Y: float64(y)} }

// Rect is an axis-aligned rectangle; Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Point
}

// RectFrom converts an integer rectangle.
func RectFrom(r image.Rectangle) Rect {
	return Rect{Min: Pt(r.Min.X, r.Min.Y), Max: Pt(r.Max.X, r.Max.Y)}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}
