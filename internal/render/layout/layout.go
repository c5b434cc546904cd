package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// InsetX shrinks rect by paddingPx on the left and right sides only.
func InsetX(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	if 2*paddingPx > rect.Dx() {
		mid := rect.Min.X + rect.Dx()/2
		return image.Rect(mid, rect.Min.Y, mid, rect.Max.Y)
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y, rect.Max.X-paddingPx, rect.Max.Y)
}

// AnchorTopLeft returns a rectangle of size (widthPx,heightPx) placed at the top-left of rect.
// Sizes are clamped to [0, rect size].
func AnchorTopLeft(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+widthPx, rect.Min.Y+heightPx)
}

// Rows stacks count rows of heightPx inside rect. The first row starts
// offsetPx below rect's top edge and each next row starts stepPx lower.
// Rows span rect's full width.
func Rows(rect image.Rectangle, offsetPx, stepPx, heightPx, count int) []image.Rectangle {
	rect = Normalize(rect)
	rows := make([]image.Rectangle, 0, count)
	for i := 0; i < count; i++ {
		y := rect.Min.Y + offsetPx + i*stepPx
		rows = append(rows, image.Rect(rect.Min.X, y, rect.Max.X, y+heightPx))
	}
	return rows
}

// CutCorner returns the outline of rect with its top-right corner cut off
// by a 45 degree edge of cutPx on each side, clockwise from the top-left.
// cutPx is clamped so the cut never exceeds either side.
func CutCorner(rect image.Rectangle, cutPx int) []image.Point {
	rect = Normalize(rect)
	cutPx = clamp(cutPx, 0, min(rect.Dx(), rect.Dy()))
	return []image.Point{
		rect.Min,
		{X: rect.Max.X - cutPx, Y: rect.Min.Y},
		{X: rect.Max.X, Y: rect.Min.Y + cutPx},
		rect.Max,
		{X: rect.Min.X, Y: rect.Max.Y},
	}
}

// NotchCorner returns the outline of rect with a cutPx square removed from
// its top-right corner, clockwise from the top-left. Every edge is axis-aligned.
// cutPx is clamped like CutCorner.
func NotchCorner(rect image.Rectangle, cutPx int) []image.Point {
	rect = Normalize(rect)
	cutPx = clamp(cutPx, 0, min(rect.Dx(), rect.Dy()))
	return []image.Point{
		rect.Min,
		{X: rect.Max.X - cutPx, Y: rect.Min.Y},
		{X: rect.Max.X - cutPx, Y: rect.Min.Y + cutPx},
		{X: rect.Max.X, Y: rect.Min.Y + cutPx},
		rect.Max,
		{X: rect.Min.X, Y: rect.Max.Y},
	}
}

// Percent returns pct percent of px, truncated toward zero.
func Percent(px, pct int) int { return px * pct / 100 }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
