package render

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downscale resamples src into a new size x size RGBA image using the
// Catmull-Rom kernel, which averages over the source footprint when shrinking.
func Downscale(src image.Image, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("scale: invalid size %d", size)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
