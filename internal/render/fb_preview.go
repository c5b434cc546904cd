package render

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// FBPreview shows a rendered icon on a Linux framebuffer device.
type FBPreview struct {
	Device string
	Logger Logger
}

func NewFBPreview(device string) *FBPreview { return &FBPreview{Device: device} }

// Show clears the framebuffer to black and blits img centered on it.
func (p *FBPreview) Show(img image.Image) error {
	dev, err := fb.Open(p.Device)
	if err != nil {
		return err
	}
	defer dev.Close()

	bounds := dev.Bounds()
	if p.Logger != nil {
		p.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", p.Device, bounds.Dx(), bounds.Dy())
	}
	blitCentered(dev, bounds, img)
	return nil
}

type pixelSetter interface {
	Set(x, y int, c color.Color)
}

// blitCentered fills bounds with black and composites img over it at the center.
// Pixels of img falling outside bounds are dropped.
func blitCentered(dst pixelSetter, bounds image.Rectangle, img image.Image) {
	src := img.Bounds()
	offX := bounds.Min.X + (bounds.Dx()-src.Dx())/2
	offY := bounds.Min.Y + (bounds.Dy()-src.Dy())/2
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.RGBA{A: 0xFF}
			sx, sy := src.Min.X+x-offX, src.Min.Y+y-offY
			if (image.Point{X: sx, Y: sy}).In(src) {
				px = overBlack(img.At(sx, sy))
			}
			dst.Set(x, y, px)
		}
	}
}

// overBlack flattens a color onto an opaque black backdrop.
func overBlack(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF}
}
