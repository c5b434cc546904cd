package app

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/ark-lens/icongen/internal/config"
	"github.com/ark-lens/icongen/internal/export"
	"github.com/ark-lens/icongen/internal/icon"
	"github.com/ark-lens/icongen/internal/render"
)

// Previewer displays a finished icon somewhere other than disk.
type Previewer interface {
	Show(img image.Image) error
}

type App struct {
	Config  config.Config
	Logger  Logger
	Out     io.Writer
	Preview Previewer
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}, Out: os.Stdout}
}

type output struct {
	path string
	img  image.Image
}

// Run draws the icon, writes the native and scaled PNGs and reports each
// saved file on Out. The first I/O error aborts the run; files already
// written are left in place.
func (app *App) Run() error {
	canvas := Render(app.Logger)

	native := app.Config.OutputPath()
	scaled, err := render.Downscale(canvas.Image(), app.Config.ScaledSize)
	if err != nil {
		return err
	}
	outputs := []output{
		{path: native, img: canvas.Image()},
		{path: export.SizedPath(native, app.Config.ScaledSize), img: scaled},
	}

	for _, o := range outputs {
		if err := export.WritePNG(o.path, o.img); err != nil {
			app.Logger.Errorf("export", "write %s failed: %v", o.path, err)
			return err
		}
		app.Logger.Infof("export", "wrote %s", o.path)
	}
	for _, o := range outputs {
		b := o.img.Bounds()
		fmt.Fprintf(app.Out, "Icon saved: %s (%dx%d)\n", o.path, b.Dx(), b.Dy())
	}

	if app.Preview != nil {
		if err := app.Preview.Show(canvas.Image()); err != nil {
			app.Logger.Errorf("fb", "preview failed: %v", err)
		}
	}
	return nil
}

// Render draws every icon layer onto a fresh transparent canvas.
func Render(logger Logger) *render.Canvas {
	if logger == nil {
		logger = NoopLogger{}
	}
	canvas := render.NewCanvas(icon.Size, icon.Size)
	for _, layer := range icon.Layers() {
		layer.Draw(canvas)
		logger.Infof("render", "layer %s drawn", layer.Name)
	}
	return canvas
}
