package app

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ark-lens/icongen/internal/config"
	"github.com/ark-lens/icongen/internal/icon"
	"github.com/ark-lens/icongen/internal/render"
)

func testConfig(dir string) config.Config {
	return config.Config{OutDir: dir, Name: "icon.png", ScaledSize: 128}
}

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}

type stubPreview struct {
	shown []image.Image
	err   error
}

func (p *stubPreview) Show(img image.Image) error {
	p.shown = append(p.shown, img)
	return p.err
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func TestRunWritesBothIcons(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	a := New(testConfig(dir))
	a.Out = &out
	if err := a.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	native := filepath.Join(dir, "icon.png")
	scaled := filepath.Join(dir, "icon-128.png")
	if b := decodeFile(t, native).Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("native bounds = %v", b)
	}
	if b := decodeFile(t, scaled).Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("scaled bounds = %v", b)
	}

	want := fmt.Sprintf("Icon saved: %s (256x256)\nIcon saved: %s (128x128)\n", native, scaled)
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestRunDeterministicAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	a := New(testConfig(dir))
	a.Out = &bytes.Buffer{}

	var runs [2][2][]byte
	for i := range runs {
		if err := a.Run(); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		for j, name := range []string{"icon.png", "icon-128.png"} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("read %s: %v", name, err)
			}
			runs[i][j] = data
		}
	}
	for j := range runs[0] {
		if !bytes.Equal(runs[0][j], runs[1][j]) {
			t.Errorf("output %d differs between runs", j)
		}
	}
}

func TestRunMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	var out bytes.Buffer
	logger := &recordingLogger{}
	a := New(testConfig(dir))
	a.Out = &out
	a.Logger = logger

	err := a.Run()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
	if _, statErr := os.Stat(dir); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("output directory was created")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", out.String())
	}
	if len(logger.errors) != 1 {
		t.Errorf("errors logged = %v", logger.errors)
	}
}

func TestRunCustomScaledSize(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Name = "lens.png"
	cfg.ScaledSize = 64
	var out bytes.Buffer
	a := New(cfg)
	a.Out = &out
	if err := a.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if b := decodeFile(t, filepath.Join(dir, "lens-64.png")).Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("scaled bounds = %v", b)
	}
	if !strings.Contains(out.String(), "lens-64.png (64x64)") {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestRunPreview(t *testing.T) {
	dir := t.TempDir()
	preview := &stubPreview{err: errors.New("no framebuffer")}
	logger := &recordingLogger{}
	a := New(testConfig(dir))
	a.Out = &bytes.Buffer{}
	a.Logger = logger
	a.Preview = preview

	if err := a.Run(); err != nil {
		t.Fatalf("preview failure must not fail the run: %v", err)
	}
	if len(preview.shown) != 1 {
		t.Fatalf("preview shown %d times, want 1", len(preview.shown))
	}
	if b := preview.shown[0].Bounds(); b.Dx() != 256 {
		t.Errorf("preview got %v, want the native icon", b)
	}
	if len(logger.errors) != 1 || !strings.Contains(logger.errors[0], "no framebuffer") {
		t.Errorf("errors logged = %v", logger.errors)
	}
}

func TestRenderLogsLayers(t *testing.T) {
	logger := &recordingLogger{}
	Render(logger)
	want := []string{"background", "page", "fold", "lines", "glass", "ring", "handle", "highlight"}
	if len(logger.infos) != len(want) {
		t.Fatalf("infos = %v", logger.infos)
	}
	for i, name := range want {
		if logger.infos[i] != "render: layer "+name+" drawn" {
			t.Errorf("info %d = %q", i, logger.infos[i])
		}
	}
}

func TestBackgroundCornerCurves(t *testing.T) {
	const radius = 40.0
	// Pixels whose center lies within this distance of the curve may be
	// partially covered by anti-aliasing.
	const edge = 1.0

	c := render.NewCanvas(icon.Size, icon.Size)
	background := icon.Layers()[0]
	if background.Name != "background" {
		t.Fatalf("first layer = %q", background.Name)
	}
	background.Draw(c)
	img := c.Image()

	solid := color.RGBA{R: 24, G: 24, B: 32, A: 255}
	lo, hi := radius, float64(icon.Size)-radius
	var transparent, opaque int
	for y := 0; y < icon.Size; y++ {
		for x := 0; x < icon.Size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			cx, cy := math.Max(lo, math.Min(hi, px)), math.Max(lo, math.Min(hi, py))
			d := math.Hypot(px-cx, py-cy)
			got := img.RGBAAt(x, y)
			switch {
			case d > radius+edge:
				if got.A != 0 {
					t.Fatalf("pixel (%d,%d) outside corner curve alpha = %d, want 0", x, y, got.A)
				}
				transparent++
			case d < radius-edge:
				if got != solid {
					t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, solid)
				}
				opaque++
			}
		}
	}
	// Each corner leaves about 40*40 - pi*40*40/4 = 343 pixels outside the
	// curve; the edge band takes about 63 pixels per side of it.
	if transparent < 4*250 || opaque < icon.Size*icon.Size-2500 {
		t.Errorf("transparent=%d opaque=%d, scan did not cover the canvas", transparent, opaque)
	}
}

func TestRenderPixels(t *testing.T) {
	img := Render(nil).Image()

	// Page body and fold accent.
	if got := img.RGBAAt(60, 170); got.R != 220 || got.G != 220 || got.B != 230 {
		t.Errorf("page pixel = %v", got)
	}
	if got := img.RGBAAt(145, 60); got.R != 180 || got.G != 180 || got.B != 195 {
		t.Errorf("fold pixel = %v", got)
	}
	// Content line 1 sits 36px below the page top.
	if got := img.RGBAAt(80, 78); got.R != 100 || got.G != 100 || got.B != 120 {
		t.Errorf("content line pixel = %v", got)
	}

	// The lens center shows the glass blended over the background.
	c := img.RGBAAt(172, 178)
	if c.A != 255 {
		t.Fatalf("lens center alpha = %d", c.A)
	}
	if !(c.R > 24 && c.R < 80) || !(c.G > 24 && c.G < 200) || !(c.B > 32 && c.B < 220) {
		t.Errorf("lens center = %v, want strictly between background and glass", c)
	}

	// Ring at the right edge of the lens, handle midway along its length.
	if got := img.RGBAAt(172+45, 178); got.R != 140 || got.G != 180 || got.B != 250 {
		t.Errorf("ring pixel = %v", got)
	}
	if got := img.RGBAAt(216, 222); got.R != 140 || got.G != 180 || got.B != 250 {
		t.Errorf("handle pixel = %v", got)
	}
}
