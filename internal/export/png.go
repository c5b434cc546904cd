// Package export encodes rendered icons and writes them to disk.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// encoder is used for every output file.
var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// WritePNG encodes img losslessly to path, truncating any existing file.
// The parent directory must already exist.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := encoder.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}

// SizedPath derives the path of a size variant: icon.png becomes icon-128.png.
func SizedPath(path string, size int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), size, ext)
}
