package config

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	EnvOutDir     = "ICONGEN_OUT_DIR"
	EnvName       = "ICONGEN_NAME"
	EnvScaledSize = "ICONGEN_SCALED_SIZE"
	EnvPreviewFB  = "ICONGEN_PREVIEW_FB"
	EnvDebugLog   = "ICONGEN_DEBUG_LOG"
	EnvStdioLog   = "ICONGEN_STDIO_LOG"
)

// MaxScaledSize bounds the scaled variant; it may not exceed the native icon.
const MaxScaledSize = 256

// Config contains settings for one icongen run.
//
// Values come from the environment first; command-line flags registered
// with RegisterFlags override them.
type Config struct {
	OutDir     string `env:"ICONGEN_OUT_DIR" envDefault:"media"`
	Name       string `env:"ICONGEN_NAME" envDefault:"icon.png"`
	ScaledSize int    `env:"ICONGEN_SCALED_SIZE" envDefault:"128"`

	// PreviewFB is a framebuffer device to show the icon on; empty disables it.
	PreviewFB string `env:"ICONGEN_PREVIEW_FB"`

	Debug    bool
	DebugLog string `env:"ICONGEN_DEBUG_LOG" envDefault:"./icongen-debug.log"`
	StdioLog string `env:"ICONGEN_STDIO_LOG"`
}

// FromEnv loads a Config from the process environment.
func FromEnv() (Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds flags to cfg, using its current values as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directory the icons are written to (must exist); also configurable via "+EnvOutDir)
	fs.StringVar(&cfg.Name, "name", cfg.Name, "file name of the native-size icon; also configurable via "+EnvName)
	fs.IntVar(&cfg.ScaledSize, "scaled-size", cfg.ScaledSize, "width and height of the downscaled icon; also configurable via "+EnvScaledSize)
	fs.StringVar(&cfg.PreviewFB, "preview-fb", cfg.PreviewFB, "show the icon on this framebuffer device after saving; also configurable via "+EnvPreviewFB)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to the debug log file")
	fs.StringVar(&cfg.DebugLog, "debug-log", cfg.DebugLog, "debug log file path; also configurable via "+EnvDebugLog)
	fs.StringVar(&cfg.StdioLog, "stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+EnvStdioLog)
}

// Validate reports the first invalid setting.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.OutDir) == "" {
		return errors.New("output directory must not be empty")
	}
	if cfg.Name == "" || filepath.Base(cfg.Name) != cfg.Name {
		return fmt.Errorf("name must be a plain file name (got %q)", cfg.Name)
	}
	if !strings.EqualFold(filepath.Ext(cfg.Name), ".png") {
		return fmt.Errorf("name must end in .png (got %q)", cfg.Name)
	}
	if cfg.ScaledSize <= 0 || cfg.ScaledSize > MaxScaledSize {
		return fmt.Errorf("scaled size must be in 1..%d (got %d)", MaxScaledSize, cfg.ScaledSize)
	}
	return nil
}

// OutputPath is the path of the native-size icon.
func (cfg Config) OutputPath() string {
	return filepath.Join(cfg.OutDir, cfg.Name)
}
