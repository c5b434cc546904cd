// Command icongen draws the Ark Lens application icon and writes it as a
// 256x256 PNG plus a downscaled copy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ark-lens/icongen/internal/app"
	"github.com/ark-lens/icongen/internal/config"
	"github.com/ark-lens/icongen/internal/render"
	"github.com/ark-lens/icongen/internal/stdio"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit status: 0 on success, 1 when writing the
// icons fails, 2 for invalid configuration.
func run(args []string) int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Best-effort: a failed redirect leaves output on the console.
	if err := stdio.Redirect(cfg.StdioLog); err != nil {
		fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		fileLogger, closer := app.NewRotatingFileLogger(cfg.DebugLog)
		defer closer.Close()
		logger = fileLogger
		logger.Infof("main", "debug logging enabled, out=%s scaled=%d", cfg.OutDir, cfg.ScaledSize)
	}

	a := app.New(cfg)
	a.Logger = logger
	if cfg.PreviewFB != "" {
		preview := render.NewFBPreview(cfg.PreviewFB)
		preview.Logger = logger
		a.Preview = preview
	}

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "icongen:", err)
		return 1
	}
	return 0
}
