//go:build !js

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gogpu/gg"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/keywheel/internal/config"
	"github.com/iburimskiy/keywheel/internal/game"
	"github.com/iburimskiy/keywheel/internal/render"
	"github.com/iburimskiy/keywheel/internal/snapshot"
)

func main() {
	width := flag.Int("width", config.WindowWidth, "Window width, or image width with -png, in logical pixels.")
	height := flag.Int("height", config.WindowHeight, "Window height, or image height with -png, in logical pixels.")
	dpr := flag.Float64("dpr", 1, "Device pixel ratio used with -png.")
	pngOut := flag.String("png", "", "Render one frame to this PNG file instead of opening a window. Use - for standard output.")
	themePath := flag.String("theme", "", "YAML file overriding the default colors, line width and accidental style.")
	verbose := flag.Bool("v", false, "Log every render to standard error.")
	versionFlag := flag.Bool("version", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version())
		os.Exit(0)
	}

	logger := newLogger(*verbose)
	render.SetLogger(logger)
	gg.SetLogger(logger)

	windowed := *pngOut == ""
	theme, err := config.LoadTheme(*themePath)
	if err != nil {
		fail(err, windowed)
	}

	if !windowed {
		vp := render.Viewport{Width: float64(*width), Height: float64(*height), PixelRatio: *dpr}
		if err := snapshot.SavePNG(*pngOut, vp, theme); err != nil {
			fail(err, false)
		}
		return
	}

	if err := game.Run(theme, *width, *height); err != nil {
		fail(err, true)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// fail reports err and exits. Window sessions usually have no terminal, so
// they also get a dialog.
func fail(err error, dialog bool) {
	fmt.Fprintf(os.Stderr, "keywheel: %v\n", err)
	if dialog {
		_ = zenity.Error(err.Error(), zenity.Title("Key Wheel"), zenity.ErrorIcon)
	}
	os.Exit(1)
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

func printUsage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Key wheel: draws the circle of fifths with the major scale of every key\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
