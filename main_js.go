//go:build js && wasm

package main

import (
	"log/slog"
	"os"

	"github.com/iburimskiy/keywheel/internal/config"
	"github.com/iburimskiy/keywheel/internal/render"
	"github.com/iburimskiy/keywheel/internal/webcanvas"
)

func main() {
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	webcanvas.Run(config.DefaultTheme())
}
