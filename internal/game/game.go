// Package game runs the key wheel in an ebiten window.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/keywheel/internal/config"
	"github.com/iburimskiy/keywheel/internal/render"
)

// Game renders the wheel on the first frame and again after every change of
// the window size or device scale. The screen is not cleared between frames,
// so the last render stays visible.
type Game struct {
	theme  config.Theme
	canvas *screenCanvas

	vp    render.Viewport
	dirty bool

	renders int

	// deviceScale reports the monitor's device pixel ratio.
	deviceScale func() float64
}

func NewGame(theme config.Theme) (*Game, error) {
	c, err := newScreenCanvas()
	if err != nil {
		return nil, err
	}
	return &Game{
		theme:  theme,
		canvas: c,
		deviceScale: func() float64 {
			return ebiten.Monitor().DeviceScaleFactor()
		},
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false
	g.renders++
	g.canvas.bind(screen, g.vp)
	if err := render.Render(g.canvas, g.theme); err != nil {
		if errors.Is(err, render.ErrEmptyViewport) {
			return
		}
		render.Logger().Error("render failed", "err", err)
	}
}

// Layout sizes the screen in device pixels so the wheel is drawn at full
// resolution on high density displays, and marks the wheel for redrawing
// when the viewport changed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := render.Viewport{
		Width:      float64(outsideWidth),
		Height:     float64(outsideHeight),
		PixelRatio: g.deviceScale(),
	}
	if vp != g.vp {
		render.Logger().Debug("viewport changed",
			"width", vp.Width, "height", vp.Height, "dpr", vp.PixelRatio)
		g.vp = vp
		g.dirty = true
	}
	w, h := vp.PixelSize()
	return clampPositive(w), clampPositive(h)
}

// Renders counts the render passes so far.
func (g *Game) Renders() int { return g.renders }

// Run opens the window and blocks until it is closed.
func Run(theme config.Theme, width, height int) error {
	g, err := NewGame(theme)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	render.Logger().Info("window opened", "width", width, "height", height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
