//go:build js && wasm

// Package webcanvas binds the wheel renderer to a browser <canvas> element.
package webcanvas

import (
	"errors"
	"fmt"
	"image/color"
	"syscall/js"

	"github.com/iburimskiy/keywheel/internal/config"
	"github.com/iburimskiy/keywheel/internal/render"
)

// Canvas adapts a CanvasRenderingContext2D to render.Canvas. The browser
// applies the transform itself, so coordinates pass through unchanged.
type Canvas struct {
	win js.Value
	el  js.Value
	ctx js.Value
}

var _ render.Canvas = (*Canvas)(nil)

// Attach creates a full-window canvas and appends it to the document body.
func Attach() *Canvas {
	win := js.Global()
	doc := win.Get("document")
	body := doc.Get("body")
	body.Get("style").Set("margin", "0")

	el := doc.Call("createElement", "canvas")
	style := el.Get("style")
	style.Set("display", "block")
	style.Set("width", "100vw")
	style.Set("height", "100vh")
	body.Call("appendChild", el)

	return &Canvas{win: win, el: el, ctx: el.Call("getContext", "2d")}
}

func (c *Canvas) Viewport() render.Viewport {
	return render.Viewport{
		Width:      c.el.Get("clientWidth").Float(),
		Height:     c.el.Get("clientHeight").Float(),
		PixelRatio: c.win.Get("devicePixelRatio").Float(),
	}
}

// Resize sets the backing store size. Assigning width or height also resets
// the context state, including its transform.
func (c *Canvas) Resize(width, height int) error {
	c.el.Set("width", width)
	c.el.Set("height", height)
	c.ctx = c.el.Call("getContext", "2d")
	if c.ctx.IsNull() {
		return errors.New("2d context unavailable")
	}
	return nil
}

func (c *Canvas) Scale(s float64) { c.ctx.Call("scale", s, s) }

func (c *Canvas) Clear(col color.Color) {
	vp := c.Viewport()
	c.ctx.Call("clearRect", 0, 0, vp.Width, vp.Height)
	c.ctx.Call("save")
	c.ctx.Set("fillStyle", css(col))
	c.ctx.Call("fillRect", 0, 0, vp.Width, vp.Height)
	c.ctx.Call("restore")
}

func (c *Canvas) Save()               { c.ctx.Call("save") }
func (c *Canvas) Restore()            { c.ctx.Call("restore") }
func (c *Canvas) BeginPath()          { c.ctx.Call("beginPath") }
func (c *Canvas) MoveTo(x, y float64) { c.ctx.Call("moveTo", x, y) }
func (c *Canvas) LineTo(x, y float64) { c.ctx.Call("lineTo", x, y) }
func (c *Canvas) ClosePath()          { c.ctx.Call("closePath") }
func (c *Canvas) Stroke()             { c.ctx.Call("stroke") }
func (c *Canvas) Fill()               { c.ctx.Call("fill") }

func (c *Canvas) SetLineWidth(w float64) { c.ctx.Set("lineWidth", w) }

func (c *Canvas) Arc(cx, cy, r, angle0, angle1 float64) {
	c.ctx.Call("arc", cx, cy, r, angle0, angle1)
}

func (c *Canvas) SetStrokeColor(col color.Color) { c.ctx.Set("strokeStyle", css(col)) }
func (c *Canvas) SetFillColor(col color.Color)   { c.ctx.Set("fillStyle", css(col)) }

func (c *Canvas) SetFont(size float64, bold bool) {
	weight := 300
	if bold {
		weight = 800
	}
	c.ctx.Set("font", fmt.Sprintf("%d %gpx sans-serif", weight, size))
}

func (c *Canvas) FillText(s string, x, y float64) {
	c.ctx.Set("textAlign", "center")
	c.ctx.Set("textBaseline", "middle")
	c.ctx.Call("fillText", s, x, y)
}

func css(col color.Color) string {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", n.R, n.G, n.B, float64(n.A)/0xff)
}

// Run renders on load and on every resize, then blocks forever. The event
// callbacks are never released.
func Run(theme config.Theme) {
	var c *Canvas
	draw := func() {
		if err := render.Render(c, theme); err != nil {
			render.Logger().Warn("render failed", "err", err)
		}
	}
	win := js.Global()
	onResize := js.FuncOf(func(js.Value, []js.Value) any {
		draw()
		return nil
	})
	onLoad := js.FuncOf(func(js.Value, []js.Value) any {
		c = Attach()
		draw()
		win.Call("addEventListener", "resize", onResize)
		return nil
	})
	if win.Get("document").Get("readyState").String() == "complete" {
		onLoad.Invoke()
	} else {
		win.Call("addEventListener", "load", onLoad)
	}
	select {}
}
