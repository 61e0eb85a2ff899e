// Package snapshot renders the wheel off screen with the gogpu/gg software
// rasterizer and encodes the result as PNG.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/iburimskiy/keywheel/internal/config"
	"github.com/iburimskiy/keywheel/internal/fonts"
	"github.com/iburimskiy/keywheel/internal/render"
)

type state struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	fontSize  float64
	fontBold  bool
}

// Canvas adapts a gg.Context to render.Canvas. The logical to device scale
// is applied here rather than through the gg matrix, so paths, line widths
// and glyphs all scale the same way.
type Canvas struct {
	dc    *gg.Context
	vp    render.Viewport
	scale float64

	regular *text.FontSource
	bold    *text.FontSource

	cur   state
	stack []state
	err   error
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas creates an off screen canvas for the viewport. The backing
// buffer is allocated by the first render.
func NewCanvas(vp render.Viewport) (*Canvas, error) {
	regular, err := text.NewFontSource(fonts.TTF(false))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewFontSource(fonts.TTF(true))
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &Canvas{
		dc:      gg.NewContext(1, 1),
		vp:      vp,
		scale:   1,
		regular: regular,
		bold:    bold,
		cur: state{
			fill:      color.Black,
			stroke:    color.Black,
			lineWidth: 1,
			fontSize:  10,
		},
	}, nil
}

// Close releases the gg context and font sources.
func (c *Canvas) Close() error {
	_ = c.regular.Close()
	_ = c.bold.Close()
	return c.dc.Close()
}

// SetViewport changes the viewport used by the next render, the headless
// equivalent of a window resize.
func (c *Canvas) SetViewport(vp render.Viewport) { c.vp = vp }

// Err returns the first rasterization error since the last Resize.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *Canvas) Viewport() render.Viewport { return c.vp }

func (c *Canvas) Resize(width, height int) error {
	if err := c.dc.Resize(width, height); err != nil {
		return err
	}
	c.scale = 1
	c.err = nil
	return nil
}

func (c *Canvas) Scale(s float64) { c.scale *= s }

func (c *Canvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.cur) }

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) BeginPath() { c.dc.ClearPath() }

func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x*c.scale, y*c.scale) }

func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x*c.scale, y*c.scale) }

func (c *Canvas) Arc(cx, cy, r, angle0, angle1 float64) {
	c.dc.DrawArc(cx*c.scale, cy*c.scale, r*c.scale, angle0, angle1)
}

func (c *Canvas) ClosePath() { c.dc.ClosePath() }

func (c *Canvas) Stroke() {
	c.dc.SetColor(c.cur.stroke)
	c.dc.SetLineWidth(c.cur.lineWidth * c.scale)
	c.keep(c.dc.StrokePreserve())
}

func (c *Canvas) Fill() {
	c.dc.SetColor(c.cur.fill)
	c.keep(c.dc.FillPreserve())
}

func (c *Canvas) SetStrokeColor(col color.Color) { c.cur.stroke = col }
func (c *Canvas) SetFillColor(col color.Color)   { c.cur.fill = col }
func (c *Canvas) SetLineWidth(w float64)         { c.cur.lineWidth = w }

func (c *Canvas) SetFont(size float64, bold bool) {
	c.cur.fontSize = size
	c.cur.fontBold = bold
}

func (c *Canvas) FillText(s string, x, y float64) {
	size := c.cur.fontSize * c.scale
	if size <= 0 {
		return
	}
	src := c.regular
	if c.cur.fontBold {
		src = c.bold
	}
	c.dc.SetFont(src.Face(size))
	c.dc.SetColor(c.cur.fill)
	c.dc.DrawStringAnchored(s, x*c.scale, y*c.scale, 0.5, 0.5)
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// Render draws one frame of the wheel for vp and returns the canvas holding
// it. The caller closes the canvas.
func Render(vp render.Viewport, theme config.Theme) (*Canvas, error) {
	c, err := NewCanvas(vp)
	if err != nil {
		return nil, err
	}
	if err := render.Render(c, theme); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	return c, nil
}

// WritePNG renders vp and writes the PNG to w.
func WritePNG(w io.Writer, vp render.Viewport, theme config.Theme) error {
	c, err := Render(vp, theme)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	return c.EncodePNG(w)
}

// SavePNG renders vp into the file at path, or to stdout when path is "-".
func SavePNG(path string, vp render.Viewport, theme config.Theme) error {
	if path == "-" {
		return WritePNG(os.Stdout, vp, theme)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, vp, theme); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	render.Logger().Info("png written", "path", path, "width", vp.Width, "height", vp.Height, "dpr", vp.PixelRatio)
	return nil
}
