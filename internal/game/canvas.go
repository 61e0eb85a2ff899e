package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/keywheel/internal/fonts"
	"github.com/iburimskiy/keywheel/internal/render"
)

// whiteSubImage is the source texture for solid-colored triangles.
var whiteSubImage *ebiten.Image

func solidTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type state struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	fontSize  float64
	fontBold  bool
}

// screenCanvas adapts the ebiten screen image to render.Canvas. Coordinates
// are scaled to device pixels before they reach the vector path.
type screenCanvas struct {
	dst   *ebiten.Image
	vp    render.Viewport
	scale float64

	path  vector.Path
	cur   state
	stack []state

	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Canvas = (*screenCanvas)(nil)

func newScreenCanvas() (*screenCanvas, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.TTF(false)))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.TTF(true)))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &screenCanvas{
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

// bind points the canvas at the frame's screen image.
func (c *screenCanvas) bind(dst *ebiten.Image, vp render.Viewport) {
	c.dst = dst
	c.vp = vp
}

func (c *screenCanvas) Viewport() render.Viewport { return c.vp }

// Resize does not reallocate: ebiten sizes the screen from Layout. It only
// checks that the two agree and resets the transform.
func (c *screenCanvas) Resize(width, height int) error {
	b := c.dst.Bounds()
	if b.Dx() != width || b.Dy() != height {
		render.Logger().Debug("screen size differs from layout",
			"screen", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
			"layout", fmt.Sprintf("%dx%d", width, height))
	}
	c.scale = 1
	return nil
}

func (c *screenCanvas) Scale(s float64) { c.scale *= s }

func (c *screenCanvas) Clear(col color.Color) { c.dst.Fill(col) }

func (c *screenCanvas) Save() { c.stack = append(c.stack, c.cur) }

func (c *screenCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *screenCanvas) BeginPath() { c.path = vector.Path{} }

func (c *screenCanvas) MoveTo(x, y float64) {
	c.path.MoveTo(float32(x*c.scale), float32(y*c.scale))
}

func (c *screenCanvas) LineTo(x, y float64) {
	c.path.LineTo(float32(x*c.scale), float32(y*c.scale))
}

func (c *screenCanvas) Arc(cx, cy, r, angle0, angle1 float64) {
	c.path.Arc(float32(cx*c.scale), float32(cy*c.scale), float32(r*c.scale),
		float32(angle0), float32(angle1), vector.Clockwise)
}

func (c *screenCanvas) ClosePath() { c.path.Close() }

func (c *screenCanvas) Stroke() {
	op := &vector.StrokeOptions{
		Width:    float32(c.cur.lineWidth * c.scale),
		LineJoin: vector.LineJoinRound,
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	c.drawTriangles(c.cur.stroke)
}

func (c *screenCanvas) Fill() {
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawTriangles(c.cur.fill)
}

func (c *screenCanvas) drawTriangles(col color.Color) {
	r, g, b, a := vertexColor(col)
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(c.vertices, c.indices, solidTexture(), op)
}

func (c *screenCanvas) SetStrokeColor(col color.Color) { c.cur.stroke = col }
func (c *screenCanvas) SetFillColor(col color.Color)   { c.cur.fill = col }
func (c *screenCanvas) SetLineWidth(w float64)         { c.cur.lineWidth = w }

func (c *screenCanvas) SetFont(size float64, bold bool) {
	c.cur.fontSize = size
	c.cur.fontBold = bold
}

func (c *screenCanvas) FillText(s string, x, y float64) {
	size := c.cur.fontSize * c.scale
	if size <= 0 {
		return
	}
	src := c.regular
	if c.cur.fontBold {
		src = c.bold
	}
	face := &text.GoTextFace{Source: src, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*c.scale, y*c.scale)
	op.ColorScale.ScaleWithColor(c.cur.fill)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, face, op)
}
