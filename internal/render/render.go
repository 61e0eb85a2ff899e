// Package render draws the key wheel onto an immediate-mode 2D canvas.
//
// The canvas is the host's drawing surface: an ebiten window, a gogpu/gg
// pixmap or a browser <canvas>. Render is a pure function of the canvas
// viewport and the theme and redraws everything on each call, so hosts call
// it once on load and again after every resize.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/keywheel/internal/config"
	"github.com/iburimskiy/keywheel/internal/layout"
	"github.com/iburimskiy/keywheel/internal/theory"
)

// ErrEmptyViewport is returned when the viewport has no drawable area.
var ErrEmptyViewport = errors.New("empty viewport")

// Viewport is the logical (CSS pixel) size of a canvas and its device pixel
// ratio.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64
}

// PixelSize returns the backing buffer size for the viewport.
func (v Viewport) PixelSize() (int, int) {
	s := v.scale()
	return int(math.Round(v.Width * s)), int(math.Round(v.Height * s))
}

func (v Viewport) scale() float64 {
	if v.PixelRatio <= 0 {
		return 1
	}
	return v.PixelRatio
}

// Canvas is an immediate-mode 2D drawing context in the style of the HTML
// canvas API. Stroke and Fill do not consume the current path.
type Canvas interface {
	Viewport() Viewport

	// Resize reallocates the backing buffer and resets the transform.
	Resize(width, height int) error
	Scale(s float64)
	Clear(c color.Color)

	Save()
	Restore()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(cx, cy, r, angle0, angle1 float64)
	ClosePath()
	Stroke()
	Fill()

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)

	// SetFont selects the sans-serif face at size logical pixels.
	SetFont(size float64, bold bool)
	// FillText draws s centered horizontally and vertically on (x, y).
	FillText(s string, x, y float64)
}

// Render draws the full wheel on c. It returns ErrEmptyViewport, after
// clearing, when the viewport is too small to hold the wheel.
func Render(c Canvas, theme config.Theme) error {
	vp := c.Viewport()
	pw, ph := vp.PixelSize()
	if pw <= 0 || ph <= 0 {
		Logger().Warn("render skipped", "width", vp.Width, "height", vp.Height)
		return ErrEmptyViewport
	}
	if err := c.Resize(pw, ph); err != nil {
		return fmt.Errorf("resize canvas to %dx%d: %w", pw, ph, err)
	}
	c.Scale(vp.scale())
	c.Clear(theme.Background)

	cx := vp.Width / 2
	cy := vp.Height / 2
	r := math.Min(vp.Width, vp.Height)/2 - config.EdgeInset
	if r <= 0 {
		Logger().Warn("render skipped", "width", vp.Width, "height", vp.Height, "radius", r)
		return ErrEmptyViewport
	}
	Logger().Debug("render", "width", vp.Width, "height", vp.Height, "dpr", vp.scale(), "radius", r)

	cells := layout.Compute(r)

	c.SetStrokeColor(theme.Stroke)
	c.SetLineWidth(theme.LineWidth)

	drawCircle(c, cx, cy, r, theme.Fill)
	for row, cell := range cells[0] {
		var fill color.Color
		if row == config.DeadZoneRow {
			fill = theme.DeadZone
		}
		drawCircle(c, cx, cy, cell.RMin, fill)
	}

	inner := r / config.SpokeInnerDivisor
	for _, col := range cells {
		theta := col[0].ThetaMin
		c.BeginPath()
		c.MoveTo(cx+math.Cos(theta)*inner, cy+math.Sin(theta)*inner)
		c.LineTo(cx+math.Cos(theta)*r, cy+math.Sin(theta)*r)
		c.ClosePath()
		c.Stroke()
	}

	style, _ := theory.ParseAccidentals(theme.Accidentals)
	c.SetFillColor(theme.Text)
	for i, col := range cells {
		scale := theory.KeyForColumn(i)
		for row, cell := range col {
			c.SetFont(cell.Thickness()*config.FontScale, row == 0 || row == config.AccentRow)
			x, y := cell.Anchor(cx, cy)
			c.FillText(theory.Spell(scale[row], style), x, y)
		}
	}
	return nil
}

// drawCircle outlines a full circle, filling it first when fill is non-nil.
func drawCircle(c Canvas, cx, cy, r float64, fill color.Color) {
	c.Save()
	defer c.Restore()
	c.BeginPath()
	c.Arc(cx, cy, r, 0, 2*math.Pi)
	c.ClosePath()
	if fill != nil {
		c.SetFillColor(fill)
		c.Fill()
	}
	c.Stroke()
}
