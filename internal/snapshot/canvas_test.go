package snapshot

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/keywheel/internal/config"
	"github.com/iburimskiy/keywheel/internal/render"
)

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 2 && d(a.G, b.G) <= 2 && d(a.B, b.B) <= 2 && d(a.A, b.A) <= 2
}

func renderOrFatal(t *testing.T, vp render.Viewport) *Canvas {
	t.Helper()
	c, err := Render(vp, config.DefaultTheme())
	if err != nil {
		t.Fatalf("Render(%+v): %v", vp, err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRenderSizes(t *testing.T) {
	tests := []struct {
		name         string
		vp           render.Viewport
		wantW, wantH int
	}{
		{"square", render.Viewport{Width: 400, Height: 400, PixelRatio: 1}, 400, 400},
		{"tall", render.Viewport{Width: 300, Height: 600, PixelRatio: 1}, 300, 600},
		{"hidpi", render.Viewport{Width: 400, Height: 400, PixelRatio: 2}, 800, 800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := renderOrFatal(t, tt.vp)
			b := c.Image().Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("image = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPixels(t *testing.T) {
	theme := config.DefaultTheme()
	tests := []struct {
		name string
		vp   render.Viewport
		x, y int
		want config.Color
	}{
		{"corner is background", render.Viewport{Width: 400, Height: 400, PixelRatio: 1}, 2, 2, theme.Background},
		{"center is dead zone", render.Viewport{Width: 400, Height: 400, PixelRatio: 1}, 200, 200, theme.DeadZone},
		{"hidpi center", render.Viewport{Width: 400, Height: 400, PixelRatio: 2}, 400, 400, theme.DeadZone},
		{"tall center", render.Viewport{Width: 300, Height: 600, PixelRatio: 1}, 150, 300, theme.DeadZone},
		{"tall above circle", render.Viewport{Width: 300, Height: 600, PixelRatio: 1}, 150, 100, theme.Background},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := renderOrFatal(t, tt.vp)
			got := nrgba(c.Image().At(tt.x, tt.y))
			if !near(got, color.NRGBA(tt.want)) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderDrawsSomething(t *testing.T) {
	c := renderOrFatal(t, render.Viewport{Width: 200, Height: 200, PixelRatio: 1})
	bg := color.NRGBA(config.DefaultTheme().Background)
	img := c.Image()
	var ink int
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if !near(nrgba(img.At(x, y)), bg) {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Fatal("image is blank")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	vp := render.Viewport{Width: 240, Height: 180, PixelRatio: 2}
	c, err := NewCanvas(vp)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()

	var first, second bytes.Buffer
	if err := render.Render(c, config.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	if err := c.EncodePNG(&first); err != nil {
		t.Fatal(err)
	}
	if err := render.Render(c, config.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	if err := c.EncodePNG(&second); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("second render differs from the first")
	}
}

func TestRenderAfterResize(t *testing.T) {
	c, err := NewCanvas(render.Viewport{Width: 100, Height: 100, PixelRatio: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = c.Close() }()
	if err := render.Render(c, config.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	c.SetViewport(render.Viewport{Width: 300, Height: 200, PixelRatio: 1})
	if err := render.Render(c, config.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	if b := c.Image().Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("image = %dx%d after resize, want 300x200", b.Dx(), b.Dy())
	}
	got := nrgba(c.Image().At(150, 100))
	if want := color.NRGBA(config.DefaultTheme().DeadZone); !near(got, want) {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestRenderEmptyViewport(t *testing.T) {
	_, err := Render(render.Viewport{Width: 0, Height: 100, PixelRatio: 1}, config.DefaultTheme())
	if !errors.Is(err, render.ErrEmptyViewport) {
		t.Fatalf("err = %v, want ErrEmptyViewport", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.png")
	vp := render.Viewport{Width: 120, Height: 80, PixelRatio: 1}
	if err := SavePNG(path, vp, config.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, vp, config.DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 120, 80) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}
