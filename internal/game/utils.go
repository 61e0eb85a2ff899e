package game

import "image/color"

// vertexColor converts c to the straight-alpha float components ebiten
// vertices expect.
func vertexColor(c color.Color) (r, g, b, a float32) {
	if c == nil {
		return 0, 0, 0, 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}

func clampPositive(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
