// Package layout computes the polar cells of the key wheel.
package layout

import (
	"math"

	"github.com/iburimskiy/keywheel/internal/config"
)

// Cell is one column/row intersection in polar coordinates.
type Cell struct {
	Theta    float64
	ThetaMin float64
	ThetaMax float64
	RMin     float64
	RMax     float64
}

func newCell(theta, rMin, rMax float64) Cell {
	return Cell{
		Theta:    theta,
		ThetaMin: theta - math.Pi/12,
		ThetaMax: theta + math.Pi/12,
		RMin:     rMin,
		RMax:     rMax,
	}
}

// Thickness is the radial width of the cell.
func (c Cell) Thickness() float64 { return c.RMax - c.RMin }

// Anchor returns the point halfway through the band along Theta, relative to
// the center (cx, cy).
func (c Cell) Anchor(cx, cy float64) (x, y float64) {
	mid := (c.RMin + c.RMax) / 2
	return cx + math.Cos(c.Theta)*mid, cy + math.Sin(c.Theta)*mid
}

// Contains reports whether the polar point (rho, phi) lies inside the cell.
// Inner edges are inclusive, outer edges exclusive.
func (c Cell) Contains(rho, phi float64) bool {
	if rho < c.RMin || rho >= c.RMax {
		return false
	}
	d := math.Remainder(phi-c.ThetaMin, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d < c.ThetaMax-c.ThetaMin
}

// Column holds the cells of one key, outermost (root) first.
type Column [config.Rows]Cell

// Grid is the full wheel, column 0 at angle 0.
type Grid [config.Columns]Column

// Compute lays out the wheel for outer radius r. The root band takes r/5 and
// another r/5 is withheld from the six inner bands, which pack inward from
// the root band with no gap. r must be positive for meaningful geometry.
func Compute(r float64) Grid {
	rootWidth := r / config.RootWidthDivisor
	deadSpace := r / config.DeadSpaceDivisor
	bandWidth := (r - rootWidth - deadSpace) / (config.Rows - 1)

	var g Grid
	for col := range g {
		theta := math.Pi / 6 * float64(col)
		g[col][0] = newCell(theta, r-rootWidth, r)
		for row := 1; row < config.Rows; row++ {
			rMax := r - rootWidth - bandWidth*float64(row-1)
			rMin := r - rootWidth - bandWidth*float64(row)
			g[col][row] = newCell(theta, rMin, rMax)
		}
	}
	return g
}
