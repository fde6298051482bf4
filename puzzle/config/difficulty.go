package config

import (
	"math"

	lin "github.com/sgreben/piecewiselinear"
)

// TargetForLevel interpolates the configured difficulty ramp at the given
// level and rounds to a whole surface-area target. Levels outside the ramp
// clamp to its ends.
func (d Difficulty) TargetForLevel(level int) int {
	if len(d.Levels) == 0 {
		return 0
	}
	if len(d.Levels) == 1 {
		return d.Levels[0].TargetSurfaceArea
	}

	x := make([]float64, len(d.Levels))
	y := make([]float64, len(d.Levels))
	for i, p := range d.Levels {
		x[i] = float64(p.Level)
		y[i] = float64(p.TargetSurfaceArea)
	}
	f := lin.Function{X: x, Y: y}

	l := float64(level)
	if l < x[0] {
		l = x[0]
	}
	if l > x[len(x)-1] {
		l = x[len(x)-1]
	}
	return int(math.Round(f.At(l)))
}
