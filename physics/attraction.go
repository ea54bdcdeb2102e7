package physics

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
)

// PairForce returns the attraction and swirl magnitudes for a pair at distance d
// Both fall off as 1/d, giving loose orbits rather than collapse
func PairForce(massSum, d float64) (pull, swirl float64) {
	if d < parameter.Epsilon {
		d = parameter.Epsilon
	}
	return parameter.PairAttraction * massSum / d, parameter.PairSwirl * massSum / d
}

// ApplyAttraction adds equal-and-opposite pull and swirl to every grid pair in range
func ApplyAttraction(ps []component.Particle, g *SpatialGrid) {
	g.ForEachPair(func(i, j int) {
		a, b := &ps[i], &ps[j]
		if !a.Active() || !b.Active() {
			return
		}
		dx := b.X - a.X
		dy := b.Y - a.Y
		dSq := dx*dx + dy*dy
		if dSq <= parameter.PairRangeMinSq || dSq > parameter.PairRangeMaxSq {
			return
		}

		d := math.Sqrt(dSq)
		ux, uy := dx/d, dy/d
		pull, swirl := PairForce(a.Mass+b.Mass, d)

		// Perpendicular (-uy, ux) rotates the pair around its midpoint
		fx := ux*pull - uy*swirl
		fy := uy*pull + ux*swirl

		a.VX += fx / a.Mass
		a.VY += fy / a.Mass
		b.VX -= fx / b.Mass
		b.VY -= fy / b.Mass
	})
}
