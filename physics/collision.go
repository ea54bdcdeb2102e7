package physics

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
)

// Merge folds b into a as a perfectly inelastic collision
// Position, velocity and depth become mass-weighted averages; b is marked dead for respawn
func Merge(a, b *component.Particle) {
	total := a.Mass + b.Mass
	wa := a.Mass / total
	wb := b.Mass / total

	a.X = a.X*wa + b.X*wb
	a.Y = a.Y*wa + b.Y*wb
	a.Z = a.Z*wa + b.Z*wb
	a.VX = a.VX*wa + b.VX*wb
	a.VY = a.VY*wa + b.VY*wb
	a.VZ = a.VZ*wa + b.VZ*wb
	a.Mass = total

	a.Size = math.Min(parameter.MergeSizeMax, math.Sqrt(total)*parameter.MergeSizeFactor)
	a.Opacity = math.Min(parameter.MergeOpacityMax, a.Opacity+parameter.MergeOpacityGain)

	b.Alive = false
}

// Touching reports whether two particles are within merge reach
func Touching(a, b *component.Particle) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	reach := (a.Size + b.Size) * parameter.MergeReachFactor
	return dx*dx+dy*dy < reach*reach
}

// ApplyCollisions merges every touching grid pair, the lighter particle into the heavier
// Equal masses keep the lower index. Returns the number of merges
func ApplyCollisions(ps []component.Particle, g *SpatialGrid) int {
	merges := 0
	g.ForEachPair(func(i, j int) {
		a, b := &ps[i], &ps[j]
		// A particle consumed earlier this pass keeps its stale grid slot
		if !a.Active() || !b.Active() {
			return
		}
		if !Touching(a, b) {
			return
		}
		if b.Mass > a.Mass || (b.Mass == a.Mass && j < i) {
			a, b = b, a
		}
		Merge(a, b)
		merges++
	})
	return merges
}
