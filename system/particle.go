package system

import (
	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/physics"
	"github.com/lixenwraith/driftfield/vmath"
)

// AbsorbFunc is notified when a fading particle completes into attractor idx
type AbsorbFunc func(idx int, mass float64)

// UpdateStats counts slot lifecycle transitions in one UpdateParticles call
type UpdateStats struct {
	Absorbed  int
	Recycled  int
	Committed int
}

// UpdateParticles advances every live particle one frame
// Fading particles coast to a stop and are handed to their attractor; active ones feel
// attractor gravity, pointer pull and edge pull-back, and commit to fading when close enough
func UpdateParticles(ps []component.Particle, as []component.Attractor, ptr component.Pointer, vp vmath.Viewport, rng vmath.Rand, absorb AbsorbFunc) UpdateStats {
	var st UpdateStats
	cx, _ := vp.Center()

	for i := range ps {
		p := &ps[i]
		if !p.Alive {
			continue
		}

		if p.Fading() {
			p.FadeOut -= parameter.FadeStep
			p.VX *= parameter.FadeDamping
			p.VY *= parameter.FadeDamping
			p.VZ *= parameter.FadeDamping
			p.X += p.VX
			p.Y += p.VY
			p.Z += p.VZ

			if p.FadeOut <= 0 {
				if t := p.Target; t >= 0 && t < len(as) {
					Absorb(&as[t], p.Mass)
					if absorb != nil {
						absorb(t, p.Mass)
					}
				}
				st.Absorbed++
				*p = SpawnEdgeParticle(vp, rng)
				continue
			}
			// Coasting can still carry a fading particle out of bounds
			if vp.Outside(p.X, p.Y, parameter.RecycleDistance) {
				*p = SpawnEdgeParticle(vp, rng)
				st.Recycled++
			}
			continue
		}

		ax, ay, nearest, nearestDist := physics.AttractorPull(p, as)
		px, py := physics.PointerPull(p, ptr)
		ex, ey := physics.EdgePull(p.X, p.Y, vp)

		p.VX += ax + px + ex
		p.VY += ay + py + ey
		p.VZ -= p.Z * parameter.DepthSpring

		p.VX *= parameter.VelocityDamping
		p.VY *= parameter.VelocityDamping
		p.VZ *= parameter.DepthDamping

		// Left half drifts faster than the right so the field never settles symmetric
		step := parameter.DriftScaleRight
		if p.X < cx {
			step = parameter.DriftScaleLeft
		}
		p.X += p.VX * step
		p.Y += p.VY * step
		p.Z += p.VZ

		if nearest >= 0 && nearestDist < parameter.FadeCaptureRadius {
			p.FadeOut = parameter.FadeStart
			p.Target = nearest
			st.Committed++
			continue
		}

		if vp.Outside(p.X, p.Y, parameter.RecycleDistance) {
			*p = SpawnEdgeParticle(vp, rng)
			st.Recycled++
		}
	}
	return st
}
