package renderer

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/vmath"
)

// DrawParticles draws live particles in the given order, projected about (cx, cy)
func DrawParticles(s render.Surface, ps []component.Particle, order []int, cx, cy float64, vp vmath.Viewport, pal *render.Palette) {
	for _, i := range order {
		p := &ps[i]
		if !p.Alive {
			continue
		}

		proj := vmath.Project(p.X, p.Y, p.Z, cx, cy)
		if !vmath.OnScreen(proj.X, proj.Y, vp.W, vp.H) {
			continue
		}

		alpha := p.Opacity * DepthAlpha(p.Z) * p.FadeOut * proj.Scale
		if alpha <= 0 {
			continue
		}
		radius := p.Size * proj.Scale
		color := pal.Particle(p.Mass)

		if p.Mass > parameter.GlowMassThreshold {
			drawGlow(s, proj, radius, color, alpha)
		}

		if !p.Fading() {
			if speed := math.Sqrt(p.SpeedSq()); speed > parameter.TrailSpeedThreshold {
				drawTrail(s, p, proj, speed, radius, color, alpha)
			}
		}

		s.FillCircle(proj.X, proj.Y, radius, color.WithAlpha(alpha))
	}
}

func drawGlow(s render.Surface, proj vmath.Projection, radius float64, color render.RGB, alpha float64) {
	s.FillRadialGradient(proj.X, proj.Y, radius*parameter.GlowRadiusFactor,
		render.Stop{Offset: 0, Color: color.WithAlpha(alpha * 0.5)},
		render.Stop{Offset: 0.4, Color: color.WithAlpha(alpha * 0.2)},
		render.Stop{Offset: 1, Color: color.WithAlpha(0)},
	)
}

// drawTrail streaks backwards along the velocity, fading to nothing at the tail
func drawTrail(s render.Surface, p *component.Particle, proj vmath.Projection, speed, radius float64, color render.RGB, alpha float64) {
	length := math.Min(parameter.TrailLengthMax, speed*parameter.TrailLengthFactor) * proj.Scale
	tx := proj.X - p.VX/speed*length
	ty := proj.Y - p.VY/speed*length
	s.StrokeLinearGradient(proj.X, proj.Y, tx, ty, radius,
		render.Stop{Offset: 0, Color: color.WithAlpha(alpha * 0.6)},
		render.Stop{Offset: 1, Color: color.WithAlpha(0)},
	)
}
