package system

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/render/renderer"
	"github.com/lixenwraith/driftfield/vmath"
)

// UpdateAttractors advances every attractor one frame and draws it
// Attractors are drawn here, before particles, so they sit beneath the field
// A nil surface or palette skips drawing
func UpdateAttractors(as []component.Attractor, rng vmath.Rand, s render.Surface, pal *render.Palette) {
	for i := range as {
		a := &as[i]

		a.VX += (a.BaseX-a.X)*parameter.AttractorSpring + vmath.Spread(rng, parameter.AttractorJitter)
		a.VY += (a.BaseY-a.Y)*parameter.AttractorSpring + vmath.Spread(rng, parameter.AttractorJitter)
		a.VX *= parameter.AttractorDamping
		a.VY *= parameter.AttractorDamping
		a.X += a.VX
		a.Y += a.VY

		a.Brightness = math.Max(parameter.AttractorBrightnessFloor, a.Brightness*parameter.AttractorBrightnessDecay)

		if s != nil && pal != nil {
			renderer.DrawAttractor(s, a, pal)
		}
	}
}

// Absorb credits an attractor with a faded particle's mass
func Absorb(a *component.Attractor, mass float64) {
	a.AbsorbedMass += mass * parameter.FadeMassTransfer
	a.Brightness = math.Min(parameter.FadeBrightnessCap, a.Brightness+mass*parameter.FadeBrightnessGain)
}
