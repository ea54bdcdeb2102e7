package renderer

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/render"
)

// AttractorGlowRadius grows with mass and absorbed mass, capped at AttractorGlowMax
func AttractorGlowRadius(a *component.Attractor) float64 {
	r := parameter.AttractorGlowBase*(0.5+a.Mass) + parameter.AttractorGlowAbsorbed*math.Sqrt(a.AbsorbedMass)
	return math.Min(parameter.AttractorGlowMax, r)
}

// DrawAttractor draws the soft glow and bright core of one attractor at its raw position
func DrawAttractor(s render.Surface, a *component.Attractor, pal *render.Palette) {
	if pal == nil {
		return
	}
	glow := pal.Glow(a.Brightness)
	s.FillRadialGradient(a.X, a.Y, AttractorGlowRadius(a),
		render.Stop{Offset: 0, Color: glow.WithAlpha(a.Brightness)},
		render.Stop{Offset: 0.45, Color: glow.WithAlpha(a.Brightness * 0.35)},
		render.Stop{Offset: 1, Color: glow.WithAlpha(0)},
	)

	core := parameter.AttractorCoreBase + a.Mass*parameter.AttractorCoreMass
	s.FillCircle(a.X, a.Y, core, pal.Core().WithAlpha(math.Min(1, a.Brightness*4+0.2)))
}
