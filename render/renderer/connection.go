package renderer

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/physics"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/vmath"
)

// DrawConnections draws faint lines between near grid pairs whose projected endpoints are both visible
// Returns the number of lines drawn
func DrawConnections(s render.Surface, ps []component.Particle, g *physics.SpatialGrid, cx, cy float64, vp vmath.Viewport, pal *render.Palette) int {
	color := pal.Connection()
	reach := math.Sqrt(parameter.ConnectionRangeSq)
	drawn := 0

	g.ForEachPair(func(i, j int) {
		a, b := &ps[i], &ps[j]
		// Merges and respawns since the grid was built can leave stale slots behind
		if !a.Alive || !b.Alive {
			return
		}
		if !vp.Inset(a.X, a.Y, parameter.GridMargin) || !vp.Inset(b.X, b.Y, parameter.GridMargin) {
			return
		}
		dx := b.X - a.X
		dy := b.Y - a.Y
		d2 := dx*dx + dy*dy
		if d2 >= parameter.ConnectionRangeSq {
			return
		}

		pa := vmath.Project(a.X, a.Y, a.Z, cx, cy)
		if !vmath.OnScreen(pa.X, pa.Y, vp.W, vp.H) {
			return
		}
		pb := vmath.Project(b.X, b.Y, b.Z, cx, cy)
		if !vmath.OnScreen(pb.X, pb.Y, vp.W, vp.H) {
			return
		}

		alpha := parameter.ConnectionAlpha * (1 - math.Sqrt(d2)/reach) * math.Min(a.FadeOut, b.FadeOut)
		if alpha <= 0 {
			return
		}
		s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, parameter.ConnectionWidth, color.WithAlpha(alpha))
		drawn++
	})
	return drawn
}
