package physics

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/vmath"
)

// AttractorPull accumulates acceleration on p toward every attractor
// Also returns the nearest attractor index (-1 when none) and its distance
func AttractorPull(p *component.Particle, as []component.Attractor) (ax, ay float64, nearest int, nearestDist float64) {
	nearest = -1
	nearestDist = math.Inf(1)

	for i := range as {
		a := &as[i]
		dx := a.X - p.X
		dy := a.Y - p.Y
		dSq := dx*dx + dy*dy
		d := math.Sqrt(dSq)
		if d < nearestDist {
			nearestDist = d
			nearest = i
		}
		if d < parameter.Epsilon {
			continue
		}
		f := a.Mass * parameter.GravityStrength / (dSq + parameter.GravitySoftening)
		ax += dx / d * f
		ay += dy / d * f
	}
	return ax, ay, nearest, nearestDist
}

// PointerPull returns the softened acceleration toward an active pointer
func PointerPull(p *component.Particle, ptr component.Pointer) (float64, float64) {
	if !ptr.Active {
		return 0, 0
	}
	dx := ptr.X - p.X
	dy := ptr.Y - p.Y
	dSq := dx*dx + dy*dy
	d := math.Sqrt(dSq)
	if d < parameter.Epsilon {
		return 0, 0
	}
	f := parameter.PointerStrength / (dSq + parameter.PointerSoftening)
	return dx / d * f, dy / d * f
}

// EdgeDistance returns the elliptical distance from the viewport center, 1 on the inscribed ellipse
func EdgeDistance(x, y float64, vp vmath.Viewport) float64 {
	cx, cy := vp.Center()
	hw := math.Max(cx, parameter.Epsilon)
	hh := math.Max(cy, parameter.Epsilon)
	nx := (x - cx) / hw
	ny := (y - cy) / hh
	return math.Sqrt(nx*nx + ny*ny)
}

// EdgePull returns the pull-back acceleration toward the viewport center
// Zero inside the threshold, ramping linearly to parameter.EdgePull at the edge and capped beyond
func EdgePull(x, y float64, vp vmath.Viewport) (float64, float64) {
	n := EdgeDistance(x, y, vp)
	if n <= parameter.EdgePullThreshold {
		return 0, 0
	}
	t := math.Min(1, (n-parameter.EdgePullThreshold)/(1-parameter.EdgePullThreshold))
	mag := parameter.EdgePull * t

	cx, cy := vp.Center()
	dx := cx - x
	dy := cy - y
	d := math.Sqrt(dx*dx + dy*dy)
	if d < parameter.Epsilon {
		return 0, 0
	}
	return dx / d * mag, dy / d * mag
}
