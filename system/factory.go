package system

import (
	"math"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/vmath"
)

// launch describes how a factory throws a particle in from outside the viewport
type launch struct {
	offsetMin, offsetMax float64
	targetJitter         float64
	radialMin, radialMax float64
	swirl                float64
	jitter               float64
}

// driftingIn is the slow entry used for seeding, replenishment and recycling
var driftingIn = launch{
	offsetMin:    parameter.EdgeSpawnOffsetMin,
	offsetMax:    parameter.EdgeSpawnOffsetMax,
	targetJitter: parameter.EdgeSpawnTargetJitter,
	radialMin:    parameter.EdgeSpawnRadialMin,
	radialMax:    parameter.EdgeSpawnRadialMax,
	swirl:        parameter.EdgeSpawnSwirlSpeed,
	jitter:       parameter.EdgeSpawnVelocityJitter,
}

// CreateParticle returns a particle falling in from a random edge, up to offset px outside it
// Used to respawn merge losers
func CreateParticle(vp vmath.Viewport, offset float64, rng vmath.Rand) component.Particle {
	return launchParticle(vp, launch{
		offsetMin:    0,
		offsetMax:    offset,
		targetJitter: parameter.ParticleTargetJitter,
		radialMin:    parameter.ParticleRadialSpeedMin,
		radialMax:    parameter.ParticleRadialSpeedMax,
		swirl:        parameter.ParticleSwirlSpeed,
		jitter:       parameter.ParticleVelocityJitter,
	}, rng)
}

// SpawnEdgeParticle returns a particle drifting in slowly from just outside a random edge
func SpawnEdgeParticle(vp vmath.Viewport, rng vmath.Rand) component.Particle {
	return launchParticle(vp, driftingIn, rng)
}

func launchParticle(vp vmath.Viewport, l launch, rng vmath.Rand) component.Particle {
	vp = vp.Clamped()
	off := vmath.Range(rng, l.offsetMin, l.offsetMax)

	var x, y float64
	switch rng.Intn(4) {
	case 0: // top
		x, y = rng.Float64()*vp.W, -off
	case 1: // right
		x, y = vp.W+off, rng.Float64()*vp.H
	case 2: // bottom
		x, y = rng.Float64()*vp.W, vp.H+off
	default: // left
		x, y = -off, rng.Float64()*vp.H
	}

	// Aim near the center so the field fills from every side
	cx, cy := vp.Center()
	tx := cx + (rng.Float64()-0.5)*l.targetJitter*vp.W
	ty := cy + (rng.Float64()-0.5)*l.targetJitter*vp.H

	dx := tx - x
	dy := ty - y
	d := math.Max(math.Sqrt(dx*dx+dy*dy), parameter.Epsilon)
	ux, uy := dx/d, dy/d

	speed := vmath.Range(rng, l.radialMin, l.radialMax)
	tangent := vmath.Spread(rng, l.swirl)

	return component.Particle{
		X:       x,
		Y:       y,
		Z:       vmath.Range(rng, parameter.ParticleDepthMin, parameter.ParticleDepthMax),
		VX:      ux*speed - uy*tangent + vmath.Spread(rng, l.jitter),
		VY:      uy*speed + ux*tangent + vmath.Spread(rng, l.jitter),
		VZ:      vmath.Spread(rng, parameter.ParticleDepthSpeed),
		Size:    vmath.Range(rng, parameter.ParticleSizeMin, parameter.ParticleSizeMax),
		Opacity: vmath.Range(rng, parameter.ParticleOpacityMin, parameter.ParticleOpacityMax),
		Mass:    1,
		Alive:   true,
		FadeOut: 1,
		Target:  -1,
	}
}

// InitAttractors places AttractorCount wells inside the central region of the viewport
func InitAttractors(vp vmath.Viewport, rng vmath.Rand) []component.Attractor {
	vp = vp.Clamped()
	marginX := vp.W * (1 - parameter.AttractorRegionX) / 2
	marginY := vp.H * (1 - parameter.AttractorRegionY) / 2

	as := make([]component.Attractor, parameter.AttractorCount)
	for i := range as {
		x := marginX + rng.Float64()*vp.W*parameter.AttractorRegionX
		y := marginY + rng.Float64()*vp.H*parameter.AttractorRegionY
		as[i] = component.Attractor{
			X:          x,
			Y:          y,
			BaseX:      x,
			BaseY:      y,
			VX:         vmath.Spread(rng, parameter.AttractorInitialSpeed),
			VY:         vmath.Spread(rng, parameter.AttractorInitialSpeed),
			Mass:       vmath.Range(rng, parameter.AttractorMassMin, parameter.AttractorMassMax),
			Brightness: vmath.Range(rng, parameter.AttractorBrightnessMin, parameter.AttractorBrightnessMax),
		}
	}
	return as
}

// TargetCount returns the steady-state population for a viewport width and device pixel ratio
func TargetCount(width, dpr float64) int {
	n := math.Min(parameter.ParticleCountMax, math.Max(width, 0)/parameter.ParticleCountWidthDivisor)
	switch {
	case width < parameter.NarrowViewportWidth:
		n *= parameter.NarrowViewportScale
	case width < parameter.MediumViewportWidth:
		n *= parameter.MediumViewportScale
	}
	n /= math.Sqrt(vmath.Clamp(dpr, 1, parameter.MaxDPR))

	target := int(math.Round(n))
	if target < parameter.ParticleCountMin {
		target = parameter.ParticleCountMin
	}
	return target
}

// InitialCount returns how many particles a (re)seed starts with
func InitialCount(target int) int {
	n := int(math.Round(float64(target) * parameter.InitialSpawnFraction))
	if n < 1 {
		n = 1
	}
	return n
}
