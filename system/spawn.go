package system

import (
	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/vmath"
)

// Spawner tops the population up to its target in small throttled waves
type Spawner struct {
	cooldown int

	// Spawned is the running total of particles added
	Spawned int
}

// Reset clears the cooldown, used on re-seed
func (s *Spawner) Reset() {
	s.cooldown = 0
}

// Cooldown returns the frames left before the next wave
func (s *Spawner) Cooldown() int {
	return s.cooldown
}

// Spawn adds at most one wave per call and returns the possibly grown slice
// Dead slots are reused first; new slots are appended
func (s *Spawner) Spawn(ps []component.Particle, target int, vp vmath.Viewport, rng vmath.Rand) []component.Particle {
	alive := component.CountAlive(ps)
	if alive >= target {
		s.cooldown = 0
		return ps
	}
	if s.cooldown > 0 {
		s.cooldown--
		return ps
	}

	wave := min(parameter.SpawnWaveMax, target-alive)
	free := 0
	for k := 0; k < wave; k++ {
		for free < len(ps) && ps[free].Alive {
			free++
		}
		if free < len(ps) {
			ps[free] = SpawnEdgeParticle(vp, rng)
		} else {
			ps = append(ps, SpawnEdgeParticle(vp, rng))
		}
		free++
	}
	s.Spawned += wave

	// Small waves mean the field is nearly full, so back off longer
	s.cooldown = parameter.SpawnCooldownBase + (parameter.SpawnWaveMax-wave)*parameter.SpawnCooldownStep
	return ps
}

// Seed appends n drifting-in particles, reusing the slice capacity
func Seed(ps []component.Particle, n int, vp vmath.Viewport, rng vmath.Rand) []component.Particle {
	for k := 0; k < n; k++ {
		ps = append(ps, SpawnEdgeParticle(vp, rng))
	}
	return ps
}

// RespawnDead reinitializes every slot consumed by a merge and returns how many
func RespawnDead(ps []component.Particle, vp vmath.Viewport, rng vmath.Rand) int {
	n := 0
	for i := range ps {
		if ps[i].Alive {
			continue
		}
		ps[i] = CreateParticle(vp, parameter.ParticleRespawnOffset, rng)
		n++
	}
	return n
}
