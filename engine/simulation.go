package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/physics"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/render/renderer"
	"github.com/lixenwraith/driftfield/status"
	"github.com/lixenwraith/driftfield/system"
	"github.com/lixenwraith/driftfield/vmath"
)

// Options configures a Simulation
type Options struct {
	// Seed makes runs reproducible; 0 seeds from the clock. Ignored when Rand is set
	Seed uint64
	Rand vmath.Rand

	// Status receives live metrics; nil allocates a private registry
	Status *status.Registry

	// Palette defaults to render.DefaultPalette
	Palette *render.Palette

	// OnAbsorb is called from the frame goroutine whenever a particle completes its fade
	OnAbsorb func(idx int, mass float64)
}

// StepStats summarizes one Step
type StepStats struct {
	Merges      int
	Absorbed    int
	Recycled    int
	Respawned   int
	Connections int
}

// Simulation owns the particle and attractor arenas, the grid and the RNG
// All methods must be called from the single frame owner
type Simulation struct {
	rng     vmath.Rand
	palette *render.Palette

	particles  []component.Particle
	attractors []component.Attractor
	grid       *physics.SpatialGrid
	spawner    system.Spawner
	order      []int

	vp            vmath.Viewport
	dpr           float64
	reducedMotion bool
	target        int
	seeded        bool

	onAbsorb func(idx int, mass float64)

	// Cached metric pointers
	statusReg    *status.Registry
	statLive     *atomic.Int64
	statTarget   *atomic.Int64
	statMerges   *atomic.Int64
	statAbsorbed *atomic.Int64
	statRecycled *atomic.Int64
}

func NewSimulation(opts Options) *Simulation {
	rng := opts.Rand
	if rng == nil {
		if opts.Seed != 0 {
			rng = vmath.NewFastRand(opts.Seed)
		} else {
			rng = vmath.NewTimeSeededRand()
		}
	}

	pal := opts.Palette
	if pal == nil {
		pal, _ = render.LookupPalette(render.DefaultPalette)
	}

	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	reg.Strings.Get(status.KeyPalette).Store(pal.Name)

	return &Simulation{
		rng:          rng,
		palette:      pal,
		grid:         physics.NewSpatialGrid(parameter.GridCellSize),
		onAbsorb:     opts.OnAbsorb,
		statusReg:    reg,
		statLive:     reg.Ints.Get(status.KeyParticlesLive),
		statTarget:   reg.Ints.Get(status.KeyParticlesTarget),
		statMerges:   reg.Ints.Get(status.KeyMergesTotal),
		statAbsorbed: reg.Ints.Get(status.KeyAbsorbedTotal),
		statRecycled: reg.Ints.Get(status.KeyRecycledTotal),
	}
}

// Reset re-derives attractors and the initial population for a viewport
// dpr is the effective surface scale, already capped by the caller
func (s *Simulation) Reset(vp vmath.Viewport, dpr float64, reducedMotion bool) {
	s.vp = vp
	s.dpr = dpr
	s.reducedMotion = reducedMotion
	s.target = system.TargetCount(vp.W, dpr)

	s.attractors = system.InitAttractors(vp, s.rng)

	if cap(s.particles) < parameter.ParticleCountMax {
		s.particles = make([]component.Particle, 0, parameter.ParticleCountMax)
	}
	s.particles = system.Seed(s.particles[:0], system.InitialCount(s.target), vp, s.rng)
	if cap(s.order) < parameter.ParticleCountMax {
		s.order = make([]int, 0, parameter.ParticleCountMax)
	}

	s.spawner.Reset()
	s.grid.Resize(vp)
	s.seeded = true

	s.statTarget.Store(int64(s.target))
	s.statLive.Store(int64(len(s.particles)))
}

// SetViewport follows a resize that does not warrant a reseed
// The population is kept; edge pull, spawning, recycling and the grid use vp from the next Step
func (s *Simulation) SetViewport(vp vmath.Viewport) {
	s.vp = vp
	s.grid.Resize(vp)
}

// Step runs one frame of the fixed pipeline and draws it onto surface
// A nil surface advances the physics without drawing
func (s *Simulation) Step(ptr component.Pointer, surface render.Surface) StepStats {
	var st StepStats
	if !s.seeded {
		return st
	}

	if surface != nil {
		surface.Clear(s.palette.Background)
	}

	system.UpdateAttractors(s.attractors, s.rng, surface, s.palette)

	upd := system.UpdateParticles(s.particles, s.attractors, ptr, s.vp, s.rng, s.onAbsorb)
	st.Absorbed = upd.Absorbed
	st.Recycled = upd.Recycled

	s.particles = s.spawner.Spawn(s.particles, s.target, s.vp, s.rng)

	s.grid.Build(s.particles, s.vp)
	physics.ApplyAttraction(s.particles, s.grid)
	st.Merges = physics.ApplyCollisions(s.particles, s.grid)
	st.Respawned = system.RespawnDead(s.particles, s.vp, s.rng)

	if surface != nil {
		cx, cy := s.vp.Center()
		cx, cy = component.Centroid(s.attractors, cx, cy)
		s.order = renderer.DepthOrder(s.order, s.particles)
		renderer.DrawParticles(surface, s.particles, s.order, cx, cy, s.vp, s.palette)
		st.Connections = renderer.DrawConnections(surface, s.particles, s.grid, cx, cy, s.vp, s.palette)
		surface.Present()
	}

	s.statLive.Store(int64(component.CountAlive(s.particles)))
	s.statMerges.Add(int64(st.Merges))
	s.statAbsorbed.Add(int64(st.Absorbed))
	s.statRecycled.Add(int64(st.Recycled))
	return st
}

// Teardown releases the arenas; Reset must run before the next Step
func (s *Simulation) Teardown() {
	s.particles = nil
	s.attractors = nil
	s.order = nil
	s.grid.Clear()
	s.seeded = false
	s.statLive.Store(0)
}

// SetPalette swaps the palette used from the next Step
func (s *Simulation) SetPalette(p *render.Palette) {
	if p == nil {
		return
	}
	s.palette = p
	s.statusReg.Strings.Get(status.KeyPalette).Store(p.Name)
}

func (s *Simulation) Particles() []component.Particle { return s.particles }
func (s *Simulation) Attractors() []component.Attractor { return s.attractors }
func (s *Simulation) Grid() *physics.SpatialGrid { return s.grid }
func (s *Simulation) Target() int { return s.target }
func (s *Simulation) Viewport() vmath.Viewport { return s.vp }
func (s *Simulation) DPR() float64 { return s.dpr }
func (s *Simulation) ReducedMotion() bool { return s.reducedMotion }
func (s *Simulation) Seeded() bool { return s.seeded }
func (s *Simulation) Palette() *render.Palette { return s.palette }
func (s *Simulation) Status() *status.Registry { return s.statusReg }
