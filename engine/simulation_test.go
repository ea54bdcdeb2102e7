package engine

import (
	"testing"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/status"
	"github.com/lixenwraith/driftfield/vmath"
)

func TestSimulationReset(t *testing.T) {
	sim := NewSimulation(Options{Seed: 1})
	sim.Reset(vmath.Viewport{W: 1000, H: 800}, 1, false)

	if sim.Target() != 160 {
		t.Errorf("target = %d, want 160", sim.Target())
	}
	if len(sim.Particles()) != 24 {
		t.Errorf("initial particles = %d, want 24", len(sim.Particles()))
	}
	if len(sim.Attractors()) != parameter.AttractorCount {
		t.Errorf("attractors = %d, want %d", len(sim.Attractors()), parameter.AttractorCount)
	}
	if cap(sim.Particles()) != parameter.ParticleCountMax {
		t.Errorf("arena cap = %d, want %d", cap(sim.Particles()), parameter.ParticleCountMax)
	}
}

func TestSimulationConvergesToTarget(t *testing.T) {
	reg := status.NewRegistry()
	sim := NewSimulation(Options{Seed: 42, Status: reg})
	vp := vmath.Viewport{W: 1000, H: 800}
	sim.Reset(vp, 1, false)

	for frame := 0; frame < 600; frame++ {
		sim.Step(component.Pointer{}, nil)

		ps := sim.Particles()
		if n := component.CountAlive(ps); n != len(ps) {
			t.Fatalf("frame %d: %d dead slots survived the respawn pass", frame, len(ps)-n)
		}
		if len(ps) > sim.Target() {
			t.Fatalf("frame %d: %d slots exceed target %d", frame, len(ps), sim.Target())
		}
		if len(sim.Attractors()) != parameter.AttractorCount {
			t.Fatalf("frame %d: attractor count changed", frame)
		}
	}

	if n := len(sim.Particles()); n != sim.Target() {
		t.Errorf("population = %d, want %d", n, sim.Target())
	}
	if got := reg.Snapshot().Live; got != int64(sim.Target()) {
		t.Errorf("live metric = %d, want %d", got, sim.Target())
	}
}

func TestSimulationStepDraws(t *testing.T) {
	sim := NewSimulation(Options{Seed: 7})
	vp := vmath.Viewport{W: 600, H: 400}
	sim.Reset(vp, 1, false)

	rec := render.NewRecorder(600, 400)
	sim.Step(component.Pointer{}, rec)

	if len(rec.Ops) == 0 || rec.Ops[0].Kind != render.OpClear {
		t.Fatal("frame should start with a clear")
	}
	if rec.Ops[len(rec.Ops)-1].Kind != render.OpPresent {
		t.Error("frame should end with present")
	}
	if got := rec.Count(render.OpFillRadial); got < parameter.AttractorCount {
		t.Errorf("radial fills = %d, want at least one per attractor", got)
	}
}

func TestSimulationAbsorbCallback(t *testing.T) {
	var absorbed int
	sim := NewSimulation(Options{Seed: 3, OnAbsorb: func(int, float64) { absorbed++ }})
	sim.Reset(vmath.Viewport{W: 800, H: 600}, 1, false)

	// Park a committed particle on the first attractor
	a := sim.Attractors()[0]
	sim.Particles()[0] = component.Particle{
		X: a.X, Y: a.Y, Size: 1, Opacity: 0.5, Mass: 1,
		Alive: true, FadeOut: 0.01, Target: 0,
	}
	st := sim.Step(component.Pointer{}, nil)
	if st.Absorbed < 1 || absorbed < 1 {
		t.Errorf("absorbed = %d (callback %d), want at least 1", st.Absorbed, absorbed)
	}
}

func TestSimulationTeardown(t *testing.T) {
	sim := NewSimulation(Options{Seed: 5})
	sim.Reset(vmath.Viewport{W: 800, H: 600}, 1, false)
	sim.Teardown()

	if sim.Seeded() || sim.Particles() != nil || sim.Attractors() != nil {
		t.Error("teardown should release state")
	}
	if st := sim.Step(component.Pointer{}, render.NewRecorder(1, 1)); st != (StepStats{}) {
		t.Errorf("step after teardown = %+v, want zero", st)
	}
}

func TestSimulationSeedReproducible(t *testing.T) {
	vp := vmath.Viewport{W: 900, H: 700}
	a := NewSimulation(Options{Seed: 99})
	b := NewSimulation(Options{Seed: 99})
	a.Reset(vp, 1, false)
	b.Reset(vp, 1, false)
	for i := 0; i < 50; i++ {
		a.Step(component.Pointer{}, nil)
		b.Step(component.Pointer{}, nil)
	}
	pa, pb := a.Particles(), b.Particles()
	if len(pa) != len(pb) {
		t.Fatalf("lengths differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d diverged", i)
		}
	}
}
