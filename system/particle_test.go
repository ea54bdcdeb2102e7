package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/vmath"
)

func fixtureAttractor(x, y float64) component.Attractor {
	return component.Attractor{X: x, Y: y, BaseX: x, BaseY: y, Mass: 0.5, Brightness: 0.1}
}

func TestFadeLifecycle(t *testing.T) {
	vp := vmath.Viewport{W: 1000, H: 800}
	rng := vmath.NewFastRand(1)
	as := []component.Attractor{fixtureAttractor(500, 400)}
	ps := []component.Particle{{
		X: 500, Y: 400, Size: 1, Opacity: 0.5, Mass: 1,
		Alive: true, FadeOut: parameter.FadeStart, Target: 0,
	}}

	var calls int
	var gotIdx int
	var gotMass float64
	absorb := func(idx int, mass float64) {
		calls++
		gotIdx, gotMass = idx, mass
	}

	for step := 1; step < 40; step++ {
		st := UpdateParticles(ps, as, component.Pointer{}, vp, rng, absorb)
		if st.Absorbed != 0 {
			t.Fatalf("absorbed early at step %d", step)
		}
		if !ps[0].Fading() || ps[0].FadeOut <= 0 {
			t.Fatalf("step %d: fadeOut = %f, want still fading", step, ps[0].FadeOut)
		}
	}

	st := UpdateParticles(ps, as, component.Pointer{}, vp, rng, absorb)
	if st.Absorbed != 1 {
		t.Fatalf("step 40: absorbed = %d, want 1", st.Absorbed)
	}

	p := ps[0]
	if p.FadeOut != 1 || p.Target != -1 || !p.Alive || p.Mass != 1 {
		t.Errorf("slot not reinitialized: %+v", p)
	}
	if !vp.Outside(p.X, p.Y, 0) {
		t.Errorf("recycled particle should start outside, got (%f, %f)", p.X, p.Y)
	}
	if math.Abs(as[0].AbsorbedMass-parameter.FadeMassTransfer) > 1e-12 {
		t.Errorf("absorbed mass = %f, want %f", as[0].AbsorbedMass, parameter.FadeMassTransfer)
	}
	if math.Abs(as[0].Brightness-0.107) > 1e-12 {
		t.Errorf("brightness = %f, want 0.107", as[0].Brightness)
	}
	if calls != 1 || gotIdx != 0 || gotMass != 1 {
		t.Errorf("absorb callback: calls=%d idx=%d mass=%f", calls, gotIdx, gotMass)
	}
}

func TestAbsorbBrightnessCap(t *testing.T) {
	a := fixtureAttractor(0, 0)
	a.Brightness = 0.49
	Absorb(&a, 8)
	if a.Brightness != parameter.FadeBrightnessCap {
		t.Errorf("brightness = %f, want %f", a.Brightness, parameter.FadeBrightnessCap)
	}
}

func TestCommitNearAttractor(t *testing.T) {
	vp := vmath.Viewport{W: 1000, H: 800}
	as := []component.Attractor{fixtureAttractor(200, 200), fixtureAttractor(505, 400)}
	ps := []component.Particle{{X: 510, Y: 400, Size: 1, Mass: 1, Alive: true, FadeOut: 1, Target: -1}}

	st := UpdateParticles(ps, as, component.Pointer{}, vp, vmath.NewFastRand(1), nil)
	if st.Committed != 1 {
		t.Fatalf("committed = %d, want 1", st.Committed)
	}
	if ps[0].FadeOut != parameter.FadeStart || ps[0].Target != 1 {
		t.Errorf("fadeOut=%f target=%d, want %f and 1", ps[0].FadeOut, ps[0].Target, parameter.FadeStart)
	}
}

func TestRecycleFarOut(t *testing.T) {
	vp := vmath.Viewport{W: 1000, H: 800}
	ps := []component.Particle{
		{X: 2000, Y: 400, Size: 1, Mass: 1, Alive: true, FadeOut: 1, Target: -1},
		{X: 300, Y: 300, Size: 1, Mass: 1, Alive: false, FadeOut: 1, Target: -1},
	}
	st := UpdateParticles(ps, nil, component.Pointer{}, vp, vmath.NewFastRand(2), nil)
	if st.Recycled != 1 {
		t.Fatalf("recycled = %d, want 1", st.Recycled)
	}
	if vp.Outside(ps[0].X, ps[0].Y, parameter.EdgeSpawnOffsetMax) {
		t.Errorf("recycled particle not at edge: (%f, %f)", ps[0].X, ps[0].Y)
	}
	if ps[1].Alive || ps[1].X != 300 {
		t.Error("dead slot should be skipped")
	}
}

func TestRecycleFadingFarOut(t *testing.T) {
	vp := vmath.Viewport{W: 1000, H: 800}
	as := []component.Attractor{fixtureAttractor(500, 400)}
	ps := []component.Particle{
		{X: 2000, Y: 400, Size: 1, Mass: 1, Alive: true, FadeOut: 0.5, Target: 0},
	}
	st := UpdateParticles(ps, as, component.Pointer{}, vp, vmath.NewFastRand(4), nil)
	if st.Recycled != 1 || st.Absorbed != 0 {
		t.Fatalf("recycled = %d absorbed = %d, want 1 and 0", st.Recycled, st.Absorbed)
	}
	if ps[0].Fading() || ps[0].Target != -1 {
		t.Errorf("recycled particle should be active again: fade=%f target=%d", ps[0].FadeOut, ps[0].Target)
	}
	if as[0].AbsorbedMass != 0 {
		t.Error("recycled particle should not feed the attractor")
	}
}

func TestDriftScaleBySide(t *testing.T) {
	vp := vmath.Viewport{W: 1000, H: 800}
	ps := []component.Particle{
		{X: 300, Y: 400, VX: 1, Mass: 1, Alive: true, FadeOut: 1, Target: -1},
		{X: 700, Y: 400, VX: 1, Mass: 1, Alive: true, FadeOut: 1, Target: -1},
	}
	UpdateParticles(ps, nil, component.Pointer{}, vp, vmath.NewFastRand(2), nil)

	left := ps[0].X - 300
	right := ps[1].X - 700
	want := parameter.DriftScaleLeft / parameter.DriftScaleRight
	if math.Abs(left/right-want) > 1e-9 {
		t.Errorf("left/right step = %f, want %f", left/right, want)
	}
}

func TestPointerAttracts(t *testing.T) {
	vp := vmath.Viewport{W: 1000, H: 800}
	ps := []component.Particle{{X: 400, Y: 400, Mass: 1, Alive: true, FadeOut: 1, Target: -1}}
	UpdateParticles(ps, nil, component.Pointer{X: 450, Y: 400, Active: true}, vp, vmath.NewFastRand(2), nil)
	if ps[0].VX <= 0 {
		t.Errorf("pointer should pull right, VX = %f", ps[0].VX)
	}
}

func TestUpdateAttractors(t *testing.T) {
	as := []component.Attractor{fixtureAttractor(100, 100), fixtureAttractor(200, 200)}
	as[1].Brightness = parameter.AttractorBrightnessFloor
	as[0].X = 160

	rec := render.NewRecorder(400, 400)
	pal, _ := render.LookupPalette(render.DefaultPalette)
	UpdateAttractors(as, vmath.NewFastRand(9), rec, pal)

	if math.Abs(as[0].Brightness-0.1*parameter.AttractorBrightnessDecay) > 1e-12 {
		t.Errorf("brightness = %f, want decayed", as[0].Brightness)
	}
	if as[1].Brightness != parameter.AttractorBrightnessFloor {
		t.Errorf("brightness below floor: %f", as[1].Brightness)
	}
	if as[0].VX >= 0 {
		t.Errorf("displaced attractor should spring back, VX = %f", as[0].VX)
	}
	if rec.Count(render.OpFillRadial) != 2 || rec.Count(render.OpFillCircle) != 2 {
		t.Errorf("draw calls: radial=%d circle=%d, want 2 each",
			rec.Count(render.OpFillRadial), rec.Count(render.OpFillCircle))
	}

	UpdateAttractors(as, vmath.NewFastRand(9), nil, nil)
}
