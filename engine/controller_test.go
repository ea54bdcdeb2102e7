package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/driftfield/event"
	"github.com/lixenwraith/driftfield/render"
)

func newTestController(t *testing.T) (*Controller, *render.Recorder, *ManualDriver, *event.Hub) {
	t.Helper()
	rec := render.NewRecorder(0, 0)
	drv := NewManualDriver()
	hub := event.NewHub()
	c := NewController(rec, drv, hub, ControllerOptions{Simulation: Options{Seed: 11}})
	return c, rec, drv, hub
}

func TestMountNilSurface(t *testing.T) {
	drv := NewManualDriver()
	hub := event.NewHub()
	c := NewController(nil, drv, hub, ControllerOptions{})

	if err := c.Mount(); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("err = %v, want ErrNoSurface", err)
	}
	if drv.Pending() || hub.Subscribers() != 0 || c.Mounted() {
		t.Error("failed mount should not schedule or subscribe")
	}
	c.Unmount()
}

func TestControllerSeedsOnFirstFrame(t *testing.T) {
	c, rec, drv, hub := newTestController(t)
	hub.Publish(event.Event{Type: event.Resize, W: 1000, H: 800, DPR: 1})
	if err := c.Mount(); err != nil {
		t.Fatal(err)
	}
	if err := c.Mount(); err != nil || hub.Subscribers() != 1 {
		t.Fatalf("second mount: err=%v subscribers=%d", err, hub.Subscribers())
	}

	drv.Advance()

	sim := c.Simulation()
	if sim.Target() != 160 {
		t.Errorf("target = %d, want 160", sim.Target())
	}
	if w, h := rec.Size(); w != 1000 || h != 800 || rec.Scale() != 1 {
		t.Errorf("surface = %dx%d@%f, want 1000x800@1", w, h, rec.Scale())
	}
	if rec.Count(render.OpPresent) != 1 {
		t.Errorf("presents = %d, want 1", rec.Count(render.OpPresent))
	}
	if !drv.Pending() {
		t.Error("frame should re-request itself")
	}
}

func TestControllerFallsBackToSurfaceSize(t *testing.T) {
	rec := render.NewRecorder(640, 480)
	drv := NewManualDriver()
	c := NewController(rec, drv, nil, ControllerOptions{Simulation: Options{Seed: 2}})
	if err := c.Mount(); err != nil {
		t.Fatal(err)
	}
	drv.Advance()
	if vp := c.Simulation().Viewport(); vp.W != 640 || vp.H != 480 {
		t.Errorf("viewport = %+v, want 640x480", vp)
	}
}

func TestControllerDPRCap(t *testing.T) {
	tests := []struct {
		name    string
		dpr     float64
		reduced bool
		want    float64
	}{
		{"plain", 1, false, 1},
		{"retina", 2, false, 2},
		{"capped", 3, false, 2},
		{"fractional", 1.5, false, 1.5},
		{"below one", 0.5, false, 0.5},
		{"reduced motion", 3, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, drv, hub := newTestController(t)
			hub.Publish(event.Event{Type: event.Resize, W: 800, H: 600, DPR: tt.dpr})
			hub.Publish(event.Event{Type: event.ReducedMotion, Flag: tt.reduced})
			c.Mount()
			drv.Advance()
			if rec.Scale() != tt.want || c.Scale() != tt.want {
				t.Errorf("scale = %f, want %f", rec.Scale(), tt.want)
			}
		})
	}
}

func TestControllerReseedPolicy(t *testing.T) {
	c, _, drv, hub := newTestController(t)
	hub.Publish(event.Event{Type: event.Resize, W: 1000, H: 800, DPR: 1})
	c.Mount()
	drv.Advance()

	reseeds := func() int64 { return c.Status().Snapshot().Reseeds }
	if reseeds() != 1 {
		t.Fatalf("reseeds = %d, want 1", reseeds())
	}

	hub.Publish(event.Event{Type: event.Resize, W: 1001, H: 700, DPR: 1})
	drv.Advance()
	if reseeds() != 1 {
		t.Errorf("1px width change reseeded")
	}

	hub.Publish(event.Event{Type: event.Resize, W: 1300, H: 700, DPR: 1})
	drv.Advance()
	if reseeds() != 2 {
		t.Errorf("width change did not reseed")
	}
	if c.Simulation().Target() != 260 {
		t.Errorf("target = %d, want 260", c.Simulation().Target())
	}

	hub.Publish(event.Event{Type: event.ReducedMotion, Flag: true})
	drv.Advance()
	if reseeds() != 3 || !c.Simulation().ReducedMotion() {
		t.Errorf("reduced motion flip did not reseed")
	}

	hub.Publish(event.Event{Type: event.ReducedMotion, Flag: true})
	drv.Advance()
	if reseeds() != 3 {
		t.Errorf("unchanged preference reseeded")
	}
}

func TestControllerHeightOnlyResize(t *testing.T) {
	c, rec, drv, hub := newTestController(t)
	hub.Publish(event.Event{Type: event.Resize, W: 1000, H: 800, DPR: 1})
	c.Mount()
	drv.Advance()

	hub.Publish(event.Event{Type: event.Resize, W: 1000, H: 400, DPR: 1})
	drv.Advance()

	if got := c.Status().Snapshot().Reseeds; got != 1 {
		t.Errorf("reseeds = %d, height change should not reseed", got)
	}
	if w, h := rec.Size(); w != 1000 || h != 400 {
		t.Errorf("surface = %dx%d, want 1000x400", w, h)
	}
	sim := c.Simulation()
	if vp := sim.Viewport(); vp.W != 1000 || vp.H != 400 {
		t.Errorf("simulation viewport = %+v, want 1000x400", vp)
	}
	g := sim.Grid()
	if want := int(400/g.CellSize) + 1; g.Rows != want {
		t.Errorf("grid rows = %d, want %d", g.Rows, want)
	}
}

func TestControllerVisibilityGating(t *testing.T) {
	c, rec, drv, hub := newTestController(t)
	hub.Publish(event.Event{Type: event.Resize, W: 800, H: 600, DPR: 1})
	c.Mount()
	drv.Advance()

	hub.Publish(event.Event{Type: event.Visibility, Flag: false})
	rec.Reset()
	drv.AdvanceN(5)
	if len(rec.Ops) != 0 {
		t.Errorf("hidden page drew %d ops", len(rec.Ops))
	}
	if !drv.Pending() {
		t.Fatal("paused loop must keep re-requesting")
	}
	if c.Status().Snapshot().Running {
		t.Error("running metric should be false while hidden")
	}

	hub.Publish(event.Event{Type: event.Visibility, Flag: true})
	hub.Publish(event.Event{Type: event.Intersection, Flag: false})
	drv.Advance()
	if len(rec.Ops) != 0 {
		t.Error("non-intersecting surface drew")
	}

	hub.Publish(event.Event{Type: event.Intersection, Flag: true})
	drv.Advance()
	if rec.Count(render.OpPresent) != 1 {
		t.Error("visible and intersecting surface should draw")
	}
}

func TestControllerPointer(t *testing.T) {
	c, _, drv, hub := newTestController(t)
	hub.Publish(event.Event{Type: event.Resize, W: 800, H: 600, DPR: 1})
	c.Mount()

	hub.Publish(event.Event{Type: event.PointerMove, X: 100, Y: 200})
	drv.Advance()
	if !c.ptr.Active || c.ptr.X != 100 || c.ptr.Y != 200 {
		t.Errorf("pointer = %+v", c.ptr)
	}

	hub.Publish(event.Event{Type: event.PointerLeave})
	drv.Advance()
	if c.ptr.Active {
		t.Error("pointer should be inactive after leave")
	}
}

func TestControllerUnmountIdempotent(t *testing.T) {
	c, _, drv, hub := newTestController(t)
	c.Unmount()

	hub.Publish(event.Event{Type: event.Resize, W: 800, H: 600, DPR: 1})
	c.Mount()
	drv.Advance()

	c.Unmount()
	c.Unmount()

	if drv.Pending() {
		t.Error("unmount should cancel the pending frame")
	}
	if hub.Subscribers() != 0 {
		t.Errorf("subscribers = %d, want 0", hub.Subscribers())
	}
	if c.Simulation().Seeded() {
		t.Error("unmount should tear down the simulation")
	}

	// Remount replays the last resize and reseeds
	if err := c.Mount(); err != nil {
		t.Fatal(err)
	}
	drv.Advance()
	if !c.Simulation().Seeded() {
		t.Error("remount should reseed")
	}
	c.Unmount()
}

func TestControllerFrameAfterUnmount(t *testing.T) {
	c, rec, drv, _ := newTestController(t)
	c.Mount()
	c.Unmount()

	// A callback captured before unmount must not draw or reschedule
	c.frame(drv.now)
	if len(rec.Ops) != 0 || drv.Pending() {
		t.Error("stale frame ran after unmount")
	}
}
