package engine

import (
	"errors"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/event"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/status"
	"github.com/lixenwraith/driftfield/vmath"
)

// ErrNoSurface is returned by Mount when there is nothing to draw on
var ErrNoSurface = errors.New("engine: no drawing surface")

// ControllerOptions configures a Controller
type ControllerOptions struct {
	Simulation Options

	// MaxDPR caps the surface scale; 0 uses parameter.MaxDPR
	MaxDPR float64

	// ReducedMotion is the preference assumed until the host signals otherwise
	ReducedMotion bool
}

// Controller binds a Simulation to a surface, a frame driver and host signals
// The frame callback is the single owner of simulation state; hosts talk to it only through the hub
type Controller struct {
	mu sync.Mutex

	sim     *Simulation
	surface render.Surface
	driver  FrameDriver
	hub     *event.Hub
	maxDPR  float64

	queue   *event.Queue
	cancel  func()
	mounted bool
	scratch []event.Event

	// Host state as of the last drained signal
	vp            vmath.Viewport
	rawDPR        float64
	haveViewport  bool
	reducedMotion bool
	visible       bool
	intersecting  bool
	ptr           component.Pointer

	// State the simulation was last seeded with
	seededWidth   float64
	seededReduced bool
	scale         float64

	lastFrame time.Time

	// Cached metric pointers
	statRunning *atomic.Bool
	statReduced *atomic.Bool
	statReseeds *atomic.Int64
	statDPR     *status.AtomicFloat
	statFrameMs *status.AtomicFloat
	statFPS     *status.AtomicFloat
}

// NewController creates a controller; a nil hub gets a private one, see Hub
func NewController(surface render.Surface, driver FrameDriver, hub *event.Hub, opts ControllerOptions) *Controller {
	if hub == nil {
		hub = event.NewHub()
	}
	if opts.Simulation.Status == nil {
		opts.Simulation.Status = status.NewRegistry()
	}
	maxDPR := opts.MaxDPR
	if maxDPR <= 0 {
		maxDPR = parameter.MaxDPR
	}

	reg := opts.Simulation.Status
	return &Controller{
		sim:           NewSimulation(opts.Simulation),
		surface:       surface,
		driver:        driver,
		hub:           hub,
		maxDPR:        maxDPR,
		scratch:       make([]event.Event, 0, parameter.EventQueueSize),
		reducedMotion: opts.ReducedMotion,
		visible:       true,
		intersecting:  true,
		rawDPR:        1,
		statRunning:   reg.Bools.Get(status.KeyRunning),
		statReduced:   reg.Bools.Get(status.KeyReducedMotion),
		statReseeds:   reg.Ints.Get(status.KeyReseeds),
		statDPR:       reg.Floats.Get(status.KeyDPR),
		statFrameMs:   reg.Floats.Get(status.KeyFrameMs),
		statFPS:       reg.Floats.Get(status.KeyFPS),
	}
}

// Mount subscribes to host signals and schedules the first frame
// Mounting twice is a no-op; a nil surface returns ErrNoSurface and touches nothing
func (c *Controller) Mount() error {
	if c.surface == nil || c.driver == nil {
		return ErrNoSurface
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mounted {
		return nil
	}

	c.queue, c.cancel = c.hub.Subscribe()
	c.mounted = true
	c.lastFrame = time.Time{}
	c.driver.RequestFrame(c.frame)

	log.Printf("engine: mounted")
	return nil
}

// Unmount cancels the pending frame, detaches from the hub and releases the arenas
// Safe to call more than once and before Mount
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted {
		return
	}

	c.mounted = false
	c.driver.CancelFrame()
	c.cancel()
	c.queue = nil
	c.cancel = nil
	c.sim.Teardown()
	c.statRunning.Store(false)

	log.Printf("engine: unmounted")
}

// Mounted reports whether the frame loop is live
func (c *Controller) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Hub returns the signal hub hosts publish into
func (c *Controller) Hub() *event.Hub {
	return c.hub
}

// Simulation exposes the owned simulation for inspection between frames
func (c *Controller) Simulation() *Simulation {
	return c.sim
}

// Status returns the metrics registry shared with the simulation
func (c *Controller) Status() *status.Registry {
	return c.sim.Status()
}

// Scale returns the device scale last applied to the surface
func (c *Controller) Scale() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale
}

// frame drains signals, keeps the surface sized, steps the simulation when visible and re-requests itself
func (c *Controller) frame(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted {
		return
	}

	c.drain()
	c.layout()

	running := c.visible && c.intersecting
	c.statRunning.Store(running)
	if running && c.sim.Seeded() {
		start := time.Now()
		c.sim.Step(c.ptr, c.surface)
		c.statFrameMs.Smooth(float64(time.Since(start).Microseconds())/1000, 0.1)

		if !c.lastFrame.IsZero() {
			if dt := now.Sub(c.lastFrame).Seconds(); dt > 0 {
				c.statFPS.Smooth(1/dt, 0.1)
			}
		}
		c.lastFrame = now
	} else {
		// Resume measures from the first running frame, not across the pause
		c.lastFrame = time.Time{}
	}

	c.driver.RequestFrame(c.frame)
}

func (c *Controller) drain() {
	c.scratch = c.queue.Drain(c.scratch[:0])
	for _, ev := range c.scratch {
		switch ev.Type {
		case event.Resize:
			c.vp = vmath.Viewport{W: ev.W, H: ev.H}
			if ev.DPR > 0 {
				c.rawDPR = ev.DPR
			}
			c.haveViewport = true
		case event.PointerMove:
			c.ptr = component.Pointer{X: ev.X, Y: ev.Y, Active: true}
		case event.PointerLeave:
			c.ptr.Active = false
		case event.Visibility:
			c.visible = ev.Flag
		case event.Intersection:
			c.intersecting = ev.Flag
		case event.ReducedMotion:
			c.reducedMotion = ev.Flag
		}
	}
}

// effectiveScale is min(devicePixelRatio, MaxDPR, 1 if reduced motion)
// rawDPR only takes positive values, so the result is always positive
func (c *Controller) effectiveScale() float64 {
	s := math.Min(c.rawDPR, c.maxDPR)
	if c.reducedMotion {
		s = math.Min(s, parameter.ReducedMotionDPR)
	}
	return s
}

// layout resizes the surface and re-seeds when the width or the motion preference changed
func (c *Controller) layout() {
	if !c.haveViewport {
		// No resize signal yet: take the surface as the host sized it
		w, h := c.surface.Size()
		c.vp = vmath.Viewport{W: float64(w), H: float64(h)}
		c.haveViewport = true
	}

	scale := c.effectiveScale()
	w, h := c.surface.Size()
	if scale != c.scale || w != int(c.vp.W) || h != int(c.vp.H) {
		c.surface.Resize(int(c.vp.W), int(c.vp.H), scale)
		c.scale = scale
		c.statDPR.Set(scale)
	}
	c.statReduced.Store(c.reducedMotion)

	widthChanged := math.Abs(c.vp.W-c.seededWidth) > parameter.ReseedWidthDelta
	if c.sim.Seeded() && !widthChanged && c.reducedMotion == c.seededReduced {
		if c.sim.Viewport() != c.vp {
			c.sim.SetViewport(c.vp)
		}
		return
	}

	c.sim.Reset(c.vp, scale, c.reducedMotion)
	c.seededWidth = c.vp.W
	c.seededReduced = c.reducedMotion
	c.statReseeds.Add(1)
	log.Printf("engine: seeded %.0fx%.0f scale %.1f reduced=%v target=%d", c.vp.W, c.vp.H, scale, c.reducedMotion, c.sim.Target())
}
