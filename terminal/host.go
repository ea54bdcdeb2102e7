package terminal

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/driftfield/core"
	"github.com/lixenwraith/driftfield/event"
	"github.com/lixenwraith/driftfield/parameter"
)

// HostOptions configures a Host
type HostOptions struct {
	// PauseOnBlur maps terminal focus to visibility
	PauseOnBlur bool

	// ReducedMotion is the initial preference; the r key toggles it
	ReducedMotion bool

	// Smoothing eases the pointer between cells instead of jumping
	Smoothing bool

	// FPS is the pointer smoothing rate, normally the frame rate
	FPS int
}

// Host turns tcell input into hub signals and owns the input loop
type Host struct {
	screen tcell.Screen
	hub    *event.Hub
	hud    *HUD
	opts   HostOptions

	smoother *PointerSmoother
	reduced  bool

	eventCh  chan tcell.Event
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewHost creates a host over an initialized screen; hud may be nil
func NewHost(screen tcell.Screen, hub *event.Hub, hud *HUD, opts HostOptions) *Host {
	if opts.FPS <= 0 {
		opts.FPS = parameter.DefaultFPS
	}
	return &Host{
		screen:   screen,
		hub:      hub,
		hud:      hud,
		opts:     opts,
		smoother: NewPointerSmoother(opts.FPS),
		reduced:  opts.ReducedMotion,
		eventCh:  make(chan tcell.Event, parameter.EventQueueSize),
		stopCh:   make(chan struct{}),
	}
}

// Start enables mouse and focus reporting and publishes the initial viewport and preferences
func (h *Host) Start() {
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.EnableFocus()
	h.screen.HideCursor()

	cols, rows := h.screen.Size()
	h.publishResize(cols, rows)
	h.hub.Publish(event.Event{Type: event.ReducedMotion, Flag: h.reduced})
}

// Run starts the host and blocks until a quit key or Stop
// All input handling and pointer smoothing happen on the calling goroutine
func (h *Host) Run() {
	defer h.Stop()
	h.Start()

	core.Go(h.pollLoop)

	ticker := time.NewTicker(time.Second / time.Duration(h.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case ev, ok := <-h.eventCh:
			if !ok {
				return
			}
			if !h.HandleEvent(ev) {
				log.Printf("terminal: quit requested")
				return
			}
		case <-ticker.C:
			h.Tick()
		}
	}
}

// pollLoop forwards screen events until the screen is finalized or the host stops
func (h *Host) pollLoop() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			close(h.eventCh)
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			select {
			case <-h.stopCh:
				return
			default:
				continue
			}
		}

		select {
		case h.eventCh <- ev:
		case <-h.stopCh:
			return
		}
	}
}

// Stop ends Run; safe to call more than once
func (h *Host) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopCh)
		// Unblock PollEvent
		_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}

// HandleEvent applies one input event and reports whether the host should keep running
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		h.screen.Sync()
		cols, rows := ev.Size()
		h.publishResize(cols, rows)

	case *tcell.EventMouse:
		x, y := CellCenter(ev.Position())
		if h.opts.Smoothing {
			h.smoother.Target(x, y)
		} else {
			h.hub.Publish(event.Event{Type: event.PointerMove, X: x, Y: y})
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			h.smoother.Reset()
			h.hub.Publish(event.Event{Type: event.PointerLeave})
		}
		if h.opts.PauseOnBlur {
			h.hub.Publish(event.Event{Type: event.Visibility, Flag: ev.Focused})
		}
	}
	return true
}

func (h *Host) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case 'r', 'R':
		h.reduced = !h.reduced
		h.hub.Publish(event.Event{Type: event.ReducedMotion, Flag: h.reduced})
	case 'h', 'H':
		if h.hud != nil {
			h.hud.Toggle()
		}
	}
	return true
}

// Tick advances pointer smoothing and publishes the eased position when it moved
func (h *Host) Tick() {
	if x, y, moved := h.smoother.Step(); moved {
		h.hub.Publish(event.Event{Type: event.PointerMove, X: x, Y: y})
	}
}

// ReducedMotion returns the current preference
func (h *Host) ReducedMotion() bool {
	return h.reduced
}

func (h *Host) publishResize(cols, rows int) {
	h.hub.Publish(event.Event{
		Type: event.Resize,
		W:    float64(cols * parameter.DefaultCellWidth),
		H:    float64(rows * parameter.DefaultCellHeight),
		DPR:  1,
	})
}
