package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lixenwraith/driftfield/event"
)

// windowHost translates SDL window callbacks into hub signals
// Callbacks arrive on the SDL main loop goroutine
type windowHost struct {
	hub         *event.Hub
	pauseOnBlur bool
	reduced     bool

	width, height int
}

func newWindowHost(hub *event.Hub, pauseOnBlur, reduced bool) *windowHost {
	return &windowHost{hub: hub, pauseOnBlur: pauseOnBlur, reduced: reduced}
}

func (h *windowHost) publishPreferences() {
	h.hub.Publish(event.Event{Type: event.ReducedMotion, Flag: h.reduced})
}

// resize publishes the canvas size when it changed; SDL windows here are not high-DPI
func (h *windowHost) resize(w, hgt int) {
	if w == h.width && hgt == h.height {
		return
	}
	h.width, h.height = w, hgt
	h.hub.Publish(event.Event{Type: event.Resize, W: float64(w), H: float64(hgt), DPR: 1})
}

func (h *windowHost) mouseMove(x, y int) {
	h.hub.Publish(event.Event{Type: event.PointerMove, X: float64(x), Y: float64(y)})
}

// key reports false when the window should close
func (h *windowHost) key(rn rune, name string) bool {
	if name == "Escape" || rn == 'q' {
		return false
	}
	if rn == 'r' {
		h.reduced = !h.reduced
		h.publishPreferences()
	}
	return true
}

func (h *windowHost) windowEvent(we *sdl.WindowEvent) {
	switch we.Event {
	case sdl.WINDOWEVENT_LEAVE:
		h.hub.Publish(event.Event{Type: event.PointerLeave})
	case sdl.WINDOWEVENT_MINIMIZED, sdl.WINDOWEVENT_HIDDEN:
		h.hub.Publish(event.Event{Type: event.Visibility, Flag: false})
	case sdl.WINDOWEVENT_RESTORED, sdl.WINDOWEVENT_SHOWN:
		h.hub.Publish(event.Event{Type: event.Visibility, Flag: true})
	case sdl.WINDOWEVENT_FOCUS_LOST:
		if h.pauseOnBlur {
			h.hub.Publish(event.Event{Type: event.Visibility, Flag: false})
		}
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		if h.pauseOnBlur {
			h.hub.Publish(event.Event{Type: event.Visibility, Flag: true})
		}
	}
}
