package terminal

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/driftfield/render"
	"github.com/lixenwraith/driftfield/status"
)

var hudColor = render.RGB{R: 200, G: 210, B: 230}

// HUD overlays live metrics on a cell surface at Present
// Visibility may be toggled from any goroutine
type HUD struct {
	*render.CellSurface

	reg     *status.Registry
	visible atomic.Bool
}

// NewHUD wraps surface; the overlay starts hidden unless visible is set
func NewHUD(surface *render.CellSurface, reg *status.Registry, visible bool) *HUD {
	h := &HUD{CellSurface: surface, reg: reg}
	h.visible.Store(visible)
	return h
}

// Toggle flips visibility and returns the new state
func (h *HUD) Toggle() bool {
	for {
		v := h.visible.Load()
		if h.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

func (h *HUD) Visible() bool {
	return h.visible.Load()
}

// Present queues the overlay text then presents the frame
func (h *HUD) Present() {
	if h.visible.Load() && h.reg != nil {
		for i, line := range HUDLines(h.reg.Snapshot()) {
			h.Text(1, i, line, hudColor)
		}
	}
	h.CellSurface.Present()
}

// HUDLines formats a metrics snapshot for the overlay
func HUDLines(s status.Snapshot) []string {
	state := "running"
	if !s.Running {
		state = "paused"
	}
	motion := "full"
	if s.ReducedMotion {
		motion = "reduced"
	}
	return []string{
		fmt.Sprintf("particles %d/%d  %.0f fps  %.2f ms", s.Live, s.Target, s.FPS, s.FrameMs),
		fmt.Sprintf("merges %d  absorbed %d  recycled %d", s.Merges, s.Absorbed, s.Recycled),
		fmt.Sprintf("%s  motion %s  scale %.0f  reseeds %d  %s", s.Palette, motion, s.DPR, s.Reseeds, state),
	}
}
