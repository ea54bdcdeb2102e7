package terminal

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/driftfield/parameter"
)

// CellCenter maps a cell to the logical pixel at its center
func CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * parameter.DefaultCellWidth, (float64(row) + 0.5) * parameter.DefaultCellHeight
}

// PointerSmoother eases the pointer between cell-quantized mouse reports
// Not safe for concurrent use
type PointerSmoother struct {
	spring harmonica.Spring

	x, y   float64
	vx, vy float64
	tx, ty float64

	primed  bool
	settled bool
}

// NewPointerSmoother creates a critically damped smoother stepped fps times a second
func NewPointerSmoother(fps int) *PointerSmoother {
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	return &PointerSmoother{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), parameter.PointerSpringFrequency, parameter.PointerSpringDamping),
		settled: true,
	}
}

// Target sets the position to ease toward; the first target after Reset is taken immediately
func (p *PointerSmoother) Target(x, y float64) {
	p.tx, p.ty = x, y
	if !p.primed {
		p.x, p.y = x, y
		p.vx, p.vy = 0, 0
		p.primed = true
	}
	p.settled = false
}

// Step advances one frame and reports whether the position changed since the last step
func (p *PointerSmoother) Step() (x, y float64, moved bool) {
	if !p.primed || p.settled {
		return p.x, p.y, false
	}

	p.x, p.vx = p.spring.Update(p.x, p.vx, p.tx)
	p.y, p.vy = p.spring.Update(p.y, p.vy, p.ty)

	if math.Hypot(p.tx-p.x, p.ty-p.y) < parameter.PointerSettleDistance {
		p.x, p.y = p.tx, p.ty
		p.vx, p.vy = 0, 0
		p.settled = true
	}
	return p.x, p.y, true
}

// Position returns the current smoothed position and whether a target has been set
func (p *PointerSmoother) Position() (float64, float64, bool) {
	return p.x, p.y, p.primed
}

// Reset forgets the pointer, the next target snaps
func (p *PointerSmoother) Reset() {
	p.primed = false
	p.settled = true
	p.vx, p.vy = 0, 0
}
