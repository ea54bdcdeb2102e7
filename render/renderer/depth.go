package renderer

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/vmath"
)

// DepthOrder fills order with live particle indices sorted back to front (ascending z)
// Slots stay in place so grid indices built this frame remain valid
func DepthOrder(order []int, ps []component.Particle) []int {
	order = order[:0]
	for i := range ps {
		if ps[i].Alive {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(ps[a].Z, ps[b].Z)
	})
	return order
}

// DepthAlpha maps raw z to a brightness factor, dimmer further back
func DepthAlpha(z float64) float64 {
	return vmath.Clamp(1-(z+parameter.DepthAlphaOffset)/parameter.DepthAlphaRange, parameter.DepthAlphaMin, 1)
}
