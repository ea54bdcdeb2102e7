package physics

import (
	"github.com/lixenwraith/driftfield/component"
	"github.com/lixenwraith/driftfield/parameter"
	"github.com/lixenwraith/driftfield/vmath"
)

// SpatialGrid buckets active particle indices by cell for near-pair queries
// Rebuilt every frame; buckets keep their capacity so steady state does not allocate
type SpatialGrid struct {
	CellSize float64
	Cols     int
	Rows     int
	cells    [][]int
}

// NewSpatialGrid creates an empty grid; Build sizes it to the viewport
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = parameter.GridCellSize
	}
	return &SpatialGrid{CellSize: cellSize}
}

// Resize fits the grid to a viewport, reallocating only when the cell count grows
func (g *SpatialGrid) Resize(vp vmath.Viewport) {
	cols := int(vp.W/g.CellSize) + 1
	rows := int(vp.H/g.CellSize) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	n := cols * rows
	if cap(g.cells) < n {
		g.cells = make([][]int, n)
	} else {
		g.cells = g.cells[:n]
	}
	g.Cols = cols
	g.Rows = rows
}

// Clear empties every bucket, keeping capacity
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Build clears the grid and inserts every active particle inset from the viewport edges
func (g *SpatialGrid) Build(ps []component.Particle, vp vmath.Viewport) {
	cols := int(vp.W/g.CellSize) + 1
	rows := int(vp.H/g.CellSize) + 1
	if cols != g.Cols || rows != g.Rows {
		g.Resize(vp)
	}
	g.Clear()

	for i := range ps {
		p := &ps[i]
		if !p.Active() {
			continue
		}
		if !vp.Inset(p.X, p.Y, parameter.GridMargin) {
			continue
		}
		cx, cy := vmath.Cell(p.X, p.Y, g.CellSize)
		if cx < 0 || cx >= g.Cols || cy < 0 || cy >= g.Rows {
			continue
		}
		idx := cy*g.Cols + cx
		g.cells[idx] = append(g.cells[idx], i)
	}
}

// At returns the bucket for cell (cx, cy), nil when out of range
// The slice is owned by the grid and valid until the next Build
func (g *SpatialGrid) At(cx, cy int) []int {
	if cx < 0 || cx >= g.Cols || cy < 0 || cy >= g.Rows {
		return nil
	}
	return g.cells[cy*g.Cols+cx]
}

// Len returns the number of indexed particles
func (g *SpatialGrid) Len() int {
	n := 0
	for i := range g.cells {
		n += len(g.cells[i])
	}
	return n
}

// ForEachPair calls fn once for every unordered pair of indices in the same or adjacent cells
func (g *SpatialGrid) ForEachPair(fn func(i, j int)) {
	for cy := 0; cy < g.Rows; cy++ {
		for cx := 0; cx < g.Cols; cx++ {
			home := g.cells[cy*g.Cols+cx]
			if len(home) == 0 {
				continue
			}
			for _, off := range vmath.HalfNeighborhood {
				if off.DX == 0 && off.DY == 0 {
					for a := 0; a < len(home); a++ {
						for b := a + 1; b < len(home); b++ {
							fn(home[a], home[b])
						}
					}
					continue
				}
				other := g.At(cx+off.DX, cy+off.DY)
				for _, i := range home {
					for _, j := range other {
						fn(i, j)
					}
				}
			}
		}
	}
}
