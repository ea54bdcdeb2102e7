package vmath

import "math"

// CellOffset is a relative grid cell
type CellOffset struct {
	DX, DY int
}

// HalfNeighborhood is the forward half of the 8-neighborhood plus the cell itself
// Scanning these offsets from every cell, with an index guard inside the cell, reaches each adjacent pair once
var HalfNeighborhood = [5]CellOffset{
	{0, 0},
	{1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
}

// Cell floors a position into integer cell coordinates
func Cell(x, y, size float64) (int, int) {
	return int(math.Floor(x / size)), int(math.Floor(y / size))
}

// Adjacent reports whether two cells touch, including diagonals and identity
func Adjacent(ax, ay, bx, by int) bool {
	dx := ax - bx
	dy := ay - by
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}
