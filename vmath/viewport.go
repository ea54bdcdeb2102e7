package vmath

// Viewport is the logical drawing area in CSS-style pixels
type Viewport struct {
	W, H float64
}

// Center returns the viewport midpoint
func (v Viewport) Center() (float64, float64) {
	return v.W / 2, v.H / 2
}

// Clamped guards spawn regions against collapsed layouts
func (v Viewport) Clamped() Viewport {
	if v.W < 1 {
		v.W = 1
	}
	if v.H < 1 {
		v.H = 1
	}
	return v
}

// Outside reports whether (x, y) lies more than margin beyond any edge
func (v Viewport) Outside(x, y, margin float64) bool {
	return x < -margin || x > v.W+margin || y < -margin || y > v.H+margin
}

// Inset reports whether (x, y) lies at least margin inside every edge
func (v Viewport) Inset(x, y, margin float64) bool {
	return x >= margin && x <= v.W-margin && y >= margin && y <= v.H-margin
}

// Clamp01 limits f to [0, 1]
func Clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Clamp limits f to [lo, hi]
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
