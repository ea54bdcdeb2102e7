package vmath

// Perspective is the focal distance of the depth projection in logical pixels
const Perspective = 600.0

// OnScreenSlack is how far outside the surface a projected point may sit and still be drawn
const OnScreenSlack = 10.0

// Projection is a particle position mapped onto the drawing surface
type Projection struct {
	X, Y  float64
	Scale float64
}

// PerspectiveScale returns the depth shrink factor, 1 at z = 0
// Depth is clamped just short of the focal plane to keep the scale finite
func PerspectiveScale(z float64) float64 {
	d := Perspective + z
	if d < 1 {
		d = 1
	}
	return Perspective / d
}

// Project pulls far points toward (cx, cy) and pushes near points away from it
func Project(x, y, z, cx, cy float64) Projection {
	s := PerspectiveScale(z)
	k := 1 - s
	return Projection{
		X:     x + (cx-x)*k,
		Y:     y + (cy-y)*k,
		Scale: s,
	}
}

// OnScreen culls points more than OnScreenSlack outside a w×h surface
func OnScreen(sx, sy, w, h float64) bool {
	return sx >= -OnScreenSlack && sx <= w+OnScreenSlack &&
		sy >= -OnScreenSlack && sy <= h+OnScreenSlack
}
