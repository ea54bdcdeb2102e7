package component

// Attractor is a slow gravity well oscillating around its base position
type Attractor struct {
	X, Y         float64
	BaseX, BaseY float64
	VX, VY       float64

	// Scales pull strength and drawn glow/core size
	Mass float64

	// Cumulative mass received from faded particles, visual only
	AbsorbedMass float64

	// Decays every frame, boosted on absorption
	Brightness float64
}

// Centroid returns the mean attractor position, or (fx, fy) for an empty set
func Centroid(as []Attractor, fx, fy float64) (float64, float64) {
	if len(as) == 0 {
		return fx, fy
	}
	var sx, sy float64
	for i := range as {
		sx += as[i].X
		sy += as[i].Y
	}
	n := float64(len(as))
	return sx / n, sy / n
}
