package component

// Particle is one light point in the field
// Slots are reused in place by the factories; a particle is never removed from its arena
type Particle struct {
	// Position in logical pixels; Z is a depth offset for projection and ordering only
	X, Y, Z float64

	VX, VY, VZ float64

	// Base render scale factors, grown by merges
	Size    float64
	Opacity float64

	// Starts at 1, summed on merge
	Mass float64

	// False from the moment a merge consumes the slot until the respawn pass reinitializes it
	Alive bool

	// 1 while active; counts down toward 0 once committed to an attractor
	FadeOut float64

	// Attractor index a fading particle is committed to, -1 otherwise
	Target int
}

// Active reports whether the particle takes part in grid, forces and collisions
func (p *Particle) Active() bool {
	return p.Alive && p.FadeOut >= 1
}

// Fading reports whether the particle is running its fade-into-attractor sequence
func (p *Particle) Fading() bool {
	return p.FadeOut < 1
}

// SpeedSq returns the squared planar speed
func (p *Particle) SpeedSq() float64 {
	return p.VX*p.VX + p.VY*p.VY
}

// CountAlive returns the number of live slots
func CountAlive(ps []Particle) int {
	n := 0
	for i := range ps {
		if ps[i].Alive {
			n++
		}
	}
	return n
}

// TotalMass sums mass over active particles
func TotalMass(ps []Particle) float64 {
	m := 0.0
	for i := range ps {
		if ps[i].Active() {
			m += ps[i].Mass
		}
	}
	return m
}
