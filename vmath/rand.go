package vmath

import "time"

// Rand is the random source consumed by factories and jitter
// Implementations need not be safe for concurrent use; the frame owner holds it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// FastRand is a xorshift64 generator, seedable for reproducible runs
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; seed 0 is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeededRand seeds from the wall clock
func NewTimeSeededRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Spread returns a uniform value in [-amp, amp)
func Spread(r Rand, amp float64) float64 {
	return (r.Float64()*2 - 1) * amp
}
