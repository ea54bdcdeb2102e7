package status

import "sync/atomic"

// Metric keys published by the simulation
const (
	KeyParticlesLive   = "particles.live"
	KeyParticlesTarget = "particles.target"
	KeyMergesTotal     = "merges.total"
	KeyAbsorbedTotal   = "absorbed.total"
	KeyRecycledTotal   = "recycled.total"
	KeyReseeds         = "reseeds.total"
	KeyFrameMs         = "frame.ms"
	KeyFPS             = "frame.fps"
	KeyDPR             = "surface.dpr"
	KeyRunning         = "loop.running"
	KeyReducedMotion   = "loop.reduced_motion"
	KeyPalette         = "render.palette"
)

// Registry is the metrics facade shared by the simulation and its hosts
// The frame owner caches pointers once and writes atomics; HUD and logs read them from any goroutine
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot is a point-in-time copy of the well-known metrics
type Snapshot struct {
	Live, Target     int64
	Merges, Absorbed int64
	Recycled         int64
	Reseeds          int64
	FrameMs, FPS     float64
	DPR              float64
	Running          bool
	ReducedMotion    bool
	Palette          string
}

// Snapshot reads the well-known metrics, registering any that are absent
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Live:          r.Ints.Get(KeyParticlesLive).Load(),
		Target:        r.Ints.Get(KeyParticlesTarget).Load(),
		Merges:        r.Ints.Get(KeyMergesTotal).Load(),
		Absorbed:      r.Ints.Get(KeyAbsorbedTotal).Load(),
		Recycled:      r.Ints.Get(KeyRecycledTotal).Load(),
		Reseeds:       r.Ints.Get(KeyReseeds).Load(),
		FrameMs:       r.Floats.Get(KeyFrameMs).Get(),
		FPS:           r.Floats.Get(KeyFPS).Get(),
		DPR:           r.Floats.Get(KeyDPR).Get(),
		Running:       r.Bools.Get(KeyRunning).Load(),
		ReducedMotion: r.Bools.Get(KeyReducedMotion).Load(),
		Palette:       r.Strings.Get(KeyPalette).Load(),
	}
}
