package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/driftfield/core"
	"github.com/lixenwraith/driftfield/parameter"
)

// FrameFunc is a scheduled frame callback
type FrameFunc func(now time.Time)

// FrameDriver schedules one frame callback at a time
// A callback re-requests itself to keep the loop alive; callbacks never overlap
type FrameDriver interface {
	// RequestFrame schedules fn for the next frame, replacing any pending callback
	RequestFrame(fn FrameFunc)

	// CancelFrame drops the pending callback; it does not wait for one in flight
	CancelFrame()
}

// TickerDriver runs callbacks on a fixed-interval ticker goroutine
type TickerDriver struct {
	interval time.Duration

	mu      sync.Mutex
	pending FrameFunc
	started bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewTickerDriver creates a driver; the ticker goroutine starts on the first request
func NewTickerDriver(interval time.Duration) *TickerDriver {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &TickerDriver{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// IntervalForFPS converts a frame rate into a ticker interval
func IntervalForFPS(fps int) time.Duration {
	if fps <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(fps)
}

func (d *TickerDriver) RequestFrame(fn FrameFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = fn
	if !d.started {
		d.started = true
		d.wg.Add(1)
		core.Go(d.loop)
	}
}

func (d *TickerDriver) CancelFrame() {
	d.mu.Lock()
	d.pending = nil
	d.mu.Unlock()
}

// Stop terminates the ticker goroutine and waits for it
// Must not be called from inside a frame callback
func (d *TickerDriver) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopChan)
		d.wg.Wait()
	})
}

func (d *TickerDriver) loop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case now := <-ticker.C:
			d.mu.Lock()
			fn := d.pending
			d.pending = nil
			d.mu.Unlock()

			if fn != nil {
				fn(now)
			}
		}
	}
}

// ManualDriver runs callbacks only when Advance is called
// Used by tests, the snapshot renderer and hosts that own their main loop
type ManualDriver struct {
	mu      sync.Mutex
	pending FrameFunc
	now     time.Time

	// Step advances the synthetic clock per frame
	Step time.Duration

	// Frames counts callbacks run
	Frames int
}

func NewManualDriver() *ManualDriver {
	return &ManualDriver{
		now:  time.Unix(0, 0),
		Step: parameter.FrameUpdateInterval,
	}
}

func (d *ManualDriver) RequestFrame(fn FrameFunc) {
	d.mu.Lock()
	d.pending = fn
	d.mu.Unlock()
}

func (d *ManualDriver) CancelFrame() {
	d.mu.Lock()
	d.pending = nil
	d.mu.Unlock()
}

// Pending reports whether a callback is scheduled
func (d *ManualDriver) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Advance runs the pending callback once on the synthetic clock; false when nothing was scheduled
func (d *ManualDriver) Advance() bool {
	d.mu.Lock()
	d.now = d.now.Add(d.Step)
	now := d.now
	d.mu.Unlock()
	return d.AdvanceAt(now)
}

// AdvanceAt runs the pending callback stamped with now, for hosts on a real clock
func (d *ManualDriver) AdvanceAt(now time.Time) bool {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn == nil {
		return false
	}
	d.Frames++
	fn(now)
	return true
}

// AdvanceN runs up to n frames and returns how many ran
func (d *ManualDriver) AdvanceN(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		if !d.Advance() {
			break
		}
		ran++
	}
	return ran
}
