package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DefaultFPS mirrors FrameUpdateInterval for configuration defaults
	DefaultFPS = 60

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 5
	MaxFPS = 240
)

// Signal queue
const (
	// EventQueueSize is the fixed capacity of each subscriber ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Device pixel ratio
const (
	// MaxDPR caps the surface backing scale
	MaxDPR = 2.0

	// ReducedMotionDPR is the cap applied while reduced motion is preferred
	ReducedMotionDPR = 1.0

	// ReseedWidthDelta is the width change in logical pixels that triggers a full re-seed
	ReseedWidthDelta = 1.0
)
