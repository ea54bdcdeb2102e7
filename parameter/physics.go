package parameter

// Spatial grid
const (
	// GridCellSize matches the largest pair query radius (sqrt(PairRangeMaxSq))
	GridCellSize = 60.0

	// GridMargin excludes near-edge particles from the grid
	GridMargin = 10.0
)

// Particle-particle attraction
const (
	// PairRangeMinSq and PairRangeMaxSq bound attraction to (15 px, 60 px]
	PairRangeMinSq = 225.0
	PairRangeMaxSq = 3600.0

	// PairAttraction scales (mA + mB) / d along the connecting line
	PairAttraction = 0.0006

	// PairSwirl scales (mA + mB) / d along the perpendicular
	PairSwirl = 0.00025
)

// Attractor and pointer gravity
const (
	// GravityStrength multiplies attractor mass
	GravityStrength = 25.0

	// GravitySoftening is added to the squared distance
	GravitySoftening = 100.0

	// PointerStrength is the pointer's pull numerator
	PointerStrength = 6.0

	// PointerSoftening is added to the squared pointer distance
	PointerSoftening = 400.0
)

// Edge pull-back
const (
	// EdgePullThreshold is the normalized center distance where pull-back starts
	EdgePullThreshold = 0.9

	// EdgePull is the pull-back acceleration reached at the viewport edge
	EdgePull = 0.004
)

// Integration and damping
const (
	// DepthSpring pulls z back toward the focal plane
	DepthSpring = 0.0005

	VelocityDamping = 0.996
	DepthDamping    = 0.99

	// DriftScaleLeft and DriftScaleRight scale the x/y step by which half of the viewport a particle is in
	DriftScaleLeft  = 0.85
	DriftScaleRight = 0.45

	// Epsilon guards magnitudes that may be exactly zero
	Epsilon = 1e-6
)
