package parameter

// Population
const (
	// ParticleCountMax caps the target population regardless of viewport width
	ParticleCountMax = 270

	// ParticleCountWidthDivisor converts viewport width into a target count (one particle per 5 px)
	ParticleCountWidthDivisor = 5.0

	// ParticleCountMin is the floor applied to collapsed or tiny viewports
	ParticleCountMin = 6

	// NarrowViewportWidth and its scale thin the field on phone-sized layouts
	NarrowViewportWidth = 640.0
	NarrowViewportScale = 0.55

	// MediumViewportWidth and its scale thin the field on tablet-sized layouts
	MediumViewportWidth = 1024.0
	MediumViewportScale = 0.8

	// InitialSpawnFraction is the share of the target spawned on (re)seed; the rest trickles in
	InitialSpawnFraction = 0.15
)

// Falling-in factory (collision respawn)
const (
	// ParticleRespawnOffset is the outside-edge offset range for collision losers
	ParticleRespawnOffset = 60.0

	// ParticleTargetJitter is the share of each dimension the aim point may wander from center
	ParticleTargetJitter = 0.2

	ParticleRadialSpeedMin = 0.10
	ParticleRadialSpeedMax = 0.24
	ParticleSwirlSpeed     = 0.05
	ParticleVelocityJitter = 0.01
)

// Drifting-in factory (initial population and replenishment)
const (
	EdgeSpawnOffsetMin      = 6.0
	EdgeSpawnOffsetMax      = 42.0
	EdgeSpawnTargetJitter   = 0.25
	EdgeSpawnRadialMin      = 0.0015
	EdgeSpawnRadialMax      = 0.008
	EdgeSpawnSwirlSpeed     = 0.004
	EdgeSpawnVelocityJitter = 0.008
)

// Shared initial attributes
const (
	ParticleDepthMin   = -80.0
	ParticleDepthMax   = 140.0
	ParticleDepthSpeed = 0.02
	ParticleSizeMin    = 0.5
	ParticleSizeMax    = 2.0
	ParticleOpacityMin = 0.3
	ParticleOpacityMax = 0.7
)

// Fade-into-attractor sequence
const (
	// FadeStart is the fadeOut value a particle commits with
	FadeStart = 0.99

	// FadeStep is subtracted from fadeOut every frame while fading
	FadeStep = 0.025

	// FadeDamping scales velocity every fading frame
	FadeDamping = 0.92

	// FadeCaptureRadius is the distance to the nearest attractor that starts a fade
	FadeCaptureRadius = 25.0

	// FadeMassTransfer is the share of particle mass added to the attractor's absorbed mass
	FadeMassTransfer = 0.1

	// FadeBrightnessGain is brightness added per unit of absorbed particle mass
	FadeBrightnessGain = 0.007

	// FadeBrightnessCap bounds attractor brightness after absorption
	FadeBrightnessCap = 0.5
)

// Merge
const (
	// MergeSizeMax caps a merged particle's size
	MergeSizeMax = 8.0

	// MergeSizeFactor scales sqrt(mass) into size
	MergeSizeFactor = 1.2

	// MergeOpacityGain and MergeOpacityMax brighten survivors
	MergeOpacityGain = 0.05
	MergeOpacityMax  = 0.9

	// MergeReachFactor scales combined size into the collision reach
	MergeReachFactor = 2.0
)

// Recycling
const (
	// RecycleDistance is how far beyond any edge a particle may drift before it is recycled
	RecycleDistance = 400.0
)
