package parameter

// Attractor population and motion
const (
	// AttractorCount is fixed per simulation instance
	AttractorCount = 12

	// AttractorRegionX and AttractorRegionY are the centered share of the viewport attractors seed into
	AttractorRegionX = 0.8
	AttractorRegionY = 0.7

	AttractorMassMin = 0.3
	AttractorMassMax = 0.8

	// AttractorInitialSpeed is the initial per-axis velocity spread
	AttractorInitialSpeed = 0.15

	AttractorBrightnessMin = 0.08
	AttractorBrightnessMax = 0.13

	// AttractorSpring pulls an attractor back toward its base position
	AttractorSpring = 0.00008

	// AttractorJitter is the per-frame random velocity kick
	AttractorJitter = 0.002

	// AttractorDamping scales velocity every frame
	AttractorDamping = 0.995

	// AttractorBrightnessDecay scales brightness every frame
	AttractorBrightnessDecay = 0.9985

	// AttractorBrightnessFloor keeps idle wells faintly visible
	AttractorBrightnessFloor = 0.04
)
