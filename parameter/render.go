package parameter

// Particle drawing
const (
	// DepthAlphaOffset and DepthAlphaRange map raw z into a depth brightness
	DepthAlphaOffset = 250.0
	DepthAlphaRange  = 1000.0
	DepthAlphaMin    = 0.1

	// GlowMassThreshold is the mass above which a particle gets a radial glow
	GlowMassThreshold = 2.0

	// GlowRadiusFactor scales particle size into glow radius
	GlowRadiusFactor = 3.0

	// TrailSpeedThreshold is the speed above which active particles draw a trail
	TrailSpeedThreshold = 0.3

	// TrailLengthFactor converts speed into trail length
	TrailLengthFactor = 12.0

	// TrailLengthMax caps trail length before projection scaling
	TrailLengthMax = 15.0
)

// Connection lines
const (
	// ConnectionRangeSq is the squared pair distance under which a line is drawn
	ConnectionRangeSq = 3600.0

	// ConnectionAlpha is the line alpha at zero distance
	ConnectionAlpha = 0.18

	ConnectionWidth = 0.6
)

// Attractor drawing
const (
	AttractorGlowBase     = 28.0
	AttractorGlowAbsorbed = 6.0
	AttractorGlowMax      = 90.0
	AttractorCoreBase     = 1.5
	AttractorCoreMass     = 2.0
)

// Terminal cell geometry in logical pixels; half-block glyphs split a cell into two square-ish sub-cells
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Terminal pointer smoothing; mouse reports jump a whole cell at a time
const (
	PointerSpringFrequency = 8.0
	PointerSpringDamping   = 1.0

	// PointerSettleDistance snaps the smoothed pointer onto its target
	PointerSettleDistance = 0.5
)
