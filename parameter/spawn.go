package parameter

// Replenishment throttle
const (
	// SpawnWaveMax is the largest number of particles added in one wave
	SpawnWaveMax = 4

	// SpawnCooldownBase is the frames waited after a full wave
	SpawnCooldownBase = 6

	// SpawnCooldownStep adds frames for each particle a wave falls short of SpawnWaveMax
	SpawnCooldownStep = 4
)
