package constants

// Player tuning
const (
	PlayerWidth  = 60
	PlayerHeight = 40

	// PlayerSpeed is the base horizontal and lane-slide speed per frame
	PlayerSpeed = 7.0
)

// Timed effects, in frames
const (
	// JumpDuration is how long a ramp jump lasts
	JumpDuration = 30

	// JumpHeight is the peak visual lift of the jump arc
	JumpHeight = 50

	// BoostDuration is how long a speed boost lasts (3 seconds)
	BoostDuration = 180

	// BoostSpeedMultiplier scales player speed while boosting
	BoostSpeedMultiplier = 1.8

	// ExplosionDuration is the length of the dying window
	ExplosionDuration = 40
)

// Scoring
const (
	// CoinValue is added to the score per collected coin
	CoinValue = 10
)

// Object sizes
const (
	CoinSize        = 40
	ObstacleWidth   = 40
	ObstacleHeight  = 40
	RampWidth       = 40
	RampHeight      = 40
	BoostObjectSize = 40
)

// Row spawning
const (
	// SpawnInterval is the number of frames between spawned rows
	SpawnInterval = 80

	// HazardRowChance is the probability of a full obstacle row with one ramp
	HazardRowChance = 0.2

	// Mixed row cumulative thresholds per lane
	MixedObstacleThreshold = 0.25
	MixedCoinThreshold     = 0.45
	MixedBoostThreshold    = 0.50
)

// Boost trail particles
const (
	// TrailParticleLifetime is the initial lifetime of a trail particle in frames
	TrailParticleLifetime = 30

	// TrailEmitEvery emits one particle every N frames while boosting
	TrailEmitEvery = 2

	// TrailOffsetSpread is the vertical jitter around the player's center
	TrailOffsetSpread = 10

	// TrailSizeMin and TrailSizeSpread bound the initial particle size
	TrailSizeMin    = 2
	TrailSizeSpread = 5

	// TrailVerticalSpread bounds the vertical drift velocity
	TrailVerticalSpread = 2

	// ParticleSizeDecay scales particle size every frame
	ParticleSizeDecay = 0.98

	// ParticleMinSize is the size below which a particle is dropped
	ParticleMinSize = 1
)

// TrailColors is the boost trail palette
var TrailColors = []string{"#FFFF00", "#FFD700", "#FFA500"}
