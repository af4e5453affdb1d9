package constants

// Track Rendering
const (
	// LaneDashLength is the world length of one lane-separator dash
	LaneDashLength = 40

	// LaneDashGap is the world gap between dashes; the pattern repeats every length+gap
	LaneDashGap = 30

	// ExplosionSizeStart is the world diameter of a fresh explosion
	ExplosionSizeStart = 20

	// ExplosionSizeGrowth is how much the explosion widens over its duration
	ExplosionSizeGrowth = 80

	// ParticleLargeSize is the size from which a particle draws as a bullet instead of a dot
	ParticleLargeSize = 4
)

// UI Layout Constants
const (
	// HUDMargin is the column inset of the score readouts
	HUDMargin = 2

	// MinScreenWidth and MinScreenHeight are the smallest terminal the track is drawn in
	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// UI Text
const (
	TitleLine1  = "PIXEL"
	TitleLine2  = "RACER"
	TagLine     = "Dodge obstacles, grab coins, and race to the top score against a friend!"
	PlayPrompt  = "[ PLAY ]  Enter / Space"
	AgainPrompt = "[ Play Again ]  Enter / r"
	QuitHint    = "q / Esc: quit"
	TieText     = "It's a Tie!"
)
