package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the display refresh interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputPollInterval is how often held keys are checked for expiry
	InputPollInterval = 10 * time.Millisecond

	// InputEventBuffer is the capacity of the key event channel between the pump and the scheduler
	InputEventBuffer = 256
)

// System Execution Priorities (lower runs first)
const (
	PriorityClock     = 0
	PriorityPlayer    = 10
	PrioritySpawn     = 20
	PriorityMovement  = 30
	PriorityCollision = 40
	PriorityParticle  = 50
	PriorityCleanup   = 900 // Last: drops objects that scrolled off the track
)
