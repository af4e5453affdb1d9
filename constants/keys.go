package constants

import "time"

// Key names as reported by the input state (lowercase)
const (
	KeyP1Left  = "a"
	KeyP1Right = "d"
	KeyP1Up    = "w"
	KeyP1Down  = "s"

	KeyP2Left  = "arrowleft"
	KeyP2Right = "arrowright"
	KeyP2Up    = "arrowup"
	KeyP2Down  = "arrowdown"
)

// Terminal key hold tracking
// Terminals report presses and auto-repeats but never releases
const (
	// KeyInitialHold covers the auto-repeat delay after the first press
	KeyInitialHold = 550 * time.Millisecond

	// KeyRepeatHold covers the gap between auto-repeat events
	KeyRepeatHold = 120 * time.Millisecond
)
