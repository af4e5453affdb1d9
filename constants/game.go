package constants

// Track geometry, in world pixels
const (
	// GameWidth is the track width
	GameWidth = 1280

	// GameHeight is the full scene height
	GameHeight = 720

	// LaneCount is the number of horizontal lanes
	LaneCount = 3

	// LaneHeight is the vertical extent of one lane
	LaneHeight = 120

	// RoadYOffset is the top edge of the first lane
	RoadYOffset = GameHeight/2 - (LaneCount*LaneHeight)/2 + 50

	// SpawnMargin is how far past the right edge new rows appear
	SpawnMargin = 100
)

// Scroll speed
const (
	// GameSpeedStart is the initial leftward object speed per frame
	GameSpeedStart = 6.0

	// GameSpeedIncrement is added to the scroll speed every frame
	GameSpeedIncrement = 0.001
)

// Player slots
const (
	// PlayerCount is fixed at two for the whole session
	PlayerCount = 2

	// PlayerStartX is the horizontal start position for both players
	PlayerStartX = 100

	// Player1StartLane and Player2StartLane place the players at session start
	Player1StartLane = 0
	Player2StartLane = 2
)
