package components

import "fmt"

// ObjectType tags a track object
type ObjectType int

const (
	ObjectObstacle ObjectType = iota
	ObjectRamp
	ObjectCoin
	ObjectSpeedBoost
)

// String returns the type name
func (t ObjectType) String() string {
	switch t {
	case ObjectObstacle:
		return "OBSTACLE"
	case ObjectRamp:
		return "RAMP"
	case ObjectCoin:
		return "COIN"
	case ObjectSpeedBoost:
		return "SPEED_BOOST"
	default:
		return fmt.Sprintf("ObjectType(%d)", int(t))
	}
}

// Consumable reports whether a collision removes the object from the track
// Obstacles and ramps stay in place for other players and later frames
func (t ObjectType) Consumable() bool {
	switch t {
	case ObjectCoin, ObjectSpeedBoost:
		return true
	case ObjectObstacle, ObjectRamp:
		return false
	default:
		return false
	}
}

// GameObject is a scrolling track object
type GameObject struct {
	ID       int
	Type     ObjectType
	Position Vector2D
	Size     Size
}

// Bounds returns the object's collision box
func (o *GameObject) Bounds() Rect {
	return NewRect(o.Position, o.Size)
}

// OffTrack reports an object fully past the left edge
func (o *GameObject) OffTrack() bool {
	return o.Position.X <= -o.Size.Width
}
