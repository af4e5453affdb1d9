package components

// PlayerComponent is one runner on the track
// IsAlive only ever goes true -> false within a session
// IsJumping and IsExploding are never both set
type PlayerComponent struct {
	ID       int
	Position Vector2D
	Size     Size
	Speed    float64
	Score    int
	Lane     int

	IsAlive bool

	IsJumping bool
	JumpTime  int // Frames since the jump started

	IsBoosting bool
	BoostTimer int // Frames since the boost started

	IsExploding    bool
	ExplosionTimer int // Frames since death
}

// Bounds returns the player's collision box
func (p *PlayerComponent) Bounds() Rect {
	return NewRect(p.Position, p.Size)
}

// IsDying reports the explosion window after death
func (p *PlayerComponent) IsDying() bool {
	return !p.IsAlive && p.IsExploding
}

// IsDead reports the terminal state: not alive and explosion finished
func (p *PlayerComponent) IsDead() bool {
	return !p.IsAlive && !p.IsExploding
}

// Bindings maps a player's intents to key names
type Bindings struct {
	Left, Right, Up, Down string
}
