package components

// Particle is a visual-only trail speck
type Particle struct {
	Position Vector2D
	Velocity Vector2D
	Size     float64
	Lifetime int    // Frames remaining
	Color    string // Hex color, e.g. "#FFD700"
}

// Expired reports a particle that should be dropped
func (p *Particle) Expired(minSize float64) bool {
	return p.Lifetime <= 0 || p.Size < minSize
}
