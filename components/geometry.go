package components

// Vector2D is a world-space position or velocity
type Vector2D struct {
	X, Y float64
}

// Size is a width/height pair in world pixels
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned bounding box
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect builds a box from a top-left position and size
func NewRect(pos Vector2D, size Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects reports strict overlap on both axes; touching edges do not collide
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}
