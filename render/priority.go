package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityTrack RenderPriority = iota
	PriorityParticle
	PriorityObjects
	PriorityPlayers
	PriorityUI
)
