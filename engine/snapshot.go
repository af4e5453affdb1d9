package engine

import (
	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// Snapshot is a read-only copy of the state for drawing
type Snapshot struct {
	Config      parameter.Config
	Players     []components.PlayerComponent
	Objects     []components.GameObject
	Particles   []components.Particle
	FrameNumber int64
	Speed       float64
}

// Snapshot copies the current world state
func (g *Game) Snapshot() *Snapshot {
	return g.world.Snapshot()
}

// Snapshot copies the current world state
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		Config:      w.Config,
		Players:     make([]components.PlayerComponent, len(w.Players)),
		Objects:     make([]components.GameObject, len(w.Objects)),
		Particles:   make([]components.Particle, len(w.Particles)),
		FrameNumber: w.FrameNumber,
		Speed:       w.Speed,
	}
	copy(s.Players, w.Players)
	copy(s.Objects, w.Objects)
	copy(s.Particles, w.Particles)
	return s
}
