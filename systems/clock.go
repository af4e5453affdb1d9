package systems

import (
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// ClockSystem advances the frame counter and raises the scroll speed
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Priority() int {
	return constants.PriorityClock
}

// Update runs first in every tick; speed never decreases within a session
func (s *ClockSystem) Update(world *engine.World) {
	world.FrameNumber++
	world.Speed += world.Config.SpeedIncrement
}
