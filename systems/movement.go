package systems

import (
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// MovementSystem scrolls every track object left by the current speed
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

func (s *MovementSystem) Update(world *engine.World) {
	for i := range world.Objects {
		world.Objects[i].Position.X -= world.Speed
	}
}
