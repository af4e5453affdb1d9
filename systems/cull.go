package systems

import (
	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// CullSystem removes objects that scrolled past the left edge
// It runs last in the tick, after the collision pass has seen them
type CullSystem struct{}

func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCleanup
}

func (s *CullSystem) Update(world *engine.World) {
	kept := make([]components.GameObject, 0, len(world.Objects))
	for _, obj := range world.Objects {
		if obj.OffTrack() {
			continue
		}
		kept = append(kept, obj)
	}
	world.Objects = kept
}
