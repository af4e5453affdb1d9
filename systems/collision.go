package systems

import (
	"log"

	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// CollisionSystem resolves player/object overlaps
// Players are processed in order against the live list, so an object consumed by
// player 1 is gone before player 2 is checked
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(world *engine.World) {
	for i := range world.Players {
		p := &world.Players[i]
		if !p.IsAlive {
			continue
		}
		world.Objects = s.resolve(world, p)
	}
}

// resolve applies every overlap for one player and returns the objects that remain
func (s *CollisionSystem) resolve(world *engine.World, p *components.PlayerComponent) []components.GameObject {
	kept := make([]components.GameObject, 0, len(world.Objects))
	for _, obj := range world.Objects {
		// Once dead, the player stops interacting for the rest of the pass
		if !p.IsAlive || !p.Bounds().Intersects(obj.Bounds()) {
			kept = append(kept, obj)
			continue
		}
		s.apply(world, p, &obj)
		if obj.Type.Consumable() {
			continue
		}
		kept = append(kept, obj)
	}
	return kept
}

// apply performs the type effect of one overlap
func (s *CollisionSystem) apply(world *engine.World, p *components.PlayerComponent, obj *components.GameObject) {
	switch obj.Type {
	case components.ObjectCoin:
		p.Score += world.Config.CoinValue

	case components.ObjectObstacle:
		// Jumping players clear obstacles
		if !p.IsJumping {
			p.IsAlive = false
			p.IsExploding = true
			p.ExplosionTimer = 0
			log.Printf("player %d crashed into object %d at frame %d (score %d)", p.ID, obj.ID, world.FrameNumber, p.Score)
		}

	case components.ObjectRamp:
		if !p.IsJumping {
			p.IsJumping = true
			p.JumpTime = 0
		}

	case components.ObjectSpeedBoost:
		p.IsBoosting = true
		p.BoostTimer = 0
	}
}
