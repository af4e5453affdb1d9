package systems

import (
	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// laneSlot is one lane of a spawned row
type laneSlot struct {
	Type   components.ObjectType
	Filled bool
}

// SpawnSystem generates one lane-row of objects every spawn interval
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

func (s *SpawnSystem) Update(world *engine.World) {
	world.SpawnTimer++
	if world.SpawnTimer < world.Config.SpawnInterval {
		return
	}
	world.SpawnTimer = 0

	s.spawnRow(world, s.rollRow(world))
}

// rollRow decides the contents of each lane
func (s *SpawnSystem) rollRow(world *engine.World) []laneSlot {
	cfg := world.Config
	rng := world.Rand
	row := make([]laneSlot, cfg.LaneCount)

	if rng.Float64() < cfg.HazardRowChance {
		// Wall of obstacles with one ramp so a path always exists
		for lane := range row {
			row[lane] = laneSlot{Type: components.ObjectObstacle, Filled: true}
		}
		row[rng.Intn(cfg.LaneCount)] = laneSlot{Type: components.ObjectRamp, Filled: true}
		return row
	}

	for lane := range row {
		r := rng.Float64()
		switch {
		case r < cfg.ObstacleOdds:
			row[lane] = laneSlot{Type: components.ObjectObstacle, Filled: true}
		case r < cfg.CoinOdds:
			row[lane] = laneSlot{Type: components.ObjectCoin, Filled: true}
		case r < cfg.BoostOdds:
			row[lane] = laneSlot{Type: components.ObjectSpeedBoost, Filled: true}
		}
	}
	return row
}

// spawnRow places the row just off the right edge, centered in each lane
func (s *SpawnSystem) spawnRow(world *engine.World, row []laneSlot) {
	cfg := world.Config
	for lane, slot := range row {
		if !slot.Filled {
			continue
		}
		size := objectSize(world, slot.Type)
		world.Objects = append(world.Objects, components.GameObject{
			ID:   world.NextObjectID(),
			Type: slot.Type,
			Position: components.Vector2D{
				X: cfg.GameWidth + cfg.SpawnMargin,
				Y: cfg.LaneCenterY(lane) - size.Height/2,
			},
			Size: size,
		})
	}
}

// objectSize returns the configured footprint of an object type
func objectSize(world *engine.World, t components.ObjectType) components.Size {
	cfg := world.Config
	switch t {
	case components.ObjectObstacle:
		return components.Size{Width: cfg.ObstacleWidth, Height: cfg.ObstacleHeight}
	case components.ObjectRamp:
		return components.Size{Width: cfg.RampWidth, Height: cfg.RampHeight}
	case components.ObjectCoin:
		return components.Size{Width: cfg.CoinSize, Height: cfg.CoinSize}
	case components.ObjectSpeedBoost:
		return components.Size{Width: cfg.BoostSize, Height: cfg.BoostSize}
	default:
		panic("unknown object type " + t.String())
	}
}
