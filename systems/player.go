package systems

import (
	"math"

	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// PlayerSystem applies input to living players and advances the jump, boost and explosion timers
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

func (s *PlayerSystem) Update(world *engine.World) {
	for i := range world.Players {
		p := &world.Players[i]
		if !p.IsAlive {
			s.updateExplosion(world, p)
			continue
		}

		speed := effectiveSpeed(world, p)
		s.steer(world, p, world.Bindings[i], speed)
		s.updateJump(world, p)
		s.updateBoost(world, p)
	}
}

// effectiveSpeed is the base speed, scaled while boosting
func effectiveSpeed(world *engine.World, p *components.PlayerComponent) float64 {
	if p.IsBoosting {
		return p.Speed * world.Config.BoostMultiplier
	}
	return p.Speed
}

// steer moves horizontally, changes lane on edge-triggered keys and eases toward the lane center
func (s *PlayerSystem) steer(world *engine.World, p *components.PlayerComponent, keys components.Bindings, speed float64) {
	cfg := world.Config
	input := world.Input

	if input.IsPressed(keys.Left) {
		p.Position.X -= speed
	}
	if input.IsPressed(keys.Right) {
		p.Position.X += speed
	}

	// Lane keys fire once per press: consume them so a held key does not repeat
	if input.IsPressed(keys.Up) && p.Lane > 0 {
		p.Lane--
		input.Clear(keys.Up)
	}
	if input.IsPressed(keys.Down) && p.Lane < cfg.LaneCount-1 {
		p.Lane++
		input.Clear(keys.Down)
	}

	targetY := cfg.LaneCenterY(p.Lane) - p.Size.Height/2
	if dy := targetY - p.Position.Y; math.Abs(dy) > speed {
		p.Position.Y += math.Copysign(speed, dy)
	} else {
		p.Position.Y = targetY
	}

	p.Position.X = math.Max(0, math.Min(cfg.GameWidth-p.Size.Width, p.Position.X))
}

func (s *PlayerSystem) updateJump(world *engine.World, p *components.PlayerComponent) {
	if !p.IsJumping {
		return
	}
	p.JumpTime++
	if p.JumpTime > world.Config.JumpDuration {
		p.IsJumping = false
		p.JumpTime = 0
	}
}

func (s *PlayerSystem) updateBoost(world *engine.World, p *components.PlayerComponent) {
	if !p.IsBoosting {
		return
	}
	p.BoostTimer++
	if p.BoostTimer > world.Config.BoostDuration {
		p.IsBoosting = false
		p.BoostTimer = 0
	}

	// The expiry frame still leaves a trail speck
	if world.FrameNumber%constants.TrailEmitEvery == 0 {
		world.Particles = append(world.Particles, newTrailParticle(world, p))
	}
}

// newTrailParticle spawns a speck at the player's trailing edge drifting against the scroll
func newTrailParticle(world *engine.World, p *components.PlayerComponent) components.Particle {
	rng := world.Rand
	y := p.Position.Y + p.Size.Height/2 + (rng.Float64()-0.5)*constants.TrailOffsetSpread
	size := rng.Float64()*constants.TrailSizeSpread + constants.TrailSizeMin
	color := constants.TrailColors[rng.Intn(len(constants.TrailColors))]
	vy := (rng.Float64() - 0.5) * constants.TrailVerticalSpread

	return components.Particle{
		Position: components.Vector2D{X: p.Position.X, Y: y},
		Velocity: components.Vector2D{X: -world.Speed, Y: vy},
		Size:     size,
		Lifetime: constants.TrailParticleLifetime,
		Color:    color,
	}
}

// updateExplosion plays out the dying window; the player stays dead afterwards
func (s *PlayerSystem) updateExplosion(world *engine.World, p *components.PlayerComponent) {
	if !p.IsExploding {
		return
	}
	p.ExplosionTimer++
	if p.ExplosionTimer >= world.Config.ExplosionDuration {
		p.IsExploding = false
	}
}
