package systems

import (
	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// ParticleSystem moves, ages and shrinks trail particles, dropping expired ones
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

func (s *ParticleSystem) Update(world *engine.World) {
	alive := make([]components.Particle, 0, len(world.Particles))
	for _, p := range world.Particles {
		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
		p.Lifetime--
		p.Size *= constants.ParticleSizeDecay

		if p.Expired(constants.ParticleMinSize) {
			continue
		}
		alive = append(alive, p)
	}
	world.Particles = alive
}
