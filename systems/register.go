package systems

import "github.com/lixenwraith/pixel-racer/engine"

// Register installs the full simulation pipeline:
// clock, players, spawn, movement, collision, particles, cull
func Register(world *engine.World) {
	world.AddSystem(NewClockSystem())
	world.AddSystem(NewPlayerSystem())
	world.AddSystem(NewSpawnSystem())
	world.AddSystem(NewMovementSystem())
	world.AddSystem(NewCollisionSystem())
	world.AddSystem(NewParticleSystem())
	world.AddSystem(NewCullSystem())
}
