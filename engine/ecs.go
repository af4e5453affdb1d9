package engine

import (
	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// System is an interface that all systems must implement
type System interface {
	Update(world *World)
	Priority() int // Lower values run first
}

// World is the simulation state for one session plus the systems that advance it
// It is owned by the goroutine that calls Update; nothing else mutates it
type World struct {
	Config parameter.Config
	Input  *InputState
	Rand   Rand

	Players   []components.PlayerComponent
	Bindings  []components.Bindings // Index-aligned with Players
	Objects   []components.GameObject
	Particles []components.Particle

	FrameNumber int64
	Speed       float64
	SpawnTimer  int

	nextObjectID int
	systems      []System
}

// NewWorld creates a world in its start-of-session state
func NewWorld(cfg parameter.Config, rng Rand) *World {
	w := &World{
		Config: cfg,
		Input:  NewInputState(),
		Rand:   rng,
		Bindings: []components.Bindings{
			{Left: constants.KeyP1Left, Right: constants.KeyP1Right, Up: constants.KeyP1Up, Down: constants.KeyP1Down},
			{Left: constants.KeyP2Left, Right: constants.KeyP2Right, Up: constants.KeyP2Up, Down: constants.KeyP2Down},
		},
		systems: make([]System, 0),
	}
	w.Reset()
	return w
}

// Reset performs the deterministic session reset and acquires fresh input state
func (w *World) Reset() {
	cfg := w.Config

	w.FrameNumber = 0
	w.Speed = cfg.SpeedStart
	w.SpawnTimer = 0
	w.nextObjectID = 0
	w.Objects = make([]components.GameObject, 0)
	w.Particles = make([]components.Particle, 0)

	lanes := []int{cfg.Player1Lane, cfg.Player2Lane}
	w.Players = make([]components.PlayerComponent, constants.PlayerCount)
	for i := range w.Players {
		w.Players[i] = components.PlayerComponent{
			ID: i + 1,
			Position: components.Vector2D{
				X: cfg.PlayerStartX,
				Y: cfg.LaneCenterY(lanes[i]) - cfg.PlayerHeight/2,
			},
			Size:    components.Size{Width: cfg.PlayerWidth, Height: cfg.PlayerHeight},
			Speed:   cfg.PlayerSpeed,
			Lane:    lanes[i],
			IsAlive: true,
		}
	}

	w.Input.Attach()
}

// Player returns the player with the given id (1-based), nil when out of range
func (w *World) Player(id int) *components.PlayerComponent {
	if id < 1 || id > len(w.Players) {
		return nil
	}
	return &w.Players[id-1]
}

// NextObjectID returns a fresh object id, unique within the session
func (w *World) NextObjectID() int {
	w.nextObjectID++
	return w.nextObjectID
}

// SessionOver reports that every player is dead and no explosion is still playing
func (w *World) SessionOver() bool {
	if len(w.Players) == 0 {
		return false
	}
	for i := range w.Players {
		if !w.Players[i].IsDead() {
			return false
		}
	}
	return true
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort systems by priority (bubble sort is fine for small number of systems)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	return systems
}

// Update runs all systems once
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update(w)
	}
}
