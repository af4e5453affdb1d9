package engine

import (
	"testing"

	"github.com/lixenwraith/pixel-racer/parameter"
)

// recordingSystem appends its name to a shared log on every update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Update(world *World) { *s.log = append(*s.log, s.name) }
func (s *recordingSystem) Priority() int       { return s.priority }

func TestNewWorldResetState(t *testing.T) {
	cfg := parameter.Default()
	world := NewWorld(cfg, NewRand(1))

	if world.FrameNumber != 0 {
		t.Errorf("Expected frame 0, got %d", world.FrameNumber)
	}
	if world.Speed != cfg.SpeedStart {
		t.Errorf("Expected speed %v, got %v", cfg.SpeedStart, world.Speed)
	}
	if len(world.Objects) != 0 || len(world.Particles) != 0 {
		t.Errorf("Expected empty entity lists, got %d objects and %d particles", len(world.Objects), len(world.Particles))
	}
	if len(world.Players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(world.Players))
	}

	tests := []struct {
		id   int
		lane int
	}{
		{1, 0},
		{2, 2},
	}
	for _, tt := range tests {
		p := world.Player(tt.id)
		if p.ID != tt.id {
			t.Errorf("Expected player id %d, got %d", tt.id, p.ID)
		}
		if p.Lane != tt.lane {
			t.Errorf("Expected player %d in lane %d, got %d", tt.id, tt.lane, p.Lane)
		}
		if p.Position.X != 100 {
			t.Errorf("Expected player %d x=100, got %v", tt.id, p.Position.X)
		}
		expectedY := cfg.LaneCenterY(tt.lane) - cfg.PlayerHeight/2
		if p.Position.Y != expectedY {
			t.Errorf("Expected player %d y=%v, got %v", tt.id, expectedY, p.Position.Y)
		}
		if !p.IsAlive || p.IsJumping || p.IsBoosting || p.IsExploding || p.Score != 0 {
			t.Errorf("Expected fresh player %d, got %+v", tt.id, *p)
		}
	}
}

func TestResetClearsPreviousSession(t *testing.T) {
	world := NewWorld(parameter.Default(), NewRand(1))
	world.FrameNumber = 500
	world.Speed = 9
	world.SpawnTimer = 40
	world.Player(1).Score = 70
	world.Player(2).IsAlive = false
	world.NextObjectID()

	world.Reset()

	if world.FrameNumber != 0 || world.SpawnTimer != 0 {
		t.Errorf("Expected counters reset, got frame=%d spawn=%d", world.FrameNumber, world.SpawnTimer)
	}
	if world.Speed != parameter.Default().SpeedStart {
		t.Errorf("Expected start speed, got %v", world.Speed)
	}
	if world.Player(1).Score != 0 || !world.Player(2).IsAlive {
		t.Error("Expected players recreated")
	}
	if id := world.NextObjectID(); id != 1 {
		t.Errorf("Expected object ids to restart at 1, got %d", id)
	}
}

func TestPlayerOutOfRange(t *testing.T) {
	world := NewWorld(parameter.Default(), NewRand(1))
	if world.Player(0) != nil || world.Player(3) != nil {
		t.Error("Expected nil for out-of-range player ids")
	}
}

func TestAddSystemOrdersByPriority(t *testing.T) {
	world := NewWorld(parameter.Default(), NewRand(1))
	var log []string

	world.AddSystem(&recordingSystem{name: "cleanup", priority: 900, log: &log})
	world.AddSystem(&recordingSystem{name: "clock", priority: 0, log: &log})
	world.AddSystem(&recordingSystem{name: "collision", priority: 40, log: &log})
	world.AddSystem(&recordingSystem{name: "player", priority: 10, log: &log})

	world.Update()

	expected := []string{"clock", "player", "collision", "cleanup"}
	if len(log) != len(expected) {
		t.Fatalf("Expected %d updates, got %d", len(expected), len(log))
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("Expected system %d to be %s, got %s", i, expected[i], log[i])
		}
	}
}

func TestNextObjectIDUnique(t *testing.T) {
	world := NewWorld(parameter.Default(), NewRand(1))
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		id := world.NextObjectID()
		if seen[id] {
			t.Fatalf("Expected unique ids, got duplicate %d", id)
		}
		seen[id] = true
	}
}

func TestSessionOver(t *testing.T) {
	world := NewWorld(parameter.Default(), NewRand(1))
	p1, p2 := world.Player(1), world.Player(2)

	if world.SessionOver() {
		t.Fatal("Expected session running with both alive")
	}

	p1.IsAlive = false
	p2.IsAlive = false
	p2.IsExploding = true
	if world.SessionOver() {
		t.Error("Expected session running while an explosion plays")
	}

	p2.IsExploding = false
	if !world.SessionOver() {
		t.Error("Expected session over when both players are dead")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	world := NewWorld(parameter.Default(), NewRand(1))
	snap := world.Snapshot()

	snap.Players[0].Score = 999
	if world.Player(1).Score != 0 {
		t.Error("Expected snapshot mutation not to leak into the world")
	}
	if snap.Config != world.Config {
		t.Error("Expected snapshot to carry the config")
	}
}
