package systems

import (
	"testing"

	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/engine"
)

// newCollisionWorld registers only collision; player 1 starts at x=100 in lane 0
func newCollisionWorld(t *testing.T) *collisionFixture {
	t.Helper()
	world := newTestWorld(t)
	world.AddSystem(NewCollisionSystem())
	return &collisionFixture{world: world, p1: world.Player(1), p2: world.Player(2)}
}

type collisionFixture struct {
	world *engine.World
	p1    *components.PlayerComponent
	p2    *components.PlayerComponent
}

func TestCoinCollected(t *testing.T) {
	f := newCollisionWorld(t)
	placeObject(f.world, components.ObjectCoin, 0, 110)

	runFrames(f.world, 1)

	if f.p1.Score != f.world.Config.CoinValue {
		t.Errorf("Expected score %d, got %d", f.world.Config.CoinValue, f.p1.Score)
	}
	if len(f.world.Objects) != 0 {
		t.Errorf("Expected coin removed, got %d objects", len(f.world.Objects))
	}
}

func TestObstacleKills(t *testing.T) {
	f := newCollisionWorld(t)
	placeObject(f.world, components.ObjectObstacle, 0, 110)

	runFrames(f.world, 1)

	if f.p1.IsAlive || !f.p1.IsExploding || f.p1.ExplosionTimer != 0 {
		t.Errorf("Expected player dying, got alive=%v exploding=%v timer=%d", f.p1.IsAlive, f.p1.IsExploding, f.p1.ExplosionTimer)
	}
	if len(f.world.Objects) != 1 {
		t.Errorf("Expected obstacle to persist, got %d objects", len(f.world.Objects))
	}
	if !f.p2.IsAlive {
		t.Error("Expected player 2 unaffected")
	}
}

func TestJumpingGrantsObstacleImmunityOnly(t *testing.T) {
	f := newCollisionWorld(t)
	f.p1.IsJumping = true
	f.p1.JumpTime = 5
	placeObject(f.world, components.ObjectObstacle, 0, 110)
	placeObject(f.world, components.ObjectCoin, 0, 120)
	placeObject(f.world, components.ObjectSpeedBoost, 0, 130)

	runFrames(f.world, 1)

	if !f.p1.IsAlive {
		t.Fatal("Expected jumping player to survive obstacle")
	}
	if f.p1.Score != f.world.Config.CoinValue {
		t.Errorf("Expected coin collected while jumping, got score %d", f.p1.Score)
	}
	if !f.p1.IsBoosting {
		t.Error("Expected boost collected while jumping")
	}
	if len(f.world.Objects) != 1 || f.world.Objects[0].Type != components.ObjectObstacle {
		t.Errorf("Expected only the obstacle left, got %v", f.world.Objects)
	}
}

func TestRampStartsJump(t *testing.T) {
	f := newCollisionWorld(t)
	placeObject(f.world, components.ObjectRamp, 0, 110)

	runFrames(f.world, 1)
	if !f.p1.IsJumping || f.p1.JumpTime != 0 {
		t.Fatalf("Expected jump started, got jumping=%v time=%d", f.p1.IsJumping, f.p1.JumpTime)
	}
	if len(f.world.Objects) != 1 {
		t.Errorf("Expected ramp to persist, got %d objects", len(f.world.Objects))
	}

	// Already jumping: the ramp does not restart the arc
	f.p1.JumpTime = 12
	runFrames(f.world, 1)
	if f.p1.JumpTime != 12 {
		t.Errorf("Expected jump time 12, got %d", f.p1.JumpTime)
	}
}

func TestBoostRestartsTimer(t *testing.T) {
	f := newCollisionWorld(t)
	f.p1.IsBoosting = true
	f.p1.BoostTimer = 90
	placeObject(f.world, components.ObjectSpeedBoost, 0, 110)

	runFrames(f.world, 1)

	if !f.p1.IsBoosting || f.p1.BoostTimer != 0 {
		t.Errorf("Expected boost restarted, got boosting=%v timer=%d", f.p1.IsBoosting, f.p1.BoostTimer)
	}
	if len(f.world.Objects) != 0 {
		t.Errorf("Expected boost removed, got %d objects", len(f.world.Objects))
	}
}

func TestConsumedObjectUnavailableToSecondPlayer(t *testing.T) {
	f := newCollisionWorld(t)
	f.p2.Position = f.p1.Position
	f.p2.Lane = f.p1.Lane
	placeObject(f.world, components.ObjectCoin, 0, 110)

	runFrames(f.world, 1)

	if f.p1.Score != f.world.Config.CoinValue || f.p2.Score != 0 {
		t.Errorf("Expected coin to go to player 1 only, got P1=%d P2=%d", f.p1.Score, f.p2.Score)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	f := newCollisionWorld(t)
	placeObject(f.world, components.ObjectObstacle, 0, f.p1.Bounds().Right())

	runFrames(f.world, 1)

	if !f.p1.IsAlive {
		t.Error("Expected touching edges to be a miss")
	}
}

func TestDeadPlayerStopsInteracting(t *testing.T) {
	f := newCollisionWorld(t)
	placeObject(f.world, components.ObjectObstacle, 0, 110)
	placeObject(f.world, components.ObjectCoin, 0, 120)

	runFrames(f.world, 1)
	if f.p1.IsAlive {
		t.Fatal("Expected player killed by obstacle")
	}
	if f.p1.Score != 0 {
		t.Errorf("Expected no score after death, got %d", f.p1.Score)
	}
	if len(f.world.Objects) != 2 {
		t.Errorf("Expected coin left on track, got %d objects", len(f.world.Objects))
	}

	runFrames(f.world, 1)
	if f.p1.Score != 0 {
		t.Errorf("Expected dead player to collect nothing, got %d", f.p1.Score)
	}
}
