package systems

import (
	"testing"

	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// scriptedRand replays fixed draws, falling back to values that spawn nothing
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func newTestWorld(t *testing.T) *engine.World {
	t.Helper()
	return engine.NewWorld(parameter.Default(), &scriptedRand{})
}

// placeObject puts an object of the given type centered in a lane at x
func placeObject(world *engine.World, t components.ObjectType, lane int, x float64) *components.GameObject {
	size := objectSize(world, t)
	world.Objects = append(world.Objects, components.GameObject{
		ID:       world.NextObjectID(),
		Type:     t,
		Position: components.Vector2D{X: x, Y: world.Config.LaneCenterY(lane) - size.Height/2},
		Size:     size,
	})
	return &world.Objects[len(world.Objects)-1]
}

func runFrames(world *engine.World, n int) {
	for i := 0; i < n; i++ {
		world.Update()
	}
}
