package renderers

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/render"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func newWorld() *engine.World {
	return engine.NewWorld(parameter.Default(), engine.NewRand(1))
}

func newFrame(t *testing.T, w, h int) (tcell.SimulationScreen, *render.TerminalRenderer) {
	t.Helper()
	screen := newSimScreen(t, w, h)
	tr := render.NewTerminalRenderer(screen)
	RegisterDefaults(tr)
	return screen, tr
}

func TestFrameShowsPlayersAndScores(t *testing.T) {
	screen, tr := newFrame(t, 80, 24)
	world := newWorld()
	world.Player(1).Score = 30
	world.Player(2).Score = 120

	tr.RenderFrame(world.Snapshot())
	text := screenText(screen)

	for _, want := range []string{"P1: 30", "P2: 120"} {
		if !strings.Contains(strings.SplitN(text, "\n", 2)[0], want) {
			t.Errorf("Expected HUD row to contain %q", want)
		}
	}
	body := strings.SplitN(text, "\n", 2)[1]
	if !strings.Contains(body, "P1") || !strings.Contains(body, "P2") {
		t.Errorf("Expected both runners on the track, got:\n%s", body)
	}
}

func TestHUDToggle(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	tr := render.NewTerminalRenderer(screen)
	hud := RegisterDefaults(tr)
	world := newWorld()

	hud.Toggle()
	tr.RenderFrame(world.Snapshot())
	if row := strings.SplitN(screenText(screen), "\n", 2)[0]; strings.Contains(row, "P1:") {
		t.Errorf("Expected hidden HUD, got %q", row)
	}

	hud.Toggle()
	tr.RenderFrame(world.Snapshot())
	if row := strings.SplitN(screenText(screen), "\n", 2)[0]; !strings.Contains(row, "P1: 0") {
		t.Errorf("Expected HUD back after second toggle, got %q", row)
	}
}

func TestFrameShowsObjectGlyphs(t *testing.T) {
	screen, tr := newFrame(t, 80, 24)
	world := newWorld()
	types := []components.ObjectType{components.ObjectObstacle, components.ObjectRamp, components.ObjectCoin, components.ObjectSpeedBoost}
	for i, typ := range types {
		world.Objects = append(world.Objects, components.GameObject{
			ID:       i + 1,
			Type:     typ,
			Position: components.Vector2D{X: 400 + float64(i)*200, Y: world.Config.LaneCenterY(1) - 20},
			Size:     components.Size{Width: 40, Height: 40},
		})
	}

	tr.RenderFrame(world.Snapshot())
	text := screenText(screen)

	for _, glyph := range []string{"O", "R", "$", ">"} {
		if !strings.Contains(text, glyph) {
			t.Errorf("Expected glyph %q on screen", glyph)
		}
	}
}

func TestDeadPlayersNotDrawn(t *testing.T) {
	screen, tr := newFrame(t, 80, 24)
	world := newWorld()
	for i := range world.Players {
		world.Players[i].IsAlive = false
	}

	tr.RenderFrame(world.Snapshot())
	body := strings.SplitN(screenText(screen), "\n", 2)[1]

	if strings.Contains(body, "P1") || strings.Contains(body, "P2") || strings.Contains(body, "*") {
		t.Errorf("Expected no runners or bursts for dead players, got:\n%s", body)
	}
}

func TestExplosionDrawn(t *testing.T) {
	screen, tr := newFrame(t, 80, 24)
	world := newWorld()
	p := world.Player(1)
	p.IsAlive = false
	p.IsExploding = true
	p.ExplosionTimer = 10

	tr.RenderFrame(world.Snapshot())
	if !strings.Contains(screenText(screen), "*") {
		t.Error("Expected explosion burst on screen")
	}
}

func TestJumpLift(t *testing.T) {
	tests := []struct {
		name    string
		time    int
		jumping bool
		want    float64
	}{
		{"grounded", 15, false, 0},
		{"takeoff", 0, true, 0},
		{"apex", 15, true, 50},
		{"landing", 30, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JumpLift(tt.time, 30, 50, tt.jumping)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected lift %.2f, got %.2f", tt.want, got)
			}
		})
	}
}

func TestDashPattern(t *testing.T) {
	if got := DashOffset(0, 6); got != 0 {
		t.Errorf("Expected zero offset at frame 0, got %.2f", got)
	}
	if got := DashOffset(10, 6); got != -60 {
		t.Errorf("Expected offset -60, got %.2f", got)
	}
	if got := DashOffset(12, 6); got != -2 {
		t.Errorf("Expected offset to wrap to -2, got %.2f", got)
	}

	if !DashVisible(0, 0) || !DashVisible(39, 0) {
		t.Error("Expected the first 40 units to be a dash")
	}
	if DashVisible(40, 0) || DashVisible(69, 0) {
		t.Error("Expected units 40..69 to be a gap")
	}
	// Scrolling 10 units shifts the first dash to [-10, 30)
	if !DashVisible(35, 0) || DashVisible(35, -10) {
		t.Error("Expected x=35 to leave the dash after scrolling")
	}
	if !DashVisible(62, -10) {
		t.Error("Expected the next dash to start at x=60 after scrolling")
	}
}

func TestParticleAlpha(t *testing.T) {
	if got := ParticleAlpha(30); got != 1 {
		t.Errorf("Expected alpha 1, got %.2f", got)
	}
	if got := ParticleAlpha(15); got != 0.5 {
		t.Errorf("Expected alpha 0.5, got %.2f", got)
	}
	if got := ParticleAlpha(-2); got != 0 {
		t.Errorf("Expected alpha clamped to 0, got %.2f", got)
	}
}

func TestObjectGlyphs(t *testing.T) {
	tests := []struct {
		typ  components.ObjectType
		want rune
	}{
		{components.ObjectObstacle, 'O'},
		{components.ObjectRamp, 'R'},
		{components.ObjectCoin, '$'},
		{components.ObjectSpeedBoost, '>'},
		{components.ObjectType(42), '?'},
	}
	for _, tt := range tests {
		if got, _ := ObjectGlyph(tt.typ); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.typ, tt.want, got)
		}
	}
}

func TestWinnerText(t *testing.T) {
	tests := []struct {
		scores engine.Scores
		want   string
	}{
		{engine.Scores{Player1: 50, Player2: 20}, "Player 1 Wins!"},
		{engine.Scores{Player1: 0, Player2: 10}, "Player 2 Wins!"},
		{engine.Scores{Player1: 30, Player2: 30}, "It's a Tie!"},
	}
	for _, tt := range tests {
		if got := WinnerText(tt.scores); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestGameOverScreen(t *testing.T) {
	screen, tr := newFrame(t, 80, 24)
	tr.RenderScreen(NewGameOverRenderer(engine.Scores{Player1: 40, Player2: 40}), nil)
	text := screenText(screen)

	for _, want := range []string{"Game Over", "It's a Tie!", "Player 1 (WASD): 40 points", "Player 2 (Arrows): 40 points", "Play Again"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected game-over screen to contain %q", want)
		}
	}
}

func TestMenuScreen(t *testing.T) {
	screen, tr := newFrame(t, 80, 24)
	tr.RenderScreen(NewMenuRenderer(), nil)
	text := screenText(screen)

	for _, want := range []string{"PIXEL", "RACER", "PLAY", "W/S: Change Lane", "Player 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected menu to contain %q", want)
		}
	}
}
