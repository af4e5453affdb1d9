package renderers

import (
	"fmt"
	"math"

	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/render"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PlayerRenderer draws living players with their jump arc and dying players as a fading burst
// Dead players are not drawn
type PlayerRenderer struct{}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Render implements SystemRenderer
func (p *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snapshot == nil || ctx.View.Empty() {
		return
	}
	cfg := ctx.Snapshot.Config
	for i := range ctx.Snapshot.Players {
		player := &ctx.Snapshot.Players[i]
		switch {
		case player.IsExploding:
			p.drawExplosion(ctx, buf, player, float64(player.ExplosionTimer)/float64(cfg.ExplosionDuration))
		case player.IsAlive:
			lift := JumpLift(player.JumpTime, cfg.JumpDuration, cfg.JumpHeight, player.IsJumping)
			p.drawRunner(ctx, buf, player, lift)
		}
	}
}

func (p *PlayerRenderer) drawRunner(ctx render.RenderContext, buf *render.RenderBuffer, player *components.PlayerComponent, lift float64) {
	view := ctx.View
	color := PlayerColor(player.ID)

	// Ground shadow stays in the lane while airborne
	if lift > 0 {
		col, row := view.Center(player.Position, player.Size)
		if view.InTrack(col, row) {
			buf.SetFaded(col, row, '_', color, 0.5)
		}
	}

	pos := components.Vector2D{X: player.Position.X, Y: player.Position.Y - lift}
	col, row := view.Center(pos, player.Size)
	label := fmt.Sprintf("P%d", player.ID)
	start := col - render.TextWidth(label)/2
	if !view.InTrack(start, row) {
		return
	}
	buf.DrawText(start, row, label, color, true)

	if player.IsBoosting {
		buf.SetFgOnly(start-1, row, '≡', render.ColorSpeedBoost)
	}
}

// drawExplosion draws a '*' burst widening from ExplosionSizeStart and fading with progress
func (p *PlayerRenderer) drawExplosion(ctx render.RenderContext, buf *render.RenderBuffer, player *components.PlayerComponent, progress float64) {
	view := ctx.View
	col, row := view.Center(player.Position, player.Size)
	alpha := 1 - progress

	size := constants.ExplosionSizeStart + progress*constants.ExplosionSizeGrowth
	radius := view.Columns(size) / 2

	buf.SetFaded(col, row, '*', render.ColorExplosion, alpha)
	for d := 1; d <= radius; d++ {
		a := alpha * (1 - float64(d)/float64(radius+1))
		buf.SetFaded(col-d, row, '*', render.ColorExplosion, a)
		buf.SetFaded(col+d, row, '*', render.ColorExplosion, a)
	}
	if radius >= 2 {
		buf.SetFaded(col, row-1, '*', render.ColorExplosion, alpha/2)
		buf.SetFaded(col, row+1, '*', render.ColorExplosion, alpha/2)
	}
}

// JumpLift is the world-space rise of a jumping player: sin(t/duration*pi)*height
func JumpLift(jumpTime, duration int, height float64, jumping bool) float64 {
	if !jumping || duration <= 0 {
		return 0
	}
	progress := float64(jumpTime) / float64(duration)
	return math.Max(0, math.Sin(progress*math.Pi)*height)
}

// PlayerColor returns the identifying color for a player id
func PlayerColor(id int) colorful.Color {
	if id == 2 {
		return render.ColorPlayer2
	}
	return render.ColorPlayer1
}
