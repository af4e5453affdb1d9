package renderers

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/render"
)

// HUDRenderer draws the score readouts on the top row
type HUDRenderer struct {
	hidden atomic.Bool
}

// NewHUDRenderer creates a visible HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible implements VisibilityToggle
func (h *HUDRenderer) IsVisible() bool {
	return !h.hidden.Load()
}

// Toggle flips visibility. Single writer, read by the frame goroutine
func (h *HUDRenderer) Toggle() {
	h.hidden.Store(!h.hidden.Load())
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snapshot == nil {
		return
	}
	for col := 0; col < ctx.Width; col++ {
		buf.SetBgOnly(col, 0, render.ColorBackground)
	}

	players := ctx.Snapshot.Players
	if len(players) > 0 {
		left := ScoreText(players[0].ID, players[0].Score)
		buf.DrawText(constants.HUDMargin, 0, left, render.ColorText, true)
	}
	if len(players) > 1 {
		right := ScoreText(players[1].ID, players[1].Score)
		buf.DrawText(render.RightX(ctx.Width, constants.HUDMargin, right), 0, right, render.ColorText, true)
	}
}

// ScoreText formats a HUD readout, e.g. "P1: 30"
func ScoreText(id, score int) string {
	return fmt.Sprintf("P%d: %d", id, score)
}
