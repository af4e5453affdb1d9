package renderers

import (
	"fmt"

	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/render"
)

// GameOverRenderer draws the final scores and the winner
type GameOverRenderer struct {
	scores engine.Scores
}

// NewGameOverRenderer creates a game-over screen for a finished session
func NewGameOverRenderer(scores engine.Scores) *GameOverRenderer {
	return &GameOverRenderer{scores: scores}
}

// Render implements SystemRenderer
func (g *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := []screenLine{
		{text: "Game Over", color: render.ColorTitle, bold: true},
		{},
		{text: WinnerText(g.scores), color: render.ColorText, bold: true},
		{},
		{text: fmt.Sprintf("Player 1 (WASD): %d points", g.scores.Player1), color: render.ColorPlayer1},
		{text: fmt.Sprintf("Player 2 (Arrows): %d points", g.scores.Player2), color: render.ColorPlayer2},
		{},
		{text: constants.AgainPrompt, color: render.ColorText, bold: true, bg: &render.ColorButton},
		{},
		{text: constants.QuitHint, color: render.ColorMuted},
	}
	drawCentered(ctx, buf, lines)
}

// WinnerText announces the winner, or a tie
func WinnerText(scores engine.Scores) string {
	switch scores.Winner() {
	case 1:
		return "Player 1 Wins!"
	case 2:
		return "Player 2 Wins!"
	default:
		return constants.TieText
	}
}
