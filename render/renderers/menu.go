package renderers

import (
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/render"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// MenuRenderer draws the title screen with both players' controls
type MenuRenderer struct{}

// NewMenuRenderer creates a menu renderer
func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

// Render implements SystemRenderer
func (m *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := []screenLine{
		{text: constants.TitleLine1, color: render.ColorText, bold: true},
		{text: constants.TitleLine2, color: render.ColorTitle, bold: true},
		{},
		{text: constants.TagLine, color: render.ColorMuted},
		{},
		{text: constants.PlayPrompt, color: render.ColorText, bold: true, bg: &render.ColorButton},
		{},
		{text: "Player 1", color: render.ColorPlayer1, bold: true},
		{text: "W/S: Change Lane   A/D: Move Left/Right", color: render.ColorKeyHint},
		{},
		{text: "Player 2", color: render.ColorPlayer2, bold: true},
		{text: "↑/↓: Change Lane   ←/→: Move Left/Right", color: render.ColorKeyHint},
		{},
		{text: constants.QuitHint, color: render.ColorMuted},
	}
	drawCentered(ctx, buf, lines)
}

// screenLine is one centered row of a full-screen layout, empty text is a spacer
type screenLine struct {
	text  string
	color colorful.Color
	bold  bool
	bg    *colorful.Color
}

// drawCentered lays lines out vertically and horizontally centered, clipping to the screen
func drawCentered(ctx render.RenderContext, buf *render.RenderBuffer, lines []screenLine) {
	top := (ctx.Height - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	for i, line := range lines {
		row := top + i
		if row >= ctx.Height {
			return
		}
		if line.text == "" {
			continue
		}
		text := render.Truncate(line.text, ctx.Width)
		col := render.CenterX(ctx.Width, text)
		if line.bg != nil {
			for x := col - 1; x <= col+render.TextWidth(text); x++ {
				buf.SetBgOnly(x, row, *line.bg)
			}
		}
		buf.DrawText(col, row, text, line.color, line.bold)
	}
}
