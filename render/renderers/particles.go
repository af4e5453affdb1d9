package renderers

import (
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/render"
)

// ParticleRenderer draws boost trail specks fading with remaining lifetime
type ParticleRenderer struct{}

// NewParticleRenderer creates a particle renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render implements SystemRenderer
func (p *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snapshot == nil || ctx.View.Empty() {
		return
	}
	for _, part := range ctx.Snapshot.Particles {
		col, row := ctx.View.Cell(part.Position.X, part.Position.Y)
		if !ctx.View.InTrack(col, row) {
			continue
		}
		glyph := '.'
		if part.Size >= constants.ParticleLargeSize {
			glyph = '•'
		}
		color := render.ParseHex(part.Color, render.ColorCoin)
		buf.SetFaded(col, row, glyph, color, ParticleAlpha(part.Lifetime))
	}
}

// ParticleAlpha is lifetime over the full trail lifetime, clamped to [0,1]
func ParticleAlpha(lifetime int) float64 {
	a := float64(lifetime) / constants.TrailParticleLifetime
	return max(0, min(1, a))
}
