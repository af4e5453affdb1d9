package renderers

import (
	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/render"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ObjectRenderer draws track objects as single glyphs at their centers
type ObjectRenderer struct{}

// NewObjectRenderer creates an object renderer
func NewObjectRenderer() *ObjectRenderer {
	return &ObjectRenderer{}
}

// Render implements SystemRenderer
func (o *ObjectRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snapshot == nil || ctx.View.Empty() {
		return
	}
	for _, obj := range ctx.Snapshot.Objects {
		col, row := ctx.View.Center(obj.Position, obj.Size)
		if !ctx.View.InTrack(col, row) {
			continue
		}
		glyph, color := ObjectGlyph(obj.Type)
		buf.SetBold(col, row, glyph, color)
	}
}

// ObjectGlyph returns the glyph and color for an object type
func ObjectGlyph(t components.ObjectType) (rune, colorful.Color) {
	switch t {
	case components.ObjectObstacle:
		return 'O', render.ColorObstacle
	case components.ObjectRamp:
		return 'R', render.ColorRamp
	case components.ObjectCoin:
		return '$', render.ColorCoin
	case components.ObjectSpeedBoost:
		return '>', render.ColorSpeedBoost
	default:
		return '?', render.ColorText
	}
}
