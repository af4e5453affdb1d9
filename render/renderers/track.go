package renderers

import (
	"math"

	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/render"
)

// TrackRenderer draws the road band and the scrolling lane separators
type TrackRenderer struct{}

// NewTrackRenderer creates a track renderer
func NewTrackRenderer() *TrackRenderer {
	return &TrackRenderer{}
}

// Render implements SystemRenderer
func (t *TrackRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snapshot == nil || ctx.View.Empty() {
		return
	}
	cfg := ctx.Snapshot.Config
	view := ctx.View

	roadTop := view.Row(cfg.RoadYOffset)
	roadBottom := view.Row(cfg.RoadYOffset + cfg.RoadHeight())
	for row := roadTop; row < roadBottom; row++ {
		for col := 0; col < view.Cols; col++ {
			buf.SetBgOnly(col, row, render.ColorRoad)
		}
	}

	for col := 0; col < view.Cols; col++ {
		if roadTop-1 >= view.Top() {
			buf.SetFgOnly(col, roadTop-1, '▁', render.ColorRoadEdge)
		}
		buf.SetFgOnly(col, roadBottom, '▔', render.ColorRoadEdge)
	}

	offset := DashOffset(ctx.Snapshot.FrameNumber, ctx.Snapshot.Speed)
	for lane := 1; lane < cfg.LaneCount; lane++ {
		row := view.Row(cfg.RoadYOffset + float64(lane)*cfg.LaneHeight)
		for col := 0; col < view.Cols; col++ {
			// World x at the cell center
			x := (float64(col) + 0.5) * cfg.GameWidth / float64(view.Cols)
			if DashVisible(x, offset) {
				buf.SetFgOnly(col, row, '─', render.ColorLaneDash)
			}
		}
	}
}

// DashOffset is the separator pattern offset for a frame: -(frame*speed) mod period
func DashOffset(frame int64, speed float64) float64 {
	period := float64(constants.LaneDashLength + constants.LaneDashGap)
	return -math.Mod(float64(frame)*speed, period)
}

// DashVisible reports whether world x falls on a dash; the pattern scrolls left as the offset decreases
func DashVisible(x, offset float64) bool {
	period := float64(constants.LaneDashLength + constants.LaneDashGap)
	phase := math.Mod(x-offset, period)
	if phase < 0 {
		phase += period
	}
	return phase < constants.LaneDashLength
}
