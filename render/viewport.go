package render

import (
	"math"

	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/parameter"
)

// HUDRows is the number of terminal rows above the track
const HUDRows = 1

// Viewport projects world pixels onto the terminal grid
// The visible band is the road plus half a lane of verge above and below
type Viewport struct {
	Cols, Rows int

	top    int     // first track row on screen
	worldY float64 // world y at the top of the band
	scaleX float64
	scaleY float64
}

// NewViewport fits the configured track into a cols x rows terminal
func NewViewport(cfg parameter.Config, cols, rows int) Viewport {
	v := Viewport{Cols: cols, Rows: rows, top: HUDRows}

	trackRows := rows - HUDRows
	if cols <= 0 || trackRows <= 0 {
		return v
	}

	verge := cfg.LaneHeight / 2
	v.worldY = cfg.RoadYOffset - verge
	band := cfg.RoadHeight() + 2*verge

	v.scaleX = float64(cols) / cfg.GameWidth
	v.scaleY = float64(trackRows) / band
	return v
}

// Empty reports a terminal too small to draw the track
func (v Viewport) Empty() bool {
	return v.scaleX == 0 || v.scaleY == 0
}

// Cell maps a world point to a terminal cell
func (v Viewport) Cell(x, y float64) (int, int) {
	col := int(math.Floor(x * v.scaleX))
	row := v.top + int(math.Floor((y-v.worldY)*v.scaleY))
	return col, row
}

// Center maps the center of a box to a terminal cell
func (v Viewport) Center(pos components.Vector2D, size components.Size) (int, int) {
	return v.Cell(pos.X+size.Width/2, pos.Y+size.Height/2)
}

// Row maps a world y to a terminal row
func (v Viewport) Row(y float64) int {
	_, row := v.Cell(0, y)
	return row
}

// Columns converts a world width to a whole number of cells, at least 1
func (v Viewport) Columns(width float64) int {
	return max(1, int(math.Round(width*v.scaleX)))
}

// InTrack reports a cell inside the track area
func (v Viewport) InTrack(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= v.top && row < v.Rows
}

// Top returns the first track row
func (v Viewport) Top() int {
	return v.top
}
