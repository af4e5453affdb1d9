package render

import (
	"testing"

	"github.com/lixenwraith/pixel-racer/components"
	"github.com/lixenwraith/pixel-racer/parameter"
)

func TestViewportMapsRoadIntoTrack(t *testing.T) {
	cfg := parameter.Default()
	view := NewViewport(cfg, 80, 25)

	if view.Empty() {
		t.Fatal("Expected a drawable viewport")
	}

	col, row := view.Cell(0, cfg.RoadYOffset-cfg.LaneHeight/2)
	if col != 0 || row != HUDRows {
		t.Errorf("Expected band top at (0,%d), got (%d,%d)", HUDRows, col, row)
	}

	for lane := 0; lane < cfg.LaneCount; lane++ {
		_, row := view.Cell(cfg.GameWidth/2, cfg.LaneCenterY(lane))
		if !view.InTrack(40, row) {
			t.Errorf("Lane %d center row %d outside the track", lane, row)
		}
	}

	col, _ = view.Cell(cfg.GameWidth-1, cfg.LaneCenterY(0))
	if col != 79 {
		t.Errorf("Expected right edge in column 79, got %d", col)
	}
}

func TestViewportLanesAreOrdered(t *testing.T) {
	cfg := parameter.Default()
	view := NewViewport(cfg, 120, 40)

	prev := -1
	for lane := 0; lane < cfg.LaneCount; lane++ {
		row := view.Row(cfg.LaneCenterY(lane))
		if row <= prev {
			t.Errorf("Expected lane %d below lane %d, rows %d <= %d", lane, lane-1, row, prev)
		}
		prev = row
	}
}

func TestViewportOffscreenObject(t *testing.T) {
	cfg := parameter.Default()
	view := NewViewport(cfg, 80, 24)

	col, row := view.Center(components.Vector2D{X: cfg.GameWidth + cfg.SpawnMargin, Y: cfg.LaneCenterY(1) - 20}, components.Size{Width: 40, Height: 40})
	if view.InTrack(col, row) {
		t.Errorf("Expected spawned object off screen, got cell (%d,%d)", col, row)
	}
}

func TestViewportEmpty(t *testing.T) {
	if !NewViewport(parameter.Default(), 80, HUDRows).Empty() {
		t.Error("Expected empty viewport with no track rows")
	}
}

func TestTextLayout(t *testing.T) {
	tests := []struct {
		name string
		cols int
		text string
		want int
	}{
		{"centered", 20, "abcd", 8},
		{"wider than row", 3, "abcdef", 0},
		{"wide runes", 10, "日本", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterX(tt.cols, tt.text); got != tt.want {
				t.Errorf("Expected column %d, got %d", tt.want, got)
			}
		})
	}

	if got := RightX(20, 2, "P2: 10"); got != 12 {
		t.Errorf("Expected right-aligned start 12, got %d", got)
	}
}
