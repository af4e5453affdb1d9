package render

import "github.com/lixenwraith/pixel-racer/engine"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot *engine.Snapshot
	View     Viewport

	// Screen dimensions (terminal size)
	Width  int
	Height int
}

// NewRenderContext binds a snapshot to the current terminal size
// A nil snapshot yields an empty viewport, enough for full-screen menus
func NewRenderContext(snap *engine.Snapshot, width, height int) RenderContext {
	ctx := RenderContext{Snapshot: snap, Width: width, Height: height}
	if snap != nil {
		ctx.View = NewViewport(snap.Config, width, height)
	}
	return ctx
}
