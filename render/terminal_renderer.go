package render

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// TerminalRenderer composites registered layers into a buffer and flushes it to a tcell screen
// It satisfies engine.Renderer and is called on the simulation goroutine
type TerminalRenderer struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int

	// Set from any goroutine, consumed by the next frame
	syncPending atomic.Bool
}

// NewTerminalRenderer creates a renderer for the given screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (r *TerminalRenderer) Register(sr SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: sr,
		priority: priority,
		index:    r.regCount,
	}
	r.regCount++

	pos := len(r.renderers)
	for i, e := range r.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	r.renderers = append(r.renderers, rendererEntry{})
	copy(r.renderers[pos+1:], r.renderers[pos:])
	r.renderers[pos] = entry
}

// Buffer returns the compositor, valid until the next frame
func (r *TerminalRenderer) Buffer() *RenderBuffer {
	return r.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	ctx := r.begin(snap)
	if ctx.Width < constants.MinScreenWidth || ctx.Height < constants.MinScreenHeight {
		r.buffer.DrawText(0, 0, Truncate("Terminal too small", ctx.Width), ColorText, true)
		r.end()
		return
	}
	for _, entry := range r.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, r.buffer)
	}
	r.end()
}

// RenderScreen draws a single full-screen layer, used for menus outside a session
func (r *TerminalRenderer) RenderScreen(sr SystemRenderer, snap *engine.Snapshot) {
	ctx := r.begin(snap)
	sr.Render(ctx, r.buffer)
	r.end()
}

// begin matches the buffer to the terminal and clears it
func (r *TerminalRenderer) begin(snap *engine.Snapshot) RenderContext {
	if r.syncPending.Swap(false) {
		r.screen.Sync()
	}
	w, h := r.screen.Size()
	if bw, bh := r.buffer.Bounds(); bw != w || bh != h {
		r.buffer.Resize(w, h)
	} else {
		r.buffer.Clear()
	}
	return NewRenderContext(snap, w, h)
}

func (r *TerminalRenderer) end() {
	r.buffer.Flush(r.screen)
	r.screen.Show()
}

// RequestSync schedules a full terminal repaint on the next frame
// Safe to call while another goroutine is rendering
func (r *TerminalRenderer) RequestSync() {
	r.syncPending.Store(true)
}

// Resize syncs the terminal after a resize event
// Must not run concurrently with RenderFrame
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.buffer.Resize(w, h)
	r.screen.Sync()
}
