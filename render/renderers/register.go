package renderers

import "github.com/lixenwraith/pixel-racer/render"

// RegisterDefaults installs the in-session layers in draw order:
// track, particles, objects, players, HUD
// The HUD is returned so the host can toggle it
func RegisterDefaults(r *render.TerminalRenderer) *HUDRenderer {
	r.Register(NewTrackRenderer(), render.PriorityTrack)
	r.Register(NewParticleRenderer(), render.PriorityParticle)
	r.Register(NewObjectRenderer(), render.PriorityObjects)
	r.Register(NewPlayerRenderer(), render.PriorityPlayers)
	hud := NewHUDRenderer()
	r.Register(hud, render.PriorityUI)
	return hud
}
