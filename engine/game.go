package engine

import (
	"log"

	"github.com/google/uuid"
)

// GameStatus is the session lifecycle state
type GameStatus int

const (
	StatusMenu GameStatus = iota
	StatusPlaying
	StatusGameOver
)

// String returns the status name
func (s GameStatus) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Renderer draws one frame from a snapshot of the current state
type Renderer interface {
	RenderFrame(snapshot *Snapshot)
}

// Scores is the final result handed to the game-over callback
type Scores struct {
	SessionID string
	Player1   int
	Player2   int
}

// Winner returns 1 or 2 for the higher score, 0 for a tie
func (s Scores) Winner() int {
	switch {
	case s.Player1 > s.Player2:
		return 1
	case s.Player2 > s.Player1:
		return 2
	default:
		return 0
	}
}

// Game drives one World through sessions
// The host calls Start to begin a session and Step once per display frame
type Game struct {
	world      *World
	renderer   Renderer
	onGameOver func(Scores)

	status    GameStatus
	sessionID string
	reported  bool
}

// NewGame creates a game in the menu state
// onGameOver is invoked exactly once per finished session
func NewGame(world *World, onGameOver func(Scores)) *Game {
	world.Input.Detach()
	return &Game{
		world:      world,
		onGameOver: onGameOver,
		status:     StatusMenu,
	}
}

// SetRenderer installs the per-frame render sink
func (g *Game) SetRenderer(r Renderer) {
	g.renderer = r
}

// World returns the simulation state
func (g *Game) World() *World {
	return g.world
}

// Status returns the lifecycle state
func (g *Game) Status() GameStatus {
	return g.status
}

// SessionID returns the id of the current or last session
func (g *Game) SessionID() string {
	return g.sessionID
}

// Start is the start signal: resets all entity state and begins playing
// Calling it again after game over restarts with a new session
func (g *Game) Start() {
	g.world.Reset()
	g.sessionID = uuid.NewString()
	g.reported = false
	g.status = StatusPlaying
	log.Printf("session %s started (lanes=%d, speed=%.3f)", g.sessionID, g.world.Config.LaneCount, g.world.Speed)
}

// Step runs one tick: systems, render, termination check
// Returns false once the session is no longer playing; no further steps take effect
func (g *Game) Step() bool {
	if g.status != StatusPlaying {
		return false
	}

	g.world.Update()

	if g.renderer != nil {
		g.renderer.RenderFrame(g.Snapshot())
	}

	if g.world.SessionOver() {
		g.finish()
		return false
	}
	return true
}

// Stop tears down a running session without reporting scores
func (g *Game) Stop() {
	if g.status != StatusPlaying {
		return
	}
	g.world.Input.Detach()
	g.status = StatusMenu
	log.Printf("session %s stopped at frame %d", g.sessionID, g.world.FrameNumber)
}

// finish reports final scores once and ends the session
func (g *Game) finish() {
	g.world.Input.Detach()
	g.status = StatusGameOver
	if g.reported {
		return
	}
	g.reported = true

	scores := Scores{SessionID: g.sessionID}
	if p := g.world.Player(1); p != nil {
		scores.Player1 = p.Score
	}
	if p := g.world.Player(2); p != nil {
		scores.Player2 = p.Score
	}

	log.Printf("session %s over at frame %d: P1=%d P2=%d", g.sessionID, g.world.FrameNumber, scores.Player1, scores.Player2)
	if g.onGameOver != nil {
		g.onGameOver(scores)
	}
}
