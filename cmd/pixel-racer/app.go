package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-racer/engine"
	"github.com/lixenwraith/pixel-racer/input"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/render"
	"github.com/lixenwraith/pixel-racer/render/renderers"
	"github.com/lixenwraith/pixel-racer/systems"
)

// screenState is the host view, owned by the main loop goroutine
type screenState uint8

const (
	stateMenu screenState = iota
	statePlaying
	stateGameOver
)

// app is the shell around the engine: menu, session, game-over screen
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	hud      *renderers.HUDRenderer
	game     *engine.Game
	pump     *input.Pump
	interval time.Duration

	state  screenState
	scores chan engine.Scores
	last   engine.Scores

	// Active session, nil outside play
	scheduler *engine.FrameScheduler
	done      chan error
}

func newApp(cfg parameter.Config, screen tcell.Screen, seed int64, interval time.Duration) *app {
	a := &app{
		screen:   screen,
		interval: interval,
		scores:   make(chan engine.Scores, 1),
	}

	world := engine.NewWorld(cfg, engine.NewRand(seed))
	systems.Register(world)

	a.game = engine.NewGame(world, func(s engine.Scores) {
		// Runs on the scheduler goroutine, once per session
		a.scores <- s
	})

	a.renderer = render.NewTerminalRenderer(screen)
	a.hud = renderers.RegisterDefaults(a.renderer)
	a.game.SetRenderer(a.renderer)

	a.pump = input.NewPump(screen, engine.NewMonotonicTimeProvider())
	return a
}

// run drives the host loop until quit, input closure, or ctx cancellation
func (a *app) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer crashGuard(a.screen, "INPUT PUMP")
		if err := a.pump.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("input pump: %v", err)
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.endSession()
			return ctx.Err()

		case cmd, ok := <-a.pump.Commands():
			if !ok {
				// Pump exits on cancellation or when the screen is finalized
				a.endSession()
				return ctx.Err()
			}
			if quit := a.handle(ctx, cmd); quit {
				a.endSession()
				return nil
			}

		case err := <-a.done:
			a.sessionEnded(err)
		}
	}
}

// handle applies a host command, reporting quit
func (a *app) handle(ctx context.Context, cmd input.Command) bool {
	switch cmd {
	case input.CommandQuit:
		return true

	case input.CommandStart:
		if a.state != statePlaying {
			a.startSession(ctx)
		}

	case input.CommandRestart:
		if a.state == stateGameOver {
			a.startSession(ctx)
		}

	case input.CommandToggleHUD:
		a.hud.Toggle()

	case input.CommandResize:
		// The scheduler goroutine owns the renderer during play
		if a.state == statePlaying {
			a.renderer.RequestSync()
			break
		}
		a.renderer.Resize()
		a.draw()
	}
	return false
}

// startSession issues the start signal and runs the scheduler on its own goroutine
func (a *app) startSession(ctx context.Context) {
	if n := a.pump.Discard(); n > 0 {
		log.Printf("discarded %d stale key events", n)
	}
	a.game.Start()
	a.state = statePlaying

	a.scheduler = engine.NewFrameScheduler(a.game, a.interval)
	a.done = make(chan error, 1)

	scheduler, done := a.scheduler, a.done
	go func() {
		defer crashGuard(a.screen, "SCHEDULER")
		done <- scheduler.Run(ctx, a.pump.Events())
	}()
}

// sessionEnded runs on the main loop once the scheduler returned
func (a *app) sessionEnded(err error) {
	a.scheduler, a.done = nil, nil
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("scheduler: %v", err)
	}

	select {
	case s := <-a.scores:
		a.last = s
		a.state = stateGameOver
	default:
		a.state = stateMenu
	}
	a.draw()
}

// endSession stops an active session and waits so nothing draws after return
func (a *app) endSession() {
	if a.scheduler == nil {
		return
	}
	a.scheduler.Stop()
	<-a.done
	a.scheduler, a.done = nil, nil
}

// draw renders the current full-screen view; sessions draw themselves
func (a *app) draw() {
	switch a.state {
	case stateMenu:
		a.renderer.RenderScreen(renderers.NewMenuRenderer(), nil)
	case stateGameOver:
		a.renderer.RenderScreen(renderers.NewGameOverRenderer(a.last), nil)
	}
}

// crashGuard restores the terminal before reporting a goroutine panic
func crashGuard(screen tcell.Screen, name string) {
	if r := recover(); r != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", name, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
