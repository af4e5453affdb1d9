package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSchedulerRunning is returned when Run is entered twice concurrently
var ErrSchedulerRunning = errors.New("frame scheduler already running")

// FrameScheduler steps a Game once per display frame on the calling goroutine
// Input events are applied between ticks on the same goroutine, so the world needs no locks
type FrameScheduler struct {
	game     *Game
	interval time.Duration

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	// Tick counter for debugging and tests
	tickCount atomic.Uint64
}

// NewFrameScheduler creates a scheduler with the given frame interval
func NewFrameScheduler(game *Game, interval time.Duration) *FrameScheduler {
	return &FrameScheduler{
		game:     game,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Run drives the game until the session ends (nil), Stop is called (nil), or ctx is cancelled (ctx.Err())
// Teardown stops the session; no tick executes after Run returns
func (fs *FrameScheduler) Run(ctx context.Context, events <-chan InputEvent) error {
	if !fs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer fs.running.Store(false)

	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fs.game.Stop()
			return ctx.Err()

		case <-fs.stopChan:
			fs.game.Stop()
			return nil

		case ev, ok := <-events:
			if !ok {
				// Input source closed, keep ticking without it
				events = nil
				continue
			}
			fs.game.World().Input.SetKey(ev.Key, ev.Pressed)

		case <-ticker.C:
			// Teardown wins over a tick that became ready at the same time
			select {
			case <-ctx.Done():
				fs.game.Stop()
				return ctx.Err()
			case <-fs.stopChan:
				fs.game.Stop()
				return nil
			default:
			}

			if fs.game.Status() != StatusPlaying {
				return nil
			}
			fs.tickCount.Add(1)
			if !fs.game.Step() {
				return nil
			}
		}
	}
}

// Stop requests teardown; safe to call from any goroutine and more than once
// A stopped scheduler stays stopped, create a new one per session
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		close(fs.stopChan)
	})
}

// Running reports whether Run is active
func (fs *FrameScheduler) Running() bool {
	return fs.running.Load()
}

// Ticks returns the number of executed ticks
func (fs *FrameScheduler) Ticks() uint64 {
	return fs.tickCount.Load()
}
