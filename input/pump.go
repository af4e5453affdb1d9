package input

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// EventSource is the blocking event feed of a terminal screen
// PollEvent returns nil once the source is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump converts terminal events into gameplay key edges and host commands
type Pump struct {
	source EventSource

	// mu guards tracker; edges are queued under it so Discard sees a consistent queue
	mu      sync.Mutex
	tracker *KeyTracker

	events   chan engine.InputEvent
	commands chan Command
	interval time.Duration
}

// NewPump creates a pump reading from source, timing holds with clock
func NewPump(source EventSource, clock engine.TimeProvider) *Pump {
	return &Pump{
		source:   source,
		tracker:  NewKeyTracker(clock),
		events:   make(chan engine.InputEvent, constants.InputEventBuffer),
		commands: make(chan Command, 16),
		interval: constants.InputPollInterval,
	}
}

// Events returns the gameplay key edges, closed when Run returns
func (p *Pump) Events() <-chan engine.InputEvent {
	return p.events
}

// Commands returns host commands, closed when Run returns
func (p *Pump) Commands() <-chan Command {
	return p.commands
}

// Run pumps until ctx is cancelled or the source closes
// Held keys are released before returning
func (p *Pump) Run(ctx context.Context) error {
	defer close(p.commands)
	defer close(p.events)

	raw := make(chan tcell.Event, constants.InputEventBuffer)
	// Polling uses a raw goroutine as it blocks on the terminal
	go func() {
		defer close(raw)
		for {
			ev := p.source.PollEvent()
			if ev == nil {
				return
			}
			select {
			case raw <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.releaseAll()
			return ctx.Err()

		case ev, ok := <-raw:
			if !ok {
				p.releaseAll()
				return nil
			}
			p.handle(ctx, ev)

		case <-ticker.C:
			p.Tick()
		}
	}
}

// Tick expires lapsed holds outside Run, used when the caller drives timing
func (p *Pump) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.release(p.tracker.Expire())
}

// Discard drops queued key edges and forgets active holds, returns how many edges were dropped
// Called before a session starts so menu keystrokes do not leak into play,
// while a key still held by the player registers again on its next repeat
func (p *Pump) Discard() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tracker.ReleaseAll()
	n := 0
	for {
		select {
		case _, ok := <-p.events:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}

// handle routes one terminal event
func (p *Pump) handle(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if cmd := Classify(ev); cmd != CommandNone {
			p.command(ctx, cmd)
		}
		if name := KeyName(ev); name != "" {
			p.press(name)
		}
	case *tcell.EventResize:
		p.command(ctx, CommandResize)
	}
}

// HandleEvent routes one event synchronously, used when the caller drives the source
func (p *Pump) HandleEvent(ev tcell.Event) {
	p.handle(context.Background(), ev)
}

func (p *Pump) press(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tracker.Press(key) {
		p.emit(engine.InputEvent{Key: key, Pressed: true})
	}
}

func (p *Pump) releaseAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.release(p.tracker.ReleaseAll())
}

// release queues release edges, caller holds mu
func (p *Pump) release(keys []string) {
	for _, key := range keys {
		p.emit(engine.InputEvent{Key: key, Pressed: false})
	}
}

// emit never blocks; with no reader the queue fills and further edges are dropped
func (p *Pump) emit(ev engine.InputEvent) {
	select {
	case p.events <- ev:
	default:
		log.Printf("input queue full, dropped %q pressed=%v", ev.Key, ev.Pressed)
	}
}

func (p *Pump) command(ctx context.Context, cmd Command) {
	select {
	case p.commands <- cmd:
	case <-ctx.Done():
	}
}
