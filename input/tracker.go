package input

import (
	"slices"
	"time"

	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/engine"
)

// KeyTracker turns press-and-repeat terminal input into press/release edges
// A key is held from its first event until no repeat arrives within the hold window
// Not safe for concurrent use; the pump owns it
type KeyTracker struct {
	clock    engine.TimeProvider
	deadline map[string]time.Time

	initialHold time.Duration
	repeatHold  time.Duration
}

// NewKeyTracker creates a tracker with the default hold windows
func NewKeyTracker(clock engine.TimeProvider) *KeyTracker {
	return &KeyTracker{
		clock:       clock,
		deadline:    make(map[string]time.Time),
		initialHold: constants.KeyInitialHold,
		repeatHold:  constants.KeyRepeatHold,
	}
}

// Press records a key event and reports whether it starts a new hold
// Repeats within the window only extend the hold
func (t *KeyTracker) Press(key string) bool {
	now := t.clock.Now()
	if d, ok := t.deadline[key]; ok && now.Before(d) {
		t.deadline[key] = now.Add(t.repeatHold)
		return false
	}
	t.deadline[key] = now.Add(t.initialHold)
	return true
}

// Expire removes and returns the keys whose hold lapsed, sorted by name
func (t *KeyTracker) Expire() []string {
	now := t.clock.Now()
	var released []string
	for key, d := range t.deadline {
		if !now.Before(d) {
			released = append(released, key)
		}
	}
	for _, key := range released {
		delete(t.deadline, key)
	}
	slices.Sort(released)
	return released
}

// ReleaseAll drops every hold and returns the released keys, sorted by name
func (t *KeyTracker) ReleaseAll() []string {
	released := make([]string, 0, len(t.deadline))
	for key := range t.deadline {
		released = append(released, key)
	}
	clear(t.deadline)
	slices.Sort(released)
	return released
}

// Held reports whether a key is currently held
func (t *KeyTracker) Held(key string) bool {
	_, ok := t.deadline[key]
	return ok
}
