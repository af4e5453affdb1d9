package engine

import "strings"

// InputEvent is a key edge delivered between ticks
type InputEvent struct {
	Key     string
	Pressed bool
}

// InputState holds the pressed-key set for the running session
// Detached state (no session) ignores writes and reports nothing pressed
type InputState struct {
	keys     map[string]bool
	attached bool
}

// NewInputState creates a detached input state
func NewInputState() *InputState {
	return &InputState{keys: make(map[string]bool)}
}

// Attach starts a fresh key set for a new session
func (s *InputState) Attach() {
	s.keys = make(map[string]bool)
	s.attached = true
}

// Detach releases every key and stops accepting input
func (s *InputState) Detach() {
	clear(s.keys)
	s.attached = false
}

// Attached reports whether a session currently owns the input
func (s *InputState) Attached() bool {
	return s.attached
}

// SetKey records the pressed state for a key name, last write wins
func (s *InputState) SetKey(key string, pressed bool) {
	if !s.attached {
		return
	}
	s.keys[strings.ToLower(key)] = pressed
}

// IsPressed reports whether a key is currently held
func (s *InputState) IsPressed(key string) bool {
	if !s.attached {
		return false
	}
	return s.keys[strings.ToLower(key)]
}

// Clear force-releases a key after gameplay consumed it
func (s *InputState) Clear(key string) {
	delete(s.keys, strings.ToLower(key))
}
