package input

import "github.com/gdamore/tcell/v2"

// Command is a host-level action, separate from gameplay keys
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit         // Ctrl+C, Esc, q
	CommandStart        // Enter, Space
	CommandRestart      // r
	CommandResize       // Terminal resize event
	CommandToggleHUD    // h
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandQuit:
		return "quit"
	case CommandStart:
		return "start"
	case CommandRestart:
		return "restart"
	case CommandResize:
		return "resize"
	case CommandToggleHUD:
		return "toggle-hud"
	default:
		return "unknown"
	}
}

// Classify maps a key event to a host command
func Classify(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return CommandQuit
	case tcell.KeyEnter:
		return CommandStart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit
		case ' ':
			return CommandStart
		case 'r', 'R':
			return CommandRestart
		case 'h', 'H':
			return CommandToggleHUD
		}
	}
	return CommandNone
}
