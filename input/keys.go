package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// specialKeyNames maps non-rune terminal keys to their input-state names
var specialKeyNames = map[tcell.Key]string{
	tcell.KeyLeft:   "arrowleft",
	tcell.KeyRight:  "arrowright",
	tcell.KeyUp:     "arrowup",
	tcell.KeyDown:   "arrowdown",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "escape",
	tcell.KeyTab:    "tab",
}

// KeyName returns the lowercase key name for an event, empty when the key has none
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return " "
		}
		if !unicode.IsPrint(r) {
			return ""
		}
		return string(unicode.ToLower(r))
	}
	return specialKeyNames[ev.Key()]
}
