package render

import "github.com/mattn/go-runewidth"

// RuneWidth returns the terminal column width of a rune, at least 1
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// TextWidth returns the terminal column width of a string
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CenterX returns the start column that centers text in a row of width cols
func CenterX(cols int, text string) int {
	x := (cols - TextWidth(text)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// RightX returns the start column that ends text at cols-margin
func RightX(cols, margin int, text string) int {
	x := cols - margin - TextWidth(text)
	if x < 0 {
		return 0
	}
	return x
}

// Truncate shortens text to fit cols, marking the cut with an ellipsis
func Truncate(text string, cols int) string {
	if cols <= 0 {
		return ""
	}
	return runewidth.Truncate(text, cols, "…")
}
