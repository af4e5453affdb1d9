package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette, hex values from the arcade look
var (
	ColorBackground = MustHex("#222222")
	ColorRoad       = MustHex("#444444")
	ColorLaneDash   = MustHex("#888888")
	ColorRoadEdge   = MustHex("#666666")

	ColorObstacle   = MustHex("#EF4444") // red-500
	ColorRamp       = MustHex("#F59E0B") // amber-500
	ColorCoin       = MustHex("#FBBF24") // amber-400
	ColorSpeedBoost = MustHex("#8B5CF6") // violet-500

	ColorPlayer1   = MustHex("#34D399") // green-400
	ColorPlayer2   = MustHex("#60A5FA") // blue-400
	ColorExplosion = MustHex("#FFFFFF")

	ColorText      = MustHex("#FFFFFF")
	ColorTitle     = MustHex("#FACC15") // yellow-400
	ColorMuted     = MustHex("#D1D5DB") // gray-300
	ColorKeyHint   = MustHex("#FACC15")
	ColorButton    = MustHex("#9333EA") // purple-600
	ColorTitleGlow = MustHex("#9F00A1")
)

// MustHex parses a palette entry, panicking on malformed input
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad palette color " + s)
	}
	return c
}

// ParseHex parses a runtime color, falling back when malformed
func ParseHex(s string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

// Fade blends c toward bg, alpha 1 is c and 0 is bg
func Fade(c, bg colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return bg
	}
	return bg.BlendRgb(c, alpha).Clamped()
}

// ToTcell converts to a 24-bit terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
