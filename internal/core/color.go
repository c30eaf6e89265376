package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette for sprites and HUD text. ColorDefault leaves the terminal's
// own foreground in place.
const (
	ColorDefault Color = iota
	ColorBrightWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightGreen
	ColorBrightMagenta
	ColorOrange
	ColorGray
	colorCount
)

// ansi256 holds the xterm 256-color code of each palette entry.
var ansi256 = [colorCount]string{
	ColorBrightWhite:   "15",
	ColorBrightYellow:  "11",
	ColorBrightCyan:    "14",
	ColorBrightGreen:   "10",
	ColorBrightMagenta: "13",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the 256-color code for c, or "" for the default color
// and for values outside the palette.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}

// Colors returns every palette entry, ColorDefault first.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
