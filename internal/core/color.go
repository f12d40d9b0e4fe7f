package core

// Color represents a foreground color for a screen cell.
// The platform maps it to ANSI colors when rendering.
type Color uint8

// Palette used by the game screens.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
