package core

// Color is a foreground color for a screen cell. The platform layer maps
// these to ANSI colors; the simulation and renderer stay terminal-agnostic.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
)
