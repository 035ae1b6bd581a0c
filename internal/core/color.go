package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota

	// Piece colors, one per kind.
	ColorCyan
	ColorMagenta
	ColorYellow
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange

	// HUD colors.
	ColorWhite
	ColorGray
	ColorAlert

	// ColorCount is the number of defined colors.
	ColorCount
)
