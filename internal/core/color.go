package core

// Color is the foreground of a screen cell. Surfaces map it to a terminal
// colour when rendering.
type Color uint8

// Bubbles fade from bright green to bright red as they age; pops and the
// countdown use the bright yellow and cyan accents.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
)
