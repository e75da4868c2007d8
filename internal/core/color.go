package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Predefined colors. The green shades approximate the classic Nokia LCD palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorNokiaLight // head
	ColorNokia      // body
	ColorNokiaDark  // grid frame
)
