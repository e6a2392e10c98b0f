package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// HitColors maps remaining brick hits to a color, strongest last.
var HitColors = []Color{ColorGray, ColorGreen, ColorCyan, ColorBlue, ColorMagenta, ColorYellow, ColorOrange, ColorRed}

// ColorForHits returns the brick color for a hit count.
func ColorForHits(hits int) Color {
	return HitColors[Clamp(hits, 0, len(HitColors)-1)]
}
