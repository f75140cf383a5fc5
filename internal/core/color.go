package core

import "strings"

// Color represents a foreground color for a screen cell.
// Values map to ANSI codes in the platform layer.
type Color uint8

// Predefined colors for sprites and HUD text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_green":  ColorBrightGreen,
	"bright_yellow": ColorBrightYellow,
	"orange":        ColorOrange,
	"gray":          ColorGray,
}

// ParseColor looks up a color by its lowercase name.
// The second result is false for unknown names.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
