package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to a terminal style.
type Color uint8

// Matrix palette plus a few UI colors.
const (
	ColorDefault Color = iota
	ColorHead          // bright green snake head
	ColorBody          // medium green snake body
	ColorWall          // dark green walls
	ColorFood          // pale, almost white
	ColorRain          // dim green background rain
	ColorText          // plain HUD text
	ColorMuted         // hints and unselected menu items
	ColorSelected      // highlighted menu item
	ColorWarm          // preview head at high speed
	ColorHot           // preview head at top speed
)
