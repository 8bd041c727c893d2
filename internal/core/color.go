package core

// Color represents a cell color.
// Colors are palette indices; the platform layer maps them to terminal colors.
type Color uint8

// Palette used by the renderer and the overlays.
const (
	ColorDefault Color = iota
	ColorWaterTop
	ColorWaterMid
	ColorWaterDeep
	ColorBubble
	ColorCoral
	ColorCoralShade
	ColorFish
	ColorFishTail
	ColorSeabed
	ColorPanel
	ColorText
	ColorAccent
	ColorMuted
)
