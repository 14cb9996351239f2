package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal colors.
type Color uint8

// Palette used by the shooter. Shape colors follow the player/enemy split:
// players are the cool tones, enemies the warm ones.
const (
	ColorDefault Color = iota
	ColorText
	ColorGrid
	ColorHealthRed
	ColorSuccessGreen
	ColorAccentYellow
	ColorPlayerCircle   // cyan
	ColorPlayerTriangle // green
	ColorPlayerCube     // purple
	ColorEnemyCircle    // orange
	ColorEnemyTriangle  // magenta
	ColorEnemyCube      // red
	ColorSpeedBlue
	ColorDim
)
