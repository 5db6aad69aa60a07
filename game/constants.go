package game

import (
	"image/color"
	"time"
)

// Monitor constants
const (
	fpsWindow        = 0.5 // seconds per FPS sample
	fpsDropThreshold = 45.0
	fpsWarmup        = 3 * time.Second
	profileCooldown  = 10 * time.Second
	profileDuration  = 2 * time.Second
)

// Overlay and terminal constants
const (
	overlayMarginX     = 12
	overlayMarginY     = 12
	terminalCellWidth  = 8  // raster pixels per terminal column
	terminalCellHeight = 16 // raster pixels per terminal row, split into two halves
	halfBlock          = '▀'
)

// Color constants
var (
	colorHeart = color.NRGBA{R: 0xff, G: 0x4d, B: 0x6d, A: 0xff}
)
