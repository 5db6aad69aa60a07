package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugState holds overlay flags. Each Game owns its own.
type DebugState struct {
	ShowFPS bool // frame rate and wrap counter in the top left corner
}

// Toggle flips the FPS overlay
func (d *DebugState) Toggle() {
	d.ShowFPS = !d.ShowFPS
}

func (d *DebugState) draw(screen *ebiten.Image, monitor *FrameMonitor) {
	if !d.ShowFPS {
		return
	}
	ebitenutil.DebugPrintAt(screen, monitor.String(), overlayMarginX, overlayMarginY)
}
