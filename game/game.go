package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Game runs the heart field inside an Ebiten window. Ebiten's Draw is the
// repaint hook: every call fires the frames the animator requested.
type Game struct {
	config   Config
	surface  *EbitenSurface
	frames   *FrameScheduler
	field    *Field
	animator *Animator
	monitor  *FrameMonitor
	keys     KeyBindings
	debug    DebugState
}

// NewGame creates a game sized to the configured screen. The viewport is
// fixed at construction.
func NewGame(config Config, rng RandomSource, profiler *Profiler) *Game {
	surface := NewEbitenSurface(config.ScreenWidth, config.ScreenHeight, config.BackgroundColor())
	width, height := surface.Size()

	field := NewFieldFromConfig(config, width, height, rng)
	frames := &FrameScheduler{}
	monitor := NewFrameMonitor(profiler)

	animator := NewAnimator(field, surface, frames)
	animator.OnFrame(monitor.Frame)
	animator.Start()

	return &Game{
		config:   config,
		surface:  surface,
		frames:   frames,
		field:    field,
		animator: animator,
		monitor:  monitor,
		keys:     DefaultKeyBindings(),
	}
}

// Update handles window commands; the animation itself advances in Draw
func (g *Game) Update() error {
	switch g.keys.JustPressed() {
	case ActionQuit:
		return ebiten.Termination
	case ActionToggleOverlay:
		g.debug.Toggle()
	}
	return nil
}

// Draw ticks the field onto the screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.frames.Fire()
	g.debug.draw(screen, g.monitor)
}

// Layout keeps the logical screen at the startup viewport
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.Size()
}

// Field returns the animated field
func (g *Game) Field() *Field {
	return g.field
}

// Monitor returns the frame monitor
func (g *Game) Monitor() *FrameMonitor {
	return g.monitor
}
