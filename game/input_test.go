package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyBindingsResolve(t *testing.T) {
	b := DefaultKeyBindings()

	assert.Equal(t, ActionNone, b.Resolve(nil))
	assert.Equal(t, ActionNone, b.Resolve([]ebiten.Key{ebiten.KeyA}))
	assert.Equal(t, ActionQuit, b.Resolve([]ebiten.Key{ebiten.KeyEscape}))
	assert.Equal(t, ActionQuit, b.Resolve([]ebiten.Key{ebiten.KeyA, ebiten.KeyQ}))
	assert.Equal(t, ActionToggleOverlay, b.Resolve([]ebiten.Key{ebiten.KeyF3, ebiten.KeyQ}))
}

func TestDebugStateToggle(t *testing.T) {
	var d DebugState
	d.Toggle()
	assert.True(t, d.ShowFPS)
	d.Toggle()
	assert.False(t, d.ShowFPS)
}

func TestEbitenSurfaceUnbound(t *testing.T) {
	s := NewEbitenSurface(320, 240, colorHeart)

	w, h := s.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)

	// no image bound yet: drawing is dropped rather than panicking
	heart := Heart{X: 10, Y: 10, Size: 10, Alpha: 1}
	assert.NotPanics(t, func() {
		s.Clear()
		heart.Render(s)
	})
}
