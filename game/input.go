package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a window command bound to one or more keys
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleOverlay
)

// KeyBindings maps keys to actions
type KeyBindings map[ebiten.Key]Action

// DefaultKeyBindings returns Esc/Q to quit and F3 to toggle the overlay
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ebiten.KeyEscape: ActionQuit,
		ebiten.KeyQ:      ActionQuit,
		ebiten.KeyF3:     ActionToggleOverlay,
	}
}

// Resolve returns the action for the first bound key in keys
func (b KeyBindings) Resolve(keys []ebiten.Key) Action {
	for _, k := range keys {
		if action, ok := b[k]; ok {
			return action
		}
	}
	return ActionNone
}

// JustPressed returns the action of a key pressed this tick, if any
func (b KeyBindings) JustPressed() Action {
	return b.Resolve(inpututil.AppendJustPressedKeys(nil))
}
