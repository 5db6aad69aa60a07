package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimatorSelfReschedules(t *testing.T) {
	field := NewField(10, 800, 600, rand.New(rand.NewSource(1)), DefaultSpawnRules())
	surface := newRecordingSurface(800, 600)
	var frames FrameScheduler
	a := NewAnimator(field, surface, &frames)

	assert.Equal(t, 0, frames.Pending())
	a.Start()
	a.Start()
	assert.Equal(t, 1, frames.Pending(), "start must only request one frame")

	for i := 0; i < 5; i++ {
		assert.Equal(t, 1, frames.Fire())
	}

	assert.Equal(t, uint64(5), a.Frames())
	assert.Len(t, surface.ops("clear"), 5)
	assert.Len(t, surface.ops("fill"), 50)
	assert.Equal(t, 1, frames.Pending())
}

func TestAnimatorHooksRunAfterTick(t *testing.T) {
	field := NewField(2, 800, 600, rand.New(rand.NewSource(1)), DefaultSpawnRules())
	surface := newRecordingSurface(800, 600)
	var frames FrameScheduler
	a := NewAnimator(field, surface, &frames)

	var order []string
	a.OnFrame(func(int) {
		order = append(order, "first")
		assert.Len(t, surface.ops("fill"), 2)
	})
	a.OnFrame(func(int) { order = append(order, "second") })
	a.Start()
	frames.Fire()

	assert.Equal(t, []string{"first", "second"}, order)
}
