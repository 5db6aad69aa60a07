package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every read after the first
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestFrameMonitorFPS(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0), step: time.Second / 60}
	m := newFrameMonitor(nil, clock.Now)

	for i := 0; i < 60; i++ {
		m.Frame(0)
	}

	assert.InDelta(t, 60.0, m.FPS(), 0.5)
	assert.Equal(t, uint64(60), m.Frames())
}

func TestFrameMonitorCountsWraps(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0), step: time.Millisecond}
	m := newFrameMonitor(nil, clock.Now)

	m.Frame(2)
	m.Frame(0)
	m.Frame(3)

	assert.Equal(t, uint64(5), m.Wraps())
	assert.Contains(t, m.String(), "wraps: 5")
}

func TestFrameMonitorCapturesOnDrop(t *testing.T) {
	profiler, err := NewProfiler(t.TempDir())
	require.NoError(t, err)
	profiler.captureDuration = 10 * time.Millisecond

	// 10 FPS, well under the drop threshold
	clock := &fakeClock{now: time.Unix(0, 0), step: 100 * time.Millisecond}
	m := newFrameMonitor(profiler, clock.Now)

	// warm-up frames never trigger a capture
	for i := 0; i < 25; i++ {
		m.Frame(0)
	}
	assert.False(t, profiler.IsProfiling())
	assert.True(t, profiler.lastCaptureTime.IsZero())

	for i := 0; i < 20; i++ {
		m.Frame(0)
	}
	profiler.Wait()
	assert.False(t, profiler.lastCaptureTime.IsZero())
}
