package game

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSchedulerDefersNestedRequests(t *testing.T) {
	var s FrameScheduler
	runs := 0
	var cb func()
	cb = func() {
		runs++
		s.RequestNextFrame(cb)
	}

	s.RequestNextFrame(cb)
	assert.Equal(t, 1, s.Pending())

	assert.Equal(t, 1, s.Fire())
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, s.Pending())

	assert.Equal(t, 1, s.Fire())
	assert.Equal(t, 2, runs)
}

func TestFrameSchedulerEmptyFire(t *testing.T) {
	var s FrameScheduler
	assert.Equal(t, 0, s.Fire())
}

func TestNewTickerSchedulerInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, NewTickerScheduler(60).Interval())
	assert.Equal(t, time.Second/60, NewTickerScheduler(0).Interval())
	assert.Equal(t, time.Second/100, NewTickerScheduler(100).Interval())
}

func TestTickerSchedulerRunsUntilCancelled(t *testing.T) {
	s := NewTickerScheduler(500)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	var cb func()
	cb = func() {
		if runs.Add(1) == 5 {
			cancel()
		}
		s.RequestNextFrame(cb)
	}
	s.RequestNextFrame(cb)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	require.GreaterOrEqual(t, runs.Load(), int32(5))
}
