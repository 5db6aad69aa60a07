package game

import (
	"context"
	"time"
)

// Scheduler runs a callback before the next repaint.
// A callback requested while frames are being fired runs on the frame after.
type Scheduler interface {
	RequestNextFrame(fn func())
}

// FrameScheduler queues callbacks until the host fires a frame.
// It is driven from a single goroutine: the one calling Fire.
type FrameScheduler struct {
	pending []func()
}

// RequestNextFrame queues fn for the next Fire
func (s *FrameScheduler) RequestNextFrame(fn func()) {
	s.pending = append(s.pending, fn)
}

// Fire runs every callback queued before the call and returns how many ran
func (s *FrameScheduler) Fire() int {
	callbacks := s.pending
	s.pending = nil
	for _, fn := range callbacks {
		fn()
	}
	return len(callbacks)
}

// Pending returns the number of queued callbacks
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// TickerScheduler fires frames from a time.Ticker for hosts without a
// repaint hook of their own
type TickerScheduler struct {
	frames   FrameScheduler
	interval time.Duration
}

// NewTickerScheduler creates a scheduler firing tps frames per second
func NewTickerScheduler(tps int) *TickerScheduler {
	if tps <= 0 {
		tps = DefaultConfig().TPS
	}
	return &TickerScheduler{
		interval: time.Second / time.Duration(tps),
	}
}

// RequestNextFrame queues fn for the next tick. It must be called before Run
// or from a callback running inside Run.
func (s *TickerScheduler) RequestNextFrame(fn func()) {
	s.frames.RequestNextFrame(fn)
}

// Interval returns the time between frames
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// Run fires queued callbacks on every tick until ctx is done
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.frames.Fire()
		}
	}
}
