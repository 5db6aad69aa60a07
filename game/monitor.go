package game

import (
	"fmt"
	"log"
	"time"
)

// FrameMonitor tracks frame rate and wraparounds. With a profiler attached
// it captures a CPU profile when the frame rate drops after warm-up.
type FrameMonitor struct {
	now      func() time.Time
	profiler *Profiler

	startTime time.Time
	lastFrame time.Time

	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64

	frames uint64
	wraps  uint64
}

// NewFrameMonitor creates a monitor; profiler may be nil
func NewFrameMonitor(profiler *Profiler) *FrameMonitor {
	return newFrameMonitor(profiler, time.Now)
}

func newFrameMonitor(profiler *Profiler, now func() time.Time) *FrameMonitor {
	start := now()
	return &FrameMonitor{
		now:       now,
		profiler:  profiler,
		startTime: start,
		lastFrame: start,
	}
}

// Frame records one tick and the wraparounds it produced
func (m *FrameMonitor) Frame(wrapped int) {
	now := m.now()
	deltaTime := now.Sub(m.lastFrame).Seconds()
	m.lastFrame = now

	m.frames++
	m.wraps += uint64(wrapped)

	m.fpsUpdateTimer += deltaTime
	m.fpsUpdateCounter++
	if m.fpsUpdateTimer < fpsWindow {
		return
	}

	m.fps = float64(m.fpsUpdateCounter) / m.fpsUpdateTimer
	m.fpsUpdateCounter = 0
	m.fpsUpdateTimer = 0

	if m.profiler != nil && m.fps < fpsDropThreshold && now.Sub(m.startTime) >= fpsWarmup {
		reason := fmt.Sprintf("fps%.0f", m.fps)
		if err := m.profiler.CaptureProfile(reason); err == nil {
			log.Printf("FPS drop detected (%.0f FPS). Saving performance profile...", m.fps)
		}
	}
}

// FPS returns the frame rate of the last complete sample window
func (m *FrameMonitor) FPS() float64 {
	return m.fps
}

// Frames returns the number of recorded frames
func (m *FrameMonitor) Frames() uint64 {
	return m.frames
}

// Wraps returns the total number of wraparounds recorded
func (m *FrameMonitor) Wraps() uint64 {
	return m.wraps
}

// String renders the overlay line
func (m *FrameMonitor) String() string {
	return fmt.Sprintf("FPS: %.1f  frames: %d  wraps: %d", m.fps, m.frames, m.wraps)
}
