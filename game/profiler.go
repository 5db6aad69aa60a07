package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

// ErrProfileCooldown is returned when a capture is requested too soon after
// the previous one
var ErrProfileCooldown = errors.New("capture on cooldown")

// ErrProfiling is returned when a capture is already running
var ErrProfiling = errors.New("already profiling")

// Profiler captures CPU profiles into a directory when frame rate drops
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}

	return &Profiler{
		captureCooldown: profileCooldown,
		captureDuration: profileDuration,
		profilesDir:     dir,
	}, nil
}

// CaptureProfile starts a CPU profile capture in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return ErrProfiling
	}
	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrProfileCooldown, time.Since(p.lastCaptureTime))
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	profilePath := filepath.Join(p.profilesDir, fmt.Sprintf("fps-drop-%s-%s.cpu.prof", timestamp, reason))

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		if err := p.captureCPUProfile(profilePath); err != nil {
			log.Printf("Error capturing CPU profile: %v", err)
			return
		}
		logMemStats(profilePath)
	}()

	return nil
}

// Wait blocks until running captures finish
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling returns whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(profilePath string) error {
	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s", profilePath)
	return nil
}

func logMemStats(profilePath string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory at capture of %s: alloc=%dKB sys=%dKB numGC=%d heapObjects=%d",
		filepath.Base(profilePath), m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
