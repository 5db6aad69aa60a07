package game

import (
	"image/color"
	"math"
)

// RandomSource yields uniform values in [0, 1).
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type RandomSource interface {
	Float64() float64
}

// SpawnRules are the ranges and margins hearts are created and recycled with
type SpawnRules struct {
	SizeMin, SizeMax   float64
	SpeedMin, SpeedMax float64
	AlphaMin, AlphaMax float64

	SpawnDepth     float64 // initial y is drawn from [height, height+SpawnDepth)
	ResetThreshold float64 // a heart wraps once y drops below this
	RespawnOffset  float64 // wrapped hearts restart at height+RespawnOffset

	Color color.NRGBA
}

// DefaultSpawnRules returns the rules of DefaultConfig
func DefaultSpawnRules() SpawnRules {
	return DefaultConfig().Spawn()
}

// Spawner creates hearts inside a fixed viewport and redraws their
// horizontal position on wraparound. The viewport is read once and never
// updated.
type Spawner struct {
	Rules  SpawnRules
	Width  float64
	Height float64
	rng    RandomSource
}

// NewSpawner creates a spawner for a width x height viewport
func NewSpawner(rng RandomSource, rules SpawnRules, width, height float64) *Spawner {
	return &Spawner{
		Rules:  rules,
		Width:  width,
		Height: height,
		rng:    rng,
	}
}

// between draws from [min, max). A degenerate range yields min.
func (s *Spawner) between(min, max float64) float64 {
	if max <= min {
		return min
	}
	v := min + s.rng.Float64()*(max-min)
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v
}

// NewHeart creates a heart below the bottom edge with randomized traits
func (s *Spawner) NewHeart() Heart {
	return Heart{
		X:       s.between(0, s.Width),
		Y:       s.between(s.Height, s.Height+s.Rules.SpawnDepth),
		Size:    s.between(s.Rules.SizeMin, s.Rules.SizeMax),
		Speed:   s.between(s.Rules.SpeedMin, s.Rules.SpeedMax),
		Alpha:   s.between(s.Rules.AlphaMin, s.Rules.AlphaMax),
		spawner: s,
	}
}

// Heart is a single rising heart glyph.
// Size, Speed and Alpha never change after creation.
type Heart struct {
	X, Y  float64
	Size  float64
	Speed float64
	Alpha float64

	spawner *Spawner
}

// Advance moves the heart up by its speed and recycles it to the bottom of
// the viewport once it passes the reset threshold. It reports whether the
// heart wrapped.
//
// A heart not created by a Spawner wraps by the default rules against a
// zero-height viewport. Without a random source X is kept on wrap.
func (h *Heart) Advance() bool {
	h.Y -= h.Speed

	if h.spawner == nil {
		rules := DefaultSpawnRules()
		if h.Y < rules.ResetThreshold {
			h.Y = rules.RespawnOffset
			return true
		}
		return false
	}

	rules := h.spawner.Rules
	if h.Y < rules.ResetThreshold {
		h.Y = h.spawner.Height + rules.RespawnOffset
		if h.spawner.rng != nil {
			h.X = h.spawner.between(0, h.spawner.Width)
		}
		return true
	}
	return false
}

// Render fills the heart silhouette on s: two mirrored cubic curves joined
// at (X, Y) and (X, Y+Size). It leaves the fill colour and global alpha of s
// set to this heart's values.
func (h *Heart) Render(s Surface) {
	x, y, size := h.X, h.Y, h.Size

	s.SetGlobalAlpha(h.Alpha)
	s.SetFillColor(h.color())
	s.BeginPath()
	s.MoveTo(x, y)
	s.CubicTo(x-size, y-size, x-size*2, y+size/2, x, y+size)
	s.CubicTo(x+size*2, y+size/2, x+size, y-size, x, y)
	s.Fill()
}

func (h *Heart) color() color.NRGBA {
	if h.spawner == nil {
		return colorHeart
	}
	return h.spawner.Rules.Color
}
