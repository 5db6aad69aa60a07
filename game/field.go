package game

// Field owns a fixed set of hearts and drives them one tick at a time
type Field struct {
	spawner *Spawner
	hearts  []Heart
}

// NewField creates count hearts spread below a width x height viewport.
// A negative count yields an empty field.
func NewField(count int, width, height float64, rng RandomSource, rules SpawnRules) *Field {
	if count < 0 {
		count = 0
	}

	spawner := NewSpawner(rng, rules, width, height)
	hearts := make([]Heart, 0, count)
	for i := 0; i < count; i++ {
		hearts = append(hearts, spawner.NewHeart())
	}

	return &Field{
		spawner: spawner,
		hearts:  hearts,
	}
}

// NewFieldFromConfig creates a field sized to the given viewport using the
// count and spawn rules of cfg
func NewFieldFromConfig(cfg Config, width, height int, rng RandomSource) *Field {
	return NewField(cfg.Count, float64(width), float64(height), rng, cfg.Spawn())
}

// Tick clears s, then advances and renders every heart in insertion order.
// It returns how many hearts wrapped during the tick.
func (f *Field) Tick(s Surface) int {
	s.Clear()

	wrapped := 0
	for i := range f.hearts {
		h := &f.hearts[i]
		if h.Advance() {
			wrapped++
		}
		h.Render(s)
	}
	return wrapped
}

// Len returns the number of hearts
func (f *Field) Len() int {
	return len(f.hearts)
}

// Hearts returns a detached copy of the current hearts. The copies keep the
// field's rules and viewport but not its random source, so advancing one
// never touches the field; a wrapped copy keeps its X.
func (f *Field) Hearts() []Heart {
	detached := &Spawner{
		Rules:  f.spawner.Rules,
		Width:  f.spawner.Width,
		Height: f.spawner.Height,
	}

	out := make([]Heart, len(f.hearts))
	copy(out, f.hearts)
	for i := range out {
		out[i].spawner = detached
	}
	return out
}

// Viewport returns the size the field was created for
func (f *Field) Viewport() (width, height float64) {
	return f.spawner.Width, f.spawner.Height
}
