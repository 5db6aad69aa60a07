package game

// Animator ticks a field onto a surface once per scheduled frame and
// re-requests the next frame at the end of each one. It has no stop state;
// the loop ends when the scheduler stops firing.
type Animator struct {
	field     *Field
	surface   Surface
	scheduler Scheduler
	onFrame   []func(wrapped int)

	started bool
	frames  uint64
}

// NewAnimator binds a field to the surface it draws on and the scheduler
// that paces it
func NewAnimator(field *Field, surface Surface, scheduler Scheduler) *Animator {
	return &Animator{
		field:     field,
		surface:   surface,
		scheduler: scheduler,
	}
}

// OnFrame registers fn to run after every tick, before the next frame is
// requested. Hooks run in registration order.
func (a *Animator) OnFrame(fn func(wrapped int)) {
	a.onFrame = append(a.onFrame, fn)
}

// Start requests the first frame. Later calls are no-ops.
func (a *Animator) Start() {
	if a.started {
		return
	}
	a.started = true
	a.scheduler.RequestNextFrame(a.frame)
}

// Frames returns the number of ticks run so far
func (a *Animator) Frames() uint64 {
	return a.frames
}

func (a *Animator) frame() {
	wrapped := a.field.Tick(a.surface)
	a.frames++
	for _, fn := range a.onFrame {
		fn(wrapped)
	}
	a.scheduler.RequestNextFrame(a.frame)
}
