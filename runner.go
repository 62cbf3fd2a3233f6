package prism

// Handle is an opaque reference to a live tween, used for cancellation.
// Handles are unique within their Runner for its whole lifetime and are
// never reused, so a stale handle held by a pending callback can only ever
// name the tween it was issued for.
type Handle uint64

// Runner owns a set of live tweens and advances them once per external time
// tick. Each hosting component should own its own Runner so that teardown
// (CancelAll) cannot disturb another component's animations.
//
// Runner is strictly single-threaded: Start, Cancel, CancelAll, and Tick must
// all be called from the host's update loop. Within one Tick, tweens are
// advanced in the order they were registered, and each tween's full step
// (interpolate → OnUpdate → transition) finishes before the next begins, so
// callback ordering is deterministic.
type Runner struct {
	tweens   []*tween          // live instances, FIFO registration order
	byHandle map[Handle]*tween // handle lookup for Cancel
	pending  []*tween          // started during Tick; joins tweens afterwards
	next     Handle
	ticking  bool
}

// NewRunner creates an empty Runner.
func NewRunner() *Runner {
	return &Runner{byHandle: make(map[Handle]*tween)}
}

// Start validates cfg and registers a new tween, returning its handle.
// The tween first advances on the next Tick, including when Start is called
// from inside a callback during a Tick already in progress: the new tween is
// queued and never advanced mid-iteration.
func (r *Runner) Start(cfg TweenConfig) (Handle, error) {
	tw, err := newTween(cfg)
	if err != nil {
		return 0, err
	}

	r.next++
	tw.handle = r.next
	r.byHandle[tw.handle] = tw

	if r.ticking {
		r.pending = append(r.pending, tw)
	} else {
		r.tweens = append(r.tweens, tw)
	}
	return tw.handle, nil
}

// Cancel removes the tween for handle without invoking its OnComplete.
// It is idempotent: unknown or already-finished handles are a no-op.
// Cancelling from inside a callback takes effect immediately: a not-yet
// visited tween is skipped for the remainder of the current Tick, and a
// tween cancelling itself stops as soon as its own callback returns.
func (r *Runner) Cancel(handle Handle) {
	tw, ok := r.byHandle[handle]
	if !ok {
		return
	}
	tw.done = true
	if !r.ticking {
		r.sweep()
	}
}

// CancelAll removes every live tween without invoking any OnComplete.
// Call this when the hosting component tears down.
func (r *Runner) CancelAll() {
	for _, tw := range r.tweens {
		tw.done = true
	}
	for _, tw := range r.pending {
		tw.done = true
	}
	if !r.ticking {
		r.sweep()
	}
}

// Len returns the number of live tweens, including any queued for the next tick.
func (r *Runner) Len() int {
	n := 0
	for _, tw := range r.tweens {
		if !tw.done {
			n++
		}
	}
	for _, tw := range r.pending {
		if !tw.done {
			n++
		}
	}
	return n
}

// Tick advances every live tween by dt seconds. A panic raised by a tween's
// OnUpdate or OnComplete is recovered and reported (see SetPanicReporter),
// the offending tween is cancelled, and the remaining tweens still advance.
// Nested Tick calls from inside a callback are ignored.
func (r *Runner) Tick(dt float64) {
	if r.ticking {
		return
	}
	r.ticking = true

	for i := 0; i < len(r.tweens); i++ {
		tw := r.tweens[i]
		if tw.done {
			continue
		}
		r.step(tw, dt)
	}

	r.ticking = false
	r.sweep()
}

// step advances a single tween, isolating callback panics.
func (r *Runner) step(tw *tween, dt float64) {
	defer func() {
		if rec := recover(); rec != nil {
			tw.done = true
			reportPanic(rec)
		}
	}()
	tw.advance(dt)
}

// sweep drops finished tweens, releases their handles, and admits tweens
// queued during the last Tick. Registration order is preserved.
func (r *Runner) sweep() {
	live := r.tweens[:0]
	for _, tw := range r.tweens {
		if tw.done {
			delete(r.byHandle, tw.handle)
			continue
		}
		live = append(live, tw)
	}
	// Clear the tail so dropped tweens don't linger behind the slice.
	for i := len(live); i < len(r.tweens); i++ {
		r.tweens[i] = nil
	}
	r.tweens = live

	for _, tw := range r.pending {
		if tw.done {
			delete(r.byHandle, tw.handle)
			continue
		}
		r.tweens = append(r.tweens, tw)
	}
	r.pending = r.pending[:0]
}
