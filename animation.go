package prism

import "fmt"

// Typed convenience constructors over Runner.Start. Each maps a common value
// shape onto the slice form TweenConfig uses and applies results through a
// caller-supplied setter, so host objects (transforms, materials, volumes)
// stay outside the engine.

// TweenFloat animates a scalar from one value to another over duration
// seconds, invoking apply with the eased value each tick.
func TweenFloat(r *Runner, from, to, duration float64, ease string, apply func(float64)) (Handle, error) {
	return r.Start(TweenConfig{
		Start:    Float(from),
		End:      Float(to),
		Duration: duration,
		Ease:     ease,
		OnUpdate: func(v []float64) { apply(v[0]) },
	})
}

// TweenVec2 animates a 2D vector component-wise.
func TweenVec2(r *Runner, from, to Vec2, duration float64, ease string, apply func(Vec2)) (Handle, error) {
	return r.Start(TweenConfig{
		Start:    []float64{from.X, from.Y},
		End:      []float64{to.X, to.Y},
		Duration: duration,
		Ease:     ease,
		OnUpdate: func(v []float64) { apply(Vec2{v[0], v[1]}) },
	})
}

// TweenVec3 animates a 3D vector component-wise.
func TweenVec3(r *Runner, from, to Vec3, duration float64, ease string, apply func(Vec3)) (Handle, error) {
	return r.Start(TweenConfig{
		Start:    []float64{from.X, from.Y, from.Z},
		End:      []float64{to.X, to.Y, to.Z},
		Duration: duration,
		Ease:     ease,
		OnUpdate: func(v []float64) { apply(Vec3{v[0], v[1], v[2]}) },
	})
}

// TweenColor animates all four color components.
func TweenColor(r *Runner, from, to Color, duration float64, ease string, apply func(Color)) (Handle, error) {
	return r.Start(TweenConfig{
		Start:    []float64{from.R, from.G, from.B, from.A},
		End:      []float64{to.R, to.G, to.B, to.A},
		Duration: duration,
		Ease:     ease,
		OnUpdate: func(v []float64) { apply(Color{v[0], v[1], v[2], v[3]}) },
	})
}

// Delay invokes fn once after the given number of seconds has been ticked
// through the Runner. Cancelling the returned handle drops the callback.
func Delay(r *Runner, seconds float64, fn func()) (Handle, error) {
	return r.Start(TweenConfig{
		Start:      Float(0),
		End:        Float(1),
		Duration:   seconds,
		OnComplete: fn,
	})
}

// Sequence chains tween configs: each step starts when the previous one
// completes. A step's own OnComplete still fires before the next step is
// scheduled. Cancel stops the sequence at whatever step is running.
type Sequence struct {
	runner    *Runner
	current   Handle
	cancelled bool

	// OnFinish is invoked after the final step completes. Optional.
	OnFinish func()
}

// NewSequence validates every step up front and starts the first one.
// Steps with Repeat == RepeatForever are rejected: they would never hand
// control to the next step.
func NewSequence(r *Runner, steps ...TweenConfig) (*Sequence, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: sequence needs at least one step", ErrInvalidConfig)
	}
	for i, step := range steps {
		if step.Repeat == RepeatForever {
			return nil, fmt.Errorf("%w: sequence step %d repeats forever", ErrInvalidConfig, i)
		}
		if _, err := newTween(step); err != nil {
			return nil, fmt.Errorf("sequence step %d: %w", i, err)
		}
	}

	s := &Sequence{runner: r}
	if err := s.startStep(steps, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// Cancel stops the running step and prevents any further steps. Idempotent.
func (s *Sequence) Cancel() {
	s.cancelled = true
	s.runner.Cancel(s.current)
}

func (s *Sequence) startStep(steps []TweenConfig, i int) error {
	cfg := steps[i]
	userComplete := cfg.OnComplete
	cfg.OnComplete = func() {
		if userComplete != nil {
			userComplete()
		}
		if s.cancelled {
			return
		}
		if i+1 < len(steps) {
			// Start from inside a callback is queued for the next tick.
			_ = s.startStep(steps, i+1)
			return
		}
		if s.OnFinish != nil {
			s.OnFinish()
		}
	}

	handle, err := s.runner.Start(cfg)
	if err != nil {
		return err
	}
	s.current = handle
	return nil
}
