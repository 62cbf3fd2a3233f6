package prism

import (
	"errors"
	"fmt"
)

// RepeatForever makes a tween repeat until it is cancelled.
const RepeatForever = -1

// ErrInvalidConfig is returned by Runner.Start for malformed tween configs:
// negative duration, mismatched Start/End shapes, Repeat below -1, or an
// unknown easing name. Use errors.Is to test for it.
var ErrInvalidConfig = errors.New("prism: invalid tween config")

// TweenConfig describes one interpolation job. It is consumed by value at
// Start time; mutating it afterwards has no effect on the running tween.
//
// Start and End carry the interpolated shape: a single element for scalar
// tweens, or any fixed length for vector tweens. Both must have the same
// length.
type TweenConfig struct {
	Start []float64
	End   []float64

	// Duration is the length of one pass in seconds. Zero means an immediate
	// jump to End followed by completion on the next tick.
	Duration float64

	// Ease names an easing function from the catalog (see ease.go).
	// Empty means linear. Unknown names are rejected by Start.
	Ease string

	// Repeat is the number of additional passes after the first:
	// 0 runs once, N runs N more times, RepeatForever never completes.
	Repeat int

	// Yoyo alternates direction (end→start) on each repeated pass instead
	// of restarting from Start.
	Yoyo bool

	// OnUpdate is invoked once per tick with the current interpolated value.
	// The slice is reused between ticks; copy it if you need to keep it.
	OnUpdate func(value []float64)

	// OnComplete is invoked exactly once when the tween finishes all passes.
	// It never fires for cancelled tweens or Repeat == RepeatForever.
	OnComplete func()
}

// Float wraps a scalar in the slice shape TweenConfig expects.
func Float(v float64) []float64 { return []float64{v} }

// tween is one live interpolation job, owned exclusively by its Runner.
type tween struct {
	handle Handle

	start    []float64
	end      []float64
	value    []float64 // reused OnUpdate buffer
	duration float64
	ease     EaseFunc
	repeat   int
	yoyo     bool

	onUpdate   func([]float64)
	onComplete func()

	elapsed   float64
	reverse   bool
	done      bool // completed or cancelled; skipped and swept by the Runner
	completed bool // reached terminal state naturally (OnComplete fired)
}

// newTween validates cfg and builds the instance. Shape and range errors are
// reported here so Start can refuse to register anything.
func newTween(cfg TweenConfig) (*tween, error) {
	if len(cfg.Start) == 0 {
		return nil, fmt.Errorf("%w: empty start value", ErrInvalidConfig)
	}
	if len(cfg.Start) != len(cfg.End) {
		return nil, fmt.Errorf("%w: start has %d components, end has %d",
			ErrInvalidConfig, len(cfg.Start), len(cfg.End))
	}
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("%w: negative duration %v", ErrInvalidConfig, cfg.Duration)
	}
	if cfg.Repeat < RepeatForever {
		return nil, fmt.Errorf("%w: repeat %d below %d", ErrInvalidConfig, cfg.Repeat, RepeatForever)
	}
	ease, ok := LookupEase(cfg.Ease)
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, cfg.Ease)
	}

	tw := &tween{
		start:      append([]float64(nil), cfg.Start...),
		end:        append([]float64(nil), cfg.End...),
		value:      make([]float64, len(cfg.Start)),
		duration:   cfg.Duration,
		ease:       ease,
		repeat:     cfg.Repeat,
		yoyo:       cfg.Yoyo,
		onUpdate:   cfg.OnUpdate,
		onComplete: cfg.OnComplete,
	}
	return tw, nil
}

// advance runs one full step for this tween: progress, easing, interpolation,
// OnUpdate, and the repeat/yoyo/complete transition. The caller (Runner.Tick)
// isolates callback panics.
//
// A cancel issued from inside OnUpdate (including self-cancel) marks the
// tween done; advance observes that after the callback returns and performs
// no further transitions, so OnComplete cannot fire on a cancelled tween.
func (tw *tween) advance(dt float64) {
	// Zero duration: jump straight to the end value and complete.
	if tw.duration <= 0 {
		copy(tw.value, tw.end)
		tw.fireUpdate()
		if tw.done {
			return
		}
		tw.complete()
		return
	}

	tw.elapsed += dt
	rawT := clamp01(tw.elapsed / tw.duration)
	easedT := tw.ease(rawT)

	from, to := tw.start, tw.end
	if tw.reverse {
		from, to = tw.end, tw.start
	}
	for i := range tw.value {
		tw.value[i] = lerp(from[i], to[i], easedT)
	}
	tw.fireUpdate()
	if tw.done {
		return
	}

	if rawT < 1 {
		return
	}

	switch {
	case tw.repeat != 0 && tw.yoyo:
		tw.reverse = !tw.reverse
		tw.elapsed = 0
		if tw.repeat > 0 {
			tw.repeat--
		}
	case tw.repeat != 0:
		tw.elapsed = 0
		if tw.repeat > 0 {
			tw.repeat--
		}
	default:
		tw.complete()
	}
}

func (tw *tween) fireUpdate() {
	if tw.onUpdate != nil {
		tw.onUpdate(tw.value)
	}
}

func (tw *tween) complete() {
	tw.done = true
	tw.completed = true
	if tw.onComplete != nil {
		tw.onComplete()
	}
}
