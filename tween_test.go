package prism

import (
	"errors"
	"math"
	"testing"
)

// recorder captures the scalar values delivered to OnUpdate and counts
// completions.
type recorder struct {
	values    []float64
	completes int
}

func (rec *recorder) config(from, to, duration float64) TweenConfig {
	return TweenConfig{
		Start:      Float(from),
		End:        Float(to),
		Duration:   duration,
		OnUpdate:   func(v []float64) { rec.values = append(rec.values, v[0]) },
		OnComplete: func() { rec.completes++ },
	}
}

func TestTweenLinearScenario(t *testing.T) {
	// start 0, end 10, duration 1s, linear: tick(0.5) → 5, tick(0.5) → 10
	// plus exactly one completion, then silence.
	r := NewRunner()
	var rec recorder
	handle, err := r.Start(rec.config(0, 10, 1.0))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	r.Tick(0.5)
	if len(rec.values) != 1 {
		t.Fatalf("got %d updates, want 1", len(rec.values))
	}
	assertNear(t, "midpoint", rec.values[0], 5)
	if rec.completes != 0 {
		t.Fatal("completed early")
	}

	r.Tick(0.5)
	if len(rec.values) != 2 {
		t.Fatalf("got %d updates, want 2", len(rec.values))
	}
	assertNear(t, "endpoint", rec.values[1], 10)
	if rec.completes != 1 {
		t.Fatalf("completes = %d, want 1", rec.completes)
	}

	// No further callbacks after completion.
	r.Tick(1.0)
	if len(rec.values) != 2 || rec.completes != 1 {
		t.Errorf("callbacks after completion: %d updates, %d completes", len(rec.values), rec.completes)
	}
	// The handle is dead: cancelling it is a harmless no-op.
	r.Cancel(handle)
}

func TestTweenCompleteFiresAfterFinalUpdate(t *testing.T) {
	r := NewRunner()
	var order []string
	_, err := r.Start(TweenConfig{
		Start:      Float(0),
		End:        Float(1),
		Duration:   0.5,
		OnUpdate:   func([]float64) { order = append(order, "update") },
		OnComplete: func() { order = append(order, "complete") },
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	r.Tick(1.0) // overshoot: update clamps to end, then completes
	if len(order) != 2 || order[0] != "update" || order[1] != "complete" {
		t.Fatalf("order = %v, want [update complete]", order)
	}
}

func TestTweenZeroDuration(t *testing.T) {
	// Zero duration jumps to the end value and completes on the very next
	// tick, regardless of dt.
	r := NewRunner()
	var rec recorder
	if _, err := r.Start(rec.config(0, 1, 0)); err != nil {
		t.Fatalf("Start: %v", err)
	}

	r.Tick(0.0001)
	if len(rec.values) != 1 {
		t.Fatalf("got %d updates, want 1", len(rec.values))
	}
	assertNear(t, "value", rec.values[0], 1)
	if rec.completes != 1 {
		t.Fatalf("completes = %d, want 1", rec.completes)
	}
}

func TestTweenRepeatRunsExtraPasses(t *testing.T) {
	// Repeat = 2 means three full passes before completion.
	r := NewRunner()
	var rec recorder
	cfg := rec.config(0, 1, 1.0)
	cfg.Repeat = 2
	if _, err := r.Start(cfg); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 3; i++ {
		r.Tick(1.0)
	}
	if rec.completes != 1 {
		t.Fatalf("completes = %d after 3 passes, want 1", rec.completes)
	}
	// Every full-duration tick lands exactly on the end of a pass.
	for _, v := range rec.values {
		assertNear(t, "pass end", v, 1)
	}
}

func TestTweenInfiniteRepeatNeverCompletes(t *testing.T) {
	r := NewRunner()
	var rec recorder
	cfg := rec.config(0, 1, 0.1)
	cfg.Repeat = RepeatForever
	handle, err := r.Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 1000; i++ {
		r.Tick(0.1)
	}
	if rec.completes != 0 {
		t.Fatalf("completes = %d, want 0 for infinite repeat", rec.completes)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}

	// Only cancellation ends it, and cancellation never fires OnComplete.
	r.Cancel(handle)
	if rec.completes != 0 {
		t.Fatal("cancel fired OnComplete")
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d after cancel, want 0", r.Len())
	}
}

func TestTweenYoyoTwoPasses(t *testing.T) {
	// yoyo + repeat 1: values rise monotonically to the end, then fall
	// monotonically back, then the tween completes. Exactly two passes.
	r := NewRunner()
	var rec recorder
	cfg := rec.config(0, 10, 1.0)
	cfg.Yoyo = true
	cfg.Repeat = 1
	if _, err := r.Start(cfg); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Exact binary dt so each pass lands exactly on the duration.
	for i := 0; i < 16; i++ {
		r.Tick(0.125)
	}
	if rec.completes != 1 {
		t.Fatalf("completes = %d, want 1", rec.completes)
	}

	// 8 rising samples then 8 falling samples.
	if len(rec.values) != 16 {
		t.Fatalf("got %d updates, want 16", len(rec.values))
	}
	for i := 1; i < 8; i++ {
		if rec.values[i] < rec.values[i-1] {
			t.Fatalf("forward pass not monotonic at %d: %v", i, rec.values)
		}
	}
	assertNear(t, "peak", rec.values[7], 10)
	for i := 9; i < 16; i++ {
		if rec.values[i] > rec.values[i-1] {
			t.Fatalf("reverse pass not monotonic at %d: %v", i, rec.values)
		}
	}
	assertNear(t, "final", rec.values[15], 0)
}

func TestTweenVectorYoyoInfinite(t *testing.T) {
	// start [0,0,0], end [0,10,0], yoyo, infinite: full ticks alternate the
	// value between the two endpoints until cancelled.
	r := NewRunner()
	var last []float64
	cfg := TweenConfig{
		Start:    []float64{0, 0, 0},
		End:      []float64{0, 10, 0},
		Duration: 1.0,
		Yoyo:     true,
		Repeat:   RepeatForever,
		OnUpdate: func(v []float64) { last = append(last[:0], v...) },
		OnComplete: func() {
			t.Error("OnComplete fired for infinite repeat")
		},
	}
	handle, err := r.Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for cycle := 0; cycle < 5; cycle++ {
		r.Tick(1.0)
		assertNear(t, "up Y", last[1], 10)
		r.Tick(1.0)
		assertNear(t, "down Y", last[1], 0)
	}
	r.Cancel(handle)
}

func TestTweenEasingApplied(t *testing.T) {
	r := NewRunner()
	var got float64
	_, err := r.Start(TweenConfig{
		Start:    Float(0),
		End:      Float(100),
		Duration: 1.0,
		Ease:     EaseInQuad,
		OnUpdate: func(v []float64) { got = v[0] },
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Tick(0.5)
	assertNear(t, "inQuad midpoint", got, 25)
}

func TestTweenYoyoReversePassUsesFlippedEndpoints(t *testing.T) {
	// During the reverse pass the eased progress interpolates end → start.
	r := NewRunner()
	var got float64
	_, err := r.Start(TweenConfig{
		Start:    Float(0),
		End:      Float(100),
		Duration: 1.0,
		Yoyo:     true,
		Repeat:   1,
		OnUpdate: func(v []float64) { got = v[0] },
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Tick(1.0) // forward pass done, direction flips
	assertNear(t, "peak", got, 100)
	r.Tick(0.25) // quarter into the reverse pass
	assertNear(t, "reverse quarter", got, 75)
}

func TestTweenDeterminism(t *testing.T) {
	// Identical configs and tick sequences produce bit-identical values.
	run := func() []float64 {
		r := NewRunner()
		var values []float64
		_, err := r.Start(TweenConfig{
			Start:    Float(0),
			End:      Float(1),
			Duration: 0.7,
			Ease:     EaseInOutExpo,
			Repeat:   3,
			Yoyo:     true,
			OnUpdate: func(v []float64) { values = append(values, v[0]) },
		})
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		dts := []float64{0.1, 0.25, 0.05, 0.3, 0.1, 0.4, 0.2, 0.15}
		for _, dt := range dts {
			r.Tick(dt)
		}
		return values
	}

	a := run()
	b := run()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestTweenConfigIsCopied(t *testing.T) {
	r := NewRunner()
	start := Float(0)
	end := Float(10)
	var got float64
	cfg := TweenConfig{
		Start:    start,
		End:      end,
		Duration: 1.0,
		OnUpdate: func(v []float64) { got = v[0] },
	}
	if _, err := r.Start(cfg); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Mutating the caller's slices must not affect the running tween.
	start[0] = 999
	end[0] = -999

	r.Tick(0.5)
	assertNear(t, "midpoint", got, 5)
}

func TestTweenInvalidConfigs(t *testing.T) {
	r := NewRunner()
	tests := []struct {
		name string
		cfg  TweenConfig
	}{
		{"empty start", TweenConfig{End: Float(1), Duration: 1}},
		{"shape mismatch", TweenConfig{Start: Float(0), End: []float64{1, 2}, Duration: 1}},
		{"negative duration", TweenConfig{Start: Float(0), End: Float(1), Duration: -1}},
		{"repeat below -1", TweenConfig{Start: Float(0), End: Float(1), Duration: 1, Repeat: -2}},
		{"unknown easing", TweenConfig{Start: Float(0), End: Float(1), Duration: 1, Ease: "bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Start(tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
			if r.Len() != 0 {
				t.Errorf("invalid config registered an instance")
			}
		})
	}
}

func TestTweenNilCallbacksAllowed(t *testing.T) {
	r := NewRunner()
	if _, err := r.Start(TweenConfig{Start: Float(0), End: Float(1), Duration: 0.1}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.Tick(1.0) // must not panic
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}

func TestTweenValueWithinEndpointsForMonotonicEase(t *testing.T) {
	r := NewRunner()
	var min, max float64 = math.Inf(1), math.Inf(-1)
	_, err := r.Start(TweenConfig{
		Start:    Float(2),
		End:      Float(8),
		Duration: 1.0,
		Ease:     EaseInOutCubic,
		OnUpdate: func(v []float64) {
			min = math.Min(min, v[0])
			max = math.Max(max, v[0])
		},
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 20; i++ {
		r.Tick(0.05)
	}
	if min < 2 || max > 8 {
		t.Errorf("values escaped [2, 8]: min %v max %v", min, max)
	}
}
