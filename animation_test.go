package prism

import "testing"

func TestTweenFloatReachesTarget(t *testing.T) {
	r := NewRunner()
	x := 10.0
	_, err := TweenFloat(r, x, 100, 1.0, EaseLinear, func(v float64) { x = v })
	if err != nil {
		t.Fatalf("TweenFloat: %v", err)
	}

	// Run for full duration using exact halves to avoid accumulation drift.
	r.Tick(0.5)
	assertNear(t, "halfway", x, 55)
	r.Tick(0.5)
	assertNear(t, "end", x, 100)
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}

func TestTweenVec2(t *testing.T) {
	r := NewRunner()
	var pos Vec2
	_, err := TweenVec2(r, Vec2{0, 0}, Vec2{100, 200}, 1.0, "", func(v Vec2) { pos = v })
	if err != nil {
		t.Fatalf("TweenVec2: %v", err)
	}

	r.Tick(0.5)
	assertNear(t, "X", pos.X, 50)
	assertNear(t, "Y", pos.Y, 100)
}

func TestTweenVec3(t *testing.T) {
	r := NewRunner()
	var pos Vec3
	_, err := TweenVec3(r, Vec3{0, 0, 0}, Vec3{10, 20, 30}, 1.0, "", func(v Vec3) { pos = v })
	if err != nil {
		t.Fatalf("TweenVec3: %v", err)
	}

	r.Tick(1.0)
	assertNear(t, "X", pos.X, 10)
	assertNear(t, "Y", pos.Y, 20)
	assertNear(t, "Z", pos.Z, 30)
}

func TestTweenColorAllComponents(t *testing.T) {
	r := NewRunner()
	got := Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	_, err := TweenColor(r, got, target, 1.0, EaseLinear, func(c Color) { got = c })
	if err != nil {
		t.Fatalf("TweenColor: %v", err)
	}

	r.Tick(0.5)
	r.Tick(0.5)
	assertNear(t, "R", got.R, target.R)
	assertNear(t, "G", got.G, target.G)
	assertNear(t, "B", got.B, target.B)
	assertNear(t, "A", got.A, target.A)
}

func TestTweenFloatUnknownEase(t *testing.T) {
	r := NewRunner()
	_, err := TweenFloat(r, 0, 1, 1.0, "wobbly", func(float64) {})
	if err == nil {
		t.Fatal("expected error for unknown easing")
	}
}

func TestDelayFiresOnce(t *testing.T) {
	r := NewRunner()
	fired := 0
	_, err := Delay(r, 0.5, func() { fired++ })
	if err != nil {
		t.Fatalf("Delay: %v", err)
	}

	r.Tick(0.25)
	if fired != 0 {
		t.Fatal("fired early")
	}
	r.Tick(0.25)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	r.Tick(1.0)
	if fired != 1 {
		t.Fatalf("fired = %d after extra ticks, want 1", fired)
	}
}

func TestDelayCancelled(t *testing.T) {
	r := NewRunner()
	fired := 0
	handle, err := Delay(r, 0.5, func() { fired++ })
	if err != nil {
		t.Fatalf("Delay: %v", err)
	}
	r.Cancel(handle)
	r.Tick(1.0)
	if fired != 0 {
		t.Fatal("cancelled delay fired")
	}
}

func TestSequenceRunsStepsInOrder(t *testing.T) {
	r := NewRunner()
	x := 0.0
	var finished bool

	seq, err := NewSequence(r,
		TweenConfig{
			Start: Float(0), End: Float(10), Duration: 1.0,
			OnUpdate: func(v []float64) { x = v[0] },
		},
		TweenConfig{
			Start: Float(10), End: Float(0), Duration: 1.0,
			OnUpdate: func(v []float64) { x = v[0] },
		},
	)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	seq.OnFinish = func() { finished = true }

	r.Tick(1.0) // step 1 completes; step 2 queued for the next tick
	assertNear(t, "after step 1", x, 10)
	if finished {
		t.Fatal("finished early")
	}

	r.Tick(1.0)
	assertNear(t, "after step 2", x, 0)
	if !finished {
		t.Fatal("OnFinish did not fire")
	}
}

func TestSequenceStepOnCompleteStillFires(t *testing.T) {
	r := NewRunner()
	var completes []int

	_, err := NewSequence(r,
		TweenConfig{
			Start: Float(0), End: Float(1), Duration: 0.5,
			OnComplete: func() { completes = append(completes, 1) },
		},
		TweenConfig{
			Start: Float(0), End: Float(1), Duration: 0.5,
			OnComplete: func() { completes = append(completes, 2) },
		},
	)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	r.Tick(0.5)
	r.Tick(0.5)
	if len(completes) != 2 || completes[0] != 1 || completes[1] != 2 {
		t.Fatalf("completes = %v, want [1 2]", completes)
	}
}

func TestSequenceCancelStopsChain(t *testing.T) {
	r := NewRunner()
	var secondRan bool

	seq, err := NewSequence(r,
		TweenConfig{Start: Float(0), End: Float(1), Duration: 0.5},
		TweenConfig{
			Start: Float(0), End: Float(1), Duration: 0.5,
			OnUpdate: func([]float64) { secondRan = true },
		},
	)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	r.Tick(0.25)
	seq.Cancel()
	for i := 0; i < 10; i++ {
		r.Tick(0.5)
	}
	if secondRan {
		t.Fatal("cancelled sequence advanced to the next step")
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}

func TestSequenceRejectsInfiniteStep(t *testing.T) {
	r := NewRunner()
	_, err := NewSequence(r,
		TweenConfig{Start: Float(0), End: Float(1), Duration: 0.5, Repeat: RepeatForever},
	)
	if err == nil {
		t.Fatal("expected error for infinite step")
	}
}

func TestSequenceRejectsEmpty(t *testing.T) {
	r := NewRunner()
	if _, err := NewSequence(r); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

func TestSequenceValidatesAllStepsUpFront(t *testing.T) {
	r := NewRunner()
	var ran bool
	_, err := NewSequence(r,
		TweenConfig{
			Start: Float(0), End: Float(1), Duration: 0.5,
			OnUpdate: func([]float64) { ran = true },
		},
		TweenConfig{Start: Float(0), End: []float64{1, 2}, Duration: 0.5}, // bad shape
	)
	if err == nil {
		t.Fatal("expected error for invalid later step")
	}
	r.Tick(1.0)
	if ran {
		t.Fatal("sequence with invalid step started its first step")
	}
}
