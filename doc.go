// Package prism is a host-agnostic animation and interaction toolkit for
// frame-driven effect scripts: tweens with a named easing catalog, touch
// gesture recognition, an orbit camera rig, CPU particle simulation, color
// effects, and voice/face event dispatchers.
//
// Prism has no opinion about rendering or input devices. The host engine
// owns the frame loop and feeds prism time and input; prism computes values
// and hands them back through callbacks.
//
// # Tweens
//
// A [Runner] owns a set of live tweens and advances them once per frame.
// Each hosting component should create its own Runner so teardown only
// cancels its own animations:
//
//	runner := prism.NewRunner()
//	handle, err := runner.Start(prism.TweenConfig{
//		Start:    prism.Float(0),
//		End:      prism.Float(10),
//		Duration: 1.0,
//		Ease:     prism.EaseOutCubic,
//		OnUpdate: func(v []float64) { sprite.X = v[0] },
//	})
//	// each frame:
//	runner.Tick(dt)
//
// Within one Tick, tweens advance in registration order and callbacks are
// deterministic. Repeat and Yoyo control looping and ping-pong playback;
// Cancel ends a tween early without firing OnComplete. Typed helpers
// ([TweenFloat], [TweenVec2], [TweenVec3], [TweenColor]), [Delay], and
// [Sequence] cover the common shapes.
//
// # Easings
//
// The easing catalog maps names like "easeInOutQuad" to normalized curves
// and is extendable via [RegisterEase]. All built-ins map 0 to 0 and 1 to 1.
//
// # Gestures
//
// [Gestures] recognizes taps, long-presses, swipes, drags, and two-finger
// pinches from abstract pointer samples. The host forwards its own input
// events:
//
//	g := prism.NewGestures(prism.GestureConfig{})
//	g.OnSwipe(func(ev prism.SwipeEvent) { ... })
//	// on input:           g.Press(id, x, y) / g.Move(...) / g.Release(...)
//	// once per frame:     g.Tick(dt)
//
// # Other components
//
// [OrbitCamera] turns drag and pinch deltas into orbit positions.
// [Emitter] simulates pooled particles for the host to draw. [Flash] and
// [CycleHue] animate colors through a Runner. [VoiceCommands] and
// [FaceTriggers] dispatch host-recognized speech and face events to
// callbacks. [Script] replays JSON-scripted input sequences against these
// components for automated testing.
//
// Runnable demos driving prism from an Ebitengine game loop live under
// examples/. ECS integration (publishing gesture events to a Donburi world)
// lives in the prism/ecs submodule.
package prism
