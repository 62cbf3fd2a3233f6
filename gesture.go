package prism

import "math"

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = primary, 1-9 = additional touches

	defaultTapSlop           = 8.0  // pixels
	defaultTapMaxDuration    = 0.3  // seconds
	defaultLongPressDuration = 0.5  // seconds
	defaultDragDeadZone      = 4.0  // pixels
	defaultSwipeMinDistance  = 48.0 // pixels
	defaultSwipeMaxDuration  = 0.4  // seconds
)

// --- Built-in HitShape types ---

// HitShape tests whether a point lies inside a gesture region.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Events ---

// GestureKind identifies a recognized gesture.
type GestureKind uint8

const (
	GestureTap       GestureKind = iota // press and release within the tap slop and duration
	GestureLongPress                    // held past the long-press duration without dragging
	GestureSwipe                        // fast directional flick
	GestureDragStart                    // movement exceeded the drag dead zone
	GestureDrag                         // fires on every move while dragging
	GestureDragEnd                      // pointer released after dragging
	GesturePinch                        // two-pointer pinch/rotate in progress
)

// SwipeDirection is the dominant axis direction of a swipe.
type SwipeDirection uint8

const (
	SwipeLeft SwipeDirection = iota
	SwipeRight
	SwipeUp
	SwipeDown
)

// TapEvent is delivered for taps and long-presses.
type TapEvent struct {
	PointerID int
	X, Y      float64
}

// SwipeEvent describes a completed swipe.
type SwipeEvent struct {
	PointerID      int
	StartX, StartY float64
	EndX, EndY     float64
	Direction      SwipeDirection
	Duration       float64 // seconds between press and release
}

// DragEvent describes an in-progress or completed drag.
type DragEvent struct {
	PointerID      int
	X, Y           float64 // current position
	StartX, StartY float64 // press position
	DeltaX, DeltaY float64 // movement since the previous event
}

// PinchEvent describes a two-pointer pinch/rotate gesture.
type PinchEvent struct {
	CenterX, CenterY float64
	Scale            float64 // current distance / initial distance
	ScaleDelta       float64 // scale change since the previous event
	Rotation         float64 // radians rotated since the pinch began
	RotDelta         float64 // rotation change since the previous event
}

// GestureEvent is the unified form of every recognized gesture, delivered to
// the firehose sink (SetSink) for bridges like the ecs adapter. Fields beyond
// Kind/PointerID/X/Y are populated per gesture kind.
type GestureEvent struct {
	Kind           GestureKind
	PointerID      int
	X, Y           float64
	StartX, StartY float64
	DeltaX, DeltaY float64
	Direction      SwipeDirection
	Scale          float64
	ScaleDelta     float64
	Rotation       float64
	RotDelta       float64
}

// --- Configuration ---

// GestureConfig tunes recognition thresholds. Zero values select defaults.
type GestureConfig struct {
	// TapSlop is the maximum movement in pixels for a press/release pair to
	// count as a tap.
	TapSlop float64
	// TapMaxDuration is the maximum press duration in seconds for a tap.
	TapMaxDuration float64
	// LongPressDuration is how long a pointer must stay down (within the tap
	// slop) before a long-press fires.
	LongPressDuration float64
	// DragDeadZone is the minimum movement in pixels before a drag starts.
	DragDeadZone float64
	// SwipeMinDistance is the minimum travel in pixels for a swipe.
	SwipeMinDistance float64
	// SwipeMaxDuration is the maximum press duration in seconds for a swipe.
	SwipeMaxDuration float64
	// Region, when set, restricts recognition to pointers that press inside
	// the shape. Pointers pressed outside are ignored entirely.
	Region HitShape
}

func (c *GestureConfig) applyDefaults() {
	if c.TapSlop <= 0 {
		c.TapSlop = defaultTapSlop
	}
	if c.TapMaxDuration <= 0 {
		c.TapMaxDuration = defaultTapMaxDuration
	}
	if c.LongPressDuration <= 0 {
		c.LongPressDuration = defaultLongPressDuration
	}
	if c.DragDeadZone <= 0 {
		c.DragDeadZone = defaultDragDeadZone
	}
	if c.SwipeMinDistance <= 0 {
		c.SwipeMinDistance = defaultSwipeMinDistance
	}
	if c.SwipeMaxDuration <= 0 {
		c.SwipeMaxDuration = defaultSwipeMaxDuration
	}
}

// --- Per-pointer state ---

type gesturePointer struct {
	down           bool
	ignored        bool // pressed outside Region
	startX, startY float64
	lastX, lastY   float64
	held           float64 // seconds since press
	moved          float64 // max distance from press position
	dragging       bool
	longPressFired bool
	inPinch        bool
}

// --- Pinch state ---

type pinchState struct {
	active       bool
	pointer0     int
	pointer1     int
	initialDist  float64
	initialAngle float64
	prevDist     float64
	prevAngle    float64
}

// --- Recognizer ---

// Gestures recognizes taps, long-presses, swipes, drags, and pinches from
// abstract pointer samples. The host feeds Press/Move/Release per pointer id
// (0 for the primary pointer, 1-9 for additional touches) and calls Tick once
// per frame so time-based gestures (long-press) can fire.
//
// Like Runner, a Gestures value is single-threaded and owned by its hosting
// component.
type Gestures struct {
	cfg      GestureConfig
	pointers [maxPointers]gesturePointer
	pinch    pinchState

	taps    handlerList[TapEvent]
	longs   handlerList[TapEvent]
	swipes  handlerList[SwipeEvent]
	dragSt  handlerList[DragEvent]
	drags   handlerList[DragEvent]
	dragEnd handlerList[DragEvent]
	pinches handlerList[PinchEvent]

	sink func(GestureEvent)
}

// NewGestures creates a recognizer with the given thresholds.
func NewGestures(cfg GestureConfig) *Gestures {
	cfg.applyDefaults()
	return &Gestures{cfg: cfg}
}

// OnTap registers a tap callback.
func (g *Gestures) OnTap(fn func(TapEvent)) CallbackHandle { return g.taps.add(fn) }

// OnLongPress registers a long-press callback.
func (g *Gestures) OnLongPress(fn func(TapEvent)) CallbackHandle { return g.longs.add(fn) }

// OnSwipe registers a swipe callback.
func (g *Gestures) OnSwipe(fn func(SwipeEvent)) CallbackHandle { return g.swipes.add(fn) }

// OnDragStart registers a drag-start callback.
func (g *Gestures) OnDragStart(fn func(DragEvent)) CallbackHandle { return g.dragSt.add(fn) }

// OnDrag registers a per-move drag callback.
func (g *Gestures) OnDrag(fn func(DragEvent)) CallbackHandle { return g.drags.add(fn) }

// OnDragEnd registers a drag-end callback.
func (g *Gestures) OnDragEnd(fn func(DragEvent)) CallbackHandle { return g.dragEnd.add(fn) }

// OnPinch registers a pinch callback.
func (g *Gestures) OnPinch(fn func(PinchEvent)) CallbackHandle { return g.pinches.add(fn) }

// SetSink installs a unified event callback that receives every recognized
// gesture in addition to the typed handlers. Pass nil to remove it.
func (g *Gestures) SetSink(fn func(GestureEvent)) {
	g.sink = fn
}

// Press records a pointer going down at (x, y).
func (g *Gestures) Press(pointerID int, x, y float64) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &g.pointers[pointerID]
	if ps.down {
		return
	}
	*ps = gesturePointer{
		down:   true,
		startX: x, startY: y,
		lastX: x, lastY: y,
	}
	if g.cfg.Region != nil && !g.cfg.Region.Contains(x, y) {
		ps.ignored = true
		return
	}
	g.maybeBeginPinch()
}

// Move records a pointer moving to (x, y) while down. Moves for unknown or
// released pointers are ignored.
func (g *Gestures) Move(pointerID int, x, y float64) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &g.pointers[pointerID]
	if !ps.down || ps.ignored {
		return
	}

	dx := x - ps.lastX
	dy := y - ps.lastY
	ps.lastX = x
	ps.lastY = y

	dist := math.Hypot(x-ps.startX, y-ps.startY)
	if dist > ps.moved {
		ps.moved = dist
	}

	if g.pinch.active && ps.inPinch {
		g.updatePinch()
		return
	}

	if !ps.dragging && dist > g.cfg.DragDeadZone {
		ps.dragging = true
		ev := DragEvent{
			PointerID: pointerID,
			X:         x, Y: y,
			StartX: ps.startX, StartY: ps.startY,
			DeltaX: x - ps.startX, DeltaY: y - ps.startY,
		}
		g.dragSt.fire(ev)
		g.emit(GestureEvent{
			Kind: GestureDragStart, PointerID: pointerID,
			X: x, Y: y, StartX: ps.startX, StartY: ps.startY,
			DeltaX: ev.DeltaX, DeltaY: ev.DeltaY,
		})
		return
	}

	if ps.dragging {
		ev := DragEvent{
			PointerID: pointerID,
			X:         x, Y: y,
			StartX: ps.startX, StartY: ps.startY,
			DeltaX: dx, DeltaY: dy,
		}
		g.drags.fire(ev)
		g.emit(GestureEvent{
			Kind: GestureDrag, PointerID: pointerID,
			X: x, Y: y, StartX: ps.startX, StartY: ps.startY,
			DeltaX: dx, DeltaY: dy,
		})
	}
}

// Release records a pointer going up at (x, y) and resolves the gesture:
// drag end, swipe, or tap, in that priority order.
func (g *Gestures) Release(pointerID int, x, y float64) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &g.pointers[pointerID]
	if !ps.down {
		return
	}
	down := *ps
	*ps = gesturePointer{}
	if down.ignored {
		return
	}

	if g.pinch.active && down.inPinch {
		g.endPinch()
		return
	}

	switch {
	case down.dragging:
		ev := DragEvent{
			PointerID: pointerID,
			X:         x, Y: y,
			StartX: down.startX, StartY: down.startY,
			DeltaX: x - down.startX, DeltaY: y - down.startY,
		}
		g.dragEnd.fire(ev)
		g.emit(GestureEvent{
			Kind: GestureDragEnd, PointerID: pointerID,
			X: x, Y: y, StartX: down.startX, StartY: down.startY,
			DeltaX: ev.DeltaX, DeltaY: ev.DeltaY,
		})

		// A fast drag can still qualify as a swipe.
		if dir, ok := g.swipeOf(down, x, y); ok {
			ev := SwipeEvent{
				PointerID: pointerID,
				StartX:    down.startX, StartY: down.startY,
				EndX: x, EndY: y,
				Direction: dir,
				Duration:  down.held,
			}
			g.swipes.fire(ev)
			g.emit(GestureEvent{
				Kind: GestureSwipe, PointerID: pointerID,
				X: x, Y: y, StartX: down.startX, StartY: down.startY,
				Direction: dir,
			})
		}

	case !down.longPressFired &&
		down.moved <= g.cfg.TapSlop &&
		down.held <= g.cfg.TapMaxDuration:
		ev := TapEvent{PointerID: pointerID, X: x, Y: y}
		g.taps.fire(ev)
		g.emit(GestureEvent{Kind: GestureTap, PointerID: pointerID, X: x, Y: y})
	}
}

// Tick advances press timers by dt seconds and fires pending long-presses.
func (g *Gestures) Tick(dt float64) {
	for i := range g.pointers {
		ps := &g.pointers[i]
		if !ps.down || ps.ignored {
			continue
		}
		ps.held += dt

		if ps.longPressFired || ps.dragging || ps.inPinch {
			continue
		}
		if ps.held >= g.cfg.LongPressDuration && ps.moved <= g.cfg.TapSlop {
			ps.longPressFired = true
			ev := TapEvent{PointerID: i, X: ps.lastX, Y: ps.lastY}
			g.longs.fire(ev)
			g.emit(GestureEvent{Kind: GestureLongPress, PointerID: i, X: ps.lastX, Y: ps.lastY})
		}
	}
}

// Reset drops all pointer and pinch state without firing anything. Use when
// the hosting component loses focus or tears down.
func (g *Gestures) Reset() {
	for i := range g.pointers {
		g.pointers[i] = gesturePointer{}
	}
	g.pinch = pinchState{}
}

// swipeOf reports whether a released pointer qualifies as a swipe.
func (g *Gestures) swipeOf(down gesturePointer, x, y float64) (SwipeDirection, bool) {
	if down.held > g.cfg.SwipeMaxDuration {
		return 0, false
	}
	dx := x - down.startX
	dy := y - down.startY
	if math.Hypot(dx, dy) < g.cfg.SwipeMinDistance {
		return 0, false
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return SwipeRight, true
		}
		return SwipeLeft, true
	}
	if dy > 0 {
		return SwipeDown, true
	}
	return SwipeUp, true
}

// --- Pinch tracking ---

// maybeBeginPinch starts pinch tracking when exactly two tracked pointers are down.
func (g *Gestures) maybeBeginPinch() {
	if g.pinch.active {
		return
	}
	first, second := -1, -1
	for i := range g.pointers {
		ps := &g.pointers[i]
		if !ps.down || ps.ignored {
			continue
		}
		if first < 0 {
			first = i
		} else if second < 0 {
			second = i
		} else {
			return // three or more pointers: leave pinch alone
		}
	}
	if second < 0 {
		return
	}

	p0 := &g.pointers[first]
	p1 := &g.pointers[second]
	dist, angle := pinchMetrics(p0, p1)
	if dist == 0 {
		return
	}

	g.pinch = pinchState{
		active:       true,
		pointer0:     first,
		pointer1:     second,
		initialDist:  dist,
		initialAngle: angle,
		prevDist:     dist,
		prevAngle:    angle,
	}
	p0.inPinch = true
	p1.inPinch = true
}

// updatePinch fires a pinch event from the current pointer positions.
func (g *Gestures) updatePinch() {
	p0 := &g.pointers[g.pinch.pointer0]
	p1 := &g.pointers[g.pinch.pointer1]
	dist, angle := pinchMetrics(p0, p1)
	if dist == 0 {
		return
	}

	scale := dist / g.pinch.initialDist
	scaleDelta := dist/g.pinch.prevDist - 1.0
	rotation := angle - g.pinch.initialAngle
	rotDelta := angle - g.pinch.prevAngle

	ev := PinchEvent{
		CenterX:    (p0.lastX + p1.lastX) / 2,
		CenterY:    (p0.lastY + p1.lastY) / 2,
		Scale:      scale,
		ScaleDelta: scaleDelta,
		Rotation:   rotation,
		RotDelta:   rotDelta,
	}
	g.pinch.prevDist = dist
	g.pinch.prevAngle = angle

	g.pinches.fire(ev)
	g.emit(GestureEvent{
		Kind:       GesturePinch,
		X:          ev.CenterX,
		Y:          ev.CenterY,
		Scale:      scale,
		ScaleDelta: scaleDelta,
		Rotation:   rotation,
		RotDelta:   rotDelta,
	})
}

// endPinch stops pinch tracking. The surviving pointer is reset so the tail
// of the pinch is not misread as a tap or drag.
func (g *Gestures) endPinch() {
	for _, i := range [2]int{g.pinch.pointer0, g.pinch.pointer1} {
		ps := &g.pointers[i]
		if ps.down {
			ps.inPinch = false
			ps.startX = ps.lastX
			ps.startY = ps.lastY
			ps.moved = 0
			ps.held = 0
			ps.longPressFired = true // suppress long-press after a pinch
		}
	}
	g.pinch = pinchState{}
}

// pinchMetrics returns the distance and angle between two pinch pointers.
func pinchMetrics(p0, p1 *gesturePointer) (dist, angle float64) {
	dx := p1.lastX - p0.lastX
	dy := p1.lastY - p0.lastY
	return math.Hypot(dx, dy), math.Atan2(dy, dx)
}

// emit forwards the unified event to the firehose sink, if installed.
func (g *Gestures) emit(ev GestureEvent) {
	if g.sink == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			reportPanic(rec)
		}
	}()
	g.sink(ev)
}
