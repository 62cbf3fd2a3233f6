package prism

import "math"

// EaseFunc remaps normalized time t in [0, 1] to eased progress in [0, 1].
// Every built-in easing satisfies f(0) = 0 and f(1) = 1. Functions must be
// pure: no state, no side effects, so they are safe to share across any
// number of tweens.
type EaseFunc func(t float64) float64

// Built-in easing names accepted by TweenConfig.Ease and LookupEase.
const (
	EaseLinear      = "linear"
	EaseInQuad      = "easeInQuad"
	EaseOutQuad     = "easeOutQuad"
	EaseInOutQuad   = "easeInOutQuad"
	EaseInCubic     = "easeInCubic"
	EaseOutCubic    = "easeOutCubic"
	EaseInOutCubic  = "easeInOutCubic"
	EaseInExpo      = "easeInExpo"
	EaseOutExpo     = "easeOutExpo"
	EaseInOutExpo   = "easeInOutExpo"
	EaseInSine      = "easeInSine"
	EaseOutSine     = "easeOutSine"
	EaseInOutSine   = "easeInOutSine"
	EaseInBack      = "easeInBack"
	EaseOutBack     = "easeOutBack"
	EaseInElastic   = "easeInElastic"
	EaseOutElastic  = "easeOutElastic"
	EaseInBounce    = "easeInBounce"
	EaseOutBounce   = "easeOutBounce"
	EaseInOutBounce = "easeInOutBounce"
)

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

func inQuad(t float64) float64  { return t * t }
func outQuad(t float64) float64 { return t * (2 - t) }
func inOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func inCubic(t float64) float64 { return t * t * t }
func outCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}
func inOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}

func inExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}
func outExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
func inOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return 1 - math.Pow(2, -20*t+10)/2
	}
}

func inSine(t float64) float64    { return 1 - math.Cos(t*math.Pi/2) }
func outSine(t float64) float64   { return math.Sin(t * math.Pi / 2) }
func inOutSine(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

const backOvershoot = 1.70158

func inBack(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}
func outBack(t float64) float64 {
	u := t - 1
	return u*u*((backOvershoot+1)*u+backOvershoot) + 1
}

func inElastic(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*(2*math.Pi)/3)
}
func outElastic(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi)/3) + 1
}

func outBounce(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
func inBounce(t float64) float64 { return 1 - outBounce(1-t) }
func inOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - outBounce(1-2*t)) / 2
	}
	return (1 + outBounce(2*t-1)) / 2
}

// eases is the name → function catalog. Mutated only by RegisterEase, which
// must be called before any Runner starts ticking (init time, in practice).
var eases = map[string]EaseFunc{
	EaseLinear:      Linear,
	EaseInQuad:      inQuad,
	EaseOutQuad:     outQuad,
	EaseInOutQuad:   inOutQuad,
	EaseInCubic:     inCubic,
	EaseOutCubic:    outCubic,
	EaseInOutCubic:  inOutCubic,
	EaseInExpo:      inExpo,
	EaseOutExpo:     outExpo,
	EaseInOutExpo:   inOutExpo,
	EaseInSine:      inSine,
	EaseOutSine:     outSine,
	EaseInOutSine:   inOutSine,
	EaseInBack:      inBack,
	EaseOutBack:     outBack,
	EaseInElastic:   inElastic,
	EaseOutElastic:  outElastic,
	EaseInBounce:    inBounce,
	EaseOutBounce:   outBounce,
	EaseInOutBounce: inOutBounce,
}

// LookupEase returns the easing function registered under name.
// The empty name resolves to linear. ok is false for unknown names.
func LookupEase(name string) (fn EaseFunc, ok bool) {
	if name == "" {
		return Linear, true
	}
	fn, ok = eases[name]
	return fn, ok
}

// RegisterEase adds (or replaces) a named easing function. Custom easings
// should satisfy f(0) = 0 and f(1) = 1 so repeat and yoyo boundaries land on
// the exact start and end values. Register before starting tweens that
// reference the name; the catalog is not synchronized.
func RegisterEase(name string, fn EaseFunc) {
	if name == "" || fn == nil {
		return
	}
	eases[name] = fn
}
