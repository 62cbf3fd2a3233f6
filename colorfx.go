package prism

import "math"

// HSV builds a Color from hue (degrees, wraps freely), saturation and value
// in [0, 1], and alpha.
func HSV(h, s, v, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: a}
}

// HSV returns the hue (degrees in [0, 360)), saturation, and value of c.
func (c Color) HSV() (h, s, v float64) {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	d := max - min

	v = max
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}

	switch max {
	case c.R:
		h = math.Mod((c.G-c.B)/d, 6)
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// Flash pulses from base to peak and back `times` times, each full pulse
// taking period seconds. times <= 0 pulses until cancelled. apply receives
// the current color each tick; base is reapplied when the flash completes.
func Flash(r *Runner, base, peak Color, period float64, times int, apply func(Color)) (Handle, error) {
	repeat := RepeatForever
	if times > 0 {
		// Each pulse is two yoyo passes; the first pass is free.
		repeat = 2*times - 1
	}
	return r.Start(TweenConfig{
		Start:      []float64{base.R, base.G, base.B, base.A},
		End:        []float64{peak.R, peak.G, peak.B, peak.A},
		Duration:   period / 2,
		Ease:       EaseInOutQuad,
		Repeat:     repeat,
		Yoyo:       true,
		OnUpdate:   func(v []float64) { apply(Color{v[0], v[1], v[2], v[3]}) },
		OnComplete: func() { apply(base) },
	})
}

// CycleHue rotates the hue of base through a full circle every period
// seconds, forever, preserving its saturation, value, and alpha. Cancel the
// returned handle to stop.
func CycleHue(r *Runner, base Color, period float64, apply func(Color)) (Handle, error) {
	h0, s, v := base.HSV()
	return r.Start(TweenConfig{
		Start:    Float(0),
		End:      Float(360),
		Duration: period,
		Repeat:   RepeatForever,
		OnUpdate: func(val []float64) { apply(HSV(h0+val[0], s, v, base.A)) },
	})
}
