package prism

import "math"

// OrbitConfig sets up an OrbitCamera. Zero values select defaults.
type OrbitConfig struct {
	// Target is the world-space point the camera orbits and looks at.
	Target Vec3
	// Distance is the orbit radius. Default 10.
	Distance float64
	// MinDistance and MaxDistance clamp zooming. Defaults 1 and 100.
	MinDistance, MaxDistance float64
	// Yaw is the horizontal orbit angle in radians.
	Yaw float64
	// Pitch is the vertical orbit angle in radians, clamped to
	// [MinPitch, MaxPitch].
	Pitch float64
	// MinPitch and MaxPitch clamp the vertical angle. Defaults just shy of
	// ±π/2 to keep the camera off the poles.
	MinPitch, MaxPitch float64
	// FollowLerp smooths target tracking: the fraction of the remaining
	// distance covered per second. 0 disables smoothing (snap).
	FollowLerp float64
}

const defaultPitchLimit = math.Pi/2 - 0.01

func (c *OrbitConfig) applyDefaults() {
	if c.Distance <= 0 {
		c.Distance = 10
	}
	if c.MinDistance <= 0 {
		c.MinDistance = 1
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = 100
	}
	if c.MinPitch == 0 && c.MaxPitch == 0 {
		c.MinPitch = -defaultPitchLimit
		c.MaxPitch = defaultPitchLimit
	}
}

// OrbitCamera is a yaw/pitch/distance rig orbiting a target point, the shape
// used by touch-driven camera controls: drag deltas feed Rotate, pinch scale
// feeds Zoom, and animated moves go through GlideTo.
//
// The camera computes positions only; projecting them is the host's concern.
type OrbitCamera struct {
	cfg OrbitConfig

	target     Vec3 // smoothed target the rig currently orbits
	desired    Vec3 // target the rig is tracking toward
	yaw, pitch float64
	distance   float64

	glide Handle // live GlideTo tween, if any
}

// NewOrbitCamera creates a rig from cfg.
func NewOrbitCamera(cfg OrbitConfig) *OrbitCamera {
	cfg.applyDefaults()
	return &OrbitCamera{
		cfg:      cfg,
		target:   cfg.Target,
		desired:  cfg.Target,
		yaw:      cfg.Yaw,
		pitch:    clamp(cfg.Pitch, cfg.MinPitch, cfg.MaxPitch),
		distance: clamp(cfg.Distance, cfg.MinDistance, cfg.MaxDistance),
	}
}

// Rotate adjusts yaw and pitch by the given deltas in radians. Pitch is
// clamped to the configured range; yaw wraps freely.
func (c *OrbitCamera) Rotate(dYaw, dPitch float64) {
	c.yaw += dYaw
	c.pitch = clamp(c.pitch+dPitch, c.cfg.MinPitch, c.cfg.MaxPitch)
}

// Zoom scales the orbit distance by factor (e.g. a pinch event's Scale
// delta). Values below 1 move closer, above 1 move away. The distance is
// clamped to the configured range.
func (c *OrbitCamera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.distance = clamp(c.distance*factor, c.cfg.MinDistance, c.cfg.MaxDistance)
}

// SetTarget points the rig at a new world position. With FollowLerp set the
// rig eases toward it over subsequent Updates; otherwise it snaps.
func (c *OrbitCamera) SetTarget(target Vec3) {
	c.desired = target
	if c.cfg.FollowLerp <= 0 {
		c.target = target
	}
}

// GlideTo animates the orbit target to a new position over duration seconds
// using the Runner. A previous glide still in flight is cancelled first.
func (c *OrbitCamera) GlideTo(r *Runner, target Vec3, duration float64, ease string) error {
	r.Cancel(c.glide)
	handle, err := TweenVec3(r, c.desired, target, duration, ease, func(v Vec3) {
		c.desired = v
		if c.cfg.FollowLerp <= 0 {
			c.target = v
		}
	})
	if err != nil {
		return err
	}
	c.glide = handle
	return nil
}

// Update advances target smoothing by dt seconds. Call once per frame.
func (c *OrbitCamera) Update(dt float64) {
	if c.cfg.FollowLerp <= 0 {
		return
	}
	// Exponential approach, frame-rate independent.
	t := 1 - math.Exp(-c.cfg.FollowLerp*dt)
	c.target = c.target.Add(c.desired.Sub(c.target).Scale(t))
}

// Position returns the camera's world-space position for the current yaw,
// pitch, distance, and smoothed target.
func (c *OrbitCamera) Position() Vec3 {
	cp := math.Cos(c.pitch)
	return Vec3{
		X: c.target.X + c.distance*cp*math.Sin(c.yaw),
		Y: c.target.Y + c.distance*math.Sin(c.pitch),
		Z: c.target.Z + c.distance*cp*math.Cos(c.yaw),
	}
}

// LookDir returns the unit vector from the camera position toward the target.
func (c *OrbitCamera) LookDir() Vec3 {
	return c.target.Sub(c.Position()).Normalized()
}

// Target returns the point currently orbited (after smoothing).
func (c *OrbitCamera) Target() Vec3 { return c.target }

// Yaw returns the current horizontal orbit angle in radians.
func (c *OrbitCamera) Yaw() float64 { return c.yaw }

// Pitch returns the current vertical orbit angle in radians.
func (c *OrbitCamera) Pitch() float64 { return c.pitch }

// Distance returns the current orbit radius.
func (c *OrbitCamera) Distance() float64 { return c.distance }
