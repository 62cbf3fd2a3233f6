package prism

import (
	"math"
	"math/rand/v2"
)

// Particle is one live particle. Fields are updated in place by the emitter;
// hosts read them when drawing. The velocity and interpolation endpoints are
// internal.
type Particle struct {
	X, Y    float64
	Scale   float64
	Alpha   float64
	Color   Color
	Life    float64 // remaining lifetime in seconds
	MaxLife float64 // initial lifetime

	vx, vy     float64
	startScale float64
	endScale   float64
	startAlpha float64
	endAlpha   float64
	startColor Color
	endColor   Color
}

// EmitterConfig controls how particles are spawned and behave.
type EmitterConfig struct {
	// MaxParticles is the pool size. New particles are silently dropped when full.
	MaxParticles int
	// EmitRate is the number of particles spawned per second.
	EmitRate float64
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial particle speeds in units per second.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// StartScale is the range of scale factors at birth, interpolated to EndScale over lifetime.
	StartScale Range
	// EndScale is the range of scale factors at death.
	EndScale Range
	// StartAlpha is the range of alpha values at birth, interpolated to EndAlpha over lifetime.
	StartAlpha Range
	// EndAlpha is the range of alpha values at death.
	EndAlpha Range
	// Gravity is the constant acceleration applied to all particles each frame.
	Gravity Vec2
	// StartColor is the tint at birth, interpolated to EndColor over lifetime.
	StartColor Color
	// EndColor is the tint at death.
	EndColor Color
	// WorldSpace, when true, causes particles to keep their world position
	// once emitted rather than following the emitter.
	WorldSpace bool
}

// Emitter manages a pool of particles with CPU-based simulation. Rendering is
// the host's concern: call Update once per frame, then iterate Particles to
// draw whatever the host considers a particle.
type Emitter struct {
	config    EmitterConfig
	particles []Particle
	alive     int
	emitAccum float64
	active    bool
	// The emitter's position, set by the host so world-space particles can be
	// spawned at world coords.
	x, y float64
}

// NewEmitter creates an Emitter with a preallocated pool.
func NewEmitter(cfg EmitterConfig) *Emitter {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
	}
	return &Emitter{
		config:    cfg,
		particles: make([]Particle, max),
	}
}

// Start begins emitting particles.
func (e *Emitter) Start() {
	e.active = true
}

// Stop stops emitting new particles. Existing particles continue to live out.
func (e *Emitter) Stop() {
	e.active = false
}

// Reset stops emitting and kills all alive particles.
func (e *Emitter) Reset() {
	e.active = false
	e.alive = 0
	e.emitAccum = 0
}

// IsActive reports whether the emitter is currently emitting new particles.
func (e *Emitter) IsActive() bool {
	return e.active
}

// AliveCount returns the number of alive particles.
func (e *Emitter) AliveCount() int {
	return e.alive
}

// Particles returns the alive particles. Valid until the next Update; the
// returned slice MUST NOT be mutated or retained.
func (e *Emitter) Particles() []Particle {
	return e.particles[:e.alive]
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *EmitterConfig {
	return &e.config
}

// SetPosition moves the emitter. World-space particles spawned afterwards
// originate here; local-space particles always spawn at the origin and the
// host offsets them when drawing.
func (e *Emitter) SetPosition(x, y float64) {
	e.x = x
	e.y = y
}

// Burst spawns up to n particles immediately, regardless of EmitRate or
// whether the emitter is active. Spawns stop when the pool is full.
func (e *Emitter) Burst(n int) {
	for i := 0; i < n && e.alive < len(e.particles); i++ {
		e.spawnParticle()
	}
}

// Update advances particle simulation by dt seconds.
func (e *Emitter) Update(dt float64) {
	gx := e.config.Gravity.X * dt
	gy := e.config.Gravity.Y * dt

	// Update existing particles, swap-remove dead ones.
	i := 0
	for i < e.alive {
		p := &e.particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			// Swap with last alive particle.
			e.alive--
			e.particles[i] = e.particles[e.alive]
			continue
		}

		// Apply gravity.
		p.vx += gx
		p.vy += gy

		// Move.
		p.X += p.vx * dt
		p.Y += p.vy * dt

		// Interpolate properties.
		t := 1.0 - p.Life/p.MaxLife
		p.Scale = lerp(p.startScale, p.endScale, t)
		p.Alpha = lerp(p.startAlpha, p.endAlpha, t)
		p.Color = p.startColor.Lerp(p.endColor, t)

		i++
	}

	// Emit new particles.
	if e.active && e.config.EmitRate > 0 {
		e.emitAccum += e.config.EmitRate * dt
		for e.emitAccum >= 1.0 {
			e.emitAccum -= 1.0
			if e.alive < len(e.particles) {
				e.spawnParticle()
			}
		}
	}
}

// spawnParticle initializes the particle at slot e.alive and increments alive.
func (e *Emitter) spawnParticle() {
	p := &e.particles[e.alive]

	angle := e.config.Angle.Random()
	speed := e.config.Speed.Random()
	p.vx = math.Cos(angle) * speed
	p.vy = math.Sin(angle) * speed

	if e.config.WorldSpace {
		p.X = e.x
		p.Y = e.y
	} else {
		p.X = 0
		p.Y = 0
	}

	p.Life = e.config.Lifetime.Random()
	if p.Life <= 0 {
		p.Life = 1.0
	}
	p.MaxLife = p.Life

	p.startScale = e.config.StartScale.Random()
	p.endScale = e.config.EndScale.Random()
	p.Scale = p.startScale

	p.startAlpha = e.config.StartAlpha.Random()
	p.endAlpha = e.config.EndAlpha.Random()
	p.Alpha = p.startAlpha

	p.startColor = e.config.StartColor
	p.endColor = e.config.EndColor
	p.Color = p.startColor

	e.alive++
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}
