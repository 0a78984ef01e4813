package sim

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// DefaultMaxParticles caps live particles so large explosions stay cheap to draw.
const DefaultMaxParticles = 600

// EmitOptions shape a random spray of particles.
type EmitOptions struct {
	Spread   float64 // velocity range per axis, centered on zero
	Color    core.Color
	Decay    float64 // life lost per frame, life starts at 1
	Gravity  float64
	Friction float64
}

// Emitter creates and ages decorative particles in a World.
type Emitter struct {
	World *World
	Max   int
}

// NewEmitter returns an emitter bound to w.
func NewEmitter(w *World) *Emitter {
	return &Emitter{World: w, Max: DefaultMaxParticles}
}

func (em *Emitter) room() bool {
	return em.Max <= 0 || em.World.Particles.Len() < em.Max
}

func (em *Emitter) spawn(pos, vel core.Vec, life, decay float64, color core.Color, friction, gravity float64) {
	if !em.room() {
		return
	}
	em.World.Spawn(&Entity{
		Kind:     KindParticle,
		Pos:      pos,
		Vel:      vel,
		Life:     life,
		Decay:    decay,
		Color:    color,
		Friction: friction,
		Gravity:  gravity,
	})
}

// Emit sprays count particles from pos with random velocities.
func (em *Emitter) Emit(pos core.Vec, count int, opts EmitOptions) {
	spread := opts.Spread
	if spread == 0 {
		spread = 10
	}
	decay := opts.Decay
	if decay == 0 {
		decay = 0.02
	}
	friction := opts.Friction
	if friction == 0 {
		friction = 0.02
	}
	r := em.World.Rand
	for i := 0; i < count; i++ {
		vel := core.V((r.Float64()-0.5)*spread, (r.Float64()-0.5)*spread)
		em.spawn(pos, vel, 1, decay, opts.Color, friction, opts.Gravity)
	}
}

// Explosion emits an evenly spaced ring of count particles plus a white core.
func (em *Emitter) Explosion(pos core.Vec, color core.Color, count int) {
	r := em.World.Rand
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := 3 + r.Float64()*5
		vel := core.V(math.Cos(angle)*speed, math.Sin(angle)*speed)
		em.spawn(pos, vel, 1, 0.015+r.Float64()*0.02, color, 0.02, 0)
	}
	for i := 0; i < 10; i++ {
		vel := core.V((r.Float64()-0.5)*8, (r.Float64()-0.5)*8)
		em.spawn(pos, vel, 1, 0.04, core.ColorBrightWhite, 0.02, 0)
	}
}

// Trail leaves a single short-lived particle drifting backwards along +Y.
func (em *Emitter) Trail(pos core.Vec, color core.Color) {
	r := em.World.Rand
	vel := core.V((r.Float64()-0.5)*2, 3+r.Float64()*2)
	em.spawn(pos, vel, 1, 0.05, color, 0.02, 0)
}

// Burst emits count particles that live for exactly ttl frames without drag.
func (em *Emitter) Burst(pos core.Vec, count int, ttl float64, color core.Color) {
	r := em.World.Rand
	for i := 0; i < count; i++ {
		vel := core.V((r.Float64()-0.5)*4, (r.Float64()-0.5)*4)
		em.spawn(pos, vel, ttl, 1, color, 0, 0)
	}
}

// Update moves and ages every particle; expired ones become inactive.
func (em *Emitter) Update(frames float64) {
	for _, p := range em.World.Particles.All() {
		if !p.Active {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(frames))
		p.Vel.Y += p.Gravity * frames
		if p.Friction > 0 {
			p.Vel = p.Vel.Scale(math.Pow(1-p.Friction, frames))
		}
		p.Life -= p.Decay * frames
		if p.Life <= 0 {
			p.Active = false
		}
	}
}

// Clear removes every particle.
func (em *Emitter) Clear() {
	em.World.Particles.Clear()
}

// ParticleGlyph picks a glyph that fades with remaining life in [0, 1].
func ParticleGlyph(life float64) rune {
	switch {
	case life > 0.66:
		return '*'
	case life > 0.33:
		return '+'
	default:
		return '.'
	}
}
