package sim

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// BuffShield protects the player from all damage while active.
const BuffShield = "shield"

// Combo tracks successive kills inside a timeout window.
type Combo struct {
	Timeout time.Duration
	Count   int
	Best    int

	last time.Duration
	any  bool
}

// NewCombo returns a combo at x1.
func NewCombo(timeout time.Duration) *Combo {
	return &Combo{Timeout: timeout, Count: 1, Best: 1}
}

// Kill registers a kill at now and returns the multiplier to apply to it.
func (c *Combo) Kill(now time.Duration) int {
	if c.any && now-c.last < c.Timeout {
		c.Count++
		if c.Count > c.Best {
			c.Best = c.Count
		}
	} else {
		c.Count = 1
	}
	c.last = now
	c.any = true
	return c.Count
}

// Reset returns the combo to x1 and forgets the last kill.
func (c *Combo) Reset() {
	c.Count = 1
	c.Best = 1
	c.any = false
	c.last = 0
}

// Resolver applies damage and its consequences.
type Resolver struct {
	World   *World
	Emitter *Emitter
	Combo   *Combo // nil means every kill scores x1

	DropChance    float64
	Invincibility time.Duration
	HitShake      float64
	ExplosionSize int

	// OnKill runs after score is awarded for a destroyed entity.
	OnKill func(e *Entity, points int)
	// OnDrop runs when the drop roll succeeds.
	OnDrop func(pos core.Vec)
	// OnPlayerDeath runs exactly once per session when player health reaches zero.
	OnPlayerDeath func()

	Score int
	Kills int
	dead  bool
}

// Reset clears session counters.
func (r *Resolver) Reset() {
	r.Score = 0
	r.Kills = 0
	r.dead = false
	if r.Combo != nil {
		r.Combo.Reset()
	}
}

// Hit applies a projectile to a target. The projectile is spent unless it pierces.
// It reports whether the target was destroyed.
func (r *Resolver) Hit(proj, target *Entity) bool {
	if !proj.Active || !target.Active {
		return false
	}
	if !proj.Piercing {
		proj.Active = false
	}
	return r.Damage(target, proj.Damage)
}

// Damage lowers a damageable entity's health and destroys it at zero.
func (r *Resolver) Damage(target *Entity, amount float64) bool {
	if !target.Active || !target.Has(CapDamageable) {
		return false
	}
	target.Health -= amount
	if r.Emitter != nil {
		r.Emitter.Emit(target.Pos, 5, EmitOptions{Color: target.Color, Spread: 8, Decay: 0.05})
	}
	if target.Health > 0 {
		return false
	}
	r.destroy(target)
	return true
}

func (r *Resolver) destroy(e *Entity) {
	e.Active = false
	e.Health = 0

	mult := 1
	if r.Combo != nil {
		mult = r.Combo.Kill(r.World.Now())
	}
	points := e.Value * mult
	r.Score += points
	r.Kills++

	if r.Emitter != nil {
		size := r.ExplosionSize
		if size == 0 {
			size = 40
		}
		r.Emitter.Explosion(e.Pos, e.Color, size)
	}
	if r.OnKill != nil {
		r.OnKill(e, points)
	}
	if r.DropChance > 0 && r.OnDrop != nil && r.World.Rand.Float64() < r.DropChance {
		r.OnDrop(e.Pos)
	}
}

// Protected reports whether the player ignores damage right now.
func (r *Resolver) Protected() bool {
	now := r.World.Now()
	st := &r.World.Stats
	return Active(now, st.InvincibleUntil) || st.Buffs.Has(BuffShield, now)
}

// DamagePlayer hurts the player unless protected or already dead.
// Health is clamped at zero and the death hook runs once.
func (r *Resolver) DamagePlayer(amount float64) bool {
	p := r.World.Player
	if p == nil || r.dead || r.Protected() {
		return false
	}
	p.Health = core.Clamp(p.Health-amount, 0, p.MaxHealth)
	r.World.Stats.InvincibleUntil = r.World.Now() + r.Invincibility
	r.World.Shake = r.HitShake
	if r.Emitter != nil {
		r.Emitter.Emit(p.Pos, 20, EmitOptions{Color: core.ColorBrightRed, Spread: 15, Decay: 0.03})
	}
	if p.Health <= 0 {
		r.dead = true
		if r.OnPlayerDeath != nil {
			r.OnPlayerDeath()
		}
	}
	return true
}

// Dead reports whether the player died this session.
func (r *Resolver) Dead() bool {
	return r.dead
}
