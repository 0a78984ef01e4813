package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// World owns every entity collection of one session, the sim clock and the RNG.
// Systems receive the World explicitly; there is no package-level game state.
type World struct {
	Width  float64
	Height float64

	Player *Entity
	Stats  PlayerStats

	Enemies     Collection
	Projectiles Collection
	PowerUps    Collection
	Particles   Collection
	Towers      Collection
	Obstacles   Collection

	Sched *Scheduler
	Rand  *rand.Rand

	// Shake and Flash are decaying screen effects.
	Shake float64
	Flash float64

	nextID ID
}

// NewWorld creates an empty world of the given size in world units.
func NewWorld(width, height float64, seed int64) *World {
	return &World{
		Width:  width,
		Height: height,
		Sched:  NewScheduler(),
		Rand:   rand.New(rand.NewSource(seed)),
		Stats:  NewPlayerStats(0),
	}
}

// Now returns the sim clock.
func (w *World) Now() time.Duration {
	return w.Sched.Now()
}

// Reset clears every collection, cancels scheduled callbacks and rewinds the clock.
// The RNG keeps its stream so consecutive sessions differ.
func (w *World) Reset() {
	for _, c := range w.collections() {
		c.Clear()
	}
	w.Player = nil
	w.Stats = NewPlayerStats(w.Stats.MaxSpecial)
	w.Sched.Reset()
	w.Shake = 0
	w.Flash = 0
}

func (w *World) collections() []*Collection {
	return []*Collection{&w.Enemies, &w.Projectiles, &w.PowerUps, &w.Particles, &w.Towers, &w.Obstacles}
}

func (w *World) collectionFor(k Kind) *Collection {
	switch k {
	case KindEnemy:
		return &w.Enemies
	case KindProjectile:
		return &w.Projectiles
	case KindPowerUp:
		return &w.PowerUps
	case KindParticle:
		return &w.Particles
	case KindTower:
		return &w.Towers
	case KindObstacle:
		return &w.Obstacles
	default:
		return nil
	}
}

// Spawn assigns an ID, marks the entity active and stores it in its collection.
// A KindPlayer entity replaces the current player.
func (w *World) Spawn(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	e.Active = true
	if e.Caps == 0 {
		e.Caps = DefaultCaps(e.Kind)
	}
	if e.Kind == KindPlayer {
		w.Player = e
		return e
	}
	if c := w.collectionFor(e.Kind); c != nil {
		c.Add(e)
	}
	return e
}

// Lookup resolves an entity ID to the active entity, or nil.
func (w *World) Lookup(id ID) *Entity {
	if id == 0 {
		return nil
	}
	if w.Player != nil && w.Player.ID == id && w.Player.Active {
		return w.Player
	}
	for _, c := range w.collections() {
		if e := c.Find(id); e != nil {
			return e
		}
	}
	return nil
}

// Compact removes every inactive entity. Call it once per tick after all scans.
func (w *World) Compact() int {
	n := 0
	for _, c := range w.collections() {
		n += c.Compact()
	}
	return n
}

// Move advances all movable entities except particles, which the Emitter owns.
func (w *World) Move(frames float64) {
	for _, c := range []*Collection{&w.Enemies, &w.Projectiles, &w.PowerUps, &w.Obstacles} {
		for _, e := range c.All() {
			if e.Active {
				e.Move(frames)
			}
		}
	}
}

// Outside reports whether e has left the world by more than margin.
func (w *World) Outside(e *Entity, margin float64) bool {
	return e.Pos.X < -margin || e.Pos.X > w.Width+margin ||
		e.Pos.Y < -margin || e.Pos.Y > w.Height+margin
}

// CullOutside deactivates entities of c that left the world by more than margin.
func (w *World) CullOutside(c *Collection, margin float64) {
	for _, e := range c.All() {
		if e.Active && w.Outside(e, margin) {
			e.Active = false
		}
	}
}

// DecayEffects shrinks screen shake geometrically and fades the flash.
func (w *World) DecayEffects(frames float64) {
	if w.Shake > 0 {
		w.Shake *= math.Pow(0.9, frames)
		if w.Shake < 0.05 {
			w.Shake = 0
		}
	}
	if w.Flash > 0 {
		w.Flash -= 0.05 * frames
		if w.Flash < 0 {
			w.Flash = 0
		}
	}
}

// RandRange returns a float in [lo, hi).
func (w *World) RandRange(lo, hi float64) float64 {
	return lo + w.Rand.Float64()*(hi-lo)
}

// Center returns the middle of the world.
func (w *World) Center() core.Vec {
	return core.V(w.Width/2, w.Height/2)
}
