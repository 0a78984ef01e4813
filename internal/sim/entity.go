// Package sim is the shared arcade simulation loop: entities, collision,
// particles, wave pacing, combat, the game state machine and the frame driver.
// Games own a World and drive it once per frame; nothing here touches the terminal
// except the draw list, which paints onto a core.Screen.
package sim

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// FrameRate is the reference rate that per-frame constants (speeds, decay) are tuned for.
const FrameRate = 60

// Frames converts a time step into reference frames.
func Frames(dt time.Duration) float64 {
	return dt.Seconds() * FrameRate
}

// Kind discriminates the entity variants sharing the Entity struct.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindProjectile
	KindPowerUp
	KindParticle
	KindTower
	KindObstacle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindPowerUp:
		return "powerup"
	case KindParticle:
		return "particle"
	case KindTower:
		return "tower"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Caps is the capability set of an entity.
type Caps uint8

const (
	CapMovable Caps = 1 << iota
	CapDamageable
	CapCollidable
	CapDrawable
)

// DefaultCaps returns the capability set an entity of the given kind starts with.
func DefaultCaps(k Kind) Caps {
	switch k {
	case KindPlayer, KindEnemy:
		return CapMovable | CapDamageable | CapCollidable | CapDrawable
	case KindProjectile, KindPowerUp, KindObstacle:
		return CapMovable | CapCollidable | CapDrawable
	case KindParticle:
		return CapMovable | CapDrawable
	case KindTower:
		return CapDrawable
	default:
		return CapDrawable
	}
}

// Side tells which team fired a projectile or owns an entity.
type Side uint8

const (
	SideNeutral Side = iota
	SidePlayer
	SideEnemy
)

// ID identifies an entity within a World. Zero is never assigned.
type ID uint64

// Entity is the single tagged-variant shape for everything in a World.
// Position is the center; W and H give the bounding box.
// Fields a kind does not use stay zero.
type Entity struct {
	ID    ID
	Kind  Kind
	Caps  Caps
	Owner Side

	Pos core.Vec
	Vel core.Vec
	W   float64
	H   float64

	Health    float64
	MaxHealth float64
	Damage    float64
	Active    bool
	Piercing  bool

	Color core.Color
	Glyph rune

	// TypeKey looks up the static descriptor (enemy type, tower type, power-up type).
	TypeKey string
	Value   int // score or bounty awarded on kill
	Speed   float64

	// Particles
	Life     float64
	Decay    float64
	Gravity  float64
	Friction float64

	// Per-instance behaviour state
	Timer    float64
	Phase    float64
	LastFire time.Duration
	Level    int
	Wave     int
	Waypoint int
	Target   ID

	// Towers
	Range    float64
	Cooldown float64
	Cost     int
}

// Has reports whether the entity carries every capability in c.
func (e *Entity) Has(c Caps) bool {
	return e.Caps&c == c
}

// Bounds is an axis-aligned box in world units.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Bounds returns the entity's AABB built from its center and half-extents.
func (e *Entity) Bounds() Bounds {
	hw, hh := e.W/2, e.H/2
	return Bounds{
		Left:   e.Pos.X - hw,
		Right:  e.Pos.X + hw,
		Top:    e.Pos.Y - hh,
		Bottom: e.Pos.Y + hh,
	}
}

// Move advances a movable entity by its velocity over the given reference frames.
func (e *Entity) Move(frames float64) {
	if !e.Has(CapMovable) {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(frames))
}

// HealthRatio returns health as a fraction of max, or -1 for entities without health.
func (e *Entity) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return -1
	}
	return core.Clamp(e.Health/e.MaxHealth, 0, 1)
}

// Heal restores health up to MaxHealth.
func (e *Entity) Heal(amount float64) {
	e.Health = core.Clamp(e.Health+amount, 0, e.MaxHealth)
}

// Collection owns the entities of one category. Entities are only removed by Compact.
type Collection struct {
	items []*Entity
}

// Add appends an entity.
func (c *Collection) Add(e *Entity) {
	c.items = append(c.items, e)
}

// All returns the backing slice. Callers must not append to it.
func (c *Collection) All() []*Entity {
	return c.items
}

// Len returns the number of entities including those marked inactive this tick.
func (c *Collection) Len() int {
	return len(c.items)
}

// CountActive returns the number of active entities matching keep (or all when keep is nil).
func (c *Collection) CountActive(keep func(*Entity) bool) int {
	n := 0
	for _, e := range c.items {
		if e.Active && (keep == nil || keep(e)) {
			n++
		}
	}
	return n
}

// Find returns the active entity with the given ID, or nil.
func (c *Collection) Find(id ID) *Entity {
	for _, e := range c.items {
		if e.ID == id && e.Active {
			return e
		}
	}
	return nil
}

// Compact drops inactive entities in place and returns how many were removed.
func (c *Collection) Compact() int {
	kept := c.items[:0]
	for _, e := range c.items {
		if e.Active {
			kept = append(kept, e)
		}
	}
	removed := len(c.items) - len(kept)
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = nil
	}
	c.items = kept
	return removed
}

// Clear removes every entity.
func (c *Collection) Clear() {
	for i := range c.items {
		c.items[i] = nil
	}
	c.items = c.items[:0]
}
