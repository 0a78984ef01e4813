package sim

import (
	"sort"
	"time"
)

// Active reports whether something that lasts until the given sim time is still in effect.
func Active(now, until time.Duration) bool {
	return now < until
}

// Buffs maps a buff name to its absolute expiry on the sim clock.
type Buffs map[string]time.Duration

// Grant starts or refreshes a buff for d from now.
func (b Buffs) Grant(name string, now, d time.Duration) {
	b[name] = now + d
}

// Has reports whether the named buff is active at now.
func (b Buffs) Has(name string, now time.Duration) bool {
	until, ok := b[name]
	return ok && Active(now, until)
}

// Remaining returns how long the named buff still lasts.
func (b Buffs) Remaining(name string, now time.Duration) time.Duration {
	if !b.Has(name, now) {
		return 0
	}
	return b[name] - now
}

// Expire drops every buff that is no longer active.
func (b Buffs) Expire(now time.Duration) {
	for name, until := range b {
		if !Active(now, until) {
			delete(b, name)
		}
	}
}

// List returns the active buff names in sorted order.
func (b Buffs) List(now time.Duration) []string {
	names := make([]string, 0, len(b))
	for name, until := range b {
		if Active(now, until) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// PlayerStats holds the player's resource counters that are not entity fields.
type PlayerStats struct {
	Special         float64
	MaxSpecial      float64
	Buffs           Buffs
	LastFire        time.Duration
	Fired           bool
	InvincibleUntil time.Duration
}

// NewPlayerStats returns fresh stats for a new session.
func NewPlayerStats(maxSpecial float64) PlayerStats {
	return PlayerStats{
		MaxSpecial: maxSpecial,
		Buffs:      make(Buffs),
	}
}

// CanFire reports whether the cooldown since the last shot has elapsed.
func (p *PlayerStats) CanFire(now, cooldown time.Duration) bool {
	return !p.Fired || now-p.LastFire > cooldown
}

// MarkFired records a shot at now.
func (p *PlayerStats) MarkFired(now time.Duration) {
	p.LastFire = now
	p.Fired = true
}

// AddSpecial charges the special meter, capped at MaxSpecial.
func (p *PlayerStats) AddSpecial(n float64) {
	p.Special += n
	if p.Special > p.MaxSpecial {
		p.Special = p.MaxSpecial
	}
}

// SpecialReady reports whether the special meter is full.
func (p *PlayerStats) SpecialReady() bool {
	return p.MaxSpecial > 0 && p.Special >= p.MaxSpecial
}
