package shooter

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Buff names granted by power-ups. Shield shares its name with the resolver's check.
const (
	buffRapidFire = "rapidfire"
	buffMultishot = "multishot"
	buffShield    = sim.BuffShield
	powerUpNuke   = "nuke"
)

func (g *Game) spawnPlayer() {
	c := g.cfg.Player
	g.world.Spawn(&sim.Entity{
		Kind:      sim.KindPlayer,
		Pos:       core.V(g.world.Width/2, g.world.Height-100),
		W:         c.Size,
		H:         c.Size,
		Health:    c.MaxHealth,
		MaxHealth: c.MaxHealth,
		Color:     core.ColorBrightCyan,
		Glyph:     '▲',
	})
}

// fireCooldown is the time between shots, shortened while rapid fire is active.
func (g *Game) fireCooldown(now time.Duration) time.Duration {
	cd := ms(g.cfg.Player.FireRateMS)
	if g.world.Stats.Buffs.Has(buffRapidFire, now) && g.cfg.Player.RapidDivisor > 0 {
		cd = time.Duration(float64(cd) / g.cfg.Player.RapidDivisor)
	}
	return cd
}

func (g *Game) updatePlayer(frames float64, now time.Duration) {
	w := g.world
	p := w.Player
	if p == nil || !p.Active {
		return
	}

	var dir core.Vec
	if g.in.IsHeld(core.ActionLeft) {
		dir.X--
	}
	if g.in.IsHeld(core.ActionRight) {
		dir.X++
	}
	if g.in.IsHeld(core.ActionUp) {
		dir.Y--
	}
	if g.in.IsHeld(core.ActionDown) {
		dir.Y++
	}
	p.Pos = p.Pos.Add(dir.Scale(g.cfg.Player.Speed * frames))
	p.Pos.X = core.Clamp(p.Pos.X, p.W/2, w.Width-p.W/2)
	p.Pos.Y = core.Clamp(p.Pos.Y, p.H/2, w.Height-p.H/2)

	st := &w.Stats
	if g.in.IsHeld(core.ActionFire) && st.CanFire(now, g.fireCooldown(now)) {
		g.shoot(now)
		st.MarkFired(now)
	}
	if g.in.IsHeld(core.ActionSpecial) && st.SpecialReady() {
		g.specialAttack()
	}

	if w.Rand.Float64() > 0.5 {
		g.emitter.Trail(core.V(p.Pos.X+(w.Rand.Float64()-0.5)*10, p.Pos.Y+p.H/2), core.ColorCyan)
	}
}

// shoot fires one bullet straight up, or a fan of three under multishot.
func (g *Game) shoot(now time.Duration) {
	p := g.world.Player
	origin := core.V(p.Pos.X, p.Pos.Y-p.H/2)
	g.playerBullet(origin, 0)
	if g.world.Stats.Buffs.Has(buffMultishot, now) {
		off := g.cfg.Player.MultishotOffset
		g.playerBullet(core.V(origin.X-off, origin.Y), -1)
		g.playerBullet(core.V(origin.X+off, origin.Y), 1)
	}
}

func (g *Game) playerBullet(pos core.Vec, vx float64) {
	g.world.Spawn(&sim.Entity{
		Kind:   sim.KindProjectile,
		Owner:  sim.SidePlayer,
		Pos:    pos,
		Vel:    core.V(vx, -g.cfg.Bullets.Speed),
		W:      8,
		H:      20,
		Damage: g.cfg.Bullets.Damage,
		Color:  core.ColorBrightCyan,
		Glyph:  '|',
	})
}

// specialAttack spends the full meter to hit every enemy on screen.
func (g *Game) specialAttack() {
	w := g.world
	w.Stats.Special = 0
	for _, e := range w.Enemies.All() {
		if !e.Active {
			continue
		}
		g.emitter.Explosion(e.Pos, core.ColorBrightCyan, 15)
		g.resolver.Damage(e, g.cfg.Player.SpecialDamage)
	}
	w.Flash = 1
	g.log.Debug("special attack")
}

// grant applies a collected power-up.
func (g *Game) grant(kind string) {
	w := g.world
	if kind == powerUpNuke {
		w.Stats.Special = w.Stats.MaxSpecial
		return
	}
	w.Stats.Buffs.Grant(kind, w.Now(), ms(g.cfg.PowerUps.DurationMS))
}
