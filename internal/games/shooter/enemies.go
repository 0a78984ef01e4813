package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Movement patterns.
const (
	patternZigzag   = "zigzag"
	patternTrack    = "track"
	patternStraight = "straight"
)

// spawnEnemies asks the wave scheduler for this tick's spawn.
func (g *Game) spawnEnemies(now time.Duration) {
	wave := g.waves.Wave()
	active := g.world.Enemies.CountActive(func(e *sim.Entity) bool { return e.Wave == wave })
	d := g.waves.Tick(now, active)
	if d.WaveCleared {
		g.log.Info("wave cleared", "wave", d.Wave)
	}
	if d.Spawn {
		g.spawnEnemy(d.Type, d.Wave)
	}
}

func (g *Game) spawnEnemy(kind string, wave int) *sim.Entity {
	desc, ok := g.cfg.Enemies[kind]
	if !ok {
		g.log.Warn("unknown enemy type", "type", kind)
		return nil
	}
	w := g.world
	score := g.resolver.Score
	health := g.difficulty.Health(desc.Health, score, g.ticks)
	glyph := '▼'
	if desc.Glyph != "" {
		glyph = []rune(desc.Glyph)[0]
	}
	return w.Spawn(&sim.Entity{
		Kind:      sim.KindEnemy,
		Owner:     sim.SideEnemy,
		Pos:       core.V(w.RandRange(50, w.Width-50), -50),
		W:         desc.Size,
		H:         desc.Size,
		Health:    health,
		MaxHealth: health,
		Speed:     g.difficulty.Speed(desc.Speed, score, g.ticks),
		Value:     desc.Score,
		TypeKey:   kind,
		Wave:      wave,
		Phase:     w.Rand.Float64() * 1000,
		Color:     core.ParseColor(desc.Color),
		Glyph:     glyph,
	})
}

// updateEnemies sets each enemy's velocity from its pattern and fires aimed shots.
// Positions are integrated afterwards by World.Move.
func (g *Game) updateEnemies(dt time.Duration) {
	w := g.world
	elapsed := float64(dt) / float64(time.Millisecond)
	for _, e := range w.Enemies.All() {
		if !e.Active {
			continue
		}
		desc := g.cfg.Enemies[e.TypeKey]
		e.Phase += elapsed

		e.Vel = core.V(0, e.Speed)
		switch desc.Pattern {
		case patternZigzag:
			e.Vel.X = math.Sin(e.Phase*0.005) * 3
		case patternTrack:
			if p := w.Player; p != nil {
				e.Vel.X = sign(p.Pos.X-e.Pos.X) * 0.5
			}
		}

		if desc.FireRateMS > 0 {
			e.Timer -= elapsed
			if e.Timer <= 0 {
				g.enemyShoot(e)
				e.Timer = float64(desc.FireRateMS)
			}
		}

		if w.Rand.Float64() > 0.7 {
			g.emitter.Trail(core.V(e.Pos.X, e.Pos.Y-e.H/2), e.Color)
		}
	}
}

// enemyShoot fires a bullet aimed at the player's current position.
func (g *Game) enemyShoot(e *sim.Entity) {
	p := g.world.Player
	if p == nil || !p.Active {
		return
	}
	dir := p.Pos.Sub(e.Pos).Normalize()
	if dir == (core.Vec{}) {
		return
	}
	g.world.Spawn(&sim.Entity{
		Kind:   sim.KindProjectile,
		Owner:  sim.SideEnemy,
		Pos:    core.V(e.Pos.X, e.Pos.Y+e.H/2),
		Vel:    dir.Scale(g.cfg.Bullets.EnemySpeed),
		W:      10,
		H:      15,
		Damage: g.cfg.Bullets.EnemyDamage,
		Color:  core.ColorBrightRed,
		Glyph:  '•',
	})
}

// collide resolves every pair in a fixed order: player shots, enemy shots,
// rams, then pickups. Later phases skip anything an earlier one destroyed.
func (g *Game) collide() {
	w := g.world
	sim.ScanPairs(w.Projectiles.All(), w.Enemies.All(), func(b, e *sim.Entity) {
		if b.Owner == sim.SidePlayer {
			g.resolver.Hit(b, e)
		}
	})

	p := w.Player
	if p == nil || !p.Active {
		return
	}
	sim.ScanOne(p, w.Projectiles.All(), func(b *sim.Entity) {
		if b.Owner != sim.SideEnemy {
			return
		}
		b.Active = false
		g.resolver.DamagePlayer(b.Damage)
	})
	sim.ScanOne(p, w.Enemies.All(), func(e *sim.Entity) {
		g.resolver.DamagePlayer(g.cfg.Contact.Player)
		g.resolver.Damage(e, g.cfg.Contact.Enemy)
	})
	sim.ScanOne(p, w.PowerUps.All(), func(pu *sim.Entity) {
		pu.Active = false
		g.grant(pu.TypeKey)
		g.emitter.Emit(pu.Pos, 20, sim.EmitOptions{Color: pu.Color, Spread: 15, Decay: 0.03})
		g.log.Debug("power-up collected", "type", pu.TypeKey)
	})
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
