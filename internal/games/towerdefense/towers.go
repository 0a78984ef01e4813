package towerdefense

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Build command errors. Each is shown in the in-game log.
var (
	ErrInsufficientFunds = errors.New("insufficient credits")
	ErrOutOfBounds       = errors.New("placement blocked: outside the grid")
	ErrTooClose          = errors.New("placement blocked: too close to another tower")
	ErrOnPath            = errors.New("placement blocked: on the path")
	ErrNoSelection       = errors.New("no tower selected")
	ErrUnknownTower      = errors.New("unknown tower type")
)

// choose arms placement of tower type i and drops any inspection.
func (g *Game) choose(i int) {
	if i < 0 || i >= len(g.cfg.Towers) {
		return
	}
	g.selected = 0
	if g.placing == i {
		g.placing = -1
		return
	}
	g.placing = i
}

// Click selects a placed tower at pos, or places the armed tower type there.
// Clicking empty ground with nothing armed clears the selection.
func (g *Game) Click(pos core.Vec) {
	if t := g.towerAt(pos); t != nil {
		g.selected = t.ID
		g.placing = -1
		return
	}
	if g.placing < 0 {
		g.selected = 0
		return
	}
	if _, err := g.Place(g.placing, pos); err != nil {
		g.reject(err)
		return
	}
	g.placing = -1
}

func (g *Game) towerAt(pos core.Vec) *sim.Entity {
	for _, t := range g.world.Towers.All() {
		if t.Active && t.Pos.Dist(pos) < g.cfg.Placement.SelectRadius {
			return t
		}
	}
	return nil
}

// Place builds tower type i at pos. A rejected placement leaves money and towers unchanged.
func (g *Game) Place(i int, pos core.Vec) (*sim.Entity, error) {
	if i < 0 || i >= len(g.cfg.Towers) {
		return nil, ErrUnknownTower
	}
	tt := g.cfg.Towers[i]
	w := g.world

	if g.money < tt.Cost {
		return nil, ErrInsufficientFunds
	}
	if pos.X < 0 || pos.Y < 0 || pos.X > w.Width || pos.Y > w.Height {
		return nil, ErrOutOfBounds
	}
	if sim.AnyWithin(pos, g.cfg.Placement.MinSpacing, w.Towers.All()) {
		return nil, ErrTooClose
	}
	if g.path.Dist(pos) < g.cfg.Placement.PathClearance {
		return nil, ErrOnPath
	}

	g.money -= tt.Cost
	glyph := 'T'
	if tt.Glyph != "" {
		glyph = []rune(tt.Glyph)[0]
	}
	t := w.Spawn(&sim.Entity{
		Kind:     sim.KindTower,
		Pos:      pos,
		W:        30,
		H:        30,
		TypeKey:  tt.Name,
		Range:    tt.Range,
		Cooldown: tt.Cooldown,
		Damage:   tt.Damage,
		Cost:     tt.Cost,
		Level:    1,
		Color:    core.ParseColor(tt.Color),
		Glyph:    glyph,
	})
	g.logf("%s deployed.", tt.Name)
	return t, nil
}

// UpgradeCost is floor(invested × factor × level).
func (g *Game) UpgradeCost(t *sim.Entity) int {
	return int(math.Floor(float64(t.Cost) * g.cfg.Upgrade.CostFactor * float64(t.Level)))
}

// SellValue is floor(invested × refund).
func (g *Game) SellValue(t *sim.Entity) int {
	return int(math.Floor(float64(t.Cost) * g.cfg.Upgrade.SellRefund))
}

// Selected returns the tower under inspection, or nil.
func (g *Game) Selected() *sim.Entity {
	return g.world.Towers.Find(g.selected)
}

// Upgrade improves the selected tower if the player can pay for it.
func (g *Game) Upgrade() error {
	t := g.Selected()
	if t == nil {
		return ErrNoSelection
	}
	cost := g.UpgradeCost(t)
	if g.money < cost {
		return fmt.Errorf("%w for upgrade (%d CR)", ErrInsufficientFunds, cost)
	}
	g.money -= cost

	u := g.cfg.Upgrade
	t.Level++
	t.Cost += cost
	t.Damage = math.Floor(t.Damage * u.DamageMult)
	t.Range = math.Floor(t.Range * u.RangeMult)
	t.Cooldown = math.Max(u.MinCooldown, math.Floor(t.Cooldown*u.CooldownMult))

	g.emitter.Burst(t.Pos, 8, g.cfg.ParticleTTL, core.ColorBrightWhite)
	g.logf("%s upgraded to Lvl %d.", t.TypeKey, t.Level)
	return nil
}

// Sell removes the selected tower and refunds part of what was invested in it.
func (g *Game) Sell() (int, error) {
	t := g.Selected()
	if t == nil {
		return 0, ErrNoSelection
	}
	refund := g.SellValue(t)
	g.money += refund
	t.Active = false
	// A sold tower leaves the collection before the next frame runs.
	g.world.Towers.Compact()
	g.selected = 0
	g.logf("Sold tower for %d CR.", refund)
	return refund, nil
}

// updateTowers re-targets every tower each frame and fires when its cooldown has elapsed.
func (g *Game) updateTowers(frames float64) {
	w := g.world
	for _, t := range w.Towers.All() {
		if !t.Active {
			continue
		}
		t.Timer += frames
		target := sim.Nearest(t.Pos, t.Range, w.Enemies.All())
		if target == nil {
			t.Target = 0
			continue
		}
		t.Target = target.ID
		if t.Timer >= t.Cooldown {
			g.fire(t, target)
			t.Timer = 0
		}
	}
}

func (g *Game) fire(t, target *sim.Entity) {
	g.world.Spawn(&sim.Entity{
		Kind:   sim.KindProjectile,
		Owner:  sim.SidePlayer,
		Pos:    t.Pos,
		W:      8,
		H:      8,
		Damage: t.Damage,
		Speed:  g.cfg.Projectile.Speed,
		Target: target.ID,
		Color:  t.Color,
		Glyph:  '•',
	})
}

// updateProjectiles homes every shot on its target. A shot whose target is gone fizzles.
func (g *Game) updateProjectiles(frames float64) {
	w := g.world
	for _, p := range w.Projectiles.All() {
		if !p.Active {
			continue
		}
		target := w.Lookup(p.Target)
		if target == nil || target.Kind != sim.KindEnemy {
			p.Active = false
			continue
		}
		var arrived bool
		p.Pos, arrived = stepToward(p.Pos, target.Pos, p.Speed*frames)
		if arrived {
			g.resolver.Hit(p, target)
		}
	}
}

// reject reports a refused command in the log.
func (g *Game) reject(err error) {
	g.logf("%s.", capitalize(err.Error()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
