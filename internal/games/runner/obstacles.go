package runner

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// spawnObstacles rolls the per-frame spawn chance. A new obstacle only
// appears once the previous one has scrolled at least one gap in.
func (g *Game) spawnObstacles(frames float64) {
	o := g.cfg.Obstacles
	chance := 1 - math.Pow(1-o.SpawnChance, frames)
	if g.world.Rand.Float64() >= chance {
		return
	}
	if !g.gapClear() {
		return
	}
	g.spawnObstacle()
}

// gapClear reports whether the newest obstacle has moved far enough from the right edge.
func (g *Game) gapClear() bool {
	last := g.world.Obstacles.Find(g.last)
	if last == nil {
		return true
	}
	o := g.cfg.Obstacles
	gap := g.difficulty.Gap(o.MinGap, o.MaxWidth*3, g.score, g.ticks)
	left := last.Pos.X - last.W/2
	return g.world.Width-left > gap
}

func (g *Game) spawnObstacle() *sim.Entity {
	w := g.world
	o := g.cfg.Obstacles
	width := w.RandRange(o.MinWidth, o.MaxWidth)
	height := w.RandRange(o.MinHeight, o.MaxHeight)
	e := w.Spawn(&sim.Entity{
		Kind:  sim.KindObstacle,
		Owner: sim.SideNeutral,
		Pos:   core.V(w.Width+width/2, g.floor()-height/2),
		W:     width,
		H:     height,
		Value: o.PassScore,
		Color: core.ColorBrightMagenta,
		Glyph: '▓',
	})
	g.last = e.ID
	return e
}

// updateObstacles scrolls obstacles left, scores the ones the runner has
// cleared and ends the run on contact.
func (g *Game) updateObstacles(frames float64) {
	w := g.world
	p := w.Player
	speed := g.Speed()

	for _, e := range w.Obstacles.All() {
		if e.Active {
			e.Vel = core.V(-speed, 0)
		}
	}
	w.Move(frames)

	for _, e := range w.Obstacles.All() {
		if !e.Active {
			continue
		}
		if e.Pos.X+e.W/2 < 0 {
			e.Active = false
			continue
		}
		if p != nil && e.Value > 0 && p.Pos.X-p.W/2 > e.Pos.X+e.W/2 {
			g.pass(e)
		}
	}

	if p == nil || g.dying {
		return
	}
	sim.ScanOne(p, w.Obstacles.All(), func(*sim.Entity) {
		if g.dying {
			return
		}
		g.crash()
	})
}

// pass awards an obstacle's points once. Every SpeedEvery points the base speed steps up.
func (g *Game) pass(e *sim.Entity) {
	ph := g.cfg.Physics
	g.score += e.Value
	e.Value = 0
	g.passed++
	if ph.SpeedEvery > 0 && g.score%ph.SpeedEvery == 0 {
		g.speed += ph.SpeedStep
		g.log.Debug("speed up", "score", g.score, "speed", g.speed)
	}
}

func (g *Game) crash() {
	p := g.world.Player
	g.dying = true
	g.world.Shake = 8
	g.emitter.Explosion(p.Pos, p.Color, 40)
	p.Active = false
}
