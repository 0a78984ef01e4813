package towerdefense

import (
	"errors"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// ErrWaveInProgress rejects a wave launch while the previous one is still spawning.
var ErrWaveInProgress = errors.New("wave already deploying")

// Spawning reports whether a wave is still releasing creeps.
func (g *Game) Spawning() bool {
	return g.spawning != 0
}

// StartWave launches the next wave. Creeps enter one per plan interval on the
// sim scheduler; the wave counter advances once the last one is out.
func (g *Game) StartWave() error {
	if !g.machine.Playing() {
		return nil
	}
	if g.Spawning() {
		return ErrWaveInProgress
	}

	wave := g.wave
	plan := g.planner.Plan(wave)
	health := g.difficulty.Health(plan.Health, g.resolver.Score, g.ticks)
	speed := g.difficulty.Speed(plan.Speed, g.resolver.Score, g.ticks)
	g.logf("Wave %d initiated.", wave)
	g.log.Info("wave started", "wave", wave, "count", plan.Count, "interval", plan.Interval, "health", health)

	if plan.Count <= 0 {
		g.wave++
		return nil
	}
	released := 0
	g.spawning = g.world.Sched.Every(plan.Interval, func() {
		g.spawnCreep(wave, health, speed)
		released++
		if released >= plan.Count {
			g.world.Sched.Cancel(g.spawning)
			g.spawning = 0
			g.wave++
		}
	})
	return nil
}

func (g *Game) spawnCreep(wave int, health, speed float64) {
	e := g.cfg.Enemy
	g.world.Spawn(&sim.Entity{
		Kind:      sim.KindEnemy,
		Owner:     sim.SideEnemy,
		Pos:       g.path.Start(),
		W:         e.Radius * 2,
		H:         e.Radius * 2,
		Health:    health,
		MaxHealth: health,
		Speed:     speed,
		Value:     e.Score,
		Wave:      wave,
		Color:     core.ColorBrightRed,
		Glyph:     '●',
	})
}

// updateEnemies walks every creep toward its next waypoint.
func (g *Game) updateEnemies(frames float64) {
	for _, e := range g.world.Enemies.All() {
		if !e.Active {
			continue
		}
		if e.Waypoint+1 >= len(g.path) {
			g.breach(e)
			continue
		}
		target := g.path[e.Waypoint+1]
		if e.Pos.Dist(target) < g.cfg.Enemy.ArriveDist {
			e.Waypoint++
			if e.Waypoint >= len(g.path)-1 {
				g.breach(e)
			}
			continue
		}
		e.Vel = target.Sub(e.Pos).Normalize().Scale(e.Speed)
		e.Pos, _ = stepToward(e.Pos, target, e.Speed*frames)
	}
}

// breach removes a creep that reached the end and costs a life.
// Once the last life is gone, further breaches in the same frame cost nothing.
func (g *Game) breach(e *sim.Entity) {
	e.Active = false
	if g.dying {
		return
	}
	g.lives = max(0, g.lives-1)
	g.logf("Breach! %d lives left.", g.lives)
	if g.lives == 0 {
		g.dying = true
	}
}

func (g *Game) onKill(e *sim.Entity, points int) {
	g.money += g.cfg.Enemy.Bounty
	g.emitter.Burst(e.Pos, 6, g.cfg.ParticleTTL, e.Color)
	g.log.Debug("creep destroyed", "wave", e.Wave, "points", points, "money", g.money)
}
