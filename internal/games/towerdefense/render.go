package towerdefense

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w := g.world
	g.draw.Reset()

	for _, p := range g.path.Samples(g.cellSize() / 2) {
		g.draw.Add(sim.Drawable{Layer: sim.LayerPath, Pos: p, Glyph: '░', Color: core.ColorDarkGray, Health: -1})
	}

	state := g.machine.State()
	if state != sim.StateMenu {
		if t := g.Selected(); t != nil {
			g.queueRing(t.Pos, t.Range, core.ColorGray)
		} else if g.placing >= 0 && state == sim.StatePlaying {
			g.queueRing(g.cursorWorld(), g.cfg.Towers[g.placing].Range, core.ColorDarkGray)
		}
		for _, t := range w.Towers.All() {
			if !t.Active {
				continue
			}
			g.draw.AddEntity(sim.LayerEntities, t)
			if t.Level > 1 {
				g.draw.AddText(sim.LayerHUD, t.Pos, fmt.Sprintf("%d", t.Level), core.ColorBrightWhite)
			}
		}
		g.draw.AddCollection(sim.LayerEntities, &w.Enemies)
		g.draw.AddCollection(sim.LayerEntities, &w.Projectiles)
		g.draw.AddCollection(sim.LayerParticles, &w.Particles)
	}
	g.draw.Paint(dst, g.vp)

	if state == sim.StatePlaying {
		g.drawCursor(dst)
	}
	g.drawHUD(dst)
	g.drawPanel(dst)

	switch state {
	case sim.StateMenu:
		dst.DrawMessageBox("NEON DEFENSE", core.ColorBrightCyan,
			fmt.Sprintf("High score: %s", core.FormatNumber(g.highScore)),
			"",
			"1-3 pick tower   SPACE/click place or select",
			"E next wave   U upgrade   DEL sell",
			"P pause   B menu   Q quit",
			"",
			"Press ENTER to start")
	case sim.StatePaused:
		dst.DrawMessageBox("PAUSED", core.ColorBrightYellow, "P resume   B menu")
	case sim.StateGameOver:
		g.drawGameOver(dst)
	}
}

// cellSize is the world width of one screen column.
func (g *Game) cellSize() float64 {
	if g.vp.W <= 0 {
		return g.cfg.World.Width
	}
	return g.cfg.World.Width / float64(g.vp.W)
}

// queueRing outlines a range circle with dots.
func (g *Game) queueRing(center core.Vec, radius float64, c core.Color) {
	steps := max(16, int(2*math.Pi*radius/g.cellSize()))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		p := center.Add(core.V(math.Cos(a)*radius, math.Sin(a)*radius))
		g.draw.Add(sim.Drawable{Layer: sim.LayerPath, Pos: p, Glyph: '·', Color: c, Health: -1})
	}
}

func (g *Game) drawCursor(dst *core.Screen) {
	x, y := g.vp.X+g.cursorX, g.vp.Y+g.cursorY
	glyph, color := '+', core.ColorBrightWhite
	if g.placing >= 0 {
		tt := g.cfg.Towers[g.placing]
		color = core.ParseColor(tt.Color)
		if tt.Glyph != "" {
			glyph = []rune(tt.Glyph)[0]
		}
		if g.money < tt.Cost {
			color = core.ColorRed
		}
	}
	dst.SetColor(x, y, glyph, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColor(x, 0, text, c)
		x += len([]rune(text)) + 2
	}
	put("CR "+core.FormatNumber(g.money), core.ColorBrightYellow)
	put(fmt.Sprintf("LIVES %d", g.lives), core.ColorBrightRed)
	put(fmt.Sprintf("WAVE %d", g.wave), core.ColorBrightGreen)
	put("SCORE "+core.FormatNumber(g.resolver.Score), core.ColorBrightCyan)
	if g.Spawning() {
		put("DEPLOYING", core.ColorOrange)
	}
}

// drawPanel shows the shop or the selected tower, then the newest log lines.
func (g *Game) drawPanel(dst *core.Screen) {
	top := g.vp.Y + g.vp.H
	dst.DrawHLine(0, top, dst.Width(), '─')

	if t := g.Selected(); t != nil {
		info := fmt.Sprintf("%s Lvl %d  DMG %.0f  RNG %.0f  [U] upgrade %d CR  [DEL] sell %d CR",
			t.TypeKey, t.Level, t.Damage, t.Range, g.UpgradeCost(t), g.SellValue(t))
		dst.DrawTextColor(1, top+1, info, t.Color)
	} else {
		x := 1
		for i, tt := range g.cfg.Towers {
			label := fmt.Sprintf("[%d] %s %d", i+1, tt.Name, tt.Cost)
			c := core.ParseColor(tt.Color)
			if i == g.placing {
				label = ">" + label + "<"
			}
			if g.money < tt.Cost {
				c = core.ColorDarkGray
			}
			dst.DrawTextColor(x, top+1, label, c)
			x += len([]rune(label)) + 2
		}
	}

	lines := panelRows - 2
	start := max(0, len(g.messages)-lines)
	for i, msg := range g.messages[start:] {
		dst.DrawTextColor(1, top+2+i, "> "+msg, core.ColorGreen)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	s := g.summary
	lines := []string{
		fmt.Sprintf("Score: %s", core.FormatNumber(g.resolver.Score)),
		fmt.Sprintf("Waves survived: %d", s.Wave),
		fmt.Sprintf("Creeps destroyed: %d", s.Kills),
	}
	if g.newHigh {
		lines = append(lines, "", "NEW HIGH SCORE!")
	}
	lines = append(lines, "", "R restart   B menu   Q quit")
	dst.DrawMessageBox("SYSTEM BREACHED", core.ColorBrightRed, lines...)
}
