package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Visual characters for rendering
const (
	groundChar = '═'
	floorChar  = '░'
	legLeft    = '╱'
	legRight   = '╲'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w := g.world
	g.draw.Reset()
	g.dust.queue(&g.draw)

	state := g.machine.State()
	if state != sim.StateMenu {
		g.draw.AddCollection(sim.LayerEntities, &w.Obstacles)
		g.queueRunner()
		g.draw.AddCollection(sim.LayerParticles, &w.Particles)
	}
	g.draw.Paint(dst, g.vp)
	g.drawGround(dst)

	if w.Shake > 0.5 {
		amp := w.Shake / 4
		dst.Shift(int(math.Round((g.fx.Float64()-0.5)*amp)), 0)
	}

	g.drawHUD(dst)

	switch state {
	case sim.StateMenu:
		dst.DrawMessageBox("NEON RUNNER", core.ColorBrightCyan,
			fmt.Sprintf("High score: %s", core.FormatNumber(g.highScore)),
			"",
			"SPACE/UP/click jump",
			"P pause   B menu   Q quit",
			"",
			"Press ENTER to start")
	case sim.StatePaused:
		dst.DrawMessageBox("PAUSED", core.ColorBrightYellow, "P resume   B menu")
	case sim.StateGameOver:
		lines := []string{
			fmt.Sprintf("Score: %s", core.FormatNumber(g.score)),
			fmt.Sprintf("Obstacles cleared: %d", g.summary.Kills),
		}
		if g.newHigh {
			lines = append(lines, "", "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "R restart   B menu   Q quit")
		dst.DrawMessageBox("GAME OVER", core.ColorBrightRed, lines...)
	}
}

// queueRunner adds the body, an eye and legs that cycle while grounded.
func (g *Game) queueRunner() {
	p := g.world.Player
	if p == nil || !p.Active {
		return
	}
	g.draw.AddEntity(sim.LayerEntities, p)
	eye := p.Pos.Add(core.V(p.W/4, -p.H/4))
	g.draw.Add(sim.Drawable{Layer: sim.LayerHUD, Pos: eye, Glyph: '▪', Color: core.ColorBrightWhite, Health: -1})

	feet := p.Pos.Add(core.V(0, p.H/2))
	legs := string([]rune{legLeft, legRight})
	if g.grounded && g.legFrame >= 5 {
		legs = string([]rune{legRight, legLeft})
	}
	g.draw.AddText(sim.LayerHUD, feet.Sub(core.V(p.W/4, 0)), legs, core.ColorCyan)
}

func (g *Game) drawGround(dst *core.Screen) {
	_, y := g.vp.ToScreen(core.V(0, g.floor()))
	if y >= g.vp.Y+g.vp.H {
		y = g.vp.Y + g.vp.H - 1
	}
	for x := g.vp.X; x < g.vp.X+g.vp.W; x++ {
		dst.SetColor(x, y, groundChar, core.ColorBrightGreen)
		for fy := y + 1; fy < g.vp.Y+g.vp.H; fy++ {
			dst.SetColor(x, fy, floorChar, core.ColorDarkGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, "SCORE "+core.FormatNumber(g.score), core.ColorBrightCyan)
	hi := "HI " + core.FormatNumber(max(g.highScore, g.score))
	dst.DrawTextColor(16, 0, hi, core.ColorBrightYellow)

	spd := fmt.Sprintf("SPD %.1f", g.Speed())
	dst.DrawTextColor(dst.Width()-len(spd)-1, 0, spd, core.ColorBrightMagenta)
}
