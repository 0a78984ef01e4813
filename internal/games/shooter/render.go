package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w := g.world
	g.draw.Reset()
	g.stars.queue(&g.draw)

	state := g.machine.State()
	if state != sim.StateMenu {
		g.draw.AddCollection(sim.LayerEntities, &w.PowerUps)
		g.draw.AddCollection(sim.LayerEntities, &w.Projectiles)
		g.draw.AddCollection(sim.LayerEntities, &w.Enemies)
		g.queuePlayer()
		g.draw.AddCollection(sim.LayerParticles, &w.Particles)
	}
	g.draw.Paint(dst, g.vp)

	if w.Shake > 0.5 {
		amp := w.Shake / 5
		dst.Shift(int(math.Round((g.fx.Float64()-0.5)*amp)), int(math.Round((g.fx.Float64()-0.5)*amp/2)))
	}
	if w.Flash > 0.3 {
		g.tintPlayArea(dst, core.ColorBrightCyan)
	}

	g.drawHUD(dst)

	switch state {
	case sim.StateMenu:
		dst.DrawMessageBox("NEON FURY", core.ColorBrightMagenta,
			fmt.Sprintf("High score: %s", core.FormatNumber(g.highScore)),
			"",
			"WASD/Arrows move   SPACE fire   X special",
			"P pause   B menu   Q quit",
			"",
			"Press ENTER to start")
	case sim.StatePaused:
		dst.DrawMessageBox("PAUSED", core.ColorBrightYellow, "P resume   B menu")
	case sim.StateGameOver:
		g.drawGameOver(dst)
	default:
		if g.waves.State().Transition {
			dst.DrawTextCenteredColor(g.vp.Y+g.vp.H/3, fmt.Sprintf("WAVE %d COMPLETE", g.waves.Wave()), core.ColorBrightGreen)
		}
	}
}

// queuePlayer adds the ship, blinking while invincible and ringed while shielded.
func (g *Game) queuePlayer() {
	w := g.world
	p := w.Player
	if p == nil || !p.Active {
		return
	}
	now := w.Now()
	if w.Stats.Buffs.Has(buffShield, now) {
		g.draw.Add(sim.Drawable{
			Layer:  sim.LayerEntities,
			Pos:    p.Pos,
			W:      p.W * 1.6,
			H:      p.H * 1.6,
			Glyph:  '░',
			Color:  core.ColorCyan,
			Health: -1,
		})
	}
	if sim.Active(now, w.Stats.InvincibleUntil) && (now.Milliseconds()/100)%2 == 0 {
		return
	}
	g.draw.AddEntity(sim.LayerEntities, p)
}

func (g *Game) tintPlayArea(dst *core.Screen, c core.Color) {
	for y := g.vp.Y; y < g.vp.Y+g.vp.H; y++ {
		for x := g.vp.X; x < g.vp.X+g.vp.W; x++ {
			if dst.Get(x, y) != ' ' {
				dst.Tint(x, y, c)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	h := g.hud()
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColor(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put("SCORE "+core.FormatNumber(h.Score), core.ColorBrightCyan)
	put("HI "+core.FormatNumber(h.HighScore), core.ColorGray)
	put(fmt.Sprintf("WAVE %d", h.Wave), core.ColorBrightGreen)
	if h.Combo > 1 {
		put(fmt.Sprintf("x%d", h.Combo), core.ColorBrightYellow)
	}
	put("HP "+bar(h.Health, 10), healthColor(h.Health))

	st := g.world.Stats
	special := 0.0
	if st.MaxSpecial > 0 {
		special = st.Special / st.MaxSpecial
	}
	specialColor := core.ColorPurple
	if st.SpecialReady() {
		specialColor = core.ColorBrightMagenta
	}
	put("SP "+bar(special, 6), specialColor)

	for _, b := range h.Buffs {
		put("["+buffLabel(b)+"]", powerUpStyle[b].color)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	s := g.summary
	lines := []string{
		fmt.Sprintf("Score: %s", core.FormatNumber(g.resolver.Score)),
		fmt.Sprintf("Enemies destroyed: %d", s.Kills),
		fmt.Sprintf("Highest wave: %d", s.Wave),
		fmt.Sprintf("Best combo: x%d", s.BestCombo),
	}
	if g.newHigh {
		lines = append(lines, "", "NEW HIGH SCORE!")
	}
	lines = append(lines, "", "R restart   B menu   Q quit")
	dst.DrawMessageBox("GAME OVER", core.ColorBrightRed, lines...)
}

// bar renders a ratio in [0, 1] as a fixed-width gauge.
func bar(ratio float64, width int) string {
	filled := int(math.Round(core.Clamp(ratio, 0, 1) * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func healthColor(ratio float64) core.Color {
	switch {
	case ratio > 0.6:
		return core.ColorBrightGreen
	case ratio > 0.3:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}
