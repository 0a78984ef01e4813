package maze

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Each grid cell is drawn cellW columns wide.
const (
	cellW = 3
	gridY = 3
)

var cellColors = map[Cell]core.Color{
	CellEmpty:    core.ColorDarkGray,
	CellKey:      core.ColorBrightYellow,
	CellTreasure: core.ColorOrange,
	CellTrap:     core.ColorBrightRed,
	CellDoor:     core.ColorBrightMagenta,
	CellNPC:      core.ColorBrightCyan,
}

// origin returns the screen cell of grid (0,0).
func (g *Game) origin() (int, int) {
	return (g.runtime.ScreenW - g.cfg.Width*cellW) / 2, gridY
}

// cellAt maps a screen cell to the grid square under it.
func (g *Game) cellAt(x, y int) (Pos, bool) {
	ox, oy := g.origin()
	if x < ox || y < oy {
		return Pos{}, false
	}
	p := Pos{(x - ox) / cellW, y - oy}
	return p, g.grid.In(p)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	state := g.machine.State()
	if state == sim.StateMenu {
		dst.DrawMessageBox("DATA VAULT", core.ColorBrightMagenta,
			fmt.Sprintf("High score: %s", core.FormatNumber(g.highScore)),
			"",
			"Find a key (K) and escape through the door (D).",
			"Treasure (T) scores, traps (X) drain integrity.",
			"Arrows/WASD or click move   B menu   Q quit",
			"",
			"Press ENTER to enter the vault")
		return
	}

	g.drawHUD(dst)
	g.drawGrid(dst)
	if g.message != "" {
		dst.DrawTextCenteredColor(gridY+g.cfg.Height+2, g.message, core.ColorBrightWhite)
	}

	switch state {
	case sim.StatePaused:
		dst.DrawMessageBox("PAUSED", core.ColorBrightYellow, "P resume   B menu")
	case sim.StateGameOver:
		title, c := "CONNECTION LOST", core.ColorBrightRed
		if g.won {
			title, c = "VAULT CRACKED", core.ColorBrightGreen
		}
		lines := []string{
			fmt.Sprintf("Score: %s", core.FormatNumber(g.score)),
			fmt.Sprintf("Treasures: %d   Moves: %d", g.treasures, g.moves),
		}
		if g.newHigh {
			lines = append(lines, "", "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "R restart   B menu   Q quit")
		dst.DrawMessageBox(title, c, lines...)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, "SCORE "+core.FormatNumber(g.score), core.ColorBrightCyan)

	bar := 10
	filled := 0
	if g.cfg.Integrity > 0 {
		filled = bar * g.integrity / g.cfg.Integrity
	}
	integrity := fmt.Sprintf("INTEGRITY [%s%s] %d", strings.Repeat("█", filled), strings.Repeat("░", bar-filled), g.integrity)
	c := core.ColorBrightGreen
	if g.integrity*2 <= g.cfg.Integrity {
		c = core.ColorBrightRed
	}
	dst.DrawTextColor(16, 0, integrity, c)

	right := fmt.Sprintf("ATTEMPTS %d  KEYS %d", g.attempts, g.keys)
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorBrightYellow)
}

func (g *Game) drawGrid(dst *core.Screen) {
	ox, oy := g.origin()
	dst.DrawBoxColor(core.NewRect(ox-1, oy-1, g.cfg.Width*cellW+2, g.cfg.Height+2), core.ColorMagenta)
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			p := Pos{x, y}
			glyph, c := g.grid.At(p).Glyph(), cellColors[g.grid.At(p)]
			if p == g.player {
				glyph, c = 'P', core.ColorBrightWhite
			}
			dst.SetColor(ox+x*cellW+1, oy+y, glyph, c)
		}
	}
}
