package hacker

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// layout places the terminal panels for the current screen size.
// Rendering and pointer hit-testing share it.
type layout struct {
	hack  core.Rect
	tabs  [2]core.Rect
	shop  core.Rect // one row per item
	logY  int
	split int
}

func (g *Game) layout() layout {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	split := max(24, w*2/5)
	l := layout{split: split}
	l.hack = core.NewRect((split-16)/2, 3, 16, 3)

	sx := split + 2
	l.tabs[TabHardware] = core.NewRect(sx, 2, 10, 1)
	l.tabs[TabSoftware] = core.NewRect(sx+12, 2, 10, 1)
	l.shop = core.NewRect(sx, 4, max(1, w-sx-1), len(g.items(g.tab)))

	l.logY = max(l.shop.Bottom()+1, h-g.cfg.LogLines)
	return l
}

// click hit-tests a pointer press against the panels.
func (g *Game) click(x, y int) {
	l := g.layout()
	switch {
	case l.hack.Contains(x, y):
		g.Hack()
	case l.tabs[TabHardware].Contains(x, y):
		if g.tab != TabHardware {
			g.SwitchTab()
		}
	case l.tabs[TabSoftware].Contains(x, y):
		if g.tab != TabSoftware {
			g.SwitchTab()
		}
	case l.shop.Contains(x, y):
		g.cursor = y - l.shop.Y
		_ = g.Buy(g.tab, g.cursor)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.rain.draw(dst)

	state := g.machine.State()
	if state == sim.StateMenu {
		dst.DrawMessageBox("HACKER TYCOON", core.ColorBrightGreen,
			fmt.Sprintf("Best haul: $%s", core.FormatNumber(g.highScore)),
			"",
			"SPACE/click hack   TAB switch shop",
			"1-5 or ENTER buy   X disconnect",
			"P pause   B menu   Q quit",
			"",
			"Press ENTER to connect")
		return
	}

	l := g.layout()
	g.drawHeader(dst)
	g.drawHackPanel(dst, l)
	g.drawShop(dst, l)
	g.drawLog(dst, l)

	switch state {
	case sim.StatePaused:
		dst.DrawMessageBox("PAUSED", core.ColorBrightYellow, "P resume   B menu")
	case sim.StateGameOver:
		lines := []string{
			fmt.Sprintf("Lifetime earnings: $%s", core.FormatNumber(g.earned)),
			fmt.Sprintf("Hacks executed: %s", core.FormatNumber(g.hacks)),
			fmt.Sprintf("Passive rate: $%s/s", core.FormatNumber(g.autoRate)),
		}
		if g.newHigh {
			lines = append(lines, "", "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "R reconnect   B menu   Q quit")
		dst.DrawMessageBox("DISCONNECTED", core.ColorBrightRed, lines...)
	}
}

func (g *Game) drawHeader(dst *core.Screen) {
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), 1), ' ')
	dst.DrawTextColor(1, 0, "root@neon:~#", core.ColorBrightGreen)
	dst.DrawTextColor(15, 0, "$"+core.FormatNumber(g.money), core.ColorBrightYellow)
	rate := fmt.Sprintf("%s /s", core.FormatNumber(g.autoRate))
	dst.DrawTextColor(dst.Width()-len(rate)-1, 0, rate, core.ColorBrightCyan)
}

func (g *Game) drawHackPanel(dst *core.Screen, l layout) {
	b := l.hack
	dst.DrawRect(b, ' ')
	dst.DrawBoxColor(b, core.ColorBrightGreen)
	label := "HACK"
	dst.DrawTextColor(b.X+(b.W-len(label))/2, b.Y+1, label, core.ColorBrightWhite)

	click := fmt.Sprintf("Click power: %s", core.FormatNumber(g.clickPower))
	dst.DrawTextColor(b.X, b.Bottom()+1, click, core.ColorGreen)
}

func (g *Game) drawShop(dst *core.Screen, l layout) {
	for _, t := range []Tab{TabHardware, TabSoftware} {
		r := l.tabs[t]
		c := core.ColorDarkGray
		label := t.String()
		if t == g.tab {
			c = core.ColorBrightGreen
			label = "[" + label + "]"
		}
		dst.DrawTextColor(r.X, r.Y, label, c)
	}

	for i, item := range g.items(g.tab) {
		y := l.shop.Y + i
		cost := Cost(item, g.Owned(g.tab, i))
		c := core.ColorGreen
		if g.money < cost {
			c = core.ColorDarkGray
		}
		marker := ' '
		if i == g.cursor {
			marker = '>'
		}
		dst.DrawRect(core.NewRect(l.shop.X, y, l.shop.W, 1), ' ')
		dst.SetColor(l.shop.X, y, marker, core.ColorBrightWhite)
		line := fmt.Sprintf("%d %-18s $%-9s x%d", i+1, item.Name, core.FormatNumber(cost), g.Owned(g.tab, i))
		dst.DrawTextColor(l.shop.X+2, y, line, c)
	}
}

func (g *Game) drawLog(dst *core.Screen, l layout) {
	dst.DrawHLine(0, l.logY-1, dst.Width(), '─')
	for i, msg := range g.messages {
		y := l.logY + i
		dst.DrawRect(core.NewRect(0, y, dst.Width(), 1), ' ')
		c := core.ColorGreen
		if strings.HasPrefix(msg, "Access Denied") {
			c = core.ColorBrightRed
		}
		dst.DrawTextColor(1, y, "> "+msg, c)
	}
}
