package hacker

import (
	"errors"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
)

// Tab selects a shop list.
type Tab int

const (
	TabHardware Tab = iota // passive income
	TabSoftware            // click power
)

func (t Tab) String() string {
	if t == TabSoftware {
		return "SOFTWARE"
	}
	return "HARDWARE"
}

// Shop errors.
var (
	ErrAccessDenied = errors.New("access denied")
	ErrNoSuchItem   = errors.New("no such item")
)

// Cost is floor(base × mult^owned).
func Cost(item config.ShopItem, owned int) int {
	return int(math.Floor(float64(item.BaseCost) * math.Pow(item.CostMult, float64(owned))))
}

func (g *Game) items(t Tab) []config.ShopItem {
	if t == TabSoftware {
		return g.cfg.Software
	}
	return g.cfg.Hardware
}

// Owned returns how many of item i the player has bought.
func (g *Game) Owned(t Tab, i int) int {
	counts := g.owned[t]
	if i < 0 || i >= len(counts) {
		return 0
	}
	return counts[i]
}

// Price returns the current cost of item i.
func (g *Game) Price(t Tab, i int) int {
	items := g.items(t)
	if i < 0 || i >= len(items) {
		return 0
	}
	return Cost(items[i], g.Owned(t, i))
}

// Buy purchases item i from tab t. An unaffordable purchase changes nothing
// and is reported in the log.
func (g *Game) Buy(t Tab, i int) error {
	items := g.items(t)
	if i < 0 || i >= len(items) {
		return ErrNoSuchItem
	}
	item := items[i]
	cost := Cost(item, g.owned[t][i])
	if g.money < cost {
		g.logf("Access Denied. Insufficient Protocol Credits.")
		return ErrAccessDenied
	}

	g.money -= cost
	g.owned[t][i]++
	if t == TabSoftware {
		g.clickPower += item.Benefit
		g.logf("Installed %s. Click Power +%d", item.Name, item.Benefit)
	} else {
		g.autoRate += item.Benefit
		g.logf("Purchased %s. Rate +%d/s", item.Name, item.Benefit)
	}
	g.log.Info("purchase", "item", item.ID, "cost", cost, "owned", g.owned[t][i])
	return nil
}

// SwitchTab toggles between the hardware and software lists.
func (g *Game) SwitchTab() {
	if g.tab == TabHardware {
		g.tab = TabSoftware
	} else {
		g.tab = TabHardware
	}
	g.cursor = 0
}

// ClickPower returns credits earned per hack.
func (g *Game) ClickPower() int {
	return g.clickPower
}

// Rate returns passive income per interval.
func (g *Game) Rate() int {
	return g.autoRate
}
