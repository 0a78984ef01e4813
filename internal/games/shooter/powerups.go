package shooter

import (
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// powerUpStyle gives each power-up type its look on the field and in the HUD.
var powerUpStyle = map[string]struct {
	glyph rune
	color core.Color
	label string
}{
	buffRapidFire: {'R', core.ColorOrange, "RAPID"},
	buffMultishot: {'M', core.ColorMint, "MULTI"},
	buffShield:    {'S', core.ColorBrightCyan, "SHIELD"},
	powerUpNuke:   {'N', core.ColorBrightMagenta, "NUKE"},
}

// dropPowerUp spawns a random power-up drifting down from pos.
func (g *Game) dropPowerUp(pos core.Vec) {
	types := g.cfg.PowerUps.Types
	if len(types) == 0 {
		return
	}
	w := g.world
	kind := types[w.Rand.Intn(len(types))]
	style, ok := powerUpStyle[kind]
	if !ok {
		style.glyph, style.color = '?', core.ColorWhite
	}
	size := g.cfg.PowerUps.Size
	w.Spawn(&sim.Entity{
		Kind:    sim.KindPowerUp,
		Pos:     pos,
		Vel:     core.V(0, g.cfg.PowerUps.Speed),
		W:       size,
		H:       size,
		TypeKey: kind,
		Color:   style.color,
		Glyph:   style.glyph,
	})
}

// buffLabel returns the HUD label of an active buff.
func buffLabel(name string) string {
	if style, ok := powerUpStyle[name]; ok {
		return style.label
	}
	return name
}
