package shooter

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// star is one background point. Faster stars are drawn brighter.
type star struct {
	pos   core.Vec
	speed float64
}

// starfield scrolls in every state, so it draws from its own RNG
// and never shifts the gameplay stream.
type starfield struct {
	stars []star
	rng   *rand.Rand
	w, h  float64
}

func newStarfield(rng *rand.Rand, w, h float64, cfg config.StarfieldConfig) *starfield {
	sf := &starfield{stars: make([]star, cfg.Stars), rng: rng, w: w, h: h}
	for i := range sf.stars {
		sf.stars[i] = star{
			pos:   core.V(sf.rand(0, w), sf.rand(0, h)),
			speed: sf.rand(cfg.MinSpeed, cfg.MaxSpeed),
		}
	}
	return sf
}

func (sf *starfield) rand(lo, hi float64) float64 {
	return lo + sf.rng.Float64()*(hi-lo)
}

// update scrolls the field down and wraps stars back to the top.
func (sf *starfield) update(frames float64) {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.pos.Y += s.speed * frames
		if s.pos.Y > sf.h {
			s.pos.Y = 0
			s.pos.X = sf.rand(0, sf.w)
		}
	}
}

func (sf *starfield) queue(d *sim.DrawList) {
	for _, s := range sf.stars {
		glyph, color := '.', core.ColorDarkGray
		switch {
		case s.speed > 2:
			glyph, color = '*', core.ColorWhite
		case s.speed > 1.2:
			glyph, color = '·', core.ColorGray
		}
		d.Add(sim.Drawable{Layer: sim.LayerBackground, Pos: s.pos, Glyph: glyph, Color: color, Health: -1})
	}
}
