package runner

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// mote is one background speck. It drifts left at a fraction of the scroll speed.
type mote struct {
	pos   core.Vec
	drift float64
}

// dust is the parallax background. It has its own RNG so the title screen
// animation never shifts the obstacle stream.
type dust struct {
	motes []mote
	rng   *rand.Rand
	w, h  float64
}

func newDust(rng *rand.Rand, w, h float64, n int) *dust {
	d := &dust{motes: make([]mote, n), rng: rng, w: w, h: h}
	for i := range d.motes {
		d.motes[i] = mote{
			pos:   core.V(rng.Float64()*w, rng.Float64()*h),
			drift: rng.Float64()*0.5 + 0.1,
		}
	}
	return d
}

func (d *dust) update(frames, speed float64) {
	for i := range d.motes {
		m := &d.motes[i]
		m.pos.X -= m.drift * speed * 0.5 * frames
		if m.pos.X < 0 {
			m.pos.X = d.w
			m.pos.Y = d.rng.Float64() * d.h
		}
	}
}

func (d *dust) queue(list *sim.DrawList) {
	for _, m := range d.motes {
		glyph := '.'
		if m.drift > 0.4 {
			glyph = '·'
		}
		list.Add(sim.Drawable{Layer: sim.LayerBackground, Pos: m.pos, Glyph: glyph, Color: core.ColorCyan, Health: -1})
	}
}
