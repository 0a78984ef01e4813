package hacker

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const (
	rainGlyphs = "ABDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	rainStep   = 50 * time.Millisecond
	rainTrail  = 6
)

// rain is the falling-glyph backdrop. One drop per column advances every
// rainStep and restarts at random once it leaves the screen.
type rain struct {
	rng   *rand.Rand
	drops []int
	cells []rune
	h     int
	acc   time.Duration
}

func newRain(rng *rand.Rand, w, h int) *rain {
	r := &rain{rng: rng}
	r.resize(w, h)
	return r
}

func (r *rain) resize(w, h int) {
	w = max(0, w)
	drops := make([]int, w)
	for i := range drops {
		if i < len(r.drops) {
			drops[i] = r.drops[i]
		} else {
			drops[i] = r.rng.Intn(max(1, h))
		}
	}
	r.drops = drops
	r.cells = make([]rune, w)
	for i := range r.cells {
		r.cells[i] = r.glyph()
	}
	r.h = h
}

func (r *rain) glyph() rune {
	return rune(rainGlyphs[r.rng.Intn(len(rainGlyphs))])
}

func (r *rain) update(dt time.Duration) {
	r.acc += dt
	for r.acc >= rainStep {
		r.acc -= rainStep
		for i := range r.drops {
			r.cells[i] = r.glyph()
			if r.drops[i] > r.h && r.rng.Float64() > 0.975 {
				r.drops[i] = 0
			}
			r.drops[i]++
		}
	}
}

// burst restarts a few columns so a hack ripples through the backdrop.
func (r *rain) burst() {
	for n := 0; n < 3 && len(r.drops) > 0; n++ {
		r.drops[r.rng.Intn(len(r.drops))] = 0
	}
}

func (r *rain) draw(dst *core.Screen) {
	for x, y := range r.drops {
		dst.SetColor(x, y, r.cells[x], core.ColorBrightGreen)
		for t := 1; t <= rainTrail; t++ {
			c := core.ColorGreen
			if t > rainTrail/2 {
				c = core.ColorDarkGray
			}
			if dst.Get(x, y-t) == ' ' {
				dst.SetColor(x, y-t, rune(rainGlyphs[(x*7+y+t)%len(rainGlyphs)]), c)
			}
		}
	}
}
