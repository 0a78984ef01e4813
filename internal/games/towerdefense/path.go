package towerdefense

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Path is the polyline creeps follow from the first waypoint to the last.
type Path []core.Vec

func newPath(points []config.Point) Path {
	p := make(Path, len(points))
	for i, pt := range points {
		p[i] = core.V(pt.X, pt.Y)
	}
	return p
}

// Start returns the spawn point.
func (p Path) Start() core.Vec {
	if len(p) == 0 {
		return core.Vec{}
	}
	return p[0]
}

// Dist returns the shortest distance from v to any segment of the path.
func (p Path) Dist(v core.Vec) float64 {
	if len(p) == 1 {
		return v.Dist(p[0])
	}
	best := math.Inf(1)
	for i := 0; i+1 < len(p); i++ {
		best = math.Min(best, segmentDist(v, p[i], p[i+1]))
	}
	return best
}

// Samples returns points spaced step apart along the path, for drawing.
func (p Path) Samples(step float64) []core.Vec {
	var out []core.Vec
	for i := 0; i+1 < len(p); i++ {
		a, b := p[i], p[i+1]
		n := int(math.Ceil(a.Dist(b) / step))
		for j := 0; j < n; j++ {
			t := float64(j) / float64(n)
			out = append(out, a.Add(b.Sub(a).Scale(t)))
		}
	}
	if len(p) > 0 {
		out = append(out, p[len(p)-1])
	}
	return out
}

func segmentDist(v, a, b core.Vec) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return v.Dist(a)
	}
	av := v.Sub(a)
	t := core.Clamp((av.X*ab.X+av.Y*ab.Y)/l2, 0, 1)
	return v.Dist(a.Add(ab.Scale(t)))
}

// stepToward moves from toward to by at most step and reports whether it arrived.
func stepToward(from, to core.Vec, step float64) (core.Vec, bool) {
	d := from.Dist(to)
	if d <= step {
		return to, true
	}
	return from.Add(to.Sub(from).Normalize().Scale(step)), false
}
