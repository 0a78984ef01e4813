package sim

import "github.com/vovakirdan/neon-arcade/internal/core"

// Collides is the symmetric AABB overlap test. Touching edges do not collide.
func Collides(a, b *Entity) bool {
	ab, bb := a.Bounds(), b.Bounds()
	return ab.Left < bb.Right && ab.Right > bb.Left &&
		ab.Top < bb.Bottom && ab.Bottom > bb.Top
}

// ScanPairs calls fn for every overlapping pair of active, collidable entities.
// Activity is re-checked before each pair so fn may deactivate either side.
func ScanPairs(as, bs []*Entity, fn func(a, b *Entity)) {
	for _, a := range as {
		if !a.Active || !a.Has(CapCollidable) {
			continue
		}
		for _, b := range bs {
			if !a.Active {
				break
			}
			if !b.Active || !b.Has(CapCollidable) || a == b {
				continue
			}
			if Collides(a, b) {
				fn(a, b)
			}
		}
	}
}

// ScanOne calls fn for every active, collidable entity in bs overlapping a.
func ScanOne(a *Entity, bs []*Entity, fn func(b *Entity)) {
	if a == nil {
		return
	}
	ScanPairs([]*Entity{a}, bs, func(_, b *Entity) { fn(b) })
}

// Nearest returns the closest active candidate strictly inside rng of from.
// Equal distances keep the first one found.
func Nearest(from core.Vec, rng float64, candidates []*Entity) *Entity {
	var best *Entity
	bestDist := rng
	for _, e := range candidates {
		if !e.Active {
			continue
		}
		d := from.Dist(e.Pos)
		if d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

// AnyWithin reports whether any active candidate lies strictly inside rng of from.
func AnyWithin(from core.Vec, rng float64, candidates []*Entity) bool {
	return Nearest(from, rng, candidates) != nil
}
