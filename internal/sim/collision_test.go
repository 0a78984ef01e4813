package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func box(x, y, w, h float64) *Entity {
	return &Entity{Kind: KindEnemy, Caps: DefaultCaps(KindEnemy), Pos: core.V(x, y), W: w, H: h, Active: true}
}

func TestCollidesIsSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b *Entity
		hit  bool
	}{
		{"overlap", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"touching edges", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"apart", box(0, 0, 10, 10), box(30, 0, 10, 10), false},
		{"nested", box(0, 0, 40, 40), box(2, 2, 4, 4), true},
		{"thin vertical overlap", box(0, 0, 8, 20), box(0, 14, 60, 10), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.hit, Collides(tc.a, tc.b))
			assert.Equal(t, Collides(tc.a, tc.b), Collides(tc.b, tc.a))
		})
	}
}

func TestNearestPicksClosestInRange(t *testing.T) {
	tower := core.V(0, 0)
	enemies := []*Entity{box(50, 0, 1, 1), box(120, 0, 1, 1), box(80, 0, 1, 1)}

	got := Nearest(tower, 100, enemies)
	require.NotNil(t, got)
	assert.Same(t, enemies[0], got)

	// With the nearest gone the one at 80 wins; 120 is never in range.
	enemies[0].Active = false
	assert.Same(t, enemies[2], Nearest(tower, 100, enemies))
	enemies[2].Active = false
	assert.Nil(t, Nearest(tower, 100, enemies))
}

func TestNearestRangeIsStrictAndTiesKeepFirst(t *testing.T) {
	edge := []*Entity{box(100, 0, 1, 1)}
	assert.Nil(t, Nearest(core.V(0, 0), 100, edge))

	tied := []*Entity{box(0, 30, 1, 1), box(30, 0, 1, 1)}
	assert.Same(t, tied[0], Nearest(core.V(0, 0), 100, tied))
}

func TestScanPairsSkipsEntitiesDeactivatedMidScan(t *testing.T) {
	bullet := box(0, 0, 4, 4)
	a := box(1, 0, 4, 4)
	b := box(-1, 0, 4, 4)

	hits := 0
	ScanPairs([]*Entity{bullet}, []*Entity{a, b}, func(p, _ *Entity) {
		hits++
		p.Active = false
	})
	assert.Equal(t, 1, hits, "a spent projectile must not hit a second target")
}

func TestScanPairsIgnoresNonCollidable(t *testing.T) {
	p := box(0, 0, 4, 4)
	ghost := box(0, 0, 4, 4)
	ghost.Caps = CapDrawable

	called := false
	ScanOne(p, []*Entity{ghost}, func(*Entity) { called = true })
	assert.False(t, called)
}
