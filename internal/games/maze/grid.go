package maze

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/config"
)

// Cell is the content of one grid square.
type Cell int

const (
	CellEmpty Cell = iota
	CellKey
	CellTreasure
	CellTrap
	CellDoor
	CellNPC
)

// Glyph returns the map letter for a cell.
func (c Cell) Glyph() rune {
	switch c {
	case CellKey:
		return 'K'
	case CellTreasure:
		return 'T'
	case CellTrap:
		return 'X'
	case CellDoor:
		return 'D'
	case CellNPC:
		return 'N'
	default:
		return '.'
	}
}

// Pos is a grid coordinate.
type Pos struct {
	X, Y int
}

// Grid is a rectangular vault floor indexed [y][x].
type Grid struct {
	W, H  int
	cells [][]Cell
}

// NewGrid returns an empty w×h grid.
func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, cells: make([][]Cell, h)}
	for y := range g.cells {
		g.cells[y] = make([]Cell, w)
	}
	return g
}

// In reports whether p lies on the grid.
func (g *Grid) In(p Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// At returns the cell at p, or CellEmpty off the grid.
func (g *Grid) At(p Pos) Cell {
	if !g.In(p) {
		return CellEmpty
	}
	return g.cells[p.Y][p.X]
}

// Set stores c at p. Off-grid positions are ignored.
func (g *Grid) Set(p Pos, c Cell) {
	if g.In(p) {
		g.cells[p.Y][p.X] = c
	}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}
	return n
}

// Find returns the first position holding c.
func (g *Grid) Find(c Cell) (Pos, bool) {
	for y, row := range g.cells {
		for x, v := range row {
			if v == c {
				return Pos{x, y}, true
			}
		}
	}
	return Pos{}, false
}

// Generate rolls every cell against the odds, then places exactly one door
// in the far half of the vault and makes sure at least one key exists.
// The start cell is always empty.
func Generate(rng *rand.Rand, w, h int, odds config.MazeOdds) *Grid {
	g := NewGrid(w, h)
	start := Pos{0, 0}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y][x] = roll(rng.Float64(), odds)
		}
	}
	g.Set(start, CellEmpty)
	if w*h < 3 {
		return g
	}

	var far, rest []Pos
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Pos{x, y}
			if p == start {
				continue
			}
			if x+y >= (w+h)/2 {
				far = append(far, p)
			} else {
				rest = append(rest, p)
			}
		}
	}
	if len(far) == 0 {
		far = rest
	}
	g.Set(far[rng.Intn(len(far))], CellDoor)

	if g.Count(CellKey) == 0 {
		var spots []Pos
		for _, p := range append(rest, far...) {
			if g.At(p) != CellDoor {
				spots = append(spots, p)
			}
		}
		g.Set(spots[rng.Intn(len(spots))], CellKey)
	}
	return g
}

// roll maps a uniform sample to a cell. Doors are placed separately.
func roll(r float64, odds config.MazeOdds) Cell {
	switch {
	case r < odds.Trap:
		return CellTrap
	case r < odds.Trap+odds.Treasure:
		return CellTreasure
	case r < odds.Trap+odds.Treasure+odds.Key:
		return CellKey
	case r < odds.Trap+odds.Treasure+odds.Key+odds.NPC:
		return CellNPC
	default:
		return CellEmpty
	}
}
