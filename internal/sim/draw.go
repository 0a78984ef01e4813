package sim

import (
	"math"
	"sort"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Layer orders drawables; lower layers are painted first.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerPath
	LayerEntities
	LayerParticles
	LayerHUD
)

// Drawable is one draw request in world units.
// A zero-size drawable paints a single cell; Text, when set, is drawn instead of Glyph.
type Drawable struct {
	Layer  Layer
	Pos    core.Vec
	W, H   float64
	Glyph  rune
	Color  core.Color
	Text   string
	Health float64 // health ratio in [0, 1]; negative hides the bar
}

// Viewport maps world units onto a rectangle of screen cells.
type Viewport struct {
	WorldW, WorldH float64
	X, Y           int // top-left cell of the play area
	W, H           int // size of the play area in cells
}

func (v Viewport) scale() (float64, float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 1, 1
	}
	return float64(v.W) / v.WorldW, float64(v.H) / v.WorldH
}

// ToScreen returns the cell containing a world point.
func (v Viewport) ToScreen(p core.Vec) (int, int) {
	sx, sy := v.scale()
	return v.X + int(math.Floor(p.X*sx)), v.Y + int(math.Floor(p.Y*sy))
}

// ToWorld returns the world point at the center of a cell.
func (v Viewport) ToWorld(x, y int) core.Vec {
	sx, sy := v.scale()
	return core.V((float64(x-v.X)+0.5)/sx, (float64(y-v.Y)+0.5)/sy)
}

// Contains reports whether a screen cell lies inside the play area.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

// CellRect returns the screen cells covered by a centered box in world units.
// Boxes smaller than a cell still cover one cell.
func (v Viewport) CellRect(center core.Vec, w, h float64) core.Rect {
	sx, sy := v.scale()
	cw := max(1, int(math.Round(w*sx)))
	ch := max(1, int(math.Round(h*sy)))
	cx, cy := v.ToScreen(center)
	return core.NewRect(cx-cw/2, cy-ch/2, cw, ch)
}

// DrawList collects one frame of draw requests.
type DrawList struct {
	items []Drawable
}

// Reset empties the list and keeps its capacity.
func (d *DrawList) Reset() {
	d.items = d.items[:0]
}

// Add appends a drawable.
func (d *DrawList) Add(dr Drawable) {
	d.items = append(d.items, dr)
}

// Items returns the drawables in paint order.
func (d *DrawList) Items() []Drawable {
	sort.SliceStable(d.items, func(i, j int) bool { return d.items[i].Layer < d.items[j].Layer })
	return d.items
}

// AddEntity queues an active, drawable entity.
func (d *DrawList) AddEntity(layer Layer, e *Entity) {
	if e == nil || !e.Active || !e.Has(CapDrawable) {
		return
	}
	health := -1.0
	if e.Kind == KindEnemy && e.Health < e.MaxHealth {
		health = e.HealthRatio()
	}
	glyph := e.Glyph
	if e.Kind == KindParticle && glyph == 0 {
		glyph = ParticleGlyph(e.Life)
	}
	d.Add(Drawable{Layer: layer, Pos: e.Pos, W: e.W, H: e.H, Glyph: glyph, Color: e.Color, Health: health})
}

// AddCollection queues every active entity of c.
func (d *DrawList) AddCollection(layer Layer, c *Collection) {
	for _, e := range c.All() {
		d.AddEntity(layer, e)
	}
}

// AddText queues a text label anchored at its left cell.
func (d *DrawList) AddText(layer Layer, pos core.Vec, text string, color core.Color) {
	d.Add(Drawable{Layer: layer, Pos: pos, Text: text, Color: color, Health: -1})
}

// Paint draws the list onto dst through the viewport. Cells outside the play area are clipped.
func (d *DrawList) Paint(dst *core.Screen, vp Viewport) {
	for _, dr := range d.Items() {
		if dr.Text != "" {
			x, y := vp.ToScreen(dr.Pos)
			i := 0
			for _, r := range dr.Text {
				if vp.Contains(x+i, y) {
					dst.SetColor(x+i, y, r, dr.Color)
				}
				i++
			}
			continue
		}
		rect := vp.CellRect(dr.Pos, dr.W, dr.H)
		glyph := dr.Glyph
		if glyph == 0 {
			glyph = '█'
		}
		for y := rect.Y; y < rect.Bottom(); y++ {
			for x := rect.X; x < rect.Right(); x++ {
				if vp.Contains(x, y) {
					dst.SetColor(x, y, glyph, dr.Color)
				}
			}
		}
		if dr.Health >= 0 && dr.Health < 1 {
			filled := int(math.Ceil(dr.Health * float64(rect.W)))
			for i := 0; i < rect.W; i++ {
				x, y := rect.X+i, rect.Y-1
				if !vp.Contains(x, y) {
					continue
				}
				if i < filled {
					dst.SetColor(x, y, '▀', dr.Color)
				} else {
					dst.SetColor(x, y, '▀', core.ColorDarkGray)
				}
			}
		}
	}
}
