package amoeboids

import (
	"math"

	"github.com/vovakirdan/amoeboids/internal/core"
)

// hudRows is the number of screen rows above the play area.
const hudRows = 1

// Visual characters for rendering
const (
	BulletChar = '•'
	StarChar   = '.'
	BrightStar = '·'
)

// shipGlyphs indexes the ship glyph by heading in eighth turns, clockwise from up.
var shipGlyphs = [8]rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// amoebaStyle returns the fill glyph and color for a tier.
func amoebaStyle(t Tier) (rune, core.Color) {
	switch t {
	case TierBig:
		return '█', core.ColorGreen
	case TierMedium:
		return '▓', core.ColorBrightGreen
	default:
		return '▒', core.ColorBrightCyan
	}
}

// viewport projects play-plane coordinates onto screen cells below the HUD.
type viewport struct {
	bounds     core.Bounds
	cols, rows int
}

func newViewport(bounds core.Bounds, screenW, screenH int) viewport {
	return viewport{
		bounds: bounds,
		cols:   max(screenW, 0),
		rows:   max(screenH-hudRows, 0),
	}
}

// cell returns the screen cell containing p. Y grows upwards on the plane
// and downwards on the screen.
func (v viewport) cell(p core.Vec2) (int, int) {
	fx := (p.X - v.bounds.Left) / v.bounds.Width()
	fy := (v.bounds.Top - p.Y) / v.bounds.Height()
	col := core.Clamp(int(fx*float64(v.cols)), 0, v.cols-1)
	row := core.Clamp(int(fy*float64(v.rows)), 0, v.rows-1)
	return col, row + hudRows
}

// radii returns the half-extents in cells of a circle of radius r.
func (v viewport) radii(r float64) (float64, float64) {
	return r / v.bounds.Width() * float64(v.cols), r / v.bounds.Height() * float64(v.rows)
}

// wrapCell folds a cell offset back into the play area so bodies that
// straddle an edge show on both sides.
func (v viewport) wrapCell(col, row int) (int, int) {
	col = ((col % v.cols) + v.cols) % v.cols
	row -= hudRows
	row = ((row % v.rows) + v.rows) % v.rows
	return col, row + hudRows
}

func (v viewport) empty() bool {
	return v.cols == 0 || v.rows == 0 || !v.bounds.Valid()
}

// star is a background point fixed for the session.
type star struct {
	pos    core.Vec2
	bright bool
}

// makeStars scatters count stars using their own generator so the
// background never shifts the game's random sequence.
func makeStars(bounds core.Bounds, count int, seed int64) []star {
	rng := NewSimpleRNG(seed ^ 0x5eed)
	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			pos:    core.V(rng.Range(bounds.Left, bounds.Right), rng.Range(bounds.Bottom, bounds.Top)),
			bright: rng.Intn(4) == 0,
		}
	}
	return stars
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() != g.view.cols || dst.Height() != g.view.rows+hudRows {
		g.Resize(dst.Width(), dst.Height())
	}
	if !g.view.empty() {
		g.renderStars(dst)
		g.renderAmoebas(dst)
		g.renderBullets(dst)
		g.renderShip(dst)
	}

	g.hud.Draw(dst)
}

func (g *Game) renderStars(dst *core.Screen) {
	for _, s := range g.stars {
		x, y := g.view.cell(s.pos)
		if s.bright {
			dst.SetWithColor(x, y, BrightStar, core.ColorYellow)
		} else {
			dst.SetWithColor(x, y, StarChar, core.ColorGray)
		}
	}
}

// renderAmoebas fills an ellipse of cells for each amoeba, in the scene's
// attach order.
func (g *Game) renderAmoebas(dst *core.Screen) {
	for _, id := range g.layers.IDs(KindAmoeba) {
		a, ok := g.pop.Amoeba(id)
		if !ok {
			continue
		}
		glyph, color := amoebaStyle(a.Tier)
		cx, cy := g.view.cell(a.Pos)
		rx, ry := g.view.radii(a.Radius)
		ix, iy := int(math.Ceil(rx)), int(math.Ceil(ry))

		dst.SetWithColor(cx, cy, glyph, color)
		for dy := -iy; dy <= iy; dy++ {
			for dx := -ix; dx <= ix; dx++ {
				nx, ny := float64(dx)/math.Max(rx, 0.5), float64(dy)/math.Max(ry, 0.5)
				if nx*nx+ny*ny > 1 {
					continue
				}
				x, y := g.view.wrapCell(cx+dx, cy+dy)
				dst.SetWithColor(x, y, glyph, color)
			}
		}
	}
}

// renderBullets draws bullets still on the plane; bullets past an edge fly
// on unseen until they expire.
func (g *Game) renderBullets(dst *core.Screen) {
	for _, id := range g.layers.IDs(KindBullet) {
		b, ok := g.pop.Bullet(id)
		if !ok || !g.bounds.Contains(b.Pos) {
			continue
		}
		x, y := g.view.cell(b.Pos)
		dst.SetWithColor(x, y, BulletChar, core.ColorBrightRed)
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	if !g.layers.Has(ShipID) {
		return
	}
	ship := g.pop.Ship()
	x, y := g.view.cell(ship.Pos)
	dst.SetWithColor(x, y, shipGlyph(ship.Heading), core.ColorBrightWhite)
}

// shipGlyph picks the arrow closest to heading.
func shipGlyph(heading float64) rune {
	eighth := int(math.Round(heading / (math.Pi / 4)))
	return shipGlyphs[((eighth%8)+8)%8]
}
