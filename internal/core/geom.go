// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement on the play plane.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// FromHeading returns a vector of the given length pointing along heading.
// Heading 0 points along +Y and grows towards +X (sin for X, cos for Y).
func FromHeading(heading, length float64) Vec2 {
	return Vec2{X: math.Sin(heading) * length, Y: math.Cos(heading) * length}
}

// Bounds is the world rectangle in play-plane coordinates.
// Y grows upwards, so Top > Bottom.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// CenteredBounds returns bounds of the given size centered on the origin.
func CenteredBounds(width, height float64) Bounds {
	return Bounds{
		Left:   -width / 2,
		Right:  width / 2,
		Top:    height / 2,
		Bottom: -height / 2,
	}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// Valid reports whether the bounds describe a non-empty rectangle.
func (b Bounds) Valid() bool {
	return b.Left < b.Right && b.Bottom < b.Top
}

// Wrap applies toroidal wraparound: leaving through one edge re-enters through
// the opposite edge carrying the overshoot. Points inside are returned unchanged.
// Overshoots larger than the bounds are folded with a modulo.
func (b Bounds) Wrap(p Vec2) Vec2 {
	return Vec2{
		X: wrapAxis(p.X, b.Left, b.Right),
		Y: wrapAxis(p.Y, b.Bottom, b.Top),
	}
}

// wrapAxis wraps v into [lo, hi].
func wrapAxis(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return v
	}
	if v > hi {
		return lo + math.Mod(v-hi, span)
	}
	if v < lo {
		return hi - math.Mod(lo-v, span)
	}
	return v
}

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
