// Package core provides fundamental types and utilities for the cube game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Vec is a point or velocity in logical screen units.
type Vec struct {
	X, Y float64
}

// Add returns v translated by d.
func (v Vec) Add(d Vec) Vec {
	return Vec{X: v.X + d.X, Y: v.Y + d.Y}
}

// Box is an axis-aligned square or rectangle described by its center.
// All game actors are positioned by their center, so collision math works
// on half-extents rather than corners.
type Box struct {
	Center Vec
	W, H   float64
}

// NewBox creates a box centered on (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{Center: Vec{X: x, Y: y}, W: w, H: h}
}

// Square creates a size×size box centered on c.
func Square(c Vec, size float64) Box {
	return Box{Center: c, W: size, H: size}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.W/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.W/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Center.Y - b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y + b.H/2
}

// Overlaps reports whether two boxes touch or overlap.
// Edges count as contact: two squares whose centers are exactly
// (a.W+b.W)/2 apart on both axes overlap.
func (b Box) Overlaps(other Box) bool {
	dx := b.Center.X - other.Center.X
	dy := b.Center.Y - other.Center.Y
	hx := (b.W + other.W) / 2
	hy := (b.H + other.H) / 2
	return dx >= -hx && dx <= hx && dy >= -hy && dy <= hy
}

// Contains reports whether the point p lies strictly inside the box.
func (b Box) Contains(p Vec) bool {
	return p.X > b.Left() && p.X < b.Right() && p.Y > b.Top() && p.Y < b.Bottom()
}

// Bounds is an inclusive rectangular range of allowed positions.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Contains reports whether p lies inside the bounds, edges included.
func (r Bounds) Contains(p Vec) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
