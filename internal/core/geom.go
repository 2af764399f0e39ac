// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
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

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned bounding box in world units.
// X and Y are the top-left corner; the box covers [X, X+W) × [Y, Y+H).
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt returns a box of the given size centred on c.
func BoxAt(c Vec, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the centre point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Moved returns the box translated by d.
func (b Box) Moved(d Vec) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Intersects returns true if the two boxes overlap.
// Touching edges do not count as an overlap.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// CheckBound reports whether b lies inside the field [0,w]×[0,h] on each axis.
// The first result covers the horizontal axis, the second the vertical one.
func CheckBound(b Box, w, h float64) (horizontal, vertical bool) {
	horizontal, vertical = true, true
	if b.X < 0 || w < b.Right() {
		horizontal = false
	}
	if b.Y < 0 || h < b.Bottom() {
		vertical = false
	}
	return horizontal, vertical
}

// InBounds reports whether b lies fully inside the field.
func InBounds(b Box, w, h float64) bool {
	horizontal, vertical := CheckBound(b, w, h)
	return horizontal && vertical
}

// ClampInto shifts b so that it lies inside the field where possible.
// Boxes larger than the field are aligned to the top-left corner.
func ClampInto(b Box, w, h float64) Box {
	b.X = ClampF(b.X, 0, math.Max(0, w-b.W))
	b.Y = ClampF(b.Y, 0, math.Max(0, h-b.H))
	return b
}

// Orientation returns the unit vector pointing from the centre of org to the
// centre of dst. Coincident centres yield straight down.
func Orientation(org, dst Box) Vec {
	d := Vec{X: dst.Center().X - org.Center().X, Y: dst.Center().Y - org.Center().Y}
	norm := d.Len()
	if norm == 0 {
		return Vec{X: 0, Y: 1}
	}
	return d.Scale(1 / norm)
}

// RotatedExtent returns the width and height of the axis-aligned box that
// encloses a w×h rectangle rotated by deg degrees.
func RotatedExtent(w, h, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	return w*c + h*s, w*s + h*c
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
