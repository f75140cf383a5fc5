// Package core provides fundamental types shared by the simulation and its frontends.
// It has no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
// The world origin is the center of the viewport, +Y points up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Box is an axis-aligned bounding box stored as center and half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// NewBox creates a box centered at c with the given full width and height.
func NewBox(c Vec2, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.HalfW
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.HalfW
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y - b.HalfH
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Center.Y + b.HalfH
}

// ContainsStrict returns true if p lies strictly inside the box.
// Points on the edge are outside.
func (b Box) ContainsStrict(p Vec2) bool {
	return math.Abs(p.X-b.Center.X) < b.HalfW && math.Abs(p.Y-b.Center.Y) < b.HalfH
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
