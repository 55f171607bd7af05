// Package core provides fundamental types and utilities shared by the game
// engine and its surfaces. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a position in play-area pixels, origin at the top-left.
type Point struct {
	X, Y int
}

// Rect represents an axis-aligned bounding box.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// EllipseContains reports whether the center of pixel (x, y) falls inside the
// ellipse inscribed in r. Bubbles are square, so for them this is the circle
// test.
func (r Rect) EllipseContains(x, y int) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	// Doubled coordinates keep the pixel center integral; the comparison is
	// normalised so large rects cannot overflow.
	nx := float64(2*x+1-(2*r.X+r.W)) / float64(r.W)
	ny := float64(2*y+1-(2*r.Y+r.H)) / float64(r.H)
	return nx*nx+ny*ny <= 1
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
