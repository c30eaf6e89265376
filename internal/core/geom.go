// Package core holds the types shared by the game and the terminal platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on the screen.
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

// RectF is an axis-aligned bounding box in world units.
// Games that simulate in a logical coordinate space collide with RectF
// and only convert to cells when drawing.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Cells projects the box from a world of size worldW x worldH onto a
// screen of screenW x screenH cells. The result is at least one cell.
func (r RectF) Cells(worldW, worldH float64, screenW, screenH int) Rect {
	sx := float64(screenW) / worldW
	sy := float64(screenH) / worldH
	x := int(math.Floor(r.X * sx))
	y := int(math.Floor(r.Y * sy))
	w := Max(1, int(math.Round(r.W*sx)))
	h := Max(1, int(math.Round(r.H*sy)))
	return NewRect(x, y, w, h)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
