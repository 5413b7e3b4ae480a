// Package core provides fundamental types and utilities for the starfall platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells, used by the screen buffer.
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

// Box is an axis-aligned bounding box in world units (pixels).
type Box struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// CenteredSquare returns the square box of side size centered on (x, y).
func CenteredSquare(x, y, size float32) Box {
	half := size / 2
	return Box{
		MinX: x - half,
		MinY: y - half,
		MaxX: x + half,
		MaxY: y + half,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float32 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Box) Height() float32 {
	return b.MaxY - b.MinY
}

// Overlaps reports whether the interiors of two boxes intersect.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	// No overlap if one box is completely to the left, right, above, or below
	if b.MinX >= other.MaxX || other.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= other.MaxY || other.MinY >= b.MaxY {
		return false
	}
	return true
}

// ToCells projects the box onto a cell grid where each cell spans cellW x cellH
// world units. The result always covers at least one cell.
func (b Box) ToCells(cellW, cellH float32) Rect {
	x0 := int(math.Floor(float64(b.MinX / cellW)))
	y0 := int(math.Floor(float64(b.MinY / cellH)))
	x1 := int(math.Ceil(float64(b.MaxX / cellW)))
	y1 := int(math.Ceil(float64(b.MaxY / cellH)))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Clamp32 restricts val to [lo, hi]. When the range is inverted the lower
// bound wins, so a box larger than the area hugs the top-left margin.
func Clamp32(val, lo, hi float32) float32 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// IsNaN32 reports whether f is an IEEE 754 "not-a-number" value.
func IsNaN32(f float32) bool {
	return f != f
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
