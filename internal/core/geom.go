// Package core provides fundamental types and utilities for the stick game.
// It contains no Bubble Tea or ebiten imports so the game logic and the
// render adapters can share it.
package core

// Rect is an axis-aligned box in screen cells.
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

// Span is a horizontal world-space interval [Lo, Hi].
type Span struct {
	Lo, Hi float64
}

// SpanAround returns the span of the given size centered on mid.
func SpanAround(mid, size float64) Span {
	return Span{Lo: mid - size/2, Hi: mid + size/2}
}

// ContainsOpen reports whether x lies strictly inside the span.
// Both bounds are excluded, so a value exactly on an edge is outside.
func (s Span) ContainsOpen(x float64) bool {
	return s.Lo < x && x < s.Hi
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
